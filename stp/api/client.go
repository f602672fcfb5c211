package api

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/alapierre/go-stp-client/stp/util"
)

// Client submits assembled payloads to the gateway. One outbound call per
// invocation, no retries.
type Client interface {
	PutJson(ctx context.Context, endpoint string, body interface{}) (*Response, error)
}

// Response is the raw gateway answer, kept verbatim for diagnostics.
type Response struct {
	StatusCode int
	Status     string
	Body       []byte
}

// IsError reports a non-2xx HTTP status.
func (r *Response) IsError() bool {
	return r.StatusCode < 200 || r.StatusCode > 299
}

type client struct {
	rest    *resty.Client
	baseURL string
}

// New builds the gateway transport: 30 second budget per call, up to 5
// redirects followed.
func New(baseURL string) Client {
	restyClient := resty.New().
		SetTimeout(30 * time.Second).
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(5))
	return &client{rest: restyClient, baseURL: baseURL}
}

func (c *client) PutJson(ctx context.Context, endpoint string, body interface{}) (*Response, error) {

	r := c.rest.R().SetContext(ctx)
	if util.HttpTraceEnabled() {
		r.EnableTrace()
	}

	resp, err := r.
		SetBody(body).
		SetHeader("Content-Type", "application/json").
		SetHeader("Encoding", "UTF-8").
		Put(c.baseURL + endpoint)
	if err != nil {
		return nil, err
	}

	printTraceInfo(endpoint, c, resp)

	return &Response{
		StatusCode: resp.StatusCode(),
		Status:     resp.Status(),
		Body:       resp.Body(),
	}, nil
}

func printTraceInfo(endpoint string, c *client, resp *resty.Response) {

	if !util.HttpTraceEnabled() {
		return
	}

	fmt.Println("Response Info:")
	fmt.Println("  URL        :", c.baseURL+endpoint)
	fmt.Println("  Status Code:", resp.StatusCode())
	fmt.Println("  Status     :", resp.Status())
	fmt.Println("  Time       :", resp.Time())
	fmt.Println("  Received At:", resp.ReceivedAt())
	fmt.Println("  Body       :\n", resp)
	fmt.Println()

	fmt.Println("Request Trace Info:")
	ti := resp.Request.TraceInfo()
	fmt.Println("  DNSLookup     :", ti.DNSLookup)
	fmt.Println("  ConnTime      :", ti.ConnTime)
	fmt.Println("  TLSHandshake  :", ti.TLSHandshake)
	fmt.Println("  ServerTime    :", ti.ServerTime)
	fmt.Println("  TotalTime     :", ti.TotalTime)
	fmt.Println("  IsConnReused  :", ti.IsConnReused)
}
