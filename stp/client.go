package stp

import (
	"context"
	"crypto"
	"time"

	"github.com/alapierre/go-stp-client/stp/api"
	"github.com/alapierre/go-stp-client/stp/cadena"
	"github.com/alapierre/go-stp-client/stp/firma"
	"github.com/alapierre/go-stp-client/stp/keys"
	"github.com/alapierre/go-stp-client/stp/model"
)

const registraOrdenEndpoint = "/speiws/rest/ordenPago/registra"

// DefaultInstitucionOperante is STP's own institution code.
const DefaultInstitucionOperante = 90646

type Config struct {
	Environment Environment

	// BaseURL overrides Environment.BaseURL() when set.
	BaseURL string

	// Empresa is the default company name when the order carries none.
	Empresa string

	// InstitucionOperante defaults to DefaultInstitucionOperante.
	InstitucionOperante int

	KeyPath       string
	KeyPassphrase string
}

// Client registers payment orders against the STP gateway. The signing key
// is parsed once at construction and shared read-only across calls, so a
// Client is safe for concurrent use.
type Client struct {
	api                 api.Client
	key                 crypto.Signer
	empresa             string
	institucionOperante int
	now                 func() time.Time
}

// New loads the signing key and builds the gateway client.
func New(cfg Config) (*Client, error) {
	if cfg.KeyPath == "" {
		return nil, ErrNoKey
	}

	key, err := keys.LoadSignerFromFile(cfg.KeyPath, []byte(cfg.KeyPassphrase))
	if err != nil {
		return nil, err
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = cfg.Environment.BaseURL()
	}

	institucion := cfg.InstitucionOperante
	if institucion == 0 {
		institucion = DefaultInstitucionOperante
	}

	return &Client{
		api:                 api.New(baseURL),
		key:                 key,
		empresa:             cfg.Empresa,
		institucionOperante: institucion,
		now:                 time.Now,
	}, nil
}

// RegistraOrden runs one registration attempt: cadena original, firma, wire
// payload, PUT, response interpretation. Every expected failure (signing,
// connection, HTTP status, business code) comes back as a result with
// Success=false; the error return is reserved for a nil order. The order is
// assumed validated, see model.OrdenPago.Validate.
func (c *Client) RegistraOrden(ctx context.Context, orden *model.OrdenPago) (*model.RegistroResult, error) {
	if orden == nil {
		return nil, ErrNilOrden
	}

	o := *orden
	if o.FechaOperacion == nil {
		f := fechaOperacion(c.now())
		o.FechaOperacion = &f
	}

	cad := cadena.Build(&o, c.empresa, c.institucionOperante)
	logger.Debugf("cadena original: %s", cad)

	sig, err := firma.Cadena(c.key, cad)
	if err != nil {
		logger.Errorf("signing failed: %v", err)
		return &model.RegistroResult{
			Message:        "Error al firmar la orden: " + err.Error(),
			CadenaOriginal: cad,
		}, nil
	}

	payload := model.NewRegistraOrdenRequest(&o, c.empresa, c.institucionOperante, sig)

	resp, err := c.api.PutJson(ctx, registraOrdenEndpoint, payload)
	if err != nil {
		logger.Errorf("registra orden %s: %v", o.ClaveRastreo, err)
		return &model.RegistroResult{
			Message:        msgConnectionError + ": " + err.Error(),
			CadenaOriginal: cad,
			Firma:          sig,
		}, nil
	}

	if resp.IsError() {
		reqErr := &api.RequestError{StatusCode: resp.StatusCode, Body: string(resp.Body)}
		logger.Errorf("registra orden %s: %v", o.ClaveRastreo, reqErr)
		return &model.RegistroResult{
			Message:        reqErr.Error(),
			RawResponse:    string(resp.Body),
			CadenaOriginal: cad,
			Firma:          sig,
		}, nil
	}

	result := interpretRespuesta(resp.Body)
	result.CadenaOriginal = cad
	result.Firma = sig

	if result.Success {
		logger.Infof("orden %s registrada, folio %d", o.ClaveRastreo, result.FolioStp)
	} else {
		logger.Warnf("orden %s rechazada: %s", o.ClaveRastreo, result.Message)
	}
	return result, nil
}

func fechaOperacion(t time.Time) int {
	return t.Year()*10000 + int(t.Month())*100 + t.Day()
}
