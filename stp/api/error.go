package api

import "fmt"

// RequestError carries a non-2xx gateway answer for diagnostics.
type RequestError struct {
	StatusCode int
	Body       string
}

func (r *RequestError) Error() string {
	return fmt.Sprintf("status: %d message: %s", r.StatusCode, r.Body)
}
