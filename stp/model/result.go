package model

// RegistroResult is the outcome of a single registration attempt. Built once
// per call and never stored; the cadena original and firma are echoed back
// for diagnostics regardless of the outcome.
type RegistroResult struct {
	Success bool

	// FolioStp is the gateway-assigned folio, set only on success.
	FolioStp int64

	// ErrorCode is set only when the gateway answered with a business error
	// code. Code 0 is meaningful (error general), hence the pointer.
	ErrorCode *int

	Message     string
	RawResponse string

	CadenaOriginal string
	Firma          string
}
