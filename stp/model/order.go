package model

import (
	"fmt"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

var maxMonto = decimal.RequireFromString("999999999999.99")

// OrdenPago is a single payment instruction to register against the gateway.
// Optional numeric fields are pointers so that an explicit zero can still be
// rendered into the cadena original.
type OrdenPago struct {
	InstitucionContraparte int    `validate:"required"`
	Empresa                string `validate:"max=15"`
	FechaOperacion         *int   // YYYYMMDD, defaults to the current date
	FolioOrigen            string `validate:"max=50"`
	ClaveRastreo           string `validate:"required,alphanum,min=8,max=30"`
	InstitucionOperante    *int

	Monto              decimal.Decimal
	TipoPago           int `validate:"required"`
	ReferenciaNumerica int `validate:"min=1000000,max=9999999"`

	TipoCuentaOrdenante int    `validate:"required"`
	NombreOrdenante     string `validate:"required"`
	CuentaOrdenante     string `validate:"required"`
	RfcCurpOrdenante    string `validate:"required"`

	TipoCuentaBeneficiario int    `validate:"required"`
	NombreBeneficiario     string `validate:"required"`
	CuentaBeneficiario     string `validate:"required"`
	RfcCurpBeneficiario    string `validate:"required"`
	EmailBeneficiario      string `validate:"omitempty,email"`

	TipoCuentaBeneficiario2 *int
	NombreBeneficiario2     string
	CuentaBeneficiario2     string
	RfcCurpBeneficiario2    string

	ConceptoPago       string `validate:"required,max=40"`
	ConceptoPago2      string `validate:"max=40"`
	ClaveCatUsuario1   string
	ClaveCatUsuario2   string
	ClavePago          string
	ReferenciaCobranza string

	TipoOperacion *int
	Topologia     string
	Usuario       string
	MedioEntrega  *int
	Prioridad     *int
	Iva           *decimal.Decimal

	Longitud string `validate:"required,max=30"`
	Latitud  string `validate:"required,max=30"`
}

// FieldError names one rejected attribute.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every attribute rejected before registration.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "orden inválida: " + strings.Join(msgs, ", ")
}

// Validate checks shape and ranges. The registration pipeline assumes it has
// been called by the caller beforehand.
func (o *OrdenPago) Validate() error {
	var fields []FieldError

	if err := validate.Struct(o); err != nil {
		var verr validator.ValidationErrors
		if !errors.As(err, &verr) {
			return err
		}
		for _, fe := range verr {
			fields = append(fields, FieldError{Field: fe.Field(), Message: fe.Tag()})
		}
	}

	if o.Monto.LessThanOrEqual(decimal.Zero) {
		fields = append(fields, FieldError{Field: "Monto", Message: "must be greater than zero"})
	} else if o.Monto.GreaterThan(maxMonto) {
		fields = append(fields, FieldError{Field: "Monto", Message: "exceeds " + maxMonto.String()})
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
