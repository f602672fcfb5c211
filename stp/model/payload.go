package model

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// RegistraOrdenRequest is the wire form of an order. The gateway wants
// numeric fields transmitted as text and rejects explicit nulls, so every
// field is a string and absent optionals are omitted from the JSON entirely.
type RegistraOrdenRequest struct {
	InstitucionContraparte string `json:"institucionContraparte"`
	Empresa                string `json:"empresa"`
	FechaOperacion         string `json:"fechaOperacion,omitempty"`
	FolioOrigen            string `json:"folioOrigen,omitempty"`
	ClaveRastreo           string `json:"claveRastreo"`
	InstitucionOperante    string `json:"institucionOperante"`

	Monto              string `json:"monto"`
	TipoPago           string `json:"tipoPago"`
	ReferenciaNumerica string `json:"referenciaNumerica"`

	TipoCuentaOrdenante string `json:"tipoCuentaOrdenante"`
	NombreOrdenante     string `json:"nombreOrdenante"`
	CuentaOrdenante     string `json:"cuentaOrdenante"`
	RfcCurpOrdenante    string `json:"rfcCurpOrdenante"`

	TipoCuentaBeneficiario string `json:"tipoCuentaBeneficiario"`
	NombreBeneficiario     string `json:"nombreBeneficiario"`
	CuentaBeneficiario     string `json:"cuentaBeneficiario"`
	RfcCurpBeneficiario    string `json:"rfcCurpBeneficiario"`
	EmailBeneficiario      string `json:"emailBeneficiario,omitempty"`

	TipoCuentaBeneficiario2 string `json:"tipoCuentaBeneficiario2,omitempty"`
	NombreBeneficiario2     string `json:"nombreBeneficiario2,omitempty"`
	CuentaBeneficiario2     string `json:"cuentaBeneficiario2,omitempty"`
	RfcCurpBeneficiario2    string `json:"rfcCurpBeneficiario2,omitempty"`

	ConceptoPago       string `json:"conceptoPago"`
	ConceptoPago2      string `json:"conceptoPago2,omitempty"`
	ClaveCatUsuario1   string `json:"claveCatUsuario1,omitempty"`
	ClaveCatUsuario2   string `json:"claveCatUsuario2,omitempty"`
	ClavePago          string `json:"clavePago,omitempty"`
	ReferenciaCobranza string `json:"referenciaCobranza,omitempty"`

	TipoOperacion string `json:"tipoOperacion,omitempty"`
	Topologia     string `json:"topologia,omitempty"`
	Usuario       string `json:"usuario,omitempty"`
	MedioEntrega  string `json:"medioEntrega,omitempty"`
	Prioridad     string `json:"prioridad,omitempty"`
	Iva           string `json:"iva,omitempty"`

	Latitud  string `json:"latitud"`
	Longitud string `json:"longitud"`

	Firma string `json:"firma"`
}

// NewRegistraOrdenRequest maps an order plus its firma into the wire form.
// Empresa and institución operante fall back to the configured defaults when
// the order leaves them empty. Field order is irrelevant here, only the
// cadena original is order sensitive.
func NewRegistraOrdenRequest(o *OrdenPago, empresa string, institucionOperante int, firma string) *RegistraOrdenRequest {
	if o.Empresa != "" {
		empresa = o.Empresa
	}
	if o.InstitucionOperante != nil && *o.InstitucionOperante != 0 {
		institucionOperante = *o.InstitucionOperante
	}

	return &RegistraOrdenRequest{
		InstitucionContraparte: strconv.Itoa(o.InstitucionContraparte),
		Empresa:                empresa,
		FechaOperacion:         optInt(o.FechaOperacion),
		FolioOrigen:            o.FolioOrigen,
		ClaveRastreo:           o.ClaveRastreo,
		InstitucionOperante:    strconv.Itoa(institucionOperante),

		Monto:              o.Monto.String(),
		TipoPago:           strconv.Itoa(o.TipoPago),
		ReferenciaNumerica: strconv.Itoa(o.ReferenciaNumerica),

		TipoCuentaOrdenante: strconv.Itoa(o.TipoCuentaOrdenante),
		NombreOrdenante:     o.NombreOrdenante,
		CuentaOrdenante:     o.CuentaOrdenante,
		RfcCurpOrdenante:    o.RfcCurpOrdenante,

		TipoCuentaBeneficiario: strconv.Itoa(o.TipoCuentaBeneficiario),
		NombreBeneficiario:     o.NombreBeneficiario,
		CuentaBeneficiario:     o.CuentaBeneficiario,
		RfcCurpBeneficiario:    o.RfcCurpBeneficiario,
		EmailBeneficiario:      o.EmailBeneficiario,

		TipoCuentaBeneficiario2: optInt(o.TipoCuentaBeneficiario2),
		NombreBeneficiario2:     o.NombreBeneficiario2,
		CuentaBeneficiario2:     o.CuentaBeneficiario2,
		RfcCurpBeneficiario2:    o.RfcCurpBeneficiario2,

		ConceptoPago:       o.ConceptoPago,
		ConceptoPago2:      o.ConceptoPago2,
		ClaveCatUsuario1:   o.ClaveCatUsuario1,
		ClaveCatUsuario2:   o.ClaveCatUsuario2,
		ClavePago:          o.ClavePago,
		ReferenciaCobranza: o.ReferenciaCobranza,

		TipoOperacion: optInt(o.TipoOperacion),
		Topologia:     o.Topologia,
		Usuario:       o.Usuario,
		MedioEntrega:  optInt(o.MedioEntrega),
		Prioridad:     optInt(o.Prioridad),
		Iva:           optDecimal(o.Iva),

		Latitud:  o.Latitud,
		Longitud: o.Longitud,

		Firma: firma,
	}
}

// optInt coerces an optional numeric field, treating zero as absent the same
// way the gateway does.
func optInt(v *int) string {
	if v == nil || *v == 0 {
		return ""
	}
	return strconv.Itoa(*v)
}

func optDecimal(v *decimal.Decimal) string {
	if v == nil || v.IsZero() {
		return ""
	}
	return v.String()
}
