// Package cadena builds the cadena original, the pipe-delimited canonical
// string the gateway verifies the RSA signature against.
package cadena

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/alapierre/go-stp-client/stp/model"
)

// Build renders the order as ||f1|f2|...|f34|| in the contractual field
// order. Absent optionals render as empty segments, never as a null word.
// The remote verifier recomputes the signature over this exact text, any
// drift in order or formatting makes the gateway reject the order.
func Build(o *model.OrdenPago, empresa string, institucionOperante int) string {
	if o.Empresa != "" {
		empresa = o.Empresa
	}
	operante := institucionOperante
	if o.InstitucionOperante != nil && *o.InstitucionOperante != 0 {
		operante = *o.InstitucionOperante
	}

	fields := []string{
		strconv.Itoa(o.InstitucionContraparte),
		empresa,
		optInt(o.FechaOperacion),
		o.FolioOrigen,
		o.ClaveRastreo,
		strconv.Itoa(operante),
		o.Monto.String(),
		strconv.Itoa(o.TipoPago),
		strconv.Itoa(o.TipoCuentaOrdenante),
		o.NombreOrdenante,
		o.CuentaOrdenante,
		o.RfcCurpOrdenante,
		strconv.Itoa(o.TipoCuentaBeneficiario),
		o.NombreBeneficiario,
		o.CuentaBeneficiario,
		o.RfcCurpBeneficiario,
		o.EmailBeneficiario,
		optInt(o.TipoCuentaBeneficiario2),
		o.NombreBeneficiario2,
		o.CuentaBeneficiario2,
		o.RfcCurpBeneficiario2,
		o.ConceptoPago,
		o.ConceptoPago2,
		o.ClaveCatUsuario1,
		o.ClaveCatUsuario2,
		o.ClavePago,
		o.ReferenciaCobranza,
		strconv.Itoa(o.ReferenciaNumerica),
		optInt(o.TipoOperacion),
		o.Topologia,
		o.Usuario,
		optInt(o.MedioEntrega),
		optInt(o.Prioridad),
		optDecimal(o.Iva),
	}

	return "||" + strings.Join(fields, "|") + "||"
}

func optInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

// optDecimal keeps the plain decimal text form, no thousands separators and
// no trailing zeros, same as the amount rendering.
func optDecimal(v *decimal.Decimal) string {
	if v == nil {
		return ""
	}
	return v.String()
}
