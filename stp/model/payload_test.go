package model

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func minimalOrden() *OrdenPago {
	fecha := 20240809
	return &OrdenPago{
		InstitucionContraparte: 97846,
		FechaOperacion:         &fecha,
		ClaveRastreo:           "ABC12345",
		Monto:                  decimal.RequireFromString("1500.00"),
		TipoPago:               1,
		TipoCuentaOrdenante:    40,
		NombreOrdenante:        "ACME SA DE CV",
		CuentaOrdenante:        "646180110400000007",
		RfcCurpOrdenante:       "ACM010203AB9",
		TipoCuentaBeneficiario: 40,
		NombreBeneficiario:     "JUAN PEREZ",
		CuentaBeneficiario:     "012180001234567895",
		RfcCurpBeneficiario:    "ND",
		ConceptoPago:           "Pago de prueba",
		ReferenciaNumerica:     1234567,
		Longitud:               "-99.1332",
		Latitud:                "19.4326",
	}
}

func marshalFields(t *testing.T, req *RegistraOrdenRequest) map[string]string {
	t.Helper()

	b, err := json.Marshal(req)
	require.NoError(t, err)

	var fields map[string]string
	require.NoError(t, json.Unmarshal(b, &fields))
	return fields
}

func TestNewRegistraOrdenRequest_OmitsAbsentOptionals(t *testing.T) {

	req := NewRegistraOrdenRequest(minimalOrden(), "TAMIZI", 90646, "c2ln")
	fields := marshalFields(t, req)

	for _, key := range []string{
		"folioOrigen", "emailBeneficiario", "nombreBeneficiario2",
		"conceptoPago2", "tipoOperacion", "medioEntrega", "prioridad", "iva",
	} {
		assert.NotContains(t, fields, key)
	}

	assert.Equal(t, "97846", fields["institucionContraparte"])
	assert.Equal(t, "TAMIZI", fields["empresa"])
	assert.Equal(t, "20240809", fields["fechaOperacion"])
	assert.Equal(t, "90646", fields["institucionOperante"])
	assert.Equal(t, "1500", fields["monto"])
	assert.Equal(t, "1", fields["tipoPago"])
	assert.Equal(t, "1234567", fields["referenciaNumerica"])
	assert.Equal(t, "19.4326", fields["latitud"])
	assert.Equal(t, "-99.1332", fields["longitud"])
	assert.Equal(t, "c2ln", fields["firma"])
}

func TestNewRegistraOrdenRequest_TruthyOptionals(t *testing.T) {

	orden := minimalOrden()
	orden.FolioOrigen = "F-001"
	prioridad := 1
	orden.Prioridad = &prioridad
	zero := 0
	orden.MedioEntrega = &zero // explicit zero counts as absent on the wire
	iva := decimal.RequireFromString("240.00")
	orden.Iva = &iva

	fields := marshalFields(t, NewRegistraOrdenRequest(orden, "TAMIZI", 90646, "c2ln"))

	assert.Equal(t, "F-001", fields["folioOrigen"])
	assert.Equal(t, "1", fields["prioridad"])
	assert.Equal(t, "240", fields["iva"])
	assert.NotContains(t, fields, "medioEntrega")
}

func TestNewRegistraOrdenRequest_OrderValuesWinOverFallbacks(t *testing.T) {

	orden := minimalOrden()
	orden.Empresa = "OTRA"
	operante := 40072
	orden.InstitucionOperante = &operante

	fields := marshalFields(t, NewRegistraOrdenRequest(orden, "TAMIZI", 90646, "c2ln"))

	assert.Equal(t, "OTRA", fields["empresa"])
	assert.Equal(t, "40072", fields["institucionOperante"])
}
