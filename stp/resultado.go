package stp

import (
	"fmt"

	"github.com/go-faster/jx"

	"github.com/alapierre/go-stp-client/stp/model"
)

// Business error codes the gateway documents for orden registration.
var errorDescriptions = map[int]string{
	0:  "Error general",
	1:  "Firma inválida",
	2:  "Empresa inválida",
	3:  "Institución contraparte inválida",
	4:  "Cuenta ordenante inválida",
	5:  "Cuenta beneficiario inválida",
	6:  "Tipo de cuenta inválido",
	7:  "Monto inválido",
	8:  "Fecha de operación inválida",
	9:  "Clave de rastreo duplicada",
	10: "RFC/CURP inválido",
}

const (
	msgInvalidResponse = "Respuesta inválida del servidor"
	msgConnectionError = "Error de conexión con el servidor"
)

// interpretRespuesta classifies a 2xx body. An identifier with more than
// three digits is the gateway-assigned folio, anything else is a business
// error code. The >999 boundary is the gateway's contract, zero and negative
// identifiers land in the error branch on purpose.
func interpretRespuesta(body []byte) *model.RegistroResult {
	id, ok := resultadoID(body)
	if !ok {
		return &model.RegistroResult{
			Message:     msgInvalidResponse,
			RawResponse: string(body),
		}
	}

	if id > 999 {
		return &model.RegistroResult{
			Success:     true,
			FolioStp:    id,
			RawResponse: string(body),
		}
	}

	code := int(id)
	msg, known := errorDescriptions[code]
	if !known {
		msg = fmt.Sprintf("Error desconocido (código: %d)", code)
	}
	return &model.RegistroResult{
		ErrorCode:   &code,
		Message:     msg,
		RawResponse: string(body),
	}
}

// resultadoID digs the numeric identifier out of the response body,
// preferring resultado.id over a top-level id.
func resultadoID(body []byte) (int64, bool) {
	var nested, topLevel *int64

	d := jx.DecodeBytes(body)
	err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "resultado":
			if d.Next() != jx.Object {
				return d.Skip()
			}
			return d.Obj(func(d *jx.Decoder, key string) error {
				if key == "id" && d.Next() == jx.Number {
					v, err := d.Int64()
					if err != nil {
						return err
					}
					nested = &v
					return nil
				}
				return d.Skip()
			})
		case "id":
			if d.Next() == jx.Number {
				v, err := d.Int64()
				if err != nil {
					return err
				}
				topLevel = &v
				return nil
			}
			return d.Skip()
		default:
			return d.Skip()
		}
	})
	if err != nil {
		return 0, false
	}

	if nested != nil {
		return *nested, true
	}
	if topLevel != nil {
		return *topLevel, true
	}
	return 0, false
}
