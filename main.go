package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/alapierre/go-stp-client/stp"
	"github.com/alapierre/go-stp-client/stp/model"
	"github.com/alapierre/go-stp-client/stp/util"
)

func main() {

	logrus.SetLevel(logrus.DebugLevel)
	_ = godotenv.Load()

	client, err := stp.New(stp.Config{
		Environment:   stp.Demo,
		Empresa:       util.GetEnvOrFailed("STP_EMPRESA"),
		KeyPath:       util.GetEnvOrFailed("STP_KEY_FILE"),
		KeyPassphrase: os.Getenv("STP_KEY_PASS"),
	})
	if err != nil {
		panic(err)
	}

	orden := &model.OrdenPago{
		InstitucionContraparte: 40012,
		ClaveRastreo:           fmt.Sprintf("CR%d", time.Now().Unix()),
		Monto:                  decimal.RequireFromString("0.01"),
		TipoPago:               1,
		TipoCuentaOrdenante:    40,
		NombreOrdenante:        "EMPRESA SA DE CV",
		CuentaOrdenante:        "646180110400000007",
		RfcCurpOrdenante:       "EMP0102034X5",
		TipoCuentaBeneficiario: 40,
		NombreBeneficiario:     "JUAN PEREZ",
		CuentaBeneficiario:     "012180001234567895",
		RfcCurpBeneficiario:    "ND",
		ConceptoPago:           "Prueba",
		ReferenciaNumerica:     1234567,
		Longitud:               "-99.1332",
		Latitud:                "19.4326",
	}

	if err := orden.Validate(); err != nil {
		panic(err)
	}

	res, err := client.RegistraOrden(context.Background(), orden)
	if err != nil {
		panic(err)
	}

	if res.Success {
		fmt.Println("folio STP:", res.FolioStp)
	} else {
		fmt.Println("orden rechazada:", res.Message)
	}
}
