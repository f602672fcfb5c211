// Package firma signs the cadena original for the gateway.
package firma

import (
	"crypto"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"

	"github.com/go-faster/errors"
)

// Cadena signs the UTF-8 bytes of the cadena original with RSA-SHA256 and
// returns the signature in standard base64. The input is deterministic, so a
// failure here is fatal to the attempt and must not be retried with the same
// key.
func Cadena(key crypto.Signer, cadena string) (string, error) {
	digest := sha256.Sum256([]byte(cadena))

	signature, err := key.Sign(rand.Reader, digest[:], crypto.SHA256)
	if err != nil {
		return "", errors.Wrap(err, "sign cadena original")
	}

	return base64.StdEncoding.EncodeToString(signature), nil
}
