package keys

import (
	"crypto"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"os"

	"github.com/go-faster/errors"
	"github.com/youmark/pkcs8"
)

// LoadSignerFromFile loads an RSA private key from a PEM file and returns a
// crypto.Signer. The password is required only for ENCRYPTED PRIVATE KEY
// blocks.
func LoadSignerFromFile(path string, password []byte) (crypto.Signer, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read key file")
	}
	return LoadSignerFromPEM(b, password)
}

// LoadSignerFromPEM loads the first usable private key block found in PEM.
// Supported block types: RSA PRIVATE KEY (PKCS#1), PRIVATE KEY (PKCS#8) and
// ENCRYPTED PRIVATE KEY (PKCS#8 with passphrase).
func LoadSignerFromPEM(pemBytes, password []byte) (crypto.Signer, error) {
	for len(pemBytes) > 0 {
		var block *pem.Block
		block, pemBytes = pem.Decode(pemBytes)
		if block == nil {
			break
		}

		switch block.Type {
		case "RSA PRIVATE KEY":
			key, err := x509.ParsePKCS1PrivateKey(block.Bytes)
			if err != nil {
				return nil, errors.Wrap(err, "parse PKCS#1 private key")
			}
			return key, nil

		case "PRIVATE KEY":
			keyAny, err := x509.ParsePKCS8PrivateKey(block.Bytes)
			if err != nil {
				return nil, errors.Wrap(err, "parse PKCS#8 private key")
			}
			return asRSASigner(keyAny)

		case "ENCRYPTED PRIVATE KEY":
			if len(password) == 0 {
				return nil, errors.New("password is required for ENCRYPTED PRIVATE KEY")
			}
			keyAny, err := pkcs8.ParsePKCS8PrivateKey(block.Bytes, password)
			if err != nil {
				return nil, errors.Wrap(err, "decrypt PKCS#8 encrypted private key")
			}
			return asRSASigner(keyAny)
		}
	}

	return nil, errors.New("no private key block found in PEM")
}

// asRSASigner rejects anything but RSA, the gateway only verifies RSA-SHA256.
func asRSASigner(keyAny any) (crypto.Signer, error) {
	key, ok := keyAny.(*rsa.PrivateKey)
	if !ok {
		return nil, errors.Errorf("unsupported key type: %T (expected RSA)", keyAny)
	}
	return key, nil
}
