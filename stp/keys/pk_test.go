package keys

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/youmark/pkcs8"
)

func rsaPEM(t *testing.T, blockType string, password []byte) ([]byte, *rsa.PrivateKey) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	var der []byte
	switch blockType {
	case "RSA PRIVATE KEY":
		der = x509.MarshalPKCS1PrivateKey(key)
	case "PRIVATE KEY":
		der, err = x509.MarshalPKCS8PrivateKey(key)
		require.NoError(t, err)
	case "ENCRYPTED PRIVATE KEY":
		der, err = pkcs8.MarshalPrivateKey(key, password, nil)
		require.NoError(t, err)
	}

	return pem.EncodeToMemory(&pem.Block{Type: blockType, Bytes: der}), key
}

func TestLoadSignerFromPEM_PKCS1(t *testing.T) {

	pemBytes, key := rsaPEM(t, "RSA PRIVATE KEY", nil)

	signer, err := LoadSignerFromPEM(pemBytes, nil)
	require.NoError(t, err)
	assert.Equal(t, key.Public(), signer.Public())
}

func TestLoadSignerFromPEM_PKCS8(t *testing.T) {

	pemBytes, key := rsaPEM(t, "PRIVATE KEY", nil)

	signer, err := LoadSignerFromPEM(pemBytes, nil)
	require.NoError(t, err)
	assert.Equal(t, key.Public(), signer.Public())
}

func TestLoadSignerFromPEM_EncryptedPKCS8(t *testing.T) {

	pass := []byte("s3cr3t")
	pemBytes, key := rsaPEM(t, "ENCRYPTED PRIVATE KEY", pass)

	signer, err := LoadSignerFromPEM(pemBytes, pass)
	require.NoError(t, err)
	assert.Equal(t, key.Public(), signer.Public())
}

func TestLoadSignerFromPEM_WrongPassword(t *testing.T) {

	pemBytes, _ := rsaPEM(t, "ENCRYPTED PRIVATE KEY", []byte("s3cr3t"))

	_, err := LoadSignerFromPEM(pemBytes, []byte("wrong"))
	assert.Error(t, err)
}

func TestLoadSignerFromPEM_MissingPassword(t *testing.T) {

	pemBytes, _ := rsaPEM(t, "ENCRYPTED PRIVATE KEY", []byte("s3cr3t"))

	_, err := LoadSignerFromPEM(pemBytes, nil)
	assert.ErrorContains(t, err, "password is required")
}

func TestLoadSignerFromPEM_NoKeyBlock(t *testing.T) {

	_, err := LoadSignerFromPEM([]byte("not a pem"), nil)
	assert.ErrorContains(t, err, "no private key block")
}

func TestLoadSignerFromPEM_RejectsNonRSA(t *testing.T) {

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	der, err := x509.MarshalPKCS8PrivateKey(key)
	require.NoError(t, err)
	pemBytes := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der})

	_, err = LoadSignerFromPEM(pemBytes, nil)
	assert.ErrorContains(t, err, "unsupported key type")
}

func TestLoadSignerFromFile(t *testing.T) {

	pemBytes, key := rsaPEM(t, "PRIVATE KEY", nil)

	path := t.TempDir() + "/test-sign.key"
	require.NoError(t, os.WriteFile(path, pemBytes, 0o600))

	signer, err := LoadSignerFromFile(path, nil)
	require.NoError(t, err)
	assert.Equal(t, key.Public(), signer.Public())

	_, err = LoadSignerFromFile(path+".missing", nil)
	assert.Error(t, err)
}
