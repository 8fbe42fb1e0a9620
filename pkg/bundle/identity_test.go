package bundle_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"testing"
	"time"

	"github.com/passforge/passforge-core/pkg/bundle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/youmark/pkcs8"
)

const testPassphrase = "correct horse battery staple"

// testPEM is self-signed identity material generated for a test.
type testPEM struct {
	certPEM         []byte
	keyPEM          []byte
	passphrase      string
	intermediatePEM []byte
}

func selfSignedCert(t *testing.T, cn string, key *rsa.PrivateKey) []byte {
	t.Helper()
	template := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: cn},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(24 * time.Hour),
		KeyUsage:     x509.KeyUsageDigitalSignature | x509.KeyUsageCertSign,
	}
	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	require.NoError(t, err)
	return pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
}

// newTestPEM generates a signing certificate with an encrypted legacy PEM
// key, plus an unrelated self-signed intermediate.
func newTestPEM(t *testing.T) testPEM {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	encrypted, err := x509.EncryptPEMBlock( //nolint:staticcheck // mirrors the key format signing identities ship in
		rand.Reader, "RSA PRIVATE KEY", x509.MarshalPKCS1PrivateKey(key), []byte(testPassphrase), x509.PEMCipherAES256)
	require.NoError(t, err)

	intermediateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	return testPEM{
		certPEM:         selfSignedCert(t, "Pass Type ID: pass.com.example.card", key),
		keyPEM:          pem.EncodeToMemory(encrypted),
		passphrase:      testPassphrase,
		intermediatePEM: selfSignedCert(t, "Test Intermediate CA", intermediateKey),
	}
}

func newTestIdentity(t *testing.T) *bundle.SigningIdentity {
	t.Helper()
	material := newTestPEM(t)
	id, err := bundle.LoadSigningIdentity(material.certPEM, material.keyPEM, material.passphrase, material.intermediatePEM)
	require.NoError(t, err)
	return id
}

func TestLoadSigningIdentity(t *testing.T) {
	id := newTestIdentity(t)
	assert.Equal(t, "Pass Type ID: pass.com.example.card", id.Certificate.Subject.CommonName)
	assert.Equal(t, "Test Intermediate CA", id.Intermediate.Subject.CommonName)
	_, ok := id.PrivateKey.(*rsa.PrivateKey)
	assert.True(t, ok, "expected an RSA private key")
}

func TestLoadSigningIdentityWrongPassphrase(t *testing.T) {
	material := newTestPEM(t)
	_, err := bundle.LoadSigningIdentity(material.certPEM, material.keyPEM, "wrong", material.intermediatePEM)
	require.Error(t, err)
	assert.ErrorIs(t, err, bundle.ErrIdentityMalformed)
	assert.Equal(t, bundle.ErrCodeIdentityMalformed, bundle.GetErrorCode(err))
}

func TestLoadSigningIdentityGarbage(t *testing.T) {
	material := newTestPEM(t)

	_, err := bundle.LoadSigningIdentity([]byte("not pem"), material.keyPEM, material.passphrase, material.intermediatePEM)
	assert.ErrorIs(t, err, bundle.ErrIdentityMalformed)

	_, err = bundle.LoadSigningIdentity(material.certPEM, []byte("not pem"), material.passphrase, material.intermediatePEM)
	assert.ErrorIs(t, err, bundle.ErrIdentityMalformed)

	// A key handed over where a certificate belongs is malformed identity
	// material, not a certificate.
	_, err = bundle.LoadSigningIdentity(material.keyPEM, material.keyPEM, material.passphrase, material.intermediatePEM)
	assert.ErrorIs(t, err, bundle.ErrIdentityMalformed)
}

func TestLoadSigningIdentityEncryptedPKCS8(t *testing.T) {
	material := newTestPEM(t)

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := pkcs8.MarshalPrivateKey(key, []byte(testPassphrase), nil)
	require.NoError(t, err)
	keyPEM := pem.EncodeToMemory(&pem.Block{Type: "ENCRYPTED PRIVATE KEY", Bytes: der})

	id, err := bundle.LoadSigningIdentity(material.certPEM, keyPEM, testPassphrase, material.intermediatePEM)
	require.NoError(t, err)
	loaded, ok := id.PrivateKey.(*rsa.PrivateKey)
	require.True(t, ok)
	assert.True(t, key.Equal(loaded))

	_, err = bundle.LoadSigningIdentity(material.certPEM, keyPEM, "wrong", material.intermediatePEM)
	require.Error(t, err)
	assert.ErrorIs(t, err, bundle.ErrIdentityMalformed)
}

func TestLoadSigningIdentityUnencryptedPKCS8(t *testing.T) {
	material := newTestPEM(t)

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKCS8PrivateKey(key)
	require.NoError(t, err)
	keyPEM := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der})

	id, err := bundle.LoadSigningIdentity(material.certPEM, keyPEM, "", material.intermediatePEM)
	require.NoError(t, err)
	_, ok := id.PrivateKey.(*rsa.PrivateKey)
	assert.True(t, ok)
}
