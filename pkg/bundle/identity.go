package bundle

import (
	"crypto"
	"crypto/x509"
	"encoding/pem"
	"fmt"

	"github.com/youmark/pkcs8"
)

// SigningIdentity holds the parsed signing material: the pass type
// certificate, its private key, and the intermediate certificate that
// chains the signer up to the root verifiers already trust.
type SigningIdentity struct {
	Certificate  *x509.Certificate
	PrivateKey   crypto.PrivateKey
	Intermediate *x509.Certificate
}

// LoadSigningIdentity parses PEM-encoded signing material. The private key
// may be an encrypted legacy PEM block, an encrypted PKCS#8 block, or an
// unencrypted PKCS#8/PKCS#1/SEC1 key; passphrase is only consulted for the
// encrypted forms. All failures carry the IDENTITY_MALFORMED code.
func LoadSigningIdentity(certPEM, keyPEM []byte, passphrase string, intermediatePEM []byte) (*SigningIdentity, error) {
	cert, err := parseCertificatePEM(certPEM)
	if err != nil {
		return nil, wrapError(ErrCodeIdentityMalformed, "signing certificate", err)
	}
	intermediate, err := parseCertificatePEM(intermediatePEM)
	if err != nil {
		return nil, wrapError(ErrCodeIdentityMalformed, "intermediate certificate", err)
	}
	key, err := parsePrivateKeyPEM(keyPEM, passphrase)
	if err != nil {
		return nil, wrapError(ErrCodeIdentityMalformed, "private key", err)
	}
	return &SigningIdentity{
		Certificate:  cert,
		PrivateKey:   key,
		Intermediate: intermediate,
	}, nil
}

// parseCertificatePEM returns the first certificate in the PEM input.
func parseCertificatePEM(data []byte) (*x509.Certificate, error) {
	for {
		var block *pem.Block
		block, data = pem.Decode(data)
		if block == nil {
			return nil, fmt.Errorf("no certificate block found in PEM input")
		}
		if block.Type != "CERTIFICATE" {
			continue
		}
		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("failed to parse certificate: %w", err)
		}
		return cert, nil
	}
}

func parsePrivateKeyPEM(data []byte, passphrase string) (crypto.PrivateKey, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("no PEM block found in key input")
	}

	switch {
	case x509.IsEncryptedPEMBlock(block): //nolint:staticcheck // legacy encrypted PEM keys are still the common export format
		der, err := x509.DecryptPEMBlock(block, []byte(passphrase)) //nolint:staticcheck
		if err != nil {
			return nil, fmt.Errorf("failed to decrypt private key: %w", err)
		}
		return parsePrivateKeyDER(der)

	case block.Type == "ENCRYPTED PRIVATE KEY":
		key, err := pkcs8.ParsePKCS8PrivateKey(block.Bytes, []byte(passphrase))
		if err != nil {
			return nil, fmt.Errorf("failed to decrypt PKCS#8 private key: %w", err)
		}
		return key, nil

	default:
		return parsePrivateKeyDER(block.Bytes)
	}
}

func parsePrivateKeyDER(der []byte) (crypto.PrivateKey, error) {
	if key, err := x509.ParsePKCS8PrivateKey(der); err == nil {
		return key, nil
	}
	if key, err := x509.ParsePKCS1PrivateKey(der); err == nil {
		return key, nil
	}
	if key, err := x509.ParseECPrivateKey(der); err == nil {
		return key, nil
	}
	return nil, fmt.Errorf("unsupported private key encoding")
}
