package bundle

import (
	"github.com/smallstep/pkcs7"
)

// Sign produces a detached PKCS#7 (CMS) signature over the manifest bytes,
// DER encoded. The container carries the signer certificate and the
// intermediate so a verifier holding only the root can build the chain;
// the manifest itself is not embedded (detached mode).
//
// The message digest is SHA-1, fixed by the wallet schema version this
// pipeline targets. It is deliberately not configurable.
func Sign(manifest []byte, id *SigningIdentity) ([]byte, error) {
	signed, err := pkcs7.NewSignedData(manifest)
	if err != nil {
		return nil, wrapError(ErrCodeSigningFailed, "failed to initialize signature container", err)
	}
	signed.SetDigestAlgorithm(pkcs7.OIDDigestAlgorithmSHA1)

	if err := signed.AddSigner(id.Certificate, id.PrivateKey, pkcs7.SignerInfoConfig{}); err != nil {
		return nil, wrapError(ErrCodeSigningFailed, "failed to add signer", err)
	}
	signed.AddCertificate(id.Intermediate)
	signed.Detach()

	der, err := signed.Finish()
	if err != nil {
		return nil, wrapError(ErrCodeSigningFailed, "failed to encode signature", err)
	}
	return der, nil
}
