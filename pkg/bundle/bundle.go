// Package bundle implements the signing pipeline that turns a populated
// pass into a portable, signed wallet bundle: descriptor projection,
// manifest hashing, detached PKCS#7 signing, and archive assembly.
//
// The pipeline is synchronous and runs entirely in memory; nothing is
// written to the output sink until every prior stage has succeeded.
//
// Usage:
//
//	id, err := bundle.LoadSigningIdentity(certPEM, keyPEM, passphrase, wwdrPEM)
//	if err != nil { ... }
//	err = bundle.CreateFile(p, id, "membership.pkpass")
package bundle

import (
	"errors"
	"io"

	"github.com/passforge/passforge-core/pkg/pass"
)

// Assemble runs the in-memory pipeline stages for a pass: project the
// descriptor, hash it and the assets into the manifest, and sign the
// manifest. Schema invariant violations surface with the
// DESCRIPTOR_INVALID code before anything is signed.
func Assemble(p *pass.Pass, id *SigningIdentity) (*Artifacts, error) {
	descriptor, err := p.Descriptor()
	if err != nil {
		return nil, wrapError(ErrCodeDescriptorInvalid, "failed to project descriptor", err)
	}
	return Seal(descriptor, p.Files(), id)
}

// Seal runs manifest and signature generation over an already-projected
// descriptor and asset set. This is the entry point for signing a raw
// pass directory where pass.json was authored out of band.
func Seal(descriptor []byte, assets map[string][]byte, id *SigningIdentity) (*Artifacts, error) {
	manifest, err := BuildManifest(descriptor, assets).Bytes()
	if err != nil {
		return nil, wrapError(ErrCodeManifestEncoding, "failed to serialize manifest", err)
	}
	signature, err := Sign(manifest, id)
	if err != nil {
		return nil, err
	}
	return &Artifacts{
		Descriptor: descriptor,
		Manifest:   manifest,
		Signature:  signature,
		Assets:     assets,
	}, nil
}

// Create assembles the bundle for a pass and writes it to w.
func Create(p *pass.Pass, id *SigningIdentity, w io.Writer) error {
	artifacts, err := Assemble(p, id)
	if err != nil {
		return err
	}
	return WriteArchive(w, artifacts)
}

// CreateFile assembles the bundle for a pass and writes it atomically to
// the named file.
func CreateFile(p *pass.Pass, id *SigningIdentity, path string) error {
	artifacts, err := Assemble(p, id)
	if err != nil {
		return err
	}
	return WriteArchiveFile(path, artifacts)
}

// IsInvariantViolation reports whether err is a schema invariant violation
// raised by the pass model during projection.
func IsInvariantViolation(err error) bool {
	return errors.Is(err, ErrDescriptorInvalid) ||
		errors.Is(err, pass.ErrNoPassInformation) ||
		errors.Is(err, pass.ErrMissingField) ||
		errors.Is(err, pass.ErrInvalidBarcode) ||
		errors.Is(err, pass.ErrOrphanAuthToken)
}
