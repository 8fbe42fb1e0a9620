package bundle_test

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"testing"

	"github.com/passforge/passforge-core/pkg/bundle"
	"github.com/passforge/passforge-core/pkg/pass"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoreCardPass() *pass.Pass {
	card := pass.NewStoreCard()
	card.AddPrimaryField(pass.NewTextField("balance", "42", "Balance"))
	p := pass.NewPass("AB12CD34EF", "pass.com.example.card", "Example Org", "12345", "Example store card", card)
	p.SetBarcode(pass.NewBarcode(pass.BarcodeFormatCode128, "MEMBER-001"))
	p.AddFile("icon.png", []byte{0x89, 0x50, 0x4e, 0x47})
	return p
}

func TestCreateEndToEnd(t *testing.T) {
	id := newTestIdentity(t)

	var buf bytes.Buffer
	require.NoError(t, bundle.Create(newStoreCardPass(), id, &buf))

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	descriptor := readMember(t, zr, "pass.json")
	manifestBytes := readMember(t, zr, "manifest.json")
	signature := readMember(t, zr, "signature")
	icon := readMember(t, zr, "icon.png")

	// The manifest digests match the exact bytes in the archive.
	var manifest map[string]string
	require.NoError(t, json.Unmarshal(manifestBytes, &manifest))
	assert.Equal(t, sha1hex(descriptor), manifest["pass.json"])
	assert.Equal(t, sha1hex(icon), manifest["icon.png"])
	assert.Len(t, manifest, 2)

	assert.NotEmpty(t, signature)

	// The archived descriptor conforms to the schema projection.
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(descriptor, &decoded))
	assert.Equal(t, float64(1), decoded["formatVersion"])
	assert.Contains(t, decoded, "storeCard")
}

func TestCreateDeterministicMembers(t *testing.T) {
	id := newTestIdentity(t)

	run := func() (descriptor, manifest []byte) {
		var buf bytes.Buffer
		require.NoError(t, bundle.Create(newStoreCardPass(), id, &buf))
		zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
		require.NoError(t, err)
		return readMember(t, zr, "pass.json"), readMember(t, zr, "manifest.json")
	}

	d1, m1 := run()
	d2, m2 := run()
	assert.Equal(t, d1, d2, "pass.json must be byte-identical across runs")
	assert.Equal(t, m1, m2, "manifest.json must be byte-identical across runs")
	// Signature bytes may differ between runs; only the stable members matter.
}

func TestAssembleRejectsInvalidPass(t *testing.T) {
	id := newTestIdentity(t)
	p := pass.NewPass("AB12CD34EF", "pass.com.example.card", "Example Org", "12345", "desc", nil)

	_, err := bundle.Assemble(p, id)
	require.Error(t, err)
	assert.Equal(t, bundle.ErrCodeDescriptorInvalid, bundle.GetErrorCode(err))
	assert.ErrorIs(t, err, pass.ErrNoPassInformation)
	assert.True(t, bundle.IsInvariantViolation(err))
}

func TestSealRawDescriptor(t *testing.T) {
	id := newTestIdentity(t)
	descriptor := []byte(`{"formatVersion":1,"serialNumber":"12345"}`)
	assets := map[string][]byte{"icon.png": []byte("icon")}

	artifacts, err := bundle.Seal(descriptor, assets, id)
	require.NoError(t, err)
	assert.Equal(t, descriptor, artifacts.Descriptor)

	var manifest map[string]string
	require.NoError(t, json.Unmarshal(artifacts.Manifest, &manifest))
	assert.Equal(t, sha1hex(descriptor), manifest["pass.json"])
}
