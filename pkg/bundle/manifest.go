package bundle

import (
	"crypto/sha1" //nolint:gosec // digest algorithm is fixed by the wallet schema
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/gowebpki/jcs"
)

// DescriptorName is the archive member name of the descriptor JSON.
const DescriptorName = "pass.json"

// Manifest maps every archive member name to the lowercase hex SHA-1 of
// its exact byte content. The manifest is itself the signed artifact.
type Manifest map[string]string

// BuildManifest hashes the descriptor and every asset. The descriptor is
// hashed over the exact bytes that will be written as pass.json; any
// re-encoding between hashing and archiving would break verification.
func BuildManifest(descriptor []byte, assets map[string][]byte) Manifest {
	m := make(Manifest, len(assets)+1)
	m[DescriptorName] = digest(descriptor)
	for name, data := range assets {
		m[name] = digest(data)
	}
	return m
}

// Bytes serializes the manifest to canonical JSON.
func (m Manifest) Bytes() ([]byte, error) {
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal manifest: %w", err)
	}
	canonical, err := jcs.Transform(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to canonicalize manifest: %w", err)
	}
	return canonical, nil
}

func digest(data []byte) string {
	sum := sha1.Sum(data) //nolint:gosec
	return hex.EncodeToString(sum[:])
}
