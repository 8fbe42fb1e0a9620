package bundle

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
)

// Archive member names fixed by the bundle contract.
const (
	SignatureName = "signature"
	ManifestName  = "manifest.json"
)

// Artifacts is the complete output of the pipeline stages prior to
// archiving: everything needed to write the bundle.
type Artifacts struct {
	Descriptor []byte
	Manifest   []byte
	Signature  []byte
	Assets     map[string][]byte
}

// WriteArchive writes the bundle to w: signature, manifest, descriptor,
// then the assets in name order. Member order carries no meaning in the
// format; sorting just keeps the output reproducible.
func WriteArchive(w io.Writer, a *Artifacts) error {
	zw := zip.NewWriter(w)

	members := []struct {
		name string
		data []byte
	}{
		{SignatureName, a.Signature},
		{ManifestName, a.Manifest},
		{DescriptorName, a.Descriptor},
	}
	names := make([]string, 0, len(a.Assets))
	for name := range a.Assets {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		members = append(members, struct {
			name string
			data []byte
		}{name, a.Assets[name]})
	}

	for _, member := range members {
		f, err := zw.Create(member.name)
		if err != nil {
			return wrapError(ErrCodeArchiveWrite, fmt.Sprintf("failed to create member %s", member.name), err)
		}
		if _, err := f.Write(member.data); err != nil {
			return wrapError(ErrCodeArchiveWrite, fmt.Sprintf("failed to write member %s", member.name), err)
		}
	}
	if err := zw.Close(); err != nil {
		return wrapError(ErrCodeArchiveWrite, "failed to finalize archive", err)
	}
	return nil
}

// WriteArchiveFile materializes the bundle at path. The archive is staged
// in a temporary file next to the target and renamed into place, so a
// failure never leaves a partial bundle behind.
func WriteArchiveFile(path string, a *Artifacts) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return wrapError(ErrCodeArchiveWrite, "failed to create temporary file", err)
	}
	defer os.Remove(tmp.Name())

	if err := WriteArchive(tmp, a); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return wrapError(ErrCodeArchiveWrite, "failed to close temporary file", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return wrapError(ErrCodeArchiveWrite, "failed to move archive into place", err)
	}
	return nil
}
