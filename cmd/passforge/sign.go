package main

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/passforge/passforge-core/pkg/bundle"
	"github.com/spf13/cobra"
)

var (
	signCertPath string
	signKeyPath  string
	signPassword string
	signWWDRPath string
	signOutput   string
)

var signCmd = &cobra.Command{
	Use:   "sign <directory>",
	Short: "Seal a raw pass directory into a signed bundle",
	Long: `Sign the contents of a pass directory and write a .pkpass archive.

The directory must contain pass.json; every other regular file is bundled
as an asset under its directory-relative name. Identity material can be
given by flags or the PASSFORGE_CERT, PASSFORGE_KEY, PASSFORGE_KEY_PASSWORD
and PASSFORGE_WWDR environment variables.`,
	Example: `  passforge sign mypass --cert pass.pem --key key.pem --wwdr wwdr.pem -o mypass.pkpass`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		dir := args[0]

		id, err := loadIdentity()
		if err != nil {
			return err
		}

		descriptor, err := os.ReadFile(filepath.Join(dir, "pass.json"))
		if err != nil {
			return fmt.Errorf("failed to read descriptor: %w", err)
		}
		assets, err := collectAssets(dir)
		if err != nil {
			return err
		}

		artifacts, err := bundle.Seal(descriptor, assets, id)
		if err != nil {
			return err
		}

		out := signOutput
		if out == "" {
			out = strings.TrimSuffix(filepath.Clean(dir), string(filepath.Separator)) + ".pkpass"
		}
		if err := bundle.WriteArchiveFile(out, artifacts); err != nil {
			return err
		}

		appLogger.Info("bundle written",
			slog.String("path", out),
			slog.Int("assets", len(assets)),
		)
		return nil
	},
}

// collectAssets gathers every regular file under dir except the descriptor
// and signing artifacts from a previous run. Names are directory-relative
// with forward slashes, so localization subdirectories survive intact.
func collectAssets(dir string) (map[string][]byte, error) {
	assets := make(map[string][]byte)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		switch rel {
		case "pass.json", "manifest.json", "signature":
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read asset %s: %w", rel, err)
		}
		assets[rel] = data
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect assets: %w", err)
	}
	return assets, nil
}

// loadIdentity resolves identity paths from flags with environment
// fallback and parses the PEM material.
func loadIdentity() (*bundle.SigningIdentity, error) {
	certPath := firstNonEmpty(signCertPath, cfg.CertificatePath)
	keyPath := firstNonEmpty(signKeyPath, cfg.PrivateKeyPath)
	wwdrPath := firstNonEmpty(signWWDRPath, cfg.IntermediatePath)
	password := firstNonEmpty(signPassword, cfg.KeyPassword)

	if certPath == "" || keyPath == "" || wwdrPath == "" {
		return nil, fmt.Errorf("signing identity incomplete: certificate, key and intermediate paths are required")
	}

	certPEM, err := os.ReadFile(certPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read certificate: %w", err)
	}
	keyPEM, err := os.ReadFile(keyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read private key: %w", err)
	}
	wwdrPEM, err := os.ReadFile(wwdrPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read intermediate certificate: %w", err)
	}
	return bundle.LoadSigningIdentity(certPEM, keyPEM, password, wwdrPEM)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func init() {
	signCmd.Flags().StringVar(&signCertPath, "cert", "", "Path to the PEM signing certificate")
	signCmd.Flags().StringVar(&signKeyPath, "key", "", "Path to the PEM private key")
	signCmd.Flags().StringVar(&signPassword, "password", "", "Private key passphrase")
	signCmd.Flags().StringVar(&signWWDRPath, "wwdr", "", "Path to the PEM intermediate certificate")
	signCmd.Flags().StringVarP(&signOutput, "output", "o", "", "Output bundle path (default: <directory>.pkpass)")
}
