package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/passforge/passforge-core/pkg/pass"
	"github.com/spf13/cobra"
)

var (
	newSerial      string
	newTeamID      string
	newPassTypeID  string
	newOrg         string
	newDescription string
)

var newCmd = &cobra.Command{
	Use:   "new <directory>",
	Short: "Scaffold a raw pass directory",
	Long: `Create a pass directory containing an example descriptor (pass.json).
Edit the descriptor, drop in image assets, then seal it with "passforge sign".`,
	Example: `  # Scaffold with a generated serial number
  passforge new mypass

  # Scaffold with explicit identifiers
  passforge new mypass --team-id AB12CD34EF --pass-type-id pass.com.example.card`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		dir := args[0]

		serial := newSerial
		if serial == "" {
			serial = uuid.NewString()
		}

		card := pass.NewStoreCard()
		card.AddPrimaryField(pass.NewTextField("balance", "42", "Balance"))

		p := pass.NewPass(newTeamID, newPassTypeID, newOrg, serial, newDescription, card)
		descriptor, err := p.Descriptor()
		if err != nil {
			return fmt.Errorf("failed to build example descriptor: %w", err)
		}

		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create pass directory: %w", err)
		}
		target := filepath.Join(dir, "pass.json")
		if err := os.WriteFile(target, descriptor, 0644); err != nil {
			return fmt.Errorf("failed to write descriptor: %w", err)
		}

		appLogger.Info("pass directory created",
			slog.String("path", dir),
			slog.String("serialNumber", serial),
		)
		return nil
	},
}

func init() {
	newCmd.Flags().StringVar(&newSerial, "serial", "", "Serial number (default: generated UUID)")
	newCmd.Flags().StringVar(&newTeamID, "team-id", "AB12CD34EF", "Team identifier")
	newCmd.Flags().StringVar(&newPassTypeID, "pass-type-id", "pass.com.example.card", "Pass type identifier")
	newCmd.Flags().StringVar(&newOrg, "organization", "Example Org", "Organization name")
	newCmd.Flags().StringVar(&newDescription, "description", "Example store card", "Pass description")
}
