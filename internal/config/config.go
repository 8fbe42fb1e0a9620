// Package config loads CLI defaults from the environment. Flags always
// take precedence; the environment just saves retyping the identity paths
// on every invocation.
package config

import (
	"fmt"

	env "github.com/Netflix/go-env"
)

// Environment holds the environment-provided defaults.
type Environment struct {
	// Signing identity material.
	CertificatePath  string `env:"PASSFORGE_CERT"`
	PrivateKeyPath   string `env:"PASSFORGE_KEY"`
	KeyPassword      string `env:"PASSFORGE_KEY_PASSWORD"`
	IntermediatePath string `env:"PASSFORGE_WWDR"`

	LogLevel string `env:"PASSFORGE_LOG_LEVEL,default=info"`
}

// Load reads the environment into an Environment struct.
func Load() (*Environment, error) {
	var cfg Environment
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return nil, fmt.Errorf("failed to load environment configuration: %w", err)
	}
	return &cfg, nil
}
