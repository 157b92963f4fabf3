package commands

import (
	"fmt"

	"github.com/de-tools/conn-audit/pkg/services/audit"
	"github.com/de-tools/conn-audit/pkg/services/config"
	"github.com/de-tools/conn-audit/pkg/services/registry"
	"github.com/spf13/cobra"
)

// configInput carries the flags every config-reading command shares.
type configInput struct {
	configPath   string
	profile      string
	settingsPath string
	registryPath string
}

func (in *configInput) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&in.configPath, "config", "", "Path to the connector config file")
	cmd.Flags().StringVar(&in.profile, "profile", "", "Named profile from the registry file")
	cmd.Flags().StringVar(&in.settingsPath, "settings", "", "Path to an audit settings file (optional)")
}

// store resolves the --config / --profile flags to a config store. An
// explicit path wins over a profile lookup.
func (in *configInput) store() (*config.Store, error) {
	if in.configPath != "" {
		return config.NewStore(in.configPath), nil
	}
	if in.profile == "" {
		return nil, fmt.Errorf("either --config or --profile is required")
	}

	reg, err := registry.NewProfileRegistry(in.registryPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile registry: %w", err)
	}
	profile, err := reg.GetProfile(in.profile)
	if err != nil {
		return nil, err
	}
	return config.NewStore(profile.Path), nil
}

func (in *configInput) settings() (audit.Settings, error) {
	if in.settingsPath == "" {
		return audit.DefaultSettings(), nil
	}
	return audit.LoadSettings(in.settingsPath)
}
