package audit

import (
	"fmt"

	"github.com/spf13/viper"
)

// Settings contains the tunable detection lists used by the scanners.
// The defaults implement the stock heuristics; hosts may extend them via a
// settings file.
type Settings struct {
	// SensitiveFlagNames are matched (substring, case-insensitive) against
	// flag names to pair a flag with a secret value.
	SensitiveFlagNames []string `mapstructure:"sensitive_flags"`
	// HighRiskVerbs are matched (substring) against granted capabilities.
	HighRiskVerbs []string `mapstructure:"high_risk_verbs"`
	// DangerousCommands are literal substrings flagged in launch commands.
	DangerousCommands []string `mapstructure:"dangerous_commands"`
	// InjectionTokens are shell metacharacters flagged in launch commands.
	InjectionTokens []string `mapstructure:"injection_tokens"`
	// MaxCapabilities is the grant count above which an INFO issue fires.
	MaxCapabilities int `mapstructure:"max_capabilities"`
}

// DefaultSettings returns the stock detection lists.
func DefaultSettings() Settings {
	return Settings{
		SensitiveFlagNames: []string{
			"key", "apikey", "api-key", "token", "secret", "password",
			"credential", "auth", "authorization", "access-token", "refresh-token",
		},
		HighRiskVerbs: []string{
			"admin", "delete", "write", "execute", "deploy", "manage",
			"create", "update", "remove", "modify", "execute_sql", "execute_query",
		},
		DangerousCommands: []string{"rm", "sudo", "chmod", "chown", "eval"},
		InjectionTokens:   []string{"$", "`", ";"},
		MaxCapabilities:   10,
	}
}

// LoadSettings reads a settings file and overlays it onto the defaults.
// Only keys present in the file override their default.
func LoadSettings(profilePath string) (Settings, error) {
	v := viper.New()
	v.SetConfigFile(profilePath)

	if err := v.ReadInConfig(); err != nil {
		return Settings{}, fmt.Errorf("failed to read settings file: %w", err)
	}

	cfg := DefaultSettings()
	if err := v.Unmarshal(&cfg); err != nil {
		return Settings{}, fmt.Errorf("failed to parse audit settings: %w", err)
	}
	return cfg, nil
}
