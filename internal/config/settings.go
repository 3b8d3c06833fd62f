package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Settings holds the runtime options read from the environment.
// CLI flags take precedence over these values; see cmd/go-assistant.
type Settings struct {
	// SnapshotFile is the path of the persisted address book.
	SnapshotFile string `env:"ASSISTANT_FILE"`

	// Language selects the interface language (ISO 639-1).
	Language string `env:"ASSISTANT_LANG"`

	// HTTPUser and HTTPPass provide optional basic auth credentials for
	// importing a vCard stream from an http(s) URL.
	HTTPUser string `env:"ASSISTANT_HTTP_USER"`
	HTTPPass string `env:"ASSISTANT_HTTP_PASS"`
}

// LoadSettings parses the environment and applies defaults for unset values.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("%s: %w", ErrSettingsParse, err)
	}

	if s.SnapshotFile == "" {
		s.SnapshotFile = DefaultSnapshotFile
	}
	if s.Language == "" {
		s.Language = DefaultLanguage
	}

	return s, nil
}
