package checks

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/udtree/pkg/errors"
)

// Config controls which rules a Checker applies.
// The zero value disables everything useful - start from Default.
type Config struct {
	// Disable lists bug codes to skip, e.g. ["punct-child", "no-NumType"].
	Disable []string `toml:"disable"`

	// NoChain lists relations that must not connect a parent and child
	// carrying the same label.
	NoChain []string `toml:"no_chain"`

	// LeftHeaded lists relations whose head must precede the dependent.
	LeftHeaded []string `toml:"left_headed"`

	// RequiredFeature maps a UPOS tag to a morphological feature that must
	// be present on nodes carrying that tag.
	RequiredFeature map[string]string `toml:"required_feature"`
}

// Default returns the standard UD v2 rule configuration.
func Default() Config {
	return Config{
		NoChain:    []string{"aux", "fixed", "appos"},
		LeftHeaded: []string{"flat", "fixed", "conj", "appos"},
		RequiredFeature: map[string]string{
			"PRON": "PronType",
			"DET":  "PronType",
			"NUM":  "NumType",
			"VERB": "VerbForm",
		},
	}
}

// LoadConfig reads a TOML rule configuration, applying it on top of the
// defaults: keys absent from the file keep their default value.
func LoadConfig(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return cfg, errors.Wrap(errors.ErrCodeInternal, err, "open %s", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), errors.Wrap(errors.ErrCodeInvalidRuleset, err, "parsing %s", path)
	}
	return cfg, nil
}
