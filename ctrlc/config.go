package ctrlc

import (
	"io"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// Config describes a set of handlers to install, typically loaded from a
// YAML document:
//
//	signals: [interrupt, terminate]
//	ignored_as_handled: false
type Config struct {
	// Signals lists signal names accepted by ParseSignalType.
	Signals []string `yaml:"signals"`

	// IgnoredAsHandled overrides WithIgnoredAsHandled for the installs
	// Apply performs. Nil keeps the registry's setting.
	IgnoredAsHandled *bool `yaml:"ignored_as_handled,omitempty"`
}

// LoadConfig decodes a YAML Config. Unknown fields are rejected.
func LoadConfig(r io.Reader) (*Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var cfg Config
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return nil, WrapOther(errors.Wrap(err, "decode config"))
	}
	return &cfg, nil
}

// SignalTypes resolves the configured names. Unknown names are
// reported as ErrOther and skipped.
func (c *Config) SignalTypes() ([]SignalType, error) {
	var (
		out []SignalType
		err error
	)
	for _, name := range c.Signals {
		sig, ok := ParseSignalType(name)
		if !ok {
			err = multierr.Append(err, WrapOther(errors.Errorf("unknown signal name %q", name)))
			continue
		}
		out = append(out, sig)
	}
	return out, err
}

// Apply installs the configured handlers on r. IgnoredAsHandled applies
// to these installs only; r's own setting is left unchanged.
func (c *Config) Apply(r *Registry) error {
	sigs, err := c.SignalTypes()
	for _, sig := range sigs {
		err = multierr.Append(err, r.setHandler(sig, c.IgnoredAsHandled))
	}
	return err
}
