// Package config loads the mineral CLI configuration from file, environment
// and flags, validates it and turns it into pipeline options.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/jmylchreest/mineral/pkg/mineral"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config is the CLI configuration.
type Config struct {
	CSS    bool `mapstructure:"css"`
	Style  bool `mapstructure:"style"`
	Script bool `mapstructure:"script"`

	// Named hooks, see mineral.HookNames.
	BeforePruning []string `mapstructure:"before_pruning" validate:"dive,hook"`
	AfterPruning  []string `mapstructure:"after_pruning" validate:"dive,hook"`

	// Replace rules run as before-hooks, after the named ones.
	Replace []ReplaceRule `mapstructure:"replace" validate:"dive"`

	ReportFormat string      `mapstructure:"report_format" validate:"omitempty,oneof=json jsonl yaml"`
	Fetch        FetchConfig `mapstructure:"fetch"`

	// MaxSize caps the input document size, e.g. "10MB". Empty or "0" means
	// unlimited.
	MaxSize string `mapstructure:"max_size" validate:"omitempty,bytesize"`
}

// ReplaceRule is a regexp substitution applied before pruning.
type ReplaceRule struct {
	Pattern     string `mapstructure:"pattern" validate:"required,regexp"`
	Replacement string `mapstructure:"replacement"`
}

// FetchConfig controls how URL inputs are fetched.
type FetchConfig struct {
	Mode         string        `mapstructure:"mode" validate:"omitempty,oneof=static dynamic"`
	Timeout      time.Duration `mapstructure:"timeout" validate:"gte=0"`
	UserAgent    string        `mapstructure:"user_agent"`
	WaitSelector string        `mapstructure:"wait_selector"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("css", false)
	v.SetDefault("style", false)
	v.SetDefault("script", false)
	v.SetDefault("report_format", "json")
	v.SetDefault("fetch.mode", "static")
	v.SetDefault("fetch.timeout", 30*time.Second)
	v.SetDefault("max_size", "")
}

// Load decodes and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints, hook names and replace patterns.
func (c *Config) Validate() error {
	err := newValidator().Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s %s", fieldPath(e), formatValidationError(e)))
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

// Options builds pipeline options. Validate must have succeeded.
func (c *Config) Options() (mineral.Options, error) {
	before, err := c.hooks(c.BeforePruning)
	if err != nil {
		return mineral.Options{}, err
	}
	for _, rule := range c.Replace {
		h, err := mineral.NewReplaceHook(rule.Pattern, rule.Replacement)
		if err != nil {
			return mineral.Options{}, fmt.Errorf("%w: %v", ErrInvalid, err)
		}
		before = append(before, h)
	}

	after, err := c.hooks(c.AfterPruning)
	if err != nil {
		return mineral.Options{}, err
	}

	return mineral.Options{
		CSS:           c.CSS,
		Style:         c.Style,
		Script:        c.Script,
		BeforePruning: mineral.ChainHooks(before...),
		AfterPruning:  mineral.ChainHooks(after...),
	}, nil
}

// MaxSizeBytes returns the input size limit, 0 for unlimited.
func (c *Config) MaxSizeBytes() (uint64, error) {
	s := strings.TrimSpace(c.MaxSize)
	if s == "" || s == "0" {
		return 0, nil
	}
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, fmt.Errorf("%w: max_size %q: %v", ErrInvalid, c.MaxSize, err)
	}
	return n, nil
}

func (c *Config) hooks(names []string) ([]mineral.Hook, error) {
	hooks := make([]mineral.Hook, 0, len(names))
	for _, name := range names {
		h, ok := mineral.LookupHook(name)
		if !ok {
			return nil, fmt.Errorf("%w: unknown hook %q", ErrInvalid, name)
		}
		hooks = append(hooks, h)
	}
	return hooks, nil
}
