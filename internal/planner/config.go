package planner

import (
	"os"
	"strconv"

	"github.com/alexanderramin/tempo/internal/llm"
)

// Config controls how strictly model replies are treated.
type Config struct {
	// StrictEntries rejects replies whose entries miss any of the four keys.
	StrictEntries bool
	// LenientJSON also strips comments and trailing commas before decoding.
	LenientJSON bool
}

// LoadConfig reads TEMPO_STRICT_ENTRIES and TEMPO_LENIENT_JSON.
func LoadConfig() Config {
	var cfg Config
	if v := os.Getenv("TEMPO_STRICT_ENTRIES"); v != "" {
		cfg.StrictEntries, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("TEMPO_LENIENT_JSON"); v != "" {
		cfg.LenientJSON, _ = strconv.ParseBool(v)
	}
	return cfg
}

// Options converts cfg to service options.
func (c Config) Options() []Option {
	var opts []Option
	if c.StrictEntries {
		opts = append(opts, WithStrictEntries())
	}
	if c.LenientJSON {
		opts = append(opts, WithRules(llm.LenientRules...))
	}
	return opts
}
