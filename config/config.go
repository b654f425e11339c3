// Package config loads sentsem settings from a TOML file.
//
// Values are resolved in order: defaults, file, environment, command line
// flags. Flags are applied by the caller.
package config

import (
	"bytes"
	"os"
	"runtime"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"

	"github.com/revelaction/sentsem/render"
	"github.com/revelaction/sentsem/similarity"
)

const (
	EnvLexicon = "SENTSEM_LEXICON_PATH"
	EnvConfig  = "SENTSEM_CONFIG"
	EnvWorkers = "SENTSEM_WORKERS"

	TaggerProse   = "prose"
	TaggerLexical = "lexical"
)

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	// Lexicon is the path of the lexicon: a WordNet dict directory, a JSON
	// file or directory, or a SQLite database.
	Lexicon  string `toml:"lexicon"`
	Tagger   string `toml:"tagger"`
	Fallback string `toml:"fallback"`
	Workers  int    `toml:"workers"`
	Format   string `toml:"format"`
	Log      Log    `toml:"log"`
}

type Log struct {
	// debug, info, warn or error
	Level string `toml:"level"`
}

func Default() Config {
	return Config{
		Tagger:   TaggerProse,
		Fallback: similarity.FallbackOwn.String(),
		Workers:  runtime.NumCPU(),
		Format:   render.Defaultformat,
		Log:      Log{Level: "warn"},
	}
}

// Load reads the TOML file at path over the defaults and applies the
// environment. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, errors.Wrapf(err, "reading config %s", path)
		}

		if err := Decode(data, &cfg); err != nil {
			return cfg, errors.Wrapf(err, "config %s", path)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

// Decode unmarshals TOML data into cfg. Unknown keys are an error.
func Decode(data []byte, cfg *Config) error {
	d := toml.NewDecoder(bytes.NewReader(data))
	d.DisallowUnknownFields()
	if err := d.Decode(cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return errors.Wrapf(ErrInvalid, "line %d column %d: %s", row, col, derr.Error())
		}

		var serr *toml.StrictMissingError
		if errors.As(err, &serr) {
			return errors.Wrapf(ErrInvalid, "%s", serr.String())
		}

		return errors.Wrap(ErrInvalid, err.Error())
	}

	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvLexicon); ok && v != "" {
		c.Lexicon = v
	}

	if v, ok := lookup(EnvWorkers); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(ErrInvalid, "%s: %q is not a number", EnvWorkers, v)
		}
		c.Workers = n
	}

	return nil
}

// Validate checks the enumerated settings.
func (c Config) Validate() error {
	switch c.Tagger {
	case TaggerProse, TaggerLexical:
	default:
		return errors.Wrapf(ErrInvalid, "tagger %q, expected %s or %s", c.Tagger, TaggerProse, TaggerLexical)
	}

	if _, ok := similarity.ParseFallback(c.Fallback); !ok {
		return errors.Wrapf(ErrInvalid, "fallback %q, expected own or first", c.Fallback)
	}

	if !render.IsSupported(c.Format) {
		return errors.Wrapf(ErrInvalid, "format %q, expected one of %v", c.Format, render.SupportedFormats())
	}

	if c.Workers < 1 {
		return errors.Wrapf(ErrInvalid, "workers %d, expected at least 1", c.Workers)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.Wrapf(ErrInvalid, "log level %q", c.Log.Level)
	}

	return nil
}

// Encode writes cfg as TOML.
func Encode(cfg Config) ([]byte, error) {
	return toml.Marshal(cfg)
}
