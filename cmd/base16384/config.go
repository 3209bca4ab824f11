package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v2"

	"github.com/arloliu/base16384"
	"github.com/arloliu/base16384/endian"
	"github.com/arloliu/base16384/format"
)

const (
	modeEncode = "encode"
	modeDecode = "decode"
)

// Config holds the settings of one invocation. It can be loaded from a YAML
// file; flags given on the command line take precedence.
type Config struct {
	Mode        string `yaml:"mode"`
	Compression string `yaml:"compression"`
	ByteOrder   string `yaml:"byte_order"`
	BOM         bool   `yaml:"bom"`
	UTF16       bool   `yaml:"utf16"`
	Strict      bool   `yaml:"strict"`
	Verify      bool   `yaml:"verify"`
	Concurrency int    `yaml:"concurrency"`
	LogLevel    string `yaml:"log_level"`

	// Command line only.
	ConfigFile string `yaml:"-"`
	Output     string `yaml:"-"`
	Demo       bool   `yaml:"-"`
}

func defaultConfig() Config {
	return Config{
		Mode:        modeEncode,
		Compression: "none",
		ByteOrder:   "big",
		Strict:      true,
		Concurrency: runtime.NumCPU(),
		LogLevel:    "info",
	}
}

// parseArgs builds the configuration from defaults, the optional YAML file and
// the command line flags, in that order, and returns the remaining arguments.
func parseArgs(args []string, stderr io.Writer) (Config, []string, error) {
	cfg := defaultConfig()
	flagCfg := defaultConfig()

	fs := flag.NewFlagSet("base16384", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: base16384 [flags] [file ...]\n\n")
		fmt.Fprintf(stderr, "Encodes files (or stdin) as base16384 text, or decodes them with -d.\n\n")
		fs.PrintDefaults()
	}

	decode := fs.Bool("d", false, "decode instead of encode")
	fs.StringVar(&flagCfg.ConfigFile, "config", "", "YAML config file")
	fs.StringVar(&flagCfg.Compression, "compression", flagCfg.Compression, "payload compression: none, zstd, s2, lz4")
	fs.StringVar(&flagCfg.ByteOrder, "order", flagCfg.ByteOrder, "UTF-16 byte order: big, little, native")
	fs.BoolVar(&flagCfg.BOM, "bom", flagCfg.BOM, "write a byte order mark before UTF-16 output")
	fs.BoolVar(&flagCfg.UTF16, "utf16", flagCfg.UTF16, "read/write encoded data as UTF-16 instead of UTF-8")
	fs.BoolVar(&flagCfg.Strict, "strict", flagCfg.Strict, "reject malformed input when decoding")
	fs.BoolVar(&flagCfg.Verify, "verify", flagCfg.Verify, "decode encoded output again and compare it with the input (encode only)")
	fs.IntVar(&flagCfg.Concurrency, "j", flagCfg.Concurrency, "number of files processed concurrently")
	fs.StringVar(&flagCfg.LogLevel, "log-level", flagCfg.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&flagCfg.Output, "o", "", "output file (single input only, default stdout or <file>.b16384)")
	fs.BoolVar(&flagCfg.Demo, "demo", false, "print a sample encoding and exit")

	if err := fs.Parse(args); err != nil {
		return Config{}, nil, err
	}

	if flagCfg.ConfigFile != "" {
		if err := loadConfigFile(flagCfg.ConfigFile, &cfg); err != nil {
			return Config{}, nil, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "d":
			if *decode {
				cfg.Mode = modeDecode
			} else {
				cfg.Mode = modeEncode
			}
		case "compression":
			cfg.Compression = flagCfg.Compression
		case "order":
			cfg.ByteOrder = flagCfg.ByteOrder
		case "bom":
			cfg.BOM = flagCfg.BOM
		case "utf16":
			cfg.UTF16 = flagCfg.UTF16
		case "strict":
			cfg.Strict = flagCfg.Strict
		case "verify":
			cfg.Verify = flagCfg.Verify
		case "j":
			cfg.Concurrency = flagCfg.Concurrency
		case "log-level":
			cfg.LogLevel = flagCfg.LogLevel
		}
	})
	cfg.ConfigFile = flagCfg.ConfigFile
	cfg.Output = flagCfg.Output
	cfg.Demo = flagCfg.Demo

	if err := cfg.validate(); err != nil {
		return Config{}, nil, err
	}

	return cfg, fs.Args(), nil
}

func loadConfigFile(path string, cfg *Config) error {
	contents, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}
	if err := yaml.UnmarshalStrict(contents, cfg); err != nil {
		return fmt.Errorf("error unmarshaling config file %s: %w", path, err)
	}

	return nil
}

func (c Config) validate() error {
	if c.Mode != modeEncode && c.Mode != modeDecode {
		return fmt.Errorf("invalid mode %q, want %q or %q", c.Mode, modeEncode, modeDecode)
	}
	if c.Verify && c.Mode == modeDecode {
		return errors.New("verify only applies when encoding")
	}
	if c.Concurrency < 1 {
		return errors.New("concurrency must be at least 1")
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	return nil
}

// logLevel returns the parsed level; validate has already checked it.
func (c Config) logLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}

	return level
}

// encoding builds the codec described by the configuration.
func (c Config) encoding() (*base16384.Encoding, error) {
	compression, err := format.ParseCompressionType(c.Compression)
	if err != nil {
		return nil, err
	}
	engine, err := endian.ParseByteOrder(c.ByteOrder)
	if err != nil {
		return nil, err
	}

	return base16384.NewEncoding(
		base16384.WithCompression(compression),
		base16384.WithByteOrder(engine),
		base16384.WithBOM(c.BOM),
		base16384.WithStrictDecoding(c.Strict),
	)
}
