package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnvName = "FEED_CONFIG_FILE"

// Feed format names accepted by the format setting.
const (
	FormatCSV       = "csv"
	FormatJSONLines = "jsonl"
	FormatAvro      = "avro"
)

type Config struct {
	LogLevel string `mapstructure:"log_level"`
	Manifest string `mapstructure:"manifest"`
	Output   string `mapstructure:"output"`
	Format   string `mapstructure:"format"`
	Compress bool   `mapstructure:"compress"`
}

// Load resolves configuration from command-line flags, optionally
// overlaid by a config file given via --config or FEED_CONFIG_FILE.
func Load() Config {
	fs := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	configArg := fs.String("config", "", "optional config file")
	fs.String("manifest", "products.yaml", "product manifest file")
	fs.String("output", "feed.csv", "feed output file")
	fs.String("format", FormatCSV, "feed format: csv, jsonl or avro")
	fs.Bool("compress", false, "gzip the output feed")
	fs.String("log_level", "info", "log level: debug, info, warn or error")
	_ = fs.Parse(os.Args[1:])

	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		die(err)
	}

	if path := configFilepath(*configArg); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			die(err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		die(err)
	}
	return cfg
}

func configFilepath(arg string) string {
	env, ok := os.LookupEnv(configFileEnvName)
	if ok {
		return env
	}
	return arg
}

func die(err error) {
	fmt.Printf("failed to load config: %v\n", err)
	os.Exit(2)
}

// SlogLevel maps the configured level name onto slog; unknown names
// fall back to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (c Config) Print() {
	tamplate := `
	LogLevel=%q
	Manifest=%q
	Output=%q
	Format=%q
	Compress=%v

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(tamplate, "\n"),
		c.LogLevel,
		c.Manifest,
		c.Output,
		c.Format,
		c.Compress,
	)
}
