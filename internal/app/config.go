package app

import (
	"os"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrUnsupportedFormat is returned for an output format other than
// FormatText or FormatJSON.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Config holds the demo configuration, loadable from environment variables
// (CART_ prefix), flags, or YAML config files.
type Config struct {
	Format  string `default:"text" usage:"Output format: text or json"`
	Receipt bool   `default:"true" usage:"Print the item listing before the subtotal (text format)"`
}

// LoadConfig loads configuration from environment variables, command-line
// flags and YAML config files, then validates it.
func LoadConfig() (*Config, error) {
	return loadConfig(os.Args[1:])
}

func loadConfig(args []string) (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "CART",
		Args:      args,
		Files:     []string{"config.yaml", "/etc/pricecart/config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports whether the configuration is usable.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON:
		return nil
	default:
		return errors.Wrapf(ErrUnsupportedFormat, "format %q", c.Format)
	}
}
