package prformat

import (
	"fmt"
	"os"

	"github.com/akerl/timber/log"
	"github.com/ghodss/yaml"
)

var logger = log.NewLogger("prformat")

const (
	defaultNormalizeCommand = "git interpret-trailers --only-input"
	defaultParseCommand     = "git interpret-trailers --parse"
	defaultFormatCommand    = "npx --yes prettier --parser=markdown --prose-wrap=always"
	defaultPrintWidth       = 88
	defaultOutputName       = "formatted_pr_body"
)

// Config describes options for changing the behavior of the formatter
type Config struct {
	NormalizeCommand string `json:"normalize_command"`
	ParseCommand     string `json:"parse_command"`
	FormatCommand    string `json:"format_command"`
	PrintWidth       int    `json:"print_width"`
	OutputName       string `json:"output_name"`
	IntegrationID    int    `json:"integration_id"`
	InstallationID   int64  `json:"installation_id"`
	PrivateKeyFile   string `json:"private_key_file"`
}

// DefaultConfig returns the settings used by the pull request workflow
func DefaultConfig() Config {
	return Config{
		NormalizeCommand: defaultNormalizeCommand,
		ParseCommand:     defaultParseCommand,
		FormatCommand:    defaultFormatCommand,
		PrintWidth:       defaultPrintWidth,
		OutputName:       defaultOutputName,
	}
}

// LoadConfig reads a config file, filling unset fields with defaults.
// An empty file argument returns the defaults.
func LoadConfig(fileArg string) (Config, error) {
	if fileArg == "" {
		return DefaultConfig(), nil
	}
	logger.DebugMsg(fmt.Sprintf("loading config from %s", fileArg))

	contents, err := os.ReadFile(fileArg)
	if err != nil {
		return Config{}, err
	}

	var c Config
	if err := yaml.Unmarshal(contents, &c); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", fileArg, err)
	}
	c = c.withDefaults()
	return c, c.validate()
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.NormalizeCommand == "" {
		c.NormalizeCommand = d.NormalizeCommand
	}
	if c.ParseCommand == "" {
		c.ParseCommand = d.ParseCommand
	}
	if c.FormatCommand == "" {
		c.FormatCommand = d.FormatCommand
	}
	if c.PrintWidth == 0 {
		c.PrintWidth = d.PrintWidth
	}
	if c.OutputName == "" {
		c.OutputName = d.OutputName
	}
	return c
}

func (c Config) validate() error {
	if c.PrintWidth < 0 {
		return &ConfigurationError{Field: "print_width", Message: "must be positive"}
	}
	return nil
}
