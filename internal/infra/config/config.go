package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rcarvalho-pb/payment_methods-go/internal/domain/instrument"
	"github.com/rcarvalho-pb/payment_methods-go/internal/domain/money"
)

type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Processing ProcessingConfig `yaml:"processing"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type ProcessingConfig struct {
	Currency       string `yaml:"currency"`
	MaxAmount      string `yaml:"max_amount"`
	PixFailureRate int    `yaml:"pix_failure_rate"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{Port: 8080},
		Processing: ProcessingConfig{
			Currency:       string(money.BRL),
			MaxAmount:      "999999.99",
			PixFailureRate: instrument.DefaultPixFailureRate,
		},
	}
}

// Load reads the yaml file at path over the defaults. A missing file is not
// an error; a malformed one is.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if cfg.Processing.PixFailureRate < 0 || cfg.Processing.PixFailureRate > 100 {
		return nil, fmt.Errorf("pix_failure_rate must be between 0 and 100, got %d", cfg.Processing.PixFailureRate)
	}

	return cfg, nil
}

func (c *Config) MaxAmount() (money.Money, error) {
	return money.NewFromString(c.Processing.MaxAmount, money.Currency(c.Processing.Currency))
}
