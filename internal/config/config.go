package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds the fixed set of file-system paths the workflows operate on.
// It is loaded once at startup and passed explicitly to each component; there
// is no process-wide singleton.
type Config struct {
	NumericCSV     string `mapstructure:"numeric_csv" yaml:"numeric_csv"`
	CategoricalCSV string `mapstructure:"categorical_csv" yaml:"categorical_csv"`
	DatasetFile    string `mapstructure:"dataset_file" yaml:"dataset_file"`
	OutputDir      string `mapstructure:"output_dir" yaml:"output_dir"`
	LogFile        string `mapstructure:"log_file" yaml:"log_file"`
}

// Load loads configuration from file, env, and defaults.
// Precedence: cfgFile > env (STOCKLENS_*) > config file > defaults.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("STOCKLENS")
	v.AutomaticEnv()

	v.SetDefault("numeric_csv", filepath.Join("data", "inventory_numeric.csv"))
	v.SetDefault("categorical_csv", filepath.Join("data", "inventory_categorical.csv"))
	v.SetDefault("dataset_file", filepath.Join("data", "inventory.dataset"))
	v.SetDefault("output_dir", "output")
	v.SetDefault("log_file", filepath.Join("output", "stocklens.log"))

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("stocklens")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}

// Save writes the configuration to path as YAML, creating parent directories
// as necessary.
func Save(c *Config, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// EnsureOutputDir creates the output directory if it does not exist.
func (c *Config) EnsureOutputDir() error {
	if err := os.MkdirAll(c.OutputDir, 0o755); err != nil {
		return fmt.Errorf("mkdir output dir: %w", err)
	}
	return nil
}
