package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	yaml "gopkg.in/yaml.v2"
)

// Config is the root of the YAML configuration.
type Config struct {
	Logger     Logger     `yaml:"logger"`
	Server     Server     `yaml:"server"`
	LLM        LLM        `yaml:"llm"`
	HTTPClient HTTPClient `yaml:"http_client"`
}

type Logger struct {
	Level string `yaml:"level"`
}

// Server configures the HTTP transport.
type Server struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// LLM configures the model endpoint. Environment variables override the
// file values, matching the deployment conventions of the model runtime.
type LLM struct {
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`
	APIKey  string `yaml:"api_key"`
}

type HTTPClient struct {
	Debug            *bool           `yaml:"debug"`
	RetryCount       int             `yaml:"retry_count"`
	RetryWaitTime    time.Duration   `yaml:"retry_wait_time"`
	RetryMaxWaitTime time.Duration   `yaml:"retry_max_wait_time"`
	Timeout          time.Duration   `yaml:"timeout"`
	TLSClientConfig  TLSClientConfig `yaml:"tls_client_config"`
	Proxy            Proxy           `yaml:"proxy"`
}

type TLSClientConfig struct {
	Verify *bool `yaml:"verify"`
}

type Proxy struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// LoadYAML decodes a YAML file into data after validating the path.
func LoadYAML(configPath string, data interface{}) error {
	if err := ValidateConfigPath(configPath); err != nil {
		return err
	}

	file, err := os.Open(configPath)
	if err != nil {
		return err
	}
	defer file.Close()

	d := yaml.NewDecoder(file)
	if err := d.Decode(data); err != nil {
		return err
	}

	return nil
}

// LoadConfig reads the YAML configuration and applies environment overrides.
// A missing config file is not an error: the service can run entirely from
// defaults and environment variables.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(configPath); err == nil {
		if err := LoadYAML(configPath, config); err != nil {
			return nil, fmt.Errorf("failed to load config %q: %w", configPath, err)
		}
	}

	applyEnvOverrides(config)
	applyDefaults(config)

	return config, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LMSTUDIO_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("LMSTUDIO_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("LMSTUDIO_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("AEYEGUARD_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("AEYEGUARD_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
}

func applyDefaults(cfg *Config) {
	cfg.LLM.BaseURL = SetThen(cfg.LLM.BaseURL, DefaultLLMBaseURL)
	cfg.LLM.Model = SetThen(cfg.LLM.Model, DefaultLLMModel)
	cfg.Server.Host = SetThen(cfg.Server.Host, DefaultServerHost)
	cfg.Server.Port = SetThen(cfg.Server.Port, DefaultServerPort)
}
