package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "/etc/cloudiam/config"
	ConfigFileName    = "cloudiam.yml"
)

// Config holds all cloudiam configuration settings
type Config struct {
	// AccessKeyID is the provider API access key
	AccessKeyID string `yaml:"access_key_id" json:"access_key_id"`

	// SecretAccessKey is the provider API secret key
	SecretAccessKey string `yaml:"secret_access_key" json:"secret_access_key"`

	// Region is the provider region used for request signing
	Region string `yaml:"region" json:"region"`

	// Endpoint overrides the provider API endpoint
	Endpoint string `yaml:"endpoint" json:"endpoint"`

	// BindAddress is the address the HTTP facade listens on
	BindAddress string `yaml:"bind_address" json:"bind_address"`

	// Port is the HTTP facade listen port
	Port int `yaml:"port" json:"port"`

	// JWTSecret is the HMAC secret for facade bearer tokens
	JWTSecret string `yaml:"jwt_secret" json:"jwt_secret"`

	// DatabaseURL is the snapshot store connection URL
	DatabaseURL string `yaml:"database_url" json:"database_url"`

	// RulesPath is the default rules file for policy apply/watch
	RulesPath string `yaml:"rules_path" json:"rules_path"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

// Attribute represents a configuration attribute with its value and source
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// Global singleton config
var (
	globalConfig *Config
	configMu     sync.RWMutex
)

// Get returns the global configuration, loading it if necessary
func Get() *Config {
	configMu.RLock()
	if globalConfig != nil {
		configMu.RUnlock()
		return globalConfig
	}
	configMu.RUnlock()

	configMu.Lock()
	defer configMu.Unlock()

	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			// Return defaults on error
			globalConfig = newDefault()
		} else {
			globalConfig = cfg
		}
	}
	return globalConfig
}

// Reload reloads the configuration from file and environment
func Reload() error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	configMu.Lock()
	globalConfig = cfg
	configMu.Unlock()
	return nil
}

// newDefault returns a config with default values
func newDefault() *Config {
	return &Config{
		Region:      "us-east-1",
		BindAddress: "127.0.0.1",
		Port:        8090,
		RulesPath:   "rules.yml",
		sources:     make(map[string]string),
	}
}

// Load loads configuration from file and environment variables
// Environment variables take precedence over file values
func Load() (*Config, error) {
	config := newDefault()

	for _, name := range attributeNames() {
		config.sources[name] = "default"
	}

	configPath := os.Getenv("CLOUDIAM_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	config.configFilePath = filepath.Join(configPath, ConfigFileName)

	if data, err := os.ReadFile(config.configFilePath); err == nil {
		var fileConfig Config
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", config.configFilePath, err)
		}
		config.applyFileConfig(&fileConfig)
	}

	config.applyEnvConfig()

	return config, nil
}

func attributeNames() []string {
	return []string{
		"access_key_id", "secret_access_key", "region", "endpoint",
		"bind_address", "port", "jwt_secret", "database_url", "rules_path",
	}
}

func (c *Config) applyFileConfig(file *Config) {
	if file.AccessKeyID != "" {
		c.AccessKeyID = file.AccessKeyID
		c.sources["access_key_id"] = "file"
	}
	if file.SecretAccessKey != "" {
		c.SecretAccessKey = file.SecretAccessKey
		c.sources["secret_access_key"] = "file"
	}
	if file.Region != "" {
		c.Region = file.Region
		c.sources["region"] = "file"
	}
	if file.Endpoint != "" {
		c.Endpoint = file.Endpoint
		c.sources["endpoint"] = "file"
	}
	if file.BindAddress != "" {
		c.BindAddress = file.BindAddress
		c.sources["bind_address"] = "file"
	}
	if file.Port != 0 {
		c.Port = file.Port
		c.sources["port"] = "file"
	}
	if file.JWTSecret != "" {
		c.JWTSecret = file.JWTSecret
		c.sources["jwt_secret"] = "file"
	}
	if file.DatabaseURL != "" {
		c.DatabaseURL = file.DatabaseURL
		c.sources["database_url"] = "file"
	}
	if file.RulesPath != "" {
		c.RulesPath = file.RulesPath
		c.sources["rules_path"] = "file"
	}
}

func (c *Config) applyEnvConfig() {
	if val := os.Getenv("CLOUDIAM_ACCESS_KEY_ID"); val != "" {
		c.AccessKeyID = val
		c.sources["access_key_id"] = "environment"
	}
	if val := os.Getenv("CLOUDIAM_SECRET_ACCESS_KEY"); val != "" {
		c.SecretAccessKey = val
		c.sources["secret_access_key"] = "environment"
	}
	if val := os.Getenv("CLOUDIAM_REGION"); val != "" {
		c.Region = val
		c.sources["region"] = "environment"
	}
	if val := os.Getenv("CLOUDIAM_ENDPOINT"); val != "" {
		c.Endpoint = val
		c.sources["endpoint"] = "environment"
	}
	if val := os.Getenv("CLOUDIAM_BIND_ADDRESS"); val != "" {
		c.BindAddress = val
		c.sources["bind_address"] = "environment"
	}
	if val := os.Getenv("CLOUDIAM_PORT"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.Port = i
			c.sources["port"] = "environment"
		}
	}
	if val := os.Getenv("CLOUDIAM_JWT_SECRET"); val != "" {
		c.JWTSecret = val
		c.sources["jwt_secret"] = "environment"
	}
	if val := os.Getenv("DATABASE_URL"); val != "" {
		c.DatabaseURL = val
		c.sources["database_url"] = "environment"
	}
	if val := os.Getenv("CLOUDIAM_RULES_PATH"); val != "" {
		c.RulesPath = val
		c.sources["rules_path"] = "environment"
	}
}

// ConfigFilePath returns the path to the config file
func (c *Config) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute
func (c *Config) Source(name string) string {
	if c.sources == nil {
		return "default"
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return "default"
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Endpoint != "" {
		parsed, err := url.Parse(c.Endpoint)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("invalid endpoint value: %s", c.Endpoint)
		}
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port value: %d", c.Port)
	}
	return nil
}

// Attributes returns all configuration attributes with their values and
// sources. Secret values are redacted.
func (c *Config) Attributes() []Attribute {
	return []Attribute{
		{Name: "access_key_id", Value: c.AccessKeyID, Source: c.Source("access_key_id")},
		{Name: "secret_access_key", Value: redact(c.SecretAccessKey), Source: c.Source("secret_access_key")},
		{Name: "region", Value: c.Region, Source: c.Source("region")},
		{Name: "endpoint", Value: c.Endpoint, Source: c.Source("endpoint")},
		{Name: "bind_address", Value: c.BindAddress, Source: c.Source("bind_address")},
		{Name: "port", Value: strconv.Itoa(c.Port), Source: c.Source("port")},
		{Name: "jwt_secret", Value: redact(c.JWTSecret), Source: c.Source("jwt_secret")},
		{Name: "database_url", Value: redact(c.DatabaseURL), Source: c.Source("database_url")},
		{Name: "rules_path", Value: c.RulesPath, Source: c.Source("rules_path")},
	}
}

// FormatText returns a text representation of the configuration
func (c *Config) FormatText() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Config file: %s\n\n", c.configFilePath))
	sb.WriteString(fmt.Sprintf("%-20s %-30s %s\n", "NAME", "VALUE", "SOURCE"))
	sb.WriteString(fmt.Sprintf("%-20s %-30s %s\n", "----", "-----", "------"))

	for _, attr := range c.Attributes() {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("%-20s %-30s %s\n", attr.Name, value, attr.Source))
	}
	return sb.String()
}

// FormatJSON returns a JSON representation of the configuration
func (c *Config) FormatJSON() (string, error) {
	result := map[string]interface{}{
		"config_file": c.configFilePath,
		"attributes":  c.Attributes(),
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func redact(s string) string {
	if s == "" {
		return ""
	}
	return "(redacted)"
}
