// Package config provides configuration management for the Controller Cleaner application.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=config.go -destination=mockconfig.gen.go -package=config

// Field policy values for the unused-field classifier.
const (
	// FieldPolicyFinalPrivate removes only fields that are both final and private.
	FieldPolicyFinalPrivate = "final-private"
	// FieldPolicyNonPublic removes any field that is neither public nor static
	// and carries no annotation.
	FieldPolicyNonPublic = "non-public"
)

// Class policy values for the unused-class classifier.
const (
	// ClassPolicyEmptyOnly removes only classes with no methods, fields, or nested classes.
	ClassPolicyEmptyOnly = "empty-only"
	// ClassPolicyNoMethods removes any class with no methods regardless of fields.
	ClassPolicyNoMethods = "no-methods"
)

// DefaultMaxPasses bounds the fixpoint cleanup loop.
const DefaultMaxPasses = 3

// Config represents the application configuration.
type Config struct {
	// MaxPasses bounds the number of analyze+remove passes in one run.
	MaxPasses int `yaml:"max_passes"`
	// FieldPolicy selects the unused-field classifier mode.
	FieldPolicy string `yaml:"field_policy"`
	// ClassPolicy selects the unused-class classifier mode.
	ClassPolicy string `yaml:"class_policy"`
	// ControllerAnnotations are annotation names (simple or fully qualified)
	// that mark a class as framework-bound. Matched against both forms.
	ControllerAnnotations []string `yaml:"controller_annotations"`
	// DeprecatedAnnotations are annotation names that mark a method as deprecated.
	DeprecatedAnnotations []string `yaml:"deprecated_annotations"`
	// SourceExtensions are the file extensions scanned for symbols.
	SourceExtensions []string `yaml:"source_extensions"`
}

// Manager interface provides configuration management functionality.
type Manager interface {
	// LoadConfig loads configuration from the specified file path.
	LoadConfig(configPath string) (*Config, error)
	// DefaultConfig returns the default configuration.
	DefaultConfig() *Config
}

type realManager struct {
	// No fields needed for basic configuration operations
}

// NewManager creates a new Manager instance.
func NewManager() Manager {
	return &realManager{}
}

// LoadConfig loads configuration from the specified file path.
func (c *realManager) LoadConfig(configPath string) (*Config, error) {
	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML, starting from defaults so omitted keys keep their default value
	config := c.DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// DefaultConfig returns the default configuration: the conservative policy
// pair and the Spring controller annotation set.
func (c *realManager) DefaultConfig() *Config {
	return &Config{
		MaxPasses:   DefaultMaxPasses,
		FieldPolicy: FieldPolicyFinalPrivate,
		ClassPolicy: ClassPolicyEmptyOnly,
		ControllerAnnotations: []string{
			"Controller",
			"RestController",
			"org.springframework.stereotype.Controller",
			"org.springframework.web.bind.annotation.RestController",
		},
		DeprecatedAnnotations: []string{
			"Deprecated",
			"java.lang.Deprecated",
		},
		SourceExtensions: []string{".java"},
	}
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if c.MaxPasses < 1 {
		return fmt.Errorf("%w: max_passes must be at least 1", ErrInvalidConfig)
	}

	switch c.FieldPolicy {
	case FieldPolicyFinalPrivate, FieldPolicyNonPublic:
	default:
		return fmt.Errorf("%w: unknown field_policy %q", ErrInvalidConfig, c.FieldPolicy)
	}

	switch c.ClassPolicy {
	case ClassPolicyEmptyOnly, ClassPolicyNoMethods:
	default:
		return fmt.Errorf("%w: unknown class_policy %q", ErrInvalidConfig, c.ClassPolicy)
	}

	if len(c.SourceExtensions) == 0 {
		return fmt.Errorf("%w: source_extensions cannot be empty", ErrInvalidConfig)
	}

	return nil
}

// LoadConfigWithFallback loads configuration from file with fallback to default.
func LoadConfigWithFallback(configPath string) (*Config, error) {
	manager := NewManager()

	// Try to load from file first
	if config, err := manager.LoadConfig(configPath); err == nil {
		return config, nil
	}

	// Fallback to default configuration
	return manager.DefaultConfig(), nil
}
