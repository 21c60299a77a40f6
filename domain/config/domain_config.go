package config

import "fmt"

// DomainConfig holds all configurable catalog rules and constraints
type DomainConfig struct {
	// Record constraints
	MaxTitleLength       int
	MaxDescriptionLength int
	MinRating            float64
	MaxRating            float64

	// Validation settings
	AllowNegativeVersion bool
}

// DefaultDomainConfig returns the default domain configuration
func DefaultDomainConfig() *DomainConfig {
	return &DomainConfig{
		MaxTitleLength:       255,
		MaxDescriptionLength: 5000,
		MinRating:            0,
		MaxRating:            10,
		AllowNegativeVersion: false,
	}
}

// ProductionDomainConfig returns production-specific configuration
func ProductionDomainConfig() *DomainConfig {
	config := DefaultDomainConfig()

	// Tighter descriptions in production
	config.MaxDescriptionLength = 2000

	return config
}

// DevelopmentDomainConfig returns development-specific configuration
func DevelopmentDomainConfig() *DomainConfig {
	config := DefaultDomainConfig()
	config.AllowNegativeVersion = true
	return config
}

// LoadDomainConfig loads domain configuration based on environment
func LoadDomainConfig(environment string) *DomainConfig {
	switch environment {
	case "production":
		return ProductionDomainConfig()
	case "development":
		return DevelopmentDomainConfig()
	default:
		return DefaultDomainConfig()
	}
}

// Validate checks if the configuration is valid
func (c *DomainConfig) Validate() error {
	if c.MaxTitleLength <= 0 {
		return fmt.Errorf("max title length must be positive")
	}
	if c.MaxDescriptionLength <= 0 {
		return fmt.Errorf("max description length must be positive")
	}
	if c.MinRating > c.MaxRating {
		return fmt.Errorf("min rating %g exceeds max rating %g", c.MinRating, c.MaxRating)
	}
	return nil
}
