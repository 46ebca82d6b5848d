package config

import "time"

// EngineConfig represents the risk scoring configuration
type EngineConfig struct {
	DomainWeight        float64
	SenderWeight        float64
	ContentWeight       float64
	HighRiskThreshold   int
	MediumRiskThreshold int
}

// ContentConfig represents the content analysis configuration
type ContentConfig struct {
	Keywords       []string
	BaseConfidence float64
	ConfidenceStep float64
	MaxConfidence  float64
}

// DNSConfig represents the DNS resolution configuration
type DNSConfig struct {
	Timeout time.Duration
}

// DirectoryConfig represents the known-contacts directory configuration
type DirectoryConfig struct {
	Type       string
	Contacts   map[string]string
	SQLitePath string
	MySQLDSN   string
}

// GetEngine returns the risk scoring configuration
func (c *Config) GetEngine() EngineConfig {
	return EngineConfig{
		DomainWeight:        c.GetFloat64("engine.weights.domain"),
		SenderWeight:        c.GetFloat64("engine.weights.sender"),
		ContentWeight:       c.GetFloat64("engine.weights.content"),
		HighRiskThreshold:   c.GetInt("engine.thresholds.high_risk"),
		MediumRiskThreshold: c.GetInt("engine.thresholds.medium_risk"),
	}
}

// GetContent returns the content analysis configuration
func (c *Config) GetContent() ContentConfig {
	return ContentConfig{
		Keywords:       c.GetStringSlice("content.keywords"),
		BaseConfidence: c.GetFloat64("content.base_confidence"),
		ConfidenceStep: c.GetFloat64("content.confidence_step"),
		MaxConfidence:  c.GetFloat64("content.max_confidence"),
	}
}

// GetDNS returns the DNS resolution configuration
func (c *Config) GetDNS() (DNSConfig, error) {
	timeout, err := c.GetDuration("dns.timeout")
	if err != nil {
		return DNSConfig{}, err
	}
	return DNSConfig{Timeout: timeout}, nil
}

// GetDirectory returns the known-contacts directory configuration
func (c *Config) GetDirectory() DirectoryConfig {
	return DirectoryConfig{
		Type:       c.GetString("directory.type"),
		Contacts:   c.GetStringMapString("directory.contacts"),
		SQLitePath: c.GetString("directory.sqlite_path"),
		MySQLDSN:   c.GetString("directory.mysql_dsn"),
	}
}
