package factory

import (
	"fmt"

	"github.com/opsdesk/bec-engine/internal/adapters/dns"
	"github.com/opsdesk/bec-engine/internal/config"
	"github.com/opsdesk/bec-engine/internal/core"
	"go.uber.org/zap"
)

// ResolverFactory creates DNS TXT resolvers based on configuration
type ResolverFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewResolverFactory creates a new resolver factory
func NewResolverFactory(cfg *config.Config, logger *zap.Logger) *ResolverFactory {
	return &ResolverFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateTXTResolver creates a TXT resolver with the configured lookup timeout
func (f *ResolverFactory) CreateTXTResolver() (core.TXTResolver, error) {
	dnsCfg, err := f.cfg.GetDNS()
	if err != nil {
		return nil, fmt.Errorf("invalid DNS timeout: %w", err)
	}

	return dns.NewResolver(dnsCfg.Timeout, f.logger), nil
}
