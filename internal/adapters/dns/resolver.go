package dns

import (
	"context"
	"net"
	"time"

	"go.uber.org/zap"
)

// Resolver is a net.Resolver-backed implementation of the core.TXTResolver
// interface. Every lookup is bounded by a configured timeout so one slow
// nameserver degrades to a dns_error finding instead of stalling the whole
// analysis.
type Resolver struct {
	resolver *net.Resolver
	timeout  time.Duration
	logger   *zap.Logger
}

// NewResolver creates a new TXT resolver with the given per-lookup timeout
func NewResolver(timeout time.Duration, logger *zap.Logger) *Resolver {
	return &Resolver{
		resolver: net.DefaultResolver,
		timeout:  timeout,
		logger:   logger,
	}
}

// NewResolverWithBackend creates a resolver around a specific net.Resolver,
// used by tests and deployments with a dedicated nameserver
func NewResolverWithBackend(backend *net.Resolver, timeout time.Duration, logger *zap.Logger) *Resolver {
	return &Resolver{
		resolver: backend,
		timeout:  timeout,
		logger:   logger,
	}
}

// LookupTXT resolves TXT records for a name within the configured timeout
func (r *Resolver) LookupTXT(ctx context.Context, name string) ([]string, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	records, err := r.resolver.LookupTXT(ctx, name)
	if err != nil {
		r.logger.Debug("TXT lookup failed",
			zap.String("name", name),
			zap.Error(err))
		return nil, err
	}

	return records, nil
}
