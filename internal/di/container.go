package di

import (
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/opsdesk/bec-engine/internal/config"
	"github.com/opsdesk/bec-engine/internal/core"
	"github.com/opsdesk/bec-engine/internal/factory"
	"github.com/opsdesk/bec-engine/internal/logging"
)

// BuildContainer creates and configures a dependency injection container
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	// Register configuration
	if err := container.Provide(config.New); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(logging.InitLogger); err != nil {
		return nil, err
	}

	return provideEngine(container)
}

// BuildContainerWithConfig creates a container around an existing
// configuration and logger, used by the CLI where both come from flags
func BuildContainerWithConfig(cfg *config.Config, logger *zap.Logger) (*dig.Container, error) {
	container := dig.New()

	if err := container.Provide(func() *config.Config { return cfg }); err != nil {
		return nil, err
	}
	if err := container.Provide(func() *zap.Logger { return logger }); err != nil {
		return nil, err
	}

	return provideEngine(container)
}

// provideEngine registers the factories, adapters and analysis service
func provideEngine(container *dig.Container) (*dig.Container, error) {
	// Register factories
	if err := container.Provide(factory.NewDirectoryFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewResolverFactory); err != nil {
		return nil, err
	}

	// Register contact directory
	if err := container.Provide(func(f *factory.DirectoryFactory) (core.ContactDirectory, error) {
		return f.CreateContactDirectory()
	}); err != nil {
		return nil, err
	}

	// Register TXT resolver
	if err := container.Provide(func(f *factory.ResolverFactory) (core.TXTResolver, error) {
		return f.CreateTXTResolver()
	}); err != nil {
		return nil, err
	}

	// Register scoring configuration
	if err := container.Provide(func(cfg *config.Config) core.ScoringConfig {
		engine := cfg.GetEngine()
		return core.ScoringConfig{
			DomainWeight:        engine.DomainWeight,
			SenderWeight:        engine.SenderWeight,
			ContentWeight:       engine.ContentWeight,
			HighRiskThreshold:   engine.HighRiskThreshold,
			MediumRiskThreshold: engine.MediumRiskThreshold,
		}
	}); err != nil {
		return nil, err
	}

	// Register content rules
	if err := container.Provide(func(cfg *config.Config) core.ContentRules {
		content := cfg.GetContent()
		return core.ContentRules{
			Keywords:       content.Keywords,
			BaseConfidence: content.BaseConfidence,
			ConfidenceStep: content.ConfidenceStep,
			MaxConfidence:  content.MaxConfidence,
		}
	}); err != nil {
		return nil, err
	}

	// Register analysis service
	if err := container.Provide(core.NewAnalysisService); err != nil {
		return nil, err
	}

	return container, nil
}
