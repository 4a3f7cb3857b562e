package di

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"benefitflow/application/ports"
	"benefitflow/application/services"
	"benefitflow/domain/identifier"
	"benefitflow/infrastructure/config"
	"benefitflow/infrastructure/persistence/memory"
	"benefitflow/infrastructure/persistence/sqlite"
	"benefitflow/interfaces/http/web/routes"
	"benefitflow/interfaces/http/web/templates"
)

// Container holds all application dependencies
type Container struct {
	Config     *config.Config
	Logger     *zap.Logger
	Repository ports.AssessmentRepository
	Registry   *routes.Registry
	Renderer   *templates.Renderer
	Service    *services.AssessmentService
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if closer, ok := c.Repository.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// ProvideLogger builds the zap logger for the configured environment.
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}

	var zcfg zap.Config
	if cfg.IsProduction() {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger, nil
}

// ProvideCodec builds the identifier codec with the configured sentinel.
func ProvideCodec(cfg *config.Config) identifier.Codec {
	return identifier.NewCodec(cfg.DummyNodeID)
}

// ProvideRepository selects the assessment store: SQLite when a database
// path is configured, in-memory otherwise.
func ProvideRepository(cfg *config.Config, logger *zap.Logger) (ports.AssessmentRepository, error) {
	if cfg.DatabasePath == "" {
		logger.Info("using in-memory assessment store")
		return memory.NewAssessmentRepository(), nil
	}

	repo, err := sqlite.Open(cfg.DatabasePath)
	if err != nil {
		return nil, err
	}
	logger.Info("using sqlite assessment store", zap.String("path", cfg.DatabasePath))
	return repo, nil
}

// ProvideRegistry builds the named-route reversal registry.
func ProvideRegistry() *routes.Registry {
	return routes.NewRegistry()
}

// ProvideRenderer parses the embedded templates.
func ProvideRenderer() (*templates.Renderer, error) {
	return templates.NewRenderer()
}

// ProvideService builds the assessment application service.
func ProvideService(repo ports.AssessmentRepository, codec identifier.Codec, logger *zap.Logger) *services.AssessmentService {
	return services.NewAssessmentService(repo, codec, logger)
}
