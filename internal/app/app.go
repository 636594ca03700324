package app

import (
	"go.uber.org/zap"

	"github.com/flameshq/flames/config"
	"github.com/flameshq/flames/internal/schemas"
	"github.com/flameshq/flames/internal/validation"
)

type Application struct {
	appConfig *config.AppConfig
	engine    *validation.Engine
	catalog   *schemas.Catalog
}

// Ensure Application implements all interfaces
var (
	_ ConfigProvider    = (*Application)(nil)
	_ CatalogProvider   = (*Application)(nil)
	_ ValidatorProvider = (*Application)(nil)
	_ AppContext        = (*Application)(nil)
)

func NewApplication(appConfig *config.AppConfig) *Application {
	return &Application{appConfig: appConfig}
}

func (a *Application) Config() *config.AppConfig {
	return a.appConfig
}

func (a *Application) Catalog() *schemas.Catalog {
	return a.catalog
}

// EchoValidator returns a request validator sharing the catalog's engine
func (a *Application) EchoValidator() *validation.EchoValidator {
	return validation.NewEchoValidator(a.engine)
}

// Init installs the global logger and builds the validation engine and catalog
func (a *Application) Init() error {
	cfg := a.appConfig
	logger, err := newLogger(cfg.Logger, cfg.System.Debug)
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(logger)

	a.engine = validation.New()
	opts := []schemas.Option{schemas.WithValidator(a.engine)}
	if cfg.Validation.StrictTypes {
		opts = append(opts, schemas.WithStrictTypes())
	}
	a.catalog = schemas.NewCatalog(opts...)
	zap.L().Debug("application initialized",
		zap.String("appid", cfg.System.Appid),
		zap.Strings("collections", a.catalog.Collections()),
		zap.Bool("strict_types", cfg.Validation.StrictTypes))
	return nil
}

// Release releases application resources
func (a *Application) Release() {
	_ = zap.L().Sync()
}
