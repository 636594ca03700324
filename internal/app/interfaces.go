package app

import (
	"github.com/flameshq/flames/config"
	"github.com/flameshq/flames/internal/schemas"
	"github.com/flameshq/flames/internal/validation"
)

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// CatalogProvider provides the schema catalog
type CatalogProvider interface {
	Catalog() *schemas.Catalog
}

// ValidatorProvider provides request validation for echo handlers
type ValidatorProvider interface {
	EchoValidator() *validation.EchoValidator
}

// AppContext combines all provider interfaces for full application context
type AppContext interface {
	ConfigProvider
	CatalogProvider
	ValidatorProvider

	// Release flushes the logger
	Release()
}
