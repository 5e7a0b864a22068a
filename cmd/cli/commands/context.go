package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/jakechorley/space-allocator/internal/config"
	"github.com/jakechorley/space-allocator/pkg/core/registry"
	"github.com/jakechorley/space-allocator/pkg/db"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg      *config.Config
	Registry *registry.Registry
	Provider db.Provider
	Logger   *zap.Logger
	Ctx      context.Context
}
