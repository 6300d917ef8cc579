package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/campusops/roomcheck/internal/config"
	"github.com/campusops/roomcheck/pkg/core/services"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg    *config.Config
	Source services.DataSource
	Logger *zap.Logger
	Ctx    context.Context
}
