package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/jakechorley/garde-exchange/internal/config"
	"github.com/jakechorley/garde-exchange/pkg/core/equity"
	"github.com/jakechorley/garde-exchange/pkg/core/services"
	"github.com/jakechorley/garde-exchange/pkg/db"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg      *config.Config
	Database db.Database
	Logger   *zap.Logger
	Ctx      context.Context
}

// loadEngine reads a fresh snapshot and builds an engine over it.
// Every command call starts from current data.
func (app *AppContext) loadEngine() (*equity.Engine, *services.Snapshot, error) {
	snapshot, err := services.LoadSnapshot(app.Ctx, app.Database, app.Logger)
	if err != nil {
		return nil, nil, err
	}

	engine, err := services.NewEngine(app.Cfg, snapshot)
	if err != nil {
		return nil, nil, err
	}

	return engine, snapshot, nil
}
