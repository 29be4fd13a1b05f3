// Package injector assembles the server binary's object graph with wire.
package injector

import (
	"github.com/akmonengine/minkowski"
	"github.com/akmonengine/minkowski/config"
	"github.com/akmonengine/minkowski/internal/log"
	"github.com/akmonengine/minkowski/internal/server"
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	ProvideLogger,
	wire.Bind(new(log.Log), new(*log.Logger)),
	ProvideWorld,
	ProvideServerConfig,
	server.New,
)

// ProvideLogger builds the logger at the configured level. The cleanup
// flushes buffered entries.
func ProvideLogger(cfg *config.Config) (*log.Logger, func(), error) {
	logger, err := log.New(cfg.Level())
	if err != nil {
		return nil, nil, err
	}
	return logger, func() { _ = logger.Sync() }, nil
}

func ProvideWorld(cfg *config.Config, logger log.Log) (*minkowski.World, error) {
	return minkowski.NewWorld(cfg, minkowski.WithLogger(logger))
}

func ProvideServerConfig(cfg *config.Config) config.Server {
	return cfg.Server
}
