//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/rpsim/internal/config"
	"github.com/zeusync/rpsim/internal/driver"
)

func InitializeLoop(cfg *config.Config) (*driver.Loop, func(), error) {
	wire.Build(ProviderSet)
	return nil, nil, nil
}
