//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/schemagen/internal/cli/config"
)

func InitializeApp(cfg *config.Config) (*App, error) {
	wire.Build(ProvideLogger, ProvideOptions, wire.Struct(new(App), "*"))
	return nil, nil
}
