package injector

import (
	"github.com/zeusync/schemagen/internal/cli/config"
	"github.com/zeusync/schemagen/internal/codegen"
	"github.com/zeusync/schemagen/pkg/observability/log"
)

// App holds what a CLI command needs once configuration is loaded.
type App struct {
	Logger  log.Log
	Options codegen.Options
}

func ProvideLogger(cfg *config.Config) log.Log {
	return log.NewDevelopment(log.ParseLevel(cfg.LogLevel))
}

func ProvideOptions(cfg *config.Config, logger log.Log) codegen.Options {
	opts := cfg.Options()
	opts.Logger = logger
	return opts
}
