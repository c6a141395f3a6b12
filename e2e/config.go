package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_TARGET_ADDR points the suite at an already running server; when
	// empty the suite starts an in-process server over an in-memory store.
	TargetAddr string `envconfig:"E2E_TARGET_ADDR"`
	// E2E_DEBUG_HTTP dumps full request/response bodies into the test log
	DebugHTTP bool `envconfig:"E2E_DEBUG_HTTP" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
