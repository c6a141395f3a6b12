package internal

import "fmt"

type Config struct {
	BadgerFilepath string `env:"BADGER_FILEPATH"`
	BadgerInMemory bool   `env:"BADGER_IN_MEMORY,default=false"`
	LogLevel       string `env:"LOG_LEVEL,default=info"`
	Host           string `env:"HOST,default=localhost"`
	Port           int    `env:"PORT,default=8080"`
	// DebugPort exposes the /inspect page when > 0.
	DebugPort int `env:"DEBUG_PORT"`
}

// Validate catches the one combination the env tags cannot express: a
// persistent store needs a path.
func (c Config) Validate() error {
	if !c.BadgerInMemory && c.BadgerFilepath == "" {
		return fmt.Errorf("BADGER_FILEPATH is required unless BADGER_IN_MEMORY is set")
	}
	return nil
}
