package cliconfig

import "os"

// Environment variable names.
const (
	EnvInput    = "HUFFCODES_INPUT"
	EnvFormat   = "HUFFCODES_FORMAT"
	EnvOrder    = "HUFFCODES_ORDER"
	EnvLogLevel = "HUFFCODES_LOG_LEVEL"
	EnvWatch    = "HUFFCODES_WATCH"
	EnvDebounce = "HUFFCODES_DEBOUNCE"
	EnvCompare  = "HUFFCODES_COMPARE"
)

// ApplyEnvConfig applies HUFFCODES_* environment variables to cfg.  They
// override file config but are overridden by explicitly set flags.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("input", os.Getenv(EnvInput), &cfg.Input)
	s.setString("format", os.Getenv(EnvFormat), &cfg.Format)
	s.setString("order", os.Getenv(EnvOrder), &cfg.Order)
	s.setString("log-level", os.Getenv(EnvLogLevel), &cfg.LogLevel)

	if err := s.setDuration("debounce", os.Getenv(EnvDebounce), &cfg.Debounce); err != nil {
		return err
	}
	if err := s.setBoolFromString("watch", os.Getenv(EnvWatch), &cfg.Watch); err != nil {
		return err
	}
	if err := s.setBoolFromString("compare", os.Getenv(EnvCompare), &cfg.Compare); err != nil {
		return err
	}
	return nil
}
