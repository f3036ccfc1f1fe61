// Package config loads stream kit configuration from YAML files and
// environment variables. Applications embed or construct Config, call
// ApplyDefaults, and hand the pieces to the packages they configure
// (logger.Init, observe.InitMeter, stream.Debounce intervals).
//
//	cfg, err := config.Load("my-service", config.LoaderConfig{})
//	if err != nil { ... }
//	logger.Init(cfg.Logging)
package config
