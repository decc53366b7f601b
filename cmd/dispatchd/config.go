package main

import "github.com/dmitrymomot/dispatch/core/server"

type appConfig struct {
	AppName     string `env:"APP_NAME" envDefault:"dispatchd"`
	AppEnv      string `env:"APP_ENV" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	MetricsPath string `env:"METRICS_PATH" envDefault:"/metrics"`

	Server server.Config
}

func (c appConfig) production() bool {
	return c.AppEnv == "production"
}
