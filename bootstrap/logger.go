package bootstrap

import (
	"log"

	"go.uber.org/zap"
)

func NewLogger(env *Env) *zap.Logger {
	var logger *zap.Logger
	var err error

	if env.AppEnv == "development" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatal("Can't initialize zap logger: ", err)
	}

	return logger
}
