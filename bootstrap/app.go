package bootstrap

import (
	"github.com/redis/go-redis/v9"
	"github.com/spotlight-app/spotlight-backend/mongo"
	"go.uber.org/zap"
)

type Application struct {
	Env    *Env
	Mongo  mongo.Client
	Redis  *redis.Client
	Logger *zap.Logger
}

func App() Application {
	app := Application{}
	app.Env = NewEnv()
	app.Logger = NewLogger(app.Env)
	app.Mongo = NewMongoDatabase(app.Env)
	app.Redis = NewRedisClient(app.Env)
	return app
}

func (app *Application) CloseDBConnection() {
	CloseMongoDBConnection(app.Mongo)
	if app.Redis != nil {
		_ = app.Redis.Close()
	}
	_ = app.Logger.Sync()
}
