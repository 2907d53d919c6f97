package main

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spotlight-app/spotlight-backend/api/route"
	"github.com/spotlight-app/spotlight-backend/bootstrap"
	"github.com/spotlight-app/spotlight-backend/mongo"
	"go.uber.org/zap"
)

func main() {
	app := bootstrap.App()
	env := app.Env
	defer app.CloseDBConnection()

	db := app.Mongo.Database(env.MongoDBName)
	mongo.CreateIndexes(db, app.Logger)

	timeout := time.Duration(env.ContextTimeout) * time.Second

	engine := gin.Default()
	route.Setup(env, timeout, db, app.Redis, app.Logger, engine)

	app.Logger.Info("spotlight server starting", zap.String("address", env.ServerAddress))
	if err := engine.Run(env.ServerAddress); err != nil {
		app.Logger.Fatal("server exited", zap.Error(err))
	}
}
