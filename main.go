package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"ondernemercentraal.nl/configs"
	"ondernemercentraal.nl/configs/configsdatabase"
	"ondernemercentraal.nl/configs/configslog"
	"ondernemercentraal.nl/routes"
)

func main() {
	envMissing := godotenv.Load() != nil

	configslog.InitLogger()
	defer configslog.SyncLogger()
	if envMissing {
		// Running without a .env file is fine in containers.
		configslog.SLog.Debug("Geen .env-bestand gevonden, omgevingsvariabelen worden direct gelezen.")
	}

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	app := routes.NewApp()
	routes.SetupRoutes(app)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		configslog.SLog.Info("Afsluitsignaal ontvangen, server wordt gestopt...")
		if err := app.Shutdown(); err != nil {
			configslog.Log.Error("Fout bij afsluiten van de server", zap.Error(err))
		}
	}()

	address := configs.ListenAddress()
	configslog.SLog.Infof("Ondernemer Centraal luistert op %s.", address)
	if err := app.Listen(address); err != nil {
		configslog.Log.Fatal("Server gestopt met fout", zap.Error(err))
	}
}
