package main

import (
	"flag"

	"ondernemercentraal.nl/configs/configsdatabase"
	"ondernemercentraal.nl/configs/configslog"
	"ondernemercentraal.nl/database"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	migrateFlag := flag.Bool("migrate", false, "Voer de databasemigraties uit")
	seedFlag := flag.Bool("seed", false, "Voer de seeders uit")
	flag.Parse()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	database.Initialize(configsdatabase.GetDB(), *migrateFlag, *seedFlag)
}
