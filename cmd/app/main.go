package main

import (
	"flag"
	"log"

	"fridgetofeast/cmd/config"
	migration "fridgetofeast/cmd/database/migrate"
	"fridgetofeast/cmd/database/seed"
	"fridgetofeast/internal/utils"
)

func main() {
	runSeed := flag.Bool("seed", false, "load the recipe catalog dataset before starting")
	flag.Parse()

	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	if *runSeed {
		if err := seed.SeedRecipes(db); err != nil {
			log.Fatalf("failed to seed recipes: %v", err)
		}
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to initialize app: %v", err)
	}

	port := utils.GetConfig("APP_PORT")
	if port == "" {
		port = "8080"
	}
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
