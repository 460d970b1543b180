package main

import (
	"context"
	"fmt"
	"log"

	"reloop-backend/cmd/config"
	"reloop-backend/cmd/database/migrate"
	"reloop-backend/internal/utils"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("error connecting to database: %v", err)
	}
	migrate.Migrate(db)

	app, err := config.NewApp(context.Background(), db)
	if err != nil {
		log.Fatalf("error creating app: %v", err)
	}

	port := utils.GetConfig("PORT")
	if port == "" {
		port = "8080"
	}
	if err := app.Listen(fmt.Sprintf(":%s", port)); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
