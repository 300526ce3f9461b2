package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/dwitvliet/coffee-chats/internal/config"
	"github.com/dwitvliet/coffee-chats/internal/database"
	"github.com/dwitvliet/coffee-chats/internal/domain/service"
	"github.com/dwitvliet/coffee-chats/internal/handlers"
	"github.com/dwitvliet/coffee-chats/internal/scheduler"
	slackclient "github.com/dwitvliet/coffee-chats/internal/slack"
	"github.com/dwitvliet/coffee-chats/migrator/sqlite"
	"github.com/joho/godotenv"
	"github.com/slack-go/slack"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := config.Load()

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Println("Running migrations...")
	if err := sqlite.Migrate(db.DB()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	slackAPI := slackclient.NewClient(slack.New(cfg.SlackBotToken))

	dm := database.NewInstance(db)
	services := service.New(dm, slackAPI, cfg.SlackTeamID)

	sched := scheduler.New(services.Scheduler, cfg.TickTime)
	sched.Start()
	defer sched.Stop()

	handler := handlers.New(slackAPI, services.Coffee, cfg.SlackSigningSecret, cfg.SlackTeamID)

	http.HandleFunc("/slack/commands", handler.HandleSlashCommand)
	http.HandleFunc("/slack/interactions", handler.HandleInteraction)
	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})

	log.Printf("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
