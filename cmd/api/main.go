package main

import (
	"github.com/dennisjyw/NotionJourney/internal/config"
	"github.com/dennisjyw/NotionJourney/internal/handler"
	"github.com/dennisjyw/NotionJourney/internal/logger"
	"github.com/dennisjyw/NotionJourney/internal/notion"
	"github.com/dennisjyw/NotionJourney/internal/trip"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

type application struct {
	Logger  *zap.Logger
	Config  *config.Config
	Notion  *notion.Client
	Trips   *trip.Service
	Handler *handler.Handler
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, _ := logger.NewLogger(cfg.Env)
	defer log.Sync()
	sugar := log.Sugar()
	sugar.Infof("config loaded, env=%s", cfg.Env)

	notionClient := notion.NewClient(cfg.Notion.APIKey, cfg.Notion.Timeout)
	tripService := trip.NewService(notionClient, cfg.Notion.DatabaseID, log)

	app := &application{
		Logger: log,
		Config: cfg,
		Notion: notionClient,
		Trips:  tripService,
		Handler: &handler.Handler{
			Logger: log,
			Trips:  tripService,
		},
	}

	if err := app.serve(); err != nil {
		sugar.Fatal(err)
	}
}
