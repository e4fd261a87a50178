package main

import (
	"context"
	"flag"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/bubtcse/retakewizard/internal/app"
	"github.com/bubtcse/retakewizard/internal/handlers"
)

func main() {
	var configPath = flag.String("config", "config.toml", "Path to config file")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		logger.Debug.Println("No .env file found, using real environment")
	}

	service, err := app.NewService(*configPath)
	if err != nil {
		logger.Error.Fatalf("Failed to init service: %v", err)
	}
	defer service.Close()

	if err := service.Store.EnsureIndexes(context.Background()); err != nil {
		logger.Error.Fatalf("Failed to ensure indexes: %v", err)
	}

	studentHandler := handlers.NewStudentHandler(service)

	http.HandleFunc("GET /api/v1/courses", studentHandler.HandleListCourses)
	http.HandleFunc("GET /api/v1/students/{id}", studentHandler.HandleSearchStudent)
	http.HandleFunc("POST /api/v1/students", studentHandler.HandleSaveStudent)
	http.HandleFunc("GET /api/v1/rankings", studentHandler.HandleRankings)
	http.HandleFunc("POST /api/v1/admin/login", studentHandler.HandleLogin)
	http.HandleFunc("GET /api/v1/admin/session", studentHandler.HandleSession)

	http.Handle("/metrics", promhttp.Handler())

	logger.Info.Printf("Starting retakewizard server on %s", service.Config.Server.Port)
	if err := http.ListenAndServe(service.Config.Server.Port, nil); err != nil {
		logger.Error.Fatalf("Retakewizard server failed: %v", err)
	}
}
