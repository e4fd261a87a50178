// catalogctl loads the course catalog from a TOML file into the store.
// The web service treats the catalog as read-only; this is the loading
// process that maintains it.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/bubtcse/retakewizard/internal/app"
	"github.com/bubtcse/retakewizard/internal/models"
)

type catalogFile struct {
	Courses []struct {
		Code string `toml:"code"`
		Name string `toml:"name"`
	} `toml:"courses"`
}

func main() {
	var configPath = flag.String("config", "config.toml", "Path to config file")
	var catalogPath = flag.String("catalog", "courses.toml", "Path to course catalog file")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		logger.Debug.Println("No .env file found, using real environment")
	}

	config, err := app.LoadConfig(*configPath)
	if err != nil {
		logger.Error.Fatalf("Failed to load config: %v", err)
	}

	store, err := app.NewStore(config.Database.DSN, config.Database.Name)
	if err != nil {
		logger.Error.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	data, err := os.ReadFile(*catalogPath)
	if err != nil {
		logger.Error.Fatalf("Failed to read catalog file: %v", err)
	}

	var catalog catalogFile
	if err := toml.Unmarshal(data, &catalog); err != nil {
		logger.Error.Fatalf("Failed to parse catalog file %s: %v", *catalogPath, err)
	}

	ctx := context.Background()
	if err := store.EnsureIndexes(ctx); err != nil {
		logger.Error.Fatalf("Failed to ensure indexes: %v", err)
	}

	for _, course := range catalog.Courses {
		if course.Code == "" || course.Name == "" {
			logger.Error.Fatalf("Catalog entry needs both code and name: %+v", course)
		}
		if err := store.PutCourse(ctx, models.Course{Code: course.Code, Name: course.Name}); err != nil {
			logger.Error.Fatalf("Failed to store course %s: %v", course.Code, err)
		}
	}

	logger.Info.Printf("Loaded %d courses into the catalog", len(catalog.Courses))
}
