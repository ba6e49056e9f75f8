package main

import (
	"io"
	"net/url"
	"os"
	"path/filepath"

	"github.com/expense-manager/backend/internal/models"
	"github.com/expense-manager/backend/internal/router"
	"github.com/expense-manager/backend/internal/storage"
	"github.com/expense-manager/backend/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load a .env file if one exists, the environment takes precedence
	_ = godotenv.Load()

	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	// Connect to the database
	dsn, ok := os.LookupEnv("DB_DSN")
	if !ok {
		dataDir := filepath.Join(".", "data")
		if err := os.MkdirAll(dataDir, os.ModePerm); err != nil {
			log.Fatal().Msg(err.Error())
		}

		dsn = filepath.Join(dataDir, "expenses.db")
	}

	if err := models.Connect(dsn); err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Load the expenses into memory
	expenses, err := store.New(storage.NewExpenseRepository(models.DB))
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	log.Info().Int("expenses", expenses.Count()).Msg("Store")

	// The base URL is used to construct links in responses
	rawURL, ok := os.LookupEnv("API_URL")
	if !ok {
		rawURL = "http://localhost:8080"
	}

	apiURL, err := url.Parse(rawURL)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	r, teardown, err := router.Config(apiURL)
	defer teardown()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	router.AttachRoutes(expenses, r.Group("/"))

	if err := r.Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
