package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/wiw0411-bot/tennisforum/internal/docstore"
	"github.com/wiw0411-bot/tennisforum/internal/router"
)

func main() {
	// Local development reads its configuration from a .env file. In
	// production the environment is set by the deployment.
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

	store, err := openStore()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	r, err := router.Router(store)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	if err := r.Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}

// openStore connects to the document store selected by the
// DOCSTORE_DRIVER environment variable. The default is an embedded
// sqlite database in the data directory.
func openStore() (docstore.Store, error) {
	driver := os.Getenv("DOCSTORE_DRIVER")

	if driver == "redis" {
		addr := os.Getenv("REDIS_URL")
		if addr == "" {
			addr = "localhost:6379"
		}

		log.Info().Str("addr", addr).Msg("using redis document store")
		return docstore.OpenRedis(addr)
	}

	// Create data directory
	dataDir := filepath.Join(".", "data")
	err := os.MkdirAll(dataDir, os.ModePerm)
	if err != nil {
		return nil, err
	}

	return docstore.OpenSQLite(filepath.Join(dataDir, "docstore.db?_pragma=busy_timeout(5000)"))
}
