package config

import (
	"log"
	"os"
)

type Config struct {
	Port           string
	DBDSN          string
	MediaDir       string
	LogFile        string
	CatalogBaseURL string
	CatalogAPIKey  string
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "tradebinder.db"
	} // sqlite file in project root
	media := os.Getenv("MEDIA_DIR")
	if media == "" {
		media = "./uploads"
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./tradebinder.log" // default log sink in project root
	}
	catalogURL := os.Getenv("CATALOG_BASE_URL")
	if catalogURL == "" {
		catalogURL = "https://api.pokemontcg.io/v2"
	}
	catalogKey := os.Getenv("CATALOG_API_KEY") // optional; catalog degrades without it

	cfg := Config{
		Port:           port,
		DBDSN:          dsn,
		MediaDir:       media,
		LogFile:        logFile,
		CatalogBaseURL: catalogURL,
		CatalogAPIKey:  catalogKey,
	}
	log.Printf("[config] PORT=%s DB_DSN=%s MEDIA_DIR=%s LOG_FILE=%s CATALOG=%s",
		cfg.Port, cfg.DBDSN, cfg.MediaDir, cfg.LogFile, cfg.CatalogBaseURL)
	return cfg
}
