package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	DBDSN    string
	MediaDir string
	SiteURL  string
	LogFile  string
}

func Load() Config {
	// Optional .env for local runs; env vars win.
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "bagatelle.db"
	} // sqlite file in project root
	media := os.Getenv("MEDIA_DIR")
	if media == "" {
		media = "./web/media"
	}
	site := os.Getenv("SITE_URL")
	if site == "" {
		site = "http://localhost:" + port
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./bagatelle.log"
	}

	cfg := Config{Port: port, DBDSN: dsn, MediaDir: media, SiteURL: site, LogFile: logFile}
	log.Printf("[config] PORT=%s DB_DSN=%s MEDIA_DIR=%s SITE_URL=%s LOG_FILE=%s",
		cfg.Port, cfg.DBDSN, cfg.MediaDir, cfg.SiteURL, cfg.LogFile)
	return cfg
}
