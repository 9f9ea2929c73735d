package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr string
	GinMode string

	DBDSN string

	// Tabular source settings. When SheetFile is set the local XLSX source
	// is used instead of the Google Sheets API.
	SheetID          string
	SheetRange       string
	SheetFile        string
	GoogleCredsJSON  string
	AllowedOrigins   []string
}

func LoadEnv() Env {
	// .env is optional; real deployments set the variables directly.
	_ = godotenv.Load()

	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	dsn := strings.TrimSpace(os.Getenv("DB_DSN"))

	sheetRange := strings.TrimSpace(os.Getenv("SHEET_RANGE"))
	if sheetRange == "" {
		// Data starts on row 2; row 1 is the header and never reaches
		// the normalizer.
		sheetRange = "External!A2:Z"
	}

	var origins []string
	for _, o := range strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}

	return Env{
		AppAddr:         appAddr,
		GinMode:         strings.TrimSpace(os.Getenv("GIN_MODE")),
		DBDSN:           dsn,
		SheetID:         strings.TrimSpace(os.Getenv("GOOGLE_SHEET_ID")),
		SheetRange:      sheetRange,
		SheetFile:       strings.TrimSpace(os.Getenv("SHEET_FILE")),
		GoogleCredsJSON: os.Getenv("GOOGLE_SERVICE_ACCOUNT"),
		AllowedOrigins:  origins,
	}
}
