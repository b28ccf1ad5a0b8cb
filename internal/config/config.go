package config

import (
	"os"
	"path/filepath"
	"strconv"
)

type Config struct {
	Addr      string
	DataDir   string
	DBPath    string
	JWTSecret string
	LogLevel  string
	NodeID    int64
}

func Load() Config {
	addr := os.Getenv("FOLIO_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	dataDir := os.Getenv("FOLIO_DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}
	dbPath := os.Getenv("FOLIO_DB_PATH")
	if dbPath == "" {
		dbPath = filepath.Join(dataDir, "folio.db")
	}
	logLevel := os.Getenv("FOLIO_LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	nodeID := int64(0)
	if raw := os.Getenv("FOLIO_NODE_ID"); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil {
			nodeID = parsed
		}
	}

	return Config{
		Addr:      addr,
		DataDir:   filepath.Clean(dataDir),
		DBPath:    filepath.Clean(dbPath),
		JWTSecret: os.Getenv("FOLIO_JWT_SECRET"),
		LogLevel:  logLevel,
		NodeID:    nodeID,
	}
}
