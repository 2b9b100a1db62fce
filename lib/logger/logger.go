package logger

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
)

const (
	envLocal    = "local"
	envDev      = "dev"
	envProd     = "prod"
	logFileName = "siigosync.log"
)

// SetupLogger writes to stdout for local runs and to a file under logDir otherwise
func SetupLogger(env, logDir string) *slog.Logger {
	var out io.Writer = os.Stdout
	level := slog.LevelDebug

	switch env {
	case envLocal:
	case envDev, envProd:
		logPath := filepath.Join(logDir, logFileName)
		logFile, err := os.OpenFile(logPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			log.Fatal("error opening log file: ", err)
		}
		log.Printf("env: %s; log file: %s", env, logPath)
		out = logFile
		if env == envProd {
			level = slog.LevelInfo
		}
	default:
		log.Fatal("invalid environment: ", env)
	}

	return slog.New(
		slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}),
	)
}

// Discard is a logger for tests and optional components
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
