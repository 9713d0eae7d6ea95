package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/born-ml/ndarray/internal/ndarray"
)

const envLogLevel = "NDARRAY_LOG_LEVEL"

// Config holds CLI settings resolved from flags and the environment.
type Config struct {
	LogLevel logrus.Level // Minimum level that is logged
	LogFile  string       // Rotating log file; empty means stderr
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		LogLevel: logrus.InfoLevel,
	}
}

// loadConfig merges the environment and flags over DefaultConfig. The -v
// flag wins over NDARRAY_LOG_LEVEL.
func loadConfig(getenv func(string) string, verbose bool, logFile string) (Config, error) {
	cfg := DefaultConfig()
	if raw := strings.TrimSpace(getenv(envLogLevel)); raw != "" {
		level, err := logrus.ParseLevel(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", envLogLevel, err)
		}
		cfg.LogLevel = level
	}
	if verbose {
		cfg.LogLevel = logrus.DebugLevel
	}
	cfg.LogFile = logFile
	return cfg, nil
}

// configureLogging points the package logger at stderr or a rotating file.
// The returned func closes the file, if any.
func configureLogging(cfg Config, stderr io.Writer) func() {
	log.SetLevel(cfg.LogLevel)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: cfg.LogFile == ""})
	if cfg.LogFile == "" {
		log.SetOutput(stderr)
		return func() {}
	}

	rotating := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}
	log.SetOutput(rotating)
	return func() { _ = rotating.Close() }
}

// parseOrder maps a -order flag value onto a byte order.
func parseOrder(s string) (ndarray.Endian, error) {
	switch strings.ToLower(s) {
	case "native", "":
		return ndarray.Native, nil
	case "little", "le":
		return ndarray.Little, nil
	case "big", "be":
		return ndarray.Big, nil
	default:
		return 0, fmt.Errorf("unknown byte order %q (want little, big or native)", s)
	}
}
