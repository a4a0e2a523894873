// Package config exposes process-wide configuration read from the
// environment. Values are resolved at startup and treated as read-only
// afterwards.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	name    = "priceboard"
	version = "1.0.0"
)

type LogLevel string

const (
	Debug LogLevel = "debug"
	Info  LogLevel = "info"
	Warn  LogLevel = "warn"
	Error LogLevel = "error"
)

func GetVersion() string {
	return version
}

func GetName() string {
	return name
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("DEBUG") == "true"
}

func GetPort() int {
	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil || port <= 0 {
		return 5000
	}
	return port
}

func GetDBFolderPath() string {
	dbFolderPath := os.Getenv("DB_FOLDER")
	if dbFolderPath == "" {
		dbFolderPath = "db"
	}
	return dbFolderPath
}

func GetDBPath() string {
	return fmt.Sprintf("%s/%s.db", GetDBFolderPath(), GetName())
}

func GetJWTSecret() string {
	return os.Getenv("JWT_SECRET")
}

// GetTokenLifetime returns the bearer token lifetime. JWT_EXPIRES_IN accepts
// Go duration syntax; unset or unparsable values fall back to 7 days.
func GetTokenLifetime() time.Duration {
	lifetime, err := time.ParseDuration(os.Getenv("JWT_EXPIRES_IN"))
	if err != nil || lifetime <= 0 {
		return 7 * 24 * time.Hour
	}
	return lifetime
}

func GetCORSOrigin() string {
	origin := os.Getenv("FRONTEND_URL")
	if origin == "" {
		origin = "http://localhost:3000"
	}
	return origin
}

func GetLogFolder() string {
	logFolderPath := os.Getenv("LOG_FOLDER")
	if logFolderPath == "" {
		logFolderPath = "log"
	}
	return logFolderPath
}
