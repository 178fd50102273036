package config

import "os"

// Addr returns the HTTP listen address, ":8080" unless APP_PORT is set.
func Addr() string {
	if port, ok := os.LookupEnv("APP_PORT"); ok {
		return ":" + port
	}
	return ":8080"
}

func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}

// LogFile returns the path for rotating file logs, empty to disable.
func LogFile() string {
	return os.Getenv("LOG_FILE")
}
