package config

import "os"

// Development is on when DEVELOPMENT is set to anything but "0".
func Development() bool {
	v, ok := os.LookupEnv("DEVELOPMENT")
	return ok && v != "0"
}

// LogFormat selects the production log handler, "json" (default) or "text".
func LogFormat() string {
	if format, ok := os.LookupEnv("LOG_FORMAT"); ok {
		return format
	}
	return "json"
}

// LogFile is where logs go while the terminal is taken by the game. Empty
// means stderr.
func LogFile() string {
	return os.Getenv("LOG_FILE")
}
