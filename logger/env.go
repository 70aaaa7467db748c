package logger

import (
	"os"
	"strconv"
)

const (
	envLogLevel = "LOG_LEVEL"
)

func envInt(env string, def int) int {
	i, err := strconv.Atoi(os.Getenv(env))
	if err != nil {
		return def
	}

	return i
}
