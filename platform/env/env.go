package env

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Load reads the given dotenv files into the process env, a missing file is not an error.
// Variables already set are never overridden.
func Load(log *zap.SugaredLogger, files ...string) {
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			log.Warn("error loading env file ", f, ": ", err)
			continue
		}
		log.Info("loaded env file ", f)
	}
}

// OrDefault return the result of searching an env var, if the env var value is empty, return a default value
func OrDefault(log *zap.SugaredLogger, env, def string) string {
	if v, ok := os.LookupEnv(env); ok && v != "" {
		return v
	}
	log.Debug("env ", env, " not set, using default")
	return def
}

// Must return the result of searching an env var, exiting when it is empty
func Must(log *zap.SugaredLogger, env string) string {
	v := os.Getenv(env)
	if v == "" {
		log.Fatal("env ", env, " is required")
	}
	return v
}
