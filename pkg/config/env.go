package config

import (
	"os"
	"strconv"
	"time"

	"github.com/matzehuels/jsontypings/pkg/errors"
	"github.com/matzehuels/jsontypings/pkg/render"
	"github.com/matzehuels/jsontypings/pkg/typing"
)

// ApplyEnv overlays JSONTYPINGS_* environment variables on s. Unset or
// empty variables leave the current value in place.
//
//	JSONTYPINGS_NAME                 JSONTYPINGS_CACHE_BACKEND
//	JSONTYPINGS_STRING_DELIMITER     JSONTYPINGS_CACHE_DIR
//	JSONTYPINGS_INDENTATION          JSONTYPINGS_REDIS_ADDR
//	JSONTYPINGS_SORT                 JSONTYPINGS_REDIS_PASSWORD
//	JSONTYPINGS_TYPESCRIPT_VERSION   JSONTYPINGS_REDIS_DB
//	JSONTYPINGS_STRATEGY             JSONTYPINGS_SERVER_ADDR
//	JSONTYPINGS_PARTITION            JSONTYPINGS_SERVER_READ_TIMEOUT_MS
//	JSONTYPINGS_WRAP_ARRAYS          JSONTYPINGS_LOG_FILE
func ApplyEnv(s *Settings) error {
	s.Name = getEnvString("NAME", s.Name)
	s.StringDelimiter = getEnvString("STRING_DELIMITER", s.StringDelimiter)
	s.Indentation = getEnvString("INDENTATION", s.Indentation)
	s.Sort = getEnvBool("SORT", s.Sort)
	s.TypeScriptVersion = getEnvString("TYPESCRIPT_VERSION", s.TypeScriptVersion)
	s.WrapArrays = getEnvBool("WRAP_ARRAYS", s.WrapArrays)

	if v := getEnvString("STRATEGY", ""); v != "" {
		k, err := render.ParseStrategy(v)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "%sSTRATEGY", EnvPrefix)
		}
		s.Strategy = k
	}
	if v := getEnvString("PARTITION", ""); v != "" {
		p, err := typing.ParsePartition(v)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "%sPARTITION", EnvPrefix)
		}
		s.Partition = p
	}

	s.Cache.Backend = getEnvString("CACHE_BACKEND", s.Cache.Backend)
	s.Cache.Dir = getEnvString("CACHE_DIR", s.Cache.Dir)
	s.Cache.RedisAddr = getEnvString("REDIS_ADDR", s.Cache.RedisAddr)
	s.Cache.RedisPassword = getEnvString("REDIS_PASSWORD", s.Cache.RedisPassword)
	s.Cache.RedisDB = getEnvInt("REDIS_DB", s.Cache.RedisDB)

	s.Server.Addr = getEnvString("SERVER_ADDR", s.Server.Addr)
	s.Server.ReadTimeout.Duration = getEnvDurationMs("SERVER_READ_TIMEOUT_MS", s.Server.ReadTimeout.Duration)
	s.Server.WriteTimeout.Duration = getEnvDurationMs("SERVER_WRITE_TIMEOUT_MS", s.Server.WriteTimeout.Duration)

	s.Log.File = getEnvString("LOG_FILE", s.Log.File)
	return nil
}

func getEnvBool(key string, defaultVal bool) bool {
	if v := os.Getenv(EnvPrefix + key); v != "" {
		switch v {
		case "1", "true", "yes", "on":
			return true
		case "0", "false", "no", "off":
			return false
		}
	}
	return defaultVal
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(EnvPrefix + key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(EnvPrefix + key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDurationMs(key string, defaultVal time.Duration) time.Duration {
	ms := getEnvInt(key, -1)
	if ms < 0 {
		return defaultVal
	}
	return time.Duration(ms) * time.Millisecond
}
