// Package config loads validator settings from environment variables.
//
// It wraps `github.com/joho/godotenv` for optional .env files and
// `github.com/caarlos0/env/v11` for parsing the environment into a struct
// through field tags. Every variable is prefixed with VALIDATE_:
//
//	VALIDATE_SELECTOR            forms to validate ([data-validate])
//	VALIDATE_FIELD_CLASS         class of invalid fields (error)
//	VALIDATE_ERROR_CLASS         class of message elements (error-message)
//	VALIDATE_MESSAGES_FILE       YAML or JSON message catalog
//	VALIDATE_DISABLE_SUBMIT      block every submission (false)
//	VALIDATE_PATTERN_CACHE_SIZE  compiled pattern cache entries (256)
//	VALIDATE_PATTERN_TIMEOUT     per-match pattern budget (100ms)
//	VALIDATE_LOG_LEVEL           debug, info, warn or error (info)
//	VALIDATE_LOG_FORMAT          text or json (text)
//
// Usage:
//
//	if err := config.LoadEnv(); err != nil {
//		log.Fatal(err)
//	}
//	var cfg config.Settings
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// Unlike a process-wide cache, Load parses the environment on every call, so
// tests can change variables between loads.
package config
