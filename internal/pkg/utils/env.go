package utils

import (
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// getEnv returns defaultValue for a missing or unparsable variable. Parse
// failures are logged so a typo in the environment is visible at startup.
func getEnv(key string, defaultValue interface{}) interface{} {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	switch defaultValue.(type) {
	case string:
		return value
	case int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			logEnvFallback(key, value, defaultValue, err)
			return defaultValue
		}
		return intValue
	case bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			logEnvFallback(key, value, defaultValue, err)
			return defaultValue
		}
		return boolValue
	case []string:
		var values []string
		for _, item := range strings.Split(value, ",") {
			if item = strings.TrimSpace(item); item != "" {
				values = append(values, item)
			}
		}
		return values
	default:
		return defaultValue
	}
}

func logEnvFallback(key, value string, defaultValue interface{}, err error) {
	logrus.WithFields(logrus.Fields{
		"key":     key,
		"value":   value,
		"default": defaultValue,
	}).Warnf("Cannot parse environment variable: %v", err)
}

func GetEnvString(key, defaultValue string) string {
	return getEnv(key, defaultValue).(string)
}

func GetEnvInt(key string, defaultValue int) int {
	return getEnv(key, defaultValue).(int)
}

func GetEnvBool(key string, defaultValue bool) bool {
	return getEnv(key, defaultValue).(bool)
}

// GetEnvStringSlice reads a comma separated list, dropping empty items.
func GetEnvStringSlice(key string, defaultValue []string) []string {
	return getEnv(key, defaultValue).([]string)
}
