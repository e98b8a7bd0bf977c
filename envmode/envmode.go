package envmode

import (
	"os"
	"strings"
	"sync"
)

const ENV_MODE_KEY = "LOGTREE_MODE"

type ENV_MODE string

const (
	DebugMode   ENV_MODE = "debug"
	ReleaseMode ENV_MODE = "release"
	TestMode    ENV_MODE = "test"
)

var (
	currentEnv ENV_MODE
	modeOnce   sync.Once
)

func ParseEnv(env string) ENV_MODE {
	normalizedEnv := strings.ToLower(strings.TrimSpace(env))
	switch normalizedEnv {
	case "debug", "dev", "development", "":
		return DebugMode
	case "release", "prod", "production":
		return ReleaseMode
	case "test", "testing":
		return TestMode
	default:
		return DebugMode
	}
}

func Mode() ENV_MODE {
	if currentEnv == "" {
		modeOnce.Do(func() {
			currentEnv = ParseEnv(os.Getenv(ENV_MODE_KEY))
			if currentEnv == "" {
				currentEnv = DebugMode
			}
		})
	}
	return currentEnv
}

func SetMode(mode ENV_MODE) {
	os.Setenv(ENV_MODE_KEY, string(mode))
	currentEnv = mode
}

// ConfigFileName returns the properties file name looked up during config
// discovery for the current mode.
func ConfigFileName() string {
	if Mode() == ReleaseMode {
		return "logging.properties"
	}
	return "logging-debug.properties"
}
