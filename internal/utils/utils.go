package utils

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// LoadEnv loads .env if present and returns the required variables, failing
// on the first one that is unset.
func LoadEnv(requiredVars []string) (map[string]string, error) {
	_ = godotenv.Load()

	envVars := make(map[string]string)

	for _, key := range requiredVars {
		value := os.Getenv(key)
		if value == "" {
			return nil, fmt.Errorf("missing required environment variable: %s", key)
		}
		envVars[key] = value
	}

	return envVars, nil
}

// FormatTimestamp renders milliseconds as an LRC style mm:ss.xx tag body.
func FormatTimestamp(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	minutes := ms / 60000
	seconds := (ms / 1000) % 60
	hundredths := (ms % 1000) / 10
	return fmt.Sprintf("%02d:%02d.%02d", minutes, seconds, hundredths)
}

// MaxTimestampMs bounds ParseTimestamp: one day.
const MaxTimestampMs = 24 * 60 * 60 * 1000

// ParseTimestamp reads "mm:ss", "mm:ss.xx" or plain seconds as milliseconds.
// Values past MaxTimestampMs, NaN and infinities are rejected.
func ParseTimestamp(s string) (int64, error) {
	s = strings.TrimSpace(s)
	minutes := int64(0)
	if m, rest, ok := strings.Cut(s, ":"); ok {
		n, err := strconv.ParseInt(m, 10, 64)
		if err != nil || n < 0 || n > MaxTimestampMs/60000 {
			return 0, fmt.Errorf("invalid minutes in %q", s)
		}
		minutes, s = n, rest
	}
	seconds, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(seconds) || seconds < 0 || seconds > MaxTimestampMs/1000 {
		return 0, fmt.Errorf("invalid seconds in %q", s)
	}
	total := minutes*60000 + int64(seconds*1000+0.5)
	if total > MaxTimestampMs {
		return 0, fmt.Errorf("timestamp %q is past %s", s, FormatTimestamp(MaxTimestampMs))
	}
	return total, nil
}
