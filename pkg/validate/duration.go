package validate

import (
	"strconv"
	"strings"
	"time"

	"github.com/centraldiv/botcore/internal/domain"
)

var unitMap = map[string]time.Duration{
	"s": time.Second,
	"m": time.Minute,
	"h": time.Hour,
	"d": 24 * time.Hour,
}

// ParseDuration parses compact notation like "30s", "15m", "2h" or "7d".
func ParseDuration(s string) (time.Duration, error) {
	if len(s) < 2 {
		return 0, domain.ErrInvalidFormat
	}

	unit, ok := unitMap[strings.ToLower(s[len(s)-1:])]
	if !ok {
		return 0, domain.ErrInvalidFormat
	}

	n, err := strconv.ParseInt(s[:len(s)-1], 10, 64)
	if err != nil || n <= 0 {
		return 0, domain.ErrInvalidFormat
	}

	return time.Duration(n) * unit, nil
}
