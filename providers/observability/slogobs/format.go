package slogobs

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Format selects how the Handler renders records.
type Format string

const (
	// FormatCompact renders one line per record:
	// 2026-01-02 15:04:05  INFO Tool dispatched → {"tool.name":"rc_time_constant"}
	FormatCompact Format = "compact"

	// FormatPretty renders the message line followed by one indented line per attribute.
	FormatPretty Format = "pretty"

	// FormatJSON renders one JSON object per record.
	FormatJSON Format = "json"
)

// LevelTrace sits below slog.LevelDebug.
const LevelTrace = slog.LevelDebug - 4

// String returns the format name.
func (f Format) String() string {
	return string(f)
}

// ParseFormat maps "compact", "pretty" or "json" (any case) to a Format.
// Anything else yields FormatCompact.
func ParseFormat(s string) Format {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatPretty:
		return FormatPretty
	case FormatJSON:
		return FormatJSON
	default:
		return FormatCompact
	}
}

// GetFormatFromEnv reads EMCALC_LOG_FORMAT, then LOG_FORMAT.
func GetFormatFromEnv() Format {
	return ParseFormat(firstEnv("EMCALC_LOG_FORMAT", "LOG_FORMAT"))
}

// ParseLogLevel maps TRACE, DEBUG, INFO, WARN/WARNING or ERROR (any case) to a
// slog.Level. Unknown values produce INFO and an error describing the input.
func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "TRACE":
		return LevelTrace, nil
	case "DEBUG":
		return slog.LevelDebug, nil
	case "", "INFO":
		return slog.LevelInfo, nil
	case "WARN", "WARNING":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
	}
}

// GetLogLevelFromEnv reads EMCALC_LOG_LEVEL, then LOG_LEVEL, defaulting to
// INFO. An unparseable value is reported on stderr and treated as INFO.
func GetLogLevelFromEnv() slog.Level {
	level, err := ParseLogLevel(firstEnv("EMCALC_LOG_LEVEL", "LOG_LEVEL"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using INFO\n", err)
	}
	return level
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}
