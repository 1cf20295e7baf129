package log

import (
	"log/slog"
	"math"
)

const (
	levelMaxVerbosity slog.Level = math.MinInt
	LevelTrace        slog.Level = -8 // 跟踪级别
	LevelDebug                   = slog.LevelDebug
	LevelInfo                    = slog.LevelInfo
	LevelWarn                    = slog.LevelWarn
	LevelError                   = slog.LevelError
	LevelCrit         slog.Level = 12 // 严重级别，记录后进程退出
)

// Legacy verbosity values as accepted by --verbosity and --log.vmodule.
// 命令行使用的旧版详细级别：0=crit ... 5=trace。
const (
	legacyLevelCrit = iota
	legacyLevelError
	legacyLevelWarn
	legacyLevelInfo
	legacyLevelDebug
	legacyLevelTrace
)

// FromLegacyLevel converts a 0..5 verbosity number into a slog level. Values
// above 5 mean trace, negative values mean crit.
// FromLegacyLevel 将 0..5 的详细级别转换为 slog 日志级别。
func FromLegacyLevel(lvl int) slog.Level {
	switch {
	case lvl >= legacyLevelTrace:
		return LevelTrace
	case lvl == legacyLevelDebug:
		return LevelDebug
	case lvl == legacyLevelInfo:
		return LevelInfo
	case lvl == legacyLevelWarn:
		return LevelWarn
	case lvl == legacyLevelError:
		return LevelError
	default:
		return LevelCrit
	}
}

// LevelAlignedString returns the level name padded to five characters.
func LevelAlignedString(l slog.Level) string {
	switch l {
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO "
	case LevelWarn:
		return "WARN "
	case LevelError:
		return "ERROR"
	case LevelCrit:
		return "CRIT "
	default:
		return "unknown level"
	}
}

// LevelString returns the lower case name of a level.
// LevelString 返回日志级别的小写名称。
func LevelString(l slog.Level) string {
	switch l {
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelCrit:
		return "crit"
	default:
		return "unknown"
	}
}

// levelColor returns the ANSI colour sequence used for l on terminals.
func levelColor(l slog.Level) string {
	switch l {
	case LevelCrit:
		return "\x1b[35m"
	case LevelError:
		return "\x1b[31m"
	case LevelWarn:
		return "\x1b[33m"
	case LevelInfo:
		return "\x1b[32m"
	case LevelDebug:
		return "\x1b[36m"
	case LevelTrace:
		return "\x1b[34m"
	}
	return ""
}
