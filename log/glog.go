// Copyright 2017 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package log

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"math"
	"regexp"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
)

// levelDrop marks call sites that no vmodule rule matched.
const levelDrop = slog.Level(math.MaxInt32)

// errVmoduleSyntax is returned when a user vmodule pattern is invalid.
var errVmoduleSyntax = errors.New("expect comma-separated list of filename=N")

// GlogHandler is a log handler that mimics the filtering features of Google's
// glog logger: a global verbosity ceiling that can be raised for individual
// packages and files with Vmodule patterns.
//
// GlogHandler 模仿 glog 的过滤功能：全局日志级别，加上按文件或包匹配的覆盖规则。
type GlogHandler struct {
	origin slog.Handler // 被包装的基础处理器

	level    atomic.Int32 // 全局日志级别
	override atomic.Bool  // 是否存在 vmodule 覆盖规则

	patterns  []pattern
	siteCache map[uintptr]slog.Level // 调用点匹配结果缓存
	lock      sync.RWMutex
}

// NewGlogHandler wraps h with glog style filtering.
func NewGlogHandler(h slog.Handler) *GlogHandler {
	return &GlogHandler{
		origin: h,
	}
}

// pattern contains a filter for the Vmodule option, holding a verbosity level
// and a file pattern to match.
type pattern struct {
	pattern *regexp.Regexp
	level   slog.Level
}

// Verbosity sets the glog verbosity ceiling. The verbosity of individual packages
// and source files can be raised using Vmodule.
func (h *GlogHandler) Verbosity(level slog.Level) {
	h.level.Store(int32(level))
}

// Vmodule sets the glog verbosity pattern.
//
// The syntax of the argument is a comma-separated list of pattern=N, where the
// pattern is a literal file name or "glob" pattern matching and N is a V level.
//
// For instance:
//
//	pattern="decode.go=5"
//	 sets the V level to 5 in all Go files named "decode.go"
//
//	pattern="rlp=4"
//	 sets V to 4 in all files of any packages whose import path ends in "rlp"
//
//	pattern="cmd/*=4"
//	 sets V to 4 in all files of any packages whose import path contains "cmd"
func (h *GlogHandler) Vmodule(ruleset string) error {
	var filter []pattern
	for _, rule := range strings.Split(ruleset, ",") {
		// Empty strings such as from a trailing comma can be ignored
		if len(rule) == 0 {
			continue
		}
		parts := strings.Split(rule, "=")
		if len(parts) != 2 {
			return errVmoduleSyntax
		}
		name, lvl := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
		if len(name) == 0 || len(lvl) == 0 {
			return errVmoduleSyntax
		}
		l, err := strconv.Atoi(lvl)
		if err != nil {
			return errVmoduleSyntax
		}
		level := FromLegacyLevel(l)
		if level == LevelCrit {
			continue // crit always passes
		}
		filter = append(filter, pattern{compileVmodule(name), level})
	}
	h.lock.Lock()
	defer h.lock.Unlock()

	h.patterns = filter
	h.siteCache = make(map[uintptr]slog.Level)
	h.override.Store(len(filter) != 0)
	return nil
}

// compileVmodule turns a vmodule file or package pattern into a regular
// expression over "+"-prefixed source paths.
func compileVmodule(name string) *regexp.Regexp {
	matcher := ".*"
	for _, comp := range strings.Split(name, "/") {
		if comp == "*" {
			matcher += "(/.*)?"
		} else if comp != "" {
			matcher += "/" + regexp.QuoteMeta(comp)
		}
	}
	if !strings.HasSuffix(name, ".go") {
		matcher += "/[^/]+\\.go"
	}
	return regexp.MustCompile(matcher + "$")
}

// Enabled implements slog.Handler, reporting whether the handler handles records
// at the given level.
func (h *GlogHandler) Enabled(ctx context.Context, lvl slog.Level) bool {
	// fast-track skipping logging if override not enabled and the provided verbosity is above configured
	return h.override.Load() || slog.Level(h.level.Load()) <= lvl
}

// WithAttrs implements slog.Handler, returning a new Handler whose attributes
// consist of both the receiver's attributes and the arguments.
func (h *GlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h.lock.RLock()
	siteCache := maps.Clone(h.siteCache)
	patterns := append([]pattern{}, h.patterns...)
	h.lock.RUnlock()

	res := GlogHandler{
		origin:    h.origin.WithAttrs(attrs),
		patterns:  patterns,
		siteCache: siteCache,
	}
	res.level.Store(h.level.Load())
	res.override.Store(h.override.Load())
	return &res
}

// WithGroup is not supported.
func (h *GlogHandler) WithGroup(name string) slog.Handler {
	panic("not implemented")
}

// Handle implements slog.Handler, filtering a log record through the global
// and the per-file filters, emitting it if either lets it through.
// Handle 先检查全局级别，未通过时再按调用点文件匹配 vmodule 规则。
func (h *GlogHandler) Handle(_ context.Context, r slog.Record) error {
	if slog.Level(h.level.Load()) <= r.Level {
		return h.origin.Handle(context.Background(), r)
	}

	h.lock.RLock()
	lvl, ok := h.siteCache[r.PC]
	h.lock.RUnlock()

	if !ok {
		h.lock.Lock()
		frame, _ := runtime.CallersFrames([]uintptr{r.PC}).Next()
		for _, rule := range h.patterns {
			if rule.pattern.MatchString(fmt.Sprintf("+%s", frame.File)) {
				h.siteCache[r.PC], lvl, ok = rule.level, rule.level, true
			}
		}
		// If no rule matched, remember to drop log the next time
		if !ok {
			lvl = levelDrop
			h.siteCache[r.PC] = lvl
		}
		h.lock.Unlock()
	}
	if lvl <= r.Level {
		return h.origin.Handle(context.Background(), r)
	}
	return nil
}
