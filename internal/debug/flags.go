// Copyright 2016 The go-ethereum Authors
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

// Package debug wires the logging and profiling command line flags.
package debug

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/pprof"

	"github.com/learn-bcos/go-bcos/internal/flags"
	"github.com/learn-bcos/go-bcos/log"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	verbosityFlag = &cli.IntFlag{
		Name:     "verbosity",
		Usage:    "Logging verbosity: 0=silent, 1=error, 2=warn, 3=info, 4=debug, 5=detail",
		Value:    3,
		Category: flags.LoggingCategory,
	}
	logVmoduleFlag = &cli.StringFlag{
		Name:     "log.vmodule",
		Usage:    "Per-module verbosity: comma-separated list of <pattern>=<level> (e.g. rlp/*=5,cmd=4)",
		Category: flags.LoggingCategory,
	}
	logFormatFlag = &cli.StringFlag{
		Name:     "log.format",
		Usage:    "Log format to use (json|logfmt|terminal)",
		Category: flags.LoggingCategory,
	}
	logFileFlag = &cli.StringFlag{
		Name:     "log.file",
		Usage:    "Write logs to a file",
		Category: flags.LoggingCategory,
	}
	logRotateFlag = &cli.BoolFlag{
		Name:     "log.rotate",
		Usage:    "Enables log file rotation",
		Category: flags.LoggingCategory,
	}
	logMaxSizeMBsFlag = &cli.IntFlag{
		Name:     "log.maxsize",
		Usage:    "Maximum size in MBs of a single log file",
		Value:    100,
		Category: flags.LoggingCategory,
	}
	logMaxBackupsFlag = &cli.IntFlag{
		Name:     "log.maxbackups",
		Usage:    "Maximum number of log files to retain",
		Value:    10,
		Category: flags.LoggingCategory,
	}
	logMaxAgeFlag = &cli.IntFlag{
		Name:     "log.maxage",
		Usage:    "Maximum number of days to retain a log file",
		Value:    30,
		Category: flags.LoggingCategory,
	}
	logCompressFlag = &cli.BoolFlag{
		Name:     "log.compress",
		Usage:    "Compress the log files",
		Category: flags.LoggingCategory,
	}
	cpuprofileFlag = &cli.StringFlag{
		Name:     "pprof.cpuprofile",
		Usage:    "Write CPU profile to the given file",
		Category: flags.LoggingCategory,
	}
)

// Flags holds all command-line flags required for debugging.
var Flags = []cli.Flag{
	verbosityFlag,
	logVmoduleFlag,
	logFormatFlag,
	logFileFlag,
	logRotateFlag,
	logMaxSizeMBsFlag,
	logMaxBackupsFlag,
	logMaxAgeFlag,
	logCompressFlag,
	cpuprofileFlag,
}

// LogConfig collects the logging settings of a process.
type LogConfig struct {
	Verbosity int    // 0..5, see log.FromLegacyLevel
	Vmodule   string // glog style per-file verbosity
	Format    string // json, logfmt or terminal (default)
	File      string // additional log file

	Rotate     bool // rotate File with lumberjack
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

var (
	logOutputFile io.WriteCloser
	cpuProfile    *os.File
)

// Setup initializes profiling and logging based on the CLI flags.
// It should be called as early as possible in the program.
// Setup 根据命令行标志初始化日志和性能分析，应尽早调用。
func Setup(ctx *cli.Context) error {
	cfg := LogConfig{
		Verbosity:  ctx.Int(verbosityFlag.Name),
		Vmodule:    ctx.String(logVmoduleFlag.Name),
		Format:     ctx.String(logFormatFlag.Name),
		File:       ctx.String(logFileFlag.Name),
		Rotate:     ctx.Bool(logRotateFlag.Name),
		MaxSizeMB:  ctx.Int(logMaxSizeMBsFlag.Name),
		MaxBackups: ctx.Int(logMaxBackupsFlag.Name),
		MaxAgeDays: ctx.Int(logMaxAgeFlag.Name),
		Compress:   ctx.Bool(logCompressFlag.Name),
	}
	if err := SetupLogging(cfg, os.Stderr); err != nil {
		return err
	}
	if file := ctx.String(cpuprofileFlag.Name); file != "" {
		return startCPUProfile(flags.ExpandPath(file))
	}
	return nil
}

// SetupLogging installs a root logger writing to terminal and, if configured,
// to a log file.
// SetupLogging 按配置安装根日志记录器，输出到终端以及可选的日志文件。
func SetupLogging(cfg LogConfig, terminal io.Writer) error {
	var (
		handler slog.Handler
		output  io.Writer
		context = []interface{}{"rotate", cfg.Rotate}
	)
	if cfg.File != "" {
		if err := validateLogLocation(filepath.Dir(cfg.File)); err != nil {
			return fmt.Errorf("failed to initialize file logger: %v", err)
		}
	}
	if cfg.Format != "" {
		context = append(context, "format", cfg.Format)
	} else {
		context = append(context, "format", "terminal")
	}
	useColor := false
	if cfg.Format == "" || cfg.Format == "terminal" {
		if f, ok := terminal.(*os.File); ok {
			useColor = (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) && os.Getenv("TERM") != "dumb"
			if useColor {
				terminal = colorable.NewColorable(f)
			}
		}
	}
	closeLogFile()
	switch {
	case cfg.Rotate:
		// Lumberjack uses <processname>-lumberjack.log in os.TempDir() if empty.
		location := cfg.File
		if location == "" {
			location = filepath.Join(os.TempDir(), filepath.Base(os.Args[0])+"-lumberjack.log")
		}
		context = append(context, "location", location)
		logOutputFile = &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		}
		output = io.MultiWriter(terminal, logOutputFile)
	case cfg.File != "":
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		logOutputFile = f
		output = io.MultiWriter(terminal, logOutputFile)
		context = append(context, "location", cfg.File)
	default:
		output = terminal
	}

	switch cfg.Format {
	case "json":
		handler = log.JSONHandler(output)
	case "logfmt":
		handler = log.LogfmtHandler(output)
	case "", "terminal":
		handler = log.NewTerminalHandler(output, useColor)
	default:
		return fmt.Errorf("unknown log format: %v", cfg.Format)
	}

	glogger := log.NewGlogHandler(handler)
	glogger.Verbosity(log.FromLegacyLevel(cfg.Verbosity))
	if err := glogger.Vmodule(cfg.Vmodule); err != nil {
		return fmt.Errorf("invalid --%s: %w", logVmoduleFlag.Name, err)
	}
	log.SetDefault(log.NewLogger(glogger))

	if cfg.File != "" || cfg.Rotate {
		log.Info("Logging configured", context...)
	}
	return nil
}

func startCPUProfile(file string) error {
	if cpuProfile != nil {
		return errors.New("CPU profiling already in progress")
	}
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return err
	}
	cpuProfile = f
	log.Info("CPU profiling started", "dump", file)
	return nil
}

// Exit stops the CPU profile and closes the log file.
// Exit 停止 CPU 性能分析并关闭日志文件。
func Exit() {
	if cpuProfile != nil {
		pprof.StopCPUProfile()
		cpuProfile.Close()
		log.Info("CPU profile written", "dump", cpuProfile.Name())
		cpuProfile = nil
	}
	closeLogFile()
}

func closeLogFile() {
	if logOutputFile != nil {
		logOutputFile.Close()
		logOutputFile = nil
	}
}

// validateLogLocation checks if the log directory is valid and writable.
func validateLogLocation(path string) error {
	if err := os.MkdirAll(path, os.ModePerm); err != nil {
		return fmt.Errorf("error creating the directory: %w", err)
	}
	// Check if the path is writable by trying to create a temporary file
	tmp := filepath.Join(path, "tmp")
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	f.Close()
	return os.Remove(tmp)
}
