// Copyright 2024 The go-ethereum Authors
// This file is part of go-ethereum.
//
// go-ethereum is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-ethereum is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-ethereum. If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"reflect"

	"github.com/learn-bcos/go-bcos/internal/flags"
	"github.com/naoina/toml"
	"github.com/urfave/cli/v2"
)

var (
	dumpConfigCommand = &cli.Command{
		Action:      dumpConfig,
		Name:        "dumpconfig",
		Usage:       "Export configuration values in a TOML format",
		ArgsUsage:   "<dumpfile (optional)>",
		Description: `Export configuration values in TOML format (to stdout by default).`,
	}

	configFileFlag = &cli.StringFlag{
		Name:     "config",
		Usage:    "TOML configuration file",
		Category: flags.MiscCategory,
	}
)

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		return fmt.Errorf("field '%s' is not defined in %s", field, rt.String())
	},
}

type decodeConfig struct {
	Strict     bool // top-level input must be exactly one item
	Compressed bool // input is a snappy block
	Base64     bool // input is base64 text
}

type outputConfig struct {
	Indent   string
	ShowInts bool // annotate short strings with their integer value
	NoASCII  bool // print printable strings as hex too
}

type workersConfig struct {
	Count int
}

type rlpdumpConfig struct {
	Decode  decodeConfig
	Output  outputConfig
	Workers workersConfig
}

var defaultConfig = rlpdumpConfig{
	Decode:  decodeConfig{Strict: true},
	Output:  outputConfig{Indent: "  ", ShowInts: true},
	Workers: workersConfig{Count: 4},
}

func loadConfig(file string, cfg *rlpdumpConfig) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}

// makeConfig loads the configuration file, if any, and applies the command
// line flags on top of it.
// makeConfig 先加载配置文件，再用命令行标志覆盖其中的值。
func makeConfig(ctx *cli.Context) (rlpdumpConfig, error) {
	cfg := defaultConfig
	if file := ctx.String(configFileFlag.Name); file != "" {
		if err := loadConfig(flags.ExpandPath(file), &cfg); err != nil {
			return cfg, fmt.Errorf("invalid config: %w", err)
		}
	}
	if ctx.IsSet(strictFlag.Name) {
		cfg.Decode.Strict = ctx.Bool(strictFlag.Name)
	}
	if ctx.IsSet(snappyFlag.Name) {
		cfg.Decode.Compressed = ctx.Bool(snappyFlag.Name)
	}
	if ctx.IsSet(base64Flag.Name) {
		cfg.Decode.Base64 = ctx.Bool(base64Flag.Name)
	}
	if ctx.IsSet(indentFlag.Name) {
		cfg.Output.Indent = ctx.String(indentFlag.Name)
	}
	if ctx.IsSet(showIntsFlag.Name) {
		cfg.Output.ShowInts = ctx.Bool(showIntsFlag.Name)
	}
	if ctx.IsSet(noASCIIFlag.Name) {
		cfg.Output.NoASCII = ctx.Bool(noASCIIFlag.Name)
	}
	if ctx.IsSet(workersFlag.Name) {
		cfg.Workers.Count = ctx.Int(workersFlag.Name)
	}
	return cfg, nil
}

// dumpConfig is the dumpconfig command.
func dumpConfig(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	out, err := tomlSettings.Marshal(&cfg)
	if err != nil {
		return err
	}

	dump := ctx.App.Writer
	if ctx.NArg() > 0 {
		f, err := os.OpenFile(ctx.Args().Get(0), os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		dump = f
	}
	_, err = dump.Write(out)
	return err
}
