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

// rlpdump is a pretty-printer for RLP data.
package main

import (
	"fmt"
	"os"

	"github.com/learn-bcos/go-bcos/internal/debug"
	"github.com/learn-bcos/go-bcos/internal/flags"
	"github.com/urfave/cli/v2"
)

var (
	hexFlag = &cli.StringFlag{
		Name:     "hex",
		Usage:    "Dump given hex data instead of reading files",
		Category: flags.DecodingCategory,
	}
	singleFlag = &cli.BoolFlag{
		Name:     "single",
		Usage:    "Print each concatenated top-level item with its size, tolerating trailing data",
		Category: flags.DecodingCategory,
	}
	strictFlag = &cli.BoolFlag{
		Name:     "strict",
		Usage:    "Reject input with bytes after the first item",
		Value:    true,
		Category: flags.DecodingCategory,
	}
	snappyFlag = &cli.BoolFlag{
		Name:     "snappy",
		Usage:    "Input is snappy compressed",
		Category: flags.DecodingCategory,
	}
	base64Flag = &cli.BoolFlag{
		Name:     "base64",
		Usage:    "Input is base64 text",
		Category: flags.DecodingCategory,
	}
	indentFlag = &cli.StringFlag{
		Name:     "indent",
		Usage:    "Indentation of nested items",
		Value:    "  ",
		Category: flags.OutputCategory,
	}
	showIntsFlag = &cli.BoolFlag{
		Name:     "ints",
		Usage:    "Annotate short strings with their integer value",
		Value:    true,
		Category: flags.OutputCategory,
	}
	noASCIIFlag = &cli.BoolFlag{
		Name:     "noascii",
		Usage:    "Don't print ASCII strings readably",
		Category: flags.OutputCategory,
	}
	workersFlag = &cli.IntFlag{
		Name:     "workers",
		Usage:    "Number of files decoded in parallel (0 = one per CPU)",
		Value:    defaultConfig.Workers.Count,
		Category: flags.WorkerCategory,
	}
)

var (
	// inputFlags select where input comes from and how it is wrapped.
	inputFlags = []cli.Flag{
		hexFlag,
		strictFlag,
		snappyFlag,
		base64Flag,
	}
	outputFlags = []cli.Flag{
		indentFlag,
		showIntsFlag,
		noASCIIFlag,
	}
)

var app = flags.NewApp("RLP dump and encode tool")

func init() {
	app.Action = dumpAction
	app.ArgsUsage = "[<file> ...]"
	app.Description = `Dumps RLP data from the given files in readable form.
If no file is given, data is read from stdin.`
	app.Commands = []*cli.Command{
		encodeCommand,
		keccakCommand,
		addrCommand,
		dumpConfigCommand,
	}
	app.Flags = flags.Merge(
		[]cli.Flag{configFileFlag, singleFlag, workersFlag},
		inputFlags,
		outputFlags,
		debug.Flags,
	)
	app.Before = func(ctx *cli.Context) error {
		return debug.Setup(ctx)
	}
	app.After = func(ctx *cli.Context) error {
		debug.Exit()
		return nil
	}
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
