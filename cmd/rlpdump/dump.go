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
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/learn-bcos/go-bcos/common"
	"github.com/learn-bcos/go-bcos/common/compress"
	"github.com/learn-bcos/go-bcos/common/hexutil"
	"github.com/learn-bcos/go-bcos/common/math"
	"github.com/learn-bcos/go-bcos/crypto"
	"github.com/learn-bcos/go-bcos/internal/flags"
	"github.com/learn-bcos/go-bcos/internal/workpool"
	"github.com/learn-bcos/go-bcos/log"
	"github.com/learn-bcos/go-bcos/rlp"
	"github.com/urfave/cli/v2"
)

var errEmptyInput = errors.New("empty input")

// input is one blob of RLP named on the command line.
type input struct {
	name string
	path string // file to read, empty if data is already loaded
	data []byte
}

// collectInputs resolves the input sources: the --hex flag, the file
// arguments or stdin, in that order of preference.
func collectInputs(ctx *cli.Context) ([]*input, error) {
	if ctx.IsSet(hexFlag.Name) {
		if ctx.NArg() > 0 {
			return nil, errors.New("--hex can't be combined with file arguments")
		}
		data, err := hexutil.FromHex(strings.TrimSpace(ctx.String(hexFlag.Name)))
		if err != nil {
			return nil, fmt.Errorf("invalid --hex value: %w", err)
		}
		return []*input{{name: "hex", data: data}}, nil
	}
	if ctx.NArg() == 0 || (ctx.NArg() == 1 && ctx.Args().First() == "-") {
		data, err := io.ReadAll(ctx.App.Reader)
		if err != nil {
			return nil, err
		}
		return []*input{{name: "stdin", data: data}}, nil
	}
	inputs := make([]*input, ctx.NArg())
	for i, name := range ctx.Args().Slice() {
		inputs[i] = &input{name: name, path: flags.ExpandPath(name)}
	}
	return inputs, nil
}

// load reads the input if needed and strips the configured transport
// encodings.
func (in *input) load(cfg *decodeConfig) error {
	if in.path != "" {
		data, err := os.ReadFile(in.path)
		if err != nil {
			return err
		}
		in.data = data
	}
	data, err := unwrap(in.data, cfg)
	if err != nil {
		return fmt.Errorf("%s: %w", in.name, err)
	}
	in.data = data
	return nil
}

// unwrap removes base64 and snappy framing, base64 being the outer layer.
// unwrap 依次去掉 base64 和 snappy 封装。
func unwrap(data []byte, cfg *decodeConfig) ([]byte, error) {
	if cfg.Base64 {
		b, err := common.FromBase64(string(bytes.TrimSpace(data)))
		if err != nil {
			return nil, err
		}
		data = b
	}
	if cfg.Compressed {
		b, err := compress.Uncompress(data)
		if err != nil {
			return nil, err
		}
		data = b
	}
	return data, nil
}

// loadInputs loads all inputs on the worker pool.
func loadInputs(inputs []*input, cfg *rlpdumpConfig) error {
	pool := workpool.New(cfg.Workers.Count)
	for _, in := range inputs {
		pool.Go(func() error { return in.load(&cfg.Decode) })
	}
	if err := pool.Wait(); err != nil {
		return err
	}
	warnDuplicates(inputs)
	return nil
}

// warnDuplicates logs inputs whose content equals an earlier one.
func warnDuplicates(inputs []*input) {
	seen := make(map[uint64]*input, len(inputs))
	for _, in := range inputs {
		h := crypto.Keccak256Hash(in.data)
		if prev, ok := seen[h.Sum64()]; ok && bytes.Equal(prev.data, in.data) {
			log.Warn("Duplicate input", "name", in.name, "first", prev.name, "hash", h)
			continue
		}
		seen[h.Sum64()] = in
		log.Debug("Loaded input", "name", in.name, "size", len(in.data), "hash", h)
	}
}

// dumpAction is the default command: it prints every input as a tree.
func dumpAction(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	inputs, err := collectInputs(ctx)
	if err != nil {
		return err
	}
	if err := loadInputs(inputs, &cfg); err != nil {
		return err
	}

	var (
		single = ctx.Bool(singleFlag.Name)
		outs   = make([]bytes.Buffer, len(inputs))
		pool   = workpool.New(cfg.Workers.Count)
	)
	for i, in := range inputs {
		pool.Go(func() error {
			d := &dumper{out: &outs[i], cfg: &cfg.Output}
			if err := d.dump(in.data, cfg.Decode.Strict, single); err != nil {
				return fmt.Errorf("%s: %w", in.name, err)
			}
			return nil
		})
	}
	if err := pool.Wait(); err != nil {
		return err
	}
	for i, in := range inputs {
		if len(inputs) > 1 {
			fmt.Fprintf(ctx.App.Writer, "# %s\n", in.name)
		}
		if _, err := ctx.App.Writer.Write(outs[i].Bytes()); err != nil {
			return err
		}
	}
	return nil
}

// dumper renders decoded items in the text format read back by the encode
// command. Strings are quoted when printable and hex otherwise, lists are
// bracketed with one element per line.
//
// dumper 将数据项输出为可被 encode 命令重新读取的文本格式。
type dumper struct {
	out *bytes.Buffer
	cfg *outputConfig
}

// dump prints the item in data. In single mode every concatenated top-level
// item is printed, each followed by the number of bytes it occupies.
func (d *dumper) dump(data []byte, strict, single bool) error {
	if len(data) == 0 {
		return errEmptyInput
	}
	if single {
		for offset := 0; offset < len(data); {
			it, err := rlp.NewItemLenient(data[offset:])
			if err != nil {
				return fmt.Errorf("item at offset %d: %w", offset, err)
			}
			if err := d.item(it, 0, ""); err != nil {
				return fmt.Errorf("item at offset %d: %w", offset, err)
			}
			fmt.Fprintf(d.out, "# %d bytes\n", it.ActualSize())
			offset += it.ActualSize()
		}
		return nil
	}
	it, err := rlp.ParseItem(data, strict)
	if err != nil {
		return err
	}
	if rest := len(data) - it.ActualSize(); rest > 0 {
		log.Warn("Ignoring trailing bytes", "item", it.ActualSize(), "trailing", rest)
	}
	return d.item(it, 0, "")
}

// item prints it at the given depth. sep is written right after the value
// and before any annotation.
func (d *dumper) item(it rlp.Item, depth int, sep string) error {
	ws := strings.Repeat(d.cfg.Indent, depth)
	if it.IsData() {
		text, note := d.formatString(it.Payload())
		if note != "" {
			fmt.Fprintf(d.out, "%s%s%s # %s\n", ws, text, sep, note)
		} else {
			fmt.Fprintf(d.out, "%s%s%s\n", ws, text, sep)
		}
		return nil
	}
	elems, err := it.SplitList()
	if err != nil {
		return err
	}
	if len(elems) == 0 {
		fmt.Fprintf(d.out, "%s[]%s\n", ws, sep)
		return nil
	}
	fmt.Fprintf(d.out, "%s[\n", ws)
	for i, elem := range elems {
		elemSep := ","
		if i == len(elems)-1 {
			elemSep = ""
		}
		if err := d.item(elem, depth+1, elemSep); err != nil {
			return err
		}
	}
	fmt.Fprintf(d.out, "%s]%s\n", ws, sep)
	return nil
}

// formatString renders a string payload and an optional annotation.
func (d *dumper) formatString(p []byte) (text, note string) {
	if len(p) == 0 {
		return `""`, ""
	}
	if !d.cfg.NoASCII && isASCII(p) {
		return strconv.Quote(string(p)), ""
	}
	text = hexutil.Encode(p)
	// only canonical integers get a value
	if d.cfg.ShowInts && len(p) <= 8 && p[0] != 0 {
		u, _ := math.ReadUint64BE(p)
		note = strconv.FormatUint(u, 10)
	}
	return text, note
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c < 32 || c > 126 {
			return false
		}
	}
	return true
}
