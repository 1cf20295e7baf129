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
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/learn-bcos/go-bcos/common"
	"github.com/learn-bcos/go-bcos/common/compress"
	"github.com/learn-bcos/go-bcos/common/hexutil"
	"github.com/learn-bcos/go-bcos/rlp"
	"github.com/stretchr/testify/require"
)

// runApp runs the rlpdump app with the given stdin and returns its output.
func runApp(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app.Writer = &out
	app.ErrWriter = io.Discard
	app.Reader = strings.NewReader(stdin)
	t.Cleanup(func() {
		app.Writer = os.Stdout
		app.ErrWriter = os.Stderr
		app.Reader = os.Stdin
	})
	err := app.Run(append([]string{"rlpdump", "--verbosity", "0"}, args...))
	return out.String(), err
}

func dumpHex(t *testing.T, cfg outputConfig, input string) string {
	t.Helper()
	var out bytes.Buffer
	d := &dumper{out: &out, cfg: &cfg}
	require.NoError(t, d.dump(hexutil.MustFromHex(input), true, false))
	return out.String()
}

var dumpTests = []struct {
	input string
	want  string
}{
	{"80", "\"\"\n"},
	{"C0", "[]\n"},
	{"83636174", "\"cat\"\n"},
	{"C88363617483646F67", "[\n  \"cat\",\n  \"dog\"\n]\n"},
	{"C6820400" + "80" + "C0" + "05", "[\n  0x0400, # 1024\n  \"\",\n  [],\n  0x05 # 5\n]\n"},
	{"C7C0C1C0C3C0C1C0", "[\n  [],\n  [\n    []\n  ],\n  [\n    [],\n    [\n      []\n    ]\n  ]\n]\n"},
	{"8200FF", "0x00ff\n"},
	{"89FFFFFFFFFFFFFFFFFF", "0xffffffffffffffffff\n"},
}

func TestDump(t *testing.T) {
	cfg := defaultConfig.Output
	for _, test := range dumpTests {
		require.Equal(t, test.want, dumpHex(t, cfg, test.input), "input %s", test.input)
	}
}

func TestDumpOutputOptions(t *testing.T) {
	cfg := outputConfig{Indent: "\t", NoASCII: true}
	require.Equal(t, "[\n\t0x636174,\n\t0x05\n]\n", dumpHex(t, cfg, "C58363617405"))
}

func TestDumpErrors(t *testing.T) {
	tests := []struct {
		input  string
		strict bool
		err    error
	}{
		{"", true, errEmptyInput},
		{"C583636174", true, rlp.ErrValueTooLarge},
		{"8363617405", true, rlp.ErrTrailingBytes},
		{"8100", true, rlp.ErrCanonSize},
		{"C6836361748464", true, rlp.ErrElemTooLarge},
	}
	for _, test := range tests {
		d := &dumper{out: new(bytes.Buffer), cfg: &defaultConfig.Output}
		err := d.dump(hexutil.MustFromHex(test.input), test.strict, false)
		require.ErrorIs(t, err, test.err, "input %q", test.input)
	}
}

func TestDumpLenient(t *testing.T) {
	var out bytes.Buffer
	d := &dumper{out: &out, cfg: &defaultConfig.Output}
	require.NoError(t, d.dump(hexutil.MustFromHex("8363617405"), false, false))
	require.Equal(t, "\"cat\"\n", out.String())
}

func TestDumpSingle(t *testing.T) {
	var out bytes.Buffer
	d := &dumper{out: &out, cfg: &defaultConfig.Output}
	require.NoError(t, d.dump(hexutil.MustFromHex("8363617405C0"), true, true))
	require.Equal(t, "\"cat\"\n# 4 bytes\n0x05 # 5\n# 1 bytes\n[]\n# 1 bytes\n", out.String())

	// a broken item after valid ones reports its offset
	out.Reset()
	err := d.dump(hexutil.MustFromHex("05C3"), true, true)
	require.ErrorIs(t, err, rlp.ErrValueTooLarge)
	require.ErrorContains(t, err, "offset 1")
}

func TestDumpCommand(t *testing.T) {
	out, err := runApp(t, "", "--hex", "0xC88363617483646F67")
	require.NoError(t, err)
	require.Equal(t, "[\n  \"cat\",\n  \"dog\"\n]\n", out)

	out, err = runApp(t, "", "--single", "--hex", "0x0505")
	require.NoError(t, err)
	require.Equal(t, "0x05 # 5\n# 1 bytes\n0x05 # 5\n# 1 bytes\n", out)

	_, err = runApp(t, "", "--hex", "0x0505")
	require.ErrorIs(t, err, rlp.ErrTrailingBytes)

	out, err = runApp(t, "", "--strict=false", "--ints=false", "--hex", "0x0505")
	require.NoError(t, err)
	require.Equal(t, "0x05\n", out)

	_, err = runApp(t, "", "--hex", "zz")
	require.ErrorContains(t, err, "invalid --hex value")
}

func TestDumpStdinWrapped(t *testing.T) {
	enc, err := rlp.EncodeList("cat", "dog")
	require.NoError(t, err)
	stdin := common.ToBase64(compress.Compress(enc)) + "\n"

	out, err := runApp(t, stdin, "--snappy", "--base64")
	require.NoError(t, err)
	require.Equal(t, "[\n  \"cat\",\n  \"dog\"\n]\n", out)

	_, err = runApp(t, "\xff", "--snappy")
	require.ErrorIs(t, err, compress.ErrCorruptedInput)
}

func TestDumpFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.rlp")
	b := filepath.Join(dir, "b.rlp")
	c := filepath.Join(dir, "c.rlp")
	require.NoError(t, os.WriteFile(a, []byte{0x83, 'c', 'a', 't'}, 0644))
	require.NoError(t, os.WriteFile(b, []byte{0xC0}, 0644))
	require.NoError(t, os.WriteFile(c, []byte{0x83, 'c', 'a', 't'}, 0644))

	out, err := runApp(t, "", "--workers", "2", a, b, c)
	require.NoError(t, err)
	want := "# " + a + "\n\"cat\"\n" + "# " + b + "\n[]\n" + "# " + c + "\n\"cat\"\n"
	require.Equal(t, want, out)

	_, err = runApp(t, "", a, filepath.Join(dir, "missing.rlp"))
	require.Error(t, err)

	_, err = runApp(t, "", "--hex", "c0", a)
	require.ErrorContains(t, err, "can't be combined")
}

func TestUnwrap(t *testing.T) {
	data := []byte{0xC1, 0x80}
	got, err := unwrap(compress.Compress(data), &decodeConfig{Compressed: true})
	require.NoError(t, err)
	require.Equal(t, data, got)

	got, err = unwrap([]byte(" wYA= \n"), &decodeConfig{Base64: true})
	require.NoError(t, err)
	require.Equal(t, data, got)

	_, err = unwrap([]byte("%%"), &decodeConfig{Base64: true})
	require.ErrorIs(t, err, common.ErrBadBase64)
}
