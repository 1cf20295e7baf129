// Copyright 2015 The go-ethereum Authors
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

package flags

import (
	"flag"
	"os"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestPathExpansion(t *testing.T) {
	home := HomeDir()
	tests := map[string]string{
		"/home/someuser/tmp": "/home/someuser/tmp",
		"~/tmp":              home + "/tmp",
		"~thisOtherUser/b/":  "~thisOtherUser/b",
		"$DDDXXX/a/b":        "/tmp/a/b",
		"/a/b/":              "/a/b",
		"-":                  "-",
	}
	os.Setenv("DDDXXX", "/tmp")
	defer os.Unsetenv("DDDXXX")
	for test, expected := range tests {
		assert.Equal(t, expected, ExpandPath(test), "input %q", test)
	}
}

func TestUint256Value(t *testing.T) {
	tests := []struct {
		in   string
		want *uint256.Int
		ok   bool
	}{
		{"0", uint256.NewInt(0), true},
		{"1024", uint256.NewInt(1024), true},
		{"0x400", uint256.NewInt(1024), true},
		{"0x0400", uint256.NewInt(1024), true},
		{"0xffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff", new(uint256.Int).SetAllOne(), true},
		{"0x1" + "0000000000000000000000000000000000000000000000000000000000000000", nil, false},
		{"-1", nil, false},
		{"1e3", nil, false},
		{"", nil, false},
	}
	for _, test := range tests {
		var v u256Value
		err := v.Set(test.in)
		if !test.ok {
			assert.Error(t, err, "input %q", test.in)
			continue
		}
		require.NoError(t, err, "input %q", test.in)
		assert.Equal(t, test.want, (*uint256.Int)(&v), "input %q", test.in)
	}
}

func TestUint256Flag(t *testing.T) {
	f := &Uint256Flag{Name: "nonce", Value: uint256.NewInt(5)}
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	require.NoError(t, f.Apply(set))
	require.NoError(t, set.Parse([]string{"--nonce", "0x10"}))

	ctx := cli.NewContext(cli.NewApp(), set, nil)
	assert.Equal(t, uint256.NewInt(16), GlobalUint256(ctx, "nonce"))
	assert.Equal(t, "5", f.GetDefaultText())
	assert.Nil(t, GlobalUint256(ctx, "missing"))
}

func TestUint256FlagEnv(t *testing.T) {
	t.Setenv("RLPDUMP_NONCE", "7")
	f := &Uint256Flag{Name: "nonce", EnvVars: []string{"RLPDUMP_NONCE"}}
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	require.NoError(t, f.Apply(set))
	require.NoError(t, set.Parse(nil))
	assert.True(t, f.IsSet())
	assert.Equal(t, uint256.NewInt(7), f.Value)
	assert.Equal(t, "0", f.GetDefaultText())
}

func TestCheckExclusive(t *testing.T) {
	a := &cli.BoolFlag{Name: "a"}
	b := &cli.StringFlag{Name: "b"}
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	require.NoError(t, a.Apply(set))
	require.NoError(t, b.Apply(set))

	require.NoError(t, set.Parse([]string{"--a"}))
	ctx := cli.NewContext(cli.NewApp(), set, nil)
	assert.NoError(t, CheckExclusive(ctx, a, b))

	require.NoError(t, set.Parse([]string{"--a", "--b", "x"}))
	assert.Error(t, CheckExclusive(ctx, a, b))
}

func TestNewApp(t *testing.T) {
	app := NewApp("test tool")
	assert.Equal(t, "test tool", app.Usage)
	assert.NotEmpty(t, app.Version)
}
