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
	"errors"
	"flag"
	"fmt"
	"math/big"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/holiman/uint256"
	"github.com/urfave/cli/v2"
)

var (
	_ cli.Flag              = (*Uint256Flag)(nil)
	_ cli.RequiredFlag      = (*Uint256Flag)(nil)
	_ cli.VisibleFlag       = (*Uint256Flag)(nil)
	_ cli.DocGenerationFlag = (*Uint256Flag)(nil)
	_ cli.CategorizableFlag = (*Uint256Flag)(nil)
)

// Uint256Flag is a command line flag that accepts 256 bit unsigned integers
// in decimal or 0x-prefixed hexadecimal syntax.
// Uint256Flag 接受十进制或 0x 前缀十六进制的 256 位无符号整数。
type Uint256Flag struct {
	Name string

	Category    string
	DefaultText string
	Usage       string

	Required   bool
	Hidden     bool
	HasBeenSet bool

	Value        *uint256.Int
	defaultValue *uint256.Int

	Aliases []string
	EnvVars []string
}

// For cli.Flag:

func (f *Uint256Flag) Names() []string { return append([]string{f.Name}, f.Aliases...) }
func (f *Uint256Flag) IsSet() bool     { return f.HasBeenSet }
func (f *Uint256Flag) String() string  { return cli.FlagStringer(f) }

// Apply registers the flag with set. An environment variable, if present,
// overrides the default value.
func (f *Uint256Flag) Apply(set *flag.FlagSet) error {
	// Set default value so that environment wont be able to overwrite it
	if f.Value == nil {
		f.Value = new(uint256.Int)
	}
	f.defaultValue = new(uint256.Int).Set(f.Value)

	val := new(uint256.Int).Set(f.Value)
	for _, envVar := range f.EnvVars {
		envVar = strings.TrimSpace(envVar)
		if value, found := syscall.Getenv(envVar); found {
			if err := (*u256Value)(val).Set(value); err != nil {
				return fmt.Errorf("could not parse %q from environment variable %q for flag %s", value, envVar, f.Name)
			}
			f.HasBeenSet = true
			break
		}
	}
	f.Value = val
	eachName(f, func(name string) {
		set.Var((*u256Value)(f.Value), name, f.Usage)
	})
	return nil
}

// For cli.RequiredFlag:

func (f *Uint256Flag) IsRequired() bool { return f.Required }

// For cli.VisibleFlag:

func (f *Uint256Flag) IsVisible() bool { return !f.Hidden }

// For cli.CategorizableFlag:

func (f *Uint256Flag) GetCategory() string { return f.Category }

// For cli.DocGenerationFlag:

func (f *Uint256Flag) TakesValue() bool     { return true }
func (f *Uint256Flag) GetUsage() string     { return f.Usage }
func (f *Uint256Flag) GetValue() string     { return f.Value.Dec() }
func (f *Uint256Flag) GetEnvVars() []string { return f.EnvVars }
func (f *Uint256Flag) GetDefaultText() string {
	if f.DefaultText != "" {
		return f.DefaultText
	}
	return f.defaultValue.Dec()
}

// u256Value turns *uint256.Int into a flag.Value
type u256Value uint256.Int

func (b *u256Value) String() string {
	if b == nil {
		return ""
	}
	return (*uint256.Int)(b).Dec()
}

func (b *u256Value) Set(s string) error {
	var (
		bigint = new(big.Int)
		ok     bool
	)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		_, ok = bigint.SetString(s[2:], 16)
	} else {
		_, ok = bigint.SetString(s, 10)
	}
	if !ok || bigint.Sign() < 0 {
		return errors.New("invalid integer syntax")
	}
	v, overflow := uint256.FromBig(bigint)
	if overflow {
		return errors.New("integer larger than 256 bits")
	}
	*b = u256Value(*v)
	return nil
}

// GlobalUint256 returns the value of a Uint256Flag from the flag set.
func GlobalUint256(ctx *cli.Context, name string) *uint256.Int {
	val := ctx.Generic(name)
	if val == nil {
		return nil
	}
	return (*uint256.Int)(val.(*u256Value))
}

// ExpandPath expands a file path
// 1. replace tilde with users home dir
// 2. expands embedded environment variables
// 3. cleans the path, e.g. /a/b/../c -> /a/c
// Note, it has limitations, e.g. ~someuser/tmp will not be expanded
func ExpandPath(p string) string {
	if p == "-" {
		return p // stdin
	}
	if strings.HasPrefix(p, "~/") || strings.HasPrefix(p, "~\\") {
		if home := HomeDir(); home != "" {
			p = home + p[1:]
		}
	}
	return filepath.Clean(os.ExpandEnv(p))
}

func HomeDir() string {
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	if usr, err := user.Current(); err == nil {
		return usr.HomeDir
	}
	return ""
}

func eachName(f cli.Flag, fn func(string)) {
	for _, name := range f.Names() {
		name = strings.Trim(name, " ")
		fn(name)
	}
}
