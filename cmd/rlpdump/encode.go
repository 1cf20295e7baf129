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
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/learn-bcos/go-bcos/common"
	"github.com/learn-bcos/go-bcos/common/compress"
	"github.com/learn-bcos/go-bcos/common/hexutil"
	"github.com/learn-bcos/go-bcos/internal/flags"
	"github.com/learn-bcos/go-bcos/log"
	"github.com/learn-bcos/go-bcos/rlp"
	"github.com/urfave/cli/v2"
)

var (
	encodeCommand = &cli.Command{
		Action:    encodeAction,
		Name:      "encode",
		Usage:     "Encode dumped text back into RLP",
		ArgsUsage: "[<dumpfile>]",
		Flags:     []cli.Flag{outFileFlag},
		Description: `The encode command reads text in the format printed by rlpdump and
writes the RLP encoding of every top-level value. Output is hex unless --base64
or --out is given. --snappy compresses the result.`,
	}
	outFileFlag = &cli.StringFlag{
		Name:     "out",
		Usage:    "Write the binary encoding to this file",
		Category: flags.OutputCategory,
	}
)

func encodeAction(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	if ctx.NArg() > 1 {
		return fmt.Errorf("too many arguments")
	}
	var text []byte
	if name := ctx.Args().First(); name != "" && name != "-" {
		text, err = os.ReadFile(flags.ExpandPath(name))
	} else {
		text, err = io.ReadAll(ctx.App.Reader)
	}
	if err != nil {
		return err
	}
	enc, err := encodeDump(string(text))
	if err != nil {
		return err
	}
	log.Debug("Encoded dump", "size", len(enc))

	if cfg.Decode.Compressed {
		enc = compress.Compress(enc)
	}
	var out []byte
	switch {
	case cfg.Decode.Base64:
		out = []byte(common.ToBase64(enc) + "\n")
	case ctx.IsSet(outFileFlag.Name):
		out = enc
	default:
		out = []byte(hexutil.Encode(enc) + "\n")
	}
	if file := ctx.String(outFileFlag.Name); file != "" {
		return os.WriteFile(flags.ExpandPath(file), out, 0644)
	}
	_, err = ctx.App.Writer.Write(out)
	return err
}

// encodeDump parses dump text and returns the concatenated encoding of all
// top-level values in it.
// encodeDump 解析 dump 文本，返回其中所有顶层值编码后的拼接结果。
func encodeDump(text string) ([]byte, error) {
	p := &dumpParser{src: text, line: 1}
	s := new(rlp.Stream)
	for {
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		if tok.kind == tokEOF {
			break
		}
		n, err := p.value(tok)
		if err != nil {
			return nil, err
		}
		n.encode(s)
	}
	return s.Take()
}

// node is a parsed value. List sizes must be known before the list is
// opened on the stream, so the whole value is parsed first.
type node struct {
	list  bool
	data  []byte
	elems []*node
}

func (n *node) encode(s *rlp.Stream) {
	if !n.list {
		s.AppendString(n.data)
		return
	}
	s.AppendList(len(n.elems))
	for _, elem := range n.elems {
		elem.encode(s)
	}
}

type tokKind int

const (
	tokEOF tokKind = iota
	tokOpen
	tokClose
	tokComma
	tokString
)

func (k tokKind) String() string {
	switch k {
	case tokEOF:
		return "end of input"
	case tokOpen:
		return "'['"
	case tokClose:
		return "']'"
	case tokComma:
		return "','"
	default:
		return "string"
	}
}

type token struct {
	kind tokKind
	data []byte
	line int
}

type dumpParser struct {
	src  string
	pos  int
	line int
}

func (p *dumpParser) errorf(line int, format string, args ...interface{}) error {
	return fmt.Errorf("line %d: %s", line, fmt.Sprintf(format, args...))
}

// value parses the value starting with tok.
func (p *dumpParser) value(tok token) (*node, error) {
	switch tok.kind {
	case tokString:
		return &node{data: tok.data}, nil
	case tokOpen:
	default:
		return nil, p.errorf(tok.line, "unexpected %v", tok.kind)
	}

	n := &node{list: true}
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	if tok.kind == tokClose {
		return n, nil
	}
	for {
		elem, err := p.value(tok)
		if err != nil {
			return nil, err
		}
		n.elems = append(n.elems, elem)

		if tok, err = p.next(); err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokClose:
			return n, nil
		case tokComma:
			if tok, err = p.next(); err != nil {
				return nil, err
			}
		default:
			return nil, p.errorf(tok.line, "expected ',' or ']', got %v", tok.kind)
		}
	}
}

// next returns the next token, skipping whitespace and # comments.
func (p *dumpParser) next() (token, error) {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return token{kind: tokEOF, line: p.line}, nil
	}
	line := p.line
	switch p.src[p.pos] {
	case '[':
		p.pos++
		return token{kind: tokOpen, line: line}, nil
	case ']':
		p.pos++
		return token{kind: tokClose, line: line}, nil
	case ',':
		p.pos++
		return token{kind: tokComma, line: line}, nil
	case '"':
		end := p.pos + 1
		for ; end < len(p.src); end++ {
			c := p.src[end]
			if c == '"' || c == '\n' {
				break
			}
			if c == '\\' {
				end++
			}
		}
		if end >= len(p.src) || p.src[end] != '"' {
			return token{}, p.errorf(line, "unterminated string")
		}
		s, err := strconv.Unquote(p.src[p.pos : end+1])
		if err != nil {
			return token{}, p.errorf(line, "invalid string %s", p.src[p.pos:end+1])
		}
		p.pos = end + 1
		return token{kind: tokString, data: []byte(s), line: line}, nil
	default:
		start := p.pos
		for p.pos < len(p.src) && !isDelim(p.src[p.pos]) {
			p.pos++
		}
		word := p.src[start:p.pos]
		b, err := hexutil.FromHex(word)
		if err != nil {
			return token{}, p.errorf(line, "invalid hex string %q", word)
		}
		return token{kind: tokString, data: b, line: line}, nil
	}
}

func (p *dumpParser) skipSpace() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case '\n':
			p.line++
		case ' ', '\t', '\r':
		case '#':
			for p.pos < len(p.src) && p.src[p.pos] != '\n' {
				p.pos++
			}
			continue
		default:
			return
		}
		p.pos++
	}
}

func isDelim(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '[', ']', ',', '#', '"':
		return true
	}
	return false
}
