package hexutil

import (
	"bytes"
	"math/big"
	"strings"
	"testing"
)

func checkError(t *testing.T, input string, got, want error) bool {
	if got == nil {
		if want != nil {
			t.Errorf("input %s: got no error, want %q", input, want)
			return false
		}
		return true
	}
	if want == nil {
		t.Errorf("input %s: unexpected error %q", input, got)
	} else if got.Error() != want.Error() {
		t.Errorf("input %s: got error %q, want %q", input, got, want)
	}
	return false
}

var (
	encodeBytesTests = []struct {
		input []byte
		want  string
	}{
		{[]byte{}, "0x"},
		{[]byte{0}, "0x00"},
		{[]byte{0x12, 0x34, 0x56, 0x78, 0x90, 0xab, 0xcd, 0xef}, "0x1234567890abcdef"},
	}

	decodeBytesTests = []struct {
		input   string
		want    []byte
		wantErr error
	}{
		{input: "", wantErr: ErrEmptyString},
		{input: "0", wantErr: ErrMissingPrefix},
		{input: "0x0", wantErr: ErrOddLength},
		{input: "0x023", wantErr: ErrOddLength},
		{input: "0xxx", wantErr: ErrSyntax},
		{input: "0x01zz01", wantErr: ErrSyntax},
		{input: "0x", want: []byte{}},
		{input: "0X", want: []byte{}},
		{input: "0x02", want: []byte{0x02}},
		{input: "0X02", want: []byte{0x02}},
		{input: "0xffffffffff", want: []byte{0xff, 0xff, 0xff, 0xff, 0xff}},
	}

	fromHexTests = []struct {
		input   string
		want    []byte
		wantErr error
	}{
		{input: "", want: []byte{}},
		{input: "0x", want: []byte{}},
		{input: "1234567890abcdef", want: []byte{0x12, 0x34, 0x56, 0x78, 0x90, 0xab, 0xcd, 0xef}},
		{input: "0x1234567890ABCDEF", want: []byte{0x12, 0x34, 0x56, 0x78, 0x90, 0xab, 0xcd, 0xef}},
		{input: "0x234567890abcdef", want: []byte{0x02, 0x34, 0x56, 0x78, 0x90, 0xab, 0xcd, 0xef}},
		{input: "0xabcdefg", wantErr: ErrSyntax},
		{input: "0xg", wantErr: ErrSyntax},
	}

	decodeUint64Tests = []struct {
		input   string
		want    uint64
		wantErr error
	}{
		{input: "", wantErr: ErrEmptyString},
		{input: "0x", wantErr: ErrEmptyNumber},
		{input: "0x01", wantErr: ErrLeadingZero},
		{input: "0xfffffffffffffffff", wantErr: ErrUint64Range},
		{input: "0x0", want: 0},
		{input: "0x2F2", want: 0x2f2},
		{input: "0xffffffffffffffff", want: 0xffffffffffffffff},
	}
)

func TestEncode(t *testing.T) {
	for _, test := range encodeBytesTests {
		enc := Encode(test.input)
		if enc != test.want {
			t.Errorf("input %x: wrong encoding %s", test.input, enc)
		}
	}
}

func TestDecode(t *testing.T) {
	for _, test := range decodeBytesTests {
		dec, err := Decode(test.input)
		if !checkError(t, test.input, err, test.wantErr) {
			continue
		}
		if !bytes.Equal(test.want, dec) {
			t.Errorf("input %s: value mismatch: got %x, want %x", test.input, dec, test.want)
		}
	}
}

func TestFromHex(t *testing.T) {
	for _, test := range fromHexTests {
		dec, err := FromHex(test.input)
		if !checkError(t, test.input, err, test.wantErr) {
			continue
		}
		if !bytes.Equal(test.want, dec) {
			t.Errorf("input %s: value mismatch: got %x, want %x", test.input, dec, test.want)
		}
	}
	// upper case round trip
	in := []byte{0x12, 0x34, 0x56, 0x78, 0x90, 0xab, 0xcd, 0xef}
	dec, err := FromHex(strings.ToUpper(Encode(in)))
	if err != nil || !bytes.Equal(dec, in) {
		t.Errorf("upper case round trip failed: %x %v", dec, err)
	}
}

func TestDecodeUint64(t *testing.T) {
	for _, test := range decodeUint64Tests {
		dec, err := DecodeUint64(test.input)
		if !checkError(t, test.input, err, test.wantErr) {
			continue
		}
		if dec != test.want {
			t.Errorf("input %s: value mismatch: got %x, want %x", test.input, dec, test.want)
		}
	}
}

func TestBigRoundTrip(t *testing.T) {
	for _, s := range []string{"0x0", "0x1", "0xff", "0x10000000000000000", "0xffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"} {
		b, err := DecodeBig(s)
		if err != nil {
			t.Fatalf("input %s: %v", s, err)
		}
		if enc := EncodeBig(b); enc != s {
			t.Errorf("input %s: re-encoded as %s", s, enc)
		}
	}
	if _, err := DecodeBig("0x1" + strings.Repeat("0", 64)); err != ErrBig256Range {
		t.Errorf("expected ErrBig256Range, got %v", err)
	}
	if enc := EncodeBig(big.NewInt(-255)); enc != "0xff" {
		t.Errorf("sign not ignored: %s", enc)
	}
}

func TestUnmarshalFixedText(t *testing.T) {
	var out [4]byte
	if err := UnmarshalFixedText("T", []byte("0x01020304"), out[:]); err != nil {
		t.Fatal(err)
	}
	if out != [4]byte{1, 2, 3, 4} {
		t.Errorf("wrong result %x", out)
	}
	if err := UnmarshalFixedText("T", []byte("0x010203"), out[:]); err == nil {
		t.Error("expected length error")
	}
	if err := UnmarshalFixedText("T", []byte("01020304"), out[:]); err != ErrMissingPrefix {
		t.Errorf("expected ErrMissingPrefix, got %v", err)
	}
}
