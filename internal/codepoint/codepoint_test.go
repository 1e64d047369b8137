package codepoint

import (
	"reflect"
	"testing"
)

func TestDecode_ASCII(t *testing.T) {
	got := Decode([]byte("hello"))
	want := []rune("hello")
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Decode(hello) = %v, want %v", got, want)
	}
}

func TestDecode_Unicode(t *testing.T) {
	got := Decode([]byte("café日本語"))
	want := []rune("café日本語")
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Decode = %v, want %v", got, want)
	}
}

func TestDecode_InvalidBytesBecomeReplacementChar(t *testing.T) {
	got := Decode([]byte{'a', 0xff, 'b'})
	want := []rune{'a', ReplacementChar, 'b'}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Decode(invalid) = %v, want %v", got, want)
	}
}

func TestDecode_Empty(t *testing.T) {
	if got := Decode(nil); len(got) != 0 {
		t.Errorf("Decode(nil) = %v, want empty", got)
	}
}

func TestDecodeString_MatchesDecode(t *testing.T) {
	s := "hello, 世界"
	if got, want := DecodeString(s), Decode([]byte(s)); !reflect.DeepEqual(got, want) {
		t.Errorf("DecodeString(%q) = %v, want %v", s, got, want)
	}
}

func TestEncode_RoundTrips(t *testing.T) {
	seq := []rune("hello, 世界")
	got := Encode(seq)
	if string(got) != "hello, 世界" {
		t.Errorf("Encode round-trip = %q, want %q", got, "hello, 世界")
	}
}
