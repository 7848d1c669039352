package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("hola mundo\n"), "Nombre?", &out)
	if err != nil || got != "hola mundo" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("ultima"), "Nombre?", &out)
	if err != nil || got != "ultima" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetYesNo(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"s\n", true},
		{"S\n", true},
		{"sí\n", true},
		{"si\n", true},
		{"n\n", false},
		{"no\n", false},
		{"what\n", false},
	}
	for _, tc := range tests {
		var out bytes.Buffer
		got, err := GetYesNo(rdr(tc.input), "¿Seguro?", &out)
		if err != nil || got != tc.want {
			t.Fatalf("input %q: got %v, err=%v", tc.input, got, err)
		}
	}
}

func TestGetIntInRange_RetriesUntilValid(t *testing.T) {
	var out bytes.Buffer
	got, err := GetIntInRange(rdr("abc\n9\n3\n"), "Ánimo", 1, 5, &out)
	if err != nil || got != 3 {
		t.Fatalf("got %d, err=%v", got, err)
	}
}

func TestGetMultiline_EmptyLineEnds(t *testing.T) {
	var out bytes.Buffer
	got, err := GetMultiline(rdr("a\nb\n\n\n"), "Texto", &out)
	if err != nil {
		t.Fatal(err)
	}
	if got != "a\nb" {
		t.Fatalf("got %q", got)
	}
}

func TestGetPassword_Error(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) {
		return nil, errors.New("boom")
	}
	var out bytes.Buffer
	if _, err := GetPassword(&out, "Contraseña"); err == nil {
		t.Fatal("expected error")
	}
}
