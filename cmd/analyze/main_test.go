package main

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncate(t *testing.T) {
	if got := truncate("corto", 10); got != "corto" {
		t.Errorf("expected short string untouched, got %q", got)
	}
	if got := truncate("exactamente", 11); got != "exactamente" {
		t.Errorf("expected string at the limit untouched, got %q", got)
	}
	if got := truncate("abcdef", 3); got != "abc" {
		t.Errorf("expected 'abc', got %q", got)
	}
}

func TestTruncate_KeepsRunesWhole(t *testing.T) {
	// "€" is three bytes; a limit landing inside it must back off to the
	// previous boundary instead of sending a mangled tail.
	s := "Premio 60 €"
	for limit := len(s) - 1; limit >= len(s)-3; limit-- {
		got := truncate(s, limit)
		if !utf8.ValidString(got) {
			t.Errorf("limit %d: truncated string is not valid UTF-8: %q", limit, got)
		}
		if strings.ContainsRune(got, '€') {
			t.Errorf("limit %d: expected the euro sign cut off, got %q", limit, got)
		}
	}
}

func TestTruncate_AccentedDigest(t *testing.T) {
	s := "# Análisis de Lotería Nacional"
	for limit := 0; limit <= len(s); limit++ {
		if got := truncate(s, limit); !utf8.ValidString(got) {
			t.Errorf("limit %d: truncated string is not valid UTF-8: %q", limit, got)
		}
	}
}
