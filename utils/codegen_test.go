package utils

import (
	"strings"
	"testing"
)

func TestGenerateCode(t *testing.T) {
	code, err := GenerateCode()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(code) != CodeLength {
		t.Fatalf("len = %d, want %d", len(code), CodeLength)
	}
	for _, r := range code {
		if !strings.ContainsRune(codeCharset, r) {
			t.Fatalf("code %q contains %q outside the charset", code, r)
		}
	}
}

func TestCharsetExcludesAmbiguousGlyphs(t *testing.T) {
	for _, r := range "01IlO" {
		if strings.ContainsRune(codeCharset, r) {
			t.Fatalf("charset contains ambiguous glyph %q", r)
		}
	}
}

func TestGenerateCodesDistinct(t *testing.T) {
	codes, err := GenerateCodes(500)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(codes) != 500 {
		t.Fatalf("len = %d, want 500", len(codes))
	}
	seen := map[string]bool{}
	for _, code := range codes {
		if seen[code] {
			t.Fatalf("duplicate code %q", code)
		}
		seen[code] = true
	}
}
