package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonAlnum = regexp.MustCompile(`[^A-Za-z0-9]+`)

// RemoveAccents removes accents from a string, converting accented characters to their base forms
func RemoveAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}

// UpperFirst capitalizes the first character of a string, leaving the rest untouched
func UpperFirst(s string) string {
	if s == "" {
		return ""
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// StripQuotes removes one matching pair of surrounding string-literal quote
// characters (single, double or backtick). Unquoted input is returned as-is.
func StripQuotes(s string) string {
	if len(s) < 2 {
		return s
	}
	first, last := s[0], s[len(s)-1]
	if first != last {
		return s
	}
	switch first {
	case '\'', '"', '`':
		return s[1 : len(s)-1]
	}
	return s
}

// SplitCamelCase splits a camelCase or PascalCase string into words
func SplitCamelCase(s string) []string {
	if s == "" {
		return nil
	}

	var parts []string
	var current strings.Builder

	runes := []rune(s)
	for i, r := range runes {
		// Check if this is the start of a new word
		isNewWord := false
		if i > 0 && isUppercase(r) {
			if !isUppercase(runes[i-1]) {
				// Previous char was lowercase, so this starts a new word
				isNewWord = true
			} else if i < len(runes)-1 && !isUppercase(runes[i+1]) {
				// Handles cases like "XMLHttp" -> "XML", "Http"
				isNewWord = true
			}
		}

		if isNewWord && current.Len() > 0 {
			parts = append(parts, current.String())
			current.Reset()
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		parts = append(parts, current.String())
	}

	return parts
}

// isUppercase checks if a rune is uppercase
func isUppercase(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

// ToPascalCase converts a string to PascalCase, splitting on non-alphanumeric
// separators and camelCase word boundaries
func ToPascalCase(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	// Remove accents first
	s = RemoveAccents(s)

	parts := nonAlnum.Split(s, -1)
	var allParts []string
	for _, part := range parts {
		if part == "" {
			continue
		}
		allParts = append(allParts, SplitCamelCase(part)...)
	}

	var result strings.Builder
	for _, part := range allParts {
		if len(part) == 1 {
			result.WriteString(strings.ToUpper(part))
		} else {
			result.WriteString(strings.ToUpper(part[:1]) + strings.ToLower(part[1:]))
		}
	}
	return result.String()
}
