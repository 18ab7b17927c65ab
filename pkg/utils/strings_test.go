package utils

import (
	"reflect"
	"testing"
)

func TestUpperFirst(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"a", "A"},
		{"hello", "Hello"},
		{"Hello", "Hello"},
		{"didOpen", "DidOpen"},
		{"textDocument", "TextDocument"},
		{"$", "$"},
		{"123", "123"},
	}

	for _, test := range tests {
		result := UpperFirst(test.input)
		if result != test.expected {
			t.Errorf("UpperFirst(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestStripQuotes(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"'", "'"},
		{"plaintext", "plaintext"},
		{"'plaintext'", "plaintext"},
		{`"plaintext"`, "plaintext"},
		{"`plaintext`", "plaintext"},
		{"'unbalanced", "'unbalanced"},
		// Already stripped input stays untouched
		{"plaintext'", "plaintext'"},
	}

	for _, test := range tests {
		result := StripQuotes(test.input)
		if result != test.expected {
			t.Errorf("StripQuotes(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestSplitCamelCase(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"", nil},
		{"hello", []string{"hello"}},
		{"helloWorld", []string{"hello", "World"}},
		{"XMLHttpRequest", []string{"XML", "Http", "Request"}},
	}

	for _, test := range tests {
		result := SplitCamelCase(test.input)
		if !reflect.DeepEqual(result, test.expected) {
			t.Errorf("SplitCamelCase(%q) = %v, expected %v", test.input, result, test.expected)
		}
	}
}

func TestToPascalCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"hello", "Hello"},
		{"changeAnnotations", "ChangeAnnotations"},
		{"hello_world", "HelloWorld"},
		{"hello-world", "HelloWorld"},
		{"XMLHttpRequest", "XmlHttpRequest"},
		{"café", "Cafe"},
	}

	for _, test := range tests {
		result := ToPascalCase(test.input)
		if result != test.expected {
			t.Errorf("ToPascalCase(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}
