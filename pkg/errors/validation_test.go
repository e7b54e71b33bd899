package errors

import (
	"testing"
)

func TestValidateTypeName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "All", false},
		{"valid with digits", "Item2", false},
		{"valid underscore", "_Private", false},
		{"valid dollar", "$Root", false},
		{"valid unicode letter", "Größe", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 300)), true},
		{"leading digit", "1Root", true},
		{"space", "My Root", true},
		{"dash", "my-root", true},
		{"dot", "My.Root", true},
		{"newline", "Root\n", true},
		{"brace", "Root{", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTypeName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTypeName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidName) {
				t.Errorf("ValidateTypeName(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidName)
			}
		})
	}
}

func TestValidateTypeScriptVersion(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"latest", false},
		{"5", false},
		{"4.9", false},
		{"5.3.2", false},
		{"", true},
		{"v5", true},
		{"5.3.2.1", true},
		{"next", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidateTypeScriptVersion(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTypeScriptVersion(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateIndentation(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"four spaces", "    ", false},
		{"two spaces", "  ", false},
		{"tab", "\t", false},
		{"empty", "", true},
		{"letters", "ab", true},
		{"mixed", " x ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIndentation(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateIndentation(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateDelimiter(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{`"`, false},
		{`'`, false},
		{"", true},
		{"`", true},
		{`""`, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidateDelimiter(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDelimiter(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidConfig) {
				t.Errorf("ValidateDelimiter(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidConfig)
			}
		})
	}
}
