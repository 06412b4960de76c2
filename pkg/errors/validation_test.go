package errors

import (
	"strings"
	"testing"
)

func TestValidateRole(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "Button", false},
		{"valid with dash", "Icon-Button", false},
		{"valid with underscore", "list_item", false},
		{"valid with digit", "H1", false},

		{"empty", "", true},
		{"too long", "A" + strings.Repeat("b", 64), true},
		{"leading digit", "1Button", true},
		{"leading dash", "-Button", true},
		{"space", "Icon Button", true},
		{"dot", "Card.Header", true},
		{"control char", "Card\x01", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRole(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRole(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidRole) {
				t.Errorf("ValidateRole(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidRole)
			}
		})
	}
}

func TestValidateOptionalRole(t *testing.T) {
	if err := ValidateOptionalRole(""); err != nil {
		t.Errorf("empty optional role should pass: %v", err)
	}
	if err := ValidateOptionalRole("Sidebar"); err != nil {
		t.Errorf("valid optional role should pass: %v", err)
	}
	if err := ValidateOptionalRole("Side bar"); err == nil {
		t.Error("invalid optional role should fail")
	}
}

func TestValidateOneOf(t *testing.T) {
	allowed := []string{"Hero", "Standard", "Subtle"}

	tests := []struct {
		value   string
		wantErr bool
	}{
		{"Hero", false},
		{"hero", false}, // case-insensitive
		{"", false},     // default
		{"Loud", true},
	}

	for _, tt := range tests {
		err := ValidateOneOf("prominence", tt.value, allowed)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateOneOf(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
		}
	}

	err := ValidateOneOf("prominence", "Loud", allowed)
	if !Is(err, ErrCodeInvalidEnum) {
		t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidEnum)
	}
	if !strings.Contains(err.Error(), "Hero, Standard, Subtle") {
		t.Errorf("error should list allowed values: %v", err)
	}
}

func TestValidateDepth(t *testing.T) {
	if err := ValidateDepth("depth", 0); err != nil {
		t.Errorf("zero depth should pass: %v", err)
	}
	if err := ValidateDepth("depth", 7); err != nil {
		t.Errorf("positive depth should pass: %v", err)
	}
	if err := ValidateDepth("depth", -1); err == nil {
		t.Error("negative depth should fail")
	}
}
