package conversation

import (
	"strings"
	"testing"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid", "Abel Kebede", "Abel Kebede", false},
		{"trims whitespace", "  Sara  ", "Sara", false},
		{"amharic runes counted", "አበበ", "አበበ", false},
		{"too short", "Ab", "", true},
		{"only spaces", "    ", "", true},
		{"too long", strings.Repeat("a", 51), "", true},
		{"exactly max", strings.Repeat("a", 50), strings.Repeat("a", 50), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ValidateName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateAge(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{"valid", "25", 25, false},
		{"lower bound", "18", 18, false},
		{"upper bound", "30", 30, false},
		{"too young", "17", 0, true},
		{"too old", "31", 0, true},
		{"not a number", "twenty", 0, true},
		{"empty", "", 0, true},
		{"padded", " 22 ", 22, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateAge(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateAge(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ValidateAge(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateHobbies(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "reading, football, chess", false},
		{"minimum", "art", false},
		{"too short", "ab", true},
		{"too long", strings.Repeat("h", 201), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateHobbies(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateHobbies(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateBio(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "I study engineering and love hiking.", false},
		{"too short", "hi there", true},
		{"too long", strings.Repeat("b", 501), true},
		{"exactly max", strings.Repeat("b", 500), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateBio(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateBio(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
