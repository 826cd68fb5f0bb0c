package catalog

import "testing"

func TestUniversities_Count(t *testing.T) {
	if got := len(Universities()); got != 20 {
		t.Errorf("expected 20 universities, got %d", got)
	}
}

func TestUniversities_Copy(t *testing.T) {
	first := Universities()
	first[0] = "mutated"

	if Universities()[0] != "Addis Ababa University" {
		t.Error("Universities should return a copy, not the backing slice")
	}
}

func TestUniversityAt(t *testing.T) {
	tests := []struct {
		idx  int
		want string
		ok   bool
	}{
		{0, "Addis Ababa University", true},
		{2, "Bahir Dar University", true},
		{19, "Wachemo University", true},
		{-1, "", false},
		{20, "", false},
	}

	for _, tt := range tests {
		got, ok := UniversityAt(tt.idx)
		if got != tt.want || ok != tt.ok {
			t.Errorf("UniversityAt(%d) = (%q, %v), want (%q, %v)", tt.idx, got, ok, tt.want, tt.ok)
		}
	}
}

func TestRelationshipAt(t *testing.T) {
	tests := []struct {
		idx  int
		want string
		ok   bool
	}{
		{0, "Casual Dating", true},
		{5, "Study Partners", true},
		{6, "", false},
		{-1, "", false},
	}

	for _, tt := range tests {
		got, ok := RelationshipAt(tt.idx)
		if got != tt.want || ok != tt.ok {
			t.Errorf("RelationshipAt(%d) = (%q, %v), want (%q, %v)", tt.idx, got, ok, tt.want, tt.ok)
		}
	}
}

func TestIsUniversity(t *testing.T) {
	if !IsUniversity("Jimma University") {
		t.Error("Jimma University should be valid")
	}
	if IsUniversity("Hogwarts") {
		t.Error("Hogwarts should not be valid")
	}
	if IsUniversity(AllUniversities) {
		t.Error("the All sentinel is not itself a university")
	}
}

func TestValidTarget(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"All", true},
		{"Mekelle University", true},
		{"all", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidTarget(tt.name); got != tt.want {
			t.Errorf("ValidTarget(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestIsRelationshipPreference(t *testing.T) {
	if !IsRelationshipPreference("Marriage Oriented") {
		t.Error("Marriage Oriented should be valid")
	}
	if IsRelationshipPreference("Situationship") {
		t.Error("Situationship should not be valid")
	}
}
