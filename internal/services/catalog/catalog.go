package catalog

// AllUniversities is the sentinel target meaning "match with any university".
const AllUniversities = "All"

// universities is the closed, ordered list used for registration keyboards
// and target-university validation. Order matters: callback data carries the
// index into this slice.
var universities = []string{
	"Addis Ababa University",
	"Adama Science and Technology University",
	"Bahir Dar University",
	"Debre Berhan University",
	"Dire Dawa University",
	"Ethiopian Civil Service University",
	"Gondar University",
	"Hawassa University",
	"Haramaya University",
	"Jimma University",
	"Mekelle University",
	"Woldia University",
	"Wollo University",
	"Arba Minch University",
	"Axum University",
	"Dilla University",
	"Mizan-Tepi University",
	"Wolkite University",
	"Wolaita Sodo University",
	"Wachemo University",
}

// relationshipPreferences is the closed list of relationship-preference labels.
var relationshipPreferences = []string{
	"Casual Dating",
	"Long-term Relationship",
	"Friendship First",
	"Serious Relationship",
	"Marriage Oriented",
	"Study Partners",
}

// Universities returns a copy of the ordered university list.
func Universities() []string {
	out := make([]string, len(universities))
	copy(out, universities)
	return out
}

// RelationshipPreferences returns a copy of the ordered preference list.
func RelationshipPreferences() []string {
	out := make([]string, len(relationshipPreferences))
	copy(out, relationshipPreferences)
	return out
}

// UniversityAt resolves an index from callback data. Returns false when the
// index is out of range.
func UniversityAt(i int) (string, bool) {
	if i < 0 || i >= len(universities) {
		return "", false
	}
	return universities[i], true
}

// RelationshipAt resolves an index from callback data.
func RelationshipAt(i int) (string, bool) {
	if i < 0 || i >= len(relationshipPreferences) {
		return "", false
	}
	return relationshipPreferences[i], true
}

// IsUniversity reports whether name is in the closed list.
func IsUniversity(name string) bool {
	for _, u := range universities {
		if u == name {
			return true
		}
	}
	return false
}

// IsRelationshipPreference reports whether label is in the closed list.
func IsRelationshipPreference(label string) bool {
	for _, r := range relationshipPreferences {
		if r == label {
			return true
		}
	}
	return false
}

// ValidTarget reports whether name is a valid target-university entry:
// either the "All" sentinel or a member of the closed list.
func ValidTarget(name string) bool {
	return name == AllUniversities || IsUniversity(name)
}
