package conversation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Field limits for profile input. Lengths count runes, not bytes, so Amharic
// names are measured the same as Latin ones.
const (
	NameMin    = 3
	NameMax    = 50
	AgeMin     = 18
	AgeMax     = 30
	HobbiesMin = 3
	HobbiesMax = 200
	BioMin     = 10
	BioMax     = 500
)

func ValidateName(input string) (string, error) {
	name := strings.TrimSpace(input)
	if n := utf8.RuneCountInString(name); n < NameMin || n > NameMax {
		return "", fmt.Errorf("name must be between %d and %d characters", NameMin, NameMax)
	}
	return name, nil
}

func ValidateAge(input string) (int, error) {
	age, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, errors.New("age must be a number")
	}
	if age < AgeMin || age > AgeMax {
		return 0, fmt.Errorf("age must be between %d and %d", AgeMin, AgeMax)
	}
	return age, nil
}

func ValidateHobbies(input string) (string, error) {
	hobbies := strings.TrimSpace(input)
	if n := utf8.RuneCountInString(hobbies); n < HobbiesMin || n > HobbiesMax {
		return "", fmt.Errorf("hobbies must be between %d and %d characters", HobbiesMin, HobbiesMax)
	}
	return hobbies, nil
}

func ValidateBio(input string) (string, error) {
	bio := strings.TrimSpace(input)
	if n := utf8.RuneCountInString(bio); n < BioMin || n > BioMax {
		return "", fmt.Errorf("bio must be between %d and %d characters", BioMin, BioMax)
	}
	return bio, nil
}
