package domain

// Gender values accepted for personal info.
type Gender string

const (
	GenderMale           Gender = "Male"
	GenderFemale         Gender = "Female"
	GenderOther          Gender = "Other"
	GenderPreferNotToSay Gender = "PreferNotToSay"
)

// Valid reports whether g is one of the known genders.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther, GenderPreferNotToSay:
		return true
	}
	return false
}

// PersonalInfo holds optional profile details for a user.
type PersonalInfo struct {
	UserID    string
	FirstName string
	LastName  string
	Gender    Gender
}
