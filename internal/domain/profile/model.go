package profile

import "fmt"

// Countries is the fixed pool the app supports, also used for demo profiles.
var Countries = []string{"US", "AT", "DE", "BR", "ZA"}

// Profile identifies the user on leaderboards.
type Profile struct {
	UserID  string
	Name    string
	Country string
	Handle  string
}

func (p Profile) Validate() error {
	if p.UserID == "" {
		return fmt.Errorf("user id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("user name is required")
	}
	if !ValidCountry(p.Country) {
		return fmt.Errorf("invalid country: %s", p.Country)
	}
	return nil
}

func ValidCountry(code string) bool {
	for _, c := range Countries {
		if c == code {
			return true
		}
	}
	return false
}
