// Package validators holds the pure field checks run before any handler
// touches a repository. The rules mirror the legacy frontend contract:
// Indian mobile numbers, a loose email shape, alphanumeric usernames.
package validators

import "regexp"

var (
	nameRe     = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	phoneRe    = regexp.MustCompile(`^[7-9]\d{9}$`)
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// FieldError names the offending field and the reason it was rejected.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func ValidEmail(email string) bool { return emailRe.MatchString(email) }

func ValidPhone(phone string) bool { return phoneRe.MatchString(phone) }

func ValidName(name string) bool {
	return len(name) >= 3 && nameRe.MatchString(name)
}

func ValidUsername(username string) bool { return usernameRe.MatchString(username) }

// RegisterInput is the body of POST /register.
type RegisterInput struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Password string `json:"password"`
	UserType string `json:"userType"`
}

// Validate returns every failing field in declaration order, not just the
// first, so the client can mark the whole form at once.
func (r RegisterInput) Validate(passwordMinLen int) []FieldError {
	var errs []FieldError
	if !ValidName(r.Name) {
		errs = append(errs, FieldError{"name", "Name should be at least 3 letters long and contain only letters"})
	}
	if !ValidUsername(r.Username) {
		errs = append(errs, FieldError{"username", "Username should contain only letters and numbers"})
	}
	if !ValidPhone(r.Phone) {
		errs = append(errs, FieldError{"phone", "Phone number should be in Indian format"})
	}
	if !ValidEmail(r.Email) {
		errs = append(errs, FieldError{"email", "Invalid email format"})
	}
	if len(r.Password) < passwordMinLen {
		errs = append(errs, FieldError{"password", "Password is too short"})
	}
	if r.UserType != "" && r.UserType != "user" && r.UserType != "admin" {
		errs = append(errs, FieldError{"userType", "userType must be 'user' or 'admin'"})
	}
	return errs
}

// LoginInput is the body of POST /login.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (l LoginInput) Validate() []FieldError {
	var errs []FieldError
	if !ValidEmail(l.Email) {
		errs = append(errs, FieldError{"email", "Please provide a valid email"})
	}
	if l.Password == "" {
		errs = append(errs, FieldError{"password", "Password is required"})
	}
	return errs
}

// ContactInput is the body of POST /send-message.
type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

func (c ContactInput) Validate() []FieldError {
	var errs []FieldError
	if !ValidPhone(c.Phone) {
		errs = append(errs, FieldError{"phone", "Phone number should be in Indian format"})
	}
	if !ValidEmail(c.Email) {
		errs = append(errs, FieldError{"email", "Invalid email format"})
	}
	return errs
}
