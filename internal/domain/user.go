package domain

import "unicode/utf8"

// Field limits for User, counted in characters to match the VARCHAR column
// widths. The nickname doubles as the primary key, so it is immutable once
// the user is created.
const (
	MaxNicknameLength  = 20
	MaxFirstNameLength = 20
	MaxLastNameLength  = 20
	MaxJobLength       = 100
	MinAge             = 1
	MaxAge             = 99
)

// Common validation errors for User. Each unwraps to ErrValidation.
var (
	ErrEmptyNickname    = newValidationError("nickname cannot be empty")
	ErrNicknameTooLong  = newValidationError("nickname must be at most 20 characters long")
	ErrEmptyFirstName   = newValidationError("first name cannot be empty")
	ErrFirstNameTooLong = newValidationError("first name must be at most 20 characters long")
	ErrEmptyLastName    = newValidationError("last name cannot be empty")
	ErrLastNameTooLong  = newValidationError("last name must be at most 20 characters long")
	ErrAgeOutOfRange    = newValidationError("age must be between 1 and 99")
	ErrEmptyJob         = newValidationError("job cannot be empty")
	ErrJobTooLong       = newValidationError("job must be at most 100 characters long")
)

// User represents a registered user of the Forgetting-Curve application.
// The nickname uniquely identifies the user and never changes; only Age and
// Job are mutable after creation.
type User struct {
	Nickname  string `json:"nickname"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Age       int    `json:"age"`
	Job       string `json:"job"`
}

// NewUser creates a new User with the given fields.
// Returns an error if validation fails.
func NewUser(nickname, firstName, lastName string, age int, job string) (*User, error) {
	user := &User{
		Nickname:  nickname,
		FirstName: firstName,
		LastName:  lastName,
		Age:       age,
		Job:       job,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.Nickname == "" {
		return ErrEmptyNickname
	}
	if utf8.RuneCountInString(u.Nickname) > MaxNicknameLength {
		return ErrNicknameTooLong
	}

	if u.FirstName == "" {
		return ErrEmptyFirstName
	}
	if utf8.RuneCountInString(u.FirstName) > MaxFirstNameLength {
		return ErrFirstNameTooLong
	}

	if u.LastName == "" {
		return ErrEmptyLastName
	}
	if utf8.RuneCountInString(u.LastName) > MaxLastNameLength {
		return ErrLastNameTooLong
	}

	if u.Age < MinAge || u.Age > MaxAge {
		return ErrAgeOutOfRange
	}

	if u.Job == "" {
		return ErrEmptyJob
	}
	if utf8.RuneCountInString(u.Job) > MaxJobLength {
		return ErrJobTooLong
	}

	return nil
}

// UpdateProfile mutates the two updatable fields, Age and Job.
// The identity fields (nickname, first and last name) are never updated.
// Returns an error if the new values fail validation; the user is left
// unchanged in that case.
func (u *User) UpdateProfile(age int, job string) error {
	if age < MinAge || age > MaxAge {
		return ErrAgeOutOfRange
	}
	if job == "" {
		return ErrEmptyJob
	}
	if utf8.RuneCountInString(job) > MaxJobLength {
		return ErrJobTooLong
	}

	u.Age = age
	u.Job = job
	return nil
}
