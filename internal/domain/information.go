package domain

import (
	"time"
	"unicode/utf8"

	"github.com/forgetting-curve/api/internal/domain/srs"
)

// Field limits for Information, counted in characters to match the VARCHAR
// column widths.
const (
	MaxInformationLength = 30
	MaxExplanationLength = 200
)

// Common validation errors for Information. Each unwraps to ErrValidation.
var (
	ErrEmptyInformation   = newValidationError("information cannot be empty")
	ErrInformationTooLong = newValidationError("information must be at most 30 characters long")
	ErrEmptyExplanation   = newValidationError("explanation cannot be empty")
	ErrExplanationTooLong = newValidationError("explanation must be at most 200 characters long")
	ErrEmptyOwner         = newValidationError("information owner nickname cannot be empty")
	ErrScheduleOutOfOrder = newValidationError("repeat dates must be strictly increasing")
)

// Information represents a fact (thesis) and its explanation submitted by a
// user, together with the five review checkpoints of its spaced-repetition
// schedule. An Information record belongs to exactly one user and is
// immutable once created; it is deleted individually by id or in bulk when
// its owner is deleted.
//
// The repeat dates are stored with full timestamp precision so the one-hour
// offset of the first checkpoint is not collapsed into the creation day.
type Information struct {
	ID           int64     `json:"id"`
	Information  string    `json:"information"`
	Explanation  string    `json:"explanation"`
	RepeatDate1  time.Time `json:"repeat_date_1"`
	RepeatDate2  time.Time `json:"repeat_date_2"`
	RepeatDate3  time.Time `json:"repeat_date_3"`
	RepeatDate4  time.Time `json:"repeat_date_4"`
	RepeatDate5  time.Time `json:"repeat_date_5"`
	UserNickname string    `json:"user_nickname"`
}

// NewInformation creates a new Information owned by the given user, with
// its review schedule derived from createdAt. The ID is zero until the
// store assigns one. Returns an error if validation fails.
func NewInformation(userNickname, information, explanation string, createdAt time.Time) (*Information, error) {
	schedule := srs.Schedule(createdAt)

	info := &Information{
		Information:  information,
		Explanation:  explanation,
		RepeatDate1:  schedule.First,
		RepeatDate2:  schedule.Second,
		RepeatDate3:  schedule.Third,
		RepeatDate4:  schedule.Fourth,
		RepeatDate5:  schedule.Fifth,
		UserNickname: userNickname,
	}

	if err := info.Validate(); err != nil {
		return nil, err
	}

	return info, nil
}

// Validate checks if the Information has valid data.
// Returns an error if any field fails validation or if the review
// checkpoints are not strictly increasing.
func (i *Information) Validate() error {
	if i.Information == "" {
		return ErrEmptyInformation
	}
	if utf8.RuneCountInString(i.Information) > MaxInformationLength {
		return ErrInformationTooLong
	}

	if i.Explanation == "" {
		return ErrEmptyExplanation
	}
	if utf8.RuneCountInString(i.Explanation) > MaxExplanationLength {
		return ErrExplanationTooLong
	}

	if i.UserNickname == "" {
		return ErrEmptyOwner
	}

	if !i.Schedule().IsStrictlyIncreasing() {
		return ErrScheduleOutOfOrder
	}

	return nil
}

// Schedule returns the item's review checkpoints as a srs.ReviewSchedule.
func (i *Information) Schedule() srs.ReviewSchedule {
	return srs.ReviewSchedule{
		First:  i.RepeatDate1,
		Second: i.RepeatDate2,
		Third:  i.RepeatDate3,
		Fourth: i.RepeatDate4,
		Fifth:  i.RepeatDate5,
	}
}
