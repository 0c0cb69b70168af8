package api

import (
	"time"

	"github.com/forgetting-curve/api/internal/domain"
)

// Request and response structures shared by the handlers.

// CreateUserRequest defines the payload for the user creation endpoint.
type CreateUserRequest struct {
	Nickname  string `json:"nickname"   validate:"required,min=1,max=20"`
	FirstName string `json:"first_name" validate:"required,min=1,max=20"`
	LastName  string `json:"last_name"  validate:"required,min=1,max=20"`
	Age       int    `json:"age"        validate:"required,gte=1,lte=99"`
	Job       string `json:"job"        validate:"required,min=1,max=100"`
}

// UpdateUserRequest defines the payload for the user update endpoint.
// Only age and job are mutable.
type UpdateUserRequest struct {
	Age int    `json:"age" validate:"required,gte=1,lte=99"`
	Job string `json:"job" validate:"required,min=1,max=100"`
}

// CreateInformationRequest defines the payload for the information
// creation endpoint.
type CreateInformationRequest struct {
	Information string `json:"information" validate:"required,min=1,max=30"`
	Explanation string `json:"explanation" validate:"required,min=1,max=200"`
}

// UserResponse represents a user on the wire.
type UserResponse struct {
	Nickname  string `json:"nickname"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Age       int    `json:"age"`
	Job       string `json:"job"`
}

// InformationResponse represents an information record on the wire,
// including its five review checkpoints.
type InformationResponse struct {
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

func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		Nickname:  user.Nickname,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Age:       user.Age,
		Job:       user.Job,
	}
}

func informationToResponse(info *domain.Information) InformationResponse {
	return InformationResponse{
		ID:           info.ID,
		Information:  info.Information,
		Explanation:  info.Explanation,
		RepeatDate1:  info.RepeatDate1,
		RepeatDate2:  info.RepeatDate2,
		RepeatDate3:  info.RepeatDate3,
		RepeatDate4:  info.RepeatDate4,
		RepeatDate5:  info.RepeatDate5,
		UserNickname: info.UserNickname,
	}
}
