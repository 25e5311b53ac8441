package handler

import (
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/backend-template/internal/model"
	"github.com/dtroode/backend-template/internal/timeutil"
)

// MessageResponse is a plain informational body.
type MessageResponse struct {
	Message string `json:"message" example:"Welcome to Backend Template"`
}

// HealthResponse reports service or dependency health.
type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Message string `json:"message" example:"Service is running"`
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type" example:"bearer"`
}

// UserResponse is the public representation of a user. Timestamps are in
// the configured time zone.
type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username" example:"alice"`
	Email       string    `json:"email" example:"alice@example.com"`
	IsActive    bool      `json:"is_active"`
	IsSuperuser bool      `json:"is_superuser"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newUserResponse(user model.User, loc *time.Location) UserResponse {
	return UserResponse{
		ID:          user.ID,
		Username:    user.Username,
		Email:       user.Email,
		IsActive:    user.IsActive,
		IsSuperuser: user.IsSuperuser,
		CreatedAt:   timeutil.ToLocal(user.CreatedAt, loc),
		UpdatedAt:   timeutil.ToLocal(user.UpdatedAt, loc),
	}
}

// StatusResponse is returned by the authentication status check.
type StatusResponse struct {
	Status   string    `json:"status" example:"authenticated"`
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username" example:"alice"`
}

// AdminUser is the caller echoed back by the admin check.
type AdminUser struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

// AdminResponse is returned by the superuser-only check.
type AdminResponse struct {
	Message   string    `json:"message" example:"Hello admin alice!"`
	AdminUser AdminUser `json:"admin_user"`
}

// LoginRequest is the JSON form of the login body. Identifier may be an
// email or a username; Username is accepted as an alias.
type LoginRequest struct {
	Identifier string `json:"identifier" form:"identifier"`
	Username   string `json:"username" form:"username"`
	Password   string `json:"password" form:"password"`
}

// UserCreateRequest creates a user.
type UserCreateRequest struct {
	Email       string `json:"email" binding:"required" example:"bob@example.com"`
	Username    string `json:"username" binding:"required" example:"bob"`
	Password    string `json:"password" binding:"required"`
	IsActive    *bool  `json:"is_active"`
	IsSuperuser *bool  `json:"is_superuser"`
}

// UserUpdateRequest partially updates a user. Absent fields are left as is.
type UserUpdateRequest struct {
	Email       *string `json:"email"`
	Username    *string `json:"username"`
	Password    *string `json:"password"`
	IsActive    *bool   `json:"is_active"`
	IsSuperuser *bool   `json:"is_superuser"`
}

// TestTaskRequest enqueues the demo task.
type TestTaskRequest struct {
	Word string `json:"word" binding:"required" example:"hello"`
}

// TaskResponse is the stored state of a task.
type TaskResponse struct {
	ID     uuid.UUID        `json:"id"`
	Name   string           `json:"name" example:"test"`
	Status model.TaskStatus `json:"status" example:"PENDING"`
	Result string           `json:"result,omitempty"`
	Error  string           `json:"error,omitempty"`
}

func newTaskResponse(result model.TaskResult) TaskResponse {
	return TaskResponse{
		ID:     result.ID,
		Name:   result.Name,
		Status: result.Status,
		Result: result.Result,
		Error:  result.Error,
	}
}

// TimezoneInfo describes the configured zone at the moment of the request.
type TimezoneInfo struct {
	UTCOffset     float64 `json:"utc_offset" example:"11"`
	UTCTimezone   string  `json:"utc_timezone" example:"UTC"`
	LocalTimezone string  `json:"local_timezone" example:"Australia/Sydney"`
}

// TimeResponse demonstrates time zone conversions.
type TimeResponse struct {
	UTCTime            time.Time    `json:"utc_time"`
	LocalTime          time.Time    `json:"local_time"`
	LocalFromUTC       time.Time    `json:"local_from_utc"`
	FormattedLocalTime string       `json:"formatted_local_time" example:"2024-01-15 21:30:00"`
	TimezoneInfo       TimezoneInfo `json:"timezone_info"`
}
