package dto

import (
	"sort"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/spec-kit/user-account-service/internal/domain"
	"github.com/spec-kit/user-account-service/pkg/util"
)

// RegisterRequest payload for new accounts. All fields are required.
type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Password  string `json:"password"`
	Age       string `json:"age"`
}

// Validate runs field-level validation rules.
func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required, validation.Length(3, 100)),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.FirstName, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.LastName, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Password, validation.Required, validation.Length(6, 100)),
		validation.Field(&r.Age, validation.Required),
	)
}

// LoginRequest payload for login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate runs field-level validation rules.
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

// UpdateUserRequest carries a partial update; absent fields stay untouched.
type UpdateUserRequest struct {
	Username  *string `json:"username"`
	Email     *string `json:"email"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Age       *string `json:"age"`
	Password  *string `json:"password"`
}

// Validate runs field-level validation rules on the fields present.
func (r UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, is.Email),
		validation.Field(&r.Username, validation.Length(3, 100)),
		validation.Field(&r.Password, validation.Length(6, 100)),
	)
}

// Patch converts the request into the domain patch struct.
func (r UpdateUserRequest) Patch() domain.UserUpdate {
	return domain.UserUpdate{
		Username:  r.Username,
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Age:       r.Age,
		Password:  r.Password,
	}
}

// UserResponse is the non-secret projection returned by every endpoint.
type UserResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Age       string `json:"age"`
	Verified  bool   `json:"verified"`
}

// NewUserResponse projects a domain user; the credential digest is
// excluded unconditionally.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Age:       user.Age,
		Verified:  user.Verified,
	}
}

// NewUserResponseList projects a slice of users.
func NewUserResponseList(users []*domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, NewUserResponse(user))
	}
	return out
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// FieldErrors flattens an ozzo validation result into the structured
// per-field error list used by the response envelope.
func FieldErrors(err error) []util.FieldError {
	verrs, ok := err.(validation.Errors)
	if !ok {
		return []util.FieldError{{Field: "body", Message: err.Error()}}
	}

	fields := make([]string, 0, len(verrs))
	for field := range verrs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	out := make([]util.FieldError, 0, len(fields))
	for _, field := range fields {
		out = append(out, util.FieldError{Field: field, Message: verrs[field].Error()})
	}
	return out
}
