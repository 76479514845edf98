package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/user-account-service/internal/api/dto"
	"github.com/spec-kit/user-account-service/internal/service"
	apperrors "github.com/spec-kit/user-account-service/pkg/util"
)

// AuthHandler exposes the public registration and login endpoints.
type AuthHandler struct {
	users *service.UserService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(userService *service.UserService) *AuthHandler {
	return &AuthHandler{users: userService}
}

// Register handles POST /register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError([]apperrors.FieldError{{Field: "body", Message: "invalid request body"}})
	}
	if err := req.Validate(); err != nil {
		return apperrors.NewValidationError(dto.FieldErrors(err))
	}

	user, token, exp, err := h.users.Register(c.UserContext(), service.RegisterInput{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
		Age:       req.Age,
	}, true)
	if err != nil {
		return err
	}

	return success(c, http.StatusCreated, "Registration successful", fiber.Map{
		"accessToken": token,
		"expiresAt":   exp,
		"user":        dto.NewUserResponse(user),
	})
}

// Login handles POST /login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError([]apperrors.FieldError{{Field: "body", Message: "invalid request body"}})
	}
	if err := req.Validate(); err != nil {
		return apperrors.NewValidationError(dto.FieldErrors(err))
	}

	user, token, exp, err := h.users.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return success(c, http.StatusOK, "Login successful", fiber.Map{
		"accessToken": token,
		"expiresAt":   exp,
		"user":        dto.NewUserResponse(user),
	})
}
