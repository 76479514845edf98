package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/user-account-service/internal/api/dto"
	"github.com/spec-kit/user-account-service/internal/service"
	apperrors "github.com/spec-kit/user-account-service/pkg/util"
)

// AdminHandler exposes token-protected user management endpoints.
type AdminHandler struct {
	users *service.UserService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(userService *service.UserService) *AdminHandler {
	return &AdminHandler{users: userService}
}

// List handles GET /admin/users.
func (h *AdminHandler) List(c *fiber.Ctx) error {
	users, err := h.users.List(c.UserContext())
	if err != nil {
		return err
	}

	message := "Users found successfully"
	if len(users) == 0 {
		message = "No users found"
	}
	return success(c, http.StatusOK, message, dto.NewUserResponseList(users))
}

// GetByID handles GET /admin/user/:id.
func (h *AdminHandler) GetByID(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	user, err := h.users.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, "User found successfully", dto.NewUserResponse(user))
}

// Create handles POST /admin/user. Same contract as registration but no
// token is issued for the created account.
func (h *AdminHandler) Create(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError([]apperrors.FieldError{{Field: "body", Message: "invalid request body"}})
	}
	if err := req.Validate(); err != nil {
		return apperrors.NewValidationError(dto.FieldErrors(err))
	}

	user, _, _, err := h.users.Register(c.UserContext(), service.RegisterInput{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
		Age:       req.Age,
	}, false)
	if err != nil {
		return err
	}

	return success(c, http.StatusCreated, "Registration successful", fiber.Map{
		"user": dto.NewUserResponse(user),
	})
}

// Update handles PUT /admin/user/:id.
func (h *AdminHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError([]apperrors.FieldError{{Field: "body", Message: "invalid request body"}})
	}
	if err := req.Validate(); err != nil {
		return apperrors.NewValidationError(dto.FieldErrors(err))
	}

	user, err := h.users.Update(c.UserContext(), id, req.Patch())
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, "User updated successfully", dto.NewUserResponse(user))
}

// Delete handles DELETE /admin/user/:id.
func (h *AdminHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	user, err := h.users.Delete(c.UserContext(), id)
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, "User deleted", dto.NewUserResponse(user))
}
