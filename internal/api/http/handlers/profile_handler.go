package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/user-account-service/internal/api/dto"
	"github.com/spec-kit/user-account-service/internal/service"
	apperrors "github.com/spec-kit/user-account-service/pkg/util"
)

// ProfileHandler exposes self-service profile endpoints.
type ProfileHandler struct {
	users *service.UserService
}

// NewProfileHandler constructs handler.
func NewProfileHandler(userService *service.UserService) *ProfileHandler {
	return &ProfileHandler{users: userService}
}

// GetByID handles GET /profile/:id. Reads are side-effect free: the same
// token and id always yield the same projection.
func (h *ProfileHandler) GetByID(c *fiber.Ctx) error {
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

// Update handles PUT /profile/:id.
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
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
