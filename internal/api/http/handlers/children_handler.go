package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/account-service/internal/api/dto"
	"github.com/spec-kit/account-service/internal/auth"
	"github.com/spec-kit/account-service/internal/domain"
	"github.com/spec-kit/account-service/internal/service"
	apperrors "github.com/spec-kit/account-service/pkg/util"
)

// ChildrenHandler exposes CRUD endpoints for the caller's child records.
type ChildrenHandler struct {
	children *service.ChildService
}

// NewChildrenHandler constructs handler.
func NewChildrenHandler(children *service.ChildService) *ChildrenHandler {
	return &ChildrenHandler{children: children}
}

// Create handles POST /api/children.
func (h *ChildrenHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("no token provided")
	}

	var req dto.CreateChildRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validateStruct(&req); err != nil {
		return err
	}

	child, err := h.children.CreateChild(c.UserContext(), principal.User.ID.Hex(), req.Name, req.Age)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(child)
}

// List handles GET /api/children.
func (h *ChildrenHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("no token provided")
	}

	children, err := h.children.ListChildren(c.UserContext(), principal.User.ID.Hex())
	if err != nil {
		return err
	}
	return c.JSON(children)
}

// Get handles GET /api/children/:id.
func (h *ChildrenHandler) Get(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("no token provided")
	}

	child, err := h.children.GetChild(c.UserContext(), principal.User.ID.Hex(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(child)
}

// Update handles PATCH /api/children/:id.
func (h *ChildrenHandler) Update(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("no token provided")
	}

	var req dto.UpdateChildRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validateStruct(&req); err != nil {
		return err
	}

	child, err := h.children.UpdateChild(c.UserContext(), principal.User.ID.Hex(), c.Params("id"), domain.ChildUpdate{
		Name: req.Name,
		Age:  req.Age,
	})
	if err != nil {
		return err
	}
	return c.JSON(child)
}

// Delete handles DELETE /api/children/:id.
func (h *ChildrenHandler) Delete(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("no token provided")
	}

	if err := h.children.DeleteChild(c.UserContext(), principal.User.ID.Hex(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
