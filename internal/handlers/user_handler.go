package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/gracechapel/pastor-mobile-api/internal/dto"
	"github.com/gracechapel/pastor-mobile-api/internal/middleware"
	"github.com/gracechapel/pastor-mobile-api/internal/models"
	"github.com/gracechapel/pastor-mobile-api/internal/services"
)

// UserHandler serves both management surfaces from one implementation:
// /superadmin/admins/* manages the fixed ADMIN role, and /admin/:group/*
// manages whichever team role the :group segment names.
type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	caller, target, err := callerAndTarget(c)
	if err != nil {
		return fail(c, err)
	}
	users, err := h.userService.List(c.Context(), caller, target)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(users)
}

func (h *UserHandler) Count(c *fiber.Ctx) error {
	caller, target, err := callerAndTarget(c)
	if err != nil {
		return fail(c, err)
	}
	n, err := h.userService.Count(c.Context(), caller, target)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.CountResponse{Count: n})
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	caller, target, err := callerAndTarget(c)
	if err != nil {
		return fail(c, err)
	}
	id, err := parseID(c)
	if err != nil {
		return fail(c, err)
	}
	user, err := h.userService.Get(c.Context(), caller, target, id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(user)
}

func (h *UserHandler) Create(c *fiber.Ctx) error {
	caller, target, err := callerAndTarget(c)
	if err != nil {
		return fail(c, err)
	}
	var req dto.CreateUserRequest
	if err := parseBody(c, &req); err != nil {
		return fail(c, err)
	}
	resp, err := h.userService.Provision(c.Context(), caller, target, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	caller, target, err := callerAndTarget(c)
	if err != nil {
		return fail(c, err)
	}
	id, err := parseID(c)
	if err != nil {
		return fail(c, err)
	}
	var req dto.UpdateUserRequest
	if err := parseBody(c, &req); err != nil {
		return fail(c, err)
	}
	user, err := h.userService.Update(c.Context(), caller, target, id, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(user)
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	caller, target, err := callerAndTarget(c)
	if err != nil {
		return fail(c, err)
	}
	id, err := parseID(c)
	if err != nil {
		return fail(c, err)
	}
	if err := h.userService.Delete(c.Context(), caller, target, id); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *UserHandler) ResendCredentials(c *fiber.Ctx) error {
	caller, target, err := callerAndTarget(c)
	if err != nil {
		return fail(c, err)
	}
	id, err := parseID(c)
	if err != nil {
		return fail(c, err)
	}
	if err := h.userService.ResendCredentials(c.Context(), caller, target, id); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Credentials sent"})
}

func (h *UserHandler) Me(c *fiber.Ctx) error {
	callerID, _, err := middleware.Caller(c)
	if err != nil {
		return fail(c, errUnauthenticated)
	}
	user, err := h.userService.Me(c.Context(), callerID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(user)
}

func (h *UserHandler) UpdateMe(c *fiber.Ctx) error {
	callerID, _, err := middleware.Caller(c)
	if err != nil {
		return fail(c, errUnauthenticated)
	}
	var req dto.UpdateProfileRequest
	if err := parseBody(c, &req); err != nil {
		return fail(c, err)
	}
	user, err := h.userService.UpdateProfile(c.Context(), callerID, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(user)
}

// callerAndTarget resolves the authenticated caller and the role segment
// being managed. Without a :group param the target is ADMIN (the superadmin
// surface); with one, it must name a team role.
func callerAndTarget(c *fiber.Ctx) (*models.User, models.Role, error) {
	callerID, callerRole, err := middleware.Caller(c)
	if err != nil {
		return nil, "", errUnauthenticated
	}
	caller := &models.User{ID: callerID, Role: callerRole}

	group := c.Params("group")
	if group == "" {
		return caller, models.RoleAdmin, nil
	}
	target, ok := models.ParseRole(group)
	if !ok || target.Level() != 2 {
		return nil, "", fmt.Errorf("%w: unknown team %q", services.ErrNotFound, group)
	}
	return caller, target, nil
}
