package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gracechapel/pastor-mobile-api/internal/dto"
	"github.com/gracechapel/pastor-mobile-api/internal/middleware"
	"github.com/gracechapel/pastor-mobile-api/internal/services"
)

type SeriesHandler struct {
	seriesService *services.SeriesService
}

func NewSeriesHandler(seriesService *services.SeriesService) *SeriesHandler {
	return &SeriesHandler{seriesService: seriesService}
}

func (h *SeriesHandler) List(c *fiber.Ctx) error {
	list, err := h.seriesService.List(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.NewSeriesListResponse(list))
}

func (h *SeriesHandler) Count(c *fiber.Ctx) error {
	n, err := h.seriesService.Count(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.SeriesCountResponse{Total: n})
}

func (h *SeriesHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, err)
	}
	series, err := h.seriesService.Get(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.NewSeriesResponse(series))
}

func (h *SeriesHandler) Create(c *fiber.Ctx) error {
	callerID, _, err := middleware.Caller(c)
	if err != nil {
		return fail(c, errUnauthenticated)
	}
	var req dto.CreateSeriesRequest
	if err := parseBody(c, &req); err != nil {
		return fail(c, err)
	}
	series, err := h.seriesService.Create(c.Context(), callerID, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewSeriesResponse(series))
}

func (h *SeriesHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, err)
	}
	var req dto.UpdateSeriesRequest
	if err := parseBody(c, &req); err != nil {
		return fail(c, err)
	}
	series, err := h.seriesService.Update(c.Context(), id, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.NewSeriesResponse(series))
}

func (h *SeriesHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, err)
	}
	if err := h.seriesService.Delete(c.Context(), id); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
