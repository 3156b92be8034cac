package helpers

import (
	"encoding/json"
	"errors"

	"helperkit/core/logger"
	"helperkit/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the helper collection.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type textRequest struct {
	Text string `json:"text"`
}

type nameRequest struct {
	Name string `json:"name"`
}

type findRequest struct {
	Records    []utils.Record `json:"records"`
	Candidates []utils.Record `json:"candidates"`
	Key        any            `json:"key"`
	Field      string         `json:"field"`
}

type equalRequest struct {
	A []any `json:"a"`
	B []any `json:"b"`
}

// RegisterRoutes registers the helper routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/helpers")
	group.Post("/color", h.HandleColor)
	group.Post("/initials", h.HandleInitials)
	group.Post("/camel", h.HandleCamelCase)
	group.Post("/hyphenate", h.HandleHyphenate)
	group.Post("/prune", h.HandlePrune)
	group.Post("/errors", h.HandleErrorMessage)
	group.Post("/typeof", h.HandleTypeOf)
	group.Post("/find", h.HandleFind)
	group.Post("/match", h.HandleMatch)
	group.Post("/equal", h.HandleEqual)
	group.Post("/last", h.HandleLast)
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
}

func noResult(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": msg})
}

// HandleColor returns the deterministic color of a text.
func (h *Handler) HandleColor(c *fiber.Ctx) error {
	var req textRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	color, ok := h.service.Color(req.Text)
	if !ok {
		return noResult(c, "text is empty")
	}
	return c.JSON(fiber.Map{"color": color})
}

// HandleInitials returns the initials of a name.
func (h *Handler) HandleInitials(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req nameRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	initials, err := utils.Initials(req.Name)
	if err != nil {
		if errors.Is(err, utils.ErrNameTooShort) {
			l.Warn("Name too short for initials", zap.String("name", req.Name))
		}
		return noResult(c, err.Error())
	}
	return c.JSON(fiber.Map{"initials": initials})
}

// HandleCamelCase camel-cases a text.
func (h *Handler) HandleCamelCase(c *fiber.Ctx) error {
	var req textRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	return c.JSON(fiber.Map{"result": utils.CamelCase(req.Text)})
}

// HandleHyphenate hyphenates a text.
func (h *Handler) HandleHyphenate(c *fiber.Ctx) error {
	var req textRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	return c.JSON(fiber.Map{"result": utils.Hyphenate(req.Text)})
}

// HandlePrune removes empty values from the posted document.
// Supports ?deep=true for recursive pruning.
func (h *Handler) HandlePrune(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	deep := utils.ToBool(c.Query("deep"))

	out, err := h.service.Prune(c.Body(), deep)
	if err != nil {
		l.Debug("Prune rejected", zap.Error(err), zap.Bool("deep", deep))
		return badRequest(c, err)
	}
	return c.JSON(out)
}

// HandleErrorMessage extracts the first field message of a validation error.
func (h *Handler) HandleErrorMessage(c *fiber.Ctx) error {
	msg, ok, err := h.service.ErrorMessage(c.Body())
	if err != nil {
		return badRequest(c, err)
	}
	if !ok {
		return noResult(c, "no field errors")
	}
	return c.JSON(fiber.Map{"message": msg})
}

// HandleTypeOf returns the type tag of the posted JSON value.
func (h *Handler) HandleTypeOf(c *fiber.Ctx) error {
	tag, err := h.service.TypeOf(c.Body())
	if err != nil {
		return badRequest(c, err)
	}
	return c.JSON(fiber.Map{"type": tag})
}

// HandleFind returns the first record matching a key.
func (h *Handler) HandleFind(c *fiber.Ctx) error {
	var req findRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	r, ok := h.service.Find(req.Records, req.Field, req.Key)
	if !ok {
		return noResult(c, "record not found")
	}
	return c.JSON(fiber.Map{"record": r})
}

// HandleMatch returns the records also present among the candidates.
func (h *Handler) HandleMatch(c *fiber.Ctx) error {
	var req findRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	matched, ok := h.service.Match(req.Records, req.Candidates, req.Field)
	if !ok {
		return noResult(c, "no matching records")
	}
	return c.JSON(fiber.Map{"records": matched})
}

// HandleEqual compares two arrays element by element.
func (h *Handler) HandleEqual(c *fiber.Ctx) error {
	var req equalRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	return c.JSON(fiber.Map{"equal": utils.ArraysEqual(req.A, req.B)})
}

// HandleLast returns the final element of the posted array.
func (h *Handler) HandleLast(c *fiber.Ctx) error {
	var items []any
	if err := json.Unmarshal(c.Body(), &items); err != nil {
		return badRequest(c, err)
	}
	item, ok := utils.Last(items)
	if !ok {
		return noResult(c, "array is empty")
	}
	return c.JSON(fiber.Map{"item": item})
}
