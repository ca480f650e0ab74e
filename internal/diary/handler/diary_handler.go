package handler

import (
	"errors"

	"github.com/AdityaZala3919/mini-services/internal/diary/service"
	apperror "github.com/AdityaZala3919/mini-services/internal/errors"
	"github.com/gofiber/fiber/v2"
)

type DiaryHandler struct {
	diaryService *service.DiaryService
}

func NewDiaryHandler(diaryService *service.DiaryService) *DiaryHandler {
	return &DiaryHandler{diaryService: diaryService}
}

func (h *DiaryHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Internship Diary 2026",
	})
}

// CreateOrUpdate saves the entry for ?date=DD-MM-YYYY with optional
// ?text= and ?todo= query parameters.
func (h *DiaryHandler) CreateOrUpdate(c *fiber.Ctx) error {
	date := c.Query("date")
	if date == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "date query parameter is required",
		})
	}

	err := h.diaryService.Save(c.UserContext(), date, c.Query("text"), c.Query("todo"))
	if err != nil {
		if errors.Is(err, apperror.ErrInvalidDate) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Entry saved successfully",
	})
}

func (h *DiaryHandler) Get(c *fiber.Ctx) error {
	entry, err := h.diaryService.Get(c.Params("date"))
	if err != nil {
		switch {
		case errors.Is(err, apperror.ErrEntryNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		case errors.Is(err, apperror.ErrInvalidDate):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "internal error",
			})
		}
	}

	return c.Status(fiber.StatusOK).JSON(entry)
}

func (h *DiaryHandler) Export(c *fiber.Ctx) error {
	path, err := h.diaryService.Export()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Export completed",
		"file":    path,
	})
}
