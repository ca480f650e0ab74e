package handler

import (
	"errors"

	"github.com/AdityaZala3919/mini-services/internal/auth/dto"
	"github.com/AdityaZala3919/mini-services/internal/auth/service"
	apperror "github.com/AdityaZala3919/mini-services/internal/errors"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	accountService *service.AccountService
}

func NewAuthHandler(accountService *service.AccountService) *AuthHandler {
	return &AuthHandler{accountService: accountService}
}

func (h *AuthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "OAuth2 + JWT authenticator",
	})
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	if input.Username == "" || input.Email == "" || input.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "username, email and password are required",
		})
	}

	account, err := h.accountService.Register(c.UserContext(), input)
	if err != nil {
		if errors.Is(err, apperror.ErrDuplicateIdentity) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.FromAccount(account))
}

func (h *AuthHandler) Token(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	tokenResponse, err := h.accountService.Login(c.UserContext(), input)
	if err != nil {
		if errors.Is(err, apperror.ErrInvalidCredentials) {
			c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(tokenResponse)
}

// Me returns the account resolved by RequireAuth.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	account := currentAccount(c)
	if account == nil {
		return unauthorized(c, apperror.ErrInvalidToken.Error())
	}

	return c.Status(fiber.StatusOK).JSON(dto.FromAccount(account))
}
