package handler

import (
	"errors"
	"strings"

	"github.com/AdityaZala3919/mini-services/internal/auth/domain"
	apperror "github.com/AdityaZala3919/mini-services/internal/errors"
	"github.com/gofiber/fiber/v2"
)

const accountLocalsKey = "account"

// RequireAuth extracts the bearer token from the Authorization header,
// resolves it to an account and stores the account in the request
// locals for downstream handlers.
func (h *AuthHandler) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return unauthorized(c, apperror.ErrInvalidToken.Error())
		}

		account, err := h.accountService.ResolveCurrentUser(c.UserContext(), token)
		if err != nil {
			if errors.Is(err, apperror.ErrInvalidToken) || errors.Is(err, apperror.ErrAccountNotFound) {
				return unauthorized(c, err.Error())
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "internal error",
			})
		}

		c.Locals(accountLocalsKey, account)

		return c.Next()
	}
}

func currentAccount(c *fiber.Ctx) *domain.Account {
	account, _ := c.Locals(accountLocalsKey).(*domain.Account)
	return account
}

func unauthorized(c *fiber.Ctx, msg string) error {
	c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": msg,
	})
}
