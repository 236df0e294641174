package auth

import (
	"time"

	"warda-panel/internal/config"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Password string `json:"password"`
}

// HashPassword PANEL_PASSWORD_HASH için bcrypt özeti üretir.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// POST /api/auth/login
func LoginHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !cfg.AuthEnabled() {
			return fiber.NewError(fiber.StatusNotFound, "Panel girişi kapalı")
		}

		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if body.Password == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Şifre zorunlu")
		}

		if err := bcrypt.CompareHashAndPassword([]byte(cfg.PanelPasswordHash), []byte(body.Password)); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Şifre hatalı")
		}

		token, expires, err := GenerateToken(cfg.JWTSecret, time.Now())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Token oluşturulamadı")
		}

		return c.JSON(fiber.Map{
			"token":      token,
			"expires_at": expires,
		})
	}
}

// GET /api/auth/me
func MeHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !cfg.AuthEnabled() {
			return c.JSON(fiber.Map{"auth_enabled": false})
		}
		return c.JSON(fiber.Map{
			"auth_enabled": true,
			"subject":      c.Locals(CtxSubjectKey),
			"expires_at":   c.Locals(CtxExpiresAtKey),
		})
	}
}
