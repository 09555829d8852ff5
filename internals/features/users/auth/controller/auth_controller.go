// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "quizogram_backend/internals/features/users/auth/dto"
	service "quizogram_backend/internals/features/users/auth/service"
	userModel "quizogram_backend/internals/features/users/user/model"
	helper "quizogram_backend/internals/helpers"
)

type AuthController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		DB:        db,
		Validator: validator.New(),
	}
}

// POST /auth/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var body dto.RegisterRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	user, err := service.Register(ctrl.DB.WithContext(c.Context()), body)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	return helper.JsonCreated(c, "Registrasi berhasil", dto.FromUserModel(user))
}

// POST /auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	user, err := service.Login(ctrl.DB.WithContext(c.Context()), body)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	return ctrl.respondWithToken(c, "Login berhasil", user)
}

// POST /auth/login-google
func (ctrl *AuthController) LoginGoogle(c *fiber.Ctx) error {
	var body dto.GoogleLoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	user, err := service.LoginGoogle(ctrl.DB.WithContext(c.Context()), body.IDToken)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	return ctrl.respondWithToken(c, "Login Google berhasil", user)
}

// POST /auth/logout (bearer)
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	tokenString, _ := c.Locals("token_string").(string)
	if strings.TrimSpace(tokenString) == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak ditemukan")
	}

	if err := service.Logout(ctrl.DB.WithContext(c.Context()), tokenString); err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		HTTPOnly: true,
		Path:     "/",
		MaxAge:   -1,
	})

	return helper.JsonOK(c, "Logout berhasil", nil)
}

func (ctrl *AuthController) respondWithToken(c *fiber.Ctx, message string, user *userModel.UserModel) error {
	signed, expiresAt, err := service.IssueAccessToken(user)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    signed,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  expiresAt,
	})

	return helper.JsonOK(c, message, dto.TokenResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		User:        dto.FromUserModel(user),
	})
}
