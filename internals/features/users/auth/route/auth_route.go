// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "quizogram_backend/internals/features/users/auth/controller"
	"quizogram_backend/internals/middlewares"
)

// AuthPublicRoutes: register/login tanpa token, dengan rate limiter masing-masing.
func AuthPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := public.Group("/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/login-google", middlewares.LoginRateLimiter(), ctrl.LoginGoogle)
}

// AuthPrivateRoutes: butuh bearer token.
func AuthPrivateRoutes(api fiber.Router, db *gorm.DB, authMW fiber.Handler) {
	ctrl := authController.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Post("/logout", authMW, ctrl.Logout)
}
