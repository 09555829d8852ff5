// file: internals/features/users/user/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "quizogram_backend/internals/features/users/user/controller"
)

func UserPrivateRoutes(api fiber.Router, db *gorm.DB, auth fiber.Handler) {
	ctrl := userController.NewUserController(db)

	users := api.Group("/users")
	users.Get("/me", auth, ctrl.Me)
	users.Get("/search", auth, ctrl.Search)
}
