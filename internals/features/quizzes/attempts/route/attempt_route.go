// file: internals/features/quizzes/attempts/route/attempt_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attemptController "quizogram_backend/internals/features/quizzes/attempts/controller"
)

// AttemptPrivateRoutes: /attempts/my didaftarkan sebelum /attempts/:quiz_id
// supaya tidak tertelan pola parameter.
func AttemptPrivateRoutes(api fiber.Router, db *gorm.DB, auth fiber.Handler) {
	ctrl := attemptController.NewAttemptController(db)

	attempts := api.Group("/attempts")
	attempts.Get("/my", auth, ctrl.My)
	attempts.Post("/:quiz_id", auth, ctrl.Create)
}

// AttemptPublicRoutes: leaderboard terbuka tanpa token.
func AttemptPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := attemptController.NewAttemptController(db)

	attempts := api.Group("/attempts")
	attempts.Get("/leaderboard/:quiz_id", ctrl.Leaderboard)
}
