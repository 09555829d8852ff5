// file: internals/features/quizzes/quiz/route/quiz_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	quizController "quizogram_backend/internals/features/quizzes/quiz/controller"
)

// QuizPrivateRoutes harus di-mount sebelum QuizPublicRoutes supaya
// /quizzes/mine tidak tertelan pola /quizzes/:id. Auth dipasang per route
// karena prefix /quizzes dipakai bareng endpoint publik.
func QuizPrivateRoutes(api fiber.Router, db *gorm.DB, auth fiber.Handler) {
	ctrl := quizController.NewQuizController(db)

	quizzes := api.Group("/quizzes")
	quizzes.Post("/", auth, ctrl.Create)
	quizzes.Get("/mine", auth, ctrl.Mine)
	quizzes.Patch("/:id", auth, ctrl.Patch)
	quizzes.Delete("/:id", auth, ctrl.Delete)
}

func QuizPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := quizController.NewQuizController(db)

	quizzes := api.Group("/quizzes")
	quizzes.Get("/", ctrl.List)
	quizzes.Get("/:id", ctrl.GetByID)
}
