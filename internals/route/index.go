// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attemptRoute "quizogram_backend/internals/features/quizzes/attempts/route"
	quizRoute "quizogram_backend/internals/features/quizzes/quiz/route"
	socialRoute "quizogram_backend/internals/features/social/route"
	authRoute "quizogram_backend/internals/features/users/auth/route"
	profileRoute "quizogram_backend/internals/features/users/profile/route"
	userRoute "quizogram_backend/internals/features/users/user/route"
	authMiddleware "quizogram_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// Auth dipasang per route, bukan per group, karena prefix yang sama
	// (/quizzes, /profiles) dipakai campur endpoint publik dan privat.
	api := app.Group("/api")
	auth := authMiddleware.AuthMiddleware(db)

	// ===================== AUTH =====================
	log.Println("[INFO] Mounting Auth routes...")
	authRoute.AuthPublicRoutes(api, db)
	authRoute.AuthPrivateRoutes(api, db, auth)

	// ===================== QUIZZES =====================
	// Private dulu: /quizzes/mine harus menang atas /quizzes/:id.
	log.Println("[INFO] Mounting Quiz routes...")
	quizRoute.QuizPrivateRoutes(api, db, auth)
	quizRoute.QuizPublicRoutes(api, db)
	attemptRoute.AttemptPrivateRoutes(api, db, auth)
	attemptRoute.AttemptPublicRoutes(api, db)

	// ===================== SOCIAL =====================
	log.Println("[INFO] Mounting Social routes...")
	socialRoute.SocialPrivateRoutes(api, db, auth)

	// ===================== USERS & PROFILES =====================
	log.Println("[INFO] Mounting User & Profile routes...")
	userRoute.UserPrivateRoutes(api, db, auth)
	profileRoute.ProfilePublicRoutes(api, db)
	profileRoute.ProfilePrivateRoutes(api, db, auth)
}
