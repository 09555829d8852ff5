// file: internals/features/users/profile/route/profile_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	profileController "quizogram_backend/internals/features/users/profile/controller"
)

// ProfilePublicRoutes: daftar avatar bawaan, tanpa token.
func ProfilePublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := profileController.NewProfileController(db)

	profile := api.Group("/profile")
	profile.Get("/avatars", ctrl.ListAvatars)
}

// ProfilePrivateRoutes: profil sendiri + profil user lain (perlu viewer untuk is_following).
func ProfilePrivateRoutes(api fiber.Router, db *gorm.DB, auth fiber.Handler) {
	ctrl := profileController.NewProfileController(db)

	profile := api.Group("/profile")
	profile.Get("/me", auth, ctrl.GetMe)
	profile.Patch("/me", auth, ctrl.PatchMe)
	profile.Get("/user/:username", auth, ctrl.PublicProfile)
}
