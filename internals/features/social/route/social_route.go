// file: internals/features/social/route/social_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	socialController "quizogram_backend/internals/features/social/controller"
)

func SocialPrivateRoutes(api fiber.Router, db *gorm.DB, auth fiber.Handler) {
	ctrl := socialController.NewSocialController(db)

	social := api.Group("/social")
	social.Get("/feed", auth, ctrl.Feed)

	social.Post("/follow/:user_id", auth, ctrl.Follow)
	social.Delete("/follow/:user_id", auth, ctrl.Unfollow)

	social.Post("/like/:quiz_id", auth, ctrl.Like)
	social.Delete("/like/:quiz_id", auth, ctrl.Unlike)
}
