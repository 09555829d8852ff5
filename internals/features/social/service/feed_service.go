// file: internals/features/social/service/feed_service.go
package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"quizogram_backend/internals/features/social/dto"
	smodel "quizogram_backend/internals/features/social/model"
)

/* ==========================================================================================
   FEED
   Feed = quiz dari author yang di-follow viewer + quiz viewer sendiri.
   Like count lewat left join (quiz tanpa like = 0, bukan NULL), dibaca live
   tanpa cache supaya toggle like langsung kelihatan di read berikutnya.
   Urutan: quiz_created_at DESC (quiz tidak punya field recency lain),
   quiz_id sebagai tiebreaker. Pagination offset/limit.
========================================================================================== */

type feedRow struct {
	QuizID        uuid.UUID `gorm:"column:quiz_id"`
	Title         string    `gorm:"column:quiz_title"`
	Description   *string   `gorm:"column:quiz_description"`
	OwnerID       uuid.UUID `gorm:"column:quiz_owner_user_id"`
	OwnerUsername string    `gorm:"column:owner_username"`
	LikeCount     int       `gorm:"column:like_count"`
	LikedRaw      int       `gorm:"column:liked_raw"`
}

func GetFeed(db *gorm.DB, viewerID uuid.UUID, offset, limit int) ([]dto.FeedItem, int64, error) {
	authorIDs, err := feedAuthorIDs(db, viewerID)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := db.Table("quizzes").
		Where("quiz_owner_user_id IN ?", authorIDs).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []feedRow
	if err := db.Raw(`
		SELECT q.quiz_id,
		       q.quiz_title,
		       q.quiz_description,
		       q.quiz_owner_user_id,
		       u.user_name AS owner_username,
		       COALESCE(lc.like_count, 0) AS like_count,
		       COALESCE(ml.cnt, 0)        AS liked_raw
		FROM quizzes q
		JOIN users u ON u.id = q.quiz_owner_user_id
		LEFT JOIN (
			SELECT like_quiz_id, COUNT(*) AS like_count
			FROM likes
			GROUP BY like_quiz_id
		) lc ON lc.like_quiz_id = q.quiz_id
		LEFT JOIN (
			SELECT like_quiz_id, COUNT(*) AS cnt
			FROM likes
			WHERE like_user_id = ?
			GROUP BY like_quiz_id
		) ml ON ml.like_quiz_id = q.quiz_id
		WHERE q.quiz_owner_user_id IN ?
		ORDER BY q.quiz_created_at DESC, q.quiz_id DESC
		LIMIT ? OFFSET ?`,
		viewerID, authorIDs, limit, offset,
	).Scan(&rows).Error; err != nil {
		return nil, 0, err
	}

	items := make([]dto.FeedItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.FeedItem{
			QuizID:        r.QuizID,
			Title:         r.Title,
			Description:   r.Description,
			OwnerID:       r.OwnerID,
			OwnerUsername: r.OwnerUsername,
			LikeCount:     r.LikeCount,
			IsLikedByMe:   r.LikedRaw > 0,
		})
	}
	return items, total, nil
}

// feedAuthorIDs: siapa saja yang quiz-nya tampil di feed viewer.
// Selalu termasuk viewer sendiri.
func feedAuthorIDs(db *gorm.DB, viewerID uuid.UUID) ([]uuid.UUID, error) {
	var follows []smodel.FollowModel
	if err := db.Select("follow_following_user_id").
		Where("follow_follower_user_id = ?", viewerID).
		Find(&follows).Error; err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(follows)+1)
	ids = append(ids, viewerID)
	for _, f := range follows {
		if f.FollowFollowingUserID != viewerID {
			ids = append(ids, f.FollowFollowingUserID)
		}
	}
	return ids, nil
}
