package repositories

import (
	"errors"

	"amora_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SwipeResult is the outcome of recording a swipe.
type SwipeResult struct {
	Swipe   models.Swipe
	Matched bool
	Match   *models.Match
}

// SwipeRepository mediates access to the swipes and matches tables.
type SwipeRepository interface {
	// RecordSwipe upserts the swipe and, for a mutual like, creates the
	// match row. Runs in a single transaction that locks both profile
	// rows first, so two profiles liking each other concurrently still
	// converge on exactly one match and each request observes a
	// consistent isMatch answer.
	RecordSwipe(db *gorm.DB, swiperID, swipedID string, action models.SwipeAction) (*SwipeResult, error)

	FindBySwiperAndTarget(db *gorm.DB, swiperID, swipedID string) (*models.Swipe, error)
}

type swipeRepository struct{}

func NewSwipeRepository() SwipeRepository {
	return &swipeRepository{}
}

func (r *swipeRepository) RecordSwipe(db *gorm.DB, swiperID, swipedID string, action models.SwipeAction) (*SwipeResult, error) {
	result := &SwipeResult{}

	err := db.Transaction(func(tx *gorm.DB) error {
		// Lock both profile rows in id order before the reverse-like
		// lookup: two concurrent swipes on the same pair touch disjoint
		// swipe rows, so without these locks each could miss the
		// other's uncommitted like and neither would create the match.
		// SQLite has no FOR UPDATE; its single writer already
		// serializes transactions.
		if tx.Dialector.Name() == "postgres" {
			var ids []string
			if err := tx.Model(&models.Profile{}).
				Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("id IN ?", []string{swiperID, swipedID}).
				Order("id").
				Pluck("id", &ids).Error; err != nil {
				return err
			}
		}

		swipe := models.Swipe{
			SwiperID: swiperID,
			SwipedID: swipedID,
			Action:   action,
		}

		// Repeated swipes on the same target overwrite the action.
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "swiper_id"}, {Name: "swiped_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"action", "updated_at"}),
		}).Create(&swipe).Error; err != nil {
			return err
		}

		// Reload: on conflict-update the generated ID above is not the
		// persisted row's ID.
		if err := tx.Where("swiper_id = ? AND swiped_id = ?", swiperID, swipedID).
			First(&result.Swipe).Error; err != nil {
			return err
		}

		if action != models.SwipeActionLike {
			return nil
		}

		// Mutual like check: did the other profile already like us?
		var reverse models.Swipe
		err := tx.Where("swiper_id = ? AND swiped_id = ? AND action = ?",
			swipedID, swiperID, models.SwipeActionLike).
			First(&reverse).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		p1, p2 := models.OrderedPair(swiperID, swipedID)
		match := models.Match{Profile1ID: p1, Profile2ID: p2}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&match).Error; err != nil {
			return err
		}

		// Fetch the canonical row; DoNothing leaves the struct stale
		// when the match already existed.
		var persisted models.Match
		if err := tx.Where("profile1_id = ? AND profile2_id = ?", p1, p2).
			First(&persisted).Error; err != nil {
			return err
		}

		result.Matched = true
		result.Match = &persisted
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *swipeRepository) FindBySwiperAndTarget(db *gorm.DB, swiperID, swipedID string) (*models.Swipe, error) {
	var swipe models.Swipe
	err := db.Where("swiper_id = ? AND swiped_id = ?", swiperID, swipedID).First(&swipe).Error
	if err != nil {
		return nil, err
	}
	return &swipe, nil
}
