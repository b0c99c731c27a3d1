package models

// Swipe is a directed edge: swiper decided on swiped.
//
// Unique index on (swiper_id, swiped_id) gives the overwrite guarantee:
// repeated swipes on the same target update the action in place instead
// of accumulating rows.
type Swipe struct {
	BaseModel
	SwiperID string      `gorm:"type:uuid;not null;uniqueIndex:idx_swipes_pair,priority:1" json:"swiper_id"`
	SwipedID string      `gorm:"type:uuid;not null;uniqueIndex:idx_swipes_pair,priority:2" json:"swiped_id"`
	Action   SwipeAction `gorm:"size:8;not null" json:"action"`
}
