package models

import "time"

// Follow is one edge of the social graph: FollowerID follows FollowingID.
// The composite unique index enforces set membership, so a racing duplicate
// follow fails at the database rather than corrupting the graph.
type Follow struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	FollowerID  uint      `json:"follower_id" gorm:"index;uniqueIndex:idx_follower_following;not null"`
	FollowingID uint      `json:"following_id" gorm:"index;uniqueIndex:idx_follower_following;not null"`
	CreatedAt   time.Time `json:"created_at"`
}
