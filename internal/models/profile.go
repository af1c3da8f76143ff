package models

import "time"

// Profile is the one-to-one presentational record for a user. It is created
// together with the User and never deleted independently of it. The follower
// set lives in the follows table, not here; FollowersCount is filled in by
// the handler when serving a profile.
type Profile struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex;not null"`
	Bio       string    `json:"bio" gorm:"type:text"`
	AvatarURL string    `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateProfileRequest defines the request body for updating the
// authenticated user's profile
type UpdateProfileRequest struct {
	Bio       string `json:"bio,omitempty" validate:"omitempty,max=500"`
	AvatarURL string `json:"avatar_url,omitempty" validate:"omitempty,url"`
}

// ProfileView is a profile enriched with its owner and follower count
type ProfileView struct {
	Username       string `json:"username"`
	Email          string `json:"email,omitempty"`
	Bio            string `json:"bio"`
	AvatarURL      string `json:"avatar_url"`
	FollowersCount int64  `json:"followers_count"`
}
