package domain

import (
	"time"
)

// Profile is keyed by the identity service user id, not a generated one.
type Profile struct {
	ID        string    `json:"id"`
	Username  *string   `json:"username"`
	FirstName *string   `json:"first_name"`
	LastName  *string   `json:"last_name"`
	BikeModel *string   `json:"bike_model"`
	AvatarURL *string   `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ProfilePatch struct {
	Username  *string `json:"username"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	BikeModel *string `json:"bike_model"`
	AvatarURL *string `json:"avatar_url"`
}

func (p *ProfilePatch) Empty() bool {
	return p.Username == nil && p.FirstName == nil && p.LastName == nil &&
		p.BikeModel == nil && p.AvatarURL == nil
}
