package models

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name        string         `json:"name"`
	Email       string         `json:"email" gorm:"uniqueIndex"`
	Password    string         `json:"-"`
	AvatarURL   string         `json:"avatarURL"`
	FavoriteIDs datatypes.JSON `json:"favoriteIDs"`
	Listings    []Listing      `json:"listings,omitempty" gorm:"foreignKey:UserID;references:ID"`
}

// Custom JSON marshaling so the favorite-id JSON column renders as a plain
// array and an empty collection is [] rather than null.
func (u *User) MarshalJSON() ([]byte, error) {
	type Alias User
	aux := &struct {
		FavoriteIDs []uint    `json:"favoriteIDs"`
		Listings    []Listing `json:"listings,omitempty"`
		*Alias
	}{
		FavoriteIDs: []uint{},
		Alias:       (*Alias)(u),
	}

	if u.FavoriteIDs != nil {
		var favoriteIDs []uint
		if err := json.Unmarshal(u.FavoriteIDs, &favoriteIDs); err == nil && favoriteIDs != nil {
			aux.FavoriteIDs = favoriteIDs
		}
	}

	// Listings are excluded unless explicitly preloaded
	if len(u.Listings) > 0 {
		aux.Listings = u.Listings
	}

	return json.Marshal(aux)
}
