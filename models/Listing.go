package models

import (
	"encoding/json"

	"gorm.io/gorm"
)

type Listing struct {
	gorm.Model
	UserID        uint          `json:"userID"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	ImageSrc      string        `json:"imageSrc"`
	Category      string        `json:"category" gorm:"index"`
	LocationValue string        `json:"locationValue" gorm:"index"`
	GuestCount    int           `json:"guestCount"`
	RoomCount     int           `json:"roomCount"`
	BathroomCount int           `json:"bathroomCount"`
	Price         int           `json:"price"`
	Reservations  []Reservation `json:"reservations,omitempty" gorm:"foreignKey:ListingID"`
	User          User          `json:"user" gorm:"foreignKey:UserID;references:ID"`
}

// Only include the owning user when it was actually preloaded, and strip its
// listings to avoid a circular reference.
func (l *Listing) MarshalJSON() ([]byte, error) {
	type Alias Listing
	aux := &struct {
		User *User `json:"user,omitempty"`
		*Alias
	}{
		Alias: (*Alias)(l),
	}

	if l.User.ID > 0 {
		userCopy := l.User
		userCopy.Listings = nil
		aux.User = &userCopy
	}

	return json.Marshal(aux)
}
