package models

import (
	"time"

	"gorm.io/gorm"
)

// Reservation is a date-bounded booking of a listing by a guest. Guest, room
// and bathroom counts are snapshotted from the booking form, TotalPrice is
// computed server-side at creation time.
type Reservation struct {
	gorm.Model
	ListingID     uint      `json:"listingID" gorm:"index"`
	UserID        uint      `json:"userID" gorm:"index"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	GuestCount    int       `json:"guestCount"`
	RoomCount     int       `json:"roomCount"`
	BathroomCount int       `json:"bathroomCount"`
	TotalPrice    int       `json:"totalPrice"`

	Listing *Listing `json:"listing,omitempty" gorm:"foreignKey:ListingID"`
	User    *User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
