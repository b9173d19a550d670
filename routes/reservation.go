package routes

import (
	"time"

	"holiday-homes-server/models"
	"holiday-homes-server/storage"
	"holiday-homes-server/utils"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

func CreateReservation(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var input CreateReservationInput
	err := ctx.ReadJSON(&input)
	if err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if input.EndDate.Before(input.StartDate) {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "startDate must not be after endDate", ctx)
		return
	}

	var listing models.Listing
	listingExists := storage.DB.Find(&listing, input.ListingID)
	if listingExists.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if listingExists.RowsAffected == 0 {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Listing not found", ctx)
		return
	}

	// Reject stays that intersect an existing reservation. The search filter
	// applies the same predicate, this closes it at write time as well.
	var existing []models.Reservation
	if err := storage.DB.Where("listing_id = ?", listing.ID).Find(&existing).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	for _, other := range existing {
		if reservationOverlaps(other.StartDate, other.EndDate, input.StartDate, input.EndDate) {
			utils.CreateError(iris.StatusConflict, "Conflict", "Listing is already reserved for those dates", ctx)
			return
		}
	}

	reservation := models.Reservation{
		ListingID:     listing.ID,
		UserID:        claims.ID,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		GuestCount:    input.GuestCount,
		RoomCount:     input.RoomCount,
		BathroomCount: input.BathroomCount,
		TotalPrice:    totalPrice(input.StartDate, input.EndDate, listing.Price),
	}

	if err := storage.DB.Create(&reservation).Error; err != nil {
		utils.Log.Error().Err(err).Msg("create reservation failed")
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{
		"listing":     &listing,
		"reservation": &reservation,
	})
}

// GetReservations lists reservations filtered by listing, by guest, or by
// host (authorId selects reservations on all of a host's listings).
func GetReservations(ctx iris.Context) {
	q := storage.DB.Model(&models.Reservation{})

	if listingID := ctx.URLParam("listingId"); listingID != "" {
		q = q.Where("listing_id = ?", listingID)
	}
	if userID := ctx.URLParam("userId"); userID != "" {
		q = q.Where("user_id = ?", userID)
	}
	if authorID := ctx.URLParam("authorId"); authorID != "" {
		q = q.Joins("JOIN listings ON listings.id = reservations.listing_id").
			Where("listings.user_id = ?", authorID)
	}

	var reservations []models.Reservation
	res := q.Preload("Listing").Preload("User").Order("reservations.created_at DESC").Find(&reservations)
	if res.Error != nil {
		utils.Log.Error().Err(res.Error).Msg("list reservations failed")
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(reservations)
}

// DeleteReservation removes a reservation. Allowed for the guest who booked
// it and for the host who owns the listing, nobody else.
func DeleteReservation(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var reservation models.Reservation
	reservationExists := storage.DB.Preload("Listing").Find(&reservation, id)
	if reservationExists.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if reservationExists.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}

	claims := jwt.Get(ctx).(*utils.AccessToken)
	isGuest := reservation.UserID == claims.ID
	isHost := reservation.Listing != nil && reservation.Listing.UserID == claims.ID
	if !isGuest && !isHost {
		utils.CreateUnauthorized(ctx)
		return
	}

	if err := storage.DB.Delete(&models.Reservation{}, id).Error; err != nil {
		utils.Log.Error().Err(err).Str("id", id).Msg("delete reservation failed")
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"message": "Reservation deleted successfully"})
}

// DeleteReservationByQuery deletes by ?reservationId= scoped to guest or
// host and reports the number of rows removed.
func DeleteReservationByQuery(ctx iris.Context) {
	reservationID := ctx.URLParam("reservationId")
	if reservationID == "" {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Missing reservationId", ctx)
		return
	}

	claims := jwt.Get(ctx).(*utils.AccessToken)

	result := storage.DB.
		Where("id = ?", reservationID).
		Where("user_id = ? OR listing_id IN (SELECT id FROM listings WHERE user_id = ? AND deleted_at IS NULL)", claims.ID, claims.ID).
		Delete(&models.Reservation{})
	if result.Error != nil {
		utils.Log.Error().Err(result.Error).Str("id", reservationID).Msg("delete reservation by query failed")
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"count": result.RowsAffected})
}

type CreateReservationInput struct {
	ListingID     uint      `json:"listingId" validate:"required"`
	StartDate     time.Time `json:"startDate" validate:"required"`
	EndDate       time.Time `json:"endDate" validate:"required"`
	GuestCount    int       `json:"guestCount" validate:"required,gte=1,lte=100"`
	RoomCount     int       `json:"roomCount" validate:"required,gte=1,lte=50"`
	BathroomCount int       `json:"bathroomCount" validate:"required,gte=1,lte=50"`
}
