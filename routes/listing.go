package routes

import (
	"holiday-homes-server/models"
	"holiday-homes-server/storage"
	"holiday-homes-server/utils"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

func CreateListing(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var input CreateListingInput
	err := ctx.ReadJSON(&input)
	if err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if !models.ValidCategory(input.Category) {
		utils.CreateError(iris.StatusBadRequest, "Invalid Category", "Unknown listing category: "+input.Category, ctx)
		return
	}

	listing := models.Listing{
		UserID:        claims.ID,
		Title:         input.Title,
		Description:   input.Description,
		ImageSrc:      input.ImageSrc,
		Category:      input.Category,
		LocationValue: input.Location.Value,
		GuestCount:    input.GuestCount,
		RoomCount:     input.RoomCount,
		BathroomCount: input.BathroomCount,
		Price:         input.Price,
	}

	if err := storage.DB.Create(&listing).Error; err != nil {
		utils.Log.Error().Err(err).Msg("create listing failed")
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(&listing)
}

// GetListings searches listings with the browse filters: owner, category,
// location, minimum capacity counts, and an optional date range that
// excludes any listing with a conflicting reservation.
func GetListings(ctx iris.Context) {
	q := storage.DB.Model(&models.Listing{})

	if userID := ctx.URLParam("userId"); userID != "" {
		q = q.Where("user_id = ?", userID)
	}
	if category := ctx.URLParam("category"); category != "" {
		q = q.Where("category = ?", category)
	}
	if locationValue := ctx.URLParam("locationValue"); locationValue != "" {
		q = q.Where("location_value = ?", locationValue)
	}
	if guestCount, err := ctx.URLParamInt("guestCount"); err == nil && guestCount > 0 {
		q = q.Where("guest_count >= ?", guestCount)
	}
	if roomCount, err := ctx.URLParamInt("roomCount"); err == nil && roomCount > 0 {
		q = q.Where("room_count >= ?", roomCount)
	}
	if bathroomCount, err := ctx.URLParamInt("bathroomCount"); err == nil && bathroomCount > 0 {
		q = q.Where("bathroom_count >= ?", bathroomCount)
	}

	startDateParam := ctx.URLParam("startDate")
	endDateParam := ctx.URLParam("endDate")
	if startDateParam != "" && endDateParam != "" {
		startDate, startErr := parseDateParam(startDateParam)
		endDate, endErr := parseDateParam(endDateParam)
		if startErr != nil || endErr != nil {
			utils.CreateError(iris.StatusBadRequest, "Bad Request", "Invalid date range", ctx)
			return
		}

		// Exclude listings with any reservation intersecting the stay.
		q = q.Where(
			"NOT EXISTS (SELECT 1 FROM reservations WHERE reservations.listing_id = listings.id"+
				" AND reservations.deleted_at IS NULL"+
				" AND reservations.start_date <= ? AND reservations.end_date >= ?)",
			endDate, startDate,
		)
	}

	var listings []models.Listing
	if err := q.Order("created_at DESC").Find(&listings).Error; err != nil {
		utils.Log.Error().Err(err).Msg("listing search failed")
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(listings)
}

func GetListing(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var listing models.Listing
	listingExists := storage.DB.Preload("User").Find(&listing, id)
	if listingExists.Error != nil {
		utils.Log.Error().Err(listingExists.Error).Str("id", id).Msg("get listing failed")
		utils.CreateInternalServerError(ctx)
		return
	}
	if listingExists.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}

	ctx.JSON(&listing)
}

// GetListingAvailability returns the calendar days disabled in the booking
// date picker for a listing.
func GetListingAvailability(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var listing models.Listing
	listingExists := storage.DB.Preload("Reservations").Find(&listing, id)
	if listingExists.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if listingExists.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}

	days := disabledDates(listing.Reservations)
	if days == nil {
		days = []string{}
	}

	ctx.JSON(iris.Map{"disabledDates": days})
}

func DeleteListing(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var listing models.Listing
	listingExists := storage.DB.Find(&listing, id)
	if listingExists.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if listingExists.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}

	claims := jwt.Get(ctx).(*utils.AccessToken)
	if listing.UserID != claims.ID {
		utils.CreateUnauthorized(ctx)
		return
	}

	if err := storage.DB.Delete(&models.Listing{}, id).Error; err != nil {
		utils.Log.Error().Err(err).Str("id", id).Msg("delete listing failed")
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"message": "Listing deleted successfully"})
}

// DeleteUserListing deletes a listing only when it belongs to the caller and
// reports the number of rows removed.
func DeleteUserListing(ctx iris.Context) {
	listingID := ctx.Params().Get("listingId")
	claims := jwt.Get(ctx).(*utils.AccessToken)

	result := storage.DB.Where("id = ? AND user_id = ?", listingID, claims.ID).Delete(&models.Listing{})
	if result.Error != nil {
		utils.Log.Error().Err(result.Error).Str("id", listingID).Msg("delete user listing failed")
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"count": result.RowsAffected})
}

type CreateListingInput struct {
	Title         string               `json:"title" validate:"required,max=256"`
	Description   string               `json:"description" validate:"required"`
	ImageSrc      string               `json:"imageSrc" validate:"required"`
	Category      string               `json:"category" validate:"required,max=64"`
	RoomCount     int                  `json:"roomCount" validate:"required,gte=1,lte=50"`
	BathroomCount int                  `json:"bathroomCount" validate:"required,gte=1,lte=50"`
	GuestCount    int                  `json:"guestCount" validate:"required,gte=1,lte=100"`
	Location      ListingLocationInput `json:"location" validate:"required"`
	Price         int                  `json:"price" validate:"required,gte=1"`
}

type ListingLocationInput struct {
	Value string `json:"value" validate:"required,max=8"`
}
