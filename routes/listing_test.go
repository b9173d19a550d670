package routes

import (
	"net/http"
	"testing"
	"time"

	"holiday-homes-server/models"
	"holiday-homes-server/storage"

	"github.com/kataras/iris/v12"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateListingRequiresAuth(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(app, http.MethodPost, "/api/v1/listing", "", iris.Map{"title": "x"})
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	var count int64
	storage.DB.Model(&models.Listing{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateListing(t *testing.T) {
	app := newTestApp(t)
	owner := createTestUser(t, "host@example.com")

	resp := doJSON(app, http.MethodPost, "/api/v1/listing", signTestToken(owner.ID), iris.Map{
		"title":         "Mountain cabin",
		"description":   "A cabin in the mountains",
		"imageSrc":      "https://example.com/cabin.jpg",
		"category":      "Skiing",
		"roomCount":     3,
		"bathroomCount": 2,
		"guestCount":    6,
		"location":      iris.Map{"value": "CH"},
		"price":         250,
	})
	require.Equal(t, http.StatusOK, resp.Code)

	var listing models.Listing
	decodeBody(t, resp, &listing)
	assert.Equal(t, owner.ID, listing.UserID)
	assert.Equal(t, "CH", listing.LocationValue)
	assert.Equal(t, 250, listing.Price)
}

func TestCreateListingValidation(t *testing.T) {
	app := newTestApp(t)
	owner := createTestUser(t, "host@example.com")

	// missing price and location
	resp := doJSON(app, http.MethodPost, "/api/v1/listing", signTestToken(owner.ID), iris.Map{
		"title": "Incomplete",
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestCreateListingRejectsUnknownCategory(t *testing.T) {
	app := newTestApp(t)
	owner := createTestUser(t, "host@example.com")

	resp := doJSON(app, http.MethodPost, "/api/v1/listing", signTestToken(owner.ID), iris.Map{
		"title":         "Submarine stay",
		"description":   "Twenty thousand leagues under the sea",
		"imageSrc":      "https://example.com/sub.jpg",
		"category":      "Submarine",
		"roomCount":     1,
		"bathroomCount": 1,
		"guestCount":    2,
		"location":      iris.Map{"value": "PT"},
		"price":         500,
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var count int64
	storage.DB.Model(&models.Listing{}).Count(&count)
	assert.Zero(t, count)
}

func TestGetListingsFilters(t *testing.T) {
	app := newTestApp(t)
	owner := createTestUser(t, "host@example.com")

	beach := models.Listing{UserID: owner.ID, Title: "Beach house", Description: "d", ImageSrc: "i",
		Category: "Beach", LocationValue: "PT", GuestCount: 2, RoomCount: 1, BathroomCount: 1, Price: 90}
	ski := models.Listing{UserID: owner.ID, Title: "Ski lodge", Description: "d", ImageSrc: "i",
		Category: "Skiing", LocationValue: "CH", GuestCount: 8, RoomCount: 4, BathroomCount: 2, Price: 400}
	require.NoError(t, storage.DB.Create(&beach).Error)
	require.NoError(t, storage.DB.Create(&ski).Error)

	var listings []models.Listing

	resp := doRequest(app, http.MethodGet, "/api/v1/listing?category=Beach", "")
	require.Equal(t, http.StatusOK, resp.Code)
	decodeBody(t, resp, &listings)
	require.Len(t, listings, 1)
	assert.Equal(t, "Beach house", listings[0].Title)

	resp = doRequest(app, http.MethodGet, "/api/v1/listing?guestCount=4", "")
	require.Equal(t, http.StatusOK, resp.Code)
	decodeBody(t, resp, &listings)
	require.Len(t, listings, 1)
	assert.Equal(t, "Ski lodge", listings[0].Title)

	resp = doRequest(app, http.MethodGet, "/api/v1/listing?locationValue=PT&roomCount=1", "")
	require.Equal(t, http.StatusOK, resp.Code)
	decodeBody(t, resp, &listings)
	require.Len(t, listings, 1)
	assert.Equal(t, "Beach house", listings[0].Title)
}

func TestGetListingsAvailabilityFilter(t *testing.T) {
	app := newTestApp(t)
	owner := createTestUser(t, "host@example.com")
	guest := createTestUser(t, "guest@example.com")
	listing := createTestListing(t, owner.ID, 100)
	free := createTestListing(t, owner.ID, 100)

	reservation := models.Reservation{
		ListingID: listing.ID,
		UserID:    guest.ID,
		StartDate: day(2026, time.January, 10),
		EndDate:   day(2026, time.January, 15),
	}
	require.NoError(t, storage.DB.Create(&reservation).Error)

	fetch := func(target string) []models.Listing {
		resp := doRequest(app, http.MethodGet, target, "")
		require.Equal(t, http.StatusOK, resp.Code)
		var listings []models.Listing
		decodeBody(t, resp, &listings)
		return listings
	}

	ids := func(listings []models.Listing) []uint {
		out := make([]uint, 0, len(listings))
		for _, l := range listings {
			out = append(out, l.ID)
		}
		return out
	}

	// overlap at the start of the reservation
	got := fetch("/api/v1/listing?startDate=2026-01-08&endDate=2026-01-11")
	assert.NotContains(t, ids(got), listing.ID)
	assert.Contains(t, ids(got), free.ID)

	// overlap at the end
	got = fetch("/api/v1/listing?startDate=2026-01-14&endDate=2026-01-20")
	assert.NotContains(t, ids(got), listing.ID)

	// query strictly inside the reservation, no shared endpoint
	got = fetch("/api/v1/listing?startDate=2026-01-11&endDate=2026-01-13")
	assert.NotContains(t, ids(got), listing.ID)

	// disjoint range keeps the listing
	got = fetch("/api/v1/listing?startDate=2026-02-01&endDate=2026-02-05")
	assert.Contains(t, ids(got), listing.ID)

	// malformed dates are a bad request
	resp := doRequest(app, http.MethodGet, "/api/v1/listing?startDate=garbage&endDate=2026-02-05", "")
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestGetListingDetail(t *testing.T) {
	app := newTestApp(t)
	owner := createTestUser(t, "host@example.com")
	listing := createTestListing(t, owner.ID, 100)

	resp := doRequest(app, http.MethodGet, "/api/v1/listing/1", "")
	require.Equal(t, http.StatusOK, resp.Code)

	var got models.Listing
	decodeBody(t, resp, &got)
	assert.Equal(t, listing.Title, got.Title)
	assert.Equal(t, owner.ID, got.User.ID)

	resp = doRequest(app, http.MethodGet, "/api/v1/listing/999", "")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestGetListingAvailability(t *testing.T) {
	app := newTestApp(t)
	owner := createTestUser(t, "host@example.com")
	guest := createTestUser(t, "guest@example.com")
	listing := createTestListing(t, owner.ID, 100)

	reservation := models.Reservation{
		ListingID: listing.ID,
		UserID:    guest.ID,
		StartDate: day(2026, time.May, 1),
		EndDate:   day(2026, time.May, 3),
	}
	require.NoError(t, storage.DB.Create(&reservation).Error)

	resp := doRequest(app, http.MethodGet, "/api/v1/listing/1/availability", "")
	require.Equal(t, http.StatusOK, resp.Code)

	var got struct {
		DisabledDates []string `json:"disabledDates"`
	}
	decodeBody(t, resp, &got)
	assert.Equal(t, []string{"2026-05-01", "2026-05-02", "2026-05-03"}, got.DisabledDates)
}

func TestDeleteListingOwnerOnly(t *testing.T) {
	app := newTestApp(t)
	owner := createTestUser(t, "host@example.com")
	other := createTestUser(t, "other@example.com")
	listing := createTestListing(t, owner.ID, 100)

	resp := doRequest(app, http.MethodDelete, "/api/v1/listing/1", signTestToken(other.ID))
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	var count int64
	storage.DB.Model(&models.Listing{}).Where("id = ?", listing.ID).Count(&count)
	assert.EqualValues(t, 1, count, "listing must survive a non-owner delete")

	resp = doRequest(app, http.MethodDelete, "/api/v1/listing/1", signTestToken(owner.ID))
	assert.Equal(t, http.StatusOK, resp.Code)

	storage.DB.Model(&models.Listing{}).Where("id = ?", listing.ID).Count(&count)
	assert.Zero(t, count)

	resp = doRequest(app, http.MethodDelete, "/api/v1/listing/999", signTestToken(owner.ID))
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestDeleteUserListingScopedCount(t *testing.T) {
	app := newTestApp(t)
	owner := createTestUser(t, "host@example.com")
	other := createTestUser(t, "other@example.com")
	createTestListing(t, owner.ID, 100)

	var got struct {
		Count int64 `json:"count"`
	}

	// someone else's delete matches nothing
	resp := doRequest(app, http.MethodDelete, "/api/v1/listings/1", signTestToken(other.ID))
	require.Equal(t, http.StatusOK, resp.Code)
	decodeBody(t, resp, &got)
	assert.EqualValues(t, 0, got.Count)

	resp = doRequest(app, http.MethodDelete, "/api/v1/listings/1", signTestToken(owner.ID))
	require.Equal(t, http.StatusOK, resp.Code)
	decodeBody(t, resp, &got)
	assert.EqualValues(t, 1, got.Count)
}
