package routes

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"testing"

	"holiday-homes-server/models"
	"holiday-homes-server/storage"
	"holiday-homes-server/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

// newTestApp builds the API surface against a fresh in-memory database and a
// miniredis-backed token store.
func newTestApp(t *testing.T) *iris.Application {
	t.Helper()

	os.Setenv("ACCESS_TOKEN_SECRET", "testsecret")
	os.Setenv("REFRESH_TOKEN_SECRET", "testrefreshsecret")

	storage.InitializeTestDB()

	mr := miniredis.RunT(t)
	utils.TokenRedis = redis.NewClient(&redis.Options{Addr: mr.Addr()})

	app := iris.New()
	app.Validator = validator.New()

	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} {
		return new(utils.AccessToken)
	})

	auth := app.Party("/api/auth")
	{
		auth.Post("/register", Register)
		auth.Post("/login", Login)
	}

	v1 := app.Party("/api/v1")
	{
		v1.Get("/countries", GetCountries)
		v1.Get("/categories", GetCategories)

		v1.Get("/listing", GetListings)
		v1.Post("/listing", accessTokenVerifierMiddleware, CreateListing)
		v1.Get("/listing/{id:uint}", GetListing)
		v1.Get("/listing/{id:uint}/availability", GetListingAvailability)
		v1.Delete("/listing/{id:uint}", accessTokenVerifierMiddleware, DeleteListing)
		v1.Delete("/listings/{listingId:uint}", accessTokenVerifierMiddleware, DeleteUserListing)

		v1.Post("/reservations", accessTokenVerifierMiddleware, CreateReservation)
		v1.Get("/reservations", accessTokenVerifierMiddleware, GetReservations)
		v1.Delete("/reservations", accessTokenVerifierMiddleware, DeleteReservationByQuery)
		v1.Delete("/reservations/{id:uint}", accessTokenVerifierMiddleware, DeleteReservation)

		v1.Post("/favorites", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, ToggleFavorite)
		v1.Get("/favorites", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, GetFavorites)
		v1.Get("/users/me", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, CurrentUser)
	}

	if err := app.Build(); err != nil {
		t.Fatalf("building test app: %v", err)
	}
	return app
}

func signTestToken(id uint) string {
	signer := jwt.NewSigner(jwt.HS256, os.Getenv("ACCESS_TOKEN_SECRET"), 0)
	token, _ := signer.Sign(utils.AccessToken{ID: id})
	return string(token)
}

func createTestUser(t *testing.T, email string) models.User {
	t.Helper()
	user := models.User{
		Name:        "Test User",
		Email:       email,
		Password:    "not-a-real-hash",
		FavoriteIDs: []byte("[]"),
	}
	if err := storage.DB.Create(&user).Error; err != nil {
		t.Fatalf("creating test user: %v", err)
	}
	return user
}

func createTestListing(t *testing.T, ownerID uint, price int) models.Listing {
	t.Helper()
	listing := models.Listing{
		UserID:        ownerID,
		Title:         "Seaside cottage",
		Description:   "A cottage by the sea",
		ImageSrc:      "https://example.com/cottage.jpg",
		Category:      "Beach",
		LocationValue: "PT",
		GuestCount:    4,
		RoomCount:     2,
		BathroomCount: 1,
		Price:         price,
	}
	if err := storage.DB.Create(&listing).Error; err != nil {
		t.Fatalf("creating test listing: %v", err)
	}
	return listing
}

func doJSON(app *iris.Application, method, target, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	return resp
}

func doRequest(app *iris.Application, method, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	return resp
}

func decodeBody(t *testing.T, resp *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decoding response body: %v", err)
	}
}
