package main

import (
	"os"

	"holiday-homes-server/routes"
	"holiday-homes-server/storage"
	"holiday-homes-server/utils"

	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

func main() {
	storage.InitializeDB()
	storage.InitializeRedis()
	storage.InitializeBlob()
	utils.TokenRedis = storage.Redis

	app := iris.New()
	app.Validator = validator.New()

	app.AllowMethods(iris.MethodOptions)
	app.UseRouter(func(ctx iris.Context) {
		ctx.Header("Access-Control-Allow-Origin", ctx.GetHeader("Origin"))
		ctx.Header("Vary", "Origin")
		ctx.Header("Access-Control-Allow-Credentials", "true")
		ctx.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Requested-With")
		ctx.Header("Access-Control-Allow-Methods", "GET,POST,PATCH,PUT,DELETE,OPTIONS")
		if ctx.Method() == iris.MethodOptions {
			ctx.StatusCode(iris.StatusNoContent)
			return
		}
		ctx.Next()
	})

	app.Use(iris.Compression)

	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	accessTokenVerifier.WithDefaultBlocklist()
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} {
		return new(utils.AccessToken)
	})

	refreshTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("REFRESH_TOKEN_SECRET")))
	refreshTokenVerifier.WithDefaultBlocklist()
	refreshTokenVerifierMiddleware := refreshTokenVerifier.Verify(func() interface{} {
		return new(jwt.Claims)
	})

	app.Get("/health", routes.HealthCheck)

	auth := app.Party("/api/auth")
	{
		auth.Post("/register", routes.Register)
		auth.Post("/login", routes.Login)
		auth.Post("/refresh", refreshTokenVerifierMiddleware, utils.RefreshToken)
	}

	v1 := app.Party("/api/v1")
	{
		v1.Get("/countries", routes.GetCountries)
		v1.Get("/categories", routes.GetCategories)
		v1.Post("/upload", routes.UploadImage)

		v1.Get("/listing", routes.GetListings)
		v1.Post("/listing", accessTokenVerifierMiddleware, routes.CreateListing)
		v1.Get("/listing/{id:uint}", routes.GetListing)
		v1.Get("/listing/{id:uint}/availability", routes.GetListingAvailability)
		v1.Delete("/listing/{id:uint}", accessTokenVerifierMiddleware, routes.DeleteListing)
		v1.Delete("/listings/{listingId:uint}", accessTokenVerifierMiddleware, routes.DeleteUserListing)

		v1.Post("/reservations", accessTokenVerifierMiddleware, routes.CreateReservation)
		v1.Get("/reservations", accessTokenVerifierMiddleware, routes.GetReservations)
		v1.Delete("/reservations", accessTokenVerifierMiddleware, routes.DeleteReservationByQuery)
		v1.Delete("/reservations/{id:uint}", accessTokenVerifierMiddleware, routes.DeleteReservation)

		v1.Post("/favorites", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.ToggleFavorite)
		v1.Get("/favorites", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.GetFavorites)
		v1.Get("/users/me", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.CurrentUser)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	utils.Log.Info().Str("port", port).Msg("server starting")
	if err := app.Listen(":" + port); err != nil {
		utils.Log.Fatal().Err(err).Msg("server stopped")
	}
}
