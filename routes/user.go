package routes

import (
	"encoding/json"
	"strings"

	"holiday-homes-server/models"
	"holiday-homes-server/storage"
	"holiday-homes-server/utils"

	"github.com/kataras/iris/v12"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slices"
)

func Register(ctx iris.Context) {
	var userInput RegisterUserInput
	err := ctx.ReadJSON(&userInput)
	if err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var newUser models.User
	userExists, userExistsErr := getAndHandleUserExists(&newUser, userInput.Email)
	if userExistsErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	if userExists {
		utils.CreateEmailAlreadyRegistered(ctx)
		return
	}

	hashedPassword, hashErr := hashAndSaltPassword(userInput.Password)
	if hashErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	newUser = models.User{
		Name:        userInput.Name,
		Email:       strings.ToLower(userInput.Email),
		Password:    hashedPassword,
		FavoriteIDs: []byte("[]"),
	}

	if err := storage.DB.Create(&newUser).Error; err != nil {
		utils.Log.Error().Err(err).Msg("create user failed")
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(&newUser)
}

func Login(ctx iris.Context) {
	var userInput LoginUserInput
	err := ctx.ReadJSON(&userInput)
	if err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var existingUser models.User
	errorMsg := "Invalid email or password."
	userExists, userExistsErr := getAndHandleUserExists(&existingUser, userInput.Email)
	if userExistsErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	if !userExists {
		utils.CreateError(iris.StatusUnauthorized, "Credentials Error", errorMsg, ctx)
		return
	}

	passwordErr := bcrypt.CompareHashAndPassword([]byte(existingUser.Password), []byte(userInput.Password))
	if passwordErr != nil {
		utils.CreateError(iris.StatusUnauthorized, "Credentials Error", errorMsg, ctx)
		return
	}

	returnUser(existingUser, ctx)
}

// CurrentUser resolves the caller from the access token.
func CurrentUser(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	var user models.User
	userExists := storage.DB.Find(&user, userID)
	if userExists.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if userExists.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}

	ctx.JSON(&user)
}

// ToggleFavorite flips a listing's membership in the caller's favorite-id
// collection: present means remove, absent means append. Returns the
// updated user.
func ToggleFavorite(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	var input ToggleFavoriteInput
	err := ctx.ReadJSON(&input)
	if err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var user models.User
	userExists := storage.DB.Find(&user, userID)
	if userExists.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if userExists.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}

	var listing models.Listing
	listingExists := storage.DB.Find(&listing, input.ListingID)
	if listingExists.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if listingExists.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}

	var favoriteIDs []uint
	if user.FavoriteIDs != nil {
		if unmarshalErr := json.Unmarshal(user.FavoriteIDs, &favoriteIDs); unmarshalErr != nil {
			utils.CreateInternalServerError(ctx)
			return
		}
	}

	if slices.Contains(favoriteIDs, input.ListingID) {
		next := make([]uint, 0, len(favoriteIDs))
		for _, id := range favoriteIDs {
			if id != input.ListingID {
				next = append(next, id)
			}
		}
		favoriteIDs = next
	} else {
		favoriteIDs = append(favoriteIDs, input.ListingID)
	}

	marshalledIDs, marshalErr := json.Marshal(favoriteIDs)
	if marshalErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	user.FavoriteIDs = marshalledIDs
	if err := storage.DB.Model(&user).Update("favorite_ids", user.FavoriteIDs).Error; err != nil {
		utils.Log.Error().Err(err).Uint("userID", user.ID).Msg("update favorites failed")
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(&user)
}

// GetFavorites resolves the caller's favorite ids to listings.
func GetFavorites(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	var user models.User
	userExists := storage.DB.Find(&user, userID)
	if userExists.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if userExists.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}

	var favoriteIDs []uint
	if user.FavoriteIDs != nil {
		if unmarshalErr := json.Unmarshal(user.FavoriteIDs, &favoriteIDs); unmarshalErr != nil {
			utils.CreateInternalServerError(ctx)
			return
		}
	}

	listings := []models.Listing{}
	if len(favoriteIDs) > 0 {
		if err := storage.DB.Where("id IN ?", favoriteIDs).Find(&listings).Error; err != nil {
			utils.CreateInternalServerError(ctx)
			return
		}
	}

	ctx.JSON(listings)
}

func getAndHandleUserExists(user *models.User, email string) (exists bool, err error) {
	userExistsQuery := storage.DB.Where("email = ?", strings.ToLower(email)).Limit(1).Find(user)

	if userExistsQuery.Error != nil {
		return false, userExistsQuery.Error
	}

	return userExistsQuery.RowsAffected > 0, nil
}

func hashAndSaltPassword(password string) (hashedPassword string, err error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(bytes), nil
}

func returnUser(user models.User, ctx iris.Context) {
	tokenPair, tokenErr := utils.CreateTokenPair(user.ID)
	if tokenErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{
		"ID":           user.ID,
		"name":         user.Name,
		"email":        user.Email,
		"favoriteIDs":  user.FavoriteIDs,
		"accessToken":  string(tokenPair.AccessToken),
		"refreshToken": string(tokenPair.RefreshToken),
	})
}

type RegisterUserInput struct {
	Name     string `json:"name" validate:"required,max=256"`
	Email    string `json:"email" validate:"required,max=256,email"`
	Password string `json:"password" validate:"required,min=8,max=256"`
}

type LoginUserInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ToggleFavoriteInput struct {
	ListingID uint `json:"listingId" validate:"required"`
}
