package routes

import (
	"holiday-homes-server/models"

	"github.com/kataras/iris/v12"
)

// Static reference data for the browse UI.

func GetCountries(ctx iris.Context) {
	ctx.JSON(models.Countries)
}

func GetCategories(ctx iris.Context) {
	ctx.JSON(models.Categories)
}

func HealthCheck(ctx iris.Context) {
	ctx.JSON(iris.Map{"status": "ok"})
}
