package routes

import (
	"io"
	"path/filepath"
	"strings"

	"holiday-homes-server/storage"
	"holiday-homes-server/utils"

	"github.com/google/uuid"
	"github.com/kataras/iris/v12"
)

// UploadImage accepts a multipart image and stores it in blob storage,
// returning the public URL.
func UploadImage(ctx iris.Context) {
	file, header, err := ctx.FormFile("file")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "No file uploaded", ctx)
		return
	}
	defer file.Close()

	data, readErr := io.ReadAll(file)
	if readErr != nil {
		utils.Log.Error().Err(readErr).Msg("upload: reading multipart file failed")
		utils.CreateInternalServerError(ctx)
		return
	}

	// Object name mirrors the original naming: uuid prefix plus the original
	// file name, extension stripped for the blob public id.
	name := strings.TrimSuffix(header.Filename, filepath.Ext(header.Filename))
	publicID := uuid.NewString() + "-" + name

	url := storage.UploadImage(data, header.Header.Get("Content-Type"), publicID)
	if url == "" {
		utils.CreateError(iris.StatusInternalServerError, "Internal Server Error", "Upload failed", ctx)
		return
	}

	ctx.JSON(iris.Map{"url": url})
}
