package storage

import (
	"crypto/sha1"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"holiday-homes-server/utils"
)

// Blob storage is Cloudinary, configured via CLOUDINARY_CLOUD_NAME,
// CLOUDINARY_API_KEY, CLOUDINARY_API_SECRET and optional CLOUDINARY_FOLDER.
// When unconfigured, uploads resolve to a placeholder image so the rest of
// the app keeps working in local development.

const placeholderImageURL = "https://images.pexels.com/photos/1396122/pexels-photo-1396122.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1"

func InitializeBlob() {
	if os.Getenv("CLOUDINARY_CLOUD_NAME") == "" {
		utils.Log.Warn().Msg("blob storage not configured, uploads will return a placeholder URL")
	}
}

// UploadImage stores the raw image bytes under publicID and returns the
// public URL. Returns the placeholder URL when credentials are absent and an
// empty string on upload failure.
func UploadImage(data []byte, contentType string, publicID string) string {
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")
	folder := os.Getenv("CLOUDINARY_FOLDER")

	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return placeholderImageURL
	}

	if contentType == "" {
		contentType = "image/jpeg"
	}

	endpoint := "https://api.cloudinary.com/v1_1/" + cloudName + "/image/upload"

	finalPublicID := publicID
	if folder != "" {
		finalPublicID = folder + "/" + publicID
	}

	form := url.Values{}
	form.Add("file", "data:"+contentType+";base64,"+base64.StdEncoding.EncodeToString(data))
	form.Add("api_key", apiKey)
	form.Add("public_id", finalPublicID)

	timestamp := fmt.Sprintf("%d", time.Now().Unix())
	form.Add("timestamp", timestamp)

	// Cloudinary signed uploads require a SHA1 over the sorted params + secret
	signatureString := fmt.Sprintf("public_id=%s&timestamp=%s%s", finalPublicID, timestamp, apiSecret)
	form.Add("signature", fmt.Sprintf("%x", sha1.Sum([]byte(signatureString))))

	req, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		utils.Log.Error().Err(err).Msg("blob upload: building request failed")
		return ""
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		utils.Log.Error().Err(err).Msg("blob upload: request failed")
		return ""
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		utils.Log.Error().Err(err).Msg("blob upload: reading response failed")
		return ""
	}

	if res.StatusCode != http.StatusOK {
		utils.Log.Error().Int("status", res.StatusCode).Bytes("body", body).Msg("blob upload: rejected")
		return ""
	}

	var cloudRes struct {
		SecureURL string `json:"secure_url"`
		URL       string `json:"url"`
		Error     struct {
			Message string `json:"message"`
		} `json:"error"`
	}

	if err := json.Unmarshal(body, &cloudRes); err != nil {
		utils.Log.Error().Err(err).Msg("blob upload: parsing response failed")
		return ""
	}

	if cloudRes.Error.Message != "" {
		utils.Log.Error().Str("message", cloudRes.Error.Message).Msg("blob upload: provider error")
		return ""
	}

	if cloudRes.SecureURL != "" {
		return cloudRes.SecureURL
	}
	return cloudRes.URL
}
