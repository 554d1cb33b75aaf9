package services

import (
	"context"
	"mime/multipart"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"eldercare/config"
	appErrors "eldercare/errors"
)

// UploadImage pushes a multipart file to the image host and returns its
// public URL. Fails when the host is unconfigured.
func UploadImage(file multipart.File, folder string) (string, error) {
	if config.Cloudinary == nil {
		return "", appErrors.NewAppError(appErrors.ErrCodeValidation, "image uploads are not configured", nil)
	}

	ctx := context.Background()
	resp, err := config.Cloudinary.Upload.Upload(ctx, file, uploader.UploadParams{Folder: folder})
	if err != nil {
		return "", appErrors.NewAppError(appErrors.ErrCodeDBError, "image upload failed", err)
	}

	return resp.SecureURL, nil
}
