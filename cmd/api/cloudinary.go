package main

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

const (
	doctorFolder = "doctors"
	avatarFolder = "avatars"
)

// uploadToCloudinary streams a multipart file into the given folder and
// returns the secure URL.
func (app *application) uploadToCloudinary(ctx context.Context, file multipart.File, filename, folder string) (string, error) {
	publicID := fmt.Sprintf("%s-%s", strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename)), uuid.New().String()[:8])

	resp, err := app.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:   folder,
		PublicID: publicID,
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload failed: %w", err)
	}

	return resp.SecureURL, nil
}

// deleteFromCloudinary removes an asset given its delivery URL.
func (app *application) deleteFromCloudinary(ctx context.Context, imageURL string) error {
	publicID, err := extractPublicID(imageURL)
	if err != nil {
		return err
	}

	_, err = app.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("cloudinary destroy failed: %w", err)
	}

	return nil
}

// extractPublicID recovers "folder/name" from a Cloudinary delivery URL such as
// https://res.cloudinary.com/<cloud>/image/upload/v123/doctors/jane-a1b2c3d4.jpg
func extractPublicID(imageURL string) (string, error) {
	parts := strings.Split(imageURL, "/upload/")
	if len(parts) != 2 {
		return "", fmt.Errorf("unexpected cloudinary URL: %s", imageURL)
	}

	path := parts[1]
	if idx := strings.Index(path, "/"); idx != -1 && strings.HasPrefix(path, "v") {
		// drop the version segment
		version := path[1:idx]
		if version != "" && strings.Trim(version, "0123456789") == "" {
			path = path[idx+1:]
		}
	}

	return strings.TrimSuffix(path, filepath.Ext(path)), nil
}
