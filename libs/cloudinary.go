package libs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"ecommerce-api/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// UploadToCloudinary pushes a local file to Cloudinary and returns its
// secure URL. The local copy is removed regardless of outcome.
func UploadToCloudinary(localPath, folder string) (string, error) {
	defer os.Remove(localPath)

	cld, err := cloudinary.NewFromURL(config.AppConfig.CloudinaryURL)
	if err != nil {
		return "", fmt.Errorf("cloudinary init failed: %w", err)
	}

	publicID := fmt.Sprintf("%s_%d", strings.TrimSuffix(filepath.Base(localPath), filepath.Ext(localPath)), time.Now().UnixNano())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	resp, err := cld.Upload.Upload(ctx, localPath, uploader.UploadParams{
		PublicID: publicID,
		Folder:   folder,
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload failed: %w", err)
	}
	if resp == nil || resp.SecureURL == "" {
		return "", fmt.Errorf("cloudinary returned no URL")
	}

	return resp.SecureURL, nil
}
