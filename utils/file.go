package utils

import (
	"ecommerce-api/config"
	"ecommerce-api/libs"
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// UploadImage stores an uploaded image and returns a retrievable URL.
// When Cloudinary is configured the file is pushed there; otherwise it
// lands under the local upload dir served at /uploads.
func UploadImage(c *gin.Context, fileHeader *multipart.FileHeader, subDir string) (string, error) {
	if fileHeader.Size > config.AppConfig.MaxUploadSize {
		return "", errors.New("file size exceeds maximum allowed size")
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExtensions[ext] {
		return "", errors.New("invalid file type. Only images are allowed")
	}

	uploadPath := filepath.Join(config.AppConfig.UploadDir, subDir)
	if err := os.MkdirAll(uploadPath, os.ModePerm); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)
	filePath := filepath.Join(uploadPath, filename)

	if err := c.SaveUploadedFile(fileHeader, filePath); err != nil {
		return "", err
	}

	if config.AppConfig.CloudinaryURL != "" {
		// UploadToCloudinary removes the local copy.
		return libs.UploadToCloudinary(filePath, subDir)
	}

	return "/uploads/" + subDir + "/" + filename, nil
}

func DeleteImage(imageURL string) error {
	if imageURL == "" || !strings.HasPrefix(imageURL, "/uploads/") {
		return nil
	}
	fullPath := filepath.Join(config.AppConfig.UploadDir, strings.TrimPrefix(imageURL, "/uploads/"))
	if _, err := os.Stat(fullPath); err == nil {
		return os.Remove(fullPath)
	}
	return nil
}
