package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"ecommerce-api/models"
	"ecommerce-api/utils"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, models.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, models.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, models.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, models.ErrUnauthorized):
		status = http.StatusUnauthorized
	}
	c.JSON(status, models.ErrorResponse{Success: false, Message: err.Error()})
}

// uploadedImage stores the optional "image" form file and returns its URL,
// or nil when the request carries no file.
func uploadedImage(c *gin.Context, subDir string) (*string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return nil, nil
	}
	url, err := utils.UploadImage(c, file, subDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrValidation, err.Error())
	}
	return &url, nil
}
