package controllers

import (
	"fmt"
	"net/http"

	"ecommerce-api/models"
	"ecommerce-api/services"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	service *services.ReviewService
}

func NewReviewController() *ReviewController {
	return &ReviewController{service: services.NewReviewService()}
}

// @Summary Create review
// @Description Review a product as the authenticated user; one review per user per product
// @Tags Reviews
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateReviewRequest true "Product, rating 1-5 and comment"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /reviews [post]
func (ctrl *ReviewController) CreateReview(c *gin.Context) {
	var req models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %s", models.ErrValidation, err.Error()))
		return
	}

	userID := c.GetInt("user_id")

	review, err := ctrl.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Review created",
		Data:    review,
	})
}
