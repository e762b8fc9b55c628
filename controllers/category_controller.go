package controllers

import (
	"fmt"
	"net/http"

	"ecommerce-api/models"
	"ecommerce-api/services"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	service *services.CategoryService
}

func NewCategoryController() *CategoryController {
	return &CategoryController{service: services.NewCategoryService()}
}

// @Summary List categories
// @Description Get all categories ordered by name
// @Tags Categories
// @Produce json
// @Success 200 {object} models.Response
// @Router /categories [get]
func (ctrl *CategoryController) GetCategories(c *gin.Context) {
	categories, err := ctrl.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Categories retrieved",
		Data:    categories,
	})
}

// @Summary Get category
// @Description Get a category by slug with its products
// @Tags Categories
// @Produce json
// @Param slug path string true "Category slug"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /categories/{slug} [get]
func (ctrl *CategoryController) GetCategoryBySlug(c *gin.Context) {
	detail, err := ctrl.service.Get(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Category retrieved",
		Data:    detail,
	})
}

// @Summary Create category
// @Description Create a new category (Admin)
// @Tags Categories
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Category name"
// @Param slug formData string false "Explicit slug (derived from name when absent)"
// @Param image formData file false "Category image"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /categories [post]
func (ctrl *CategoryController) CreateCategory(c *gin.Context) {
	var req models.CreateCategoryRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %s", models.ErrValidation, err.Error()))
		return
	}

	imageURL, err := uploadedImage(c, "categories")
	if err != nil {
		respondError(c, err)
		return
	}

	cat, err := ctrl.service.Create(c.Request.Context(), req, imageURL)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Category created successfully",
		Data:    cat,
	})
}

// @Summary Update category
// @Description Partially update a category (Admin)
// @Tags Categories
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param slug path string true "Category slug"
// @Param name formData string false "Category name"
// @Param slug formData string false "New slug"
// @Param image formData file false "Category image"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /categories/{slug} [patch]
func (ctrl *CategoryController) UpdateCategory(c *gin.Context) {
	var req models.UpdateCategoryRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %s", models.ErrValidation, err.Error()))
		return
	}

	imageURL, err := uploadedImage(c, "categories")
	if err != nil {
		respondError(c, err)
		return
	}

	cat, err := ctrl.service.Update(c.Request.Context(), c.Param("slug"), req, imageURL)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Category updated successfully",
		Data:    cat,
	})
}

// @Summary Delete category
// @Description Delete a category; its products keep existing without a category (Admin)
// @Tags Categories
// @Security BearerAuth
// @Param slug path string true "Category slug"
// @Success 204 "No Content"
// @Failure 404 {object} models.ErrorResponse
// @Router /categories/{slug} [delete]
func (ctrl *CategoryController) DeleteCategory(c *gin.Context) {
	if err := ctrl.service.Delete(c.Request.Context(), c.Param("slug")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
