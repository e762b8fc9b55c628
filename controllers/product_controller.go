package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"ecommerce-api/config"
	"ecommerce-api/models"
	"ecommerce-api/services"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	service *services.ProductService
}

func NewProductController() *ProductController {
	return &ProductController{service: services.NewProductService()}
}

func productCacheKey(page, limit int) string {
	return fmt.Sprintf("products_list_p%d_l%d", page, limit)
}

func invalidateProductCache() {
	if config.RedisClient == nil {
		return
	}
	ctx := context.Background()
	iter := config.RedisClient.Scan(ctx, 0, "products_list_*", 0).Iterator()
	for iter.Next(ctx) {
		config.RedisClient.Del(ctx, iter.Val())
	}
}

// @Summary List products
// @Description Get paginated list of products, newest first
// @Tags Products
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.PaginationResponse
// @Router /products [get]
func (ctrl *ProductController) GetProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	ctx := c.Request.Context()
	cacheKey := productCacheKey(page, limit)

	if config.RedisClient != nil {
		cached, err := config.RedisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			c.Data(http.StatusOK, "application/json", []byte(cached))
			return
		}
	}

	items, meta, err := ctrl.service.List(ctx, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	response := models.PaginationResponse{
		Success: true,
		Message: "Products retrieved",
		Data:    items,
		Meta:    meta,
	}

	if config.RedisClient != nil {
		if jsonData, err := json.Marshal(response); err == nil {
			config.RedisClient.Set(ctx, cacheKey, string(jsonData), 5*time.Minute)
		}
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get product
// @Description Get product details by slug, including its category snapshot and reviews
// @Tags Products
// @Produce json
// @Param slug path string true "Product slug"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{slug} [get]
func (ctrl *ProductController) GetProductBySlug(c *gin.Context) {
	detail, err := ctrl.service.Get(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Product retrieved",
		Data:    detail,
	})
}

// @Summary Create product
// @Description Create a new product (Admin)
// @Tags Products
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Product name"
// @Param description formData string false "Product description"
// @Param price formData string true "Product price, decimal string"
// @Param category_id formData int false "Category ID"
// @Param slug formData string false "Explicit slug (derived from name when absent)"
// @Param image formData file false "Product image"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /products [post]
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %s", models.ErrValidation, err.Error()))
		return
	}

	imageURL, err := uploadedImage(c, "products")
	if err != nil {
		respondError(c, err)
		return
	}

	product, err := ctrl.service.Create(c.Request.Context(), req, imageURL)
	if err != nil {
		respondError(c, err)
		return
	}

	invalidateProductCache()

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Product created successfully",
		Data:    product,
	})
}

// @Summary Update product
// @Description Partially update a product (Admin)
// @Tags Products
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param slug path string true "Product slug"
// @Param name formData string false "Product name"
// @Param description formData string false "Product description"
// @Param price formData string false "Product price, decimal string"
// @Param category_id formData int false "Category ID (0 clears the category)"
// @Param image formData file false "Product image"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{slug} [patch]
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	var req models.UpdateProductRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %s", models.ErrValidation, err.Error()))
		return
	}

	imageURL, err := uploadedImage(c, "products")
	if err != nil {
		respondError(c, err)
		return
	}

	product, err := ctrl.service.Update(c.Request.Context(), c.Param("slug"), req, imageURL)
	if err != nil {
		respondError(c, err)
		return
	}

	invalidateProductCache()

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Product updated successfully",
		Data:    product,
	})
}

// @Summary Delete product
// @Description Delete a product; cart items referencing it are removed (Admin)
// @Tags Products
// @Security BearerAuth
// @Param slug path string true "Product slug"
// @Success 204 "No Content"
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{slug} [delete]
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	if err := ctrl.service.Delete(c.Request.Context(), c.Param("slug")); err != nil {
		respondError(c, err)
		return
	}

	invalidateProductCache()

	c.Status(http.StatusNoContent)
}
