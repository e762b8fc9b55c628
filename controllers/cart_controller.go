package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"ecommerce-api/models"
	"ecommerce-api/services"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	service *services.CartService
}

func NewCartController() *CartController {
	return &CartController{service: services.NewCartService()}
}

// @Summary Create cart
// @Description Create a cart with a generated code; passing cart_code returns the existing cart with that code or creates it
// @Tags Carts
// @Accept json
// @Produce json
// @Param request body models.GetOrCreateCartRequest false "Optional existing cart code"
// @Success 201 {object} models.Response
// @Router /carts [post]
func (ctrl *CartController) CreateCart(c *gin.Context) {
	var req models.GetOrCreateCartRequest
	_ = c.ShouldBindJSON(&req)

	var (
		view *models.CartView
		err  error
	)
	if req.CartCode != "" {
		view, err = ctrl.service.GetOrCreateCart(c.Request.Context(), req.CartCode)
	} else {
		view, err = ctrl.service.CreateCart(c.Request.Context())
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Cart created",
		Data:    view,
	})
}

// @Summary Get cart
// @Description Get a cart with its items and computed total
// @Tags Carts
// @Produce json
// @Param code path string true "Cart code"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /carts/{code} [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	view, err := ctrl.service.GetCart(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart retrieved",
		Data:    view,
	})
}

// @Summary Delete cart
// @Description Delete a cart and all its items
// @Tags Carts
// @Param code path string true "Cart code"
// @Success 204 "No Content"
// @Failure 404 {object} models.ErrorResponse
// @Router /carts/{code} [delete]
func (ctrl *CartController) DeleteCart(c *gin.Context) {
	if err := ctrl.service.DeleteCart(c.Request.Context(), c.Param("code")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Clear cart
// @Description Remove every item from the cart
// @Tags Carts
// @Produce json
// @Param code path string true "Cart code"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /carts/{code}/clear [post]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	view, err := ctrl.service.ClearCart(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart cleared",
		Data:    view,
	})
}

// @Summary Add cart item
// @Description Add a product to the cart; an existing (cart, product) item has its quantity overwritten
// @Tags Carts
// @Accept json
// @Produce json
// @Param code path string true "Cart code"
// @Param request body models.AddCartItemRequest true "Product and quantity"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /carts/{code}/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %s", models.ErrValidation, err.Error()))
		return
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	view, err := ctrl.service.AddOrSetItem(c.Request.Context(), c.Param("code"), req.ProductID, quantity)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Item added to cart",
		Data:    view,
	})
}

// @Summary Update cart item
// @Description Overwrite an item's quantity; zero or negative removes the item
// @Tags Carts
// @Accept json
// @Produce json
// @Param code path string true "Cart code"
// @Param id path int true "Cart item ID"
// @Param request body models.UpdateCartItemRequest true "New quantity"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /carts/{code}/items/{id} [patch]
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, fmt.Errorf("%w: item id must be an integer", models.ErrValidation))
		return
	}

	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %s", models.ErrValidation, err.Error()))
		return
	}

	view, err := ctrl.service.UpdateItem(c.Request.Context(), c.Param("code"), itemID, *req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart item updated",
		Data:    view,
	})
}

// @Summary Remove cart item
// @Description Delete an item from the cart
// @Tags Carts
// @Produce json
// @Param code path string true "Cart code"
// @Param id path int true "Cart item ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /carts/{code}/items/{id} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, fmt.Errorf("%w: item id must be an integer", models.ErrValidation))
		return
	}

	view, err := ctrl.service.RemoveItem(c.Request.Context(), c.Param("code"), itemID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart item removed",
		Data:    view,
	})
}
