package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newCartTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	ctrl := NewCartController()
	router.POST("/carts/:code/items", ctrl.AddItem)
	router.PATCH("/carts/:code/items/:id", ctrl.UpdateItem)
	router.DELETE("/carts/:code/items/:id", ctrl.RemoveItem)
	return router
}

func TestAddItemRequiresProductID(t *testing.T) {
	router := newCartTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/carts/ABCDEF123456/items", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateItemRejectsNonIntegerQuantity(t *testing.T) {
	router := newCartTestRouter()

	for _, body := range []string{
		`{"quantity": "three"}`,
		`{"quantity": 2.5}`,
		`{}`,
	} {
		req := httptest.NewRequest(http.MethodPatch, "/carts/ABCDEF123456/items/1", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
	}
}

func TestItemIDMustBeInteger(t *testing.T) {
	router := newCartTestRouter()

	req := httptest.NewRequest(http.MethodPatch, "/carts/ABCDEF123456/items/notanumber", strings.NewReader(`{"quantity": 2}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodDelete, "/carts/ABCDEF123456/items/notanumber", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
