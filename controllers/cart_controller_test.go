package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickshop/middleware"
	"quickshop/models"
	"quickshop/repositories"
	"quickshop/services"
	"quickshop/utils"
)

type cartTestEnv struct {
	router   *gin.Engine
	products *repositories.InMemoryProductStore
	token    string
}

func newCartTestEnv(t *testing.T) *cartTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	products := repositories.NewInMemoryProductStore()
	carts := repositories.NewInMemoryCartStore()
	cartCtrl := NewCartController(services.NewCartService(carts, products))

	router := gin.New()
	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.GET("/cart", cartCtrl.GetCart)
		auth.POST("/cart/add", cartCtrl.AddItem)
		auth.PATCH("/cart/update/:id", cartCtrl.UpdateItem)
		auth.DELETE("/cart/remove/:product_id", cartCtrl.RemoveItem)
	}

	token, err := utils.GenerateToken(1, "shopper@example.com", "customer")
	require.NoError(t, err)

	return &cartTestEnv{router: router, products: products, token: token}
}

func (env *cartTestEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+env.token)

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func (env *cartTestEnv) seedProduct(t *testing.T, name string, price float64) *models.Product {
	t.Helper()
	p := &models.Product{Name: name, Description: name, Price: price, Stock: 10}
	require.NoError(t, env.products.Create(context.Background(), p))
	return p
}

func TestCartRequiresAuth(t *testing.T) {
	env := newCartTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAddItemDefaultsQuantityToOne(t *testing.T) {
	env := newCartTestEnv(t)
	p := env.seedProduct(t, "beans", 12.00)

	w := env.do(t, http.MethodPost, "/cart/add", gin.H{"product_id": p.ID})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Data models.CartLine `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Data.Quantity)
}

func TestAddItemExplicitZeroQuantityRejected(t *testing.T) {
	env := newCartTestEnv(t)
	p := env.seedProduct(t, "beans", 12.00)

	w := env.do(t, http.MethodPost, "/cart/add", gin.H{"product_id": p.ID, "quantity": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddItemUnknownProductReturns404(t *testing.T) {
	env := newCartTestEnv(t)

	w := env.do(t, http.MethodPost, "/cart/add", gin.H{"product_id": 12345, "quantity": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartAddUpdateRemoveFlow(t *testing.T) {
	env := newCartTestEnv(t)
	p := env.seedProduct(t, "grinder", 80.00)

	w := env.do(t, http.MethodPost, "/cart/add", gin.H{"product_id": p.ID, "quantity": 2})
	require.Equal(t, http.StatusCreated, w.Code)

	var addResp struct {
		Data models.CartLine `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &addResp))
	lineID := addResp.Data.ID

	// Merge on second add.
	w = env.do(t, http.MethodPost, "/cart/add", gin.H{"product_id": p.ID, "quantity": 3})
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, http.MethodGet, "/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var viewResp struct {
		Data models.CartView `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &viewResp))
	require.Len(t, viewResp.Data.Items, 1)
	assert.Equal(t, 5, viewResp.Data.Items[0].Quantity)
	assert.InDelta(t, 400.00, viewResp.Data.TotalPrice, 1e-9)

	// Absolute set.
	w = env.do(t, http.MethodPatch, "/cart/update/"+strconv.Itoa(lineID), gin.H{"quantity": 1})
	require.Equal(t, http.StatusOK, w.Code)

	var updResp struct {
		Data models.CartLine `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updResp))
	assert.Equal(t, 1, updResp.Data.Quantity)

	w = env.do(t, http.MethodDelete, "/cart/remove/"+strconv.Itoa(p.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodDelete, "/cart/remove/"+strconv.Itoa(p.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateItemMissingQuantityRejected(t *testing.T) {
	env := newCartTestEnv(t)
	p := env.seedProduct(t, "kettle", 40.00)

	w := env.do(t, http.MethodPost, "/cart/add", gin.H{"product_id": p.ID, "quantity": 2})
	require.Equal(t, http.StatusCreated, w.Code)

	var addResp struct {
		Data models.CartLine `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &addResp))

	w = env.do(t, http.MethodPatch, "/cart/update/"+strconv.Itoa(addResp.Data.ID), gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
