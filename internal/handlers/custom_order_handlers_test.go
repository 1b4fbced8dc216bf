package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MinHtutZaw/e-commerce-sub000/internal/handlers"
	"github.com/MinHtutZaw/e-commerce-sub000/internal/mocks"
	"github.com/MinHtutZaw/e-commerce-sub000/internal/models"
	"github.com/MinHtutZaw/e-commerce-sub000/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func quoteRouter(pricingRepo *mocks.MockPricingRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := &handlers.Handlers{
		Pricing: services.NewPricingService(pricingRepo),
	}

	router := gin.New()
	router.POST("/v1/custom-orders/quote", h.QuotePreview)
	return router
}

func TestQuotePreview(t *testing.T) {
	pricingRepo := new(mocks.MockPricingRepository)
	pricingRepo.On("FindActive", mock.Anything, models.PriceTypeBase, "child").
		Return(&models.CustomOrderPricing{Price: 5000, IsActive: true}, nil)
	pricingRepo.On("FindActive", mock.Anything, models.PriceTypeFabric, "Cotton").
		Return(&models.CustomOrderPricing{Price: 2000, IsActive: true}, nil)
	router := quoteRouter(pricingRepo)

	body := `{"customerType":"child","fabric":"Cotton","quantity":3}`
	req := httptest.NewRequest(http.MethodPost, "/v1/custom-orders/quote", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Quote services.Quote `json:"quote"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(7000), resp.Quote.UnitPrice)
	assert.Equal(t, int64(21000), resp.Quote.TotalPrice)
}

func TestQuotePreview_UnknownFabric(t *testing.T) {
	pricingRepo := new(mocks.MockPricingRepository)
	pricingRepo.On("FindActive", mock.Anything, models.PriceTypeBase, "child").
		Return(&models.CustomOrderPricing{Price: 5000, IsActive: true}, nil)
	pricingRepo.On("FindActive", mock.Anything, models.PriceTypeFabric, "Velvet").
		Return(nil, nil)
	router := quoteRouter(pricingRepo)

	body := `{"customerType":"child","fabric":"Velvet","quantity":1}`
	req := httptest.NewRequest(http.MethodPost, "/v1/custom-orders/quote", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestQuotePreview_InvalidBody(t *testing.T) {
	router := quoteRouter(new(mocks.MockPricingRepository))

	body := `{"customerType":"child","fabric":"Cotton","quantity":0}`
	req := httptest.NewRequest(http.MethodPost, "/v1/custom-orders/quote", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
