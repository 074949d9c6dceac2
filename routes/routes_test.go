package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nitturkaryash/chic-salon-ecosystem-main/config"
	"github.com/nitturkaryash/chic-salon-ecosystem-main/models"
	"github.com/nitturkaryash/chic-salon-ecosystem-main/storage"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := config.Config{
		Port:           "8080",
		AllowedOrigins: []string{"http://localhost:3000"},
	}
	return SetupRouter(storage.NewMemoryStore(), cfg)
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, out interface{}) *httptest.ResponseRecorder {
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
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if out != nil && w.Code < 300 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
	}
	return w
}

func TestCheckoutFlow(t *testing.T) {
	r := newTestRouter()

	var svc models.Service
	w := doJSON(t, r, http.MethodPost, "/api/services", gin.H{
		"name":            "Haircut & Style",
		"durationMinutes": "60",
		"price":           800,
	}, &svc)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		CartID string `json:"cartId"`
	}
	w = doJSON(t, r, http.MethodPost, "/api/pos/carts", nil, &created)
	require.Equal(t, http.StatusCreated, w.Code)
	require.NotEmpty(t, created.CartID)
	cartPath := "/api/pos/carts/" + created.CartID

	w = doJSON(t, r, http.MethodPost, cartPath+"/items", gin.H{"serviceId": svc.ID}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodPost, cartPath+"/items", gin.H{"serviceId": svc.ID}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var totals struct {
		Subtotal float64 `json:"subtotal"`
		Tax      float64 `json:"tax"`
		Total    float64 `json:"total"`
	}
	w = doJSON(t, r, http.MethodGet, cartPath+"/totals?paymentMethod=UPI", nil, &totals)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1600.0, totals.Subtotal)
	assert.Equal(t, 288.0, totals.Tax)
	assert.Equal(t, 1888.0, totals.Total)

	var order models.Order
	w = doJSON(t, r, http.MethodPost, cartPath+"/checkout", gin.H{
		"customerName":  "Asha Verma",
		"email":         "asha@example.com",
		"phone":         "+919876543210",
		"paymentMethod": "UPI",
	}, &order)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, int64(1), order.ID)
	assert.Equal(t, models.PaymentPaid, order.PaymentStatus)
	assert.Equal(t, models.FulfillmentPending, order.FulfillmentStatus)
	assert.Equal(t, 1888.0, order.Total)

	// Cart is discarded after checkout
	w = doJSON(t, r, http.MethodGet, cartPath, nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var orders []models.Order
	w = doJSON(t, r, http.MethodGet, "/api/orders", nil, &orders)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, orders, 1)

	// Checkout with identity lands in the client ledger
	var clients []models.Client
	w = doJSON(t, r, http.MethodGet, "/api/clients", nil, &clients)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, clients, 1)
	assert.Equal(t, 1, clients[0].TotalVisits)
	assert.Equal(t, 1888.0, clients[0].TotalSpent)
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	r := newTestRouter()

	var created struct {
		CartID string `json:"cartId"`
	}
	w := doJSON(t, r, http.MethodPost, "/api/pos/carts", nil, &created)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/pos/carts/"+created.CartID+"/checkout", gin.H{
		"customerName":  "Asha Verma",
		"paymentMethod": "Cash",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Nothing was created
	var orders []models.Order
	w = doJSON(t, r, http.MethodGet, "/api/orders", nil, &orders)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, orders)
}

func TestAppointmentBookingFlow(t *testing.T) {
	r := newTestRouter()

	var svc models.Service
	w := doJSON(t, r, http.MethodPost, "/api/services", gin.H{
		"name":            "Facial",
		"durationMinutes": "90",
		"price":           1500,
	}, &svc)
	require.Equal(t, http.StatusCreated, w.Code)

	var appointment models.Appointment
	w = doJSON(t, r, http.MethodPost, "/api/appointments", gin.H{
		"customerName": "Meera Nair",
		"email":        "meera@example.com",
		"phone":        "+918888888888",
		"serviceId":    svc.ID,
		"date":         "2025-04-29",
		"time":         "10:00 AM",
	}, &appointment)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Facial", appointment.Service)
	assert.Equal(t, "April 29, 2025", appointment.Date)

	// Unknown service id is rejected
	w = doJSON(t, r, http.MethodPost, "/api/appointments", gin.H{
		"customerName": "Meera Nair",
		"email":        "meera@example.com",
		"phone":        "+918888888888",
		"serviceId":    99,
		"date":         "2025-04-29",
		"time":         "11:00 AM",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var clients []models.Client
	w = doJSON(t, r, http.MethodGet, "/api/clients", nil, &clients)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, clients, 1)
	assert.Equal(t, 1500.0, clients[0].TotalSpent)
}

func TestOrderLifecycleOverHTTP(t *testing.T) {
	r := newTestRouter()

	var svc models.Service
	w := doJSON(t, r, http.MethodPost, "/api/services", gin.H{
		"name":            "Pedicure",
		"durationMinutes": "60",
		"price":           700,
	}, &svc)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		CartID string `json:"cartId"`
	}
	w = doJSON(t, r, http.MethodPost, "/api/pos/carts", nil, &created)
	require.Equal(t, http.StatusCreated, w.Code)
	cartPath := "/api/pos/carts/" + created.CartID

	w = doJSON(t, r, http.MethodPost, cartPath+"/items", gin.H{"serviceId": svc.ID}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var order models.Order
	w = doJSON(t, r, http.MethodPost, cartPath+"/checkout", gin.H{
		"customerName":  "Sara",
		"paymentMethod": "BNPL",
	}, &order)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, models.PaymentPending, order.PaymentStatus)

	w = doJSON(t, r, http.MethodPut, "/api/orders/1/payment-status", gin.H{"status": "paid"}, &order)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.PaymentPaid, order.PaymentStatus)

	w = doJSON(t, r, http.MethodPost, "/api/orders/1/notes", gin.H{"text": "Settled in cash next visit"}, &order)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, order.Notes, 1)

	w = doJSON(t, r, http.MethodDelete, "/api/orders/1", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodDelete, "/api/orders/1", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
