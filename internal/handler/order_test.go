package handler_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onimix/artist-platform/internal/handler"
	"github.com/onimix/artist-platform/internal/order"
)

type mockOrderService struct {
	createFunc       func(ctx context.Context, in order.CreateInput) (*order.Order, error)
	getByIDFunc      func(ctx context.Context, id string) (*order.Order, error)
	getByNumberFunc  func(ctx context.Context, orderNumber string) (*order.Order, error)
	listFunc         func(ctx context.Context, filter order.ListFilter) ([]order.Order, error)
	updateStatusFunc func(ctx context.Context, id string, in order.StatusUpdateInput) (*order.Order, error)
}

func (m *mockOrderService) Create(ctx context.Context, in order.CreateInput) (*order.Order, error) {
	return m.createFunc(ctx, in)
}

func (m *mockOrderService) GetByID(ctx context.Context, id string) (*order.Order, error) {
	return m.getByIDFunc(ctx, id)
}

func (m *mockOrderService) GetByOrderNumber(ctx context.Context, orderNumber string) (*order.Order, error) {
	return m.getByNumberFunc(ctx, orderNumber)
}

func (m *mockOrderService) List(ctx context.Context, filter order.ListFilter) ([]order.Order, error) {
	return m.listFunc(ctx, filter)
}

func (m *mockOrderService) UpdateStatus(ctx context.Context, id string, in order.StatusUpdateInput) (*order.Order, error) {
	return m.updateStatusFunc(ctx, id, in)
}

func newOrderRouter(svc order.Service) *chi.Mux {
	h := handler.NewOrderHandler(svc)
	r := chi.NewRouter()
	r.Post("/orders", h.Create)
	r.Get("/orders/{id}", h.GetByID)
	r.Patch("/orders/{id}/status", h.UpdateStatus)
	return r
}

func TestOrderHandler_Create(t *testing.T) {
	sample := &order.Order{
		ID:          "550e8400-e29b-41d4-a716-446655440000",
		OrderNumber: "ORD-20260831-AB12CD34",
		Status:      order.StatusPending,
		FinalAmount: 42.39,
		CreatedAt:   time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name           string
		body           string
		createFunc     func(ctx context.Context, in order.CreateInput) (*order.Order, error)
		expectedStatus int
	}{
		{
			name: "created",
			body: `{"customer_name":"Ava","customer_email":"ava@example.com","items":[{"product_id":"p1","quantity":1}]}`,
			createFunc: func(ctx context.Context, in order.CreateInput) (*order.Order, error) {
				return sample, nil
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "malformed_body",
			body:           `{"customer_name":`,
			createFunc:     nil,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "validation_error",
			body: `{"customer_name":"","customer_email":"a@b.c","items":[]}`,
			createFunc: func(ctx context.Context, in order.CreateInput) (*order.Order, error) {
				return nil, order.ErrValidation
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newOrderRouter(&mockOrderService{createFunc: tt.createFunc})

			req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusCreated {
				assert.Contains(t, rec.Body.String(), "ORD-20260831-AB12CD34")
				assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			}
		})
	}
}

func TestOrderHandler_GetByID(t *testing.T) {
	router := newOrderRouter(&mockOrderService{
		getByIDFunc: func(ctx context.Context, id string) (*order.Order, error) {
			if id == "known" {
				return &order.Order{ID: "known", Status: order.StatusPaid}, nil
			}
			return nil, order.ErrNotFound
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/orders/known", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"paid"`)

	req = httptest.NewRequest(http.MethodGet, "/orders/missing", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		serviceErr     error
		expectedStatus int
	}{
		{name: "ok", body: `{"status":"paid","payment_id":"pay_1"}`, expectedStatus: http.StatusOK},
		{name: "invalid_transition", body: `{"status":"delivered"}`, serviceErr: order.ErrInvalidTransition, expectedStatus: http.StatusBadRequest},
		{name: "unknown_order", body: `{"status":"paid"}`, serviceErr: order.ErrNotFound, expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newOrderRouter(&mockOrderService{
				updateStatusFunc: func(ctx context.Context, id string, in order.StatusUpdateInput) (*order.Order, error) {
					if tt.serviceErr != nil {
						return nil, tt.serviceErr
					}
					return &order.Order{ID: id, Status: in.Status, PaymentID: in.PaymentID}, nil
				},
			})

			req := httptest.NewRequest(http.MethodPatch, "/orders/o1/status", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}
