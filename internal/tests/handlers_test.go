package tests

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpapi "kitchen-pos/internal/api/http"
	"kitchen-pos/internal/domain"
	"kitchen-pos/internal/mocks"
	"kitchen-pos/internal/service"
)

type handlerMocks struct {
	products    *mocks.ProductServiceInterface
	menuGroups  *mocks.MenuGroupServiceInterface
	menus       *mocks.MenuServiceInterface
	tables      *mocks.TableServiceInterface
	tableGroups *mocks.TableGroupServiceInterface
	orders      *mocks.OrderServiceInterface
}

func newTestRouter(t *testing.T) (*mux.Router, handlerMocks) {
	m := handlerMocks{
		products:    mocks.NewProductServiceInterface(t),
		menuGroups:  mocks.NewMenuGroupServiceInterface(t),
		menus:       mocks.NewMenuServiceInterface(t),
		tables:      mocks.NewTableServiceInterface(t),
		tableGroups: mocks.NewTableGroupServiceInterface(t),
		orders:      mocks.NewOrderServiceInterface(t),
	}

	handler := httpapi.NewHandler(m.products, m.menuGroups, m.menus, m.tables, m.tableGroups, m.orders)
	router := mux.NewRouter()
	handler.RegisterRoutes(router)
	return router, m
}

func TestCreateProductHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		prepareMocks   func(m handlerMocks)
		expectedStatus int
	}{
		{
			name: "created",
			body: `{"name": "Chicken", "price": 20000}`,
			prepareMocks: func(m handlerMocks) {
				m.products.On("Create", mock.Anything).Return(nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing_price",
			body:           `{"name": "Chicken"}`,
			prepareMocks:   func(m handlerMocks) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate_name",
			body: `{"name": "Chicken", "price": 20000}`,
			prepareMocks: func(m handlerMocks) {
				m.products.On("Create", mock.Anything).Return(service.ErrDuplicateName).Once()
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "negative_price",
			body: `{"name": "Chicken", "price": -1000}`,
			prepareMocks: func(m handlerMocks) {
				m.products.On("Create", mock.Anything).Return(service.ErrInvalidPrice).Once()
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid_json",
			body:           `{"name": `,
			prepareMocks:   func(m handlerMocks) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			router, m := newTestRouter(t)
			testCase.prepareMocks(m)

			req := httptest.NewRequest("POST", "/api/products", bytes.NewBufferString(testCase.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, testCase.expectedStatus, rec.Code)
		})
	}
}

func TestCreateMenuHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		prepareMocks   func(m handlerMocks)
		expectedStatus int
	}{
		{
			name: "created",
			body: `{"name": "Two Fried Chickens", "price": 37000, "menu_group_id": 1, "menu_products": [{"product_id": 1, "quantity": 2}]}`,
			prepareMocks: func(m handlerMocks) {
				m.menus.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing_price",
			body:           `{"name": "Two Fried Chickens", "menu_group_id": 1}`,
			prepareMocks:   func(m handlerMocks) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown_menu_group",
			body: `{"name": "Two Fried Chickens", "price": 37000, "menu_group_id": 42, "menu_products": [{"product_id": 1, "quantity": 2}]}`,
			prepareMocks: func(m handlerMocks) {
				m.menus.On("Create", mock.Anything, mock.Anything).Return(service.ErrMenuGroupNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "price_above_product_total",
			body: `{"name": "Two Fried Chickens", "price": 40000, "menu_group_id": 1, "menu_products": [{"product_id": 1, "quantity": 2}]}`,
			prepareMocks: func(m handlerMocks) {
				m.menus.On("Create", mock.Anything, mock.Anything).Return(service.ErrInvalidPrice).Once()
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			router, m := newTestRouter(t)
			testCase.prepareMocks(m)

			req := httptest.NewRequest("POST", "/api/menus", bytes.NewBufferString(testCase.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, testCase.expectedStatus, rec.Code)
		})
	}
}

func TestChangeTableEmptyHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		prepareMocks   func(m handlerMocks)
		expectedStatus int
	}{
		{
			name: "ok",
			body: `{"empty": false}`,
			prepareMocks: func(m handlerMocks) {
				m.tables.On("ChangeEmpty", 1, false).Return(&domain.OrderTable{ID: 1, Empty: false}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing_flag",
			body:           `{}`,
			prepareMocks:   func(m handlerMocks) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "grouped_table",
			body: `{"empty": true}`,
			prepareMocks: func(m handlerMocks) {
				m.tables.On("ChangeEmpty", 1, true).Return(nil, service.ErrTableGrouped).Once()
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "active_order",
			body: `{"empty": true}`,
			prepareMocks: func(m handlerMocks) {
				m.tables.On("ChangeEmpty", 1, true).Return(nil, service.ErrTableHasActiveOrder).Once()
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			router, m := newTestRouter(t)
			testCase.prepareMocks(m)

			req := httptest.NewRequest("PUT", "/api/tables/1/empty", bytes.NewBufferString(testCase.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, testCase.expectedStatus, rec.Code)
		})
	}
}

func TestTableGroupHandlers(t *testing.T) {
	t.Run("create_created", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.tableGroups.On("Create", []int{1, 2}).Return(&domain.TableGroup{ID: 5}, nil).Once()

		req := httptest.NewRequest("POST", "/api/table-groups", bytes.NewBufferString(`{"order_table_ids": [1, 2]}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("create_not_groupable", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.tableGroups.On("Create", []int{1, 2}).Return(nil, service.ErrTablesNotGroupable).Once()

		req := httptest.NewRequest("POST", "/api/table-groups", bytes.NewBufferString(`{"order_table_ids": [1, 2]}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("ungroup_no_content", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.tableGroups.On("Ungroup", 5).Return(nil).Once()

		req := httptest.NewRequest("DELETE", "/api/table-groups/5", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("ungroup_active_order", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.tableGroups.On("Ungroup", 5).Return(service.ErrGroupHasActiveOrder).Once()

		req := httptest.NewRequest("DELETE", "/api/table-groups/5", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestOrderHandlers(t *testing.T) {
	t.Run("create_created", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.orders.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

		body := `{"order_table_id": 1, "order_line_items": [{"menu_id": 1, "quantity": 2}]}`
		req := httptest.NewRequest("POST", "/api/orders", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("create_missing_table_id", func(t *testing.T) {
		router, _ := newTestRouter(t)

		body := `{"order_line_items": [{"menu_id": 1, "quantity": 2}]}`
		req := httptest.NewRequest("POST", "/api/orders", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("create_empty_table", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.orders.On("Create", mock.Anything, mock.Anything).Return(service.ErrTableEmpty).Once()

		body := `{"order_table_id": 1, "order_line_items": [{"menu_id": 1, "quantity": 2}]}`
		req := httptest.NewRequest("POST", "/api/orders", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("change_status_ok", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.orders.On("ChangeStatus", mock.Anything, 1, "MEAL").
			Return(&domain.Order{ID: 1, OrderStatus: domain.OrderStatusMeal}, nil).Once()

		req := httptest.NewRequest("PUT", "/api/orders/1/status", bytes.NewBufferString(`{"order_status": "MEAL"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("change_status_completed_order", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.orders.On("ChangeStatus", mock.Anything, 1, "MEAL").
			Return(nil, service.ErrOrderCompleted).Once()

		req := httptest.NewRequest("PUT", "/api/orders/1/status", bytes.NewBufferString(`{"order_status": "MEAL"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestTableQRCodeHandler(t *testing.T) {
	t.Run("returns_png", func(t *testing.T) {
		router, m := newTestRouter(t)
		qrBytes := []byte{0x89, 0x50, 0x4e, 0x47}
		m.tables.On("QRCode", 1).Return(qrBytes, nil).Once()

		req := httptest.NewRequest("GET", "/api/tables/1/qrcode", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		assert.Equal(t, qrBytes, rec.Body.Bytes())
	})

	t.Run("unknown_table", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.tables.On("QRCode", 99).Return(nil, service.ErrUnknownTable).Once()

		req := httptest.NewRequest("GET", "/api/tables/99/qrcode", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
