package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"kitchen-pos/internal/domain"
	"kitchen-pos/internal/service"
)

type Handler struct {
	Products    service.ProductServiceInterface
	MenuGroups  service.MenuGroupServiceInterface
	Menus       service.MenuServiceInterface
	Tables      service.TableServiceInterface
	TableGroups service.TableGroupServiceInterface
	Orders      service.OrderServiceInterface
}

func NewHandler(
	products service.ProductServiceInterface,
	menuGroups service.MenuGroupServiceInterface,
	menus service.MenuServiceInterface,
	tables service.TableServiceInterface,
	tableGroups service.TableGroupServiceInterface,
	orders service.OrderServiceInterface,
) *Handler {
	return &Handler{
		Products:    products,
		MenuGroups:  menuGroups,
		Menus:       menus,
		Tables:      tables,
		TableGroups: tableGroups,
		Orders:      orders,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/products", h.createProduct).Methods("POST")
	r.HandleFunc("/api/products", h.listProducts).Methods("GET")
	r.HandleFunc("/api/menu-groups", h.createMenuGroup).Methods("POST")
	r.HandleFunc("/api/menu-groups", h.listMenuGroups).Methods("GET")
	r.HandleFunc("/api/menus", h.createMenu).Methods("POST")
	r.HandleFunc("/api/menus", h.listMenus).Methods("GET")
	r.HandleFunc("/api/tables", h.createTable).Methods("POST")
	r.HandleFunc("/api/tables", h.listTables).Methods("GET")
	r.HandleFunc("/api/tables/{tableId}/empty", h.changeTableEmpty).Methods("PUT")
	r.HandleFunc("/api/tables/{tableId}/guests", h.changeTableGuests).Methods("PUT")
	r.HandleFunc("/api/tables/{tableId}/qrcode", h.getTableQRCode).Methods("GET")
	r.HandleFunc("/api/table-groups", h.createTableGroup).Methods("POST")
	r.HandleFunc("/api/table-groups/{groupId}", h.ungroupTables).Methods("DELETE")
	r.HandleFunc("/api/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/orders", h.listOrders).Methods("GET")
	r.HandleFunc("/api/orders/{orderId}/status", h.changeOrderStatus).Methods("PUT")
}

// writeServiceError maps validation error kinds to HTTP statuses:
// not-found kinds to 404, duplicates to 409, other violations to 400.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrMenuGroupNotFound),
		errors.Is(err, service.ErrProductNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrDuplicateName):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, service.ErrInvalidName),
		errors.Is(err, service.ErrInvalidPrice),
		errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrNoMenuProducts),
		errors.Is(err, service.ErrUnknownTable),
		errors.Is(err, service.ErrTableGrouped),
		errors.Is(err, service.ErrTableHasActiveOrder),
		errors.Is(err, service.ErrTableEmpty),
		errors.Is(err, service.ErrInvalidGuestCount),
		errors.Is(err, service.ErrNotEnoughTables),
		errors.Is(err, service.ErrTablesNotGroupable),
		errors.Is(err, service.ErrUnknownTableGroup),
		errors.Is(err, service.ErrGroupHasActiveOrder),
		errors.Is(err, service.ErrEmptyOrder),
		errors.Is(err, service.ErrUnknownMenu),
		errors.Is(err, service.ErrUnknownOrder),
		errors.Is(err, service.ErrOrderCompleted),
		errors.Is(err, service.ErrInvalidOrderStatus):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string   `json:"name"`
		Price *float64 `json:"price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Price == nil {
		http.Error(w, service.ErrInvalidPrice.Error(), http.StatusBadRequest)
		return
	}

	product := domain.Product{Name: req.Name, Price: *req.Price}
	if err := h.Products.Create(&product); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, product)
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.Products.List()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *Handler) createMenuGroup(w http.ResponseWriter, r *http.Request) {
	var group domain.MenuGroup
	if err := json.NewDecoder(r.Body).Decode(&group); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.MenuGroups.Create(&group); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, group)
}

func (h *Handler) listMenuGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.MenuGroups.List()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, groups)
}

func (h *Handler) createMenu(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name         string   `json:"name"`
		Price        *float64 `json:"price"`
		MenuGroupID  int      `json:"menu_group_id"`
		MenuProducts []struct {
			ProductID int `json:"product_id"`
			Quantity  int `json:"quantity"`
		} `json:"menu_products"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Price == nil {
		http.Error(w, service.ErrInvalidPrice.Error(), http.StatusBadRequest)
		return
	}

	menu := domain.Menu{
		Name:        req.Name,
		Price:       *req.Price,
		MenuGroupID: req.MenuGroupID,
	}
	for _, line := range req.MenuProducts {
		menu.Products = append(menu.Products, domain.MenuProduct{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}

	if err := h.Menus.Create(r.Context(), &menu); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, menu)
}

func (h *Handler) listMenus(w http.ResponseWriter, r *http.Request) {
	menus, err := h.Menus.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, menus)
}

func (h *Handler) createTable(w http.ResponseWriter, r *http.Request) {
	var table domain.OrderTable
	if err := json.NewDecoder(r.Body).Decode(&table); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Tables.Create(&table); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, table)
}

func (h *Handler) listTables(w http.ResponseWriter, r *http.Request) {
	tables, err := h.Tables.List()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, tables)
}

func (h *Handler) changeTableEmpty(w http.ResponseWriter, r *http.Request) {
	tableID, _ := strconv.Atoi(mux.Vars(r)["tableId"])

	var req struct {
		Empty *bool `json:"empty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Empty == nil {
		http.Error(w, "empty flag is required", http.StatusBadRequest)
		return
	}

	table, err := h.Tables.ChangeEmpty(tableID, *req.Empty)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, table)
}

func (h *Handler) changeTableGuests(w http.ResponseWriter, r *http.Request) {
	tableID, _ := strconv.Atoi(mux.Vars(r)["tableId"])

	var req struct {
		NumberOfGuests *int `json:"number_of_guests"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.NumberOfGuests == nil {
		http.Error(w, "number_of_guests is required", http.StatusBadRequest)
		return
	}

	table, err := h.Tables.ChangeNumberOfGuests(tableID, *req.NumberOfGuests)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, table)
}

func (h *Handler) getTableQRCode(w http.ResponseWriter, r *http.Request) {
	tableID, _ := strconv.Atoi(mux.Vars(r)["tableId"])

	qr, err := h.Tables.QRCode(tableID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if len(qr) == 0 {
		http.Error(w, "qr code not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(qr)
}

func (h *Handler) createTableGroup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OrderTableIDs []int `json:"order_table_ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	group, err := h.TableGroups.Create(req.OrderTableIDs)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, group)
}

func (h *Handler) ungroupTables(w http.ResponseWriter, r *http.Request) {
	groupID, _ := strconv.Atoi(mux.Vars(r)["groupId"])

	if err := h.TableGroups.Ungroup(groupID); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OrderTableID   *int `json:"order_table_id"`
		OrderLineItems []struct {
			MenuID   int `json:"menu_id"`
			Quantity int `json:"quantity"`
		} `json:"order_line_items"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.OrderTableID == nil {
		http.Error(w, service.ErrUnknownTable.Error(), http.StatusBadRequest)
		return
	}

	order := domain.Order{OrderTableID: *req.OrderTableID}
	for _, item := range req.OrderLineItems {
		order.LineItems = append(order.LineItems, domain.OrderLineItem{
			MenuID:   item.MenuID,
			Quantity: item.Quantity,
		})
	}

	if err := h.Orders.Create(r.Context(), &order); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.List()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) changeOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["orderId"])

	var req struct {
		OrderStatus string `json:"order_status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.Orders.ChangeStatus(r.Context(), orderID, req.OrderStatus)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, order)
}
