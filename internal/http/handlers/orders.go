package handlers

import (
	"net/http"
	"strconv"

	"delivery-dispatch/internal/domain"
	"delivery-dispatch/internal/logx"
	"delivery-dispatch/internal/service/assignment"
	"delivery-dispatch/internal/service/lifecycle"
)

// OrderHandler serves quotes, orders and their transitions.
type OrderHandler struct {
	orders orderUsecase
	assign assignmentUsecase
	logger logx.Logger
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(logger logx.Logger, orders orderUsecase, assign assignmentUsecase) *OrderHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &OrderHandler{orders: orders, assign: assign, logger: logger}
}

// Quote handles POST /quotes.
func (h *OrderHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	q, err := h.orders.Quote(r.Context(), req.toModel())
	if err != nil {
		writeDomainError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, q)
}

// Create handles POST /orders.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	o, err := h.orders.Create(r.Context(), req.toModel())
	if err != nil {
		writeDomainError(h.logger, w, r, err)
		return
	}
	w.Header().Set("Location", "/orders/"+strconv.FormatInt(o.ID, 10))
	writeJSON(h.logger, w, r, http.StatusCreated, o)
}

// Get handles GET /orders/{id}.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	o, err := h.orders.Get(r.Context(), id)
	if err != nil {
		writeDomainError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, o)
}

// List handles GET /orders?status=&customer_id=&driver_id=&limit=&offset=.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		f   domain.OrderFilter
		err error
	)
	if f.CustomerID, err = queryInt64(r, "customer_id"); err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error())
		return
	}
	if f.DriverID, err = queryInt64(r, "driver_id"); err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error())
		return
	}
	if f.Limit, err = queryInt(r, "limit"); err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error())
		return
	}
	if f.Offset, err = queryInt(r, "offset"); err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error())
		return
	}
	if s := r.URL.Query().Get("status"); s != "" {
		st, ok := domain.ParseOrderStatus(s)
		if !ok {
			writeError(h.logger, w, r, http.StatusBadRequest, "invalid status")
			return
		}
		f.Status = &st
	}

	list, err := h.orders.List(r.Context(), f)
	if err != nil {
		writeDomainError(h.logger, w, r, err)
		return
	}
	if list == nil {
		list = []domain.Order{}
	}
	writeJSON(h.logger, w, r, http.StatusOK, list)
}

// History handles GET /orders/{id}/events.
func (h *OrderHandler) History(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	events, err := h.orders.History(r.Context(), id)
	if err != nil {
		writeDomainError(h.logger, w, r, err)
		return
	}
	if events == nil {
		events = []domain.OrderEvent{}
	}
	writeJSON(h.logger, w, r, http.StatusOK, events)
}

// Assign handles POST /orders/{id}/assign.
func (h *OrderHandler) Assign(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req assignRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	o, err := h.assign.Assign(r.Context(), assignment.AssignCommand{
		OrderID:   id,
		DriverID:  req.DriverID,
		VehicleID: req.VehicleID,
		AdminID:   req.AdminID,
	})
	h.respondOrder(w, r, o, err)
}

// StartRoute handles POST /orders/{id}/start-route.
func (h *OrderHandler) StartRoute(w http.ResponseWriter, r *http.Request) {
	id, req, ok := h.driverStep(w, r)
	if !ok {
		return
	}
	o, err := h.orders.StartRoute(r.Context(), id, req.DriverID)
	h.respondOrder(w, r, o, err)
}

// Pickup handles POST /orders/{id}/pickup.
func (h *OrderHandler) Pickup(w http.ResponseWriter, r *http.Request) {
	id, req, ok := h.driverStep(w, r)
	if !ok {
		return
	}
	o, err := h.orders.ConfirmPickup(r.Context(), id, req.DriverID)
	h.respondOrder(w, r, o, err)
}

// Complete handles POST /orders/{id}/complete.
func (h *OrderHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, req, ok := h.driverStep(w, r)
	if !ok {
		return
	}
	o, err := h.assign.CompleteDelivery(r.Context(), assignment.CompleteCommand{OrderID: id, DriverID: req.DriverID})
	h.respondOrder(w, r, o, err)
}

// Cancel handles POST /orders/{id}/cancel.
func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req cancelRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	o, err := h.assign.Cancel(r.Context(), assignment.CancelCommand{
		OrderID:   id,
		ActorRole: req.ActorRole,
		ActorID:   req.ActorID,
		Reason:    req.Reason,
	})
	h.respondOrder(w, r, o, err)
}

// Rate handles POST /orders/{id}/rating.
func (h *OrderHandler) Rate(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req rateRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	o, err := h.orders.Rate(r.Context(), lifecycle.RateCommand{
		OrderID:    id,
		CustomerID: req.CustomerID,
		Rating:     req.Rating,
		Feedback:   req.Feedback,
	})
	h.respondOrder(w, r, o, err)
}

func (h *OrderHandler) driverStep(w http.ResponseWriter, r *http.Request) (int64, driverStepRequest, bool) {
	var req driverStepRequest
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return 0, req, false
	}
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return 0, req, false
	}
	return id, req, true
}

func (h *OrderHandler) respondOrder(w http.ResponseWriter, r *http.Request, o *domain.Order, err error) {
	if err != nil {
		writeDomainError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, o)
}
