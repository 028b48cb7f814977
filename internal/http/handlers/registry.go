package handlers

import (
	"net/http"
	"strconv"

	"delivery-dispatch/internal/domain"
	"delivery-dispatch/internal/logx"
)

// RegistryHandler serves driver and vehicle endpoints.
type RegistryHandler struct {
	uc     registryUsecase
	logger logx.Logger
}

// NewRegistryHandler creates a new RegistryHandler.
func NewRegistryHandler(logger logx.Logger, uc registryUsecase) *RegistryHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &RegistryHandler{uc: uc, logger: logger}
}

// CreateDriver handles POST /drivers.
func (h *RegistryHandler) CreateDriver(w http.ResponseWriter, r *http.Request) {
	var req createDriverRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	id, err := h.uc.CreateDriver(r.Context(), req.toModel())
	if err != nil {
		writeDomainError(h.logger, w, r, err)
		return
	}
	w.Header().Set("Location", "/drivers/"+strconv.FormatInt(id, 10))
	writeJSON(h.logger, w, r, http.StatusCreated, idResponse{ID: id})
}

// GetDriver handles GET /drivers/{id}.
func (h *RegistryHandler) GetDriver(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	d, err := h.uc.GetDriver(r.Context(), id)
	if err != nil {
		writeDomainError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, d)
}

// ListDrivers handles GET /drivers?status=.
func (h *RegistryHandler) ListDrivers(w http.ResponseWriter, r *http.Request) {
	var status *domain.DriverStatus
	if s := r.URL.Query().Get("status"); s != "" {
		st := domain.DriverStatus(s)
		status = &st
	}
	list, err := h.uc.ListDrivers(r.Context(), status)
	h.respondDrivers(w, r, list, err)
}

// ListAvailableDrivers handles GET /drivers/available.
func (h *RegistryHandler) ListAvailableDrivers(w http.ResponseWriter, r *http.Request) {
	list, err := h.uc.ListAvailableDrivers(r.Context())
	h.respondDrivers(w, r, list, err)
}

// UpdateDriver handles PATCH /drivers/{id}.
func (h *RegistryHandler) UpdateDriver(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req updateDriverRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	if err := h.uc.UpdateDriverProfile(r.Context(), req.toModel(id)); err != nil {
		writeDomainError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// SetDuty handles POST /drivers/{id}/duty.
func (h *RegistryHandler) SetDuty(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req dutyRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	d, err := h.uc.SetDriverDuty(r.Context(), id, *req.OnDuty)
	if err != nil {
		writeDomainError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, d)
}

// DeleteDriver handles DELETE /drivers/{id}.
func (h *RegistryHandler) DeleteDriver(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.uc.DeleteDriver(r.Context(), id); err != nil {
		writeDomainError(h.logger, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreateVehicle handles POST /vehicles.
func (h *RegistryHandler) CreateVehicle(w http.ResponseWriter, r *http.Request) {
	var req createVehicleRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	id, err := h.uc.CreateVehicle(r.Context(), req.toModel())
	if err != nil {
		writeDomainError(h.logger, w, r, err)
		return
	}
	w.Header().Set("Location", "/vehicles/"+strconv.FormatInt(id, 10))
	writeJSON(h.logger, w, r, http.StatusCreated, idResponse{ID: id})
}

// GetVehicle handles GET /vehicles/{id}.
func (h *RegistryHandler) GetVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	v, err := h.uc.GetVehicle(r.Context(), id)
	if err != nil {
		writeDomainError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, v)
}

// ListVehicles handles GET /vehicles?status=&class=.
func (h *RegistryHandler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var (
		status *domain.VehicleStatus
		class  *domain.VehicleClass
	)
	if s := q.Get("status"); s != "" {
		st := domain.VehicleStatus(s)
		status = &st
	}
	if s := q.Get("class"); s != "" {
		c := domain.VehicleClass(s)
		class = &c
	}
	list, err := h.uc.ListVehicles(r.Context(), status, class)
	h.respondVehicles(w, r, list, err)
}

// ListAvailableVehicles handles GET /vehicles/available?class=.
func (h *RegistryHandler) ListAvailableVehicles(w http.ResponseWriter, r *http.Request) {
	var class *domain.VehicleClass
	if s := r.URL.Query().Get("class"); s != "" {
		c := domain.VehicleClass(s)
		class = &c
	}
	list, err := h.uc.ListAvailableVehicles(r.Context(), class)
	h.respondVehicles(w, r, list, err)
}

// SetMaintenance handles POST /vehicles/{id}/maintenance.
func (h *RegistryHandler) SetMaintenance(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req maintenanceRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	v, err := h.uc.SetVehicleMaintenance(r.Context(), id, *req.Maintenance)
	if err != nil {
		writeDomainError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, v)
}

// DeleteVehicle handles DELETE /vehicles/{id}.
func (h *RegistryHandler) DeleteVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.uc.DeleteVehicle(r.Context(), id); err != nil {
		writeDomainError(h.logger, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *RegistryHandler) respondDrivers(w http.ResponseWriter, r *http.Request, list []domain.Driver, err error) {
	if err != nil {
		writeDomainError(h.logger, w, r, err)
		return
	}
	if list == nil {
		list = []domain.Driver{}
	}
	writeJSON(h.logger, w, r, http.StatusOK, list)
}

func (h *RegistryHandler) respondVehicles(w http.ResponseWriter, r *http.Request, list []domain.Vehicle, err error) {
	if err != nil {
		writeDomainError(h.logger, w, r, err)
		return
	}
	if list == nil {
		list = []domain.Vehicle{}
	}
	writeJSON(h.logger, w, r, http.StatusOK, list)
}
