package handlers

import (
	"errors"
	"net/http"

	"delivery-dispatch/internal/domain"
	"delivery-dispatch/internal/logx"
)

// NotificationHandler serves a user's inbox. The inbox is picked by the
// user_id and role query parameters.
type NotificationHandler struct {
	uc     inboxUsecase
	logger logx.Logger
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(logger logx.Logger, uc inboxUsecase) *NotificationHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &NotificationHandler{uc: uc, logger: logger}
}

func inboxFromQuery(r *http.Request) (int64, domain.Role, error) {
	id, err := queryInt64(r, "user_id")
	if err != nil || id == nil || *id <= 0 {
		return 0, "", errors.New("invalid user_id")
	}
	role := domain.Role(r.URL.Query().Get("role"))
	if !role.Valid() {
		return 0, "", errors.New("invalid role")
	}
	return *id, role, nil
}

// List handles GET /notifications?user_id=&role=&unread=&limit=.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, role, err := inboxFromQuery(r)
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error())
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error())
		return
	}
	unread := r.URL.Query().Get("unread") == "true"

	list, err := h.uc.List(r.Context(), userID, role, unread, limit)
	if err != nil {
		writeDomainError(h.logger, w, r, err)
		return
	}
	if list == nil {
		list = []domain.Notification{}
	}
	writeJSON(h.logger, w, r, http.StatusOK, list)
}

// UnreadCount handles GET /notifications/unread-count.
func (h *NotificationHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	userID, role, err := inboxFromQuery(r)
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error())
		return
	}
	n, err := h.uc.UnreadCount(r.Context(), userID, role)
	if err != nil {
		writeDomainError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, countResponse{Count: n})
}

// MarkRead handles POST /notifications/{id}/read.
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	userID, role, err := inboxFromQuery(r)
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.uc.MarkRead(r.Context(), userID, role, id); err != nil {
		writeDomainError(h.logger, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// MarkAllRead handles POST /notifications/read-all.
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	userID, role, err := inboxFromQuery(r)
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error())
		return
	}
	n, err := h.uc.MarkAllRead(r.Context(), userID, role)
	if err != nil {
		writeDomainError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, countResponse{Count: n})
}
