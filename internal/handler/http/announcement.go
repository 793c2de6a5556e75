package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/announcement"
	"github.com/dayflow-hr/hrms-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AnnouncementHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type AnnouncementHandlerImpl struct {
	announcementService announcement.AnnouncementService
}

func NewAnnouncementHandler(announcementService announcement.AnnouncementService) AnnouncementHandler {
	return &AnnouncementHandlerImpl{
		announcementService: announcementService,
	}
}

// Create implements AnnouncementHandler.
func (h *AnnouncementHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req announcement.CreateAnnouncementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateAnnouncement decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.announcementService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Announcement published", created)
}

// List implements AnnouncementHandler.
func (h *AnnouncementHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.announcementService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, items)
}

// Update implements AnnouncementHandler.
func (h *AnnouncementHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req announcement.UpdateAnnouncementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateAnnouncement decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.announcementService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Announcement updated", updated)
}

// Delete implements AnnouncementHandler.
func (h *AnnouncementHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.announcementService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Announcement removed", nil)
}
