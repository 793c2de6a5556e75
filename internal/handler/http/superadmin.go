package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/superadmin"
	"github.com/dayflow-hr/hrms-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

// SuperAdminHandler serves the platform console. Every route is mounted
// behind middleware.SuperAdminOnly.
type SuperAdminHandler interface {
	ListCompanies(w http.ResponseWriter, r *http.Request)
	GetCompanyDetails(w http.ResponseWriter, r *http.Request)
	DeleteCompany(w http.ResponseWriter, r *http.Request)
	ListAdmins(w http.ResponseWriter, r *http.Request)
	GetSystemStats(w http.ResponseWriter, r *http.Request)
	UpdateUser(w http.ResponseWriter, r *http.Request)
}

type superAdminHandlerImpl struct {
	superAdminService superadmin.SuperAdminService
}

func NewSuperAdminHandler(superAdminService superadmin.SuperAdminService) SuperAdminHandler {
	return &superAdminHandlerImpl{superAdminService: superAdminService}
}

func (h *superAdminHandlerImpl) ListCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := h.superAdminService.ListCompanies(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, companies)
}

func (h *superAdminHandlerImpl) GetCompanyDetails(w http.ResponseWriter, r *http.Request) {
	details, err := h.superAdminService.GetCompanyDetails(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, details)
}

func (h *superAdminHandlerImpl) DeleteCompany(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.superAdminService.DeleteCompany(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Company deleted", "company_id", deleted.CompanyID, "deleted_users", deleted.DeletedUsers)
	response.SuccessWithMessage(w, "Company and all associated data deleted successfully", deleted)
}

func (h *superAdminHandlerImpl) ListAdmins(w http.ResponseWriter, r *http.Request) {
	admins, err := h.superAdminService.ListAdmins(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, admins)
}

func (h *superAdminHandlerImpl) GetSystemStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.superAdminService.GetSystemStats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

func (h *superAdminHandlerImpl) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req superadmin.UpdateAnyUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateAnyUser decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.superAdminService.UpdateUser(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User updated successfully", updated)
}
