package list_services

import (
	"net/http"

	"github.com/fadehouse/booking-service/internal/api/handlers"
)

type Handler struct {
	repo   CatalogRepository
	logger Logger
}

func NewHandler(repo CatalogRepository, logger Logger) *Handler {
	return &Handler{
		repo:   repo,
		logger: logger,
	}
}

// Handle GET /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	services, err := h.repo.ListServices(r.Context())
	if err != nil {
		h.logger.Error("GET /services - Internal error: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainServiceList(services))
}
