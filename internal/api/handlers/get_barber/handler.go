package get_barber

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/fadehouse/booking-service/internal/api/handlers"
	"github.com/fadehouse/booking-service/internal/api/handlers/list_barbers"
	"github.com/fadehouse/booking-service/internal/infra/storage/catalog"
)

const (
	msgInvalidBarberID = "invalid barber id, expected UUID"
	msgBarberNotFound  = "barber not found"
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

// Handle GET /api/v1/barbers/{barberId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	barberID, err := uuid.Parse(mux.Vars(r)["barberId"])
	if err != nil {
		h.logger.Warn("GET /barbers/{id} - Invalid barber id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	barber, err := h.repo.GetBarberByID(r.Context(), barberID)
	if err != nil {
		if errors.Is(err, catalog.ErrBarberNotFound) {
			handlers.RespondNotFound(w, msgBarberNotFound)
			return
		}
		h.logger.Error("GET /barbers/{id} - Internal error: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, list_barbers.FromDomainBarber(barber))
}
