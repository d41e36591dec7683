package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/fadehouse/booking-service/internal/api/handlers"
	"github.com/fadehouse/booking-service/internal/domain"
	getAvailableSlots "github.com/fadehouse/booking-service/internal/usecase/get_available_slots"
)

const (
	msgInvalidDate     = "invalid date, expected YYYY-MM-DD"
	msgInvalidBarberID = "invalid barberId query parameter"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/slots/{date}?barberId={uuid}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	date, err := time.ParseInLocation(domain.DateFormat, vars["date"], time.Local)
	if err != nil {
		h.logger.Warn("GET /bookings/slots - Invalid date %q: %v", vars["date"], err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	var barberID *uuid.UUID
	if raw := r.URL.Query().Get("barberId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			h.logger.Warn("GET /bookings/slots - Invalid barberId %q: %v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidBarberID)
			return
		}
		barberID = &id
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		Date:     date,
		BarberID: barberID,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /bookings/slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /bookings/slots - Internal error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
