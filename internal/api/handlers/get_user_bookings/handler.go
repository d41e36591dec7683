package get_user_bookings

import (
	"net/http"

	"github.com/fadehouse/booking-service/internal/api/handlers"
	"github.com/fadehouse/booking-service/internal/api/middleware"
	"github.com/fadehouse/booking-service/internal/service/bookings/models"
)

const msgUnauthorized = "authentication required"

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/user
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.GetUserBookings(r.Context(), &models.GetUserBookingsRequest{
		UserID: userID,
	})
	if err != nil {
		h.logger.Error("GET /bookings/user - Internal error: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	// Клиент получает плоский массив бронирований
	handlers.RespondJSON(w, http.StatusOK, result.Bookings)
}
