package selection

import (
	"net/http"
	"strconv"

	"finishout/internal/domain"
	"finishout/internal/modules/access"
	"finishout/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	gate    *access.Service
	service *Service
}

func NewHandler(gate *access.Service, service *Service) *Handler {
	return &Handler{gate: gate, service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.PUT("/configurator/:code/selections", h.Submit)
}

// Submit saves the posted choices. With final=false each entry is an
// independent draft upsert; with final=true the whole set is committed
// atomically and the apartment is locked.
func (h *Handler) Submit(c *gin.Context) {
	apt, err := h.gate.Resolve(c.Request.Context(), c.Param("code"))
	if err != nil {
		if err == access.ErrNotFound {
			response.Error(c, http.StatusNotFound, "INVALID_CODE", "Unknown access code")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to resolve access code")
		return
	}

	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	choices := make(map[int64]domain.OptionRef, len(req.Selections))
	for key, ref := range req.Selections {
		categoryID, err := strconv.ParseInt(key, 10, 64)
		if err != nil || categoryID <= 0 {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid category id: "+key)
			return
		}
		choices[categoryID] = ref
	}

	if req.Final {
		err = h.service.CommitAll(c.Request.Context(), apt.ID, choices, req.CustomerName)
	} else {
		for categoryID, ref := range choices {
			if err = h.service.SetDraft(c.Request.Context(), apt.ID, categoryID, ref); err != nil {
				break
			}
		}
	}

	if err != nil {
		switch err {
		case ErrLocked:
			response.Error(c, http.StatusConflict, "LOCKED", "Apartment is already completed")
		case ErrInvalidSelection:
			response.Error(c, http.StatusBadRequest, "INVALID_SELECTION", "Chosen option is not selectable for this apartment")
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid option reference")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Apartment or category not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to save selections")
		}
		return
	}

	status := domain.ApartmentInProgress
	if req.Final {
		status = domain.ApartmentCompleted
	}
	response.Success(c, http.StatusOK, gin.H{
		"apartment_id": apt.ID,
		"status":       status,
		"final":        req.Final,
	})
}
