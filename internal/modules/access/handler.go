package access

import (
	"context"
	"net/http"
	"time"

	"finishout/internal/domain"
	"finishout/internal/modules/catalog"
	"finishout/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// SelectionReader is the read half of the selection store the lookup
// endpoint needs.
type SelectionReader interface {
	GetAll(ctx context.Context, apartmentID int64) (map[int64]domain.OptionRef, error)
}

type Handler struct {
	gate       *Service
	projects   ProjectRepository
	resolver   *catalog.Service
	selections SelectionReader
}

func NewHandler(gate *Service, projects ProjectRepository, resolver *catalog.Service, selections SelectionReader) *Handler {
	return &Handler{
		gate:       gate,
		projects:   projects,
		resolver:   resolver,
		selections: selections,
	}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/configurator/:code", h.Lookup)
}

type apartmentDTO struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Status       string     `json:"status"`
	CustomerName string     `json:"customer_name,omitempty"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
}

type projectDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	IntroText string `json:"intro_text,omitempty"`
}

type lookupResponse struct {
	Apartment  apartmentDTO               `json:"apartment"`
	Project    projectDTO                 `json:"project"`
	Categories []catalog.ResolvedCategory `json:"categories"`
	// Selections and Defaults are keyed by category id. Defaults carry the
	// pre-selection the client shows before any explicit choice.
	Selections map[int64]domain.OptionRef `json:"selections"`
	Defaults   map[int64]domain.OptionRef `json:"defaults"`
}

// Lookup resolves an access code into everything the customer wizard needs:
// apartment and project metadata, the effective catalog per category, the
// recorded selections and the default pre-selections.
func (h *Handler) Lookup(c *gin.Context) {
	apt, err := h.gate.Resolve(c.Request.Context(), c.Param("code"))
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "INVALID_CODE", "Unknown access code")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to resolve access code")
		return
	}

	project, err := h.projects.GetByID(c.Request.Context(), apt.ProjectID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load project")
		return
	}

	cats, err := h.resolver.ResolveAll(c.Request.Context(), apt.ID, apt.ProjectID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to resolve catalog")
		return
	}

	sels, err := h.selections.GetAll(c.Request.Context(), apt.ID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load selections")
		return
	}

	defaults := make(map[int64]domain.OptionRef, len(cats))
	for _, rc := range cats {
		if _, chosen := sels[rc.Category.ID]; chosen {
			continue
		}
		if d := catalog.DefaultOption(rc.Options); d != nil {
			defaults[rc.Category.ID] = d.Ref
		}
	}

	response.Success(c, http.StatusOK, lookupResponse{
		Apartment: apartmentDTO{
			ID:           apt.ID,
			Name:         apt.Name,
			Status:       string(apt.Status),
			CustomerName: apt.CustomerName,
			CompletedAt:  apt.CompletedAt,
		},
		Project: projectDTO{
			ID:        project.ID,
			Name:      project.Name,
			Address:   project.Address,
			IntroText: project.IntroText,
		},
		Categories: cats,
		Selections: sels,
		Defaults:   defaults,
	})
}
