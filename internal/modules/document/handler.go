package document

import (
	"bytes"
	"net/http"

	"finishout/internal/modules/access"
	"finishout/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	gate     *access.Service
	composer *Composer
}

func NewHandler(gate *access.Service, composer *Composer) *Handler {
	return &Handler{gate: gate, composer: composer}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/configurator/:code/summary", h.Summary)
	rg.GET("/configurator/:code/summary.csv", h.SummaryCSV)
	rg.GET("/configurator/:code/summary.html", h.SummaryHTML)
}

func (h *Handler) compose(c *gin.Context) (*Summary, bool) {
	apt, err := h.gate.Resolve(c.Request.Context(), c.Param("code"))
	if err != nil {
		if err == access.ErrNotFound {
			response.Error(c, http.StatusNotFound, "INVALID_CODE", "Unknown access code")
		} else {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to resolve access code")
		}
		return nil, false
	}

	sum, err := h.composer.Compose(c.Request.Context(), apt.ID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compose summary")
		return nil, false
	}
	return sum, true
}

func (h *Handler) Summary(c *gin.Context) {
	sum, ok := h.compose(c)
	if !ok {
		return
	}
	response.Success(c, http.StatusOK, sum)
}

func (h *Handler) SummaryCSV(c *gin.Context) {
	sum, ok := h.compose(c)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sum); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to render CSV")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="bemusterung_`+sum.ApartmentName+`.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func (h *Handler) SummaryHTML(c *gin.Context) {
	sum, ok := h.compose(c)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := WriteHTML(&buf, sum); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to render HTML")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
