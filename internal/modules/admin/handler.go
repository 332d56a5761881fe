package admin

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"

	"finishout/internal/modules/access"
	"finishout/internal/pkg/response"
	"finishout/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes registers the login endpoint; everything else goes
// through RegisterRoutes behind the admin JWT middleware.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/admin/login", h.Login)
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/admin/projects", h.ListProjects)
	rg.POST("/admin/projects", h.CreateProject)
	rg.PUT("/admin/projects/:id", h.UpdateProject)

	rg.GET("/admin/projects/:id/apartments", h.ListApartments)
	rg.GET("/admin/projects/:id/apartments.csv", h.ExportApartmentsCSV)
	rg.POST("/admin/projects/:id/apartments", h.CreateApartment)

	rg.POST("/admin/projects/:id/categories", h.CreateCategory)
	rg.PUT("/admin/categories/:id", h.UpdateCategory)
	rg.DELETE("/admin/categories/:id", h.DeleteCategory)

	rg.POST("/admin/categories/:id/options", h.CreateOption)
	rg.PUT("/admin/options/:id", h.UpdateOption)
	rg.DELETE("/admin/options/:id", h.DeleteOption)
	rg.POST("/admin/options/:id/images", h.AddOptionImage)
	rg.DELETE("/admin/options/:id/images/:imageID", h.DeleteOptionImage)

	rg.PUT("/admin/apartments/:id/hidden-options/:optionID", h.HideOption)
	rg.DELETE("/admin/apartments/:id/hidden-options/:optionID", h.UnhideOption)
	rg.POST("/admin/apartments/:id/custom-options", h.CreateCustomOption)
	rg.DELETE("/admin/apartments/:id/custom-options/:customID", h.DeleteCustomOption)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Email and password are required")
		return
	}
	token, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if err == ErrUnauthorized {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid credentials")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Login failed")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"token": token})
}

func (h *Handler) ListProjects(c *gin.Context) {
	projects, err := h.service.ListProjects(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"projects": projects})
}

func (h *Handler) CreateProject(c *gin.Context) {
	var req ProjectRequest
	if !h.bind(c, &req) {
		return
	}
	p, err := h.service.CreateProject(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"project": p})
}

func (h *Handler) UpdateProject(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var req ProjectRequest
	if !h.bind(c, &req) {
		return
	}
	p, err := h.service.UpdateProject(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"project": p})
}

func (h *Handler) ListApartments(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	apartments, err := h.service.ListApartments(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"apartments": apartments})
}

// ExportApartmentsCSV lists a project's apartments with access code and
// completion state, for handing codes out to customers.
func (h *Handler) ExportApartmentsCSV(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	apartments, err := h.service.ListApartments(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	cw.Comma = ';'
	_ = cw.Write([]string{"Wohnung", "Zugangscode", "Status", "Kunde", "Abgeschlossen am"})
	for _, a := range apartments {
		completed := ""
		if a.CompletedAt != nil {
			completed = a.CompletedAt.Format("02.01.2006 15:04")
		}
		_ = cw.Write([]string{a.Name, a.AccessCode, string(a.Status), a.CustomerName, completed})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to render CSV")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="wohnungen.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func (h *Handler) CreateApartment(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var req ApartmentRequest
	if !h.bind(c, &req) {
		return
	}
	a, err := h.service.CreateApartment(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"apartment": a})
}

func (h *Handler) CreateCategory(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var req CategoryRequest
	if !h.bind(c, &req) {
		return
	}
	cat, err := h.service.CreateCategory(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"category": cat})
}

func (h *Handler) UpdateCategory(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var req CategoryRequest
	if !h.bind(c, &req) {
		return
	}
	cat, err := h.service.UpdateCategory(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"category": cat})
}

func (h *Handler) DeleteCategory(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteCategory(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

func (h *Handler) CreateOption(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var req OptionRequest
	if !h.bind(c, &req) {
		return
	}
	o, err := h.service.CreateOption(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"option": o})
}

func (h *Handler) UpdateOption(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var req OptionRequest
	if !h.bind(c, &req) {
		return
	}
	o, err := h.service.UpdateOption(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"option": o})
}

func (h *Handler) DeleteOption(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteOption(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

func (h *Handler) AddOptionImage(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var req OptionImageRequest
	if !h.bind(c, &req) {
		return
	}
	img, err := h.service.AddOptionImage(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"image": img})
}

func (h *Handler) DeleteOptionImage(c *gin.Context) {
	optionID, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	imageID, ok := h.pathID(c, "imageID")
	if !ok {
		return
	}
	if err := h.service.DeleteOptionImage(c.Request.Context(), optionID, imageID); err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": imageID})
}

func (h *Handler) HideOption(c *gin.Context) {
	apartmentID, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	optionID, ok := h.pathID(c, "optionID")
	if !ok {
		return
	}
	if err := h.service.HideOption(c.Request.Context(), apartmentID, optionID); err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"hidden": optionID})
}

func (h *Handler) UnhideOption(c *gin.Context) {
	apartmentID, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	optionID, ok := h.pathID(c, "optionID")
	if !ok {
		return
	}
	if err := h.service.UnhideOption(c.Request.Context(), apartmentID, optionID); err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"unhidden": optionID})
}

func (h *Handler) CreateCustomOption(c *gin.Context) {
	apartmentID, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var req CustomOptionRequest
	if !h.bind(c, &req) {
		return
	}
	custom, err := h.service.CreateCustomOption(c.Request.Context(), apartmentID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"custom_option": custom})
}

func (h *Handler) DeleteCustomOption(c *gin.Context) {
	apartmentID, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	customID, ok := h.pathID(c, "customID")
	if !ok {
		return
	}
	if err := h.service.DeleteCustomOption(c.Request.Context(), apartmentID, customID); err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": customID})
}

func (h *Handler) pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id in path")
		return 0, false
	}
	return id, true
}

func (h *Handler) bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return false
	}
	if details := validator.Validate(req); details != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid fields", details)
		return false
	}
	return true
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch err {
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Entity not found")
	case ErrConflict:
		response.Error(c, http.StatusConflict, "CONFLICT", "Duplicate name within project")
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Category does not belong to the apartment's project")
	case access.ErrGenerationExhausted:
		response.Error(c, http.StatusServiceUnavailable, "GENERATION_EXHAUSTED", "Could not generate a unique access code, try again")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Operation failed")
	}
}
