package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/talent-agency-service/internal/listing"
	"github.com/maxviazov/talent-agency-service/internal/service"
	"github.com/maxviazov/talent-agency-service/pkg/response"
)

type ModelHandler struct {
	svc service.ModelService
}

func NewModelHandler(svc service.ModelService) *ModelHandler { return &ModelHandler{svc: svc} }

func (h *ModelHandler) Register(r *gin.RouterGroup, admin gin.HandlerFunc) {
	g := r.Group("/models")
	{
		g.GET("", h.list)
		g.GET("/slug/:slug", h.getBySlug)
		g.GET("/:id", h.getByID)
		g.POST("", admin, h.create)
		g.PATCH("/:id", admin, h.update)
		g.DELETE("/:id", admin, h.delete)
	}
}

func (h *ModelHandler) list(c *gin.Context) {
	q := listQuery(c, listing.Category(c.Query(listing.FieldCategory)), publicPageSize)
	page, err := h.svc.ListModels(c.Request.Context(), q)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WritePage(c, page)
}

func (h *ModelHandler) getByID(c *gin.Context) {
	m, err := h.svc.GetModel(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, m)
}

func (h *ModelHandler) getBySlug(c *gin.Context) {
	m, err := h.svc.GetModelBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, m)
}

func (h *ModelHandler) create(c *gin.Context) {
	var in service.ModelInput
	if !bindJSON(c, &in) {
		return
	}
	m, err := h.svc.CreateModel(c.Request.Context(), in)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, m)
}

func (h *ModelHandler) update(c *gin.Context) {
	var in service.ModelPatch
	if !bindJSON(c, &in) {
		return
	}
	m, err := h.svc.UpdateModel(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, m)
}

func (h *ModelHandler) delete(c *gin.Context) {
	if err := h.svc.DeleteModel(c.Request.Context(), c.Param("id")); err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteMessage(c, http.StatusOK, "Model deleted successfully", nil)
}
