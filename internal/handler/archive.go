package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/talent-agency-service/internal/listing"
	"github.com/maxviazov/talent-agency-service/internal/service"
	"github.com/maxviazov/talent-agency-service/pkg/response"
)

type ArchiveHandler struct {
	svc service.ArchiveService
}

func NewArchiveHandler(svc service.ArchiveService) *ArchiveHandler { return &ArchiveHandler{svc: svc} }

func (h *ArchiveHandler) Register(r *gin.RouterGroup, admin gin.HandlerFunc) {
	g := r.Group("/archives")
	{
		g.GET("", h.list)
		g.GET("/:id", h.getByID)
		g.POST("", admin, h.create)
		g.PATCH("/:id", admin, h.update)
		g.DELETE("/:id", admin, h.delete)
	}
}

func (h *ArchiveHandler) list(c *gin.Context) {
	q := listQuery(c, listing.Equal(listing.FieldModelID, c.Query(listing.FieldModelID)), publicPageSize)
	page, err := h.svc.ListArchives(c.Request.Context(), q)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WritePage(c, page)
}

func (h *ArchiveHandler) getByID(c *gin.Context) {
	a, err := h.svc.GetArchive(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, a)
}

func (h *ArchiveHandler) create(c *gin.Context) {
	var in service.ArchiveInput
	if !bindJSON(c, &in) {
		return
	}
	a, err := h.svc.CreateArchive(c.Request.Context(), in)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, a)
}

func (h *ArchiveHandler) update(c *gin.Context) {
	var in service.ArchivePatch
	if !bindJSON(c, &in) {
		return
	}
	a, err := h.svc.UpdateArchive(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, a)
}

func (h *ArchiveHandler) delete(c *gin.Context) {
	if err := h.svc.DeleteArchive(c.Request.Context(), c.Param("id")); err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteMessage(c, http.StatusOK, "Archive deleted successfully", nil)
}
