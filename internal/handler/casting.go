package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/talent-agency-service/internal/listing"
	"github.com/maxviazov/talent-agency-service/internal/service"
	"github.com/maxviazov/talent-agency-service/pkg/response"
)

// CastingHandler serves client casting requests and their back-office follow-up.
type CastingHandler struct {
	svc service.CastingService
}

func NewCastingHandler(svc service.CastingService) *CastingHandler {
	return &CastingHandler{svc: svc}
}

func (h *CastingHandler) Register(r *gin.RouterGroup, admin gin.HandlerFunc) {
	g := r.Group("/castings")
	{
		g.POST("", h.submit)
		g.GET("", admin, h.list)
		g.GET("/:id", admin, h.getByID)
		g.PATCH("/:id", admin, h.updateStatus)
		g.DELETE("/:id", admin, h.delete)
	}
}

func (h *CastingHandler) submit(c *gin.Context) {
	var in service.CastingInput
	if !bindJSON(c, &in) {
		return
	}
	cr, err := h.svc.SubmitCasting(c.Request.Context(), in)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, cr)
}

func (h *CastingHandler) list(c *gin.Context) {
	q := listQuery(c, listing.Equal(listing.FieldStatus, c.Query(listing.FieldStatus)), adminPageSize)
	page, err := h.svc.ListCastings(c.Request.Context(), q)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WritePage(c, page)
}

func (h *CastingHandler) getByID(c *gin.Context) {
	cr, err := h.svc.GetCasting(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, cr)
}

func (h *CastingHandler) updateStatus(c *gin.Context) {
	var in service.CastingStatusInput
	if !bindJSON(c, &in) {
		return
	}
	cr, err := h.svc.UpdateCastingStatus(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, cr)
}

func (h *CastingHandler) delete(c *gin.Context) {
	if err := h.svc.DeleteCasting(c.Request.Context(), c.Param("id")); err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteMessage(c, http.StatusOK, "Casting deleted successfully", nil)
}
