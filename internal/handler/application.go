package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/talent-agency-service/internal/listing"
	"github.com/maxviazov/talent-agency-service/internal/service"
	"github.com/maxviazov/talent-agency-service/pkg/response"
)

// ApplicationHandler serves the public application form and its back-office review.
type ApplicationHandler struct {
	svc service.ApplicationService
}

func NewApplicationHandler(svc service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{svc: svc}
}

func (h *ApplicationHandler) Register(r *gin.RouterGroup, admin gin.HandlerFunc) {
	g := r.Group("/applications")
	{
		g.POST("", h.submit)
		g.GET("", admin, h.list)
		g.GET("/:id", admin, h.getByID)
		g.PATCH("/:id", admin, h.updateStatus)
		g.DELETE("/:id", admin, h.delete)
	}
}

func (h *ApplicationHandler) submit(c *gin.Context) {
	var in service.ApplicationInput
	if !bindJSON(c, &in) {
		return
	}
	a, err := h.svc.SubmitApplication(c.Request.Context(), in)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, a)
}

func (h *ApplicationHandler) list(c *gin.Context) {
	q := listQuery(c, listing.Equal(listing.FieldStatus, c.Query(listing.FieldStatus)), adminPageSize)
	page, err := h.svc.ListApplications(c.Request.Context(), q)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WritePage(c, page)
}

func (h *ApplicationHandler) getByID(c *gin.Context) {
	a, err := h.svc.GetApplication(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, a)
}

func (h *ApplicationHandler) updateStatus(c *gin.Context) {
	var in service.ApplicationStatusInput
	if !bindJSON(c, &in) {
		return
	}
	a, err := h.svc.UpdateApplicationStatus(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, a)
}

func (h *ApplicationHandler) delete(c *gin.Context) {
	if err := h.svc.DeleteApplication(c.Request.Context(), c.Param("id")); err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteMessage(c, http.StatusOK, "Application deleted successfully", nil)
}
