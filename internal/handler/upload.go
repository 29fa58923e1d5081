package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/talent-agency-service/internal/upload"
	"github.com/maxviazov/talent-agency-service/pkg/response"
)

const uploadField = "files"

type UploadHandler struct {
	store Uploader
}

func NewUploadHandler(store Uploader) *UploadHandler { return &UploadHandler{store: store} }

func (h *UploadHandler) Register(r *gin.RouterGroup, admin gin.HandlerFunc) {
	if h.store == nil {
		return
	}
	r.POST("/upload", admin, h.upload)
}

func (h *UploadHandler) upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.store.MaxRequestBytes())
	form, err := c.MultipartForm()
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			response.WriteError(c, &upload.RejectError{Message: "Request body too large"})
			return
		}
		// a missing or malformed multipart body is the same as sending no files
		response.WriteError(c, &upload.RejectError{Message: "No files uploaded"})
		return
	}
	urls, err := h.store.Save(c.Request.Context(), form.File[uploadField])
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteMessage(c, http.StatusCreated, "Files uploaded successfully", gin.H{"urls": urls})
}
