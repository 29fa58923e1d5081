package handler

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/talent-agency-service/internal/metrics"
	"github.com/maxviazov/talent-agency-service/internal/middleware"
	"github.com/maxviazov/talent-agency-service/internal/service"
)

// Uploader stores a validated batch of images and returns their public URLs.
type Uploader interface {
	Save(ctx context.Context, files []*multipart.FileHeader) ([]string, error)
	MaxRequestBytes() int64
	Dir() string
	PublicPrefix() string
}

// SessionCookie describes the cookie that mirrors the bearer token for browsers.
type SessionCookie struct {
	Name   string
	Secure bool
	TTL    time.Duration
}

// Dependencies is everything the HTTP layer needs, built once in main.
type Dependencies struct {
	Pinger       Pinger
	Models       service.ModelService
	Archives     service.ArchiveService
	Applications service.ApplicationService
	Castings     service.CastingService
	Admins       service.AdminService
	Uploads      Uploader
	Cookie       SessionCookie
	OpenAPI      []byte
}

// Register mounts all routes on the given engine.
// Public reads and submissions are open; everything else sits behind RequireAdmin.
func Register(r *gin.Engine, d Dependencies) {
	h := NewHealthHandler(d.Pinger)

	// Health probes
	r.GET("/live", h.Liveness)
	r.GET("/ready", h.Readiness)
	r.GET("/metrics", metrics.Handler())

	RegisterDocs(r, d.OpenAPI)
	if d.Uploads != nil {
		r.Static(d.Uploads.PublicPrefix(), d.Uploads.Dir())
	}

	requireAdmin := middleware.RequireAdmin(d.Admins, d.Cookie.Name)

	api := r.Group(APIPrefix)
	{
		health := api.Group("/health")
		{
			health.GET("/live", h.Liveness)
			health.GET("/ready", h.Readiness)
		}
		NewAuthHandler(d.Admins, d.Cookie).Register(api, requireAdmin)
		NewModelHandler(d.Models).Register(api, requireAdmin)
		NewArchiveHandler(d.Archives).Register(api, requireAdmin)
		NewApplicationHandler(d.Applications).Register(api, requireAdmin)
		NewCastingHandler(d.Castings).Register(api, requireAdmin)
		NewUploadHandler(d.Uploads).Register(api, requireAdmin)
	}
}
