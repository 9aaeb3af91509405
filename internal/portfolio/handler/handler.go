package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/techfolio/portfolio-api/internal/apperrors"
	"github.com/techfolio/portfolio-api/internal/portfolio"
	"github.com/techfolio/portfolio-api/internal/portfolio/repository"
	"github.com/techfolio/portfolio-api/internal/portfolio/seed"
	"github.com/techfolio/portfolio-api/internal/store"
	"github.com/techfolio/portfolio-api/pkg/logger"
)

// Read limits per collection.
const (
	skillsLimit     = 100
	projectsLimit   = 100
	experienceLimit = 50
	educationLimit  = 50
)

// Archiver keeps an out-of-band copy of accepted contact messages.
type Archiver interface {
	ArchiveMessage(ctx context.Context, doc store.Document) error
}

type Handler struct {
	store    store.Store
	repos    *repository.Set
	seeder   *seed.Seeder
	archiver Archiver
}

type Option func(*Handler)

// WithArchiver enables best-effort archiving of contact messages.
func WithArchiver(a Archiver) Option {
	return func(h *Handler) { h.archiver = a }
}

func New(s store.Store, opts ...Option) *Handler {
	repos := repository.NewSet(s)
	h := &Handler{store: s, repos: repos, seeder: seed.New(repos)}
	for _, o := range opts {
		o(h)
	}
	return h
}

// Register mounts the portfolio routes. contactMiddleware runs in front of
// POST /contact only (rate limiting).
func (h *Handler) Register(r gin.IRouter, contactMiddleware ...gin.HandlerFunc) {
	r.GET("/", h.Root)
	r.GET("/test", h.Test)
	r.POST("/seed", h.Seed)

	r.GET("/profile", h.Profile)
	r.GET("/skills", list(h.repos.Skills, skillsLimit))
	r.GET("/projects", list(h.repos.Projects, projectsLimit))
	r.GET("/experience", list(h.repos.Experiences, experienceLimit))
	r.GET("/education", list(h.repos.Education, educationLimit))

	contact := append(append([]gin.HandlerFunc{}, contactMiddleware...), h.Contact)
	r.POST("/contact", contact...)
}

func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Test is a connectivity probe. Storage failures are reported in the body;
// the probe itself always answers 200.
func (h *Handler) Test(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.store.Ping(ctx); err != nil {
		logger.Warnf("db probe: ping failed: %v", err)
		c.JSON(http.StatusOK, gin.H{"status": "error", "detail": err.Error()})
		return
	}
	names, err := h.store.CollectionNames(ctx)
	if err != nil {
		logger.Warnf("db probe: list collections failed: %v", err)
		c.JSON(http.StatusOK, gin.H{"status": "error", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "connected", "collections": names})
}

func (h *Handler) Seed(c *gin.Context) {
	res, err := h.seeder.Run(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	logger.Infof("seed finished: inserted=%v", res.Inserted)
	c.JSON(http.StatusOK, gin.H{"seeded": res.Seeded})
}

// Profile returns the first profile, or {} when none exists.
func (h *Handler) Profile(c *gin.Context) {
	doc, found, err := h.repos.Profiles.First(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if !found {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, doc)
}

func list[T portfolio.Entity](repo *repository.Repository[T], limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		docs, err := repo.List(c.Request.Context(), limit)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, docs)
	}
}

// Contact stores a contact-form message. A failed or empty create is a
// server error.
func (h *Handler) Contact(c *gin.Context) {
	var msg portfolio.Message
	if err := c.ShouldBindJSON(&msg); err != nil {
		respondError(c, portfolio.AsValidationError(err))
		return
	}
	saved, err := h.repos.Messages.Create(c.Request.Context(), msg)
	if err != nil && apperrors.KindOf(err) == apperrors.KindValidation {
		respondError(c, err)
		return
	}
	if err != nil || len(saved) == 0 {
		if err == nil {
			err = errors.New("create returned no document")
		}
		logger.Errorf("contact: message not saved: %v", err)
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Message not saved"})
		return
	}
	if h.archiver != nil {
		if err := h.archiver.ArchiveMessage(c.Request.Context(), saved); err != nil {
			logger.Warnf("contact: archive message %s: %v", saved.ID(), err)
		}
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func respondError(c *gin.Context, err error) {
	var ve *apperrors.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": ve.Issues})
		return
	}
	logger.Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	_ = c.Error(err)
	c.JSON(apperrors.HTTPStatus(err), gin.H{"error": "internal server error"})
}
