package projects

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trekfolio/brochure-backend/internal/auth"
	"github.com/trekfolio/brochure-backend/internal/projects/domain"
)

type Handler struct {
	sessions *Manager
}

func Register(rg *gin.RouterGroup, sessions *Manager) {
	h := &Handler{sessions: sessions}

	rg.GET("", h.list)
	rg.POST("", h.create)
	rg.POST("/default", h.createDefault)
	rg.GET("/drafts", h.pendingDrafts)
	rg.GET("/:id", h.get)
	rg.PATCH("/:id", h.update)
	rg.DELETE("/:id", h.delete)
	rg.PUT("/:id/draft", h.putDraft)
	rg.GET("/:id/draft", h.getDraft)
	rg.DELETE("/:id/draft", h.deleteDraft)
}

// RegisterSignout wires the sign-out hook that discards the caller's
// session. The cache is rebuilt from scratch on the next request.
func RegisterSignout(rg *gin.RouterGroup, sessions *Manager) {
	rg.POST("/signout", func(c *gin.Context) {
		sessions.Drop(auth.UserFirebaseUID(c))
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
}

func (h *Handler) session(c *gin.Context) (*Session, bool) {
	sess, err := h.sessions.Acquire(c.Request.Context(), auth.UserFirebaseUID(c))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": err.Error()})
		return nil, false
	}
	return sess, true
}

func (h *Handler) list(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	resp := gin.H{"ok": true, "projects": sess.Store.Projects()}
	if err := sess.Store.LoadErr(); err != nil {
		// Degrade to an empty list with the error surfaced, never a crash.
		resp["error"] = err.Error()
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) create(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	var req domain.ProjectCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	p, err := sess.Store.Add(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "project": p})
}

func (h *Handler) createDefault(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	p, err := sess.Store.CreateDefaultProject(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "project": p})
}

func (h *Handler) get(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	p, err := sess.Store.Fetch(c.Request.Context(), c.Param("id"))
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

func (h *Handler) update(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	var patch domain.ProjectUpdate
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	if err := sess.Store.Update(c.Request.Context(), c.Param("id"), patch); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) delete(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	if err := sess.Store.Remove(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) putDraft(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	var patch domain.ProjectUpdate
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	id := c.Param("id")
	if err := sess.SaveDraft(c.Request.Context(), id, patch); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	saver := sess.DraftSaver(id)
	resp := gin.H{"ok": true, "pending": true, "isSaving": saver.IsSaving()}
	if last := saver.LastSaved(); !last.IsZero() {
		resp["lastSaved"] = domain.FormatTime(last)
	}
	c.JSON(http.StatusAccepted, resp)
}

func (h *Handler) getDraft(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	patch, err := sess.Draft(c.Request.Context(), c.Param("id"))
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "no pending draft"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "draft": patch})
}

func (h *Handler) deleteDraft(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	if err := sess.DiscardDraft(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) pendingDrafts(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	ids, err := sess.PendingDraftIDs(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	if ids == nil {
		ids = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "drafts": ids})
}
