package assets

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trekfolio/brochure-backend/internal/auth"
)

type uploadReq struct {
	DataURI string `json:"dataUri"`
}

// Register wires the upload endpoint. A nil service answers 503 so the
// editor can fall back to inline data URIs.
func Register(rg *gin.RouterGroup, svc *Service) {
	rg.POST("", func(c *gin.Context) {
		if svc == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": ErrUploadDisabled.Error()})
			return
		}

		var req uploadReq
		if err := c.ShouldBindJSON(&req); err != nil || req.DataURI == "" {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
			return
		}

		url, err := svc.Upload(c.Request.Context(), auth.UserFirebaseUID(c), req.DataURI)
		if errors.Is(err, ErrInvalidDataURI) {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"ok": true, "url": url})
	})
}
