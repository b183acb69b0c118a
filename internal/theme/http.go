package theme

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Register exposes the palette presets and the style derivation used by the
// editor's styles step. Derivation is pure, so these endpoints are safe to
// cache client-side.
func Register(rg *gin.RouterGroup) {
	rg.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "presets": Presets()})
	})

	rg.GET("/derive", func(c *gin.Context) {
		primary := c.Query("primary")
		text := c.DefaultQuery("text", "#ffffff")
		if primary == "" {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "primary is required"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "styles": DeriveSectionStyles(primary, text)})
	})
}
