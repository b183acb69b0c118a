package users

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Register exposes the account mirror. Read-only: accounts are created by
// the auth middleware on sign-in, never through this surface.
func Register(rg *gin.RouterGroup, repo *Repo) {
	rg.GET("", func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

		accounts, err := repo.List(c.Request.Context(), limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "accounts": accounts})
	})
}
