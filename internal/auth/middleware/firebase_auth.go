package middleware

import (
	"net/http"
	"strings"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"

	"github.com/trekfolio/brochure-backend/internal/auth"
	"github.com/trekfolio/brochure-backend/internal/users"
)

// RequireUser validates the Firebase ID token and stores the identity in the
// request context. With a nil auth client (local development) it falls back
// to the X-User-Id header. When a users repo is provided, the identity is
// mirrored into Postgres on the way through.
func RequireUser(authClient *fbauth.Client, userRepo *users.Repo) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, email, name, photo, ok := identify(c, authClient)
		if !ok {
			return
		}

		if userRepo != nil {
			if _, err := userRepo.EnsureUser(c.Request.Context(), users.UpsertUser{
				FirebaseUID: uid,
				Email:       email,
				DisplayName: name,
				PhotoURL:    photo,
			}); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "ensure user: " + err.Error()})
				c.Abort()
				return
			}
		}

		c.Set(auth.CtxFirebaseUID, uid)
		c.Set(auth.CtxEmail, email)
		c.Next()
	}
}

func identify(c *gin.Context, authClient *fbauth.Client) (uid, email, name, photo string, ok bool) {
	if authClient == nil {
		// Dev fallback, mirrors the local editor's unauthenticated mode.
		uid = strings.TrimSpace(c.GetHeader("X-User-Id"))
		if uid == "" {
			uid = "demo-user"
		}
		return uid, c.GetHeader("X-User-Email"), c.GetHeader("X-User-Name"), c.GetHeader("X-User-Photo"), true
	}

	token := extractToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing authorization token"})
		c.Abort()
		return "", "", "", "", false
	}

	decoded, err := authClient.VerifyIDToken(c.Request.Context(), token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid token"})
		c.Abort()
		return "", "", "", "", false
	}

	uid = decoded.UID
	if v, isStr := decoded.Claims["email"].(string); isStr {
		email = v
	}
	if v, isStr := decoded.Claims["name"].(string); isStr {
		name = v
	}
	if v, isStr := decoded.Claims["picture"].(string); isStr {
		photo = v
	}
	return uid, email, name, photo, true
}

// extractToken extracts the Bearer token from the Authorization header.
func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	if len(bearerToken) > 7 && strings.HasPrefix(bearerToken, "Bearer ") {
		return bearerToken[7:]
	}
	return ""
}
