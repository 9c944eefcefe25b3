package http

import (
	"github.com/gin-gonic/gin"
)

// The session cookie holds the raw user id. HttpOnly keeps scripts away
// from it; there is no server-side session table to invalidate.
const (
	sessionCookieName   = "session"
	sessionMaxAgeSecond = 3600
)

func setSessionCookie(c *gin.Context, userID string) {
	c.SetCookie(sessionCookieName, userID, sessionMaxAgeSecond, "/", "", false, true)
}

func clearSessionCookie(c *gin.Context) {
	c.SetCookie(sessionCookieName, "", -1, "/", "", false, true)
}

func sessionValue(c *gin.Context) string {
	value, err := c.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	return value
}
