package handlers

import "github.com/gin-gonic/gin"

const flashCookieName = "flash"

// flashMaxAge bounds how long an unread flash survives, in seconds.
const flashMaxAge = 300

// setFlash stores a one-shot message for the next rendered page.
func setFlash(c *gin.Context, msg string) {
	c.SetCookie(flashCookieName, msg, flashMaxAge, "/", "", false, true)
}

// takeFlash returns the pending flash message, clearing it so it renders
// exactly once.
func takeFlash(c *gin.Context) string {
	msg, err := c.Cookie(flashCookieName)
	if err != nil || msg == "" {
		return ""
	}
	c.SetCookie(flashCookieName, "", -1, "/", "", false, true)
	return msg
}
