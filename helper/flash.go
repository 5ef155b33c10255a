package helper

import (
	"log"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Flash severities.
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

type FlashMessage struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// Flash queues a one-time message for the next rendered view.
func Flash(c *gin.Context, level, message string) {
	session := sessions.Default(c)
	session.AddFlash(message, "_flash_"+level)
	if err := session.Save(); err != nil {
		log.Printf("failed to save flash message: %v", err)
	}
}

// TakeFlashes drains every queued flash message, consuming them.
func TakeFlashes(c *gin.Context) []FlashMessage {
	session := sessions.Default(c)

	var flashes []FlashMessage
	for _, level := range []string{FlashSuccess, FlashError} {
		for _, v := range session.Flashes("_flash_" + level) {
			if msg, ok := v.(string); ok {
				flashes = append(flashes, FlashMessage{Level: level, Message: msg})
			}
		}
	}
	if err := session.Save(); err != nil {
		log.Printf("failed to clear flash messages: %v", err)
	}

	return flashes
}

// FlashAndRedirect ends a mutating operation: exactly one message and one
// redirect. Callers must return immediately after.
func FlashAndRedirect(c *gin.Context, level, message, location string) {
	Flash(c, level, message)
	c.Redirect(http.StatusFound, location)
}
