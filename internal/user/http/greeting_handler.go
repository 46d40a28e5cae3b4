package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mkowalczyk/flashcards/internal/i18n"
)

// GreetingHandler serves the localized landing endpoints.
type GreetingHandler struct {
	translator *i18n.Translator
}

// NewGreetingHandler creates a new GreetingHandler
func NewGreetingHandler(translator *i18n.Translator) *GreetingHandler {
	return &GreetingHandler{translator: translator}
}

// Hello handles GET /hello with a greeting in the negotiated locale.
func (h *GreetingHandler) Hello(c *gin.Context) {
	locale := c.GetHeader("Accept-Language")
	c.JSON(http.StatusOK, gin.H{"message": h.translator.Translate(i18n.KeyHelloWorld, locale)})
}

// Root handles GET / with a welcome message in the negotiated locale.
func (h *GreetingHandler) Root(c *gin.Context) {
	locale := c.GetHeader("Accept-Language")
	c.JSON(http.StatusOK, gin.H{"message": h.translator.Translate(i18n.KeyRoot, locale)})
}
