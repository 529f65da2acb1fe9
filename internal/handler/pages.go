package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) aboutPage(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", gin.H{"title": "About Me"})
}

func (h *Handler) contactPage(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", gin.H{"title": "Contact Me"})
}
