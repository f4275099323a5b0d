package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// handleIndex serves the weather lookup page
func (app *App) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", nil)
}
