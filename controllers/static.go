package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func Health(router *gin.Engine) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
}

// Static serves files under dir for any GET that matched no route.
func Static(router *gin.Engine, dir string) {
	fs := gin.Dir(dir, false)
	router.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.String(http.StatusNotFound, "Cannot %s %s", c.Request.Method, c.Request.URL.Path)
			return
		}
		c.FileFromFS(c.Request.URL.Path, fs)
	})
}
