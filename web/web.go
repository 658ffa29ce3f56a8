// Package web serves the browser client bundled into the binary.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed static
var content embed.FS

// Register mounts the client at / and its assets under /static.
func Register(router *gin.Engine) error {
	static, err := fs.Sub(content, "static")
	if err != nil {
		return err
	}
	index, err := fs.ReadFile(static, "index.html")
	if err != nil {
		return err
	}

	// Served directly: FileFromFS on index.html redirects to the directory.
	router.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", index)
	})
	router.StaticFS("/static", http.FS(static))
	return nil
}
