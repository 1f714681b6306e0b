package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed static
var staticFS embed.FS

// Register mounts the dashboard shell. All data comes from the JSON API;
// these files are purely presentational.
func Register(router *gin.Engine) {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}

	router.GET("/", func(c *gin.Context) {
		c.FileFromFS("index.html", http.FS(sub))
	})
	router.StaticFS("/static", http.FS(sub))
}
