package main

import (
	"embed"
	"html/template"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
)

// StaticRoute is the path the local storage directory is served under. Local
// locators are built from the same value, so they resolve with no rewriting.
const StaticRoute = "/static/uploads"

//go:embed templates
var templatesFS embed.FS

func (s *GalleryServer) SetupRoute() {
	s.route.Use(sentrygin.New(sentrygin.Options{
		Repanic: true,
	}))

	s.route.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	s.route.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.html")))
	s.route.Static(StaticRoute, s.localDir)

	s.route.GET("/", s.GalleryPage)
	s.route.GET("/api/images", s.ListImages)

	s.route.POST("/upload", s.UploadImage)
	s.route.POST("/delete/:id", s.DeleteImage)
	s.route.DELETE("/api/images/:id", s.DeleteImage)
}
