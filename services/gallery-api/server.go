package main

import (
	"github.com/gin-gonic/gin"

	gallery "github.com/galeria-yaya/gallery-api"
)

// GalleryServer exposes the gallery engine over HTTP and serves the gallery
// page plus the locally stored blobs.
type GalleryServer struct {
	route  *gin.Engine
	engine *gallery.GalleryEngine

	localDir string
}

func NewGalleryServer(engine *gallery.GalleryEngine, localDir string) *GalleryServer {
	r := gin.New()

	return &GalleryServer{
		route:  r,
		engine: engine,

		localDir: localDir,
	}
}

func (s *GalleryServer) Run(port string) error {
	return s.route.Run(port)
}
