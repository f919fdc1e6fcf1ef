package main

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/galeria-yaya/gallery-api/traceutils"
)

// GalleryPage renders the gallery page. Images load client-side from the
// JSON API.
func (s *GalleryServer) GalleryPage(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", nil)
}

// ListImages returns every uploaded image, most recent first.
func (s *GalleryServer) ListImages(c *gin.Context) {
	traceutils.SetHandlerTag(c, "ListImages")

	images, err := s.engine.ListImages(c)
	if err != nil {
		abortWithGalleryError(c, err)
		return
	}

	c.JSON(http.StatusOK, images)
}

// UploadImage accepts a multipart form with an image file plus optional title
// and description, stores the blob and records the metadata row.
func (s *GalleryServer) UploadImage(c *gin.Context) {
	traceutils.SetHandlerTag(c, "UploadImage")

	fileHeader, err := c.FormFile("image")
	if err != nil {
		abortWithUserError(c, http.StatusBadRequest, "no image file provided")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "fail to read uploaded file", err)
		return
	}
	defer file.Close()

	image, err := s.engine.UploadImage(c, file,
		fileHeader.Filename, c.PostForm("title"), c.PostForm("description"))
	if err != nil {
		abortWithGalleryError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "image uploaded",
		"image_url":   image.Filepath,
		"filename":    image.Filename,
		"title":       image.Title,
		"description": image.Description,
	})
}

// DeleteImage removes the stored blob, best effort, and then the row behind
// the given id.
func (s *GalleryServer) DeleteImage(c *gin.Context) {
	traceutils.SetHandlerTag(c, "DeleteImage")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		abortWithUserError(c, http.StatusBadRequest, "invalid image id")
		return
	}

	if err := s.engine.DeleteImage(c, id); err != nil {
		abortWithGalleryError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "image deleted",
	})
}
