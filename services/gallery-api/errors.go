package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	gallery "github.com/galeria-yaya/gallery-api"
	"github.com/galeria-yaya/gallery-api/log"
	"github.com/galeria-yaya/gallery-api/traceutils"
)

// abortWithError answers a server fault: logged, captured in sentry and
// reported with the structured failure payload.
func abortWithError(c *gin.Context, code int, message string, traceErr error) {
	log.Error(message, zap.Error(traceErr))
	traceutils.CaptureException(c, traceErr)

	c.AbortWithStatusJSON(code, gin.H{
		"success": false,
		"message": message,
	})
}

// abortWithUserError answers a client mistake. Nothing is captured.
func abortWithUserError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{
		"success": false,
		"message": message,
	})
}

// abortWithGalleryError maps the engine error taxonomy onto HTTP statuses:
// rejected input answers 400, an unknown id 404 and everything else is a
// server fault.
func abortWithGalleryError(c *gin.Context, err error) {
	var validationErr *gallery.ValidationError
	if errors.As(err, &validationErr) {
		abortWithUserError(c, http.StatusBadRequest, validationErr.Reason)
		return
	}

	var notFoundErr *gallery.NotFoundError
	if errors.As(err, &notFoundErr) {
		abortWithUserError(c, http.StatusNotFound, notFoundErr.Error())
		return
	}

	var storageErr *gallery.StorageError
	if errors.As(err, &storageErr) {
		abortWithError(c, http.StatusInternalServerError, "fail to store image", err)
		return
	}

	var persistenceErr *gallery.PersistenceError
	if errors.As(err, &persistenceErr) {
		abortWithError(c, http.StatusInternalServerError, "fail to save image record", err)
		return
	}

	abortWithError(c, http.StatusInternalServerError, "internal server error", err)
}
