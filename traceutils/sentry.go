package traceutils

import (
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
)

// CaptureException forwards an error to the sentry hub bound to the request.
// It is a no-op when the sentry middleware is not installed, so handlers can
// call it unconditionally.
func CaptureException(c *gin.Context, err error) {
	if hub := sentrygin.GetHubFromContext(c); hub != nil {
		hub.CaptureException(err)
	}
}

func AddScopeTag(c *gin.Context, key, value string) {
	if hub := sentrygin.GetHubFromContext(c); hub != nil {
		hub.Scope().SetTag(key, value)
	}
}

func SetHandlerTag(c *gin.Context, handler string) {
	AddScopeTag(c, "handler", handler)
}
