package log

import "go.uber.org/zap"

var (
	StorageRemote = zap.String("storage", "cloudflare")
	StorageLocal  = zap.String("storage", "local")
)
