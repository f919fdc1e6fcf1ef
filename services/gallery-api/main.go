package main

import (
	"fmt"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/bitmark-inc/config-loader"
	gallery "github.com/galeria-yaya/gallery-api"
	"github.com/galeria-yaya/gallery-api/log"
	"github.com/galeria-yaya/gallery-api/storage"
)

func main() {
	_ = godotenv.Load()
	config.LoadConfig("GALLERY")

	viper.SetDefault("server.port", ":8080")
	viper.SetDefault("store.sqlite_path", "gallery.db")
	viper.SetDefault("storage.local_dir", "./static/uploads")
	viper.SetDefault("storage.folder", "galeria-yaya")
	viper.SetDefault("log.level", "INFO")

	if err := log.Initialize(viper.GetString("log.level"), viper.GetBool("debug")); err != nil {
		panic(fmt.Errorf("fail to initialize logger with error: %s", err.Error()))
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         viper.GetString("sentry.dsn"),
		Environment: viper.GetString("environment"),
	}); err != nil {
		log.Panic("Sentry initialization failed", zap.Error(err))
	}

	store, err := gallery.NewGalleryStore(gallery.StoreConfig{
		DSN:        viper.GetString("store.dsn"),
		SQLitePath: viper.GetString("store.sqlite_path"),
		LogLevel:   viper.GetInt("store.log_level"),
	})
	if err != nil {
		log.Panic("fail to initiate gallery store", zap.Error(err))
	}
	if err := store.AutoMigrate(); err != nil {
		log.Panic("fail to migrate gallery store", zap.Error(err))
	}

	localDir := viper.GetString("storage.local_dir")
	local := storage.NewLocalStore(localDir, StaticRoute)

	var remote storage.BlobStore
	cloudflareConfig := storage.CloudflareConfig{
		AccountID:   viper.GetString("cloudflare.account_id"),
		AccountHash: viper.GetString("cloudflare.account_hash"),
		APIToken:    viper.GetString("cloudflare.api_token"),
		Folder:      viper.GetString("storage.folder"),
		Debug:       viper.GetBool("debug"),
	}
	if cloudflareConfig.Enabled() {
		cloudflareStore, err := storage.NewCloudflareStore(cloudflareConfig)
		if err != nil {
			log.Panic("fail to initiate media host client", zap.Error(err))
		}
		remote = cloudflareStore

		log.Info("media host configured, uploads go to cloudflare images", log.StorageRemote)
	} else {
		log.Info("media host not configured, uploads stay on local disk", log.StorageLocal)
	}

	engine := gallery.New(store, remote, local)

	s := NewGalleryServer(engine, localDir)
	s.SetupRoute()
	if err := s.Run(viper.GetString("server.port")); err != nil {
		log.Panic("server interrupted", zap.Error(err))
	}
}
