package gallery

import (
	"context"
	"errors"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GalleryStore persists gallery metadata. One row per stored blob; the row is
// created only after the blob landed and removed only after a cleanup attempt
// ran, so the table stays the source of truth for what the gallery contains.
type GalleryStore interface {
	CreateImage(ctx context.Context, image *Image) error
	GetImage(ctx context.Context, id int64) (Image, error)
	ListImages(ctx context.Context) ([]Image, error)
	DeleteImage(ctx context.Context, id int64) error
}

// StoreConfig is the database setup resolved at startup. An empty DSN selects
// the sqlite file, which is how deployments without a managed database run.
type StoreConfig struct {
	DSN        string
	SQLitePath string
	LogLevel   int
}

type GormGalleryStore struct {
	db *gorm.DB
}

func NewGalleryStore(cfg StoreConfig) (*GormGalleryStore, error) {
	var dialector gorm.Dialector
	if cfg.DSN != "" {
		dialector = postgres.Open(cfg.DSN)
	} else {
		dialector = sqlite.Open(cfg.SQLitePath)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.LogLevel(cfg.LogLevel)),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, err
	}

	sqldb, err := db.DB()
	if err != nil {
		return nil, err
	}

	if cfg.DSN != "" {
		sqldb.SetMaxOpenConns(50)
	} else {
		// sqlite allows a single writer
		sqldb.SetMaxOpenConns(1)
	}
	// SetConnMaxLifetime sets the maximum amount of time a connection may be reused.
	sqldb.SetConnMaxLifetime(time.Hour)

	return &GormGalleryStore{db: db}, nil
}

func (s *GormGalleryStore) AutoMigrate() error {
	return s.db.AutoMigrate(&Image{})
}

func (s *GormGalleryStore) Close() error {
	sqldb, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqldb.Close()
}

func (s *GormGalleryStore) CreateImage(ctx context.Context, image *Image) error {
	if err := s.db.WithContext(ctx).Create(image).Error; err != nil {
		return &PersistenceError{Err: err}
	}

	return nil
}

func (s *GormGalleryStore) GetImage(ctx context.Context, id int64) (Image, error) {
	var image Image

	if err := s.db.WithContext(ctx).First(&image, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Image{}, &NotFoundError{ID: id}
		}

		return Image{}, &PersistenceError{Err: err}
	}

	return image, nil
}

// ListImages returns every entry, most recent upload first. Entries uploaded
// at the same instant keep their insertion order.
func (s *GormGalleryStore) ListImages(ctx context.Context) ([]Image, error) {
	images := []Image{}

	if err := s.db.WithContext(ctx).
		Order("upload_date DESC, id ASC").
		Find(&images).Error; err != nil {
		return nil, &PersistenceError{Err: err}
	}

	return images, nil
}

func (s *GormGalleryStore) DeleteImage(ctx context.Context, id int64) error {
	result := s.db.WithContext(ctx).Delete(&Image{}, id)
	if result.Error != nil {
		return &PersistenceError{Err: result.Error}
	}

	if result.RowsAffected == 0 {
		return &NotFoundError{ID: id}
	}

	return nil
}
