package gallery

import "time"

// Image is a structure of one gallery entry. Filepath is the public locator
// of the stored blob: the delivery URL when the blob lives on the media host,
// or the static route path when it lives on local disk. ExternalID is the
// identifier the media host assigned to the blob and stays empty for local
// files.
type Image struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	Filename    string    `gorm:"size:100;not null" json:"filename"`
	Filepath    string    `gorm:"size:300;not null" json:"filepath"`
	ExternalID  string    `gorm:"size:100" json:"externalId,omitempty"`
	Title       string    `gorm:"size:100" json:"title,omitempty"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	UploadDate  time.Time `gorm:"autoCreateTime" json:"uploadDate"`
}

func (Image) TableName() string {
	return "images"
}

// IsRemote reports whether the blob behind this entry lives on the media host.
func (i Image) IsRemote() bool {
	return i.ExternalID != ""
}
