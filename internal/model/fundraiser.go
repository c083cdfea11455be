package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Fundraiser represents a club fundraiser listing.
//
// CreatedBy is set once at creation and determines the only identity
// permitted to delete the record. Deletes are permanent; there is no
// soft delete.
type Fundraiser struct {
	ID             uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	ClubName       string    `json:"clubName" gorm:"size:255;not null;index"`
	FundraiserName string    `json:"fundraiserName" gorm:"size:255;not null"`
	Location       string    `json:"location" gorm:"size:255;not null"`
	DateTime       time.Time `json:"dateTime" gorm:"not null;index"`
	ProceedsInfo   string    `json:"proceedsInfo,omitempty" gorm:"size:1024"`
	InstagramLink  string    `json:"instagramLink,omitempty" gorm:"size:512"`
	FlyerImage     string    `json:"flyerImage,omitempty" gorm:"type:text"`
	CreatedBy      uuid.UUID `json:"createdBy" gorm:"type:char(36);not null;index"`
	CreatedByEmail string    `json:"createdByEmail,omitempty" gorm:"size:255"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (f *Fundraiser) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
