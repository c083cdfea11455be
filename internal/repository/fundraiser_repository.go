package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"clubfund/internal/model"
)

// ListFilter narrows a fundraiser listing. Zero values mean "no filter".
type ListFilter struct {
	ClubName     string
	UpcomingOnly bool
	// Now anchors the upcoming comparison; the service sets it so
	// queries stay deterministic in tests.
	Now   time.Time
	Limit int
}

// FundraiserRepository defines fundraiser persistence operations.
type FundraiserRepository interface {
	Create(ctx context.Context, fundraiser *model.Fundraiser) error
	Find(ctx context.Context, filter ListFilter) ([]model.Fundraiser, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Fundraiser, error)
	FindByCreator(ctx context.Context, userID uuid.UUID) ([]model.Fundraiser, error)
	DeleteByID(ctx context.Context, id uuid.UUID) (int64, error)
}

type fundraiserRepository struct {
	db *gorm.DB
}

// NewFundraiserRepository creates a new fundraiser repository.
func NewFundraiserRepository(db *gorm.DB) FundraiserRepository {
	return &fundraiserRepository{db: db}
}

// Create creates a new fundraiser.
func (r *fundraiserRepository) Create(ctx context.Context, fundraiser *model.Fundraiser) error {
	return r.db.WithContext(ctx).Create(fundraiser).Error
}

// Find lists fundraisers matching the filter, newest event first.
func (r *fundraiserRepository) Find(ctx context.Context, filter ListFilter) ([]model.Fundraiser, error) {
	query := r.db.WithContext(ctx).Model(&model.Fundraiser{})

	if filter.ClubName != "" {
		query = query.Where("club_name = ?", filter.ClubName)
	}
	if filter.UpcomingOnly {
		query = query.Where("date_time >= ?", filter.Now)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var fundraisers []model.Fundraiser
	if err := query.Order("date_time DESC").Find(&fundraisers).Error; err != nil {
		return nil, err
	}
	return fundraisers, nil
}

// FindByID finds a fundraiser by ID.
func (r *fundraiserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Fundraiser, error) {
	var fundraiser model.Fundraiser
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&fundraiser).Error; err != nil {
		return nil, err
	}
	return &fundraiser, nil
}

// FindByCreator lists all fundraisers created by the user, newest created first.
func (r *fundraiserRepository) FindByCreator(ctx context.Context, userID uuid.UUID) ([]model.Fundraiser, error) {
	var fundraisers []model.Fundraiser
	if err := r.db.WithContext(ctx).
		Where("created_by = ?", userID).
		Order("created_at DESC").
		Find(&fundraisers).Error; err != nil {
		return nil, err
	}
	return fundraisers, nil
}

// DeleteByID removes a fundraiser permanently and reports how many rows
// were affected, so callers can tell an already-deleted record apart
// from a successful delete.
func (r *fundraiserRepository) DeleteByID(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Fundraiser{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
