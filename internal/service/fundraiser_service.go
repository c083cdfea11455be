package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"clubfund/internal/cache"
	"clubfund/internal/errors"
	"clubfund/internal/model"
	"clubfund/internal/repository"
)

const (
	// listLimit caps every public listing regardless of store size.
	listLimit = 200

	listCacheKey = "fundraisers:list"
	listCacheTTL = 30 * time.Second
)

// CreateFundraiserInput carries the fields of a new fundraiser listing.
type CreateFundraiserInput struct {
	ClubName       string
	FundraiserName string
	Location       string
	DateTime       string
	ProceedsInfo   string
	InstagramLink  string
	FlyerImage     string
}

// ListFundraisersInput narrows a public listing.
type ListFundraisersInput struct {
	ClubName     string
	UpcomingOnly bool
}

// FundraiserService handles fundraiser CRUD with ownership enforcement.
type FundraiserService interface {
	Create(ctx context.Context, userID uuid.UUID, input CreateFundraiserInput) (*model.Fundraiser, error)
	List(ctx context.Context, input ListFundraisersInput) ([]model.Fundraiser, error)
	Get(ctx context.Context, id string) (*model.Fundraiser, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]model.Fundraiser, error)
	Delete(ctx context.Context, userID uuid.UUID, id string) error
}

type fundraiserService struct {
	fundraiserRepo repository.FundraiserRepository
	userRepo       repository.UserRepository
	cache          *cache.Client
}

// NewFundraiserService creates a new fundraiser service.
func NewFundraiserService(
	fundraiserRepo repository.FundraiserRepository,
	userRepo repository.UserRepository,
	cache *cache.Client,
) FundraiserService {
	return &fundraiserService{
		fundraiserRepo: fundraiserRepo,
		userRepo:       userRepo,
		cache:          cache,
	}
}

// Create persists a new fundraiser owned by userID.
func (s *fundraiserService) Create(ctx context.Context, userID uuid.UUID, input CreateFundraiserInput) (*model.Fundraiser, error) {
	if input.ClubName == "" || input.FundraiserName == "" || input.Location == "" || input.DateTime == "" {
		return nil, errors.ErrValidation
	}

	dateTime, err := time.Parse(time.RFC3339, input.DateTime)
	if err != nil {
		return nil, errors.ErrValidation
	}

	fundraiser := &model.Fundraiser{
		ClubName:       input.ClubName,
		FundraiserName: input.FundraiserName,
		Location:       input.Location,
		DateTime:       dateTime,
		ProceedsInfo:   input.ProceedsInfo,
		InstagramLink:  input.InstagramLink,
		FlyerImage:     input.FlyerImage,
		CreatedBy:      userID,
	}

	// Denormalized creator email for display; best effort.
	if user, err := s.userRepo.FindByID(ctx, userID); err == nil {
		fundraiser.CreatedByEmail = strings.ToLower(user.Email)
	}

	if err := s.fundraiserRepo.Create(ctx, fundraiser); err != nil {
		return nil, fmt.Errorf("create fundraiser: %w", err)
	}

	s.cache.Delete(ctx, listCacheKey)

	return fundraiser, nil
}

// List returns at most 200 fundraisers, newest event first. The
// unfiltered listing is served from cache when possible.
func (s *fundraiserService) List(ctx context.Context, input ListFundraisersInput) ([]model.Fundraiser, error) {
	unfiltered := input.ClubName == "" && !input.UpcomingOnly

	if unfiltered {
		if data := s.cache.Get(ctx, listCacheKey); data != nil {
			var cached []model.Fundraiser
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, nil
			}
		}
	}

	fundraisers, err := s.fundraiserRepo.Find(ctx, repository.ListFilter{
		ClubName:     input.ClubName,
		UpcomingOnly: input.UpcomingOnly,
		Now:          time.Now(),
		Limit:        listLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("list fundraisers: %w", err)
	}
	if fundraisers == nil {
		// Empty listings render as [] rather than null.
		fundraisers = []model.Fundraiser{}
	}

	if unfiltered {
		if data, err := json.Marshal(fundraisers); err == nil {
			s.cache.Set(ctx, listCacheKey, data, listCacheTTL)
		}
	}

	return fundraisers, nil
}

// Get fetches a single fundraiser. A malformed id is reported as not
// found rather than hitting the store.
func (s *fundraiserService) Get(ctx context.Context, id string) (*model.Fundraiser, error) {
	fundraiserID, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.ErrFundraiserNotFound
	}

	fundraiser, err := s.fundraiserRepo.FindByID(ctx, fundraiserID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrFundraiserNotFound
		}
		return nil, fmt.Errorf("find fundraiser: %w", err)
	}
	return fundraiser, nil
}

// ListMine returns all fundraisers created by the user, newest created first.
func (s *fundraiserService) ListMine(ctx context.Context, userID uuid.UUID) ([]model.Fundraiser, error) {
	fundraisers, err := s.fundraiserRepo.FindByCreator(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list own fundraisers: %w", err)
	}
	if fundraisers == nil {
		fundraisers = []model.Fundraiser{}
	}
	return fundraisers, nil
}

// Delete removes a fundraiser permanently. Only the creating user may
// delete; everyone else gets ErrNotOwner. Two concurrent deletes from
// the owner resolve as first succeeds, second not found.
func (s *fundraiserService) Delete(ctx context.Context, userID uuid.UUID, id string) error {
	fundraiserID, err := uuid.Parse(id)
	if err != nil {
		return errors.ErrFundraiserNotFound
	}

	fundraiser, err := s.fundraiserRepo.FindByID(ctx, fundraiserID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrFundraiserNotFound
		}
		return fmt.Errorf("find fundraiser: %w", err)
	}

	if fundraiser.CreatedBy != userID {
		return errors.ErrNotOwner
	}

	rows, err := s.fundraiserRepo.DeleteByID(ctx, fundraiserID)
	if err != nil {
		return fmt.Errorf("delete fundraiser: %w", err)
	}
	if rows == 0 {
		return errors.ErrFundraiserNotFound
	}

	s.cache.Delete(ctx, listCacheKey)

	return nil
}
