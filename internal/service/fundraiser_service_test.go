package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"clubfund/internal/errors"
	"clubfund/internal/model"
	"clubfund/internal/repository"
)

// MockFundraiserRepository is a mock implementation of FundraiserRepository.
type MockFundraiserRepository struct {
	mock.Mock
}

func (m *MockFundraiserRepository) Create(ctx context.Context, fundraiser *model.Fundraiser) error {
	args := m.Called(ctx, fundraiser)
	return args.Error(0)
}

func (m *MockFundraiserRepository) Find(ctx context.Context, filter repository.ListFilter) ([]model.Fundraiser, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Fundraiser), args.Error(1)
}

func (m *MockFundraiserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Fundraiser, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Fundraiser), args.Error(1)
}

func (m *MockFundraiserRepository) FindByCreator(ctx context.Context, userID uuid.UUID) ([]model.Fundraiser, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Fundraiser), args.Error(1)
}

func (m *MockFundraiserRepository) DeleteByID(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func newFundraiserService(fundRepo *MockFundraiserRepository, userRepo *MockUserRepository) FundraiserService {
	// cache.Client is nil-safe; a nil client behaves like a permanent miss.
	return NewFundraiserService(fundRepo, userRepo, nil)
}

func TestFundraiserService_Create(t *testing.T) {
	userID := uuid.New()

	validInput := CreateFundraiserInput{
		ClubName:       "Chess Club",
		FundraiserName: "Bake Sale",
		Location:       "Quad",
		DateTime:       "2025-12-01T10:00:00Z",
	}

	t.Run("successful create stamps owner", func(t *testing.T) {
		fundRepo := new(MockFundraiserRepository)
		userRepo := new(MockUserRepository)

		userRepo.On("FindByID", mock.Anything, userID).Return(&model.User{
			ID:    userID,
			Email: "a@ucdavis.edu",
		}, nil)
		fundRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Fundraiser")).Return(nil)

		svc := newFundraiserService(fundRepo, userRepo)
		fund, err := svc.Create(context.Background(), userID, validInput)

		assert.NoError(t, err)
		assert.NotNil(t, fund)
		assert.Equal(t, userID, fund.CreatedBy)
		assert.Equal(t, "a@ucdavis.edu", fund.CreatedByEmail)
		assert.Equal(t, time.Date(2025, 12, 1, 10, 0, 0, 0, time.UTC), fund.DateTime.UTC())
		fundRepo.AssertExpectations(t)
	})

	t.Run("missing required fields", func(t *testing.T) {
		for _, input := range []CreateFundraiserInput{
			{FundraiserName: "Bake Sale", Location: "Quad", DateTime: "2025-12-01T10:00:00Z"},
			{ClubName: "Chess Club", Location: "Quad", DateTime: "2025-12-01T10:00:00Z"},
			{ClubName: "Chess Club", FundraiserName: "Bake Sale", DateTime: "2025-12-01T10:00:00Z"},
			{ClubName: "Chess Club", FundraiserName: "Bake Sale", Location: "Quad"},
		} {
			svc := newFundraiserService(new(MockFundraiserRepository), new(MockUserRepository))
			_, err := svc.Create(context.Background(), userID, input)
			assert.ErrorIs(t, err, errors.ErrValidation)
		}
	})

	t.Run("unparseable dateTime", func(t *testing.T) {
		input := validInput
		input.DateTime = "next tuesday"

		svc := newFundraiserService(new(MockFundraiserRepository), new(MockUserRepository))
		_, err := svc.Create(context.Background(), userID, input)
		assert.ErrorIs(t, err, errors.ErrValidation)
	})
}

func TestFundraiserService_List(t *testing.T) {
	t.Run("caps the listing at 200", func(t *testing.T) {
		fundRepo := new(MockFundraiserRepository)
		fundRepo.On("Find", mock.Anything, mock.MatchedBy(func(f repository.ListFilter) bool {
			return f.Limit == 200
		})).Return([]model.Fundraiser{}, nil)

		svc := newFundraiserService(fundRepo, new(MockUserRepository))
		_, err := svc.List(context.Background(), ListFundraisersInput{})

		assert.NoError(t, err)
		fundRepo.AssertExpectations(t)
	})

	t.Run("empty result is an empty slice, not nil", func(t *testing.T) {
		fundRepo := new(MockFundraiserRepository)
		fundRepo.On("Find", mock.Anything, mock.AnythingOfType("repository.ListFilter")).
			Return(([]model.Fundraiser)(nil), nil)

		svc := newFundraiserService(fundRepo, new(MockUserRepository))
		funds, err := svc.List(context.Background(), ListFundraisersInput{ClubName: "Nobody"})

		assert.NoError(t, err)
		assert.NotNil(t, funds)
		assert.Empty(t, funds)
	})

	t.Run("passes club and upcoming filters through", func(t *testing.T) {
		fundRepo := new(MockFundraiserRepository)
		fundRepo.On("Find", mock.Anything, mock.MatchedBy(func(f repository.ListFilter) bool {
			return f.ClubName == "Chess Club" && f.UpcomingOnly && !f.Now.IsZero()
		})).Return([]model.Fundraiser{{ClubName: "Chess Club"}}, nil)

		svc := newFundraiserService(fundRepo, new(MockUserRepository))
		funds, err := svc.List(context.Background(), ListFundraisersInput{
			ClubName:     "Chess Club",
			UpcomingOnly: true,
		})

		assert.NoError(t, err)
		assert.Len(t, funds, 1)
		fundRepo.AssertExpectations(t)
	})
}

func TestFundraiserService_Get(t *testing.T) {
	t.Run("malformed id reports not found", func(t *testing.T) {
		svc := newFundraiserService(new(MockFundraiserRepository), new(MockUserRepository))
		_, err := svc.Get(context.Background(), "not-a-uuid")
		assert.ErrorIs(t, err, errors.ErrFundraiserNotFound)
	})

	t.Run("missing record reports not found", func(t *testing.T) {
		id := uuid.New()
		fundRepo := new(MockFundraiserRepository)
		fundRepo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

		svc := newFundraiserService(fundRepo, new(MockUserRepository))
		_, err := svc.Get(context.Background(), id.String())
		assert.ErrorIs(t, err, errors.ErrFundraiserNotFound)
	})

	t.Run("found record is returned", func(t *testing.T) {
		id := uuid.New()
		fundRepo := new(MockFundraiserRepository)
		fundRepo.On("FindByID", mock.Anything, id).Return(&model.Fundraiser{ID: id}, nil)

		svc := newFundraiserService(fundRepo, new(MockUserRepository))
		fund, err := svc.Get(context.Background(), id.String())
		assert.NoError(t, err)
		assert.Equal(t, id, fund.ID)
	})
}

func TestFundraiserService_Delete(t *testing.T) {
	ownerID := uuid.New()
	otherID := uuid.New()
	fundID := uuid.New()

	t.Run("only the creator may delete", func(t *testing.T) {
		fundRepo := new(MockFundraiserRepository)
		fundRepo.On("FindByID", mock.Anything, fundID).Return(&model.Fundraiser{
			ID:        fundID,
			CreatedBy: ownerID,
		}, nil)

		svc := newFundraiserService(fundRepo, new(MockUserRepository))
		err := svc.Delete(context.Background(), otherID, fundID.String())

		assert.ErrorIs(t, err, errors.ErrNotOwner)
		fundRepo.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
	})

	t.Run("owner delete removes the record", func(t *testing.T) {
		fundRepo := new(MockFundraiserRepository)
		fundRepo.On("FindByID", mock.Anything, fundID).Return(&model.Fundraiser{
			ID:        fundID,
			CreatedBy: ownerID,
		}, nil)
		fundRepo.On("DeleteByID", mock.Anything, fundID).Return(int64(1), nil)

		svc := newFundraiserService(fundRepo, new(MockUserRepository))
		err := svc.Delete(context.Background(), ownerID, fundID.String())

		assert.NoError(t, err)
		fundRepo.AssertExpectations(t)
	})

	t.Run("malformed id reports not found before lookup", func(t *testing.T) {
		fundRepo := new(MockFundraiserRepository)
		svc := newFundraiserService(fundRepo, new(MockUserRepository))

		err := svc.Delete(context.Background(), ownerID, "not-a-uuid")

		assert.ErrorIs(t, err, errors.ErrFundraiserNotFound)
		fundRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("already deleted record reports not found", func(t *testing.T) {
		fundRepo := new(MockFundraiserRepository)
		fundRepo.On("FindByID", mock.Anything, fundID).Return(nil, gorm.ErrRecordNotFound)

		svc := newFundraiserService(fundRepo, new(MockUserRepository))
		err := svc.Delete(context.Background(), ownerID, fundID.String())

		assert.ErrorIs(t, err, errors.ErrFundraiserNotFound)
	})

	t.Run("concurrent owner delete loses the race as not found", func(t *testing.T) {
		// Record is read but gone by the time the delete executes.
		fundRepo := new(MockFundraiserRepository)
		fundRepo.On("FindByID", mock.Anything, fundID).Return(&model.Fundraiser{
			ID:        fundID,
			CreatedBy: ownerID,
		}, nil)
		fundRepo.On("DeleteByID", mock.Anything, fundID).Return(int64(0), nil)

		svc := newFundraiserService(fundRepo, new(MockUserRepository))
		err := svc.Delete(context.Background(), ownerID, fundID.String())

		assert.ErrorIs(t, err, errors.ErrFundraiserNotFound)
	})
}

func TestFundraiserService_ListMine_EmptyIsNotNil(t *testing.T) {
	userID := uuid.New()

	fundRepo := new(MockFundraiserRepository)
	fundRepo.On("FindByCreator", mock.Anything, userID).Return(([]model.Fundraiser)(nil), nil)

	svc := newFundraiserService(fundRepo, new(MockUserRepository))
	funds, err := svc.ListMine(context.Background(), userID)

	assert.NoError(t, err)
	assert.NotNil(t, funds)
	assert.Empty(t, funds)
}

func TestFundraiserService_ListMine(t *testing.T) {
	userID := uuid.New()

	fundRepo := new(MockFundraiserRepository)
	fundRepo.On("FindByCreator", mock.Anything, userID).Return([]model.Fundraiser{
		{ClubName: "Chess Club", CreatedBy: userID},
		{ClubName: "Chess Club", CreatedBy: userID},
	}, nil)

	svc := newFundraiserService(fundRepo, new(MockUserRepository))
	funds, err := svc.ListMine(context.Background(), userID)

	assert.NoError(t, err)
	assert.Len(t, funds, 2)
	fundRepo.AssertExpectations(t)
}
