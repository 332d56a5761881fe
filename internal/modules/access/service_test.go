package access

import (
	"context"
	"errors"
	"testing"

	"finishout/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockApartmentRepository struct {
	mock.Mock
}

func (m *MockApartmentRepository) GetByCode(ctx context.Context, code string) (*domain.Apartment, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Apartment), args.Error(1)
}

func (m *MockApartmentRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func TestService_Resolve_CanonicalizesCode(t *testing.T) {
	repo := new(MockApartmentRepository)
	svc := NewService(repo, 8, 10)

	apt := &domain.Apartment{ID: 7, AccessCode: "ABCD2345", Status: domain.ApartmentOpen}
	repo.On("GetByCode", mock.Anything, "ABCD2345").Return(apt, nil)

	got, err := svc.Resolve(context.Background(), "  abcd2345 ")
	assert.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)
	repo.AssertExpectations(t)
}

func TestService_Resolve_UnknownCode(t *testing.T) {
	repo := new(MockApartmentRepository)
	svc := NewService(repo, 8, 10)

	repo.On("GetByCode", mock.Anything, "NOPE2345").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Resolve(context.Background(), "nope2345")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Resolve_EmptyCode(t *testing.T) {
	repo := new(MockApartmentRepository)
	svc := NewService(repo, 8, 10)

	_, err := svc.Resolve(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrNotFound)
	repo.AssertNotCalled(t, "GetByCode")
}

func TestService_Resolve_StorageFailureIsNotNotFound(t *testing.T) {
	repo := new(MockApartmentRepository)
	svc := NewService(repo, 8, 10)

	boom := errors.New("connection reset")
	repo.On("GetByCode", mock.Anything, "ABCD2345").Return(nil, boom)

	_, err := svc.Resolve(context.Background(), "abcd2345")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestService_GenerateCode_FirstAttemptFree(t *testing.T) {
	repo := new(MockApartmentRepository)
	svc := NewService(repo, 8, 3)

	repo.On("CodeExists", mock.Anything, mock.AnythingOfType("string")).Return(false, nil).Once()

	code, err := svc.GenerateCode(context.Background())
	assert.NoError(t, err)
	assert.Len(t, code, 8)
	repo.AssertExpectations(t)
}

func TestService_GenerateCode_RetriesOnCollision(t *testing.T) {
	repo := new(MockApartmentRepository)
	svc := NewService(repo, 8, 3)

	repo.On("CodeExists", mock.Anything, mock.AnythingOfType("string")).Return(true, nil).Twice()
	repo.On("CodeExists", mock.Anything, mock.AnythingOfType("string")).Return(false, nil).Once()

	code, err := svc.GenerateCode(context.Background())
	assert.NoError(t, err)
	assert.Len(t, code, 8)
	repo.AssertNumberOfCalls(t, "CodeExists", 3)
}

func TestService_GenerateCode_Exhausted(t *testing.T) {
	repo := new(MockApartmentRepository)
	svc := NewService(repo, 8, 3)

	repo.On("CodeExists", mock.Anything, mock.AnythingOfType("string")).Return(true, nil)

	_, err := svc.GenerateCode(context.Background())
	assert.ErrorIs(t, err, ErrGenerationExhausted)
	repo.AssertNumberOfCalls(t, "CodeExists", 3)
}
