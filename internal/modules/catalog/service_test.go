package catalog

import (
	"context"
	"testing"

	"finishout/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockApartmentRepository struct {
	mock.Mock
}

func (m *MockApartmentRepository) GetByID(ctx context.Context, id int64) (*domain.Apartment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Apartment), args.Error(1)
}

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListByProject(ctx context.Context, projectID int64) ([]domain.Category, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

type MockOptionRepository struct {
	mock.Mock
}

func (m *MockOptionRepository) ListByCategory(ctx context.Context, categoryID int64) ([]domain.Option, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Option), args.Error(1)
}

func (m *MockOptionRepository) ListImages(ctx context.Context, optionIDs []int64) (map[int64][]domain.OptionImage, error) {
	args := m.Called(ctx, optionIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64][]domain.OptionImage), args.Error(1)
}

type MockOverrideRepository struct {
	mock.Mock
}

func (m *MockOverrideRepository) HiddenOptionIDs(ctx context.Context, apartmentID int64) ([]int64, error) {
	args := m.Called(ctx, apartmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockOverrideRepository) ListCustomByCategory(ctx context.Context, apartmentID, categoryID int64) ([]domain.CustomOption, error) {
	args := m.Called(ctx, apartmentID, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CustomOption), args.Error(1)
}

func newTestService() (*Service, *MockApartmentRepository, *MockCategoryRepository, *MockOptionRepository, *MockOverrideRepository) {
	apts := new(MockApartmentRepository)
	cats := new(MockCategoryRepository)
	opts := new(MockOptionRepository)
	overrides := new(MockOverrideRepository)
	return NewService(apts, cats, opts, overrides), apts, cats, opts, overrides
}

func TestResolveCategory_HiddenOptionsExcluded(t *testing.T) {
	svc, apts, cats, opts, overrides := newTestService()

	apts.On("GetByID", mock.Anything, int64(5)).Return(&domain.Apartment{ID: 5, ProjectID: 1}, nil)
	cats.On("GetByID", mock.Anything, int64(1)).Return(&domain.Category{ID: 1, ProjectID: 1}, nil)
	opts.On("ListByCategory", mock.Anything, int64(1)).Return([]domain.Option{
		{ID: 10, CategoryID: 1, Name: "A", IsDefault: true},
		{ID: 11, CategoryID: 1, Name: "B", Price: 1200},
	}, nil)
	overrides.On("HiddenOptionIDs", mock.Anything, int64(5)).Return([]int64{10}, nil)
	opts.On("ListImages", mock.Anything, []int64{11}).Return(map[int64][]domain.OptionImage{}, nil)
	overrides.On("ListCustomByCategory", mock.Anything, int64(5), int64(1)).Return([]domain.CustomOption{}, nil)

	resolved, err := svc.ResolveCategory(context.Background(), 5, 1)
	assert.NoError(t, err)
	assert.Len(t, resolved, 1)
	assert.Equal(t, domain.CatalogRef(11), resolved[0].Ref)
	for _, o := range resolved {
		assert.NotEqual(t, int64(10), o.Ref.ID)
	}
}

func TestResolveCategory_HidingScopedToApartment(t *testing.T) {
	svc, apts, cats, opts, overrides := newTestService()

	apts.On("GetByID", mock.Anything, int64(6)).Return(&domain.Apartment{ID: 6, ProjectID: 1}, nil)
	cats.On("GetByID", mock.Anything, int64(1)).Return(&domain.Category{ID: 1, ProjectID: 1}, nil)
	opts.On("ListByCategory", mock.Anything, int64(1)).Return([]domain.Option{
		{ID: 10, CategoryID: 1, Name: "A"},
	}, nil)
	// apartment 6 has no hidden marks even though apartment 5 hides 10
	overrides.On("HiddenOptionIDs", mock.Anything, int64(6)).Return([]int64{}, nil)
	opts.On("ListImages", mock.Anything, []int64{10}).Return(map[int64][]domain.OptionImage{}, nil)
	overrides.On("ListCustomByCategory", mock.Anything, int64(6), int64(1)).Return([]domain.CustomOption{}, nil)

	resolved, err := svc.ResolveCategory(context.Background(), 6, 1)
	assert.NoError(t, err)
	assert.Len(t, resolved, 1)
	assert.Equal(t, domain.CatalogRef(10), resolved[0].Ref)
}

func TestResolveCategory_CustomOptionsAppended(t *testing.T) {
	svc, apts, cats, opts, overrides := newTestService()

	apts.On("GetByID", mock.Anything, int64(5)).Return(&domain.Apartment{ID: 5, ProjectID: 1}, nil)
	cats.On("GetByID", mock.Anything, int64(1)).Return(&domain.Category{ID: 1, ProjectID: 1}, nil)
	opts.On("ListByCategory", mock.Anything, int64(1)).Return([]domain.Option{
		{ID: 10, CategoryID: 1, Name: "A", IsDefault: true},
	}, nil)
	overrides.On("HiddenOptionIDs", mock.Anything, int64(5)).Return([]int64{}, nil)
	opts.On("ListImages", mock.Anything, []int64{10}).Return(map[int64][]domain.OptionImage{}, nil)
	overrides.On("ListCustomByCategory", mock.Anything, int64(5), int64(1)).Return([]domain.CustomOption{
		{ID: 3, ApartmentID: 5, CategoryID: 1, Name: "Sonderfliese", Price: 900, ImageURL: "https://cdn/x.jpg"},
	}, nil)

	resolved, err := svc.ResolveCategory(context.Background(), 5, 1)
	assert.NoError(t, err)
	assert.Len(t, resolved, 2)

	custom := resolved[1]
	assert.Equal(t, domain.CustomRef(3), custom.Ref)
	assert.Equal(t, 900.0, custom.Price)
	assert.False(t, custom.IsDefault, "custom options are never default")
	assert.Equal(t, []string{"https://cdn/x.jpg"}, custom.ImageURLs)
}

func TestResolveCategory_EmptyResultIsValid(t *testing.T) {
	svc, apts, cats, opts, overrides := newTestService()

	apts.On("GetByID", mock.Anything, int64(5)).Return(&domain.Apartment{ID: 5, ProjectID: 1}, nil)
	cats.On("GetByID", mock.Anything, int64(1)).Return(&domain.Category{ID: 1, ProjectID: 1}, nil)
	opts.On("ListByCategory", mock.Anything, int64(1)).Return([]domain.Option{
		{ID: 10, CategoryID: 1},
	}, nil)
	overrides.On("HiddenOptionIDs", mock.Anything, int64(5)).Return([]int64{10}, nil)
	opts.On("ListImages", mock.Anything, []int64{}).Return(map[int64][]domain.OptionImage{}, nil)
	overrides.On("ListCustomByCategory", mock.Anything, int64(5), int64(1)).Return([]domain.CustomOption{}, nil)

	resolved, err := svc.ResolveCategory(context.Background(), 5, 1)
	assert.NoError(t, err)
	assert.Empty(t, resolved)
}

func TestResolveCategory_UnknownCategory(t *testing.T) {
	svc, apts, cats, _, _ := newTestService()

	apts.On("GetByID", mock.Anything, int64(5)).Return(&domain.Apartment{ID: 5, ProjectID: 1}, nil)
	cats.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.ResolveCategory(context.Background(), 5, 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveCategory_ForeignProjectCategory(t *testing.T) {
	svc, apts, cats, opts, overrides := newTestService()

	// category 7 exists, but in another project
	apts.On("GetByID", mock.Anything, int64(5)).Return(&domain.Apartment{ID: 5, ProjectID: 1}, nil)
	cats.On("GetByID", mock.Anything, int64(7)).Return(&domain.Category{ID: 7, ProjectID: 2}, nil)

	_, err := svc.ResolveCategory(context.Background(), 5, 7)
	assert.ErrorIs(t, err, ErrNotFound)
	opts.AssertNotCalled(t, "ListByCategory", mock.Anything, mock.Anything)
	overrides.AssertNotCalled(t, "ListCustomByCategory", mock.Anything, mock.Anything, mock.Anything)
}

func TestDefaultOption_MarkedDefaultWins(t *testing.T) {
	opts := []ResolvedOption{
		{Ref: domain.CatalogRef(1)},
		{Ref: domain.CatalogRef(2), IsDefault: true},
	}
	d := DefaultOption(opts)
	assert.NotNil(t, d)
	assert.Equal(t, domain.CatalogRef(2), d.Ref)
}

func TestDefaultOption_FallsBackToFirstCatalogOption(t *testing.T) {
	opts := []ResolvedOption{
		{Ref: domain.CustomRef(9)},
		{Ref: domain.CatalogRef(11), Price: 1200},
	}
	d := DefaultOption(opts)
	assert.NotNil(t, d)
	assert.Equal(t, domain.CatalogRef(11), d.Ref, "custom options are never auto-selected")
}

func TestDefaultOption_NoCatalogOptions(t *testing.T) {
	assert.Nil(t, DefaultOption(nil))
	assert.Nil(t, DefaultOption([]ResolvedOption{{Ref: domain.CustomRef(1)}}))
}
