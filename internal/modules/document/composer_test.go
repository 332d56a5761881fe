package document

import (
	"context"
	"testing"
	"time"

	"finishout/internal/domain"
	"finishout/internal/modules/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockApartmentRepository struct{ mock.Mock }

func (m *MockApartmentRepository) GetByID(ctx context.Context, id int64) (*domain.Apartment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Apartment), args.Error(1)
}

type MockProjectRepository struct{ mock.Mock }

func (m *MockProjectRepository) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

type MockCategoryRepository struct{ mock.Mock }

func (m *MockCategoryRepository) ListByProject(ctx context.Context, projectID int64) ([]domain.Category, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

type MockOptionRepository struct{ mock.Mock }

func (m *MockOptionRepository) GetByID(ctx context.Context, id int64) (*domain.Option, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Option), args.Error(1)
}

func (m *MockOptionRepository) ListImages(ctx context.Context, optionIDs []int64) (map[int64][]domain.OptionImage, error) {
	args := m.Called(ctx, optionIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64][]domain.OptionImage), args.Error(1)
}

type MockCustomOptionRepository struct{ mock.Mock }

func (m *MockCustomOptionRepository) GetCustomByID(ctx context.Context, id int64) (*domain.CustomOption, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CustomOption), args.Error(1)
}

type MockSelectionRepository struct{ mock.Mock }

func (m *MockSelectionRepository) ListByApartment(ctx context.Context, apartmentID int64) ([]domain.Selection, error) {
	args := m.Called(ctx, apartmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Selection), args.Error(1)
}

func floatPtr(v float64) *float64 { return &v }

func newTestComposer() (*Composer, *MockApartmentRepository, *MockProjectRepository, *MockCategoryRepository, *MockOptionRepository, *MockCustomOptionRepository, *MockSelectionRepository) {
	apts := new(MockApartmentRepository)
	projects := new(MockProjectRepository)
	cats := new(MockCategoryRepository)
	opts := new(MockOptionRepository)
	customs := new(MockCustomOptionRepository)
	sels := new(MockSelectionRepository)
	pricingSvc := pricing.NewService(opts, customs)
	return NewComposer(apts, projects, cats, opts, customs, sels, pricingSvc),
		apts, projects, cats, opts, customs, sels
}

func TestCompose_FullSummary(t *testing.T) {
	composer, apts, projects, cats, opts, customs, sels := newTestComposer()

	completed := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	apts.On("GetByID", mock.Anything, int64(5)).Return(&domain.Apartment{
		ID: 5, ProjectID: 1, Name: "WE 01", AccessCode: "DEMO2345",
		CustomerName: "Familie Weber", Status: domain.ApartmentCompleted,
		CompletedAt: &completed,
	}, nil)
	projects.On("GetByID", mock.Anything, int64(1)).Return(&domain.Project{
		ID: 1, Name: "Wohnpark Lindenhof", Address: "Lindenstraße 12",
	}, nil)
	cats.On("ListByProject", mock.Anything, int64(1)).Return([]domain.Category{
		{ID: 1, Name: "Bodenbelag", SortRank: 1},
		{ID: 2, Name: "Sanitär", SortRank: 2},
		{ID: 3, Name: "Elektro", SortRank: 3}, // no selection: omitted
	}, nil)
	sels.On("ListByApartment", mock.Anything, int64(5)).Return([]domain.Selection{
		{ApartmentID: 5, CategoryID: 1, Ref: domain.CatalogRef(11), Price: floatPtr(1200)},
		{ApartmentID: 5, CategoryID: 2, Ref: domain.CustomRef(3), Price: floatPtr(900)},
	}, nil)
	opts.On("GetByID", mock.Anything, int64(11)).Return(&domain.Option{
		ID: 11, Name: "Fischgrät Parkett", Description: "Eiche, geräuchert",
	}, nil)
	opts.On("ListImages", mock.Anything, []int64{11}).Return(map[int64][]domain.OptionImage{
		11: {
			{OptionID: 11, URL: "https://cdn/primary.jpg", SortRank: 0},
			{OptionID: 11, URL: "https://cdn/extra.jpg", SortRank: 1},
		},
	}, nil)
	customs.On("GetCustomByID", mock.Anything, int64(3)).Return(&domain.CustomOption{
		ID: 3, Name: "Sonderfliese Terrazzo", Price: 900,
	}, nil)

	sum, err := composer.Compose(context.Background(), 5)
	assert.NoError(t, err)

	assert.Equal(t, "Wohnpark Lindenhof", sum.ProjectName)
	assert.Equal(t, "WE 01", sum.ApartmentName)
	assert.Equal(t, "Familie Weber", sum.CustomerName)
	assert.Equal(t, "DEMO2345", sum.AccessCode)
	assert.Equal(t, &completed, sum.CompletedAt)

	// rows follow category display order, unselected categories are omitted
	assert.Len(t, sum.Rows, 2)
	assert.Equal(t, "Bodenbelag", sum.Rows[0].CategoryName)
	assert.Equal(t, "Fischgrät Parkett", sum.Rows[0].OptionName)
	assert.Equal(t, []string{"https://cdn/primary.jpg", "https://cdn/extra.jpg"}, sum.Rows[0].ImageURLs)
	assert.Equal(t, "+1.200,00 €", sum.Rows[0].PriceLabel)

	assert.Equal(t, "Sanitär", sum.Rows[1].CategoryName)
	assert.Equal(t, "Sonderfliese Terrazzo", sum.Rows[1].OptionName)
	assert.True(t, sum.Rows[1].Custom)
	assert.Equal(t, "+900,00 €", sum.Rows[1].PriceLabel)

	assert.Equal(t, 2100.0, sum.Total)
	assert.Equal(t, "2.100,00 €", sum.TotalLabel)
}

func TestCompose_DanglingReferenceOmitted(t *testing.T) {
	composer, apts, projects, cats, _, customs, sels := newTestComposer()

	apts.On("GetByID", mock.Anything, int64(5)).Return(&domain.Apartment{
		ID: 5, ProjectID: 1, Name: "WE 01", Status: domain.ApartmentCompleted,
	}, nil)
	projects.On("GetByID", mock.Anything, int64(1)).Return(&domain.Project{ID: 1}, nil)
	cats.On("ListByProject", mock.Anything, int64(1)).Return([]domain.Category{
		{ID: 1, Name: "Bodenbelag"},
	}, nil)
	sels.On("ListByApartment", mock.Anything, int64(5)).Return([]domain.Selection{
		{ApartmentID: 5, CategoryID: 1, Ref: domain.CustomRef(3), Price: floatPtr(900)},
	}, nil)
	// the custom option was deleted after being chosen
	customs.On("GetCustomByID", mock.Anything, int64(3)).Return(nil, gorm.ErrRecordNotFound)

	sum, err := composer.Compose(context.Background(), 5)
	assert.NoError(t, err)
	assert.Empty(t, sum.Rows)
	// the omitted row's snapshotted price must not leak into the total
	assert.Zero(t, sum.Total)
	assert.Equal(t, "0,00 €", sum.TotalLabel)
}

func TestCompose_ZeroPriceIsIncluded(t *testing.T) {
	composer, apts, projects, cats, opts, _, sels := newTestComposer()

	apts.On("GetByID", mock.Anything, int64(5)).Return(&domain.Apartment{
		ID: 5, ProjectID: 1, Name: "WE 01", Status: domain.ApartmentInProgress,
	}, nil)
	projects.On("GetByID", mock.Anything, int64(1)).Return(&domain.Project{ID: 1}, nil)
	cats.On("ListByProject", mock.Anything, int64(1)).Return([]domain.Category{
		{ID: 1, Name: "Bodenbelag"},
	}, nil)
	sels.On("ListByApartment", mock.Anything, int64(5)).Return([]domain.Selection{
		{ApartmentID: 5, CategoryID: 1, Ref: domain.CatalogRef(10)},
	}, nil)
	opts.On("GetByID", mock.Anything, int64(10)).Return(&domain.Option{
		ID: 10, Name: "Eiche Landhausdiele", Price: 0,
	}, nil)
	opts.On("ListImages", mock.Anything, []int64{10}).Return(map[int64][]domain.OptionImage{}, nil)

	sum, err := composer.Compose(context.Background(), 5)
	assert.NoError(t, err)
	assert.Len(t, sum.Rows, 1)
	assert.Equal(t, "inklusive", sum.Rows[0].PriceLabel)
}
