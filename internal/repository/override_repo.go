package repository

import (
	"context"
	"time"

	"finishout/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OverrideRepository holds the apartment-local catalog adjustments: hidden
// catalog options and custom options.
type OverrideRepository struct {
	db *gorm.DB
}

func NewOverrideRepository(db *gorm.DB) *OverrideRepository {
	return &OverrideRepository{db: db}
}

type hiddenOptionModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	ApartmentID int64     `gorm:"column:apartment_id;not null;uniqueIndex:idx_hidden_apartment_option"`
	OptionID    int64     `gorm:"column:option_id;not null;uniqueIndex:idx_hidden_apartment_option"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (hiddenOptionModel) TableName() string { return "hidden_options" }

type customOptionModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	ApartmentID int64     `gorm:"column:apartment_id;not null;index:idx_custom_apartment_category"`
	CategoryID  int64     `gorm:"column:category_id;not null;index:idx_custom_apartment_category"`
	Name        string    `gorm:"column:name;not null"`
	Description string    `gorm:"column:description;type:text"`
	InfoText    string    `gorm:"column:info_text;type:text"`
	Price       float64   `gorm:"column:price;not null;default:0"`
	ImageURL    string    `gorm:"column:image_url"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (customOptionModel) TableName() string { return "custom_options" }

func toDomainCustomOption(m customOptionModel) *domain.CustomOption {
	return &domain.CustomOption{
		ID:          m.ID,
		ApartmentID: m.ApartmentID,
		CategoryID:  m.CategoryID,
		Name:        m.Name,
		Description: m.Description,
		InfoText:    m.InfoText,
		Price:       m.Price,
		ImageURL:    m.ImageURL,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// HideOption marks a catalog option as hidden for one apartment. Marking
// the same pair again is a no-op.
func (r *OverrideRepository) HideOption(ctx context.Context, apartmentID, optionID int64) error {
	m := hiddenOptionModel{ApartmentID: apartmentID, OptionID: optionID}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "apartment_id"}, {Name: "option_id"}},
			DoNothing: true,
		}).
		Create(&m).Error
}

func (r *OverrideRepository) UnhideOption(ctx context.Context, apartmentID, optionID int64) error {
	return r.db.WithContext(ctx).
		Where("apartment_id = ? AND option_id = ?", apartmentID, optionID).
		Delete(&hiddenOptionModel{}).Error
}

// HiddenOptionIDs returns the ids of the catalog options hidden for one
// apartment. Other apartments are unaffected by these marks.
func (r *OverrideRepository) HiddenOptionIDs(ctx context.Context, apartmentID int64) ([]int64, error) {
	var ids []int64
	tx := r.db.WithContext(ctx).Model(&hiddenOptionModel{}).
		Where("apartment_id = ?", apartmentID).
		Pluck("option_id", &ids)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return ids, nil
}

func (r *OverrideRepository) CreateCustom(ctx context.Context, c *domain.CustomOption) error {
	m := customOptionModel{
		ApartmentID: c.ApartmentID,
		CategoryID:  c.CategoryID,
		Name:        c.Name,
		Description: c.Description,
		InfoText:    c.InfoText,
		Price:       c.Price,
		ImageURL:    c.ImageURL,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*c = *toDomainCustomOption(m)
	return nil
}

func (r *OverrideRepository) GetCustomByID(ctx context.Context, id int64) (*domain.CustomOption, error) {
	var m customOptionModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainCustomOption(m), nil
}

// ListCustomByCategory returns an apartment's custom options for one
// category in creation (id) order.
func (r *OverrideRepository) ListCustomByCategory(ctx context.Context, apartmentID, categoryID int64) ([]domain.CustomOption, error) {
	var ms []customOptionModel
	tx := r.db.WithContext(ctx).
		Where("apartment_id = ? AND category_id = ?", apartmentID, categoryID).
		Order("id ASC").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.CustomOption, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainCustomOption(m))
	}
	return out, nil
}

func (r *OverrideRepository) DeleteCustom(ctx context.Context, apartmentID, customOptionID int64) error {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND apartment_id = ?", customOptionID, apartmentID).
		Delete(&customOptionModel{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
