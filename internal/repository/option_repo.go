package repository

import (
	"context"
	"time"

	"finishout/internal/domain"

	"gorm.io/gorm"
)

type OptionRepository struct {
	db *gorm.DB
}

func NewOptionRepository(db *gorm.DB) *OptionRepository {
	return &OptionRepository{db: db}
}

type optionModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	CategoryID  int64     `gorm:"column:category_id;not null;index:idx_option_category_rank"`
	Name        string    `gorm:"column:name;not null"`
	Description string    `gorm:"column:description;type:text"`
	InfoText    string    `gorm:"column:info_text;type:text"`
	Price       float64   `gorm:"column:price;not null;default:0"`
	IsDefault   bool      `gorm:"column:is_default;not null;default:false"`
	SortRank    int       `gorm:"column:sort_rank;not null;default:0;index:idx_option_category_rank"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (optionModel) TableName() string { return "options" }

type optionImageModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	OptionID  int64     `gorm:"column:option_id;not null;index"`
	StoredKey string    `gorm:"column:stored_key"`
	URL       string    `gorm:"column:url;not null"`
	SortRank  int       `gorm:"column:sort_rank;not null;default:0"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (optionImageModel) TableName() string { return "option_images" }

func toDomainOption(m optionModel) *domain.Option {
	return &domain.Option{
		ID:          m.ID,
		CategoryID:  m.CategoryID,
		Name:        m.Name,
		Description: m.Description,
		InfoText:    m.InfoText,
		Price:       m.Price,
		IsDefault:   m.IsDefault,
		SortRank:    m.SortRank,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toDomainOptionImage(m optionImageModel) domain.OptionImage {
	return domain.OptionImage{
		ID:        m.ID,
		OptionID:  m.OptionID,
		StoredKey: m.StoredKey,
		URL:       m.URL,
		SortRank:  m.SortRank,
		CreatedAt: m.CreatedAt,
	}
}

// Create inserts the option and, when it is flagged default, clears the
// default flag on its category siblings in the same transaction. At most
// one default per category survives any write.
func (r *OptionRepository) Create(ctx context.Context, o *domain.Option) error {
	m := optionModel{
		CategoryID:  o.CategoryID,
		Name:        o.Name,
		Description: o.Description,
		InfoText:    o.InfoText,
		Price:       o.Price,
		IsDefault:   o.IsDefault,
		SortRank:    o.SortRank,
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if m.IsDefault {
			if err := tx.Model(&optionModel{}).
				Where("category_id = ?", m.CategoryID).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(&m).Error
	})
	if err != nil {
		return err
	}
	*o = *toDomainOption(m)
	return nil
}

func (r *OptionRepository) GetByID(ctx context.Context, id int64) (*domain.Option, error) {
	var m optionModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainOption(m), nil
}

// ListByCategory returns options in display order: sort rank ascending, id
// ascending as a stable tie break.
func (r *OptionRepository) ListByCategory(ctx context.Context, categoryID int64) ([]domain.Option, error) {
	var ms []optionModel
	tx := r.db.WithContext(ctx).Where("category_id = ?", categoryID).
		Order("sort_rank ASC, id ASC").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Option, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainOption(m))
	}
	return out, nil
}

func (r *OptionRepository) Update(ctx context.Context, o *domain.Option) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if o.IsDefault {
			if err := tx.Model(&optionModel{}).
				Where("category_id = ? AND id <> ?", o.CategoryID, o.ID).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}
		res := tx.Model(&optionModel{}).Where("id = ?", o.ID).Updates(map[string]any{
			"name":        o.Name,
			"description": o.Description,
			"info_text":   o.InfoText,
			"price":       o.Price,
			"is_default":  o.IsDefault,
			"sort_rank":   o.SortRank,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *OptionRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("option_id = ?", id).Delete(&optionImageModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&optionModel{}, id).Error
	})
}

func (r *OptionRepository) AddImage(ctx context.Context, img *domain.OptionImage) error {
	m := optionImageModel{
		OptionID:  img.OptionID,
		StoredKey: img.StoredKey,
		URL:       img.URL,
		SortRank:  img.SortRank,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*img = toDomainOptionImage(m)
	return nil
}

func (r *OptionRepository) DeleteImage(ctx context.Context, optionID, imageID int64) error {
	tx := r.db.WithContext(ctx).Where("id = ? AND option_id = ?", imageID, optionID).
		Delete(&optionImageModel{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListImages returns the images of each given option keyed by option id,
// primary image (rank 0) first, then additional images in stored order.
func (r *OptionRepository) ListImages(ctx context.Context, optionIDs []int64) (map[int64][]domain.OptionImage, error) {
	out := make(map[int64][]domain.OptionImage, len(optionIDs))
	if len(optionIDs) == 0 {
		return out, nil
	}
	var ms []optionImageModel
	tx := r.db.WithContext(ctx).Where("option_id IN ?", optionIDs).
		Order("option_id ASC, sort_rank ASC, id ASC").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	for _, m := range ms {
		out[m.OptionID] = append(out[m.OptionID], toDomainOptionImage(m))
	}
	return out, nil
}
