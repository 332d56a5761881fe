package repository

import (
	"context"
	"time"

	"finishout/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SelectionRepository struct {
	db *gorm.DB
}

func NewSelectionRepository(db *gorm.DB) *SelectionRepository {
	return &SelectionRepository{db: db}
}

type selectionModel struct {
	ID             int64     `gorm:"column:id;primaryKey"`
	ApartmentID    int64     `gorm:"column:apartment_id;not null;uniqueIndex:idx_selection_apartment_category"`
	CategoryID     int64     `gorm:"column:category_id;not null;uniqueIndex:idx_selection_apartment_category"`
	OptionID       *int64    `gorm:"column:option_id"`
	CustomOptionID *int64    `gorm:"column:custom_option_id"`
	Price          *float64  `gorm:"column:price"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (selectionModel) TableName() string { return "selections" }

func toDomainSelection(m selectionModel) *domain.Selection {
	s := &domain.Selection{
		ID:          m.ID,
		ApartmentID: m.ApartmentID,
		CategoryID:  m.CategoryID,
		Price:       m.Price,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	switch {
	case m.OptionID != nil:
		s.Ref = domain.CatalogRef(*m.OptionID)
	case m.CustomOptionID != nil:
		s.Ref = domain.CustomRef(*m.CustomOptionID)
	}
	return s
}

func toSelectionModel(s *domain.Selection) selectionModel {
	m := selectionModel{
		ID:          s.ID,
		ApartmentID: s.ApartmentID,
		CategoryID:  s.CategoryID,
		Price:       s.Price,
	}
	switch s.Ref.Kind {
	case domain.RefCatalog:
		id := s.Ref.ID
		m.OptionID = &id
	case domain.RefCustom:
		id := s.Ref.ID
		m.CustomOptionID = &id
	}
	return m
}

func (r *SelectionRepository) ListByApartment(ctx context.Context, apartmentID int64) ([]domain.Selection, error) {
	var ms []selectionModel
	tx := r.db.WithContext(ctx).Where("apartment_id = ?", apartmentID).
		Order("category_id ASC").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Selection, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainSelection(m))
	}
	return out, nil
}

// Upsert writes the choice for one (apartment, category) pair, replacing any
// prior choice for that category. The unique index on the pair makes the
// replace race-free.
func (r *SelectionRepository) Upsert(ctx context.Context, s *domain.Selection) error {
	m := toSelectionModel(s)
	m.UpdatedAt = time.Now()
	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "apartment_id"}, {Name: "category_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"option_id", "custom_option_id", "price", "updated_at",
		}),
	}).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*s = *toDomainSelection(m)
	return nil
}

// CommitAll persists the full answer set and locks the apartment in a single
// transaction. The status flip is a compare-and-set guarded by the current
// status, so a second near-simultaneous commit observes zero affected rows
// and fails with ErrAlreadyCompleted without touching the first commit's
// selections or customer name.
func (r *SelectionRepository) CommitAll(ctx context.Context, apartmentID int64, sels []domain.Selection, customerName string, completedAt time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]any{
			"status":       string(domain.ApartmentCompleted),
			"completed_at": completedAt,
		}
		if customerName != "" {
			updates["customer_name"] = customerName
		}
		res := tx.Model(&apartmentModel{}).
			Where("id = ? AND status <> ?", apartmentID, string(domain.ApartmentCompleted)).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAlreadyCompleted
		}

		if err := tx.Where("apartment_id = ?", apartmentID).
			Delete(&selectionModel{}).Error; err != nil {
			return err
		}

		for i := range sels {
			m := toSelectionModel(&sels[i])
			m.ID = 0
			m.ApartmentID = apartmentID
			if err := tx.Create(&m).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
