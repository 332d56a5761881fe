package repository

import (
	"context"
	"time"

	"finishout/internal/domain"

	"gorm.io/gorm"
)

type ApartmentRepository struct {
	db *gorm.DB
}

func NewApartmentRepository(db *gorm.DB) *ApartmentRepository {
	return &ApartmentRepository{db: db}
}

type apartmentModel struct {
	ID           int64      `gorm:"column:id;primaryKey"`
	ProjectID    int64      `gorm:"column:project_id;not null;uniqueIndex:idx_apartment_project_name"`
	Name         string     `gorm:"column:name;not null;uniqueIndex:idx_apartment_project_name"`
	AccessCode   string     `gorm:"column:access_code;not null;uniqueIndex:idx_apartment_access_code"`
	Status       string     `gorm:"column:status;not null;default:open"`
	CustomerName string     `gorm:"column:customer_name"`
	CompletedAt  *time.Time `gorm:"column:completed_at"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at"`
}

func (apartmentModel) TableName() string { return "apartments" }

func toDomainApartment(m apartmentModel) *domain.Apartment {
	return &domain.Apartment{
		ID:           m.ID,
		ProjectID:    m.ProjectID,
		Name:         m.Name,
		AccessCode:   m.AccessCode,
		Status:       domain.ApartmentStatus(m.Status),
		CustomerName: m.CustomerName,
		CompletedAt:  m.CompletedAt,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toApartmentModel(a *domain.Apartment) apartmentModel {
	return apartmentModel{
		ID:           a.ID,
		ProjectID:    a.ProjectID,
		Name:         a.Name,
		AccessCode:   a.AccessCode,
		Status:       string(a.Status),
		CustomerName: a.CustomerName,
		CompletedAt:  a.CompletedAt,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

// Create maps unique-index failures to ErrDuplicate so the caller can tell a
// name/code collision apart from a transient storage error.
func (r *ApartmentRepository) Create(ctx context.Context, a *domain.Apartment) error {
	m := toApartmentModel(a)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		if isUniqueViolation(tx.Error) {
			return ErrDuplicate
		}
		return tx.Error
	}
	*a = *toDomainApartment(m)
	return nil
}

func (r *ApartmentRepository) GetByID(ctx context.Context, id int64) (*domain.Apartment, error) {
	var m apartmentModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainApartment(m), nil
}

// GetByCode expects the code in canonical (uppercased) form; matching is
// exact, never a prefix.
func (r *ApartmentRepository) GetByCode(ctx context.Context, code string) (*domain.Apartment, error) {
	var m apartmentModel
	tx := r.db.WithContext(ctx).Where("access_code = ?", code).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainApartment(m), nil
}

func (r *ApartmentRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	var n int64
	tx := r.db.WithContext(ctx).Model(&apartmentModel{}).Where("access_code = ?", code).Count(&n)
	if tx.Error != nil {
		return false, tx.Error
	}
	return n > 0, nil
}

func (r *ApartmentRepository) ListByProject(ctx context.Context, projectID int64) ([]domain.Apartment, error) {
	var ms []apartmentModel
	tx := r.db.WithContext(ctx).Where("project_id = ?", projectID).Order("name ASC").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Apartment, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainApartment(m))
	}
	return out, nil
}

// AdvanceStatus is a compare-and-set on the status column. It reports
// whether the transition was applied; a false return with nil error means
// the apartment was not in the expected state.
func (r *ApartmentRepository) AdvanceStatus(ctx context.Context, id int64, from, to domain.ApartmentStatus) (bool, error) {
	tx := r.db.WithContext(ctx).Model(&apartmentModel{}).
		Where("id = ? AND status = ?", id, string(from)).
		Update("status", string(to))
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *ApartmentRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&apartmentModel{}, id).Error
}
