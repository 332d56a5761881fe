package admin

import (
	"context"

	"finishout/internal/domain"
)

type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id int64) error
}

type ApartmentRepository interface {
	Create(ctx context.Context, a *domain.Apartment) error
	GetByID(ctx context.Context, id int64) (*domain.Apartment, error)
	ListByProject(ctx context.Context, projectID int64) ([]domain.Apartment, error)
	Delete(ctx context.Context, id int64) error
}

type CategoryRepository interface {
	Create(ctx context.Context, c *domain.Category) error
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	ListByProject(ctx context.Context, projectID int64) ([]domain.Category, error)
	Update(ctx context.Context, c *domain.Category) error
	Delete(ctx context.Context, id int64) error
}

type OptionRepository interface {
	Create(ctx context.Context, o *domain.Option) error
	GetByID(ctx context.Context, id int64) (*domain.Option, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]domain.Option, error)
	Update(ctx context.Context, o *domain.Option) error
	Delete(ctx context.Context, id int64) error
	AddImage(ctx context.Context, img *domain.OptionImage) error
	DeleteImage(ctx context.Context, optionID, imageID int64) error
}

type OverrideRepository interface {
	HideOption(ctx context.Context, apartmentID, optionID int64) error
	UnhideOption(ctx context.Context, apartmentID, optionID int64) error
	CreateCustom(ctx context.Context, c *domain.CustomOption) error
	DeleteCustom(ctx context.Context, apartmentID, customOptionID int64) error
}

type AdminUserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error)
}

// CodeGenerator mints unique apartment access codes; the access module's
// service is the production implementation.
type CodeGenerator interface {
	GenerateCode(ctx context.Context) (string, error)
}
