package admin

import (
	"context"
	"errors"

	"finishout/internal/domain"
	"finishout/internal/pkg/jwt"
	"finishout/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Service is the administrative side: global catalog maintenance and
// apartment-local overrides. The customer-facing core only ever reads what
// this service writes.
type Service struct {
	admins     AdminUserRepository
	projects   ProjectRepository
	apartments ApartmentRepository
	categories CategoryRepository
	options    OptionRepository
	overrides  OverrideRepository
	codes      CodeGenerator
	jwt        *jwt.Service
}

func NewService(
	admins AdminUserRepository,
	projects ProjectRepository,
	apartments ApartmentRepository,
	categories CategoryRepository,
	options OptionRepository,
	overrides OverrideRepository,
	codes CodeGenerator,
	jwtSvc *jwt.Service,
) *Service {
	return &Service{
		admins:     admins,
		projects:   projects,
		apartments: apartments,
		categories: categories,
		options:    options,
		overrides:  overrides,
		codes:      codes,
		jwt:        jwtSvc,
	}
}

func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.admins.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrUnauthorized
		}
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", ErrUnauthorized
	}
	return s.jwt.GenerateToken(user.ID, "admin")
}

func (s *Service) CreateProject(ctx context.Context, req ProjectRequest) (*domain.Project, error) {
	status := domain.ProjectStatus(req.Status)
	if status == "" {
		status = domain.ProjectDraft
	}
	p := &domain.Project{
		Name:      req.Name,
		Address:   req.Address,
		IntroText: req.IntroText,
		Status:    status,
	}
	if err := s.projects.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) UpdateProject(ctx context.Context, id int64, req ProjectRequest) (*domain.Project, error) {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	p.Name = req.Name
	p.Address = req.Address
	p.IntroText = req.IntroText
	if req.Status != "" {
		p.Status = domain.ProjectStatus(req.Status)
	}
	if err := s.projects.Update(ctx, p); err != nil {
		return nil, mapNotFound(err)
	}
	return p, nil
}

func (s *Service) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return s.projects.List(ctx)
}

// CreateApartment mints a unique access code server-side; a duplicate
// apartment name within the project surfaces as ErrConflict.
func (s *Service) CreateApartment(ctx context.Context, projectID int64, req ApartmentRequest) (*domain.Apartment, error) {
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return nil, mapNotFound(err)
	}
	code, err := s.codes.GenerateCode(ctx)
	if err != nil {
		return nil, err
	}
	a := &domain.Apartment{
		ProjectID:    projectID,
		Name:         req.Name,
		AccessCode:   code,
		Status:       domain.ApartmentOpen,
		CustomerName: req.CustomerName,
	}
	if err := s.apartments.Create(ctx, a); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return a, nil
}

func (s *Service) ListApartments(ctx context.Context, projectID int64) ([]domain.Apartment, error) {
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return nil, mapNotFound(err)
	}
	return s.apartments.ListByProject(ctx, projectID)
}

func (s *Service) CreateCategory(ctx context.Context, projectID int64, req CategoryRequest) (*domain.Category, error) {
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return nil, mapNotFound(err)
	}
	c := &domain.Category{
		ProjectID:   projectID,
		Name:        req.Name,
		Description: req.Description,
		SortRank:    req.SortRank,
	}
	if err := s.categories.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) UpdateCategory(ctx context.Context, id int64, req CategoryRequest) (*domain.Category, error) {
	c, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	c.Name = req.Name
	c.Description = req.Description
	c.SortRank = req.SortRank
	if err := s.categories.Update(ctx, c); err != nil {
		return nil, mapNotFound(err)
	}
	return c, nil
}

func (s *Service) DeleteCategory(ctx context.Context, id int64) error {
	return s.categories.Delete(ctx, id)
}

func (s *Service) CreateOption(ctx context.Context, categoryID int64, req OptionRequest) (*domain.Option, error) {
	if _, err := s.categories.GetByID(ctx, categoryID); err != nil {
		return nil, mapNotFound(err)
	}
	o := &domain.Option{
		CategoryID:  categoryID,
		Name:        req.Name,
		Description: req.Description,
		InfoText:    req.InfoText,
		Price:       req.Price,
		IsDefault:   req.IsDefault,
		SortRank:    req.SortRank,
	}
	if err := s.options.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *Service) UpdateOption(ctx context.Context, id int64, req OptionRequest) (*domain.Option, error) {
	o, err := s.options.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	o.Name = req.Name
	o.Description = req.Description
	o.InfoText = req.InfoText
	o.Price = req.Price
	o.IsDefault = req.IsDefault
	o.SortRank = req.SortRank
	if err := s.options.Update(ctx, o); err != nil {
		return nil, mapNotFound(err)
	}
	return o, nil
}

func (s *Service) DeleteOption(ctx context.Context, id int64) error {
	return s.options.Delete(ctx, id)
}

// AddOptionImage records display metadata for an externally stored image.
// The stored key ties the row to the upload relay's object name.
func (s *Service) AddOptionImage(ctx context.Context, optionID int64, req OptionImageRequest) (*domain.OptionImage, error) {
	if _, err := s.options.GetByID(ctx, optionID); err != nil {
		return nil, mapNotFound(err)
	}
	img := &domain.OptionImage{
		OptionID:  optionID,
		StoredKey: uuid.NewString(),
		URL:       req.URL,
		SortRank:  req.SortRank,
	}
	if err := s.options.AddImage(ctx, img); err != nil {
		return nil, err
	}
	return img, nil
}

func (s *Service) DeleteOptionImage(ctx context.Context, optionID, imageID int64) error {
	return mapNotFound(s.options.DeleteImage(ctx, optionID, imageID))
}

// HideOption suppresses a catalog option for one apartment. Idempotent.
func (s *Service) HideOption(ctx context.Context, apartmentID, optionID int64) error {
	if _, err := s.apartments.GetByID(ctx, apartmentID); err != nil {
		return mapNotFound(err)
	}
	if _, err := s.options.GetByID(ctx, optionID); err != nil {
		return mapNotFound(err)
	}
	return s.overrides.HideOption(ctx, apartmentID, optionID)
}

func (s *Service) UnhideOption(ctx context.Context, apartmentID, optionID int64) error {
	return s.overrides.UnhideOption(ctx, apartmentID, optionID)
}

// CreateCustomOption attaches an apartment-local option. The category must
// belong to the apartment's project.
func (s *Service) CreateCustomOption(ctx context.Context, apartmentID int64, req CustomOptionRequest) (*domain.CustomOption, error) {
	apt, err := s.apartments.GetByID(ctx, apartmentID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	cat, err := s.categories.GetByID(ctx, req.CategoryID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if cat.ProjectID != apt.ProjectID {
		return nil, ErrValidation
	}
	c := &domain.CustomOption{
		ApartmentID: apartmentID,
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		InfoText:    req.InfoText,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
	}
	if err := s.overrides.CreateCustom(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) DeleteCustomOption(ctx context.Context, apartmentID, customOptionID int64) error {
	return mapNotFound(s.overrides.DeleteCustom(ctx, apartmentID, customOptionID))
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
