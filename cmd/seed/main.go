package main

import (
	"context"
	"log"

	"finishout/internal/config"
	"finishout/internal/database"
	"finishout/internal/domain"
	"finishout/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// Seeds a demo project with a known access code so the wizard can be tried
// locally right after `go run ./cmd/seed && go run ./cmd/api`.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM selections")
	db.Exec("DELETE FROM hidden_options")
	db.Exec("DELETE FROM custom_options")
	db.Exec("DELETE FROM option_images")
	db.Exec("DELETE FROM options")
	db.Exec("DELETE FROM categories")
	db.Exec("DELETE FROM apartments")
	db.Exec("DELETE FROM projects")
	db.Exec("DELETE FROM admin_users")

	ctx := context.Background()

	adminRepo := repository.NewAdminUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	apartmentRepo := repository.NewApartmentRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	optionRepo := repository.NewOptionRepository(db)
	overrideRepo := repository.NewOverrideRepository(db)

	log.Println("Creating admin user...")
	hash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	adminUser := &domain.AdminUser{
		Email:        "admin@finishout.local",
		PasswordHash: string(hash),
		Name:         "Bauleitung",
	}
	if err := adminRepo.Create(ctx, adminUser); err != nil {
		log.Fatal(err)
	}

	log.Println("Creating project...")
	project := &domain.Project{
		Name:      "Wohnpark Lindenhof",
		Address:   "Lindenstraße 12, 50674 Köln",
		IntroText: "Willkommen zur Bemusterung Ihrer Wohnung.",
		Status:    domain.ProjectActive,
	}
	if err := projectRepo.Create(ctx, project); err != nil {
		log.Fatal(err)
	}

	apartment := &domain.Apartment{
		ProjectID:  project.ID,
		Name:       "WE 01",
		AccessCode: "DEMO2345",
		Status:     domain.ApartmentOpen,
	}
	if err := apartmentRepo.Create(ctx, apartment); err != nil {
		log.Fatal(err)
	}

	log.Println("Creating catalog...")
	flooring := &domain.Category{
		ProjectID:   project.ID,
		Name:        "Bodenbelag",
		Description: "Bodenbelag für Wohn- und Schlafräume",
		SortRank:    1,
	}
	bathroom := &domain.Category{
		ProjectID:   project.ID,
		Name:        "Sanitär",
		Description: "Ausstattung des Badezimmers",
		SortRank:    2,
	}
	for _, cat := range []*domain.Category{flooring, bathroom} {
		if err := categoryRepo.Create(ctx, cat); err != nil {
			log.Fatal(err)
		}
	}

	options := []*domain.Option{
		{CategoryID: flooring.ID, Name: "Eiche Landhausdiele", Description: "Parkett, geölt", Price: 0, IsDefault: true, SortRank: 1},
		{CategoryID: flooring.ID, Name: "Fischgrät Parkett", Description: "Eiche, geräuchert", Price: 1200, SortRank: 2},
		{CategoryID: flooring.ID, Name: "Vinyl Steinoptik", Description: "Feuchtraumgeeignet", Price: -350, SortRank: 3},
		{CategoryID: bathroom.ID, Name: "Standard Waschtisch", Description: "60 cm, weiß", Price: 0, IsDefault: true, SortRank: 1},
		{CategoryID: bathroom.ID, Name: "Doppelwaschtisch", Description: "120 cm, mit Unterschrank", Price: 890, SortRank: 2},
	}
	for _, o := range options {
		if err := optionRepo.Create(ctx, o); err != nil {
			log.Fatal(err)
		}
	}

	custom := &domain.CustomOption{
		ApartmentID: apartment.ID,
		CategoryID:  flooring.ID,
		Name:        "Sonderfliese Terrazzo",
		Description: "Kundenwunsch laut Angebot 2024-117",
		Price:       900,
	}
	if err := overrideRepo.CreateCustom(ctx, custom); err != nil {
		log.Fatal(err)
	}

	log.Println("Seed complete.")
	log.Printf("Demo access code: %s", apartment.AccessCode)
	log.Printf("Admin login: %s / admin123", adminUser.Email)
}
