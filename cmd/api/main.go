package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"finishout/internal/config"
	"finishout/internal/database"
	"finishout/internal/middleware"
	"finishout/internal/modules/access"
	"finishout/internal/modules/admin"
	"finishout/internal/modules/catalog"
	"finishout/internal/modules/document"
	"finishout/internal/modules/pricing"
	"finishout/internal/modules/selection"
	jwtsvc "finishout/internal/pkg/jwt"
	"finishout/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	projectRepo := repository.NewProjectRepository(db)
	apartmentRepo := repository.NewApartmentRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	optionRepo := repository.NewOptionRepository(db)
	overrideRepo := repository.NewOverrideRepository(db)
	selectionRepo := repository.NewSelectionRepository(db)
	adminUserRepo := repository.NewAdminUserRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	gate := access.NewService(apartmentRepo, cfg.CodeLength, cfg.CodeMaxAttempts)
	resolver := catalog.NewService(apartmentRepo, categoryRepo, optionRepo, overrideRepo)
	selectionSvc := selection.NewService(apartmentRepo, selectionRepo, resolver)
	pricingSvc := pricing.NewService(optionRepo, overrideRepo)
	composer := document.NewComposer(
		apartmentRepo, projectRepo, categoryRepo,
		optionRepo, overrideRepo, selectionRepo, pricingSvc,
	)
	adminSvc := admin.NewService(
		adminUserRepo, projectRepo, apartmentRepo,
		categoryRepo, optionRepo, overrideRepo, gate, j,
	)

	accessHandler := access.NewHandler(gate, projectRepo, resolver, selectionSvc)
	selectionHandler := selection.NewHandler(gate, selectionSvc)
	documentHandler := document.NewHandler(gate, composer)
	adminHandler := admin.NewHandler(adminSvc)

	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		// customer wizard, gated by access code only
		accessHandler.RegisterRoutes(v1)
		selectionHandler.RegisterRoutes(v1)
		documentHandler.RegisterRoutes(v1)

		adminHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.AdminAuth(j))
		{
			adminHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}
