package handlers

import (
	"bagatelle/internal/config"
	"bagatelle/internal/repos"
	"bagatelle/internal/services"
	"bagatelle/internal/storage"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	CatalogueHandler *CatalogueHandler
	ProductHandler   *ProductHandler
	UploadHandler    *UploadHandler
	SitemapHandler   *SitemapHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config, auth *services.AuthService) *Deps {
	prodRepo := repos.NewProductRepo(db)
	store := storage.NewFSStore(cfg.MediaDir, "/media")

	catalogSvc := services.NewCatalogService(prodRepo)
	uploadSvc := services.NewUploadService(prodRepo, store)

	return &Deps{
		CatalogueHandler: &CatalogueHandler{Catalog: catalogSvc},
		ProductHandler:   &ProductHandler{Catalog: catalogSvc},
		UploadHandler:    &UploadHandler{Uploads: uploadSvc},
		SitemapHandler:   &SitemapHandler{Catalog: catalogSvc, SiteURL: cfg.SiteURL},
	}
}
