package handlers

import (
	"github.com/jmoiron/sqlx"

	"tradebinder/internal/catalog"
	"tradebinder/internal/config"
	"tradebinder/internal/imagestore"
	"tradebinder/internal/repos"
	"tradebinder/internal/services"
)

type Deps struct {
	ListingHandler   *ListingHandler
	InventoryHandler *InventoryHandler
	CartHandler      *CartHandler
	CatalogHandler   *CatalogHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config, images *imagestore.Store, cat *catalog.Client) *Deps {
	cardRepo := repos.NewCardRepo(db)

	listingSvc := services.NewListingService(cardRepo, images)
	invSvc := services.NewInventoryService(cardRepo)
	cartSvc := services.NewTradeCartService(cardRepo)

	return &Deps{
		ListingHandler:   &ListingHandler{Listings: listingSvc},
		InventoryHandler: &InventoryHandler{Inv: invSvc},
		CartHandler:      &CartHandler{Cart: cartSvc},
		CatalogHandler:   &CatalogHandler{Catalog: cat},
	}
}
