package services

import (
	"context"
	"database/sql"

	"github.com/avoskres/parlor/internal/dbx"
	"github.com/avoskres/parlor/internal/logging"
	"github.com/avoskres/parlor/internal/models"
	"github.com/avoskres/parlor/internal/repositories/flavors"
)

// CatalogService serves paginated, filterable flavor listings and seeds the
// catalog. Search inputs are normalized here so the repository always sees a
// sane page window.
type CatalogService struct {
	db       *sql.DB
	pageSize int
	logger   logging.Logger
}

// NewCatalogService constructs a CatalogService. pageSize is the fallback
// page window used when callers pass a non-positive limit.
func NewCatalogService(db *sql.DB, pageSize int, logger logging.Logger) *CatalogService {
	return &CatalogService{db: db, pageSize: pageSize, logger: logger.With("component", "catalog")}
}

func (s *CatalogService) getFlavorsRepo(db dbx.DBTX) flavors.Repository {
	return flavors.NewSQLiteRepository(db)
}

// PageSize returns the configured page window.
func (s *CatalogService) PageSize() int {
	return s.pageSize
}

// Search returns one page of flavors for the given season filter and
// substring query. Non-positive limits fall back to the configured page size;
// negative offsets clamp to zero.
func (s *CatalogService) Search(ctx context.Context, season, query string, limit, offset int) ([]models.Flavor, error) {
	if limit <= 0 {
		limit = s.pageSize
	}
	if offset < 0 {
		offset = 0
	}

	repo := s.getFlavorsRepo(s.db)
	result, err := repo.Search(ctx, flavors.SearchFilter{
		Season: season,
		Query:  query,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug(ctx, "catalog searched",
		"season", season, "query", query, "offset", offset, "rows", len(result))
	return result, nil
}

// Seed inserts the given flavors in a single transaction, so a half-loaded
// catalog never becomes visible.
func (s *CatalogService) Seed(ctx context.Context, items []models.Flavor) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.getFlavorsRepo(tx)
		for i := range items {
			if err := repo.Create(ctx, &items[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info(ctx, "catalog seeded", "count", len(items))
	return nil
}
