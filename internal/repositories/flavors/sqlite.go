package flavors

import (
	"context"
	"fmt"
	"strings"

	"github.com/avoskres/parlor/internal/dbx"
	"github.com/avoskres/parlor/internal/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Search returns one catalog page matching the filter.
//
// Substring matching uses instr() rather than LIKE: SQLite's LIKE is
// case-insensitive for ASCII, and the contract here is case-sensitive.
// Rows are ordered by (name, id) so paging over the same filter partitions
// the result set with no overlap and no gaps.
func (r *SQLiteRepository) Search(ctx context.Context, f SearchFilter) ([]models.Flavor, error) {
	query := `SELECT id, name, price, season FROM flavors`

	var (
		clauses []string
		args    []any
	)
	if f.Query != "" {
		clauses = append(clauses, `instr(name, ?) > 0`)
		args = append(args, f.Query)
	}
	if f.Season != "" && f.Season != models.SeasonAll {
		clauses = append(clauses, `(season = ? OR season = 'All')`)
		args = append(args, f.Season)
	}
	if len(clauses) > 0 {
		query += ` WHERE ` + strings.Join(clauses, ` AND `)
	}
	query += ` ORDER BY name, id LIMIT ? OFFSET ?`
	args = append(args, f.Limit, f.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search flavors: %w", err)
	}
	defer rows.Close()

	var result []models.Flavor
	for rows.Next() {
		var item models.Flavor
		if err := rows.Scan(&item.ID, &item.Name, &item.Price, &item.Season); err != nil {
			return nil, fmt.Errorf("failed to scan flavor row: %w", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate flavor rows: %w", err)
	}
	return result, nil
}

// Create inserts a catalog row and fills in the assigned id.
// An empty Season is stored as 'All', mirroring the column default.
func (r *SQLiteRepository) Create(ctx context.Context, flavor *models.Flavor) error {
	season := flavor.Season
	if season == "" {
		season = models.SeasonAll
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO flavors (name, price, season) VALUES (?, ?, ?)`,
		flavor.Name, flavor.Price, season)
	if err != nil {
		return fmt.Errorf("failed to insert flavor: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted flavor id: %w", err)
	}
	flavor.ID = id
	return nil
}
