package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avoskres/parlor/internal/common"
	"github.com/avoskres/parlor/internal/dbx"
	"github.com/avoskres/parlor/internal/models"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Create inserts a new user row. A unique-constraint violation on username
// maps to common.ErrorAlreadyExists; the failed insert leaves no partial row.
func (r *SQLiteRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query := `INSERT INTO users (username, salt, password_hash) VALUES (?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query, user.UserName, user.Salt, user.PasswordHash)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get inserted user id: %w", err)
	}
	user.ID = id

	return user, nil
}

// GetByUserName returns the user with the given username, or common.ErrorNotFound.
func (r *SQLiteRepository) GetByUserName(ctx context.Context, userName string) (*models.User, error) {
	query := `SELECT id, username, salt, password_hash FROM users WHERE username = ?`

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, userName).
		Scan(&user.ID, &user.UserName, &user.Salt, &user.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("failed to select user: %w", err)
	}

	return user, nil
}

func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	return errors.As(err, &se) && se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
}
