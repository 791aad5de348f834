package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=repository.go -destination=../mocks/user/mock_repository.go -package=mock_user

// Repository defines operations for storing users.
type Repository interface {
	Create(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id int64) (User, error)
	FindByUsernameOrEmail(ctx context.Context, username, email string) (User, error)
}

// mysqlDuplicateEntry is the MySQL error number for a unique key violation
const mysqlDuplicateEntry = 1062

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// Create inserts user and sets its ID.
func (r *DBRepository) Create(ctx context.Context, user *User) error {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO users (username, email, password_hash, created_at) VALUES (?, ?, ?, ?)",
		user.Username, user.Email, user.PasswordHash, user.CreatedAt)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			return ErrAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}
	user.ID = id
	return nil
}

// FindByID returns ErrNotFound when no user has id.
func (r *DBRepository) FindByID(ctx context.Context, id int64) (User, error) {
	var user User
	if err := r.db.GetContext(ctx, &user, "SELECT * FROM users WHERE id = ?", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("find user %d: %w", id, err)
	}
	return user, nil
}

// FindByUsernameOrEmail returns the first user matching either value, or ErrNotFound.
func (r *DBRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) (User, error) {
	var user User
	if err := r.db.GetContext(ctx, &user,
		"SELECT * FROM users WHERE username = ? OR email = ? ORDER BY id LIMIT 1",
		username, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("find user by username or email: %w", err)
	}
	return user, nil
}
