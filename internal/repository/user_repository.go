package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/academy-api/internal/models"
	"github.com/noah-isme/academy-api/pkg/database"
)

var userColumns = []string{"id", "name", "email", "password_hash", "role", "active", "created_at", "updated_at"}

// UserRepository provides database access for user management.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// List returns users based on filters.
func (r *UserRepository) List(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	b := psql.Select(userColumns...).From("users").OrderBy("id")
	if filter.Role != nil {
		b = b.Where(squirrel.Eq{"role": *filter.Role})
	}
	if filter.Active != nil {
		b = b.Where(squirrel.Eq{"active": *filter.Active})
	}
	if filter.NameSearch != "" {
		b = b.Where(squirrel.Like{"name": containsPattern(filter.NameSearch)})
	}

	users := []models.User{}
	if err := selectList(ctx, database.Conn(ctx, r.db), &users, b); err != nil {
		return nil, wrap("list users", err)
	}
	return users, nil
}

// FindByID returns a user by identifier.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	b := psql.Select(userColumns...).From("users").Where(squirrel.Eq{"id": id})
	if err := selectOne(ctx, database.Conn(ctx, r.db), &user, b); err != nil {
		return nil, wrap("find user by id", err)
	}
	return &user, nil
}

// FindByEmail returns a user by email address.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	b := psql.Select(userColumns...).From("users").Where(squirrel.Eq{"email": email})
	if err := selectOne(ctx, database.Conn(ctx, r.db), &user, b); err != nil {
		return nil, wrap("find user by email", err)
	}
	return &user, nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error) {
	found, err := exists(ctx, database.Conn(ctx, r.db), "users", squirrel.Eq{"email": email}, excludeID)
	if err != nil {
		return false, wrap("check user email", err)
	}
	return found, nil
}

func (r *UserRepository) Count(ctx context.Context, active *bool) (int64, error) {
	total, err := count(ctx, database.Conn(ctx, r.db), "users", active)
	if err != nil {
		return 0, wrap("count users", err)
	}
	return total, nil
}

// Create inserts a new user. PasswordHash must already be set.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	b := psql.Insert("users").
		Columns("name", "email", "password_hash", "role", "active", "created_at", "updated_at").
		Values(user.Name, user.Email, user.PasswordHash, user.Role, user.Active, user.CreatedAt, user.UpdatedAt)
	id, err := insertReturningID(ctx, database.Conn(ctx, r.db), b)
	if err != nil {
		return wrap("create user", err)
	}
	user.ID = id
	return nil
}

// Update updates mutable fields of a user, including the password hash.
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	user.UpdatedAt = time.Now().UTC()
	b := psql.Update("users").
		Set("name", user.Name).
		Set("email", user.Email).
		Set("password_hash", user.PasswordHash).
		Set("role", user.Role).
		Set("active", user.Active).
		Set("updated_at", user.UpdatedAt).
		Where(squirrel.Eq{"id": user.ID})
	return wrap("update user", execAffectingRow(ctx, database.Conn(ctx, r.db), b))
}
