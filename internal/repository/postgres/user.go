package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dtroode/fostr-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

const uniqueViolation = "23505"

const userColumns = `id, username, password_hash, role, name, age, gender, interests, hobbies,
			  date_entered, profile_picture, created_at, updated_at`

type UserRepository struct {
	db   *Connection
	q    querier
	inTx bool
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
		q:  db,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (model.User, error) {
	var (
		user      model.User
		interests []byte
		hobbies   []byte
	)
	err := row.Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.Role, &user.Name, &user.Age, &user.Gender,
		&interests, &hobbies, &user.DateEntered, &user.ProfilePicture, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return model.User{}, err
	}
	if err := json.Unmarshal(interests, &user.Interests); err != nil {
		return model.User{}, fmt.Errorf("failed to decode interests: %w", err)
	}
	if err := json.Unmarshal(hobbies, &user.Hobbies); err != nil {
		return model.User{}, fmt.Errorf("failed to decode hobbies: %w", err)
	}
	return user, nil
}

func encodeLists(user model.User) (string, string, error) {
	interests, err := json.Marshal(nonNil(user.Interests))
	if err != nil {
		return "", "", fmt.Errorf("failed to encode interests: %w", err)
	}
	hobbies, err := json.Marshal(nonNil(user.Hobbies))
	if err != nil {
		return "", "", fmt.Errorf("failed to encode hobbies: %w", err)
	}
	return string(interests), string(hobbies), nil
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func (r *UserRepository) getOne(ctx context.Context, op, query string, arg any) (model.User, error) {
	user, err := scanUser(r.q.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by %s: %w", op, err)
	}
	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (model.User, error) {
	query := `SELECT ` + userColumns + `
			  FROM users WHERE id = $1`
	return r.getOne(ctx, "id", query, id)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (model.User, error) {
	query := `SELECT ` + userColumns + `
			  FROM users WHERE username = $1`
	return r.getOne(ctx, "username", query, username)
}

func (r *UserRepository) list(ctx context.Context, query string, args ...any) ([]model.User, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := make([]model.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) GetAll(ctx context.Context) ([]model.User, error) {
	query := `SELECT ` + userColumns + `
			  FROM users ORDER BY id`
	return r.list(ctx, query)
}

func (r *UserRepository) GetByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	query := `SELECT ` + userColumns + `
			  FROM users WHERE role = $1 ORDER BY id`
	return r.list(ctx, query, string(role))
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	interests, hobbies, err := encodeLists(user)
	if err != nil {
		return model.User{}, err
	}

	query := `INSERT INTO users (username, password_hash, role, name, age, gender, interests, hobbies,
			  date_entered, profile_picture, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
			  RETURNING ` + userColumns

	saved, err := scanUser(r.q.QueryRowContext(ctx, query,
		user.Username, user.PasswordHash, string(user.Role), user.Name, user.Age, string(user.Gender),
		interests, hobbies, user.DateEntered, user.ProfilePicture,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return model.User{}, fmt.Errorf("failed to create user %q: %w", user.Username, model.ErrDuplicateKey)
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return saved, nil
}

func (r *UserRepository) Update(ctx context.Context, user model.User) (model.User, error) {
	interests, hobbies, err := encodeLists(user)
	if err != nil {
		return model.User{}, err
	}

	query := `UPDATE users SET username = $2, password_hash = $3, role = $4, name = $5, age = $6,
			  gender = $7, interests = $8, hobbies = $9, date_entered = $10, profile_picture = $11,
			  updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + userColumns

	saved, err := scanUser(r.q.QueryRowContext(ctx, query,
		user.ID, user.Username, user.PasswordHash, string(user.Role), user.Name, user.Age, string(user.Gender),
		interests, hobbies, user.DateEntered, user.ProfilePicture,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		if isUniqueViolation(err) {
			return model.User{}, fmt.Errorf("failed to update user %q: %w", user.Username, model.ErrDuplicateKey)
		}
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	return saved, nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if n == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *UserRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.q.ExecContext(ctx, `DELETE FROM users`); err != nil {
		return fmt.Errorf("failed to delete users: %w", err)
	}
	return nil
}

func (r *UserRepository) InTx(ctx context.Context, fn func(store model.UserStore) error) error {
	if r.inTx {
		return fn(r)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(&UserRepository{db: r.db, q: tx, inTx: true}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Join(err, fmt.Errorf("failed to roll back transaction: %w", rbErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
