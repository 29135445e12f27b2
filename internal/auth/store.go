package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/HerbHall/salesdesk/internal/store"
)

// UserStore provides persistence for user accounts.
type UserStore struct {
	db *sql.DB
}

// NewUserStore creates a UserStore and runs auth migrations.
func NewUserStore(ctx context.Context, s store.Migrator) (*UserStore, error) {
	if err := s.Migrate(ctx, "auth", migrations); err != nil {
		return nil, fmt.Errorf("auth migrations: %w", err)
	}
	return &UserStore{db: s.DB()}, nil
}

const userColumns = `id, username, email, password_hash, role, created_at, last_login, disabled`

// ErrDuplicateUser is returned when a username or email is already taken.
var ErrDuplicateUser = errors.New("username or email already in use")

// CreateUser inserts a new user.
func (s *UserStore) CreateUser(ctx context.Context, u *User) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO auth_users (id, username, email, password_hash, role, created_at, disabled)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Username, u.Email, u.PasswordHash, string(u.Role), u.CreatedAt, u.Disabled,
	)
	return insertErr(err)
}

// CreateFirstUser inserts u only when no account exists. The emptiness check
// and the insert are one statement, so concurrent callers cannot both win;
// losers get ErrSetupComplete.
func (s *UserStore) CreateFirstUser(ctx context.Context, u *User) error {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO auth_users (id, username, email, password_hash, role, created_at, disabled)
		SELECT ?, ?, ?, ?, ?, ?, ?
		WHERE NOT EXISTS (SELECT 1 FROM auth_users)`,
		u.ID, u.Username, u.Email, u.PasswordHash, string(u.Role), u.CreatedAt, u.Disabled,
	)
	if err != nil {
		return insertErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("create first user: %w", err)
	}
	if n == 0 {
		return ErrSetupComplete
	}
	return nil
}

func insertErr(err error) error {
	if err == nil {
		return nil
	}
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return ErrDuplicateUser
	}
	return fmt.Errorf("write user: %w", err)
}

// GetUserByUsername returns a user by username, or sql.ErrNoRows.
func (s *UserStore) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	return scanUser(s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM auth_users WHERE username = ?`, username))
}

// GetUserByID returns a user by ID, or sql.ErrNoRows.
func (s *UserStore) GetUserByID(ctx context.Context, id string) (*User, error) {
	return scanUser(s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM auth_users WHERE id = ?`, id))
}

// ListUsers returns every account ordered by username.
func (s *UserStore) ListUsers(ctx context.Context) ([]User, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+userColumns+` FROM auth_users ORDER BY username`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := []User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

// UpdateUser writes email, role and disabled for u.ID. The change is rolled
// back with ErrLastAdmin if it would leave no enabled admin.
func (s *UserStore) UpdateUser(ctx context.Context, u *User) error {
	return s.guardAdmins(ctx, func(tx *sql.Tx) (sql.Result, error) {
		return tx.ExecContext(ctx,
			`UPDATE auth_users SET email = ?, role = ?, disabled = ? WHERE id = ?`,
			u.Email, string(u.Role), u.Disabled, u.ID)
	})
}

// DeleteUser removes a user, or returns sql.ErrNoRows. Deleting the last
// enabled admin returns ErrLastAdmin.
func (s *UserStore) DeleteUser(ctx context.Context, id string) error {
	return s.guardAdmins(ctx, func(tx *sql.Tx) (sql.Result, error) {
		return tx.ExecContext(ctx, `DELETE FROM auth_users WHERE id = ?`, id)
	})
}

// guardAdmins runs change in a transaction and commits only if it touched a
// row and at least one enabled admin remains.
func (s *UserStore) guardAdmins(ctx context.Context, change func(*sql.Tx) (sql.Result, error)) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := change(tx)
	if err != nil {
		return insertErr(err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return sql.ErrNoRows
	}

	var admins int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM auth_users WHERE role = ? AND disabled = 0`, string(RoleAdmin)).Scan(&admins)
	if err != nil {
		return fmt.Errorf("count admins: %w", err)
	}
	if admins == 0 {
		return ErrLastAdmin
	}
	return tx.Commit()
}

// UpdateLastLogin sets the last_login timestamp.
func (s *UserStore) UpdateLastLogin(ctx context.Context, userID string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE auth_users SET last_login = ? WHERE id = ?`,
		time.Now().UTC(), userID,
	)
	return err
}

// CountUsers returns the total number of users.
func (s *UserStore) CountUsers(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM auth_users`).Scan(&count)
	return count, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*User, error) {
	var (
		u         User
		role      string
		lastLogin sql.NullTime
	)
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &role,
		&u.CreatedAt, &lastLogin, &u.Disabled)
	if err != nil {
		return nil, err
	}
	u.Role = Role(role)
	if lastLogin.Valid {
		u.LastLogin = lastLogin.Time
	}
	return &u, nil
}

var migrations = []store.Migration{
	{
		Version:     1,
		Description: "create auth_users table",
		Up: func(tx *sql.Tx) error {
			_, err := tx.Exec(`
				CREATE TABLE auth_users (
					id            TEXT     PRIMARY KEY,
					username      TEXT     NOT NULL UNIQUE,
					email         TEXT     NOT NULL UNIQUE,
					password_hash TEXT     NOT NULL,
					role          TEXT     NOT NULL,
					created_at    DATETIME NOT NULL,
					last_login    DATETIME,
					disabled      INTEGER  NOT NULL DEFAULT 0
				)`)
			return err
		},
	},
}
