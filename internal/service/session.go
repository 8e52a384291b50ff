package service

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/lukejerome/viligant-tracker-dk/internal/model"
)

// SessionDirectory owns the account records and the single active
// session. Auth operations carry a simulated latency so callers can
// surface a pending state before the result resolves.
type SessionDirectory struct {
	db      *sql.DB
	latency time.Duration
}

func NewSessionDirectory(db *sql.DB, latency time.Duration) *SessionDirectory {
	return &SessionDirectory{db: db, latency: latency}
}

// Signup creates an account and logs it in. Email matching is
// case-sensitive and exact.
func (d *SessionDirectory) Signup(ctx context.Context, email, password, name string) (*model.UserAccount, error) {
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)
	if email == "" {
		return nil, validationErr("email", "is required")
	}
	if password == "" {
		return nil, validationErr("password", "is required")
	}
	if name == "" {
		return nil, validationErr("name", "is required")
	}

	if err := d.simulateLatency(ctx); err != nil {
		return nil, err
	}

	var existing string
	err := d.db.QueryRow(`SELECT id FROM users WHERE email = ?`, email).Scan(&existing)
	if err == nil {
		return nil, ErrDuplicateEmail
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("check existing email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account := &model.UserAccount{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if _, err := d.db.Exec(`
INSERT INTO users(id, email, name, password_hash, created_at)
VALUES(?, ?, ?, ?, ?)
`, account.ID, account.Email, account.Name, account.PasswordHash, account.CreatedAt.Format(time.RFC3339)); err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}

	if err := d.setSession(&account.ID); err != nil {
		return nil, err
	}
	return account, nil
}

func (d *SessionDirectory) Login(ctx context.Context, email, password string) (*model.UserAccount, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, validationErr("email", "is required")
	}

	if err := d.simulateLatency(ctx); err != nil {
		return nil, err
	}

	account, err := d.accountByEmail(email)
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidPassword
	}

	if err := d.setSession(&account.ID); err != nil {
		return nil, err
	}
	return account, nil
}

func (d *SessionDirectory) Logout(ctx context.Context) error {
	if err := d.simulateLatency(ctx); err != nil {
		return err
	}
	return d.setSession(nil)
}

// Current returns the logged-in account, or nil when anonymous.
func (d *SessionDirectory) Current() (*model.UserAccount, error) {
	var userID sql.NullString
	if err := d.db.QueryRow(`SELECT user_id FROM active_session WHERE id = 1`).Scan(&userID); err != nil {
		return nil, fmt.Errorf("read active session: %w", err)
	}
	if !userID.Valid {
		return nil, nil
	}
	account, err := d.accountByID(userID.String)
	if err != nil {
		return nil, err
	}
	return account, nil
}

func (d *SessionDirectory) setSession(userID *string) error {
	var value any
	if userID != nil {
		value = *userID
	}
	if _, err := d.db.Exec(`UPDATE active_session SET user_id = ?, updated_at = CURRENT_TIMESTAMP WHERE id = 1`, value); err != nil {
		return fmt.Errorf("update active session: %w", err)
	}
	return nil
}

func (d *SessionDirectory) accountByEmail(email string) (*model.UserAccount, error) {
	return d.scanAccount(d.db.QueryRow(`
SELECT id, email, name, password_hash, created_at FROM users WHERE email = ?
`, email))
}

func (d *SessionDirectory) accountByID(id string) (*model.UserAccount, error) {
	return d.scanAccount(d.db.QueryRow(`
SELECT id, email, name, password_hash, created_at FROM users WHERE id = ?
`, id))
}

func (d *SessionDirectory) scanAccount(row *sql.Row) (*model.UserAccount, error) {
	var account model.UserAccount
	var createdRaw string
	err := row.Scan(&account.ID, &account.Email, &account.Name, &account.PasswordHash, &createdRaw)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan account: %w", err)
	}
	account.CreatedAt, _ = time.Parse(time.RFC3339, createdRaw)
	return &account, nil
}

func (d *SessionDirectory) simulateLatency(ctx context.Context) error {
	if d.latency <= 0 {
		return nil
	}
	select {
	case <-time.After(d.latency):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
