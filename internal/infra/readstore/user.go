package readstore

import (
	"context"

	"wheel-promo-api/internal/infra"
	"wheel-promo-api/internal/infra/db"
	"wheel-promo-api/internal/pkg/pgconv"
	"wheel-promo-api/internal/usecase/queries"
	"wheel-promo-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(db db.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	const q = `
		SELECT id, email, role, is_active
		FROM users
		WHERE id = $1`

	var v queries.AuthorizedUserView
	err := s.db.QueryRow(ctx, q, id).Scan(&v.ID, &v.Email, &v.Role, &v.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load user", err)
	}
	return &v, nil
}

// FindByEmail returns the full user record including the password hash, for
// credential verification.
func (s *UserReadStore) FindByEmail(ctx context.Context, email string) (*shared.UserRecord, error) {
	const q = `
		SELECT id, email, password_hash, role, is_active, last_login
		FROM users
		WHERE email = $1`

	var (
		rec       shared.UserRecord
		lastLogin pgtype.Timestamptz
	)
	err := s.db.QueryRow(ctx, q, email).Scan(
		&rec.ID,
		&rec.Email,
		&rec.PasswordHash,
		&rec.Role,
		&rec.IsActive,
		&lastLogin,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load user by email", err)
	}
	rec.LastLogin = pgconv.TimePtrFromPgtype(lastLogin)
	return &rec, nil
}
