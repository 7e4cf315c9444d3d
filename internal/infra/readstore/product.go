package readstore

import (
	"context"

	"wheel-promo-api/internal/infra"
	"wheel-promo-api/internal/infra/db"
	"wheel-promo-api/internal/pkg/pgconv"
	"wheel-promo-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ProductReadStore struct {
	db db.DBTX
}

func NewProductReadStore(db db.DBTX) *ProductReadStore {
	return &ProductReadStore{db: db}
}

func (s *ProductReadStore) ProductByID(ctx context.Context, id uuid.UUID) (*shared.ProductSnapshot, error) {
	const q = `
		SELECT id, name, image_url, is_active
		FROM products
		WHERE id = $1`

	var (
		snap     shared.ProductSnapshot
		imageURL pgtype.Text
	)
	err := s.db.QueryRow(ctx, q, id).Scan(
		&snap.ID,
		&snap.Name,
		&imageURL,
		&snap.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load product", err)
	}
	snap.ImageURL = pgconv.StringPtrFromPgtype(imageURL)
	return &snap, nil
}
