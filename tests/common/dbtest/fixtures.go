//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123", precomputed so fixtures stay fast
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		userID, email, testPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestSegment(t *testing.T, db DBLike, label string, weight float64) uuid.UUID {
	t.Helper()

	segmentID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		`INSERT INTO wheel_segments (id, label, discount_type, discount_value, color, weight, prize_type, sort_order, is_active)
		 VALUES ($1, $2, 'percentage', 10, '#FF6B6B', $3, 'discount', 0, true)`,
		segmentID, label, weight)
	require.NoError(t, err)

	return segmentID
}

func CreateTestGiftSegment(t *testing.T, db DBLike, label string, weight float64, productID uuid.UUID) uuid.UUID {
	t.Helper()

	segmentID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		`INSERT INTO wheel_segments (id, label, discount_type, discount_value, color, weight, prize_type, gift_product_id, sort_order, is_active)
		 VALUES ($1, $2, 'fixed', 0, '#4ECDC4', $3, 'gift', $4, 1, true)`,
		segmentID, label, weight, productID)
	require.NoError(t, err)

	return segmentID
}

func CreateTestProduct(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	productID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO products (id, name, is_active) VALUES ($1, $2, true)",
		productID, name)
	require.NoError(t, err)

	return productID
}

// RecordSpin backdates a spin so cooldown scenarios can be set up directly.
func RecordSpin(t *testing.T, db DBLike, userID, segmentID, couponID uuid.UUID, spunAt time.Time) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO user_wheel_spins (id, user_id, segment_id, coupon_id, spun_at) VALUES ($1, $2, $3, $4, $5)",
		uuid.New(), userID, segmentID, couponID, spunAt)
	require.NoError(t, err)
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	// The wheel schema has no global reference tables; each test seeds the
	// segments and users it needs.
	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
