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

// bcrypt hash of "password123"
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string, licenseNumber string, licenseValidUntil *time.Time) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, email, password_hash, role, license_number, license_valid_until, is_active) VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, true) ON CONFLICT (email) DO NOTHING",
		userID, email, testPasswordHash, role, licenseNumber, licenseValidUntil)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestCar(t *testing.T, db DBLike, brand, model string, stock, peakCents, midCents, offCents int32) uuid.UUID {
	t.Helper()

	carID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO cars (id, brand, model, stock, price_peak_cents, price_mid_cents, price_off_cents) VALUES ($1, $2, $3, $4, $5, $6, $7)",
		carID, brand, model, stock, peakCents, midCents, offCents)
	require.NoError(t, err)

	return carID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO cars (brand, model, stock, price_peak_cents, price_mid_cents, price_off_cents)
		SELECT v.brand, v.model, v.stock, v.peak, v.mid, v.off
		FROM (VALUES
		    ('Toyota', 'Corolla', 3, 10000, 8000, 6000),
		    ('Volkswagen', 'Golf', 2, 12000, 9500, 7000),
		    ('Tesla', 'Model 3', 1, 20000, 16000, 12000)
		) AS v(brand, model, stock, peak, mid, off)
		WHERE NOT EXISTS (SELECT 1 FROM cars);
	`)
	return err
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
