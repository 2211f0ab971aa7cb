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

// inserts a store owned by ownerID; verified stores get verified_at = now()
func CreateTestStore(t *testing.T, db DBLike, ownerID uuid.UUID, verified bool) uuid.UUID {
	t.Helper()

	var storeID uuid.UUID
	err := db.QueryRow(context.Background(), `
		INSERT INTO stores (owner_id, name, address, biz_number, verified_at)
		VALUES ($1, $2, $3, $4, CASE WHEN $5 THEN now() END)
		RETURNING id`,
		ownerID, "Morning Bakery", "1-2-3 Market St", "1234567890", verified,
	).Scan(&storeID)
	require.NoError(t, err)

	return storeID
}

type ListingFixture struct {
	StoreID   uuid.UUID
	Name      string
	Stock     int
	ExpiresAt time.Time
	Lat, Lng  float64
}

func CreateTestListing(t *testing.T, db DBLike, f ListingFixture) uuid.UUID {
	t.Helper()

	if f.Name == "" {
		f.Name = "Croissant box"
	}

	var listingID uuid.UUID
	err := db.QueryRow(context.Background(), `
		INSERT INTO listings (store_id, name, original_price, discount_price, stock, expires_at, lat, lng)
		VALUES ($1, $2, 10000, 5000, $3, $4, $5, $6)
		RETURNING id`,
		f.StoreID, f.Name, f.Stock, f.ExpiresAt, f.Lat, f.Lng,
	).Scan(&listingID)
	require.NoError(t, err)

	return listingID
}

func ListingStock(t *testing.T, db DBLike, listingID uuid.UUID) int {
	t.Helper()

	var stock int
	err := db.QueryRow(context.Background(), "SELECT stock FROM listings WHERE id = $1", listingID).Scan(&stock)
	require.NoError(t, err)
	return stock
}

func CountRows(t *testing.T, db DBLike, query string, args ...any) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), query, args...).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
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
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
