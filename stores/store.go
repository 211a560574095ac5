package stores

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store bundles all persistence reads the pricing engine depends on, plus
// the booking-commit usage writes. Queries are raw SQL over the shared pool.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}
