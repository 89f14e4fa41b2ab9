package nft

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresRepo) Save(ctx context.Context, n *StampNFT) error {
	const sql = `
		INSERT INTO stamp_nfts (
			token_id, contract_address, stamp_id, owner_id, metadata,
			minted_at, transaction_hash, royalties, creator_address,
			current_owner_address
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.QueryRow(timeoutCtx, sql,
		n.TokenID, n.ContractAddress, n.StampID, n.OwnerID, n.Metadata,
		n.MintedAt, n.TransactionHash, n.Royalties, n.CreatorAddress,
		n.CurrentOwnerAddress,
	).Scan(&n.ID)
}

func (r *PostgresRepo) ListByOwner(ctx context.Context, ownerID int) ([]StampNFT, error) {
	const sql = `
		SELECT id, token_id, contract_address, stamp_id, owner_id, metadata,
		       minted_at, transaction_hash, royalties, creator_address,
		       current_owner_address
		FROM stamp_nfts
		WHERE owner_id = $1
		ORDER BY minted_at DESC`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(timeoutCtx, sql, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	nfts := []StampNFT{}
	for rows.Next() {
		var n StampNFT
		err := rows.Scan(
			&n.ID, &n.TokenID, &n.ContractAddress, &n.StampID, &n.OwnerID,
			&n.Metadata, &n.MintedAt, &n.TransactionHash, &n.Royalties,
			&n.CreatorAddress, &n.CurrentOwnerAddress,
		)
		if err != nil {
			return nil, err
		}
		nfts = append(nfts, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return nfts, nil
}

var _ Repository = (*PostgresRepo)(nil)
