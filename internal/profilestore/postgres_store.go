package profilestore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/IsaacDSC/trendforge/internal/domain"
	"github.com/IsaacDSC/trendforge/pkg/ctxlogger"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS profiles (
	id                      TEXT PRIMARY KEY,
	email                   TEXT UNIQUE,
	subscription_tier       TEXT NOT NULL DEFAULT 'trial',
	blueprints_used         INTEGER NOT NULL DEFAULT 0,
	campaigns_used          INTEGER NOT NULL DEFAULT 0,
	media_generations       INTEGER NOT NULL DEFAULT 0,
	trial_expires_at        TIMESTAMPTZ,
	subscription_expires_at TIMESTAMPTZ,
	created_at              TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at              TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS usage_logs (
	id           UUID PRIMARY KEY,
	user_id      TEXT NOT NULL REFERENCES profiles(id),
	feature_type TEXT NOT NULL,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS generations (
	id                  UUID PRIMARY KEY,
	user_id             TEXT NOT NULL,
	trend               TEXT NOT NULL,
	product_name        TEXT NOT NULL,
	product_description TEXT,
	product_url         TEXT,
	status              TEXT NOT NULL,
	created_at          TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS generations_user_created_idx ON generations (user_id, created_at DESC);
`

const profileColumns = `id, COALESCE(email, ''), subscription_tier, blueprints_used, campaigns_used, media_generations,
	trial_expires_at, subscription_expires_at, created_at, updated_at`

type PostgresStore struct {
	pool *pgxpool.Pool
}

var _ Repository = (*PostgresStore)(nil)

// NewPostgresStoreFromDSN opens a pool and checks connectivity.
func NewPostgresStoreFromDSN(ctx context.Context, dsn string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (r *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

func (r *PostgresStore) Close() {
	r.pool.Close()
}

func scanProfile(row pgx.Row) (domain.Profile, error) {
	var (
		p    domain.Profile
		tier string
	)

	err := row.Scan(&p.ID, &p.Email, &tier, &p.BlueprintsUsed, &p.CampaignsUsed, &p.MediaGenerations,
		&p.TrialExpiresAt, &p.SubscriptionExpiresAt, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Profile{}, domain.ProfileNotFound
		}
		return domain.Profile{}, err
	}

	p.Tier = domain.Tier(tier)
	return p, nil
}

func (r *PostgresStore) GetProfile(ctx context.Context, id string) (domain.Profile, error) {
	p, err := scanProfile(r.pool.QueryRow(ctx, `SELECT `+profileColumns+` FROM profiles WHERE id = $1`, id))
	if err != nil && !errors.Is(err, domain.ProfileNotFound) {
		return domain.Profile{}, fmt.Errorf("failed to get profile: %w", err)
	}
	return p, err
}

func (r *PostgresStore) FindByEmail(ctx context.Context, email string) (domain.Profile, error) {
	p, err := scanProfile(r.pool.QueryRow(ctx, `SELECT `+profileColumns+` FROM profiles WHERE lower(email) = lower($1)`, email))
	if err != nil && !errors.Is(err, domain.ProfileNotFound) {
		return domain.Profile{}, fmt.Errorf("failed to find profile by email: %w", err)
	}
	return p, err
}

func (r *PostgresStore) CreateProfile(ctx context.Context, p domain.Profile) error {
	var email *string
	if p.Email != "" {
		email = &p.Email
	}

	_, err := r.pool.Exec(ctx, `
		INSERT INTO profiles (id, email, subscription_tier, blueprints_used, campaigns_used, media_generations,
			trial_expires_at, subscription_expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		p.ID, email, string(p.Tier), p.BlueprintsUsed, p.CampaignsUsed, p.MediaGenerations,
		p.TrialExpiresAt, p.SubscriptionExpiresAt, p.CreatedAt, p.UpdatedAt,
	)

	return mapPgError(ctx, "create profile", err)
}

func (r *PostgresStore) UpdateTier(ctx context.Context, id string, tier domain.Tier, subscriptionExpiresAt *time.Time) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE profiles SET subscription_tier = $2, subscription_expires_at = $3, updated_at = now() WHERE id = $1`,
		id, string(tier), subscriptionExpiresAt,
	)
	if err != nil {
		return mapPgError(ctx, "update tier", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ProfileNotFound
	}

	return nil
}

func counterColumn(f domain.Feature) (string, error) {
	switch f {
	case domain.FeatureBlueprint, domain.FeatureLaunch, domain.FeatureCampaign, domain.FeatureMedia:
		return f.Counter(), nil
	default:
		return "", domain.UnknownFeature
	}
}

// IncrementUsage bumps the feature counter and appends the usage log in one transaction.
func (r *PostgresStore) IncrementUsage(ctx context.Context, id string, feature domain.Feature) (domain.Profile, error) {
	column, err := counterColumn(feature)
	if err != nil {
		return domain.Profile{}, err
	}

	var p domain.Profile
	err = pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		var err error
		p, err = scanProfile(tx.QueryRow(ctx,
			`UPDATE profiles SET `+column+` = `+column+` + 1, updated_at = now() WHERE id = $1 RETURNING `+profileColumns,
			id,
		))
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO usage_logs (id, user_id, feature_type, created_at) VALUES ($1, $2, $3, now())`,
			uuid.New(), id, string(feature),
		)
		return err
	})
	if err != nil {
		if errors.Is(err, domain.ProfileNotFound) {
			return domain.Profile{}, err
		}
		return domain.Profile{}, mapPgError(ctx, "increment usage", err)
	}

	return p, nil
}

func (r *PostgresStore) RecordGeneration(ctx context.Context, g domain.Generation) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	if g.CreatedAt.IsZero() {
		g.CreatedAt = time.Now().UTC()
	}

	_, err := r.pool.Exec(ctx, `
		INSERT INTO generations (id, user_id, trend, product_name, product_description, product_url, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		g.ID, g.UserID, g.Trend, g.ProductName, g.ProductDescription, g.ProductURL, string(g.Status), g.CreatedAt,
	)

	return mapPgError(ctx, "record generation", err)
}

func (r *PostgresStore) ListGenerations(ctx context.Context, userID string, limit int) ([]domain.Generation, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, trend, product_name, COALESCE(product_description, ''), COALESCE(product_url, ''), status, created_at
		FROM generations WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`,
		userID, listLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list generations: %w", err)
	}

	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Generation, error) {
		var (
			g      domain.Generation
			status string
		)
		err := row.Scan(&g.ID, &g.UserID, &g.Trend, &g.ProductName, &g.ProductDescription, &g.ProductURL, &status, &g.CreatedAt)
		g.Status = domain.GenerationStatus(status)
		return g, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan generations: %w", err)
	}

	return out, nil
}

// mapPgError turns constraint violations into domain errors and wraps everything else.
func mapPgError(ctx context.Context, op string, err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return domain.ProfileExists
		case pgerrcode.ForeignKeyViolation:
			return domain.ProfileNotFound
		}
	}

	ctxlogger.GetLogger(ctx).Error("postgres operation failed", "op", op, "error", err)
	return fmt.Errorf("failed to %s: %w", op, err)
}
