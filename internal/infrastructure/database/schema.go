package database

// The UNIQUE constraint on conversions.deposit_id forbids converting the same
// deposit twice; the deposit status transition provides the same guard at the
// application level.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS bank_accounts (
		id UUID PRIMARY KEY,
		user_id UUID,
		masked_account TEXT NOT NULL,
		routing_hash TEXT NOT NULL,
		account_hash TEXT NOT NULL,
		status TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS deposits (
		id UUID PRIMARY KEY,
		user_id UUID,
		asset TEXT NOT NULL,
		amount_crypto NUMERIC(30, 12) NOT NULL,
		status TEXT NOT NULL,
		hosted_url TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS conversions (
		id UUID PRIMARY KEY,
		deposit_id UUID NOT NULL UNIQUE REFERENCES deposits (id),
		user_id UUID,
		asset_in TEXT NOT NULL,
		amount_in_crypto NUMERIC(30, 12) NOT NULL,
		fiat_currency TEXT NOT NULL,
		amount_fiat_gross_cents BIGINT NOT NULL,
		fee_percent INT NOT NULL,
		fee_cents BIGINT NOT NULL,
		amount_fiat_net_cents BIGINT NOT NULL,
		provider TEXT NOT NULL,
		status TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS payouts (
		id UUID PRIMARY KEY,
		conversion_id UUID NOT NULL REFERENCES conversions (id),
		bank_account_id UUID NOT NULL REFERENCES bank_accounts (id),
		user_id UUID,
		fiat_currency TEXT NOT NULL,
		amount_fiat_cents BIGINT NOT NULL,
		provider TEXT NOT NULL,
		external_id TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL,
		metadata JSONB,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_deposits_created_at ON deposits (created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_conversions_created_at ON conversions (created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_payouts_created_at ON payouts (created_at DESC)`,
}
