package database

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq"

	"github.com/clarkpowers2/crypto2bank-backend/pkg/config"
	"github.com/clarkpowers2/crypto2bank-backend/pkg/db"
)

type DBManager struct {
	Db *sql.DB
}

func New(cfg *config.DatabaseConfig) (*DBManager, error) {
	DBDSN := db.GetDBDSN(cfg)
	Db, err := sql.Open("postgres", DBDSN)
	if err != nil {
		return nil, err
	}

	if cfg.MaxOpenConns > 0 {
		Db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		Db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime != "" {
		if lifetime, err := time.ParseDuration(cfg.ConnMaxLifetime); err == nil {
			Db.SetConnMaxLifetime(lifetime)
		}
	}

	if err := Db.Ping(); err != nil {
		return nil, err
	}

	return &DBManager{
		Db: Db,
	}, nil
}

// EnsureSchema creates the pipeline tables when they do not exist yet.
func (dm *DBManager) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := dm.Db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func (dm *DBManager) Ping(ctx context.Context) error {
	return dm.Db.PingContext(ctx)
}

func (dm *DBManager) ShutDown() {
	if dm.Db != nil {
		dm.Db.Close()
	}
}
