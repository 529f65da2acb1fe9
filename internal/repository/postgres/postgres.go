package postgres

import (
	"context"
	"fmt"

	"github.com/BlogStand/blog-service/internal/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

const postsSchema = `
CREATE TABLE IF NOT EXISTS posts(
	id BIGSERIAL PRIMARY KEY,
	title VARCHAR(250) UNIQUE NOT NULL,
	subtitle VARCHAR(250) NOT NULL,
	date VARCHAR(250) NOT NULL,
	body TEXT NOT NULL,
	author VARCHAR(250) NOT NULL,
	image_url VARCHAR(250) NOT NULL
)`

func DB(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		cfg.Username,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.SSLMode,
	)

	db, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(ctx, postsSchema); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
