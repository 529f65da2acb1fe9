package postgres

import (
	"context"

	"github.com/BlogStand/blog-service/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type postRepo struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func newPostRepo(db *pgxpool.Pool, logger *zap.Logger) Post {
	return &postRepo{
		db:     db,
		logger: logger,
	}
}

func (r *postRepo) Create(ctx context.Context, post model.Post) (*model.Post, error) {
	if err := r.db.QueryRow(
		ctx,
		"INSERT INTO posts(title, subtitle, date, body, author, image_url) VALUES($1, $2, $3, $4, $5, $6) RETURNING id",
		post.Title,
		post.Subtitle,
		post.Date,
		post.Body,
		post.Author,
		post.ImageURL,
	).Scan(&post.ID); err != nil {
		return nil, err
	}

	return &post, nil
}

func (r *postRepo) FindAll(ctx context.Context) ([]*model.Post, error) {
	rows, err := r.db.Query(
		ctx,
		"SELECT id, title, subtitle, date, body, author, image_url FROM posts ORDER BY id",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*model.Post
	for rows.Next() {
		var post model.Post
		if err := rows.Scan(
			&post.ID,
			&post.Title,
			&post.Subtitle,
			&post.Date,
			&post.Body,
			&post.Author,
			&post.ImageURL,
		); err != nil {
			return nil, err
		}

		posts = append(posts, &post)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}

func (r *postRepo) FindByID(ctx context.Context, id int64) (*model.Post, error) {
	var post model.Post
	if err := r.db.QueryRow(
		ctx,
		"SELECT id, title, subtitle, date, body, author, image_url FROM posts WHERE id = $1",
		id,
	).Scan(
		&post.ID,
		&post.Title,
		&post.Subtitle,
		&post.Date,
		&post.Body,
		&post.Author,
		&post.ImageURL,
	); err != nil {
		return nil, err
	}

	return &post, nil
}

// Update overwrites every column except id and date; date keeps the value
// stamped at creation time.
func (r *postRepo) Update(ctx context.Context, post model.Post) (*model.Post, error) {
	tag, err := r.db.Exec(
		ctx,
		"UPDATE posts SET title = $1, subtitle = $2, body = $3, author = $4, image_url = $5 WHERE id = $6",
		post.Title,
		post.Subtitle,
		post.Body,
		post.Author,
		post.ImageURL,
		post.ID,
	)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, pgx.ErrNoRows
	}

	return &post, nil
}

func (r *postRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM posts WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	r.logger.Sugar().Infof("deleted post(%d)", id)

	return nil
}
