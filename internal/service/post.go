package service

import (
	"context"
	"errors"
	"time"

	"github.com/BlogStand/blog-service/internal/dto"
	"github.com/BlogStand/blog-service/internal/model"
	"github.com/BlogStand/blog-service/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// dateLayout matches the long-form date stored with every post,
// e.g. "June 03, 2024".
const dateLayout = "January 02, 2006"

const uniqueViolationCode = "23505"

type postService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newPostService(logger *zap.Logger, repo *repository.Repository) Post {
	return &postService{
		logger: logger,
		repo:   repo,
	}
}

func (s *postService) FindAll(ctx context.Context) ([]*model.Post, error) {
	posts, err := s.repo.Postgres.Post.FindAll(ctx)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find posts: %s", err.Error())
		return nil, ErrInternal
	}

	return posts, nil
}

func (s *postService) FindByID(ctx context.Context, id int64) (*model.Post, error) {
	post, err := s.repo.Postgres.Post.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPostNotFound
		}
		s.logger.Sugar().Errorf("failed to find post(%d): %s", id, err.Error())
		return nil, ErrInternal
	}

	return post, nil
}

func (s *postService) Create(ctx context.Context, input dto.CreatePostRequest) (*model.Post, error) {
	post := model.Post{
		Title:    input.Title,
		Subtitle: input.Subtitle,
		Date:     time.Now().Format(dateLayout),
		Body:     input.Body,
		Author:   input.Author,
		ImageURL: input.ImageURL,
	}

	createdPost, err := s.repo.Postgres.Post.Create(ctx, post)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrTitleTaken
		}
		s.logger.Sugar().Errorf("failed to create post(%s): %s", post.Title, err.Error())
		return nil, ErrInternal
	}

	return createdPost, nil
}

// Update overwrites the editable fields of an existing post. The creation
// date is carried over untouched and the title is not pre-checked for
// uniqueness; a collision surfaces through the store constraint.
func (s *postService) Update(ctx context.Context, id int64, input dto.EditPostRequest) (*model.Post, error) {
	existing, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	post := model.Post{
		ID:       existing.ID,
		Title:    input.Title,
		Subtitle: input.Subtitle,
		Date:     existing.Date,
		Body:     input.Body,
		Author:   input.Author,
		ImageURL: input.ImageURL,
	}

	updatedPost, err := s.repo.Postgres.Post.Update(ctx, post)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrTitleTaken
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPostNotFound
		}
		s.logger.Sugar().Errorf("failed to update post(%d): %s", id, err.Error())
		return nil, ErrInternal
	}

	return updatedPost, nil
}

func (s *postService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Postgres.Post.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrPostNotFound
		}
		s.logger.Sugar().Errorf("failed to delete post(%d): %s", id, err.Error())
		return ErrInternal
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
