package service

import (
	"context"

	"github.com/BlogStand/blog-service/internal/dto"
	"github.com/BlogStand/blog-service/internal/model"
	"github.com/BlogStand/blog-service/internal/repository"
	"go.uber.org/zap"
)

type Post interface {
	FindAll(ctx context.Context) ([]*model.Post, error)
	FindByID(ctx context.Context, id int64) (*model.Post, error)
	Create(ctx context.Context, input dto.CreatePostRequest) (*model.Post, error)
	Update(ctx context.Context, id int64, input dto.EditPostRequest) (*model.Post, error)
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	Post
}

func New(logger *zap.Logger, repo *repository.Repository) *Service {
	return &Service{
		Post: newPostService(logger, repo),
	}
}
