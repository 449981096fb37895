package service

import (
	"context"

	"github.com/Maaz9703/maazweb-api/internal/models"
	"github.com/Maaz9703/maazweb-api/internal/repo"
)

type UserService struct {
	Repo *repo.GormRepo
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.Repo.ListUsers(ctx)
}

func (s *UserService) Stats(ctx context.Context) (*repo.DashboardStats, error) {
	return s.Repo.DashboardStatsQuery(ctx)
}
