package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/bookhaven/loan-service/loan/internal/model"
	"github.com/bookhaven/loan-service/loan/internal/repository"
	"github.com/bookhaven/loan-service/pkg/metrics"
)

type Service struct {
	log      *zap.Logger
	repo     repository.Repository
	notifier Notifier
	metrics  *metrics.LoanMetrics
}

func NewService(repo repository.Repository, notifier Notifier, m *metrics.LoanMetrics, log *zap.Logger) *Service {
	return &Service{
		log:      log,
		repo:     repo,
		notifier: notifier,
		metrics:  m,
	}
}

func (s *Service) GetItem(ctx context.Context, itemUid string) (model.Item, error) {
	return s.repo.GetItem(ctx, itemUid)
}

func (s *Service) ListItems(ctx context.Context, category string, page, size int) (model.ListItems, error) {
	return s.repo.ListItems(ctx, category, page, size)
}

func (s *Service) GetMemberLoans(ctx context.Context, memberUid string) ([]model.Order, error) {
	return s.repo.GetMemberLoans(ctx, memberUid)
}

func (s *Service) MarkLoanStarted(ctx context.Context, memberUid, itemUid string) error {
	return s.repo.MarkLoanStarted(ctx, memberUid, itemUid)
}
