package service

import (
	"context"

	"uniformes/internal/feed"
	"uniformes/internal/model"
	"uniformes/internal/repository"
	"uniformes/internal/stats"
)

// StatisticsService exposes the read side of the admin panel: aggregated
// metrics plus the browsable newest-first history.
type StatisticsService interface {
	GetStatistics(ctx context.Context) (model.StatisticsResponse, error)
	ListDeliveries(ctx context.Context, page, limit int) ([]model.Delivery, int64, error)
}

type statisticsService struct {
	repo repository.DeliveryRepository
	view *feed.ViewModel
}

// NewStatisticsService wires the read side. view may be nil; statistics
// then always come straight from storage.
func NewStatisticsService(repo repository.DeliveryRepository, view *feed.ViewModel) StatisticsService {
	return &statisticsService{repo: repo, view: view}
}

// GetStatistics folds the record set through the pure aggregation,
// recomputed from scratch on every call, never cached. Once the live
// projection is Ready it is the source; before that (or without one)
// the records load from storage.
func (s *statisticsService) GetStatistics(ctx context.Context) (model.StatisticsResponse, error) {
	if s.view != nil && s.view.State() == feed.StateReady {
		records := s.view.Records()
		return model.StatisticsResponse{
			TotalRequests: len(records),
			Stats:         stats.Aggregate(records),
		}, nil
	}

	records, err := s.repo.ListNewestFirst(ctx)
	if err != nil {
		return model.StatisticsResponse{}, err
	}

	return model.StatisticsResponse{
		TotalRequests: len(records),
		Stats:         stats.Aggregate(records),
	}, nil
}

func (s *statisticsService) ListDeliveries(ctx context.Context, page, limit int) ([]model.Delivery, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	return s.repo.List(ctx, page, limit)
}
