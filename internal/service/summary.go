package service

import (
	"context"
	"fmt"
	"time"

	"github.com/u4rad/camp-service/internal/domain/model"
	"github.com/u4rad/camp-service/internal/metrics"
	"github.com/u4rad/camp-service/internal/repository"
)

// SummaryService manages cost summaries. Prices are always recomputed on
// the server and a billing number is issued when the client sends none.
type SummaryService struct {
	*CRUDService[model.CostSummary]
	repo repository.SummaryRepositoryInterface
	now  func() time.Time
}

// NewSummaryService creates a cost summary service.
func NewSummaryService(repo repository.SummaryRepositoryInterface) *SummaryService {
	s := &SummaryService{repo: repo, now: time.Now}
	s.CRUDService = NewCRUDService[model.CostSummary](repo).WithPrepare(func(_ context.Context, cs *model.CostSummary) error {
		return cs.Compute()
	})
	return s
}

// Create computes the summary, numbers it and stores it.
func (s *SummaryService) Create(ctx context.Context, cs *model.CostSummary) error {
	err := s.create(ctx, cs)
	metrics.RecordOperation(metrics.OpSummaryCreate, err)
	if err == nil {
		total, _ := cs.GrandTotal.Float64()
		metrics.RecordEstimate(total)
	}
	return err
}

func (s *SummaryService) create(ctx context.Context, cs *model.CostSummary) error {
	if err := cs.Compute(); err != nil {
		return err
	}
	if cs.BillingNumber == "" {
		day := s.now().UTC()
		seq, err := s.repo.NextBillingSequence(ctx, day)
		if err != nil {
			return fmt.Errorf("billing sequence: %w", err)
		}
		cs.BillingNumber = model.BillingNumber(day, seq)
	}
	return storeError(s.repo.Create(ctx, cs))
}
