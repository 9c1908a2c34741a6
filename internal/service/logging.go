package service

import (
	"context"
	"time"

	"github.com/u4rad/camp-service/internal/domain/model"
	"github.com/u4rad/camp-service/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	// DefaultLogQueryLimit applies when a query sets no limit.
	DefaultLogQueryLimit = 100
	// MaxLogQueryLimit caps the entries returned by one query.
	MaxLogQueryLimit = 1000

	defaultLogLevel = "info"
)

// LoggingService stores and queries request and audit log entries.
type LoggingService interface {
	// CreateLog stores a single log entry.
	CreateLog(ctx context.Context, entry *model.LogEntry) error
	// CreateLogs stores a batch of entries.
	CreateLogs(ctx context.Context, entries []*model.LogEntry) error
	// QueryLogs returns entries matching opts, newest first.
	QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error)
	// CountLogs returns the number of entries matching opts.
	CountLogs(ctx context.Context, opts model.LogQueryOptions) (int64, error)
}

type loggingService struct {
	repo repository.LogsRepositoryInterface
	now  func() time.Time
}

// NewLoggingService creates a logging service over repo.
func NewLoggingService(repo repository.LogsRepositoryInterface) LoggingService {
	return &loggingService{repo: repo, now: time.Now}
}

// prepare fills the id, the UTC timestamp and the level of entry.
func (s *loggingService) prepare(entry *model.LogEntry) {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = s.now()
	}
	entry.Timestamp = entry.Timestamp.UTC()
	if entry.Level == "" {
		entry.Level = defaultLogLevel
	}
}

func (s *loggingService) CreateLog(ctx context.Context, entry *model.LogEntry) error {
	s.prepare(entry)
	return s.repo.Create(ctx, entry)
}

func (s *loggingService) CreateLogs(ctx context.Context, entries []*model.LogEntry) error {
	if len(entries) == 0 {
		return nil
	}
	for _, entry := range entries {
		s.prepare(entry)
	}
	return s.repo.CreateMany(ctx, entries)
}

func (s *loggingService) QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error) {
	if err := checkLogWindow(opts); err != nil {
		return nil, err
	}
	switch {
	case opts.Limit <= 0:
		opts.Limit = DefaultLogQueryLimit
	case opts.Limit > MaxLogQueryLimit:
		opts.Limit = MaxLogQueryLimit
	}
	if opts.Skip < 0 {
		opts.Skip = 0
	}
	return s.repo.Query(ctx, opts)
}

func (s *loggingService) CountLogs(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	if err := checkLogWindow(opts); err != nil {
		return 0, err
	}
	return s.repo.Count(ctx, opts)
}

func checkLogWindow(opts model.LogQueryOptions) error {
	if opts.StartTime != nil && opts.EndTime != nil && opts.StartTime.After(*opts.EndTime) {
		return model.FieldError("start_time", "must not be after end_time")
	}
	return nil
}
