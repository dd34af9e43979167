package app

import (
	"bytes"
	"context"
	"sync"

	"edna/domain/core"
	"edna/domain/profile"
	"edna/internal"
	"edna/models"
	"edna/ports"

	"golang.org/x/sync/semaphore"
)

// RescoreService recomputes stored results from their stored answer maps,
// used after bank or content table updates. Because scoring is pure, an
// unchanged answer map must reproduce a byte-identical payload; the report
// counts how many rows actually moved.
type RescoreService struct {
	attempts    ports.AttemptRepository
	results     ports.ResultRepository
	concurrency int64
	log         *internal.Logger
}

// NewRescoreService creates a rescore service with bounded parallelism
func NewRescoreService(attempts ports.AttemptRepository, results ports.ResultRepository, concurrency int64) *RescoreService {
	if concurrency < 1 {
		concurrency = 1
	}
	return &RescoreService{
		attempts:    attempts,
		results:     results,
		concurrency: concurrency,
		log:         internal.DefaultLogger,
	}
}

// Report summarizes one rescore run
type Report struct {
	Total     int `json:"total"`
	Unchanged int `json:"unchanged"`
	Updated   int `json:"updated"`
	Failed    int `json:"failed"`
}

// Run rescores every stored result against its attempt's answers
func (s *RescoreService) Run(ctx context.Context) (Report, error) {
	rows, err := s.results.ListAll(ctx)
	if err != nil {
		return Report{}, err
	}

	sem := semaphore.NewWeighted(s.concurrency)
	var mu sync.Mutex
	report := Report{Total: len(rows)}

	var wg sync.WaitGroup
	for _, row := range rows {
		if err := sem.Acquire(ctx, 1); err != nil {
			// Drain in-flight workers so the returned report is settled.
			wg.Wait()
			return report, err
		}
		wg.Add(1)
		go func(row models.StoredResult) {
			defer sem.Release(1)
			defer wg.Done()

			changed, err := s.rescoreOne(ctx, row)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err != nil:
				report.Failed++
				s.log.Warn("rescore of result %s failed: %v", row.ID, err)
			case changed:
				report.Updated++
			default:
				report.Unchanged++
			}
		}(row)
	}
	wg.Wait()
	return report, nil
}

func (s *RescoreService) rescoreOne(ctx context.Context, row models.StoredResult) (bool, error) {
	sess, err := s.attempts.Get(ctx, core.AttemptID(row.AttemptID))
	if err != nil {
		return false, err
	}

	fresh := profile.Score(sess.Answers)
	replacement, err := models.NewStoredResult(core.AttemptID(row.AttemptID), core.UserID(row.UserID), fresh)
	if err != nil {
		return false, err
	}

	if bytes.Equal(replacement.PayloadJSON, row.PayloadJSON) {
		return false, nil
	}

	replacement.ID = row.ID
	replacement.CreatedAt = row.CreatedAt
	if err := s.results.Replace(ctx, replacement); err != nil {
		return false, err
	}
	return true, nil
}
