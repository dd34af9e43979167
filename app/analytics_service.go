package app

import (
	"context"
	"fmt"

	"edna/domain/core"
	"edna/ports"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"
)

// AnalyticsService computes cohort statistics over stored results. Nothing
// here feeds back into scoring; it is read-only reporting for the coaching
// side of the product.
type AnalyticsService struct {
	results ports.ResultRepository
}

// NewAnalyticsService creates an analytics service
func NewAnalyticsService(results ports.ResultRepository) *AnalyticsService {
	return &AnalyticsService{results: results}
}

// ScoreDistribution summarizes one numeric column across the cohort
type ScoreDistribution struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
	P25    float64 `json:"p25"`
	P75    float64 `json:"p75"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// CohortSummary is the full analytics payload
type CohortSummary struct {
	Results       int               `json:"results"`
	CoreTypes     map[string]int    `json:"core_types"`
	Subtypes      map[string]int    `json:"subtypes"`
	MirrorOverall ScoreDistribution `json:"mirror_overall"`
}

// Summary aggregates all stored results
func (s *AnalyticsService) Summary(ctx context.Context) (CohortSummary, error) {
	rows, err := s.results.ListAll(ctx)
	if err != nil {
		return CohortSummary{}, err
	}

	summary := CohortSummary{
		Results:   len(rows),
		CoreTypes: make(map[string]int),
		Subtypes:  make(map[string]int),
	}

	scores := make([]float64, 0, len(rows))
	for _, row := range rows {
		summary.CoreTypes[row.CoreType]++
		summary.Subtypes[row.Subtype]++
		scores = append(scores, float64(row.MirrorScore))
	}

	dist, err := distribution(scores)
	if err != nil {
		return CohortSummary{}, err
	}
	summary.MirrorOverall = dist
	return summary, nil
}

// PercentileRank places a mirror score against the cohort under a normal
// model fitted to the stored scores. Returns a 0–100 percentile.
func (s *AnalyticsService) PercentileRank(ctx context.Context, mirrorScore int) (float64, error) {
	rows, err := s.results.ListAll(ctx)
	if err != nil {
		return 0, err
	}
	if len(rows) < 2 {
		return 0, fmt.Errorf("%w: %d results", core.ErrCohortTooSmall, len(rows))
	}

	scores := make([]float64, 0, len(rows))
	for _, row := range rows {
		scores = append(scores, float64(row.MirrorScore))
	}

	mean, err := stats.Mean(scores)
	if err != nil {
		return 0, err
	}
	sigma, err := stats.StandardDeviationSample(scores)
	if err != nil {
		return 0, err
	}
	if sigma == 0 {
		// Degenerate cohort; everyone is the median.
		return 50, nil
	}

	normal := distuv.Normal{Mu: mean, Sigma: sigma}
	return normal.CDF(float64(mirrorScore)) * 100, nil
}

func distribution(values []float64) (ScoreDistribution, error) {
	if len(values) == 0 {
		return ScoreDistribution{}, nil
	}

	mean, err := stats.Mean(values)
	if err != nil {
		return ScoreDistribution{}, err
	}
	median, err := stats.Median(values)
	if err != nil {
		return ScoreDistribution{}, err
	}
	stdDev, err := stats.StandardDeviation(values)
	if err != nil {
		return ScoreDistribution{}, err
	}
	p25, err := stats.Percentile(values, 25)
	if err != nil {
		return ScoreDistribution{}, err
	}
	p75, err := stats.Percentile(values, 75)
	if err != nil {
		return ScoreDistribution{}, err
	}
	min, err := stats.Min(values)
	if err != nil {
		return ScoreDistribution{}, err
	}
	max, err := stats.Max(values)
	if err != nil {
		return ScoreDistribution{}, err
	}

	return ScoreDistribution{
		Count:  len(values),
		Mean:   mean,
		Median: median,
		StdDev: stdDev,
		P25:    p25,
		P75:    p75,
		Min:    min,
		Max:    max,
	}, nil
}
