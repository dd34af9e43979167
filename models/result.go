package models

import (
	"encoding/json"
	"time"

	"edna/domain/core"
	"edna/domain/profile"
)

// StoredResult is a finished attempt's scored result. Payload is the full
// result JSON (the wire contract); the denormalized columns exist for
// cohort analytics queries.
type StoredResult struct {
	ID           string    `db:"id" json:"id"`
	AttemptID    string    `db:"attempt_id" json:"attempt_id"`
	UserID       string    `db:"user_id" json:"user_id"`
	CoreType     string    `db:"core_type" json:"core_type"`
	Subtype      string    `db:"subtype" json:"subtype"`
	MirrorScore  int       `db:"mirror_score" json:"mirror_score"`
	PayloadJSON  []byte    `db:"payload" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// NewStoredResult builds the row shape from a scored result
func NewStoredResult(attemptID core.AttemptID, userID core.UserID, res profile.Result) (StoredResult, error) {
	payload, err := json.Marshal(res)
	if err != nil {
		return StoredResult{}, err
	}
	return StoredResult{
		ID:          core.NewResultID().String(),
		AttemptID:   attemptID.String(),
		UserID:      userID.String(),
		CoreType:    string(res.CoreIdentity.Type),
		Subtype:     string(res.Subtype.Subtype),
		MirrorScore: res.MirrorAwareness.OverallScore,
		PayloadJSON: payload,
		CreatedAt:   time.Now(),
	}, nil
}

// Result decodes the stored payload back into the domain result
func (r StoredResult) Result() (profile.Result, error) {
	var res profile.Result
	if err := json.Unmarshal(r.PayloadJSON, &res); err != nil {
		return profile.Result{}, err
	}
	return res, nil
}
