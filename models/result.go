package models

// ProcessingResult is the terminal outcome for one entry. Exactly one of the
// success/skipped/failed shapes is populated; the entry always carries through
// for the audit trail.
type ProcessingResult struct {
	Entry   VocabularyEntry `yaml:"entry" json:"entry"`
	Data    Record          `yaml:"data,omitempty" json:"data,omitempty"`
	Success bool            `yaml:"success" json:"success"`
	Skipped bool            `yaml:"skipped,omitempty" json:"skipped,omitempty"`
	Reason  string          `yaml:"reason,omitempty" json:"reason,omitempty"`
	Error   string          `yaml:"error,omitempty" json:"error,omitempty"`
	// CardID is the remote card identifier when a card was created.
	CardID string `yaml:"card_id,omitempty" json:"card_id,omitempty"`
}

// ProcessingSummary is the run-level audit trail returned to the caller.
// Built incrementally over one run and discarded after reporting.
type ProcessingSummary struct {
	RunID            string             `yaml:"run_id" json:"run_id"`
	TotalRows        int                `yaml:"total_rows" json:"total_rows"`
	SuccessCount     int                `yaml:"success_count" json:"success_count"`
	FailureCount     int                `yaml:"failure_count" json:"failure_count"`
	SkippedCount     int                `yaml:"skipped_count" json:"skipped_count"`
	Results          []ProcessingResult `yaml:"results" json:"results"`
	ProcessingTimeMs int64              `yaml:"processing_time_ms" json:"processing_time_ms"`
}
