package models

// Match is an existing issue flagged as a likely duplicate
type Match struct {
	Issue Issue   `json:"issue"`
	Score float64 `json:"score"` // Similarity percentage (0-100)
}

// CreateResult contains the outcome of a create request
type CreateResult struct {
	Issue             *Issue  `json:"issue,omitempty"`
	Similar           []Match `json:"similar,omitempty"`
	NeedsConfirmation bool    `json:"needs_confirmation"`
}

// Created reports whether the issue reached the store
func (r *CreateResult) Created() bool {
	return r != nil && r.Issue != nil
}
