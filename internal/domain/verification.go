package domain

// UpstreamResult is the decoded response of the upstream siteverify call.
type UpstreamResult struct {
	Success    bool     `json:"success"`
	Score      float64  `json:"score"`
	Action     string   `json:"action"`
	ErrorCodes []string `json:"error-codes,omitempty"`
}

// VerificationOutcome is the normalized decision returned to callers.
// Success, Score and Action are passed through from upstream verbatim;
// IsHuman is derived.
type VerificationOutcome struct {
	Success bool    `json:"success"`
	Score   float64 `json:"score"`
	Action  string  `json:"action"`
	IsHuman bool    `json:"isHuman"`
}
