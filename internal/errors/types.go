package errors

// failure envelope returned by every handler
type ErrorResponse struct {
	Success bool              `json:"success"`
	Error   string            `json:"error"`             // user-facing message
	Code    string            `json:"code"`              // machine-readable code (e.g. "quota_exceeded")
	Details string            `json:"details,omitempty"` // sanitized in production
	Fields  map[string]string `json:"fields,omitempty"`  // per-field validation problems
	Reason  string            `json:"reason,omitempty"`  // generation failure reason
	Usage   *UsageInfo        `json:"usage,omitempty"`   // quota state on 429
}

type UsageInfo struct {
	Kind  string `json:"kind"`
	Used  int    `json:"used"`
	Limit int    `json:"limit"`
}

type ErrorInfo struct {
	category  string
	sanitized string
}
