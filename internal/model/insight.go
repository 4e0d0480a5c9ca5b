package model

// Severity tags how urgent an insight is.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

// Insight is a single rule-triggered observation about spending behavior.
// Recomputed on demand from the current snapshot; never persisted.
type Insight struct {
	Type     string
	Icon     string
	Title    string
	Body     string
	Severity Severity
	Metric   string // short display string, may be empty
}
