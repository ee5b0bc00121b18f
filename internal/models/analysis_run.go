package models

// Endpoint identifies which analysis produced an AnalysisRun.
type Endpoint string

const (
	EndpointPrediction    Endpoint = "predict_stock"
	EndpointNews          Endpoint = "news"
	EndpointPortfolio     Endpoint = "portfolio_optimize"
	EndpointLossAveraging Endpoint = "loss_averaging"
)

// RunStatus is the outcome of an analysis request.
type RunStatus string

const (
	RunStatusSucceeded RunStatus = "succeeded"
	RunStatusFailed    RunStatus = "failed"
)

// AnalysisRun is one row of the audit trail. Inputs and results are not stored.
type AnalysisRun struct {
	Base
	Endpoint   Endpoint  `gorm:"not null;index" json:"endpoint"`
	Subject    string    `gorm:"not null" json:"subject"`
	Status     RunStatus `gorm:"not null" json:"status"`
	ErrorCode  string    `json:"error_code,omitempty"`
	DurationMS int64     `json:"duration_ms"`
	ClientIP   string    `json:"client_ip"`
}
