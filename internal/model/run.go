package model

import "time"

// RunStatus represents the current state of a merge run.
type RunStatus string

const (
	RunStatusRunning  RunStatus = "running"
	RunStatusComplete RunStatus = "complete"
	RunStatusFailed   RunStatus = "failed"
)

// RunInput records the paths a run was configured with.
type RunInput struct {
	PrimaryPath   string `json:"primary_path" yaml:"primary_path"`
	SecondaryPath string `json:"secondary_path" yaml:"secondary_path"`
	OutputPath    string `json:"output_path" yaml:"output_path"`
	DryRun        bool   `json:"dry_run,omitempty" yaml:"dry_run,omitempty"`
}

// MergeStats holds row counts observed at each stage.
type MergeStats struct {
	PrimaryRows       int `json:"primary_rows" yaml:"primary_rows"`
	SecondaryRows     int `json:"secondary_rows" yaml:"secondary_rows"`
	FilteredOut       int `json:"filtered_out" yaml:"filtered_out"`
	JoinedRows        int `json:"joined_rows" yaml:"joined_rows"`
	DuplicatesDropped int `json:"duplicates_dropped" yaml:"duplicates_dropped"`
	OutputRows        int `json:"output_rows" yaml:"output_rows"`
}

// RunResult is the outcome of a successful run.
type RunResult struct {
	Stats        MergeStats `json:"stats" yaml:"stats"`
	OutputSHA256 string     `json:"output_sha256,omitempty" yaml:"output_sha256,omitempty"`
	DurationMs   int64      `json:"duration_ms" yaml:"duration_ms"`
}

// RunError is the persisted form of a failed run.
type RunError struct {
	Kind    ErrorKind `json:"kind" yaml:"kind"`
	Stage   string    `json:"stage" yaml:"stage"`
	Message string    `json:"message" yaml:"message"`
}

// Run is one recorded invocation of the merge pipeline.
type Run struct {
	ID        string     `json:"id" yaml:"id"`
	Input     RunInput   `json:"input" yaml:"input"`
	Status    RunStatus  `json:"status" yaml:"status"`
	Result    *RunResult `json:"result,omitempty" yaml:"result,omitempty"`
	Error     *RunError  `json:"error,omitempty" yaml:"error,omitempty"`
	CreatedAt time.Time  `json:"created_at" yaml:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" yaml:"updated_at"`
}
