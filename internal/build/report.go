package build

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// BuildOutcome is the typed enumeration of final build result states.
type BuildOutcome string

const (
	OutcomeSuccess  BuildOutcome = "success"
	OutcomeFailed   BuildOutcome = "failed"
	OutcomeCanceled BuildOutcome = "canceled"
)

// BuildReport captures metrics about one conversion run. It is persisted as
// build-report.json in the build directory for post-hoc inspection.
type BuildReport struct {
	ID            string    `json:"id"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	Input         string    `json:"input"`
	Categories    int       `json:"categories"`
	Subcategories int       `json:"subcategories"`
	Groups        int       `json:"groups"`
	Entries       int       `json:"entries"`
	// OrphanGroups counts groups the parser had to drop because no
	// subcategory was open when they closed.
	OrphanGroups       int                      `json:"orphan_groups"`
	ImplicitCategories int                      `json:"implicit_categories"`
	FilesWritten       int                      `json:"files_written"`
	StageDurations     map[string]time.Duration `json:"stage_durations"`
	Errors             []string                 `json:"errors,omitempty"`
	Outcome            BuildOutcome             `json:"outcome"`
}

func newBuildReport() *BuildReport {
	return &BuildReport{
		ID:             uuid.NewString(),
		Start:          time.Now(),
		StageDurations: make(map[string]time.Duration),
	}
}

// finish stamps the end time and derives the outcome.
func (r *BuildReport) finish() {
	r.End = time.Now()
	if r.Outcome != "" {
		return
	}
	if len(r.Errors) > 0 {
		r.Outcome = OutcomeFailed
	} else {
		r.Outcome = OutcomeSuccess
	}
}

// Persist writes the report into the build directory. Callers treat failure
// as non-fatal; the report is diagnostics, not an artifact.
func (r *BuildReport) Persist(dir string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	path := filepath.Join(dir, "build-report.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
