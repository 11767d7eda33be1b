package scan

import "github.com/yaklabco/mdnote/pkg/outline"

// FileOutcome is the analysis of one file.
type FileOutcome struct {
	Path string `json:"path"`

	// Stats is nil when the file could not be read.
	Stats *outline.Stats `json:"stats,omitempty"`

	Err   error  `json:"-"`
	Error string `json:"error,omitempty"`
}

// Totals aggregates a run.
type Totals struct {
	FilesDiscovered int `json:"files_discovered"`
	FilesAnalyzed   int `json:"files_analyzed"`
	FilesErrored    int `json:"files_errored"`

	Words      int `json:"words"`
	Headings   int `json:"headings"`
	Links      int `json:"links"`
	Images     int `json:"images"`
	CodeBlocks int `json:"code_blocks"`
	Tasks      int `json:"tasks"`
	TasksDone  int `json:"tasks_done"`
}

// Result is the outcome of Scanner.Run.
type Result struct {
	Files  []FileOutcome `json:"files"`
	Totals Totals        `json:"totals"`
}

// HasErrors reports whether any file failed.
func (r *Result) HasErrors() bool {
	return r != nil && r.Totals.FilesErrored > 0
}

func (r *Result) accumulate(outcome FileOutcome) {
	if outcome.Err != nil {
		outcome.Error = outcome.Err.Error()
		r.Files = append(r.Files, outcome)
		r.Totals.FilesErrored++
		return
	}
	r.Files = append(r.Files, outcome)

	if outcome.Stats == nil {
		return
	}
	stats := outcome.Stats

	r.Totals.FilesAnalyzed++
	r.Totals.Words += stats.Words
	r.Totals.Headings += len(stats.Headings)
	r.Totals.Links += stats.Links
	r.Totals.Images += stats.Images
	r.Totals.CodeBlocks += len(stats.CodeBlocks)
	r.Totals.Tasks += stats.Tasks
	r.Totals.TasksDone += stats.TasksDone
}
