package discord

import (
	"errors"
	"fmt"
	"time"
)

// Load stage kinds, also used in log lines ("Loaded 3/4 commands.").
const (
	KindCommands = "commands"
	KindSlashs   = "slash commands"
	KindEvents   = "events"
)

// LoadFailure records one file that could not be loaded.
type LoadFailure struct {
	Name   string `json:"name"`
	Path   string `json:"path"`
	Reason string `json:"error"`
	Err    error  `json:"-"`
}

func (f LoadFailure) Error() string {
	return fmt.Sprintf("%s: %v", f.Name, f.Err)
}

func (f LoadFailure) Unwrap() error { return f.Err }

// LoadReport is the outcome of one load stage. Total counts only files with
// the importer's extension.
type LoadReport struct {
	Kind     string        `json:"kind"`
	Dir      string        `json:"dir"`
	Loaded   int           `json:"loaded"`
	Total    int           `json:"total"`
	Skipped  bool          `json:"skipped,omitempty"`
	Failures []LoadFailure `json:"failures,omitempty"`
}

func newReport(kind, dir string) *LoadReport {
	return &LoadReport{Kind: kind, Dir: dir}
}

func (r *LoadReport) fail(name, path string, err error) {
	r.Failures = append(r.Failures, LoadFailure{Name: name, Path: path, Reason: err.Error(), Err: err})
}

func (r *LoadReport) String() string {
	if r.Skipped {
		return fmt.Sprintf("Skipped %s.", r.Kind)
	}
	return fmt.Sprintf("Loaded %d/%d %s.", r.Loaded, r.Total, r.Kind)
}

// Err joins every failure of the stage, or returns nil.
func (r *LoadReport) Err() error {
	if r == nil || len(r.Failures) == 0 {
		return nil
	}
	errs := make([]error, len(r.Failures))
	for i, f := range r.Failures {
		errs[i] = f
	}
	return fmt.Errorf("%s: %w", r.Kind, errors.Join(errs...))
}

// LoadSummary collects the reports of a Params run.
type LoadSummary struct {
	Commands *LoadReport   `json:"commands"`
	Slashs   *LoadReport   `json:"slashs"`
	Events   *LoadReport   `json:"events"`
	Database bool          `json:"database"`
	Took     time.Duration `json:"took"`
}

// Err joins the failures of all stages, or returns nil.
func (s *LoadSummary) Err() error {
	return errors.Join(s.Commands.Err(), s.Slashs.Err(), s.Events.Err())
}
