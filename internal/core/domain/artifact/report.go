package artifact

import "sort"

// Failure records one plugin that could not be resolved or fetched.
type Failure struct {
	Name      string
	Reason    string
	Retryable bool
}

// Report aggregates the outcome of a batch install, keyed by plugin name so
// partial failures stay individually attributable.
type Report struct {
	// Downloaded maps plugin name (or manual-N for manual URLs) to the
	// local path the artifact was written to.
	Downloaded map[string]string
	Failures   []Failure
}

// NewReport returns an empty report ready for aggregation.
func NewReport() *Report {
	return &Report{Downloaded: make(map[string]string)}
}

// AddSuccess records a downloaded artifact.
func (r *Report) AddSuccess(name, path string) {
	r.Downloaded[name] = path
}

// AddFailure records a per-plugin failure.
func (r *Report) AddFailure(name, reason string, retryable bool) {
	r.Failures = append(r.Failures, Failure{Name: name, Reason: reason, Retryable: retryable})
}

// FailedNames returns the failed plugin names, sorted for stable output.
func (r *Report) FailedNames() []string {
	names := make([]string, 0, len(r.Failures))
	for _, f := range r.Failures {
		names = append(names, f.Name)
	}
	sort.Strings(names)
	return names
}
