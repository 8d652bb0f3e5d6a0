// Package preflight runs environment checks before the wizard mutates
// anything: host application presence and required external tools.
package preflight

// Check is the interface that preflight checks must implement.
type Check interface {
	// Name returns the unique identifier for this check.
	Name() string

	// Run executes the check and returns its result.
	Run() *Result
}

// Result represents the outcome of a single preflight check.
type Result struct {
	// Name is the identifier of the check that produced this result.
	Name string

	// OK indicates whether the check passed.
	OK bool

	// Message describes the check outcome.
	Message string

	// FixHint provides guidance on how to resolve a failure.
	FixHint string

	// Err classifies a failure so callers can match it with errors.Is.
	// Nil when the check passed.
	Err error
}

// Runner executes preflight checks in registration order.
type Runner struct {
	checks []Check
}

// NewRunner creates an empty runner.
func NewRunner() *Runner {
	return &Runner{}
}

// AddCheck registers a check with the runner.
func (r *Runner) AddCheck(c Check) {
	r.checks = append(r.checks, c)
}

// Run executes all registered checks and returns their results.
func (r *Runner) Run() []*Result {
	results := make([]*Result, 0, len(r.checks))
	for _, check := range r.checks {
		results = append(results, check.Run())
	}
	return results
}

// Failures filters results down to the failed ones.
func Failures(results []*Result) []*Result {
	var failed []*Result
	for _, res := range results {
		if !res.OK {
			failed = append(failed, res)
		}
	}
	return failed
}
