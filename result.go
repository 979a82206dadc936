package paramval

import "sort"

// Result carries the outcome of one Process call. Each call returns a fresh
// Result, so a Processor can be shared freely across goroutines.
type Result struct {
	issues Issues
}

func (r *Result) append(iss ...Issue) {
	r.issues = AppendIssues(r.issues, iss...)
}

// Valid reports whether the processed value conformed to the schema.
func (r *Result) Valid() bool {
	return len(r.issues) == 0
}

// Errors returns the collected messages sorted lexicographically, or an
// empty slice when the value was valid. Sorting trades discovery order for
// deterministic, alphabetically grouped output.
func (r *Result) Errors() []string {
	msgs := make([]string, len(r.issues))
	for i, it := range r.issues {
		msgs[i] = it.Message
	}
	sort.Strings(msgs)
	return msgs
}

// Issues returns the structured issues in discovery order.
func (r *Result) Issues() Issues {
	out := make(Issues, len(r.issues))
	copy(out, r.issues)
	return out
}

// Err returns nil when the value was valid, or the Issues as an error.
func (r *Result) Err() error {
	if len(r.issues) == 0 {
		return nil
	}
	return r.Issues()
}
