package domain

// OutcomeKind distinguishes a pipeline that produced its primary artifact
// from one that found nothing to report.
type OutcomeKind int

const (
	// OutcomeWritten indicates the primary output table was written.
	OutcomeWritten OutcomeKind = iota

	// OutcomeEmpty indicates no rows matched. Some pipelines still write
	// a narrative report noting the absence; those paths are in Paths.
	OutcomeEmpty
)

// String returns the string representation.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeWritten:
		return "written"
	case OutcomeEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// Outcome is the result of one pipeline invocation.
type Outcome struct {
	Kind   OutcomeKind
	Paths  []string
	Reason string
}

// Written returns an outcome for a run that wrote the given files.
func Written(paths ...string) Outcome {
	return Outcome{Kind: OutcomeWritten, Paths: paths}
}

// Empty returns an outcome for a run that found nothing to report.
func Empty(reason string, paths ...string) Outcome {
	return Outcome{Kind: OutcomeEmpty, Paths: paths, Reason: reason}
}

// IsEmpty reports whether the run found nothing to report.
func (o Outcome) IsEmpty() bool {
	return o.Kind == OutcomeEmpty
}
