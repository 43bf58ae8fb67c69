package domain

// FetchResult is the outcome of one GET against the AxonOps API. Exactly one
// of Body or Err is meaningful.
type FetchResult struct {
	URL    string
	Status int
	Body   []byte
	Err    error
}

func (r FetchResult) OK() bool {
	return r.Err == nil
}

// FetchStats separates "nothing there" from "could not look".
type FetchStats struct {
	Requests int
	NotFound int
	Failures int
}

func (s FetchStats) Degraded() bool {
	return s.Failures > 0
}

type KindResult struct {
	Kind      ResourceKind
	Resources int
	Skipped   int
	Fetch     FetchStats
	File      string
	// Error is set when the kind's output could not be produced; it then
	// contributes no file and no adoption commands.
	Error string
}

func (k KindResult) Failed() bool {
	return k.Error != ""
}

type OutputFile struct {
	Name string
	Path string
	Size int64
}

// RunSummary is what reporters render at the end of a run.
type RunSummary struct {
	RunID      string
	Host       string
	Scope      ClusterScope
	OutputDir  string
	ScriptPath string
	Kinds      []KindResult
	Files      []OutputFile
	Commands   int
}

func (s RunSummary) TotalResources() int {
	total := 0
	for _, k := range s.Kinds {
		total += k.Resources
	}
	return total
}

func (s RunSummary) FailedKinds() int {
	n := 0
	for _, k := range s.Kinds {
		if k.Failed() {
			n++
		}
	}
	return n
}

func (s RunSummary) TotalFailures() int {
	total := 0
	for _, k := range s.Kinds {
		total += k.Fetch.Failures
	}
	return total
}
