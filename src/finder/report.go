package finder

type Report struct {
	// Matches holds the rendered form of every candidate that evaluated to
	// the target, in enumeration order.
	Matches []string

	// Candidates is the number of expressions that were evaluated against
	// the target, including the matches but not the excluded ones.
	Candidates int

	// Excluded is the number of candidates dropped for dividing by zero.
	// Always 0 under SentinelDivisionByZero.
	Excluded int
}

// RecordCandidate records one evaluated candidate, keeping its rendered form
// if it matched the target.
func (r *Report) RecordCandidate(expression string, matched bool) {
	r.Candidates++
	if matched {
		r.Matches = append(r.Matches, expression)
	}
}

// RecordExcluded records a candidate dropped for dividing by zero.
func (r *Report) RecordExcluded() {
	r.Excluded++
}

func (r *Report) HasMatches() bool {
	return len(r.Matches) > 0
}
