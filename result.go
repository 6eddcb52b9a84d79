package jsonls

// result.go implements the scoring comparator anyOf/oneOf use to pick which
// alternative schema's diagnostics actually get reported. It's
// built around a score, not a boolean tree: this validator reports one
// diagnostic set per node, so when several anyOf branches fail, it must
// choose the "closest" one rather than reporting all of them.

// ValidationResult accumulates the outcome of validating one node against
// one schema (or, via merge, against a nested combination of schemas).
type ValidationResult struct {
	Problems []Diagnostic

	// PropertiesMatches counts how many object properties or array elements
	// were checked against some (sub)schema at all.
	PropertiesMatches int

	// PropertiesValueMatches counts how many of those checks were entirely
	// problem-free.
	PropertiesValueMatches int

	// PrimaryValueMatches counts how many times this schema's primary
	// applicability keyword (type, or a branch of anyOf/oneOf) matched the
	// node's kind, independent of whether deeper keywords also matched.
	PrimaryValueMatches int

	// EnumValueMatch is true once the node's value has been confirmed equal
	// to one of an `enum`/`const` candidate set.
	EnumValueMatch bool

	// EnumValues collects the candidate values from every enum/const this
	// result touched. No diagnostic message is built from it: each enum/const
	// message lists only its own schema's candidates.
	EnumValues []any
}

// NewValidationResult returns an empty, currently-passing result.
func NewValidationResult() *ValidationResult {
	return &ValidationResult{}
}

// HasProblems reports whether any diagnostic has been recorded.
func (r *ValidationResult) HasProblems() bool {
	return len(r.Problems) > 0
}

// AddProblem appends a single diagnostic.
func (r *ValidationResult) AddProblem(d Diagnostic) {
	r.Problems = append(r.Problems, d)
}

// Merge folds sub's problems and counters into r, as when a keyword (allOf,
// dependencies, propertyNames) delegates to a subschema and keeps every resulting
// diagnostic regardless of outcome.
func (r *ValidationResult) Merge(sub *ValidationResult) {
	r.Problems = append(r.Problems, sub.Problems...)
	r.PropertiesMatches += sub.PropertiesMatches
	r.PropertiesValueMatches += sub.PropertiesValueMatches
	r.PrimaryValueMatches += sub.PrimaryValueMatches
	if sub.EnumValueMatch {
		r.EnumValueMatch = true
	}
	r.EnumValues = append(r.EnumValues, sub.EnumValues...)
}

// MergeEnumValues folds only sub's enum bookkeeping into r: sub's candidates
// are appended while neither side has matched, and a match on sub clears
// them. anyOf/oneOf branch selection does not call it; a losing branch's
// enum candidates are dropped along with the rest of its result, and no
// diagnostic message is rewritten.
func (r *ValidationResult) MergeEnumValues(sub *ValidationResult) {
	if !r.EnumValueMatch && !sub.EnumValueMatch {
		r.EnumValues = append(r.EnumValues, sub.EnumValues...)
	}
	if sub.EnumValueMatch {
		r.EnumValueMatch = true
		r.EnumValues = nil
	}
}

// MergePropertyMatch folds the result of validating one child (a property
// value or array element) against a subschema, without importing the
// child's own PropertiesMatches/PropertiesValueMatches totals: those are
// this schema's own counters, incremented once per child it evaluated.
func (r *ValidationResult) MergePropertyMatch(sub *ValidationResult) {
	r.Problems = append(r.Problems, sub.Problems...)
	r.PropertiesMatches++
	if !sub.HasProblems() {
		r.PropertiesValueMatches++
	}
	if sub.EnumValueMatch {
		r.EnumValueMatch = true
	}
	r.EnumValues = append(r.EnumValues, sub.EnumValues...)
}

// Compare implements the total order used to pick the best-matching
// alternative among anyOf/oneOf branches: a result with no problems wins
// outright over one with problems (the number of problems is not compared);
// ties break on enum match, then on how much of the node's shape the branch
// actually matched, most specific signal first.
func (r *ValidationResult) Compare(other *ValidationResult) int {
	hasProblems, otherHasProblems := r.HasProblems(), other.HasProblems()
	if hasProblems != otherHasProblems {
		if hasProblems {
			return -1
		}
		return 1
	}

	if r.EnumValueMatch != other.EnumValueMatch {
		if r.EnumValueMatch {
			return 1
		}
		return -1
	}

	if d := r.PrimaryValueMatches - other.PrimaryValueMatches; d != 0 {
		return sign(d)
	}
	if d := r.PropertiesValueMatches - other.PropertiesValueMatches; d != 0 {
		return sign(d)
	}
	if d := r.PropertiesMatches - other.PropertiesMatches; d != 0 {
		return sign(d)
	}
	return 0
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}

// Better reports whether r should be preferred over other as the "best
// match" branch of an anyOf/oneOf.
func (r *ValidationResult) Better(other *ValidationResult) bool {
	return r.Compare(other) > 0
}
