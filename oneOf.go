package jsonls

import "strconv"

// evaluateOneOf checks the node against "oneOf": valid only if exactly one
// branch matches. Identical to anyOf's trial-fork-merge scoring, except that
// matching more than one branch is itself an error, flagged at the node
// (length 1) rather than concatenating every branch's diagnostics; the best
// match's problems/collector are still merged in, to surface the closest
// failure when zero branches matched.
func evaluateOneOf(node *Node, schema *Schema, ctx *vctx, result *ValidationResult) {
	if len(schema.OneOf) == 0 {
		return
	}

	matchCount := 0
	matched := false
	var best *ValidationResult
	var bestCollector *MatchingSchemas
	for i, sub := range schema.OneOf {
		if sub == nil {
			continue
		}
		trialCtx := ctx.trial("oneOf/" + strconv.Itoa(i))
		subResult := validate(node, sub, trialCtx)
		if !subResult.HasProblems() {
			matchCount++
			if matched {
				best.Merge(subResult)
				bestCollector.merge(trialCtx.collector)
			} else {
				matched = true
				best = subResult
				bestCollector = trialCtx.collector
			}
			continue
		}
		if matched {
			continue
		}
		if best == nil || subResult.Better(best) {
			best = subResult
			bestCollector = trialCtx.collector
		}
	}

	if best == nil {
		return
	}
	result.Merge(best)
	ctx.collector.merge(bestCollector)

	if matchCount > 1 {
		result.AddProblem(ctx.problemAt(node.Offset, SeverityError, "", "Matches multiple schemas when only one must validate."))
	}
}
