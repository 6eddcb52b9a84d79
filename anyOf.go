package jsonls

import "strconv"

// evaluateAnyOf checks the node against "anyOf": valid if at least one
// branch matches. Each branch is trial-validated under its own forked
// collector; when every branch fails, the diagnostics and matches merged in
// are the closest branch's, chosen by ValidationResult.Compare, not every
// branch's concatenated. When several branches succeed, their results and
// collectors are all merged in, summing their property counters.
func evaluateAnyOf(node *Node, schema *Schema, ctx *vctx, result *ValidationResult) {
	if len(schema.AnyOf) == 0 {
		return
	}

	var best *ValidationResult
	var bestCollector *MatchingSchemas
	matched := false
	for i, sub := range schema.AnyOf {
		if sub == nil {
			continue
		}
		trialCtx := ctx.trial("anyOf/" + strconv.Itoa(i))
		subResult := validate(node, sub, trialCtx)
		if !subResult.HasProblems() {
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
}
