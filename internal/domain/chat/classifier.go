package chat

import "strings"

// rule pairs a category with the substrings that trigger it. Rules are
// evaluated in order, first match wins: the categories overlap at the
// keyword level ("is the pain a risk?" must resolve to Risks, not Pain),
// so priority is part of the contract and is spelled out here rather than
// implied by an if/else chain.
type rule struct {
	category Category
	keywords []string
}

// The trigger vocabulary is English even though the authored responses and
// the rest of the UI are Danish, so Danish free text nearly always falls
// through to CategoryDefault. Known limitation; localizing the vocabulary
// is a content decision and is tracked outside this package.
var rules = []rule{
	{CategoryPreparation, []string{"prepare", "preparation"}},
	{CategoryRisks, []string{"risk", "danger", "safe"}},
	{CategoryRecovery, []string{"wake", "recovery", "conscious"}},
	{CategoryFasting, []string{"eat", "drink", "fast", "food"}},
	{CategorySideEffects, []string{"side effect", "after", "expect"}},
	{CategoryPain, []string{"pain", "hurt", "feel"}},
}

// Classify maps a free-text message to exactly one response category.
// Matching is case-insensitive substring testing against the lower-cased
// input. A message matching no rule classifies as CategoryDefault.
func Classify(message string) Category {
	lower := strings.ToLower(message)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.category
			}
		}
	}
	return CategoryDefault
}
