package assessor

import (
	_ "embed"
	"log/slog"
	"slices"

	"sirs/internal/score"
	"sirs/internal/score/rule"
)

// LevelLow is used when no rule assigns a level.
const LevelLow = "low"

// EligibilityThreshold is the total from which a result is eligible unless a
// rule says otherwise.
const EligibilityThreshold = 80

//go:embed default_rules.yaml
var defaultRules []byte

// Assessment classifies a score result.
type Assessment struct {
	Level    string   `json:"level"`
	Eligible bool     `json:"eligible"`
	Hints    []string `json:"hints,omitempty"`
}

// Assessor evaluates assessment rules in declaration order. It is immutable
// after construction and safe for concurrent use.
type Assessor struct {
	rules []rule.Rule
}

// Assess applies every rule to r. The first matching rule with a level sets
// the level, the last matching rule with an eligibility flag sets
// eligibility, and hints accumulate without duplicates.
//
// Rule evaluation errors are logged and the rule is skipped.
func (a *Assessor) Assess(r score.Result) Assessment {
	assessment := Assessment{
		Eligible: r.Total >= EligibilityThreshold,
	}

	vars := rule.Vars(r)
	for i := range a.rules {
		verdict, matched, err := a.rules[i].Eval(vars)
		if err != nil {
			slog.Error("rule eval", "error", err, "rule", a.rules[i].When)
			continue
		}
		if !matched {
			continue
		}

		if assessment.Level == "" && verdict.Level != "" {
			assessment.Level = verdict.Level
		}
		if verdict.Eligible != nil {
			assessment.Eligible = *verdict.Eligible
		}
		for _, hint := range verdict.Hints {
			if !slices.Contains(assessment.Hints, hint) {
				assessment.Hints = append(assessment.Hints, hint)
			}
		}
	}

	if assessment.Level == "" {
		assessment.Level = LevelLow
	}

	return assessment
}

// New creates an Assessor over already compiled rules.
func New(rules []rule.Rule) *Assessor {
	return &Assessor{rules: rules}
}

// NewDefault creates an Assessor with the built-in ranking rules.
func NewDefault() (*Assessor, error) {
	rules, err := rule.Load(defaultRules, rule.NewResultEnv)
	if err != nil {
		return nil, err
	}
	return New(rules), nil
}

// NewFromFile creates an Assessor with the rules stored in path, or the
// built-in rules when path is empty.
func NewFromFile(path string) (*Assessor, error) {
	if path == "" {
		return NewDefault()
	}

	rules, err := rule.LoadFromFile(path, rule.NewResultEnv)
	if err != nil {
		return nil, err
	}
	return New(rules), nil
}
