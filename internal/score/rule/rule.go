package rule

import (
	"errors"

	"github.com/google/cel-go/cel"
)

// Verdict is what a matching rule contributes to an assessment.
type Verdict struct {
	// Level is the ranking level, e.g. "excellent". Empty leaves the level to
	// a later rule.
	Level string `yaml:"level"`
	// Eligible overrides the default eligibility when set.
	Eligible *bool `yaml:"eligible"`
	// Hints are category codes the candidate could improve.
	Hints []string `yaml:"hints"`
}

// Rule classifies a score result. When holds a CEL expression over the
// result variables declared by NewResultEnv; Then is applied when it
// evaluates to true. The program is compiled by Init.
type Rule struct {
	When string  `yaml:"when"`
	Then Verdict `yaml:"then"`

	program cel.Program
}

var errNotInitialized = errors.New("rule is not initialized")

// Init compiles When into an executable program within env. The expression
// must evaluate to a bool.
func (r *Rule) Init(env *cel.Env) error {
	ast, iss := env.Parse(r.When)
	if iss.Err() != nil {
		return iss.Err()
	}

	checked, iss := env.Check(ast)
	if iss.Err() != nil {
		return iss.Err()
	}

	if !checked.OutputType().IsExactType(cel.BoolType) {
		return errors.New("rule condition must be a bool expression: " + r.When)
	}

	var err error
	r.program, err = env.Program(checked)
	if err != nil {
		return err
	}

	return nil
}

// Eval runs the compiled condition on vars and reports whether it matched.
// A non-matching rule returns an empty Verdict.
func (r *Rule) Eval(vars map[string]any) (Verdict, bool, error) {
	if r.program == nil {
		return Verdict{}, false, errNotInitialized
	}

	result, _, err := r.program.Eval(vars)
	if err != nil {
		return Verdict{}, false, err
	}

	if matched, ok := result.Value().(bool); !ok || !matched {
		return Verdict{}, false, nil
	}

	return r.Then, true, nil
}
