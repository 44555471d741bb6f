package rule

import (
	"testing"

	"sirs/internal/score"

	"github.com/google/cel-go/cel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRule_Init_Success(t *testing.T) {
	env, err := NewResultEnv()
	require.NoError(t, err)

	rule := &Rule{
		When: "total >= 125",
	}

	err = rule.Init(env)
	assert.NoError(t, err)
	assert.NotNil(t, rule.program, "program should be compiled and assigned")
}

func TestRule_Init_ParseError(t *testing.T) {
	env, err := NewResultEnv()
	require.NoError(t, err)

	rule := &Rule{
		When: "total >= ", // invalid syntax
	}

	err = rule.Init(env)
	assert.Error(t, err, "expected parse error for invalid expression")
}

func TestRule_Init_CheckError(t *testing.T) {
	env, err := NewResultEnv()
	require.NoError(t, err)

	rule := &Rule{
		When: "total > '10'", // type mismatch: comparing int and string
	}

	err = rule.Init(env)
	assert.Error(t, err, "expected check error for type mismatch")
}

func TestRule_Init_UndeclaredVariable(t *testing.T) {
	env, err := NewResultEnv()
	require.NoError(t, err)

	rule := &Rule{When: "salary > 10"}

	assert.Error(t, rule.Init(env))
}

func TestRule_Init_NonBoolCondition(t *testing.T) {
	env, err := NewResultEnv()
	require.NoError(t, err)

	rule := &Rule{When: "total + 1"}

	assert.Error(t, rule.Init(env), "conditions must evaluate to bool")
}

func TestRule_Eval_TrueCondition(t *testing.T) {
	env, err := NewResultEnv()
	require.NoError(t, err)

	rule := &Rule{
		When: "total >= 125",
		Then: Verdict{Level: "excellent"},
	}
	require.NoError(t, rule.Init(env))

	verdict, matched, err := rule.Eval(Vars(score.Result{Total: 130}))

	assert.NoError(t, err)
	assert.True(t, matched)
	assert.Equal(t, "excellent", verdict.Level)
}

func TestRule_Eval_FalseCondition(t *testing.T) {
	env, err := NewResultEnv()
	require.NoError(t, err)

	rule := &Rule{
		When: "total >= 125",
		Then: Verdict{Level: "excellent"},
	}
	require.NoError(t, rule.Init(env))

	verdict, matched, err := rule.Eval(Vars(score.Result{Total: 124}))

	assert.NoError(t, err)
	assert.False(t, matched)
	assert.Empty(t, verdict.Level, "should return empty verdict")
}

func TestRule_Eval_ComplexCondition(t *testing.T) {
	env, err := NewResultEnv()
	require.NoError(t, err)

	rule := &Rule{
		When: "languageTotal < 20 && (english > 0 || french > 0)",
		Then: Verdict{Hints: []string{"language"}},
	}
	require.NoError(t, rule.Init(env))

	result := score.Result{Breakdown: score.Breakdown{English: 15, LanguageTotal: 15}}
	verdict, matched, err := rule.Eval(Vars(result))

	assert.NoError(t, err)
	assert.True(t, matched)
	assert.Equal(t, []string{"language"}, verdict.Hints)
}

func TestRule_Eval_MissingVariable(t *testing.T) {
	env, err := cel.NewEnv(cel.Variable("total", cel.IntType))
	require.NoError(t, err)

	rule := &Rule{When: "total > 3"}
	require.NoError(t, rule.Init(env))

	_, matched, err := rule.Eval(map[string]any{})

	assert.Error(t, err)
	assert.False(t, matched)
}

func TestRule_Eval_NotInitialized(t *testing.T) {
	rule := &Rule{When: "true"}

	_, matched, err := rule.Eval(Vars(score.Result{}))

	assert.ErrorIs(t, err, errNotInitialized)
	assert.False(t, matched)
}

func TestLoad(t *testing.T) {
	content := `
- when: total >= 125
  then:
    level: excellent
- when: wage < 20
  then:
    eligible: false
    hints: [wage]
`
	rules, err := Load([]byte(content), NewResultEnv)
	require.NoError(t, err)
	require.Len(t, rules, 2)

	assert.Equal(t, "excellent", rules[0].Then.Level)
	require.NotNil(t, rules[1].Then.Eligible)
	assert.False(t, *rules[1].Then.Eligible)
	assert.Equal(t, []string{"wage"}, rules[1].Then.Hints)
}

func TestLoad_VerdictNestedUnderThen(t *testing.T) {
	content := `
- when: "total >= 125"
  then:
    level: excellent
    hints: [wage]
`
	rules, err := Load([]byte(content), NewResultEnv)
	require.NoError(t, err)
	require.Len(t, rules, 1)

	assert.Equal(t, "excellent", rules[0].Then.Level)
	assert.Equal(t, []string{"wage"}, rules[0].Then.Hints)
	assert.Nil(t, rules[0].Then.Eligible)
}

func TestLoad_VerdictAtRuleLevelIsIgnored(t *testing.T) {
	content := `
- when: "total >= 125"
  then:
  level: excellent
`
	rules, err := Load([]byte(content), NewResultEnv)
	require.NoError(t, err)
	require.Len(t, rules, 1)

	assert.Empty(t, rules[0].Then.Level)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid yaml", "when: invalid yaml [[[[["},
		{"not a list", "not: a list"},
		{"bad expression", "- when: \"unknownField == 1\"\n  then:\n    level: low\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.content), NewResultEnv)
			assert.Error(t, err)
		})
	}
}

func TestLoad_Empty(t *testing.T) {
	rules, err := Load([]byte(""), NewResultEnv)
	require.NoError(t, err)
	assert.Empty(t, rules, "should handle empty script as empty rules")
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(t.TempDir()+"/missing.yaml", NewResultEnv)
	assert.Error(t, err)
}
