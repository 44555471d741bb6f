package rule

import (
	"fmt"
	"os"

	"github.com/google/cel-go/cel"
	"gopkg.in/yaml.v3"
)

// Load parses a YAML list of rules and compiles each of them in an
// environment obtained from envProvider.
//
//	- when: "total >= 125"
//	  then:
//	    level: excellent
//	    hints: [wage]
//
// An empty document yields no rules.
func Load(content []byte, envProvider func() (*cel.Env, error)) ([]Rule, error) {
	rules := []Rule{}

	err := yaml.Unmarshal(content, &rules)
	if err != nil {
		return nil, err
	}

	for i := range rules {
		env, err := envProvider()
		if err != nil {
			return nil, err
		}

		err = rules[i].Init(env)
		if err != nil {
			return nil, fmt.Errorf("rule %d %q: %w", i, rules[i].When, err)
		}
	}

	return rules, nil
}

// LoadFromFile reads and compiles the rules stored in file.
func LoadFromFile(file string, envProvider func() (*cel.Env, error)) ([]Rule, error) {
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	return Load(content, envProvider)
}
