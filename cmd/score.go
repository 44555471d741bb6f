package main

import (
	"encoding/json"
	"fmt"
	"os"

	"sirs/internal/score"
	"sirs/internal/score/assessor"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	scoreProfilePath string
	scoreRulesPath   string
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a profile file and print the result as JSON",
	Long: `Score reads a candidate profile in YAML (or JSON) using the same field
names as the HTTP API and prints the score breakdown and assessment.`,
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().StringVarP(&scoreProfilePath, "profile", "p", "", "profile file (YAML or JSON)")
	scoreCmd.Flags().StringVar(&scoreRulesPath, "rules", "", "assessment rules file (default built-in rules)")
	_ = scoreCmd.MarkFlagRequired("profile")
	rootCmd.AddCommand(scoreCmd)
}

type scoreOutput struct {
	Profile    score.Document      `json:"profile"`
	Result     score.Result        `json:"result"`
	Assessment assessor.Assessment `json:"assessment"`
	AnnualWage float64             `json:"annualWage"`
}

func runScore(cmd *cobra.Command, _ []string) error {
	content, err := os.ReadFile(scoreProfilePath)
	if err != nil {
		return fmt.Errorf("unable to read profile: %w", err)
	}

	// YAML is a superset of JSON, so one decoder covers both.
	var doc score.Document
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return fmt.Errorf("unable to parse profile: %w", err)
	}

	ranker, err := assessor.NewFromFile(scoreRulesPath)
	if err != nil {
		return fmt.Errorf("unable to load assessment rules: %w", err)
	}

	profile := score.Sanitize(doc.Profile())
	result := score.Compute(profile)

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")

	return encoder.Encode(scoreOutput{
		Profile:    score.NewDocument(profile),
		Result:     result,
		Assessment: ranker.Assess(result),
		AnnualWage: score.AnnualWage(profile.HourlyWage),
	})
}
