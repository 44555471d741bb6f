package rule

import (
	"sirs/internal/score"

	"github.com/google/cel-go/cel"
)

// Variables available to rule conditions, one per breakdown field plus the
// total.
const (
	VarTotal              = "total"
	VarExperience         = "experience"
	VarCanadianExperience = "canadianExperience"
	VarCurrentJob         = "currentJob"
	VarExperienceTotal    = "experienceTotal"
	VarEducation          = "education"
	VarEducationLocation  = "educationLocation"
	VarDesignation        = "designation"
	VarEducationTotal     = "educationTotal"
	VarEnglish            = "english"
	VarFrench             = "french"
	VarLanguageTotal      = "languageTotal"
	VarWage               = "wage"
	VarArea               = "area"
	VarWorkedOutside      = "workedOutside"
	VarGraduatedOutside   = "graduatedOutside"
)

var resultVars = []string{
	VarTotal,
	VarExperience,
	VarCanadianExperience,
	VarCurrentJob,
	VarExperienceTotal,
	VarEducation,
	VarEducationLocation,
	VarDesignation,
	VarEducationTotal,
	VarEnglish,
	VarFrench,
	VarLanguageTotal,
	VarWage,
	VarArea,
	VarWorkedOutside,
	VarGraduatedOutside,
}

// NewResultEnv returns a CEL environment declaring every result variable as
// an int.
func NewResultEnv() (*cel.Env, error) {
	options := make([]cel.EnvOption, 0, len(resultVars))
	for _, name := range resultVars {
		options = append(options, cel.Variable(name, cel.IntType))
	}

	return cel.NewEnv(options...)
}

// Vars returns the activation for r.
func Vars(r score.Result) map[string]any {
	b := r.Breakdown
	return map[string]any{
		VarTotal:              int64(r.Total),
		VarExperience:         int64(b.Experience),
		VarCanadianExperience: int64(b.CanadianExperience),
		VarCurrentJob:         int64(b.CurrentJob),
		VarExperienceTotal:    int64(b.ExperienceTotal),
		VarEducation:          int64(b.Education),
		VarEducationLocation:  int64(b.EducationLocation),
		VarDesignation:        int64(b.Designation),
		VarEducationTotal:     int64(b.EducationTotal),
		VarEnglish:            int64(b.English),
		VarFrench:             int64(b.French),
		VarLanguageTotal:      int64(b.LanguageTotal),
		VarWage:               int64(b.Wage),
		VarArea:               int64(b.Area),
		VarWorkedOutside:      int64(b.WorkedOutside),
		VarGraduatedOutside:   int64(b.GraduatedOutside),
	}
}
