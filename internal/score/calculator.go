package score

// Breakdown holds the points awarded by every rule. Group totals are stored
// after their ceilings have been applied.
type Breakdown struct {
	Experience         int `json:"experience"`
	CanadianExperience int `json:"canadianExperience"`
	CurrentJob         int `json:"currentJob"`
	// ExperienceTotal is the capped experience group.
	ExperienceTotal int `json:"experienceTotal"`

	Education         int `json:"education"`
	EducationLocation int `json:"educationLocation"`
	Designation       int `json:"designation"`
	// EducationTotal is the capped education group.
	EducationTotal int `json:"educationTotal"`

	English int `json:"english"`
	French  int `json:"french"`
	// LanguageTotal is the capped language group.
	LanguageTotal int `json:"languageTotal"`

	Wage int `json:"wage"`
	Area int `json:"area"`

	WorkedOutside    int `json:"workedOutside"`
	GraduatedOutside int `json:"graduatedOutside"`
}

// Result is the outcome of Compute.
type Result struct {
	// Total is in [0, MaxTotal].
	Total     int       `json:"total"`
	Breakdown Breakdown `json:"breakdown"`
}

// Compute scores a profile against the rubric.
//
// Evaluation is done in two passes: every rule is evaluated into the
// breakdown, then the experience, education and language groups are summed
// and capped, and the capped groups are added to the remaining rules. The
// grand total is clamped to MaxTotal.
//
// Compute is a pure function and is safe for concurrent use. Invalid input
// never fails; it is normalized to the lowest scoring value instead.
func Compute(p Profile) Result {
	p = Sanitize(p)

	b := evaluate(p)
	b.ExperienceTotal = capGroup(MaxExperienceGroup, b.Experience, b.CanadianExperience, b.CurrentJob)
	b.EducationTotal = capGroup(MaxEducationGroup, b.Education, b.EducationLocation, b.Designation)
	b.LanguageTotal = capGroup(MaxLanguageGroup, b.English, b.French)

	total := capGroup(MaxTotal,
		b.ExperienceTotal,
		b.EducationTotal,
		b.LanguageTotal,
		b.Wage,
		b.Area,
		b.WorkedOutside,
		b.GraduatedOutside,
	)

	return Result{Total: total, Breakdown: b}
}

// evaluate runs every rule on a sanitized profile. Group totals are left
// empty.
func evaluate(p Profile) Breakdown {
	return Breakdown{
		Experience:         experiencePointsOf(p.Experience),
		CanadianExperience: bonus(p.CanadianExperience, CanadianExperienceBonus),
		CurrentJob:         bonus(p.CurrentLocalJob, CurrentLocalJobBonus),
		Education:          educationPointsOf(p.Education),
		EducationLocation:  locationBonus(p.DomesticEducation),
		Designation:        designationBonus(p.Designation),
		English:            languagePoints(p.English),
		French:             languagePoints(p.French),
		Wage:               wagePoints(p.HourlyWage),
		Area:               areaPointsOf(p.Area),
		WorkedOutside:      bonus(p.WorkedOutsideCore, WorkedOutsideCoreBonus),
		GraduatedOutside:   bonus(p.GraduatedOutsideCore, GraduatedOutsideBonus),
	}
}

// capGroup sums parts and clamps the sum to [0, ceiling].
func capGroup(ceiling int, parts ...int) int {
	sum := 0
	for _, part := range parts {
		sum += part
	}
	switch {
	case sum < 0:
		return 0
	case sum > ceiling:
		return ceiling
	default:
		return sum
	}
}
