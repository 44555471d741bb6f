package score

// Group and total ceilings.
const (
	MaxExperienceGroup = 40
	MaxEducationGroup  = 40
	MaxLanguageGroup   = 40
	MaxTotal           = 200
)

// Flat bonuses.
const (
	CanadianExperienceBonus = 10
	CurrentLocalJobBonus    = 10
	DesignationBonus        = 5
	WorkedOutsideCoreBonus  = 10
	GraduatedOutsideBonus   = 10
)

// Language step table: nothing below clbMinimum, clbStep points per level
// from clbMinimum, flat from clbMaximum.
const (
	clbMinimum = CLB(4)
	clbMaximum = CLB(9)
	clbStep    = 5

	MaxLanguagePoints = int(clbMaximum-clbMinimum+1) * clbStep
)

// Wage bands: nothing below WageMinimum, one point per whole dollar from
// WageMinimum, MaxWagePoints at WageMaximum and above.
const (
	WageMinimum   = 16
	WageMaximum   = 70
	MaxWagePoints = 55
)

// table maps an enum ordinal to points. The first entry is the lowest
// scoring member and is used for out-of-domain values.
type table []int

func (t table) lookup(ordinal int) int {
	if ordinal < 0 || ordinal >= len(t) {
		return t[0]
	}
	return t[ordinal]
}

var (
	experiencePoints = table{0, 1, 4, 8, 12, 16, 20}
	educationPoints  = table{0, 5, 5, 15, 15, 22, 27}
	locationPoints   = table{0, 6, 8}
	areaPoints       = table{0, 5, 15}
)

// Wire codes, index-aligned with the enums.
var (
	experienceCodes = []string{"none", "less_than_1", "one_to_two", "two_to_three", "three_to_four", "four_to_five", "five_plus"}
	educationCodes  = []string{"secondary", "trades_cert", "associate", "bachelor", "post_grad_cert", "master", "doctorate"}
	locationCodes   = []string{"", "canada", "bc"}
	areaCodes       = []string{"area1", "area2", "area3"}
)

// Professions eligible for the professional designation bonus.
var Professions = []Profession{
	"registered_nurse",
	"registered_psychiatric_nurse",
	"licensed_practical_nurse",
	"nurse_practitioner",
	"physician",
	"midwife",
	"pharmacist",
	"physiotherapist",
	"occupational_therapist",
	"respiratory_therapist",
	"dietitian",
	"medical_laboratory_technologist",
	"medical_radiation_technologist",
	"psychologist",
	"early_childhood_educator",
}

var professionIndex = func() map[Profession]struct{} {
	index := make(map[Profession]struct{}, len(Professions))
	for _, p := range Professions {
		index[p] = struct{}{}
	}
	return index
}()

// Eligible reports whether p is on the professional designation allow-list.
func (p Profession) Eligible() bool {
	_, ok := professionIndex[p]
	return ok
}

// RubricTable lists the points of every member of one categorical field,
// keyed by wire code.
type RubricTable map[string]int

// RubricDescription is the static point schedule, exposed so that a caller
// can render option labels without duplicating the numbers.
type RubricDescription struct {
	Experience        RubricTable  `json:"experience"`
	Education         RubricTable  `json:"education"`
	EducationLocation RubricTable  `json:"educationLocation"`
	Area              RubricTable  `json:"area"`
	Language          map[int]int  `json:"language"`
	Professions       []Profession `json:"professions"`
	Bonuses           RubricTable  `json:"bonuses"`
	Wage              WageBands    `json:"wage"`
	Caps              RubricTable  `json:"caps"`
}

// WageBands describes the wage rule.
type WageBands struct {
	Minimum   int `json:"minimum"`
	Maximum   int `json:"maximum"`
	MaxPoints int `json:"maxPoints"`
}

func describe(codes []string, points table) RubricTable {
	t := make(RubricTable, len(codes))
	for i, code := range codes {
		if code == "" {
			continue
		}
		t[code] = points[i]
	}
	return t
}

// Rubric returns a fresh copy of the point schedule.
func Rubric() RubricDescription {
	language := make(map[int]int)
	for clb := CLB(0); clb <= clbMaximum; clb++ {
		language[int(clb)] = clbPoints(clb)
	}

	professions := make([]Profession, len(Professions))
	copy(professions, Professions)

	return RubricDescription{
		Experience:        describe(experienceCodes, experiencePoints),
		Education:         describe(educationCodes, educationPoints),
		EducationLocation: describe(locationCodes, locationPoints),
		Area:              describe(areaCodes, areaPoints),
		Language:          language,
		Professions:       professions,
		Bonuses: RubricTable{
			"canadianExperience":    CanadianExperienceBonus,
			"currentJob":            CurrentLocalJobBonus,
			"designation":           DesignationBonus,
			"workedOutsideArea1":    WorkedOutsideCoreBonus,
			"graduatedOutsideArea1": GraduatedOutsideBonus,
		},
		Wage: WageBands{
			Minimum:   WageMinimum,
			Maximum:   WageMaximum,
			MaxPoints: MaxWagePoints,
		},
		Caps: RubricTable{
			"experience": MaxExperienceGroup,
			"education":  MaxEducationGroup,
			"language":   MaxLanguageGroup,
			"total":      MaxTotal,
		},
	}
}
