package score

// Document is the wire form of a Profile, as sent by the calculator UI or
// read from a profile file. Categories are carried as codes; unknown codes
// are accepted and score as the lowest member.
type Document struct {
	Experience         string `json:"experience" yaml:"experience"`
	CanadianExperience bool   `json:"hasCanadianExp" yaml:"hasCanadianExp"`
	CurrentJob         bool   `json:"hasCurrentBCJob" yaml:"hasCurrentBCJob"`

	Education               string `json:"education" yaml:"education"`
	CanadianEducation       bool   `json:"hasCanadianEducation" yaml:"hasCanadianEducation"`
	EducationLocation       string `json:"educationLocation" yaml:"educationLocation"`
	ProfessionalDesignation bool   `json:"hasProfessionalDesignation" yaml:"hasProfessionalDesignation"`
	Profession              string `json:"selectedProfession" yaml:"selectedProfession"`

	EnglishTest bool `json:"hasEnglishTest" yaml:"hasEnglishTest"`
	EnglishCLB  int  `json:"englishClb" yaml:"englishClb"`
	FrenchTest  bool `json:"hasFrenchTest" yaml:"hasFrenchTest"`
	FrenchCLB   int  `json:"frenchClb" yaml:"frenchClb"`

	HourlyWage float64 `json:"hourlyWage" yaml:"hourlyWage"`
	Area       string  `json:"area" yaml:"area"`

	WorkedOutside    bool `json:"workedOutsideArea1" yaml:"workedOutsideArea1"`
	GraduatedOutside bool `json:"graduatedOutsideArea1" yaml:"graduatedOutsideArea1"`
}

// Profile converts the document, folding every gate and its dependent value
// into a single field. Values behind a closed gate are dropped.
func (d Document) Profile() Profile {
	p := Profile{
		Experience:           ParseExperience(d.Experience),
		CanadianExperience:   d.CanadianExperience,
		CurrentLocalJob:      d.CurrentJob,
		Education:            ParseEducation(d.Education),
		DomesticEducation:    NoDomesticEducation(),
		Designation:          NoDesignation(),
		English:              NotTaken(),
		French:               NotTaken(),
		HourlyWage:           d.HourlyWage,
		Area:                 ParseArea(d.Area),
		WorkedOutsideCore:    d.WorkedOutside,
		GraduatedOutsideCore: d.GraduatedOutside,
	}

	if d.CanadianEducation {
		p.DomesticEducation = EducatedIn(ParseEducationLocation(d.EducationLocation))
	}
	if d.ProfessionalDesignation {
		p.Designation = Designated(Profession(d.Profession))
	}
	if d.EnglishTest {
		p.English = Taken(CLB(d.EnglishCLB))
	}
	if d.FrenchTest {
		p.French = Taken(CLB(d.FrenchCLB))
	}

	return p
}

// NewDocument returns the wire form of p.
func NewDocument(p Profile) Document {
	d := Document{
		Experience:         p.Experience.String(),
		CanadianExperience: p.CanadianExperience,
		CurrentJob:         p.CurrentLocalJob,
		Education:          p.Education.String(),
		HourlyWage:         p.HourlyWage,
		Area:               p.Area.String(),
		WorkedOutside:      p.WorkedOutsideCore,
		GraduatedOutside:   p.GraduatedOutsideCore,
	}

	if location, ok := p.DomesticEducation.Location(); ok {
		d.CanadianEducation = true
		d.EducationLocation = location.String()
	}
	if profession, ok := p.Designation.Profession(); ok {
		d.ProfessionalDesignation = true
		d.Profession = string(profession)
	}
	if clb, ok := p.English.Level(); ok {
		d.EnglishTest = true
		d.EnglishCLB = int(clb)
	}
	if clb, ok := p.French.Level(); ok {
		d.FrenchTest = true
		d.FrenchCLB = int(clb)
	}

	return d
}
