package score

// Experience is the amount of directly related work experience, ordered from
// the lowest to the highest tier.
type Experience uint8

const (
	ExperienceNone Experience = iota
	ExperienceUnderOneYear
	ExperienceOneToTwoYears
	ExperienceTwoToThreeYears
	ExperienceThreeToFourYears
	ExperienceFourToFiveYears
	ExperienceFivePlusYears
)

// Education is the highest completed credential, ordered by rank.
type Education uint8

const (
	EducationSecondary Education = iota
	EducationDiploma
	EducationAssociate
	EducationBachelor
	EducationPostGraduateCertificate
	EducationMaster
	EducationDoctorate
)

// EducationLocation tells where a post-secondary credential was completed.
// LocationNone is the zero value and awards nothing.
type EducationLocation uint8

const (
	LocationNone EducationLocation = iota
	LocationElsewhereInCountry
	LocationInRegion
)

// Area is the geographic band of the job offer. AreaCoreMetro is worth the
// least and AreaRemote the most.
type Area uint8

const (
	AreaCoreMetro Area = iota
	AreaNearMetro
	AreaRemote
)

// CLB is a Canadian Language Benchmark level.
type CLB int

// Profession is an occupation code from the professional designation
// allow-list. Codes outside the list award nothing.
type Profession string

// LanguageTest is the result of one language track. A test that was not
// taken carries no level.
type LanguageTest struct {
	taken bool
	clb   CLB
}

// NotTaken returns a language track without a test result.
func NotTaken() LanguageTest {
	return LanguageTest{}
}

// Taken returns a language track with a test result at the given level.
func Taken(clb CLB) LanguageTest {
	return LanguageTest{taken: true, clb: clb}
}

// Level returns the CLB level and whether the test was taken.
func (l LanguageTest) Level() (CLB, bool) {
	return l.clb, l.taken
}

// DomesticEducation records whether a credential was completed in the
// country and, if so, where.
type DomesticEducation struct {
	completed bool
	location  EducationLocation
}

// NoDomesticEducation returns a DomesticEducation for credentials completed
// abroad.
func NoDomesticEducation() DomesticEducation {
	return DomesticEducation{}
}

// EducatedIn returns a DomesticEducation completed at the given location.
func EducatedIn(location EducationLocation) DomesticEducation {
	return DomesticEducation{completed: true, location: location}
}

// Location returns the location and whether the credential is domestic.
func (d DomesticEducation) Location() (EducationLocation, bool) {
	return d.location, d.completed
}

// Designation is an eligible professional designation in a regulated
// occupation.
type Designation struct {
	held       bool
	profession Profession
}

// NoDesignation returns an empty Designation.
func NoDesignation() Designation {
	return Designation{}
}

// Designated returns a Designation held in the given profession.
func Designated(profession Profession) Designation {
	return Designation{held: true, profession: profession}
}

// Profession returns the selected profession and whether a designation is held.
func (d Designation) Profession() (Profession, bool) {
	return d.profession, d.held
}

// Profile is the candidate's self-reported registration data. The zero value
// is a valid profile worth 0 points.
type Profile struct {
	Experience         Experience
	CanadianExperience bool
	CurrentLocalJob    bool

	Education         Education
	DomesticEducation DomesticEducation
	Designation       Designation

	English LanguageTest
	French  LanguageTest

	HourlyWage float64
	Area       Area

	WorkedOutsideCore    bool
	GraduatedOutsideCore bool
}
