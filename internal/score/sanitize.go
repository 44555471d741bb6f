package score

import "math"

// Sanitize normalizes a profile the way Compute does before evaluation.
// Non-finite or negative numbers become 0 and out-of-domain categories become
// the lowest scoring member. It never fails.
func Sanitize(p Profile) Profile {
	if int(p.Experience) >= len(experiencePoints) {
		p.Experience = ExperienceNone
	}
	if int(p.Education) >= len(educationPoints) {
		p.Education = EducationSecondary
	}
	if int(p.Area) >= len(areaPoints) {
		p.Area = AreaCoreMetro
	}
	if int(p.DomesticEducation.location) >= len(locationPoints) {
		p.DomesticEducation.location = LocationNone
	}
	if p.English.clb < 0 {
		p.English.clb = 0
	}
	if p.French.clb < 0 {
		p.French.clb = 0
	}
	p.HourlyWage = sanitizeAmount(p.HourlyWage)
	return p
}

func sanitizeAmount(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
