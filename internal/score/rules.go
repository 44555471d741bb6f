package score

import "math"

func experiencePointsOf(e Experience) int {
	return experiencePoints.lookup(int(e))
}

func bonus(gate bool, points int) int {
	if !gate {
		return 0
	}
	return points
}

func educationPointsOf(e Education) int {
	return educationPoints.lookup(int(e))
}

// locationBonus ignores the stored location when the credential is not
// domestic.
func locationBonus(d DomesticEducation) int {
	location, completed := d.Location()
	if !completed {
		return 0
	}
	return locationPoints.lookup(int(location))
}

func designationBonus(d Designation) int {
	profession, held := d.Profession()
	if !held || !profession.Eligible() {
		return 0
	}
	return DesignationBonus
}

func clbPoints(clb CLB) int {
	switch {
	case clb < clbMinimum:
		return 0
	case clb >= clbMaximum:
		return MaxLanguagePoints
	}
	return int(clb-clbMinimum+1) * clbStep
}

func languagePoints(l LanguageTest) int {
	clb, taken := l.Level()
	if !taken {
		return 0
	}
	return clbPoints(clb)
}

// wagePoints bands the hourly wage by whole dollars, so fractions of a
// dollar never award a fraction of a point.
func wagePoints(wage float64) int {
	wage = sanitizeAmount(wage)
	switch {
	case wage >= WageMaximum:
		return MaxWagePoints
	case wage < WageMinimum:
		return 0
	}
	return int(math.Floor(wage)) - WageMinimum + 1
}

func areaPointsOf(a Area) int {
	return areaPoints.lookup(int(a))
}

// AnnualWage converts an hourly wage to a full-time annual salary
// (40 hours a week, 52 weeks a year). The result is always finite.
func AnnualWage(hourly float64) float64 {
	return math.Min(sanitizeAmount(hourly)*40*52, math.MaxFloat64)
}
