package score

import "strings"

func codeOf(codes []string, ordinal int) string {
	if ordinal < 0 || ordinal >= len(codes) {
		return codes[0]
	}
	return codes[ordinal]
}

// ordinalOf returns the position of code in codes. Unknown codes map to the
// first, lowest scoring, member.
func ordinalOf(codes []string, code string) int {
	code = strings.ToLower(strings.TrimSpace(code))
	for i, c := range codes {
		if c == code {
			return i
		}
	}
	return 0
}

func (e Experience) String() string        { return codeOf(experienceCodes, int(e)) }
func (e Education) String() string         { return codeOf(educationCodes, int(e)) }
func (l EducationLocation) String() string { return codeOf(locationCodes, int(l)) }
func (a Area) String() string              { return codeOf(areaCodes, int(a)) }

// ParseExperience returns the Experience for a wire code such as "five_plus".
func ParseExperience(code string) Experience {
	return Experience(ordinalOf(experienceCodes, code))
}

// ParseEducation returns the Education for a wire code such as "bachelor".
func ParseEducation(code string) Education {
	return Education(ordinalOf(educationCodes, code))
}

// ParseEducationLocation returns the EducationLocation for "bc" or "canada".
func ParseEducationLocation(code string) EducationLocation {
	return EducationLocation(ordinalOf(locationCodes, code))
}

// ParseArea returns the Area for a wire code such as "area2".
func ParseArea(code string) Area {
	return Area(ordinalOf(areaCodes, code))
}
