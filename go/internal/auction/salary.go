package auction

// MaxContractYears is the longest term a split (and the contracts table)
// can represent.
const MaxContractYears = 3

// SalarySplit is the per-year breakdown of a settled bid.
type SalarySplit struct {
	Year1 int64 `json:"year1"`
	Year2 int64 `json:"year2"`
	Year3 int64 `json:"year3"`
}

// Year1Cost returns the first-season cap charge implied by a total bid over
// a contract length: floor(total/years). Year-1 is the sole figure used in
// bid comparisons and budget freezing.
func Year1Cost(total int64, years int) int64 {
	if years <= 0 {
		return total
	}
	return total / int64(years)
}

// StructureSalary splits a winning (total, years) bid into yearly salaries.
// Year-1 always gets floor(total/years); the division remainder lands on the
// final contract year, keeping the year-1 charge at the minimum value
// consistent with the total.
func StructureSalary(total int64, years int) SalarySplit {
	if years < 1 {
		years = 1
	}
	if years > MaxContractYears {
		years = MaxContractYears
	}

	base := total / int64(years)
	remainder := total - base*int64(years)

	split := SalarySplit{Year1: base}
	switch years {
	case 1:
		split.Year1 = total
	case 2:
		split.Year2 = base + remainder
	case 3:
		split.Year2 = base
		split.Year3 = base + remainder
	}
	return split
}

// Total returns the combined value of the split.
func (s SalarySplit) Total() int64 {
	return s.Year1 + s.Year2 + s.Year3
}
