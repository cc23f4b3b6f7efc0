package auction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestYear1Cost(t *testing.T) {
	cases := []struct {
		name  string
		total int64
		years int
		want  int64
	}{
		{name: "one year keeps the total", total: 10, years: 1, want: 10},
		{name: "even split", total: 30, years: 3, want: 10},
		{name: "floor on uneven split", total: 25, years: 2, want: 12},
		{name: "remainder never lands on year one", total: 10, years: 3, want: 3},
		{name: "zero years falls back to total", total: 7, years: 0, want: 7},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Year1Cost(tc.total, tc.years))
		})
	}
}

func TestStructureSalary(t *testing.T) {
	cases := []struct {
		name  string
		total int64
		years int
		want  SalarySplit
	}{
		{name: "single year", total: 10, years: 1, want: SalarySplit{Year1: 10}},
		{name: "even two years", total: 20, years: 2, want: SalarySplit{Year1: 10, Year2: 10}},
		{name: "uneven two years puts remainder last", total: 25, years: 2, want: SalarySplit{Year1: 12, Year2: 13}},
		{name: "even three years", total: 30, years: 3, want: SalarySplit{Year1: 10, Year2: 10, Year3: 10}},
		{name: "uneven three years puts remainder last", total: 22, years: 3, want: SalarySplit{Year1: 7, Year2: 7, Year3: 8}},
		{name: "years clamp low", total: 9, years: 0, want: SalarySplit{Year1: 9}},
		{name: "years clamp high", total: 9, years: 5, want: SalarySplit{Year1: 3, Year2: 3, Year3: 3}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := StructureSalary(tc.total, tc.years)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, got.Total(), tc.total, "split must preserve the bid total")
		})
	}
}

func TestStructureSalaryYear1IsMinimal(t *testing.T) {
	// Year-1 must always be the floor so remainders never inflate the
	// figure used for bid comparison and budget freezing.
	for total := int64(1); total <= 50; total++ {
		for years := 1; years <= 3; years++ {
			split := StructureSalary(total, years)
			assert.Equal(t, Year1Cost(total, years), split.Year1,
				"total=%d years=%d", total, years)
			final := split.Year1
			if years == 2 {
				final = split.Year2
			} else if years == 3 {
				final = split.Year3
			}
			assert.GreaterOrEqual(t, final, split.Year1,
				"total=%d years=%d: remainder must land on the final year", total, years)
		}
	}
}
