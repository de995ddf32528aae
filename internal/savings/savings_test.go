package savings

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name string
		bill float64
		want Estimate
	}{
		{
			name: "mid-range bill",
			bill: 8000,
			want: Estimate{
				Bill:           8000,
				MonthlyUnits:   1000,
				SystemKW:       9,
				MonthlySavings: 7200,
				YearlySavings:  86400,
				CO2OffsetKg:    800,
				Subsidy:        SubsidyThreeKilowatt,
			},
		},
		{
			name: "range floor lands in the two kilowatt tier",
			bill: 1000,
			want: Estimate{
				Bill:           1000,
				MonthlyUnits:   125,
				SystemKW:       2,
				MonthlySavings: 900,
				YearlySavings:  10800,
				CO2OffsetKg:    100,
				Subsidy:        SubsidyTwoKilowatt,
			},
		},
		{
			name: "below the range clamps to one kilowatt",
			bill: 500,
			want: Estimate{
				Bill:           500,
				MonthlyUnits:   63,
				SystemKW:       1,
				MonthlySavings: 450,
				YearlySavings:  5400,
				CO2OffsetKg:    50,
				Subsidy:        SubsidyOneKilowatt,
			},
		},
		{
			name: "range ceiling clamps to ten kilowatts",
			bill: 20000,
			want: Estimate{
				Bill:           20000,
				MonthlyUnits:   2500,
				SystemKW:       10,
				MonthlySavings: 18000,
				YearlySavings:  216000,
				CO2OffsetKg:    2000,
				Subsidy:        SubsidyThreeKilowatt,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(tt.bill)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Calculate(%v) mismatch (-want +got):\n%s", tt.bill, diff)
			}
		})
	}
}

func TestCalculate_HugeBillsSaturate(t *testing.T) {
	want := Calculate(MaxEstimateBill)
	assert.Equal(t, 10, want.SystemKW)
	assert.Equal(t, SubsidyThreeKilowatt, want.Subsidy)
	assert.Equal(t, 900_000_000, want.MonthlySavings)
	assert.Equal(t, 10_800_000_000, want.YearlySavings)

	for _, bill := range []float64{1e22, math.MaxFloat64, math.Inf(1)} {
		got := Calculate(bill)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Calculate(%g) mismatch (-want +got):\n%s", bill, diff)
		}
	}
}

func TestCalculate_NegativeBillIsTreatedAsZero(t *testing.T) {
	got := Calculate(-100)

	assert.Equal(t, 0, got.Bill)
	assert.Equal(t, 1, got.SystemKW)
	assert.Equal(t, SubsidyOneKilowatt, got.Subsidy)
}

func TestSubsidyTiers(t *testing.T) {
	assert.Equal(t, SubsidyOneKilowatt, Subsidy(1))
	assert.Equal(t, SubsidyTwoKilowatt, Subsidy(2))
	for size := 3; size <= 10; size++ {
		assert.Equal(t, SubsidyThreeKilowatt, Subsidy(size), "size %d", size)
	}
}

func TestSystemSize_Boundaries(t *testing.T) {
	assert.Equal(t, 1, SystemSize(0))
	assert.Equal(t, 1, SystemSize(120))
	assert.Equal(t, 2, SystemSize(120.5))
	assert.Equal(t, 10, SystemSize(5000))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, float64(MinBill), Clamp(10))
	assert.Equal(t, float64(MaxBill), Clamp(1e9))
	assert.Equal(t, 4500.0, Clamp(4500))
	assert.Equal(t, float64(DefaultBill), Clamp(math.NaN()))
}

func TestFormatter(t *testing.T) {
	f := NewFormatter("en")

	assert.Equal(t, "86,400", f.Number(86400))
	assert.Equal(t, "₹7,200", f.Rupees(7200))
	assert.Equal(t, "9 kW", f.Kilowatts(9))
}

func TestFormatter_UnknownLocaleFallsBack(t *testing.T) {
	f := NewFormatter("not a locale!")

	assert.Equal(t, "1,000", f.Number(1000))
}
