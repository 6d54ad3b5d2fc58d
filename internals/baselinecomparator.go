package internals

import (
	"fmt"
	"greencommute-server/model"
)

// BaselinePctGreen computes the fraction of a user's pre-challenge miles that
// were green. A baseline with zero total miles cannot be compared against,
// so it is an explicit error rather than a silent 0.
func BaselinePctGreen(baseline model.Baseline) (float64, error) {
	components := []float64{
		baseline.WorkGreen, baseline.WorkAlone,
		baseline.SchoolGreen, baseline.SchoolAlone,
		baseline.ErrandsGreen, baseline.ErrandsAlone,
	}
	for _, component := range components {
		if component < 0 {
			return 0, fmt.Errorf("%w: baseline %d has negative component %v", ErrNegativeDistance, baseline.BaselineID, component)
		}
	}

	totalMiles := baseline.CurrentTotalMiles()
	if totalMiles == 0 {
		return 0, fmt.Errorf("%w: baseline %d", ErrInvalidBaseline, baseline.BaselineID)
	}

	return baseline.CurrentGreenMiles() / totalMiles, nil
}
