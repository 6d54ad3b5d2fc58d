package internals_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greencommute-server/internals"
	"greencommute-server/model"
)

func TestBaselinePctGreen(t *testing.T) {
	t.Parallel()

	baseline := model.Baseline{
		WorkGreen: 0, WorkAlone: 10,
		SchoolGreen: 10, SchoolAlone: 0,
		ErrandsGreen: 0, ErrandsAlone: 15,
	}

	require.Equal(t, 35.0, baseline.CurrentTotalMiles())
	require.Equal(t, 10.0, baseline.CurrentGreenMiles())

	pct, err := internals.BaselinePctGreen(baseline)
	require.NoError(t, err)
	assert.Equal(t, 10.0/35.0, pct)
}

func TestBaselinePctGreen_ZeroTotalMiles(t *testing.T) {
	t.Parallel()

	_, err := internals.BaselinePctGreen(model.Baseline{})
	require.Error(t, err)
	assert.ErrorIs(t, err, internals.ErrInvalidBaseline)
}

func TestBaselinePctGreen_NegativeComponent(t *testing.T) {
	t.Parallel()

	baseline := model.Baseline{WorkGreen: 5, SchoolAlone: -1}
	_, err := internals.BaselinePctGreen(baseline)
	require.Error(t, err)
	assert.ErrorIs(t, err, internals.ErrNegativeDistance)
}
