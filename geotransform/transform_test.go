package geotransform_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mempa-rover/pathplanner/geotransform"
)

func projectedGT() geotransform.Geotransform {
	return geotransform.Geotransform{A0: 500000, A1: 30, A2: 0, A3: 4649021, A4: 0, A5: -30}
}

func TestValidateAcceptsSquarePixels(t *testing.T) {
	require.NoError(t, projectedGT().Validate())
}

func TestValidateRejectsSkew(t *testing.T) {
	gt := projectedGT()
	gt.A2 = 1
	require.ErrorIs(t, gt.Validate(), geotransform.ErrNonSquarePixels)
}

func TestValidateRejectsUnequalPixelSize(t *testing.T) {
	gt := projectedGT()
	gt.A5 = -60
	require.ErrorIs(t, gt.Validate(), geotransform.ErrNonSquarePixels)
}

func TestPixelGeoRoundTrip(t *testing.T) {
	gt := projectedGT()
	res, err := gt.ResolutionMeters(false, 0)
	require.NoError(t, err)

	for _, p := range []geotransform.Pixel{{X: 0, Y: 0}, {X: 17, Y: 42}, {X: 1000, Y: -5}} {
		g := gt.PixelToGeo(p)
		back := gt.GeoToPixel(g)
		require.LessOrEqual(t, math.Abs(float64(back.X-p.X))*res, res)
		require.LessOrEqual(t, math.Abs(float64(back.Y-p.Y))*res, res)
	}
}

func TestResolutionMetersGeographicCRS(t *testing.T) {
	gt := geotransform.Geotransform{A1: 1.0 / 3600, A5: -1.0 / 3600} // 1 arc-second
	const marsRadiusM = 3396190.0
	res, err := gt.ResolutionMeters(true, marsRadiusM)
	require.NoError(t, err)
	require.InDelta(t, 16.47, res, 0.5)
}

func TestResolutionMetersRejectsNonPositiveRadius(t *testing.T) {
	gt := geotransform.Geotransform{A1: 1, A5: -1}
	_, err := gt.ResolutionMeters(true, 0)
	require.ErrorIs(t, err, geotransform.ErrNonPositiveRadius)
}

func TestGlobalLocalRoundTrip(t *testing.T) {
	anchor := geotransform.Pixel{X: 100, Y: 200}
	p := geotransform.Pixel{X: 108, Y: 197}
	l := geotransform.GlobalToLocal(p, anchor)
	require.Equal(t, geotransform.Local{X: 8, Y: -3}, l)
	require.True(t, geotransform.LocalToGlobal(l, anchor).Equal(p))
}
