package surface

import (
	"math"
	"testing"

	"github.com/Hem810/Option-Price-Visualiser/bs"
	"github.com/Hem810/Option-Price-Visualiser/option"
	"github.com/stretchr/testify/require"
)

var base = bs.Params{S: 100, K: 100, T: 1, R: 0.05, Sigma: 0.2}

func TestAxis(t *testing.T) {
	ax := Axis(0.1, 0.8, 50)
	require.Len(t, ax, 50)
	require.Equal(t, 0.1, ax[0])
	require.Equal(t, 0.8, ax[len(ax)-1])

	require.Equal(t, []float64{2.5}, Axis(2.5, 9, 1))
	require.Nil(t, Axis(0, 1, 0))
}

func TestPriceGrid(t *testing.T) {
	strikes := Axis(50, 150, 11)
	sigmas := Axis(0.1, 0.8, 8)

	g, err := Price(base, option.Call, strikes, sigmas)
	require.NoError(t, err)
	require.Len(t, g.Z, 8)
	require.Len(t, g.Z[0], 11)

	for i := range g.Z {
		for j := range g.Z[i] {
			require.False(t, math.IsNaN(g.Z[i][j]), "cell %d,%d", i, j)
		}
	}

	// Calls cheapen as the strike climbs and richen with volatility.
	require.Greater(t, g.Z[3][0], g.Z[3][10])
	require.Greater(t, g.Z[7][5], g.Z[0][5])

	p := base
	p.K = strikes[3]
	p.Sigma = sigmas[2]
	b, err := bs.New(p)
	require.NoError(t, err)
	require.Equal(t, b.CallPrice(), g.Z[2][3])
}

func TestPriceGridMarksBadCells(t *testing.T) {
	g, err := Price(base, option.Put, []float64{-10, 100}, []float64{0.2, 0.4})
	require.NoError(t, err)

	require.True(t, math.IsNaN(g.Z[0][0]))
	require.True(t, math.IsNaN(g.Z[1][0]))
	require.False(t, math.IsNaN(g.Z[0][1]))
	require.False(t, math.IsNaN(g.Z[1][1]))
}

func TestSpotVolGrid(t *testing.T) {
	spots := Axis(80, 120, 5)
	sigmas := Axis(0.1, 0.4, 4)

	g, err := SpotVol(base, option.Call, spots, sigmas)
	require.NoError(t, err)
	require.Len(t, g.Z, 4)
	require.Len(t, g.Z[0], 5)

	// Call value rises with spot.
	require.Greater(t, g.Z[1][4], g.Z[1][0])

	p := base
	p.S = spots[4]
	p.Sigma = sigmas[1]
	b, err := bs.New(p)
	require.NoError(t, err)
	require.Equal(t, b.CallPrice(), g.Z[1][4])
}

func TestImpliedVolGrid(t *testing.T) {
	quoted, err := bs.New(bs.Params{S: 100, K: 100, T: 1, R: 0.05, Sigma: 0.25})
	require.NoError(t, err)
	market := quoted.CallPrice()

	strikes := []float64{70, 85, 100, 115, 130}
	expiries := []float64{0.25, 0.5, 1, 2}

	g, err := ImpliedVol(base, option.Call, market, strikes, expiries, nil)
	require.NoError(t, err)
	require.Len(t, g.Z, 4)
	require.Len(t, g.Z[0], 5)

	// The cell matching the quote's own strike and expiry recovers its vol.
	require.InDelta(t, 0.25, g.Z[2][2], 1e-4)

	// Deep ITM at short expiry cannot reach the quoted price; the cell is
	// marked rather than aborting the grid.
	require.True(t, math.IsNaN(g.Z[0][0]))
}

func TestDeltaByVol(t *testing.T) {
	out, err := DeltaByVol(base, option.Call, Axis(0.1, 0.8, 50))
	require.NoError(t, err)
	require.Len(t, out, 50)
	for i, d := range out {
		require.Greater(t, d, 0.0, "point %d", i)
		require.Less(t, d, 1.0, "point %d", i)
	}
}

func TestDeltaByMaturity(t *testing.T) {
	out, err := DeltaByMaturity(base, option.Put, []float64{0, 0.5, 1, 2})
	require.NoError(t, err)
	require.Len(t, out, 4)

	require.True(t, math.IsNaN(out[0]))
	for _, d := range out[1:] {
		require.Greater(t, d, -1.0)
		require.Less(t, d, 0.0)
	}
}

func TestAxisValidation(t *testing.T) {
	_, err := Price(base, option.Type("spread"), Axis(50, 150, 3), Axis(0.1, 0.8, 3))
	require.ErrorIs(t, err, option.ErrInvalidParam)

	_, err = Price(base, option.Call, nil, Axis(0.1, 0.8, 3))
	require.ErrorIs(t, err, option.ErrInvalidParam)

	_, err = DeltaByVol(base, option.Call, nil)
	require.ErrorIs(t, err, option.ErrInvalidParam)
}
