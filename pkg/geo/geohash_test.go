package geo

import (
	"testing"

	"github.com/gamecss/routefinder/pkg"
	"github.com/gamecss/routefinder/pkg/util"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	testCases := []struct {
		name string
		pos  Coordinate
	}{
		{name: "fuzhou changle", pos: NewCoordinate(25.934658, 119.663180)},
		{name: "shanghai pudong", pos: NewCoordinate(31.143378, 121.805214)},
		{name: "southern hemisphere", pos: NewCoordinate(-33.946111, 151.177222)},
		{name: "western hemisphere", pos: NewCoordinate(40.639722, -73.778889)},
		{name: "near equator", pos: NewCoordinate(0.000100, 0.000100)},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			code := EncodeGeohash(tt.pos)
			require.Len(t, code, pkg.GEOHASH_PRECISION)

			decoded, err := DecodeGeohash(code)
			require.NoError(t, err)

			// a 9-character cell is a few meters across
			require.InDelta(t, tt.pos.Lat, decoded.Lat, 0.0001)
			require.InDelta(t, tt.pos.Lon, decoded.Lon, 0.0001)
		})
	}
}

func TestEncodeDeterministic(t *testing.T) {
	pos := NewCoordinate(30.600000, 121.420000)
	require.Equal(t, EncodeGeohash(pos), EncodeGeohash(pos))
}

func TestDecodeMalformed(t *testing.T) {
	testCases := []struct {
		name string
		code string
	}{
		{name: "too short", code: "wtw3s"},
		{name: "too long", code: "wtw3sjq55x"},
		{name: "empty", code: ""},
		{name: "invalid alphabet", code: "wtw3sjal5"},
		{name: "uppercase", code: "WTW3SJQ55"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeGeohash(tt.code)
			require.Error(t, err)
			require.ErrorIs(t, err, util.ErrDataCorruption)
		})
	}
}

func TestGreatCircleDistance(t *testing.T) {
	zsfz := NewCoordinate(25.934658, 119.663180)
	zspd := NewCoordinate(31.143378, 121.805214)

	got := CalculateGreatCircleDistance(zsfz, zspd)
	require.InDelta(t, 332.5, got, 1.0)
	require.Zero(t, CalculateGreatCircleDistance(zsfz, zsfz))
}
