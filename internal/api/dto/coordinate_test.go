package dto

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttractionCoordinates(t *testing.T) {
	cases := []struct {
		body  string
		lat   float64
		valid bool
	}{
		{`{"name":"a","lat":12.5,"lng":77.1}`, 12.5, true},
		{`{"name":"a","lat":"12.5","lng":" 77.1 "}`, 12.5, true},
		{`{"name":"a","lat":"abc","lng":77.1}`, 0, false},
		{`{"name":"a","lat":null,"lng":77.1}`, 0, false},
		{`{"name":"a","lat":true,"lng":77.1}`, 0, false},
		{`{"name":"a","lng":77.1}`, 0, false},
	}

	for _, tc := range cases {
		var a AttractionRequest
		require.NoError(t, json.Unmarshal([]byte(tc.body), &a), tc.body)

		p := a.ToDomain()
		assert.Equal(t, tc.valid, p.Valid(), tc.body)
		if tc.valid {
			assert.Equal(t, tc.lat, p.Lat)
			assert.Equal(t, 77.1, p.Lng)
		} else {
			assert.True(t, math.IsNaN(p.Lat), tc.body)
		}
	}
}
