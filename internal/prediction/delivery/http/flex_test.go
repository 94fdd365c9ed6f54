package http

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexInt(t *testing.T) {
	ok := map[string]int{`22`: 22, `"22"`: 22, `" 7 "`: 7, `8.0`: 8, `-3`: -3, `0`: 0}
	for raw, want := range ok {
		var n flexInt
		require.NoError(t, json.Unmarshal([]byte(raw), &n), raw)
		assert.Equal(t, want, int(n), raw)
	}

	for _, raw := range []string{`22.5`, `"abc"`, `true`, `"NaN"`, `[]`, `{}`, `1e300`} {
		var n flexInt
		err := json.Unmarshal([]byte(raw), &n)
		var typeErr *json.UnmarshalTypeError
		assert.ErrorAs(t, err, &typeErr, raw)
	}
}

func TestFlexFloat(t *testing.T) {
	ok := map[string]float64{`7.5`: 7.5, `"7.5"`: 7.5, `8`: 8}
	for raw, want := range ok {
		var f flexFloat
		require.NoError(t, json.Unmarshal([]byte(raw), &f), raw)
		assert.Equal(t, want, float64(f), raw)
	}

	for _, raw := range []string{`"sete"`, `false`, `"Inf"`} {
		var f flexFloat
		assert.Error(t, json.Unmarshal([]byte(raw), &f), raw)
	}
}
