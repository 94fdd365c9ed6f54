package feedback

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeatureTable(t *testing.T) {
	assert.NoError(t, checkTable())

	var sum float64
	top := 0.0
	for _, f := range Features() {
		assert.NotEmpty(t, f.Name())
		assert.NotEmpty(t, f.Label())
		sum += f.Weight()
		if f.Weight() > top {
			top = f.Weight()
		}
	}
	assert.InDelta(t, 100.0, sum, 0.01)
	assert.Equal(t, top, SuicidalThoughts.Weight())
	assert.Equal(t, 35.2, SuicidalThoughts.Weight())
}

func TestFeaturesDescendingWeight(t *testing.T) {
	all := Features()
	for i := 1; i < len(all); i++ {
		assert.GreaterOrEqual(t, all[i-1].Weight(), all[i].Weight())
	}
}

func TestFeatureByName(t *testing.T) {
	f, ok := FeatureByName("Have you ever had suicidal thoughts ?")
	assert.True(t, ok)
	assert.Equal(t, SuicidalThoughts, f)
	assert.Equal(t, "Pensamentos Suicidas", f.String())

	f, ok = FeatureByName("CGPA")
	assert.True(t, ok)
	assert.Equal(t, "Coeficiente de Rendimento (CR)", f.Label())

	_, ok = FeatureByName("Profession")
	assert.False(t, ok)
}
