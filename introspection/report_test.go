package introspection

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReport_MarshalJSON(t *testing.T) {
	tests := []struct {
		name         string
		report       Report
		expectedJson string
	}{
		{
			name:         "empty-report",
			report:       Report{},
			expectedJson: `{"lookups":[]}`,
		},
		{
			name: "populated-report",
			report: Report{
				Lookups: []Lookup{
					{Key: "PORT", Source: "environ.Process", Outcome: OutcomeValue, Order: 1},
					{Key: "DB_URL", Source: "", Event: "onMissing", Action: "null", Outcome: OutcomeNull, Order: 2},
				},
			},
			expectedJson: `{"lookups":[` +
				`{"key":"PORT","source":"environ.Process","optional":false,"outcome":"value","caller":{"func":"","file":"","line":0},"order":1},` +
				`{"key":"DB_URL","source":"","event":"onMissing","action":"null","optional":false,"outcome":"null","caller":{"func":"","file":"","line":0},"order":2}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.report)
			assert.NoError(t, err)
			assert.JSONEq(t, tt.expectedJson, string(data))
		})
	}
}

func TestReport_Keys(t *testing.T) {
	r := Report{Lookups: []Lookup{{Key: "B"}, {Key: "A"}, {Key: "B"}}}
	assert.Equal(t, []string{"B", "A"}, r.Keys())
	assert.Empty(t, Report{}.Keys())
}

func TestReport_Policed(t *testing.T) {
	r := Report{Lookups: []Lookup{
		{Key: "A", Outcome: OutcomeValue},
		{Key: "B", Event: "onEmpty", Action: "warn", Outcome: OutcomeUndefined},
	}}
	policed := r.Policed()
	assert.Len(t, policed, 1)
	assert.Equal(t, "B", policed[0].Key)
	assert.Empty(t, Report{}.Policed())

	r.Lookups = append(r.Lookups, Lookup{Key: "C", Event: "onMissing", Action: "null", Outcome: OutcomeNull})
	assert.Equal(t, []string{"B", "C"}, Report{Lookups: r.Policed()}.Keys())
}
