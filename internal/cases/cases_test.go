package cases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDiagnosisChain(t *testing.T) {
	tests := []struct {
		name string
		c    Case
		want string
	}{
		{"diagnosis field", Case{Diagnosis: "MI"}, "MI"},
		{"expected diagnosis", Case{ExpectedDiagnosis: "Pneumonia"}, "Pneumonia"},
		{"expected correct diagnosis", Case{ExpectedCorrectDiagnosis: "Appendicitis"}, "Appendicitis"},
		{"diagnosis wins over later fields", Case{Diagnosis: "MI", ExpectedDiagnosis: "Other"}, "MI"},
		{"whitespace is absent", Case{Diagnosis: "  ", ExpectedDiagnosis: "Pneumonia"}, "Pneumonia"},
		{"all empty", Case{}, DefaultDiagnosis},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.c
			got := ResolveDiagnosis(&c)
			assert.Equal(t, tt.want, got)
			// Resolution persists back to the primary field.
			assert.Equal(t, tt.want, c.Diagnosis)
		})
	}
}

func TestIsCriticalTest(t *testing.T) {
	c := &Case{CriticalTests: []string{"ECG", "Troponin"}}

	assert.True(t, c.IsCriticalTest("ECG"))
	assert.True(t, c.IsCriticalTest("ecg"))
	assert.True(t, c.IsCriticalTest("  Troponin  "))
	assert.False(t, c.IsCriticalTest("CBC"))
	assert.False(t, c.IsCriticalTest(""))
}

func TestCaseValid(t *testing.T) {
	assert.False(t, (&Case{}).Valid())
	assert.False(t, (&Case{ID: "  "}).Valid())
	assert.True(t, (&Case{ID: "case-1"}).Valid())

	var nilCase *Case
	assert.False(t, nilCase.Valid())
}

func TestClassifyUrgency(t *testing.T) {
	tests := []struct {
		name string
		c    Case
		want Urgency
	}{
		{"chest pain is emergent", Case{PresentingComplaint: "Crushing chest pain"}, UrgencyEmergent},
		{"symptom list counts", Case{PresentingComplaint: "Feeling unwell", Symptoms: []string{"Seizure"}}, UrgencyEmergent},
		{"fever is urgent", Case{PresentingComplaint: "Fever and cough for three days"}, UrgencyUrgent},
		{"headache is routine", Case{PresentingComplaint: "Recurring headache"}, UrgencyRoutine},
		{"emergent beats urgent", Case{PresentingComplaint: "Fever with shortness of breath"}, UrgencyEmergent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyUrgency(&tt.c))
		})
	}
}

func TestParsePackVersionGate(t *testing.T) {
	valid := `{"schema_version":"v1.0.0","cases":[{"id":"c1","diagnosis":"Flu"}]}`
	p, err := ParsePack([]byte(valid))
	require.NoError(t, err)
	assert.Len(t, p.Cases, 1)

	tests := []struct {
		name string
		data string
	}{
		{"invalid semver", `{"schema_version":"1.0","cases":[]}`},
		{"major mismatch", `{"schema_version":"v2.0.0","cases":[]}`},
		{"newer minor", `{"schema_version":"v1.99.0","cases":[]}`},
		{"duplicate ids", `{"schema_version":"v1.0.0","cases":[{"id":"c1"},{"id":"c1"}]}`},
		{"missing id", `{"schema_version":"v1.0.0","cases":[{"title":"no id"}]}`},
		{"not json", `{{`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePack([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestLoadSeedPack(t *testing.T) {
	provider, err := LoadSeed()
	require.NoError(t, err)

	ctx := context.Background()
	ids, err := provider.ListCases(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, ids)

	// IDs come back sorted and resolvable.
	for i := 1; i < len(ids); i++ {
		assert.Less(t, ids[i-1], ids[i])
	}
	for _, id := range ids {
		c, err := provider.GetCase(ctx, id)
		require.NoError(t, err)
		assert.True(t, c.Valid())
		assert.NotEqual(t, DefaultDiagnosis, ResolveDiagnosis(c),
			"seed case %s should carry a diagnosis", id)
	}

	_, err = provider.GetCase(ctx, "no-such-case")
	assert.Error(t, err)
}
