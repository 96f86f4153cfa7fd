package eval

import "testing"

func TestDiagnosisSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical", "Myocardial infarction", "Myocardial infarction", 1.0},
		{"case and spacing", "  myocardial   INFARCTION ", "Myocardial infarction", 1.0},
		{"substring", "Acute myocardial infarction", "Myocardial infarction", 1.0},
		{"substring reversed", "Myocardial infarction", "Acute myocardial infarction", 1.0},
		{"partial word overlap", "acute viral pneumonia", "acute bacterial pneumonia", 0.5},
		{"disjoint", "Migraine", "Appendicitis", 0.0},
		{"empty left", "", "Pneumonia", 0.0},
		{"empty right", "Pneumonia", "", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := diagnosisSimilarity(tt.a, tt.b); got != tt.want {
				t.Errorf("diagnosisSimilarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestDiagnosesMatch(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"equal", "pneumonia", "Pneumonia", true},
		{"substring", "community-acquired pneumonia", "pneumonia", true},
		{"different", "pneumonia", "bronchitis", false},
		{"empty", "", "pneumonia", false},
		// diagnosesMatch does not apply Jaccard; word overlap alone is
		// not enough for the aggregator fallback.
		{"word overlap only", "acute viral pneumonia", "acute bacterial pneumonia", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := diagnosesMatch(tt.a, tt.b); got != tt.want {
				t.Errorf("diagnosesMatch(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
