package analysis

import "testing"

func TestClassifyOutcome(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		summary  string
		want     string
	}{
		{
			name:     "acquitted prefix overrides narrative",
			filename: "ACQUITTED_2024_case.md",
			summary:  "The accused was found guilty on all counts.",
			want:     "Acquitted",
		},
		{
			name:     "convicted prefix case insensitive",
			filename: "convicted_sc5_2024.json",
			summary:  "",
			want:     "Convicted",
		},
		{
			name:     "conviction prefix",
			filename: "CONVICTION_report.md",
			want:     "Convicted",
		},
		{
			name:     "narrative found guilty",
			filename: "sc5_2024_analysis.md",
			summary:  "The court found the accused guilty. He was found guilty of criminal breach of trust.",
			want:     "Convicted",
		},
		{
			name:     "narrative acquittal",
			filename: "sc9_2024_analysis.md",
			summary:  "All accused were acquitted for want of evidence.",
			want:     "Acquitted",
		},
		{
			name:     "conviction keywords checked first",
			filename: "sc12_2024_analysis.md",
			summary:  "The conviction was recorded despite the defense pressing for acquittal.",
			want:     "Convicted",
		},
		{
			name:     "no signal",
			filename: "sc1_2024_analysis.md",
			summary:  "The matter was adjourned pending further investigation.",
			want:     "Unknown",
		},
		{
			name: "empty everything",
			want: "Unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyOutcome(tt.filename, tt.summary); got != tt.want {
				t.Errorf("ClassifyOutcome(%q, ...) = %q, want %q", tt.filename, got, tt.want)
			}
		})
	}
}
