package entity

import "testing"

func TestDraftValidate(t *testing.T) {
	tests := []struct {
		name       string
		draft      Draft
		wantFields []string
	}{
		{
			name: "valid complete form",
			draft: Draft{
				StartupName: "EcoGrow",
				Industry:    "Agritech",
				Problem:     "Farmers lack data on soil health",
				Solution:    "IoT sensors with ML recommendations",
				Audience:    "Small farm owners",
				PitchType:   "investor",
			},
		},
		{
			name: "valid without optional fields",
			draft: Draft{
				StartupName: "EcoGrow",
				Industry:    "Agritech",
				PitchType:   "elevator",
			},
		},
		{
			name: "missing required fields",
			draft: Draft{
				Problem: "long enough problem",
			},
			wantFields: []string{"startup_name", "industry", "pitch_type"},
		},
		{
			name: "invalid pitch type",
			draft: Draft{
				StartupName: "EcoGrow",
				Industry:    "Agritech",
				PitchType:   "keynote",
			},
			wantFields: []string{"pitch_type"},
		},
		{
			name: "short problem and solution",
			draft: Draft{
				StartupName: "EcoGrow",
				Industry:    "Agritech",
				PitchType:   "investor",
				Problem:     "short",
				Solution:    "also bad",
			},
			wantFields: []string{"problem", "solution"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.draft.Validate()
			if len(errs) != len(tt.wantFields) {
				t.Fatalf("got %d errors %v, want fields %v", len(errs), errs, tt.wantFields)
			}
			for _, field := range tt.wantFields {
				if _, ok := errs[field]; !ok {
					t.Errorf("missing error for field %q, got %v", field, errs)
				}
			}
		})
	}
}

func TestDraftIsEmpty(t *testing.T) {
	var d Draft
	if !d.IsEmpty() {
		t.Error("zero draft should be empty")
	}

	d.Industry = "AI"
	if d.IsEmpty() {
		t.Error("draft with industry should not be empty")
	}
}

func TestPitchTypeIsValid(t *testing.T) {
	for _, valid := range []PitchType{PitchTypeElevator, PitchTypeInvestor, PitchTypeCompetition} {
		if !valid.IsValid() {
			t.Errorf("%q should be valid", valid)
		}
	}
	if PitchType("keynote").IsValid() {
		t.Error("keynote should not be valid")
	}
}
