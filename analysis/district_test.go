package analysis

import "testing"

func TestCanonicalizeDistrictRangaReddyAliases(t *testing.T) {
	// Every alias spelling collapses onto the single canonical name.
	inputs := []string{
		"Ranga Reddy",
		"Ranga Reddy District",
		"R.R. District",
		"RR Dist",
		"Cyberabad",
		"Raidurgam",
		"L.B Nagar",
		"Rajendranagar",
		"Ibrahimpatnam",
		"Serilingampally",
		"Maheshwaram",
	}

	for _, input := range inputs {
		got, excluded := CanonicalizeDistrict(input)
		if excluded {
			t.Errorf("CanonicalizeDistrict(%q) excluded, want Ranga Reddy", input)
			continue
		}
		if got != "Ranga Reddy" {
			t.Errorf("CanonicalizeDistrict(%q) = %q, want Ranga Reddy", input, got)
		}
	}
}

func TestCanonicalizeDistrictAliases(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Nalgonda", "Nalgonda"},
		{"Miryalaguda", "Nalgonda"},
		{"Yadadri Bhuvanagiri", "Nalgonda"},
		{"Mahabubnagar", "Mahabubnagar"},
		{"Jogulamba Gadwal", "Mahabubnagar"},
		{"Nizamabad", "Nizamabad"},
		{"Kamareddy", "Nizamabad"},
		{"Adilabad District", "Adilabad"},
		{"Karimnagar", "Karimnagar"},
		{"Bhadradri Kothagudem", "Khammam"},
		{"Hanamkonda", "Warangal"},
		{"Sangareddy", "Sangareddy"},
		{"Siddipet", "Siddipet"},
		{"Medak", "Medak"},
		{"Secunderabad", "Hyderabad"},
		{"Malkajgiri", "Medchal-Malkajgiri"},
		{"Kukatpally", "Medchal-Malkajgiri"},
		{"Vikarabad", "Vikarabad"},
	}

	for _, tt := range tests {
		got, excluded := CanonicalizeDistrict(tt.input)
		if excluded {
			t.Errorf("CanonicalizeDistrict(%q) excluded, want %q", tt.input, tt.want)
			continue
		}
		if got != tt.want {
			t.Errorf("CanonicalizeDistrict(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCanonicalizeDistrictExclusion(t *testing.T) {
	// Foreign jurisdiction is an exclusion signal, not Unknown.
	for _, input := range []string{"Lucknow", "LUCKNOW Bench", "court of lucknow"} {
		got, excluded := CanonicalizeDistrict(input)
		if !excluded {
			t.Errorf("CanonicalizeDistrict(%q) = %q, want exclusion", input, got)
		}
	}
}

func TestCanonicalizeDistrictPlaceholders(t *testing.T) {
	inputs := []string{
		"",
		"Not Mentioned",
		"not specified",
		"[]",
		"[District]",
		"Not Provided",
		"Unknown",
	}

	for _, input := range inputs {
		got, excluded := CanonicalizeDistrict(input)
		if excluded {
			t.Errorf("CanonicalizeDistrict(%q) excluded, want %q", input, UnknownDistrict)
			continue
		}
		if got != UnknownDistrict {
			t.Errorf("CanonicalizeDistrict(%q) = %q, want %q", input, got, UnknownDistrict)
		}
	}
}

func TestCanonicalizeDistrictCleansFreeText(t *testing.T) {
	got, excluded := CanonicalizeDistrict("guntur district")
	if excluded {
		t.Fatal("CanonicalizeDistrict(guntur district) excluded")
	}
	if got != "Guntur" {
		t.Errorf("CanonicalizeDistrict(guntur district) = %q, want Guntur", got)
	}
}

func TestCanonicalizeDistrictIdempotent(t *testing.T) {
	inputs := []string{
		"Cyberabad",
		"Bhadradri Kothagudem",
		"guntur district",
		"Not Mentioned",
	}

	for _, input := range inputs {
		once, excluded := CanonicalizeDistrict(input)
		if excluded {
			continue
		}
		twice, excluded := CanonicalizeDistrict(once)
		if excluded {
			t.Errorf("CanonicalizeDistrict(%q) excluded on second pass", once)
			continue
		}
		if once != twice {
			t.Errorf("CanonicalizeDistrict not idempotent on %q: %q then %q", input, once, twice)
		}
	}
}
