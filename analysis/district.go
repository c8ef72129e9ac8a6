package analysis

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UnknownDistrict is returned when the input carries no usable jurisdiction.
const UnknownDistrict = "Unknown"

// districtRule maps alias substrings to one canonical district. Rules are
// evaluated top to bottom, first match wins. The ordering is load-bearing:
// the broad Ranga Reddy alias group must run before everything else, and some
// narrower aliases are intentionally shadowed by earlier groups. Do not
// reorder or "deduplicate": downstream canonical values depend on the
// current behavior, and the tests pin it.
type districtRule struct {
	aliases   []string
	canonical string
	exclude   bool
}

var districtRules = []districtRule{
	{aliases: []string{
		"ranga", "r.r", "rr", "r r", "r. r",
		"cyberabad", "raidurgam", "maheshwar", "l.b", "rajendranagar",
		"ibrahimpatnam", "alkapoor", "serilingampally",
	}, canonical: "Ranga Reddy"},
	// Lucknow is outside the jurisdiction entirely; callers drop the record.
	{aliases: []string{"lucknow"}, exclude: true},
	{aliases: []string{"nalgonda", "miryalaguda", "yadadri", "bhongir"}, canonical: "Nalgonda"},
	{aliases: []string{"mahabubnagar", "nagarkurnool", "wanaparthy", "jogulamba", "gadwal"}, canonical: "Mahabubnagar"},
	{aliases: []string{"nizamabad", "pali", "ramareddy", "dichpally", "kamareddy", "yellareddy"}, canonical: "Nizamabad"},
	{aliases: []string{"adilabad"}, canonical: "Adilabad"},
	{aliases: []string{"karimnagar"}, canonical: "Karimnagar"},
	{aliases: []string{"khammam", "bhadradri"}, canonical: "Khammam"},
	{aliases: []string{"warangal", "hanamkonda"}, canonical: "Warangal"},
	{aliases: []string{"sangareddy"}, canonical: "Sangareddy"},
	{aliases: []string{"siddipet"}, canonical: "Siddipet"},
	{aliases: []string{"medak"}, canonical: "Medak"},
	{aliases: []string{"hyderabad", "secunderabad"}, canonical: "Hyderabad"},
	{aliases: []string{"medchal", "malkajgiri", "kukatpally"}, canonical: "Medchal-Malkajgiri"},
	{aliases: []string{"vikarabad"}, canonical: "Vikarabad"},
}

// placeholder noise that means "no district was extracted".
var districtNoise = map[string]bool{
	"":              true,
	"not mentioned": true,
	"not specified": true,
	"unknown":       true,
	"[]":            true,
	"[district]":    true,
	"not provided":  true,
	"not specified in the provided text": true,
}

var titleCaser = cases.Title(language.English)

// CanonicalizeDistrict maps a free-text jurisdiction name onto the fixed
// canonical district set. The second return value is true when the input
// names a foreign jurisdiction and the record should be excluded outright,
// as opposed to UnknownDistrict, which keeps the record.
func CanonicalizeDistrict(name string) (string, bool) {
	d := strings.ToLower(strings.TrimSpace(name))
	if d == "" {
		return UnknownDistrict, false
	}

	for _, rule := range districtRules {
		for _, alias := range rule.aliases {
			if strings.Contains(d, alias) {
				if rule.exclude {
					return "", true
				}
				return rule.canonical, false
			}
		}
	}

	clean := strings.ReplaceAll(d, "district", "")
	clean = strings.ReplaceAll(clean, "dist", "")
	clean = strings.ReplaceAll(clean, ".", "")
	clean = strings.TrimSpace(clean)

	if clean == "r r" {
		return "Ranga Reddy", false
	}
	if districtNoise[clean] {
		return UnknownDistrict, false
	}

	return titleCaser.String(clean), false
}
