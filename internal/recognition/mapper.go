package recognition

import (
	"encoding/json"
	"strings"
)

// classification rank keys accepted from the model. The prompt asks for
// "clazz" (the original schema avoided the reserved word), but models
// routinely answer "class" instead, so both are accepted.
var rankAliases = map[string][]string{
	"kingdom": {"kingdom"},
	"phylum":  {"phylum"},
	"class":   {"clazz", "class"},
	"order":   {"order"},
	"family":  {"family"},
	"genus":   {"genus"},
	"species": {"species"},
}

// MapRecord deserializes a coerced JSON document into a Record, copying every
// present, correctly-typed field and silently skipping absent or mistyped
// ones. Mapping never fails: the worst case is a zero Record, which
// ApplyDefaults then completes. Unknown keys, including unknown
// classification ranks, are ignored.
func MapRecord(doc string) Record {
	var raw map[string]any
	if err := json.Unmarshal([]byte(doc), &raw); err != nil {
		return Record{}
	}

	var r Record
	r.ScientificName = stringField(raw, "scientificName")
	r.CommonName = stringField(raw, "commonName")
	r.ChineseName = stringField(raw, "chineseName")
	r.Habitat = stringField(raw, "habitat")
	r.Distribution = stringField(raw, "distribution")
	r.Characteristics = stringField(raw, "characteristics")
	r.SizeRange = stringField(raw, "sizeRange")
	r.Diet = stringField(raw, "diet")
	r.ConservationStatus = stringField(raw, "conservationStatus")
	r.Description = stringField(raw, "description")
	r.Confidence = floatField(raw, "confidence")
	r.Classification = mapClassification(raw["classification"])
	return r
}

func mapClassification(v any) Classification {
	ranks, ok := v.(map[string]any)
	if !ok {
		return Classification{}
	}

	var c Classification
	c.Kingdom = rankField(ranks, "kingdom")
	c.Phylum = rankField(ranks, "phylum")
	c.Class = rankField(ranks, "class")
	c.Order = rankField(ranks, "order")
	c.Family = rankField(ranks, "family")
	c.Genus = rankField(ranks, "genus")
	c.Species = rankField(ranks, "species")
	return c
}

func rankField(ranks map[string]any, rank string) string {
	for _, key := range rankAliases[rank] {
		if s, ok := ranks[key].(string); ok {
			if trimmed := strings.TrimSpace(s); trimmed != "" {
				return trimmed
			}
		}
	}
	return ""
}

func stringField(raw map[string]any, key string) string {
	s, ok := raw[key].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// floatField accepts any JSON number; a mistyped confidence (e.g. a string)
// is left unset rather than aborting the mapping.
func floatField(raw map[string]any, key string) float64 {
	f, ok := raw[key].(float64)
	if !ok {
		return 0
	}
	return f
}
