package recognition

// Fallback values used when the model omits a field or returns something
// unusable. The same values appear in the canonical default document that
// Coerce falls back to, so a fully-failed call and a partially-failed call
// converge on identical text.
const (
	fallbackScientificName = "未识别"
	fallbackCommonName     = "Unknown"
	fallbackChineseName    = "未知海洋生物"
	fallbackRank           = "未确定"
	fallbackField          = "未确定"

	// FallbackDescription is the user-facing sentence shown when recognition
	// fails outright.
	FallbackDescription = "图片识别失败，请重新上传清晰的海洋生物图片"
)

// DefaultRecord returns the canonical record produced when recognition fails
// at any stage. It is already fully populated; ApplyDefaults is the identity
// on it.
func DefaultRecord() Record {
	return Record{
		ScientificName: fallbackScientificName,
		CommonName:     fallbackCommonName,
		ChineseName:    fallbackChineseName,
		Classification: Classification{
			Kingdom: fallbackRank,
			Phylum:  fallbackRank,
			Class:   fallbackRank,
			Order:   fallbackRank,
			Family:  fallbackRank,
			Genus:   fallbackRank,
			Species: fallbackRank,
		},
		Habitat:            fallbackField,
		Distribution:       fallbackField,
		Characteristics:    fallbackField,
		SizeRange:          fallbackField,
		Diet:               fallbackField,
		ConservationStatus: fallbackField,
		Description:        FallbackDescription,
		Confidence:         0.0,
	}
}

// ApplyDefaults fills every empty field of r with its designated fallback and
// clamps confidence into [0, 1]. The result is always fully renderable; this
// stage cannot fail.
func ApplyDefaults(r Record) Record {
	d := DefaultRecord()

	r.ScientificName = orDefault(r.ScientificName, d.ScientificName)
	r.CommonName = orDefault(r.CommonName, d.CommonName)
	r.ChineseName = orDefault(r.ChineseName, d.ChineseName)
	r.Habitat = orDefault(r.Habitat, d.Habitat)
	r.Distribution = orDefault(r.Distribution, d.Distribution)
	r.Characteristics = orDefault(r.Characteristics, d.Characteristics)
	r.SizeRange = orDefault(r.SizeRange, d.SizeRange)
	r.Diet = orDefault(r.Diet, d.Diet)
	r.ConservationStatus = orDefault(r.ConservationStatus, d.ConservationStatus)
	r.Description = orDefault(r.Description, d.Description)

	r.Classification.Kingdom = orDefault(r.Classification.Kingdom, d.Classification.Kingdom)
	r.Classification.Phylum = orDefault(r.Classification.Phylum, d.Classification.Phylum)
	r.Classification.Class = orDefault(r.Classification.Class, d.Classification.Class)
	r.Classification.Order = orDefault(r.Classification.Order, d.Classification.Order)
	r.Classification.Family = orDefault(r.Classification.Family, d.Classification.Family)
	r.Classification.Genus = orDefault(r.Classification.Genus, d.Classification.Genus)
	r.Classification.Species = orDefault(r.Classification.Species, d.Classification.Species)

	switch {
	case r.Confidence < 0:
		r.Confidence = 0
	case r.Confidence > 1:
		r.Confidence = 1
	}

	return r
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
