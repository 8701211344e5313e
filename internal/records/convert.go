package records

import (
	"encoding/json"

	"github.com/seadex/seadex/internal/recognition"
)

// FromRecognition builds a durable record from a finished pipeline record
// plus the caller-supplied metadata.
func FromRecognition(rec recognition.Record, userID int64, imageURL string) Record {
	classification := "{}"
	if data, err := json.Marshal(rec.Classification); err == nil {
		classification = string(data)
	}

	return Record{
		UserID:             userID,
		ImageURL:           imageURL,
		RecognitionResult:  rec.ChineseName,
		ScientificName:     rec.ScientificName,
		CommonName:         rec.CommonName,
		ConservationStatus: rec.ConservationStatus,
		Characteristics:    rec.Characteristics,
		Habitat:            rec.Habitat,
		Distribution:       rec.Distribution,
		SizeRange:          rec.SizeRange,
		Diet:               rec.Diet,
		Description:        rec.Description,
		Classification:     classification,
		Confidence:         rec.Confidence,
		Status:             1,
	}
}
