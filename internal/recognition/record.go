// Package recognition implements the species recognition pipeline: it sends
// an image to a vision-language model and normalizes whatever comes back into
// a complete, renderable record. Model-side failures never escape this
// package; they degrade to the canonical default record.
package recognition

// Classification holds the seven fixed taxonomic ranks.
type Classification struct {
	Kingdom string `json:"kingdom"`
	Phylum  string `json:"phylum"`
	Class   string `json:"class"`
	Order   string `json:"order"`
	Family  string `json:"family"`
	Genus   string `json:"genus"`
	Species string `json:"species"`
}

// Record is the strict recognition record. Every Record returned by the
// pipeline is fully populated: empty fields are filled by ApplyDefaults
// before the record leaves this package.
type Record struct {
	ScientificName     string         `json:"scientificName"`
	CommonName         string         `json:"commonName"`
	ChineseName        string         `json:"chineseName"`
	Classification     Classification `json:"classification"`
	Habitat            string         `json:"habitat"`
	Distribution       string         `json:"distribution"`
	Characteristics    string         `json:"characteristics"`
	SizeRange          string         `json:"sizeRange"`
	Diet               string         `json:"diet"`
	ConservationStatus string         `json:"conservationStatus"`
	Description        string         `json:"description"`
	Confidence         float64        `json:"confidence"`
}
