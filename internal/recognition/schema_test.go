package recognition

import "testing"

func TestValidateDocument(t *testing.T) {
	ok := `{"scientificName":"Orcinus orca","chineseName":"虎鲸","confidence":0.9}`
	if err := ValidateDocument(ok); err != nil {
		t.Errorf("valid document rejected: %v", err)
	}

	// The default document must always pass.
	if err := ValidateDocument(DefaultDocument()); err != nil {
		t.Errorf("default document rejected: %v", err)
	}
}

func TestValidateDocument_Deviations(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing required fields", `{"habitat":"reef"}`},
		{"confidence out of range", `{"scientificName":"x","chineseName":"y","confidence":1.5}`},
		{"mistyped field", `{"scientificName":42,"chineseName":"y","confidence":0.5}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateDocument(tt.doc); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
