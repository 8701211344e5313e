package recognition

import "testing"

func TestMapRecord_FullDocument(t *testing.T) {
	doc := `{
		"scientificName": "Amphiprion ocellaris",
		"commonName": "Clownfish",
		"chineseName": "小丑鱼",
		"classification": {
			"kingdom": "动物界",
			"phylum": "脊索动物门",
			"clazz": "辐鳍鱼纲",
			"order": "鲈形目",
			"family": "雀鲷科",
			"genus": "双锯鱼属",
			"species": "眼斑双锯鱼"
		},
		"habitat": "珊瑚礁",
		"distribution": "印度洋-太平洋",
		"characteristics": "橙色身体带白色条纹",
		"sizeRange": "8-11厘米",
		"diet": "杂食性",
		"conservationStatus": "无危",
		"description": "与海葵共生的小型鱼类",
		"confidence": 0.95
	}`

	r := MapRecord(doc)
	if r.ScientificName != "Amphiprion ocellaris" {
		t.Errorf("scientificName = %q", r.ScientificName)
	}
	if r.ChineseName != "小丑鱼" {
		t.Errorf("chineseName = %q", r.ChineseName)
	}
	if r.Classification.Class != "辐鳍鱼纲" {
		t.Errorf("class = %q, want value from clazz key", r.Classification.Class)
	}
	if r.Classification.Species != "眼斑双锯鱼" {
		t.Errorf("species = %q", r.Classification.Species)
	}
	if r.Confidence != 0.95 {
		t.Errorf("confidence = %v", r.Confidence)
	}
}

func TestMapRecord_ClassAlias(t *testing.T) {
	// Models that ignore the "clazz" spelling still map.
	r := MapRecord(`{"classification":{"class":"哺乳纲"}}`)
	if r.Classification.Class != "哺乳纲" {
		t.Errorf("class = %q, want %q", r.Classification.Class, "哺乳纲")
	}

	// "clazz" wins when both are present.
	r = MapRecord(`{"classification":{"clazz":"辐鳍鱼纲","class":"哺乳纲"}}`)
	if r.Classification.Class != "辐鳍鱼纲" {
		t.Errorf("class = %q, want clazz value", r.Classification.Class)
	}
}

func TestMapRecord_SkipsMistypedFields(t *testing.T) {
	doc := `{
		"scientificName": 42,
		"chineseName": "海豚",
		"confidence": "high",
		"classification": "not an object"
	}`

	r := MapRecord(doc)
	if r.ScientificName != "" {
		t.Errorf("mistyped scientificName should be skipped, got %q", r.ScientificName)
	}
	if r.ChineseName != "海豚" {
		t.Errorf("chineseName = %q", r.ChineseName)
	}
	if r.Confidence != 0 {
		t.Errorf("mistyped confidence should be left unset, got %v", r.Confidence)
	}
	if r.Classification != (Classification{}) {
		t.Errorf("non-object classification should map to zero value")
	}
}

func TestMapRecord_TrimsWhitespace(t *testing.T) {
	r := MapRecord(`{"chineseName":"  海豚  ","classification":{"kingdom":" 动物界 "}}`)
	if r.ChineseName != "海豚" {
		t.Errorf("chineseName = %q, want trimmed", r.ChineseName)
	}
	if r.Classification.Kingdom != "动物界" {
		t.Errorf("kingdom = %q, want trimmed", r.Classification.Kingdom)
	}
}

func TestMapRecord_InvalidDocument(t *testing.T) {
	if r := MapRecord("not json"); r != (Record{}) {
		t.Errorf("invalid document should map to zero Record, got %+v", r)
	}
}

func TestMapRecord_IgnoresUnknownKeys(t *testing.T) {
	r := MapRecord(`{"chineseName":"鲸鲨","lifespan":"70 years","classification":{"subphylum":"脊椎动物亚门"}}`)
	if r.ChineseName != "鲸鲨" {
		t.Errorf("chineseName = %q", r.ChineseName)
	}
	if r.Classification != (Classification{}) {
		t.Errorf("unknown rank keys should be ignored, got %+v", r.Classification)
	}
}
