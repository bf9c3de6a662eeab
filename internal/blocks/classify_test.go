package blocks

import "testing"

func chunksOf(texts ...string) []Chunk {
	out := make([]Chunk, len(texts))
	for i, s := range texts {
		out[i] = Chunk{Content: s}
	}
	return out
}

func TestClassify_NoMarker(t *testing.T) {
	cats := Classify(chunksOf("one", "two", "three"), "[&$]")
	for i, c := range cats {
		if c != Normal {
			t.Errorf("chunk %d = %s, want NORMAL", i, c)
		}
	}
}

func TestClassify_MarkerInFirst(t *testing.T) {
	cats := Classify(chunksOf("a[&$]b", "two", "three"), "[&$]")
	want := []Category{MarkerFirst, AfterMarker, AfterMarker}
	for i, w := range want {
		if cats[i] != w {
			t.Errorf("chunk %d = %s, want %s", i, cats[i], w)
		}
	}
}

func TestClassify_MarkerMidSequence(t *testing.T) {
	cats := Classify(chunksOf("one", "two", "x[&$]", "four"), "[&$]")
	want := []Category{Normal, Normal, MarkerFirst, AfterMarker}
	for i, w := range want {
		if cats[i] != w {
			t.Errorf("chunk %d = %s, want %s", i, cats[i], w)
		}
	}
}

func TestClassify_SecondOccurrenceAbsorbed(t *testing.T) {
	// Later chunks containing the marker stay AfterMarker; MarkerFirst
	// happens at most once.
	cats := Classify(chunksOf("[&$]", "[&$]", "plain"), "[&$]")
	want := []Category{MarkerFirst, AfterMarker, AfterMarker}
	for i, w := range want {
		if cats[i] != w {
			t.Errorf("chunk %d = %s, want %s", i, cats[i], w)
		}
	}
}

func TestClassify_StraddledMarkerMissed(t *testing.T) {
	// A marker split by a hard break is in neither chunk; both read as if
	// no marker were present.
	cats := Classify(chunksOf("xxx[&", "$]yyy"), "[&$]")
	for i, c := range cats {
		if c != Normal {
			t.Errorf("chunk %d = %s, want NORMAL", i, c)
		}
	}
}

func TestClassify_Empty(t *testing.T) {
	if cats := Classify(nil, "[&$]"); len(cats) != 0 {
		t.Fatalf("expected no categories, got %d", len(cats))
	}
}

// Monotonicity: the category sequence always matches
// NORMAL* (MARKER_FIRST AFTER_MARKER*)? whatever the input.
func TestClassify_Monotone(t *testing.T) {
	sequences := [][]string{
		{"a", "b", "c"},
		{"[&$]"},
		{"a", "[&$]", "b", "[&$]", "c"},
		{"[&$]a", "[&$]b"},
		{"a", "b", "[&$]"},
	}
	for _, seq := range sequences {
		cats := Classify(chunksOf(seq...), "[&$]")
		phase := 0 // 0 = normal zone, 1 = after trigger
		for i, c := range cats {
			switch c {
			case Normal:
				if phase != 0 {
					t.Errorf("%q: NORMAL at %d after trigger", seq, i)
				}
			case MarkerFirst:
				if phase != 0 {
					t.Errorf("%q: second MARKER_FIRST at %d", seq, i)
				}
				phase = 1
			case AfterMarker:
				if phase != 1 {
					t.Errorf("%q: AFTER_MARKER at %d before trigger", seq, i)
				}
			}
		}
	}
}

func TestClassify_CustomMarker(t *testing.T) {
	cats := Classify(chunksOf("start", "==CUT==", "rest"), "==CUT==")
	want := []Category{Normal, MarkerFirst, AfterMarker}
	for i, w := range want {
		if cats[i] != w {
			t.Errorf("chunk %d = %s, want %s", i, cats[i], w)
		}
	}
}
