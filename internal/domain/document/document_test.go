package document

import "testing"

func TestNew_Valid(t *testing.T) {
	d, err := New(1, "Title", "Body", News)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.ID() != 1 || d.Key() != "1" {
		t.Errorf("ID() = %d, Key() = %q", d.ID(), d.Key())
	}
	if d.Title() != "Title" || d.Content() != "Body" || d.ContentType() != News {
		t.Errorf("unexpected document: %+v", d)
	}
}

func TestNew_EmptyContentAllowed(t *testing.T) {
	if _, err := New(2, "Title", "", Article); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name string
		id   int
		ttl  string
		ct   ContentType
	}{
		{"zero id", 0, "t", News},
		{"negative id", -4, "t", News},
		{"empty title", 1, "", News},
		{"unknown type", 1, "t", "blog"},
		{"case mismatch", 1, "t", "News"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.id, tc.ttl, "c", tc.ct); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestFields(t *testing.T) {
	d, _ := New(3, "T", "C", Report)
	f := d.Fields()
	if f[FieldTitle] != "T" || f[FieldContent] != "C" || f[FieldContentType] != "report" {
		t.Errorf("Fields() = %v", f)
	}
	if len(f) != 3 {
		t.Errorf("expected 3 fields, got %d", len(f))
	}
}

func TestContentTypes(t *testing.T) {
	types := ContentTypes()
	if len(types) != 4 {
		t.Fatalf("expected 4 content types, got %d", len(types))
	}
	for _, ct := range types {
		if !ct.IsValid() {
			t.Errorf("%q should be valid", ct)
		}
	}
	if ContentType("all").IsValid() {
		t.Error(`"all" is a sentinel, not a content type`)
	}
}

func TestSamples_SequentialIDs(t *testing.T) {
	docs, err := Samples(Fixed(Tutorial))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 5 {
		t.Fatalf("expected 5 samples, got %d", len(docs))
	}
	for i, d := range docs {
		if d.ID() != i+1 {
			t.Errorf("docs[%d].ID() = %d, want %d", i, d.ID(), i+1)
		}
		if d.ContentType() != Tutorial {
			t.Errorf("docs[%d].ContentType() = %q, want tutorial", i, d.ContentType())
		}
		if d.Title() == "" || d.Content() == "" {
			t.Errorf("docs[%d] has empty title or content", i)
		}
	}
	if docs[0].Title() != "Introduction to OpenSearch" {
		t.Errorf("first sample = %q", docs[0].Title())
	}
	if docs[2].Title() != "Docker Compose for Development" {
		t.Errorf("third sample = %q", docs[2].Title())
	}
}

func TestSamples_PickerDrivesCategories(t *testing.T) {
	calls := 0
	pick := func(n int) int {
		if n != 4 {
			t.Errorf("picker called with n=%d, want 4", n)
		}
		calls++
		return (calls - 1) % n
	}

	docs, err := Samples(pick)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []ContentType{Article, News, Report, Tutorial, Article}
	for i, d := range docs {
		if d.ContentType() != want[i] {
			t.Errorf("docs[%d].ContentType() = %q, want %q", i, d.ContentType(), want[i])
		}
	}
	if calls != 5 {
		t.Errorf("picker called %d times, want 5", calls)
	}
}

func TestSamples_Deterministic(t *testing.T) {
	a, _ := Samples(Fixed(News))
	b, _ := Samples(Fixed(News))
	if len(a) != 5 || len(b) != 5 {
		t.Fatalf("expected 5 samples each, got %d and %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("samples differ at %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestSamples_PickerOutOfRange(t *testing.T) {
	if _, err := Samples(func(n int) int { return n }); err == nil {
		t.Fatal("expected error for out-of-range picker")
	}
}

func TestSamples_AreValidDocuments(t *testing.T) {
	docs, err := Samples(Fixed(Report))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, d := range docs {
		if _, err := New(d.ID(), d.Title(), d.Content(), d.ContentType()); err != nil {
			t.Errorf("sample %d rejected by New: %v", d.ID(), err)
		}
	}
}
