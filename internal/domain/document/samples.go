package document

import "fmt"

// Picker returns an index in [0, n). Injected so category assignment can be
// random in production and fixed in tests.
type Picker func(n int) int

type sample struct {
	title   string
	content string
}

var samples = []sample{
	{
		title:   "Introduction to OpenSearch",
		content: "OpenSearch is a community-driven, open source fork of Elasticsearch and Kibana.",
	},
	{
		title:   "Python and OpenSearch",
		content: "Learn how to use Python to interact with OpenSearch for search and analytics.",
	},
	{
		title:   "Docker Compose for Development",
		content: "Using Docker Compose to set up development environments with multiple services.",
	},
	{
		title:   "Full-Text Search Basics",
		content: "Understanding the fundamentals of full-text search and how it works in OpenSearch.",
	},
	{
		title:   "Data Indexing Strategies",
		content: "Best practices for indexing data in OpenSearch for optimal search performance.",
	},
}

// Samples returns the seed documents with sequential IDs starting at 1.
// pick chooses each document's category from ContentTypes().
func Samples(pick Picker) ([]Document, error) {
	types := ContentTypes()
	docs := make([]Document, 0, len(samples))
	for i, s := range samples {
		n := pick(len(types))
		if n < 0 || n >= len(types) {
			return nil, fmt.Errorf("picker returned %d, want [0, %d)", n, len(types))
		}
		doc, err := New(i+1, s.title, s.content, types[n])
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", i+1, err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// Fixed returns a Picker that always selects the category at index i.
func Fixed(t ContentType) Picker {
	idx := 0
	for i, ct := range ContentTypes() {
		if ct == t {
			idx = i
		}
	}
	return func(int) int { return idx }
}
