package db

// SearchResult is the output of a search operation.
type SearchResult struct {
	Total int
	Hits  []Hit
}

// Hit is a single matched document in backend relevance order.
type Hit struct {
	ID     string
	Score  float64
	Fields map[string]string
}
