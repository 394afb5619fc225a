package db

import (
	"errors"
	"strconv"
)

// IndexFieldType enumerates supported index field types.
type IndexFieldType int

const (
	// IndexFieldText is an analyzed full-text field.
	IndexFieldText IndexFieldType = iota
	// IndexFieldKeyword is an exact-match, filterable field.
	IndexFieldKeyword
)

// String returns the field type name.
func (t IndexFieldType) String() string {
	switch t {
	case IndexFieldText:
		return "text"
	case IndexFieldKeyword:
		return "keyword"
	default:
		return "unknown"
	}
}

// IndexField describes a single field in an index schema.
type IndexField struct {
	Name string
	Type IndexFieldType
}

// IndexDefinition is a complete index definition.
type IndexDefinition struct {
	Name string
	// Shards is the primary shard count; backends without sharding ignore it.
	Shards int
	Fields []IndexField
}

// Validate checks that the index definition is well-formed.
func (idx *IndexDefinition) Validate() error {
	if idx.Name == "" {
		return errors.New("index name is required")
	}
	if !IsValidIdentifier(idx.Name) {
		return errors.New("index name contains invalid characters")
	}
	if idx.Shards < 0 {
		return errors.New("shards must not be negative")
	}
	if len(idx.Fields) == 0 {
		return errors.New("at least one field is required")
	}

	seen := make(map[string]bool)
	for i := range idx.Fields {
		f := &idx.Fields[i]
		if f.Name == "" {
			return errors.New("field name is required at index " + strconv.Itoa(i))
		}
		if seen[f.Name] {
			return errors.New("duplicate field name: " + f.Name)
		}
		seen[f.Name] = true

		if f.Type != IndexFieldText && f.Type != IndexFieldKeyword {
			return errors.New("unknown type for field " + f.Name)
		}
	}

	return nil
}

// IsValidIdentifier returns true if s matches [a-zA-Z0-9_:-]+.
func IsValidIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		isAlpha := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'
		isSpecial := r == '_' || r == ':' || r == '-'
		if !isAlpha && !isDigit && !isSpecial {
			return false
		}
	}
	return true
}
