package movie

// Field names a searchable movie attribute.
type Field string

const (
	FieldName        Field = "name"
	FieldDescription Field = "description"
)

// Clause is a case-insensitive substring predicate on a single field.
// Substring is matched literally, never as a pattern.
type Clause struct {
	Field     Field
	Substring string
}

// Filter holds the optional search parameters of a listing request.
type Filter struct {
	Title       string
	Description string
}

// Clauses returns one clause per supplied parameter. Store adapters combine
// them with a logical AND; an empty result matches every movie.
func (f Filter) Clauses() []Clause {
	clauses := make([]Clause, 0, 2)
	if f.Title != "" {
		clauses = append(clauses, Clause{Field: FieldName, Substring: f.Title})
	}
	if f.Description != "" {
		clauses = append(clauses, Clause{Field: FieldDescription, Substring: f.Description})
	}
	return clauses
}
