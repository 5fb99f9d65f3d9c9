// Search filter model
package filter

// Comparison operator of a single search condition.
type Operator byte

const (
	Equal Operator = 1 + iota
	NotEqual
	Less
	Greater
	LessOrEqual
	GreaterOrEqual
	Like
	In
	Between
	IsNull
	IsNotNull
)

// Single parsed search condition.
//
// Value arity depends on the operator:
// In expects a slice, Between expects exactly two elements,
// IsNull and IsNotNull expect no value at all.
type Condition struct {
	Field string
	Op    Operator
	Value any
}

// Raw filter entry as received from a caller:
// Key is a field name with an optional operator suffix (e.g. "status_eq").
type Pair struct {
	Key   string
	Value any
}

// Ordered set of raw filter entries.
// Insertion order is preserved and defines the order
// in which conditions appear in the compiled query.
type Map []Pair

type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// Maps raw direction string to a Direction.
// Anything unrecognized falls back to Asc.
func ParseDirection(raw string) Direction {
	switch raw {
	case "DESC", "desc", "Desc":
		return Desc
	default:
		return Asc
	}
}

type SortField struct {
	Field     string
	Direction Direction
}

// Pagination and ordering of a search request.
type Options struct {
	Page  int
	Limit int
	Sort  []SortField
}
