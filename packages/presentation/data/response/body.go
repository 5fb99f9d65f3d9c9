package responsebody

type Message struct {
	Message string `json:"message"`
}

// Paginated search envelope.
type Search[T any] struct {
	Items []T `json:"items"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func NewSearch[T any](items []T, page int, limit int) *Search[T] {
	if items == nil {
		items = []T{}
	}
	return &Search[T]{
		Items: items,
		Page: page,
		Limit: limit,
	}
}
