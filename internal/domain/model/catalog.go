package model

// Product holds the catalog fields used for classification.
type Product struct {
	ID          int64
	Title       string
	ProductType string
}

// Collection is a named product grouping.
type Collection struct {
	ID    int64
	Title string
}
