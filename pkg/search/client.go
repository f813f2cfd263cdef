package search

import "context"

type Snippet struct {
	Titulo string
	Trecho string
	URL    string
}

type Client interface {
	Search(ctx context.Context, query string) ([]Snippet, error)
	Name() string
}
