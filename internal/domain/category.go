package domain

import "time"

type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// CategoryInterest es una categoría anotada con el interés del usuario actual.
type CategoryInterest struct {
	Category
	IsInterested bool `json:"is_interested"`
}

// CategoryPage es una página de categorías con metadata de paginación.
type CategoryPage struct {
	Categories []CategoryInterest `json:"categories"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
}
