package model

import "time"

type Product struct {
	UUID        string    `db:"uuid" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Price       float64   `db:"price" json:"price"`
	ImageURL    string    `db:"image_url" json:"image"`
	Category    string    `db:"category" json:"category"`
	IsFeatured  bool      `db:"is_featured" json:"isFeatured"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
