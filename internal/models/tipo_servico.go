package models

import "time"

// TipoServico é o catálogo extensível de serviços oferecidos pelo consultório.
type TipoServico struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Slug   string  `gorm:"size:50;uniqueIndex;not null" json:"slug"`
	Nome   string  `gorm:"size:100;not null" json:"nome"`
	Preco  float64 `json:"preco"`
	Active bool    `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
