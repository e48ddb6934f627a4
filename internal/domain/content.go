package domain

import "io"

// Service é um serviço oferecido pela imobiliária e exibido no site
type Service struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name" validate:"notblank"`
	Description string  `json:"description" validate:"notblank"`
	Price       float64 `json:"price" validate:"gte=0"`
	Active      bool    `json:"active"`
}

// Section agrupa mídias e conteúdos do site
type Section struct {
	ID          int64  `json:"id"`
	Name        string `json:"name" validate:"notblank"`
	Description string `json:"description"`
	Position    int    `json:"position" validate:"gte=0"`
}

// Media é um arquivo (imagem, vídeo, documento) associado a uma seção
type Media struct {
	ID        int64  `json:"id"`
	SectionID int64  `json:"section_id" validate:"required"`
	Title     string `json:"title" validate:"notblank"`
	Type      string `json:"type"`
	URL       string `json:"url,omitempty"`
	FileName  string `json:"file_name,omitempty"`
}

// MediaUpload carrega os campos e o arquivo enviados em multipart
type MediaUpload struct {
	SectionID int64     `json:"section_id" validate:"required"`
	Title     string    `json:"title" validate:"notblank"`
	Type      string    `json:"type"`
	FileName  string    `json:"file_name" validate:"notblank"`
	File      io.Reader `json:"-" validate:"required"`
}
