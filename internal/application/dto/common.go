package dto

// PagedSortedRequest paginación skip/take con expresión de orden ("campo DESC, otro ASC").
type PagedSortedRequest struct {
	Skip    int    `query:"skip" json:"skip"`
	Take    int    `query:"take" json:"take"`
	Sorting string `query:"sorting" json:"sorting"`
}

// Normalize aplica take por defecto y máximo.
func (p *PagedSortedRequest) Normalize(defTake, maxTake int) {
	if p.Take <= 0 {
		p.Take = defTake
	}
	if p.Take > maxTake {
		p.Take = maxTake
	}
	if p.Skip < 0 {
		p.Skip = 0
	}
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total,omitempty"`
}

// PagedResult respuesta genérica paginada (total sin paginar + ítems).
type PagedResult[T any] struct {
	TotalCount int `json:"total_count"`
	Items      []T `json:"items"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
