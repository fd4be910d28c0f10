package entity

import "github.com/google/uuid"

type CreateMovieRequest struct {
	Name       string  `json:"name" validate:"required,min=1,max=200"`
	IMDBRating float64 `json:"imdb_rating" validate:"gte=0,lte=10"`
	Price      float64 `json:"price" validate:"required,gt=0"`
	Year       int     `json:"year" validate:"required,gte=1888"`
}

// MovieFilter описывает конъюнктивный фильтр каталога
// nil-поле означает отсутствие ограничения
type MovieFilter struct {
	Name     *string
	MinIMDB  *float64
	MaxIMDB  *float64
	MinPrice *float64
	MaxPrice *float64
	Year     *int
}

// Empty сообщает, что ни один параметр фильтра не задан
func (f *MovieFilter) Empty() bool {
	return f.Name == nil && f.MinIMDB == nil && f.MaxIMDB == nil &&
		f.MinPrice == nil && f.MaxPrice == nil && f.Year == nil
}

type AddCartItemRequest struct {
	MovieID uuid.UUID `json:"movie_id" validate:"required"`
}

type CreateReactionRequest struct {
	MovieID uuid.UUID `json:"movie_id" validate:"required"`
	Type    string    `json:"type" validate:"required,oneof=like dislike"`
}

type CreateCommentRequest struct {
	MovieID uuid.UUID `json:"movie_id" validate:"required"`
	Text    string    `json:"text" validate:"required,min=1,max=1000"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type MovieListResponse struct {
	Movies []Movie `json:"movies"`
	Total  int     `json:"total"`
}

type CartResponse struct {
	Items []CartItem `json:"items"`
	Total int        `json:"total"`
}

type CommentListResponse struct {
	Comments []Comment `json:"comments"`
	Total    int       `json:"total"`
}

type OrderListResponse struct {
	Orders []Order `json:"orders"`
	Total  int     `json:"total"`
}

type CheckoutResponse struct {
	Message string `json:"message"`
	Order   *Order `json:"order"`
}
