package entity

import (
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Movie представляет фильм в каталоге
type Movie struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name       string    `json:"name" gorm:"type:varchar(200);not null"`
	IMDBRating float64   `json:"imdb_rating" gorm:"column:imdb_rating;type:decimal(3,1);not null"` // Оценка IMDB от 0 до 10
	Price      float64   `json:"price" gorm:"type:decimal(10,2);not null"`
	Year       int       `json:"year" gorm:"not null"` // Год выхода
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName указывает имя таблицы для GORM
func (Movie) TableName() string {
	return "movies"
}

// CartItem представляет позицию в корзине пользователя
// Пара (user_id, movie_id) уникальна: фильм нельзя положить в корзину дважды
type CartItem struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_movie"` // ID пользователя из JWT
	MovieID   uuid.UUID `json:"movie_id" gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_movie"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	Movie     *Movie    `json:"movie,omitempty" gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE"`
}

// TableName указывает имя таблицы для GORM
func (CartItem) TableName() string {
	return "cart_items"
}

// Order представляет оформленный заказ
// Заказ неизменяем: это снимок корзины на момент оформления
type Order struct {
	ID         uuid.UUID   `json:"id" gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID   `json:"user_id" gorm:"type:uuid;not null"`
	TotalPrice float64     `json:"total_price" gorm:"type:decimal(10,2);not null"`
	CreatedAt  time.Time   `json:"created_at" gorm:"autoCreateTime"`
	Items      []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName указывает имя таблицы для GORM
func (Order) TableName() string {
	return "orders"
}

// OrderItem представляет позицию в заказе
// Имя и цена копируются из фильма на момент покупки
type OrderItem struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `json:"order_id" gorm:"type:uuid;not null"`
	MovieID   uuid.UUID `json:"movie_id" gorm:"type:uuid;not null"`
	MovieName string    `json:"movie_name" gorm:"type:varchar(200);not null"`
	Price     float64   `json:"price" gorm:"type:decimal(10,2);not null"` // Цена на момент покупки
}

// TableName указывает имя таблицы для GORM
func (OrderItem) TableName() string {
	return "order_items"
}

// ReactionType представляет тип реакции на фильм
type ReactionType string

const (
	ReactionLike    ReactionType = "like"
	ReactionDislike ReactionType = "dislike"
)

// Reaction представляет реакцию (лайк/дизлайк) на фильм
type Reaction struct {
	ID        uuid.UUID    `json:"id" gorm:"type:uuid;primaryKey"`
	MovieID   uuid.UUID    `json:"movie_id" gorm:"type:uuid;not null;index"`
	Type      ReactionType `json:"type" gorm:"type:varchar(10);not null"`
	CreatedAt time.Time    `json:"created_at" gorm:"autoCreateTime"`
}

// TableName указывает имя таблицы для GORM
func (Reaction) TableName() string {
	return "reactions"
}

// ReactionSummary содержит агрегированные счётчики реакций фильма
type ReactionSummary struct {
	MovieID  uuid.UUID `json:"movie_id"`
	Likes    int64     `json:"likes"`
	Dislikes int64     `json:"dislikes"`
}

// Comment представляет комментарий к фильму, хранится в MongoDB
type Comment struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	MovieID   string             `json:"movie_id" bson:"movie_id"` // UUID фильма из каталога
	UserID    string             `json:"user_id" bson:"user_id"`   // UUID автора из JWT
	Text      string             `json:"text" bson:"text"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

// OrderEvent представляет событие оформления заказа для Kafka
type OrderEvent struct {
	EventType  string    `json:"event_type"` // ORDER_CREATED
	OrderID    string    `json:"order_id"`
	UserID     string    `json:"user_id"`
	TotalPrice float64   `json:"total_price"`
	ItemsCount int       `json:"items_count"`
	Timestamp  time.Time `json:"timestamp"`
}
