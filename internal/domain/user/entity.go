package user

import "time"

// User — пользователь сервиса.
// Email хранится в нижнем регистре, уникальность регистронезависимая.
type User struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"size:254;not null;uniqueIndex"`
	Username     string    `json:"username" gorm:"size:150;not null;uniqueIndex"`
	FirstName    string    `json:"first_name" gorm:"size:150"`
	LastName     string    `json:"last_name" gorm:"size:150"`
	PasswordHash string    `json:"-" gorm:"not null"`
	IsStaff      bool      `json:"-" gorm:"not null;default:false"`
	CreatedAt    time.Time `json:"-" gorm:"autoCreateTime"`
}

func (User) TableName() string { return "users" }

// Subscription — подписка пользователя на автора.
// Пара user-author должна быть уникальной, подписка на себя запрещена.
type Subscription struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"not null;index;uniqueIndex:idx_user_author"`
	AuthorID  int64     `json:"author_id" gorm:"not null;index;uniqueIndex:idx_user_author"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Subscription) TableName() string { return "subscriptions" }
