package models

import "time"

const (
	RoleCitizen  = "citizen"
	RoleOfficial = "official"
	RoleAdmin    = "admin"
)

type Users struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(50);not null" json:"name"`
	Email     string    `gorm:"column:email;type:varchar(100);not null;uniqueIndex:uk_email" json:"email"`
	Password  string    `gorm:"column:password;type:varchar(100);not null" json:"-"`
	Role      string    `gorm:"column:role;type:varchar(16);not null;default:citizen" json:"role"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Users) TableName() string { return "users" }
