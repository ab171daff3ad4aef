package types

import (
  "strings"
  "time"
)

type User struct {
  ID         uint        `gorm:"primaryKey" json:"id"`
  Email      string      `gorm:"uniqueIndex;not null;column:email" json:"email"`
  Username   string      `gorm:"uniqueIndex;not null;column:username" json:"username"`
  Password   string      `gorm:"not null;column:password" json:"-"`
  FirstName  string      `gorm:"column:first_name" json:"first_name"`
  LastName   string      `gorm:"column:last_name" json:"last_name"`
  Role       Role        `gorm:"not null;default:'student';index;column:role" json:"role"`
  Bio        string      `gorm:"column:bio" json:"bio"`
  Phone      string      `gorm:"column:phone" json:"phone"`
  AvatarURL  string      `gorm:"column:avatar_url" json:"avatar_url"`
  IsActive   bool        `gorm:"not null;default:true;column:is_active" json:"is_active"`
  DateJoined time.Time   `gorm:"not null;autoCreateTime;column:date_joined" json:"date_joined"`
  LastLogin  *time.Time  `gorm:"column:last_login" json:"last_login,omitempty"`
}

func (User) TableName() string {
  return "users"
}

func (u *User) FullName() string {
  full := strings.TrimSpace(u.FirstName + " " + u.LastName)
  if full == "" {
    return u.Username
  }
  return full
}

func (u *User) IsAdmin() bool {
  return u.Role == RoleAdmin
}
