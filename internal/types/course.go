package types

import (
  "time"
)

type Course struct {
  ID           uint          `gorm:"primaryKey" json:"id"`
  Title        string        `gorm:"not null;index;column:title" json:"title"`
  Slug         string        `gorm:"uniqueIndex;not null;column:slug" json:"slug"`
  Description  string        `gorm:"column:description" json:"description"`
  InstructorID uint          `gorm:"not null;index;column:instructor_id" json:"instructor_id"`
  Instructor   *User         `gorm:"constraint:OnDelete:CASCADE;foreignKey:InstructorID;references:ID" json:"instructor,omitempty"`
  Category     string        `gorm:"index;column:category" json:"category"`
  Level        CourseLevel   `gorm:"not null;default:'beginner';column:level" json:"level"`
  IsActive     bool          `gorm:"not null;default:true;column:is_active" json:"is_active"`
  CreatedAt    time.Time     `gorm:"not null;autoCreateTime" json:"created_at"`
  UpdatedAt    time.Time     `gorm:"not null;autoUpdateTime" json:"updated_at"`
  Lessons      []Lesson      `gorm:"foreignKey:CourseID" json:"lessons,omitempty"`
  Assignments  []Assignment  `gorm:"foreignKey:CourseID" json:"assignments,omitempty"`
}

func (Course) TableName() string {
  return "courses"
}
