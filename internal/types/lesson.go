package types

import (
  "time"
)

type Lesson struct {
  ID              uint       `gorm:"primaryKey" json:"id"`
  CourseID        uint       `gorm:"not null;uniqueIndex:idx_lessons_course_slug;column:course_id" json:"course_id"`
  Course          *Course    `gorm:"constraint:OnDelete:CASCADE;foreignKey:CourseID;references:ID" json:"course,omitempty"`
  Title           string     `gorm:"not null;column:title" json:"title"`
  Slug            string     `gorm:"not null;uniqueIndex:idx_lessons_course_slug;column:slug" json:"slug"`
  Description     string     `gorm:"column:description" json:"description"`
  Content         string     `gorm:"column:content" json:"content"`
  VideoURL        string     `gorm:"column:video_url" json:"video_url"`
  DurationMinutes int        `gorm:"not null;default:0;column:duration_minutes" json:"duration_minutes"`
  Order           int        `gorm:"not null;default:0;column:order" json:"order"`
  IsPublished     bool       `gorm:"not null;default:false;column:is_published" json:"is_published"`
  CreatedAt       time.Time  `gorm:"not null;autoCreateTime" json:"created_at"`
  UpdatedAt       time.Time  `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (Lesson) TableName() string {
  return "lessons"
}
