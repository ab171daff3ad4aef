package types

import (
  "time"
)

type Assignment struct {
  ID            uint       `gorm:"primaryKey" json:"id"`
  CourseID      uint       `gorm:"not null;index;column:course_id" json:"course_id"`
  Course        *Course    `gorm:"constraint:OnDelete:CASCADE;foreignKey:CourseID;references:ID" json:"course,omitempty"`
  Title         string     `gorm:"not null;column:title" json:"title"`
  Description   string     `gorm:"column:description" json:"description"`
  Instructions  string     `gorm:"column:instructions" json:"instructions"`
  MaxScore      int        `gorm:"not null;default:100;column:max_score" json:"max_score"`
  DueDate       time.Time  `gorm:"not null;index;column:due_date" json:"due_date"`
  AttachmentURL string     `gorm:"column:attachment_url" json:"attachment_url"`
  CreatedAt     time.Time  `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (Assignment) TableName() string {
  return "assignments"
}

func (a *Assignment) IsOverdue(now time.Time) bool {
  return now.After(a.DueDate)
}
