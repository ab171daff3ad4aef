package types

import (
  "time"
)

type Enrollment struct {
  ID         uint       `gorm:"primaryKey" json:"id"`
  StudentID  uint       `gorm:"not null;uniqueIndex:idx_enrollments_student_course;column:student_id" json:"student_id"`
  Student    *User      `gorm:"constraint:OnDelete:CASCADE;foreignKey:StudentID;references:ID" json:"student,omitempty"`
  CourseID   uint       `gorm:"not null;uniqueIndex:idx_enrollments_student_course;column:course_id" json:"course_id"`
  Course     *Course    `gorm:"constraint:OnDelete:CASCADE;foreignKey:CourseID;references:ID" json:"course,omitempty"`
  EnrolledAt time.Time  `gorm:"not null;autoCreateTime;column:enrolled_at" json:"enrolled_at"`
  IsActive   bool       `gorm:"not null;default:true;column:is_active" json:"is_active"`
  Progress   float64    `gorm:"not null;default:0;column:progress" json:"progress"`
}

func (Enrollment) TableName() string {
  return "enrollments"
}
