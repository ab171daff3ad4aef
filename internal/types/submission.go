package types

import (
  "time"
)

type Submission struct {
  ID            uint         `gorm:"primaryKey" json:"id"`
  AssignmentID  uint         `gorm:"not null;uniqueIndex:idx_submissions_assignment_student;column:assignment_id" json:"assignment_id"`
  Assignment    *Assignment  `gorm:"constraint:OnDelete:CASCADE;foreignKey:AssignmentID;references:ID" json:"assignment,omitempty"`
  StudentID     uint         `gorm:"not null;uniqueIndex:idx_submissions_assignment_student;column:student_id" json:"student_id"`
  Student       *User        `gorm:"constraint:OnDelete:CASCADE;foreignKey:StudentID;references:ID" json:"student,omitempty"`
  Content       string       `gorm:"column:content" json:"content"`
  AttachmentURL string       `gorm:"column:attachment_url" json:"attachment_url"`
  SubmittedAt   time.Time    `gorm:"not null;autoCreateTime;column:submitted_at" json:"submitted_at"`
  UpdatedAt     time.Time    `gorm:"not null;autoUpdateTime" json:"updated_at"`
  Score         *float64     `gorm:"column:score" json:"score,omitempty"`
  Feedback      string       `gorm:"column:feedback" json:"feedback"`
  GradedAt      *time.Time   `gorm:"column:graded_at" json:"graded_at,omitempty"`
  GradedByID    *uint        `gorm:"column:graded_by_id" json:"graded_by_id,omitempty"`
  GradedBy      *User        `gorm:"constraint:OnDelete:SET NULL;foreignKey:GradedByID;references:ID" json:"graded_by,omitempty"`
}

func (Submission) TableName() string {
  return "submissions"
}

// IsLate is true when the submission landed strictly after the due date.
func (s *Submission) IsLate() bool {
  if s.Assignment == nil {
    return false
  }
  return s.SubmittedAt.After(s.Assignment.DueDate)
}

func (s *Submission) IsGraded() bool {
  return s.Score != nil
}
