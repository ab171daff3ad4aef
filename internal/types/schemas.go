package types

import (
  "time"
)

// Output shapes returned by the API layer. Derived booleans are computed
// here at mapping time and never persisted.

type UserOut struct {
  ID         uint        `json:"id"`
  Email      string      `json:"email"`
  Username   string      `json:"username"`
  FirstName  string      `json:"first_name"`
  LastName   string      `json:"last_name"`
  Role       Role        `json:"role"`
  Bio        string      `json:"bio"`
  Phone      string      `json:"phone"`
  AvatarURL  string      `json:"avatar_url"`
  IsActive   bool        `json:"is_active"`
  DateJoined time.Time   `json:"date_joined"`
  LastLogin  *time.Time  `json:"last_login,omitempty"`
}

func NewUserOut(u *User) *UserOut {
  return &UserOut{
    ID:         u.ID,
    Email:      u.Email,
    Username:   u.Username,
    FirstName:  u.FirstName,
    LastName:   u.LastName,
    Role:       u.Role,
    Bio:        u.Bio,
    Phone:      u.Phone,
    AvatarURL:  u.AvatarURL,
    IsActive:   u.IsActive,
    DateJoined: u.DateJoined,
    LastLogin:  u.LastLogin,
  }
}

type TokenResponse struct {
  AccessToken string    `json:"access_token"`
  TokenType   string    `json:"token_type"`
  User        *UserOut  `json:"user"`
}

type CourseOut struct {
  ID              uint         `json:"id"`
  Title           string       `json:"title"`
  Slug            string       `json:"slug"`
  Description     string       `json:"description"`
  Category        string       `json:"category"`
  Level           CourseLevel  `json:"level"`
  InstructorID    uint         `json:"instructor_id"`
  InstructorName  string       `json:"instructor_name"`
  IsActive        bool         `json:"is_active"`
  CreatedAt       time.Time    `json:"created_at"`
  UpdatedAt       time.Time    `json:"updated_at"`
  EnrollmentCount int64        `json:"enrollment_count"`
}

func NewCourseOut(c *Course, enrollmentCount int64) *CourseOut {
  out := &CourseOut{
    ID:              c.ID,
    Title:           c.Title,
    Slug:            c.Slug,
    Description:     c.Description,
    Category:        c.Category,
    Level:           c.Level,
    InstructorID:    c.InstructorID,
    IsActive:        c.IsActive,
    CreatedAt:       c.CreatedAt,
    UpdatedAt:       c.UpdatedAt,
    EnrollmentCount: enrollmentCount,
  }
  if c.Instructor != nil {
    out.InstructorName = c.Instructor.FullName()
  }
  return out
}

type CourseDetailOut struct {
  CourseOut
  Lessons     []*LessonOut     `json:"lessons"`
  Assignments []*AssignmentOut `json:"assignments"`
}

func NewCourseDetailOut(c *Course, enrollmentCount int64, now time.Time) *CourseDetailOut {
  detail := &CourseDetailOut{
    CourseOut:   *NewCourseOut(c, enrollmentCount),
    Lessons:     make([]*LessonOut, 0, len(c.Lessons)),
    Assignments: make([]*AssignmentOut, 0, len(c.Assignments)),
  }
  for i := range c.Lessons {
    detail.Lessons = append(detail.Lessons, NewLessonOut(&c.Lessons[i]))
  }
  for i := range c.Assignments {
    detail.Assignments = append(detail.Assignments, NewAssignmentOut(&c.Assignments[i], now))
  }
  return detail
}

type EnrollmentOut struct {
  ID         uint       `json:"id"`
  StudentID  uint       `json:"student_id"`
  CourseID   uint       `json:"course_id"`
  EnrolledAt time.Time  `json:"enrolled_at"`
  IsActive   bool       `json:"is_active"`
  Progress   float64    `json:"progress"`
}

func NewEnrollmentOut(e *Enrollment) *EnrollmentOut {
  return &EnrollmentOut{
    ID:         e.ID,
    StudentID:  e.StudentID,
    CourseID:   e.CourseID,
    EnrolledAt: e.EnrolledAt,
    IsActive:   e.IsActive,
    Progress:   e.Progress,
  }
}

type LessonOut struct {
  ID              uint       `json:"id"`
  CourseID        uint       `json:"course_id"`
  Title           string     `json:"title"`
  Slug            string     `json:"slug"`
  Description     string     `json:"description"`
  Content         string     `json:"content"`
  VideoURL        string     `json:"video_url"`
  DurationMinutes int        `json:"duration_minutes"`
  Order           int        `json:"order"`
  IsPublished     bool       `json:"is_published"`
  CreatedAt       time.Time  `json:"created_at"`
  UpdatedAt       time.Time  `json:"updated_at"`
}

func NewLessonOut(l *Lesson) *LessonOut {
  return &LessonOut{
    ID:              l.ID,
    CourseID:        l.CourseID,
    Title:           l.Title,
    Slug:            l.Slug,
    Description:     l.Description,
    Content:         l.Content,
    VideoURL:        l.VideoURL,
    DurationMinutes: l.DurationMinutes,
    Order:           l.Order,
    IsPublished:     l.IsPublished,
    CreatedAt:       l.CreatedAt,
    UpdatedAt:       l.UpdatedAt,
  }
}

type AssignmentOut struct {
  ID            uint       `json:"id"`
  CourseID      uint       `json:"course_id"`
  Title         string     `json:"title"`
  Description   string     `json:"description"`
  Instructions  string     `json:"instructions"`
  MaxScore      int        `json:"max_score"`
  DueDate       time.Time  `json:"due_date"`
  AttachmentURL string     `json:"attachment_url"`
  CreatedAt     time.Time  `json:"created_at"`
  IsOverdue     bool       `json:"is_overdue"`
  AverageScore  float64    `json:"average_score"`
}

func NewAssignmentOut(a *Assignment, now time.Time) *AssignmentOut {
  return &AssignmentOut{
    ID:            a.ID,
    CourseID:      a.CourseID,
    Title:         a.Title,
    Description:   a.Description,
    Instructions:  a.Instructions,
    MaxScore:      a.MaxScore,
    DueDate:       a.DueDate,
    AttachmentURL: a.AttachmentURL,
    CreatedAt:     a.CreatedAt,
    IsOverdue:     a.IsOverdue(now),
  }
}

type SubmissionOut struct {
  ID            uint        `json:"id"`
  AssignmentID  uint        `json:"assignment_id"`
  StudentID     uint        `json:"student_id"`
  Content       string      `json:"content"`
  AttachmentURL string      `json:"attachment_url"`
  SubmittedAt   time.Time   `json:"submitted_at"`
  UpdatedAt     time.Time   `json:"updated_at"`
  Score         *float64    `json:"score"`
  Feedback      string      `json:"feedback"`
  GradedAt      *time.Time  `json:"graded_at"`
  GradedByID    *uint       `json:"graded_by_id"`
  IsLate        bool        `json:"is_late"`
  IsGraded      bool        `json:"is_graded"`
}

func NewSubmissionOut(s *Submission) *SubmissionOut {
  return &SubmissionOut{
    ID:            s.ID,
    AssignmentID:  s.AssignmentID,
    StudentID:     s.StudentID,
    Content:       s.Content,
    AttachmentURL: s.AttachmentURL,
    SubmittedAt:   s.SubmittedAt,
    UpdatedAt:     s.UpdatedAt,
    Score:         s.Score,
    Feedback:      s.Feedback,
    GradedAt:      s.GradedAt,
    GradedByID:    s.GradedByID,
    IsLate:        s.IsLate(),
    IsGraded:      s.IsGraded(),
  }
}

type MessageResponse struct {
  Message string `json:"message"`
}
