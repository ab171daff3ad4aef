package types

import (
  "testing"
  "time"
)

func TestAssignment_IsOverdue(t *testing.T) {
  due := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
  a := &Assignment{DueDate: due}

  tests := []struct {
    name string
    now  time.Time
    want bool
  }{
    {"before due", due.Add(-time.Minute), false},
    {"exactly due", due, false},
    {"after due", due.Add(time.Minute), true},
  }
  for _, tt := range tests {
    t.Run(tt.name, func(t *testing.T) {
      if got := a.IsOverdue(tt.now); got != tt.want {
        t.Fatalf("IsOverdue(%v) = %v, want %v", tt.now, got, tt.want)
      }
    })
  }
}

func TestSubmission_IsLate(t *testing.T) {
  due := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
  assignment := &Assignment{DueDate: due}

  tests := []struct {
    name        string
    submittedAt time.Time
    assignment  *Assignment
    want        bool
  }{
    {"on time", due.Add(-time.Hour), assignment, false},
    {"at the deadline", due, assignment, false},
    {"late", due.Add(time.Hour), assignment, true},
    {"no assignment loaded", due.Add(time.Hour), nil, false},
  }
  for _, tt := range tests {
    t.Run(tt.name, func(t *testing.T) {
      s := &Submission{SubmittedAt: tt.submittedAt, Assignment: tt.assignment}
      if got := s.IsLate(); got != tt.want {
        t.Fatalf("IsLate() = %v, want %v", got, tt.want)
      }
    })
  }
}

func TestSubmission_IsGraded(t *testing.T) {
  if (&Submission{}).IsGraded() {
    t.Fatal("ungraded submission reported as graded")
  }
  score := 0.0
  if !(&Submission{Score: &score}).IsGraded() {
    t.Fatal("a zero score still counts as graded")
  }
}

func TestUser_FullName(t *testing.T) {
  tests := []struct {
    name string
    user User
    want string
  }{
    {"both names", User{FirstName: "Ada", LastName: "Lovelace", Username: "ada"}, "Ada Lovelace"},
    {"first only", User{FirstName: "Ada", Username: "ada"}, "Ada"},
    {"falls back to username", User{Username: "ada"}, "ada"},
  }
  for _, tt := range tests {
    t.Run(tt.name, func(t *testing.T) {
      if got := tt.user.FullName(); got != tt.want {
        t.Fatalf("FullName() = %q, want %q", got, tt.want)
      }
    })
  }
}
