package services

import (
  "net/http"
  "testing"
  "time"

  "gorm.io/gorm"

  "github.com/edukita/lms-backend/internal/repos"
  "github.com/edukita/lms-backend/internal/types"
)

type submissionEnv struct {
  gdb     *gorm.DB
  service SubmissionService
}

func newSubmissionEnv(t *testing.T) *submissionEnv {
  t.Helper()
  gdb := newTestDB(t)
  log := newTestLogger(t)
  return &submissionEnv{
    gdb: gdb,
    service: NewSubmissionService(
      gdb, log,
      repos.NewAssignmentRepo(gdb, log),
      repos.NewSubmissionRepo(gdb, log),
    ),
  }
}

func TestSubmissionService_Submit(t *testing.T) {
  env := newSubmissionEnv(t)
  instructor := createTestUser(t, env.gdb, types.RoleInstructor, "ida")
  student := createTestUser(t, env.gdb, types.RoleStudent, "sam")
  course := createTestCourse(t, env.gdb, instructor.ID, "go-basics")
  assignment := createTestAssignment(t, env.gdb, course.ID, time.Now().Add(24*time.Hour))

  submission, err := env.service.Submit(ctxAs(student), SubmissionCreateInput{
    AssignmentID: assignment.ID,
    Content:      "my homework",
  })
  if err != nil {
    t.Fatalf("Submit failed: %v", err)
  }
  if submission.IsLate {
    t.Fatal("submission before the due date should not be late")
  }
  if submission.IsGraded {
    t.Fatal("fresh submission should not be graded")
  }
}

func TestSubmissionService_SubmitLate(t *testing.T) {
  env := newSubmissionEnv(t)
  instructor := createTestUser(t, env.gdb, types.RoleInstructor, "ida")
  student := createTestUser(t, env.gdb, types.RoleStudent, "sam")
  course := createTestCourse(t, env.gdb, instructor.ID, "go-basics")
  assignment := createTestAssignment(t, env.gdb, course.ID, time.Now().Add(-time.Hour))

  submission, err := env.service.Submit(ctxAs(student), SubmissionCreateInput{
    AssignmentID: assignment.ID,
    Content:      "better late than never",
  })
  if err != nil {
    t.Fatalf("Submit failed: %v", err)
  }
  if !submission.IsLate {
    t.Fatal("submission after the due date should be late")
  }
}

func TestSubmissionService_SubmitTwiceKeepsOriginal(t *testing.T) {
  env := newSubmissionEnv(t)
  instructor := createTestUser(t, env.gdb, types.RoleInstructor, "ida")
  student := createTestUser(t, env.gdb, types.RoleStudent, "sam")
  course := createTestCourse(t, env.gdb, instructor.ID, "go-basics")
  assignment := createTestAssignment(t, env.gdb, course.ID, time.Now().Add(24*time.Hour))

  first, err := env.service.Submit(ctxAs(student), SubmissionCreateInput{
    AssignmentID: assignment.ID,
    Content:      "original",
  })
  if err != nil {
    t.Fatalf("Submit failed: %v", err)
  }

  _, err = env.service.Submit(ctxAs(student), SubmissionCreateInput{
    AssignmentID: assignment.ID,
    Content:      "revised",
  })
  ae := wantAPIError(t, err, http.StatusBadRequest)
  if ae.Code != "duplicate" {
    t.Fatalf("expected duplicate code, got %q", ae.Code)
  }

  var stored types.Submission
  if err := env.gdb.First(&stored, first.ID).Error; err != nil {
    t.Fatalf("failed to reload submission: %v", err)
  }
  if stored.Content != "original" {
    t.Fatalf("duplicate submit overwrote content: %q", stored.Content)
  }
}

func TestSubmissionService_OnlyStudentsSubmit(t *testing.T) {
  env := newSubmissionEnv(t)
  instructor := createTestUser(t, env.gdb, types.RoleInstructor, "ida")
  course := createTestCourse(t, env.gdb, instructor.ID, "go-basics")
  assignment := createTestAssignment(t, env.gdb, course.ID, time.Now().Add(24*time.Hour))

  _, err := env.service.Submit(ctxAs(instructor), SubmissionCreateInput{
    AssignmentID: assignment.ID,
    Content:      "instructors cannot submit",
  })
  wantAPIError(t, err, http.StatusForbidden)
}

func TestSubmissionService_Grade(t *testing.T) {
  env := newSubmissionEnv(t)
  owner := createTestUser(t, env.gdb, types.RoleInstructor, "owner")
  other := createTestUser(t, env.gdb, types.RoleInstructor, "other")
  student := createTestUser(t, env.gdb, types.RoleStudent, "sam")
  course := createTestCourse(t, env.gdb, owner.ID, "go-basics")
  assignment := createTestAssignment(t, env.gdb, course.ID, time.Now().Add(24*time.Hour))

  submitted, err := env.service.Submit(ctxAs(student), SubmissionCreateInput{
    AssignmentID: assignment.ID,
    Content:      "my homework",
  })
  if err != nil {
    t.Fatalf("Submit failed: %v", err)
  }

  t.Run("non-owner forbidden", func(t *testing.T) {
    _, err := env.service.Grade(ctxAs(other), submitted.ID, 90, "nice")
    wantAPIError(t, err, http.StatusForbidden)
  })

  t.Run("score out of range", func(t *testing.T) {
    _, err := env.service.Grade(ctxAs(owner), submitted.ID, 101, "too generous")
    wantAPIError(t, err, http.StatusBadRequest)
  })

  t.Run("owner grades", func(t *testing.T) {
    graded, err := env.service.Grade(ctxAs(owner), submitted.ID, 90, "nice work")
    if err != nil {
      t.Fatalf("Grade failed: %v", err)
    }
    if !graded.IsGraded {
      t.Fatal("expected submission to be graded")
    }
    if graded.Score == nil || *graded.Score != 90 {
      t.Fatalf("unexpected score: %+v", graded.Score)
    }
    if graded.Feedback != "nice work" {
      t.Fatalf("unexpected feedback: %q", graded.Feedback)
    }
    if graded.GradedAt == nil || graded.GradedAt.Before(graded.SubmittedAt) {
      t.Fatalf("graded_at should follow submitted_at: %+v", graded)
    }
  })

  t.Run("admin grades anywhere", func(t *testing.T) {
    admin := createTestUser(t, env.gdb, types.RoleAdmin, "admin")
    if _, err := env.service.Grade(ctxAs(admin), submitted.ID, 95, "regraded"); err != nil {
      t.Fatalf("Grade failed: %v", err)
    }
  })
}

func TestSubmissionService_MySubmissions(t *testing.T) {
  env := newSubmissionEnv(t)
  instructor := createTestUser(t, env.gdb, types.RoleInstructor, "ida")
  sam := createTestUser(t, env.gdb, types.RoleStudent, "sam")
  pat := createTestUser(t, env.gdb, types.RoleStudent, "pat")
  course := createTestCourse(t, env.gdb, instructor.ID, "go-basics")
  a1 := createTestAssignment(t, env.gdb, course.ID, time.Now().Add(24*time.Hour))
  a2 := createTestAssignment(t, env.gdb, course.ID, time.Now().Add(48*time.Hour))

  for _, in := range []SubmissionCreateInput{
    {AssignmentID: a1.ID, Content: "sam a1"},
    {AssignmentID: a2.ID, Content: "sam a2"},
  } {
    if _, err := env.service.Submit(ctxAs(sam), in); err != nil {
      t.Fatalf("Submit failed: %v", err)
    }
  }
  if _, err := env.service.Submit(ctxAs(pat), SubmissionCreateInput{AssignmentID: a1.ID, Content: "pat a1"}); err != nil {
    t.Fatalf("Submit failed: %v", err)
  }

  mine, err := env.service.MySubmissions(ctxAs(sam))
  if err != nil {
    t.Fatalf("MySubmissions failed: %v", err)
  }
  if len(mine) != 2 {
    t.Fatalf("expected 2 submissions, got %d", len(mine))
  }
  for _, s := range mine {
    if s.StudentID != sam.ID {
      t.Fatalf("got another student's submission: %+v", s)
    }
  }
}
