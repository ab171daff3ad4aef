package services

import (
  "context"
  "fmt"
  "strings"
  "testing"
  "time"

  "gorm.io/driver/sqlite"
  "gorm.io/gorm"

  "github.com/edukita/lms-backend/internal/apierr"
  "github.com/edukita/lms-backend/internal/logger"
  "github.com/edukita/lms-backend/internal/requestdata"
  "github.com/edukita/lms-backend/internal/types"
  "github.com/edukita/lms-backend/internal/utils"
)

func newTestLogger(t *testing.T) *logger.Logger {
  t.Helper()
  log, err := logger.New("production")
  if err != nil {
    t.Fatalf("failed to init test logger: %v", err)
  }
  return log
}

// newTestDB opens an isolated in-memory database per test, with the same
// schema and error translation the server uses.
func newTestDB(t *testing.T) *gorm.DB {
  t.Helper()
  name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
  dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)
  gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
  if err != nil {
    t.Fatalf("failed to open test db: %v", err)
  }
  if err := gdb.AutoMigrate(
    &types.User{},
    &types.Course{},
    &types.Enrollment{},
    &types.Lesson{},
    &types.Assignment{},
    &types.Submission{},
  ); err != nil {
    t.Fatalf("failed to migrate test db: %v", err)
  }
  return gdb
}

func createTestUser(t *testing.T, gdb *gorm.DB, role types.Role, username string) *types.User {
  t.Helper()
  hash, err := utils.HashPassword("password123")
  if err != nil {
    t.Fatalf("failed to hash password: %v", err)
  }
  user := &types.User{
    Email:    username + "@example.com",
    Username: username,
    Password: hash,
    Role:     role,
    IsActive: true,
  }
  if err := gdb.Create(user).Error; err != nil {
    t.Fatalf("failed to create user %s: %v", username, err)
  }
  return user
}

func createTestCourse(t *testing.T, gdb *gorm.DB, instructorID uint, slug string) *types.Course {
  t.Helper()
  course := &types.Course{
    Title:        "Course " + slug,
    Slug:         slug,
    Description:  "test course",
    InstructorID: instructorID,
    Category:     "programming",
    Level:        types.LevelBeginner,
    IsActive:     true,
  }
  if err := gdb.Create(course).Error; err != nil {
    t.Fatalf("failed to create course %s: %v", slug, err)
  }
  return course
}

func createTestAssignment(t *testing.T, gdb *gorm.DB, courseID uint, due time.Time) *types.Assignment {
  t.Helper()
  assignment := &types.Assignment{
    CourseID:    courseID,
    Title:       "Assignment",
    Description: "test assignment",
    MaxScore:    100,
    DueDate:     due,
  }
  if err := gdb.Create(assignment).Error; err != nil {
    t.Fatalf("failed to create assignment: %v", err)
  }
  return assignment
}

func ctxAs(user *types.User) context.Context {
  return requestdata.WithRequestData(context.Background(), &requestdata.RequestData{
    UserID:   user.ID,
    Username: user.Username,
    Role:     user.Role,
  })
}

func wantAPIError(t *testing.T, err error, status int) *apierr.Error {
  t.Helper()
  if err == nil {
    t.Fatal("expected an error")
  }
  ae, ok := apierr.As(err)
  if !ok {
    t.Fatalf("expected an api error, got %v", err)
  }
  if ae.Status != status {
    t.Fatalf("expected status %d, got %d (%v)", status, ae.Status, ae)
  }
  return ae
}
