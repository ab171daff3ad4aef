package services

import (
  "context"
  "net/http"
  "testing"
  "time"

  "gorm.io/gorm"

  "github.com/edukita/lms-backend/internal/cache"
  "github.com/edukita/lms-backend/internal/repos"
  "github.com/edukita/lms-backend/internal/types"
)

type courseEnv struct {
  gdb     *gorm.DB
  store   *cache.MemoryStore
  service CourseService
}

func newCourseEnv(t *testing.T) *courseEnv {
  t.Helper()
  gdb := newTestDB(t)
  log := newTestLogger(t)
  store := cache.NewMemoryStore()
  return &courseEnv{
    gdb:     gdb,
    store:   store,
    service: NewCourseService(gdb, log, repos.NewCourseRepo(gdb, log), store, time.Minute),
  }
}

func TestCourseService_Create(t *testing.T) {
  env := newCourseEnv(t)
  instructor := createTestUser(t, env.gdb, types.RoleInstructor, "ida")

  course, err := env.service.Create(ctxAs(instructor), CourseCreateInput{
    Title:       "Go Basics",
    Slug:        "go-basics",
    Description: "Getting started with Go",
    Category:    "programming",
  })
  if err != nil {
    t.Fatalf("Create failed: %v", err)
  }
  if course.Level != types.LevelBeginner {
    t.Fatalf("expected default beginner level, got %q", course.Level)
  }
  if course.InstructorID != instructor.ID {
    t.Fatalf("expected instructor %d, got %d", instructor.ID, course.InstructorID)
  }
  if course.EnrollmentCount != 0 {
    t.Fatalf("expected zero enrollments, got %d", course.EnrollmentCount)
  }
}

func TestCourseService_CreateForbiddenForStudents(t *testing.T) {
  env := newCourseEnv(t)
  student := createTestUser(t, env.gdb, types.RoleStudent, "sam")

  _, err := env.service.Create(ctxAs(student), CourseCreateInput{
    Title: "Nope", Slug: "nope", Description: "x", Category: "x",
  })
  wantAPIError(t, err, http.StatusForbidden)
}

func TestCourseService_CreateDuplicateSlug(t *testing.T) {
  env := newCourseEnv(t)
  instructor := createTestUser(t, env.gdb, types.RoleInstructor, "ida")
  createTestCourse(t, env.gdb, instructor.ID, "go-basics")

  _, err := env.service.Create(ctxAs(instructor), CourseCreateInput{
    Title: "Go Basics Again", Slug: "go-basics", Description: "x", Category: "x",
  })
  ae := wantAPIError(t, err, http.StatusBadRequest)
  if ae.Code != "duplicate" {
    t.Fatalf("expected duplicate code, got %q", ae.Code)
  }
}

func TestCourseService_UpdateOwnership(t *testing.T) {
  env := newCourseEnv(t)
  owner := createTestUser(t, env.gdb, types.RoleInstructor, "owner")
  other := createTestUser(t, env.gdb, types.RoleInstructor, "other")
  admin := createTestUser(t, env.gdb, types.RoleAdmin, "admin")
  course := createTestCourse(t, env.gdb, owner.ID, "go-basics")

  newTitle := "Go Basics, Revised"

  t.Run("non-owner forbidden", func(t *testing.T) {
    _, err := env.service.Update(ctxAs(other), course.ID, CourseUpdateInput{Title: &newTitle})
    wantAPIError(t, err, http.StatusForbidden)
  })

  t.Run("owner can update", func(t *testing.T) {
    updated, err := env.service.Update(ctxAs(owner), course.ID, CourseUpdateInput{Title: &newTitle})
    if err != nil {
      t.Fatalf("Update failed: %v", err)
    }
    if updated.Title != newTitle {
      t.Fatalf("title not updated: %q", updated.Title)
    }
    if updated.Category != "programming" {
      t.Fatalf("untouched field changed: %q", updated.Category)
    }
  })

  t.Run("admin can update", func(t *testing.T) {
    inactive := false
    updated, err := env.service.Update(ctxAs(admin), course.ID, CourseUpdateInput{IsActive: &inactive})
    if err != nil {
      t.Fatalf("Update failed: %v", err)
    }
    if updated.IsActive {
      t.Fatal("expected course to be deactivated")
    }
  })
}

func TestCourseService_GetDetail(t *testing.T) {
  env := newCourseEnv(t)
  instructor := createTestUser(t, env.gdb, types.RoleInstructor, "ida")
  course := createTestCourse(t, env.gdb, instructor.ID, "go-basics")

  lesson := &types.Lesson{CourseID: course.ID, Title: "Intro", Slug: "intro", Order: 1}
  if err := env.gdb.Create(lesson).Error; err != nil {
    t.Fatalf("failed to create lesson: %v", err)
  }
  createTestAssignment(t, env.gdb, course.ID, time.Now().Add(24*time.Hour))

  detail, err := env.service.GetDetail(context.Background(), course.ID)
  if err != nil {
    t.Fatalf("GetDetail failed: %v", err)
  }
  if len(detail.Lessons) != 1 || detail.Lessons[0].Slug != "intro" {
    t.Fatalf("unexpected lessons: %+v", detail.Lessons)
  }
  if len(detail.Assignments) != 1 {
    t.Fatalf("expected one assignment, got %d", len(detail.Assignments))
  }

  _, err = env.service.GetDetail(context.Background(), 9999)
  wantAPIError(t, err, http.StatusNotFound)
}

func TestCourseService_ListFiltersAndActiveOnly(t *testing.T) {
  env := newCourseEnv(t)
  instructor := createTestUser(t, env.gdb, types.RoleInstructor, "ida")
  createTestCourse(t, env.gdb, instructor.ID, "go-basics")

  advanced := createTestCourse(t, env.gdb, instructor.ID, "go-advanced")
  if err := env.gdb.Model(advanced).Update("level", types.LevelAdvanced).Error; err != nil {
    t.Fatalf("failed to update level: %v", err)
  }

  hidden := createTestCourse(t, env.gdb, instructor.ID, "go-hidden")
  if err := env.gdb.Model(hidden).Update("is_active", false).Error; err != nil {
    t.Fatalf("failed to deactivate course: %v", err)
  }

  all, err := env.service.List(context.Background(), repos.CourseFilter{})
  if err != nil {
    t.Fatalf("List failed: %v", err)
  }
  if len(all) != 2 {
    t.Fatalf("expected 2 active courses, got %d", len(all))
  }

  onlyAdvanced, err := env.service.List(context.Background(), repos.CourseFilter{Level: string(types.LevelAdvanced)})
  if err != nil {
    t.Fatalf("List failed: %v", err)
  }
  if len(onlyAdvanced) != 1 || onlyAdvanced[0].Slug != "go-advanced" {
    t.Fatalf("unexpected filter result: %+v", onlyAdvanced)
  }
}

func TestCourseService_ListUsesCache(t *testing.T) {
  env := newCourseEnv(t)
  instructor := createTestUser(t, env.gdb, types.RoleInstructor, "ida")
  createTestCourse(t, env.gdb, instructor.ID, "go-basics")
  ctx := context.Background()

  first, err := env.service.List(ctx, repos.CourseFilter{})
  if err != nil {
    t.Fatalf("List failed: %v", err)
  }
  if len(first) != 1 {
    t.Fatalf("expected 1 course, got %d", len(first))
  }

  // A write that bypasses the service is invisible while the entry lives.
  createTestCourse(t, env.gdb, instructor.ID, "go-sneaky")
  cached, err := env.service.List(ctx, repos.CourseFilter{})
  if err != nil {
    t.Fatalf("List failed: %v", err)
  }
  if len(cached) != 1 {
    t.Fatalf("expected cached list of 1, got %d", len(cached))
  }

  // A write through the service clears the namespace.
  if _, err := env.service.Create(ctxAs(instructor), CourseCreateInput{
    Title: "Go Testing", Slug: "go-testing", Description: "x", Category: "x",
  }); err != nil {
    t.Fatalf("Create failed: %v", err)
  }
  fresh, err := env.service.List(ctx, repos.CourseFilter{})
  if err != nil {
    t.Fatalf("List failed: %v", err)
  }
  if len(fresh) != 3 {
    t.Fatalf("expected 3 courses after invalidation, got %d", len(fresh))
  }
}

func TestCourseService_DeleteCascades(t *testing.T) {
  env := newCourseEnv(t)
  owner := createTestUser(t, env.gdb, types.RoleInstructor, "owner")
  student := createTestUser(t, env.gdb, types.RoleStudent, "sam")
  course := createTestCourse(t, env.gdb, owner.ID, "go-basics")

  lesson := &types.Lesson{CourseID: course.ID, Title: "Intro", Slug: "intro", Order: 1}
  if err := env.gdb.Create(lesson).Error; err != nil {
    t.Fatalf("failed to create lesson: %v", err)
  }
  enrollment := &types.Enrollment{StudentID: student.ID, CourseID: course.ID, IsActive: true}
  if err := env.gdb.Create(enrollment).Error; err != nil {
    t.Fatalf("failed to create enrollment: %v", err)
  }

  if err := env.service.Delete(ctxAs(owner), course.ID); err != nil {
    t.Fatalf("Delete failed: %v", err)
  }

  var lessons int64
  if err := env.gdb.Model(&types.Lesson{}).Where("course_id = ?", course.ID).Count(&lessons).Error; err != nil {
    t.Fatalf("count lessons: %v", err)
  }
  if lessons != 0 {
    t.Fatalf("expected lessons to cascade, %d remain", lessons)
  }
  var enrollments int64
  if err := env.gdb.Model(&types.Enrollment{}).Where("course_id = ?", course.ID).Count(&enrollments).Error; err != nil {
    t.Fatalf("count enrollments: %v", err)
  }
  if enrollments != 0 {
    t.Fatalf("expected enrollments to cascade, %d remain", enrollments)
  }
}
