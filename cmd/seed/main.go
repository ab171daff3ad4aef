package main

import (
  "fmt"
  "os"
  "time"

  "github.com/joho/godotenv"
  "gorm.io/gorm"

  "github.com/edukita/lms-backend/internal/db"
  "github.com/edukita/lms-backend/internal/logger"
  "github.com/edukita/lms-backend/internal/types"
  "github.com/edukita/lms-backend/internal/utils"
)

// Seeds a demo dataset. Safe to re-run: users are looked up by email and
// courses by slug before anything is inserted.
func main() {
  _ = godotenv.Load()

  logMode := os.Getenv("LOG_MODE")
  if logMode == "" {
    logMode = "development"
  }
  log, err := logger.New(logMode)
  if err != nil {
    fmt.Printf("Failed to init logger: %v\n", err)
    os.Exit(1)
  }
  defer log.Sync()

  postgresService, err := db.NewPostgresService(log)
  if err != nil {
    log.Fatal("Postgres init failed", "error", err)
  }
  if err = postgresService.AutoMigrateAll(); err != nil {
    log.Fatal("Postgres auto migration failed", "error", err)
  }
  thePG := postgresService.DB()

  password := utils.GetEnv("SEED_PASSWORD", "changeme123", log)

  seedUser(thePG, log, "admin@edukita.local", "admin", password, types.RoleAdmin, "Site", "Admin")
  instructor := seedUser(thePG, log, "instructor@edukita.local", "instructor", password, types.RoleInstructor, "Ida", "Instructor")
  student := seedUser(thePG, log, "student@edukita.local", "student", password, types.RoleStudent, "Sam", "Student")

  course := seedCourse(thePG, log, instructor.ID)
  seedLesson(thePG, log, course.ID)
  seedAssignment(thePG, log, course.ID)
  seedEnrollment(thePG, log, student.ID, course.ID)

  log.Info("Seed complete")
}

func seedUser(pg *gorm.DB, log *logger.Logger, email, username, password string, role types.Role, first, last string) *types.User {
  var existing types.User
  if err := pg.Where("email = ?", email).First(&existing).Error; err == nil {
    log.Info("User already present, skipping", "email", email)
    return &existing
  }

  hash, err := utils.HashPassword(password)
  if err != nil {
    log.Fatal("Failed to hash password", "error", err)
  }
  user := &types.User{
    Email:     email,
    Username:  username,
    Password:  hash,
    FirstName: first,
    LastName:  last,
    Role:      role,
    IsActive:  true,
  }
  if err := pg.Create(user).Error; err != nil {
    log.Fatal("Failed to create user", "email", email, "error", err)
  }
  log.Info("Created user", "email", email, "role", role)
  return user
}

func seedCourse(pg *gorm.DB, log *logger.Logger, instructorID uint) *types.Course {
  var existing types.Course
  if err := pg.Where("slug = ?", "intro-to-go").First(&existing).Error; err == nil {
    log.Info("Course already present, skipping", "slug", existing.Slug)
    return &existing
  }

  course := &types.Course{
    Title:        "Introduction to Go",
    Slug:         "intro-to-go",
    Description:  "Foundations of the Go programming language.",
    InstructorID: instructorID,
    Category:     "programming",
    Level:        types.LevelBeginner,
    IsActive:     true,
  }
  if err := pg.Create(course).Error; err != nil {
    log.Fatal("Failed to create course", "error", err)
  }
  log.Info("Created course", "slug", course.Slug)
  return course
}

func seedLesson(pg *gorm.DB, log *logger.Logger, courseID uint) {
  var existing types.Lesson
  if err := pg.Where("course_id = ? AND slug = ?", courseID, "getting-started").First(&existing).Error; err == nil {
    log.Info("Lesson already present, skipping", "slug", existing.Slug)
    return
  }

  lesson := &types.Lesson{
    CourseID:        courseID,
    Title:           "Getting Started",
    Slug:            "getting-started",
    Description:     "Installing the toolchain and writing the first program.",
    Content:         "Install Go, set up your editor, run hello world.",
    DurationMinutes: 30,
    Order:           1,
    IsPublished:     true,
  }
  if err := pg.Create(lesson).Error; err != nil {
    log.Fatal("Failed to create lesson", "error", err)
  }
  log.Info("Created lesson", "slug", lesson.Slug)
}

func seedEnrollment(pg *gorm.DB, log *logger.Logger, studentID, courseID uint) {
  var existing types.Enrollment
  if err := pg.Where("student_id = ? AND course_id = ?", studentID, courseID).First(&existing).Error; err == nil {
    log.Info("Enrollment already present, skipping", "student_id", studentID, "course_id", courseID)
    return
  }

  enrollment := &types.Enrollment{StudentID: studentID, CourseID: courseID, IsActive: true}
  if err := pg.Create(enrollment).Error; err != nil {
    log.Fatal("Failed to create enrollment", "error", err)
  }
  log.Info("Created enrollment", "student_id", studentID, "course_id", courseID)
}

func seedAssignment(pg *gorm.DB, log *logger.Logger, courseID uint) {
  var existing types.Assignment
  if err := pg.Where("course_id = ? AND title = ?", courseID, "Hello World").First(&existing).Error; err == nil {
    log.Info("Assignment already present, skipping", "title", existing.Title)
    return
  }

  assignment := &types.Assignment{
    CourseID:    courseID,
    Title:       "Hello World",
    Description: "Write and submit a hello world program.",
    MaxScore:    100,
    DueDate:     time.Now().AddDate(0, 0, 14),
  }
  if err := pg.Create(assignment).Error; err != nil {
    log.Fatal("Failed to create assignment", "error", err)
  }
  log.Info("Created assignment", "title", assignment.Title)
}
