package main

import (
  "fmt"
  "os"
  "time"

  "github.com/joho/godotenv"

  "github.com/edukita/lms-backend/internal/cache"
  "github.com/edukita/lms-backend/internal/db"
  "github.com/edukita/lms-backend/internal/handlers"
  "github.com/edukita/lms-backend/internal/logger"
  "github.com/edukita/lms-backend/internal/middleware"
  "github.com/edukita/lms-backend/internal/repos"
  "github.com/edukita/lms-backend/internal/server"
  "github.com/edukita/lms-backend/internal/services"
  "github.com/edukita/lms-backend/internal/utils"
)

func main() {
  _ = godotenv.Load()

  // Logger
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

  // Env
  log.Info("Loading environment variables from main...")
  port := utils.GetEnv("PORT", "8080", log)
  jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
  jwtExpirationHours := utils.GetEnvAsInt("JWT_EXPIRATION_HOURS", 24, log)
  cacheTTLSeconds := utils.GetEnvAsInt("REDIS_CACHE_TTL_SECONDS", 300, log)
  accessTTL := time.Duration(jwtExpirationHours) * time.Hour
  cacheTTL := time.Duration(cacheTTLSeconds) * time.Second

  // Postgres
  postgresService, err := db.NewPostgresService(log)
  if err != nil {
    log.Fatal("Postgres init failed", "error", err)
  }
  if err = postgresService.AutoMigrateAll(); err != nil {
    log.Fatal("Postgres auto migration failed", "error", err)
  }
  thePG := postgresService.DB()

  // Cache
  var store cache.Store
  if os.Getenv("REDIS_ADDR") != "" {
    store, err = cache.NewRedisStore(log)
    if err != nil {
      log.Warn("Redis init failed, using in-memory cache", "error", err)
      store = cache.NewMemoryStore()
    }
  } else {
    log.Info("REDIS_ADDR not set, using in-memory cache")
    store = cache.NewMemoryStore()
  }

  // Repos
  log.Info("Setting up Repos from main...")
  userRepo := repos.NewUserRepo(thePG, log)
  courseRepo := repos.NewCourseRepo(thePG, log)
  lessonRepo := repos.NewLessonRepo(thePG, log)
  assignmentRepo := repos.NewAssignmentRepo(thePG, log)
  enrollmentRepo := repos.NewEnrollmentRepo(thePG, log)
  submissionRepo := repos.NewSubmissionRepo(thePG, log)

  // Services
  log.Info("Setting up Services from main...")
  authService := services.NewAuthService(thePG, log, userRepo, jwtSecretKey, accessTTL)
  userService := services.NewUserService(thePG, log, userRepo)
  courseService := services.NewCourseService(thePG, log, courseRepo, store, cacheTTL)
  lessonService := services.NewLessonService(thePG, log, courseRepo, lessonRepo, store)
  assignmentService := services.NewAssignmentService(thePG, log, courseRepo, assignmentRepo, store)
  enrollmentService := services.NewEnrollmentService(thePG, log, courseRepo, enrollmentRepo, store)
  submissionService := services.NewSubmissionService(thePG, log, assignmentRepo, submissionRepo)

  // Handlers
  log.Info("Setting up Handlers from main...")
  authHandler := handlers.NewAuthHandler(authService)
  userHandler := handlers.NewUserHandler(userService)
  courseHandler := handlers.NewCourseHandler(courseService)
  lessonHandler := handlers.NewLessonHandler(lessonService)
  assignmentHandler := handlers.NewAssignmentHandler(assignmentService)
  enrollmentHandler := handlers.NewEnrollmentHandler(enrollmentService)
  submissionHandler := handlers.NewSubmissionHandler(submissionService)

  // Middleware
  authMiddleware := middleware.NewAuthMiddleware(log, authService)

  // Router
  router := server.NewRouter(server.RouterConfig{
    Log:               log,
    AuthMiddleware:    authMiddleware,
    AuthHandler:       authHandler,
    UserHandler:       userHandler,
    CourseHandler:     courseHandler,
    LessonHandler:     lessonHandler,
    AssignmentHandler: assignmentHandler,
    EnrollmentHandler: enrollmentHandler,
    SubmissionHandler: submissionHandler,
  })

  log.Info("Starting server...", "port", port)
  if err := router.Run(":" + port); err != nil {
    log.Fatal("Server failed", "error", err)
  }
}
