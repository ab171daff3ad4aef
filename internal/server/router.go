package server

import (
  "github.com/gin-contrib/cors"
  "github.com/gin-gonic/gin"

  "github.com/edukita/lms-backend/internal/handlers"
  "github.com/edukita/lms-backend/internal/logger"
  "github.com/edukita/lms-backend/internal/middleware"
  "github.com/edukita/lms-backend/internal/types"
)

type RouterConfig struct {
  Log               *logger.Logger
  AuthMiddleware    *middleware.AuthMiddleware
  AuthHandler       *handlers.AuthHandler
  UserHandler       *handlers.UserHandler
  CourseHandler     *handlers.CourseHandler
  LessonHandler     *handlers.LessonHandler
  AssignmentHandler *handlers.AssignmentHandler
  EnrollmentHandler *handlers.EnrollmentHandler
  SubmissionHandler *handlers.SubmissionHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
  router := gin.New()
  router.Use(gin.Recovery())
  router.Use(middleware.RequestLog(cfg.Log))

  // Cors
  router.Use(cors.New(cors.Config{
    AllowOrigins: []string{
      "http://localhost:80",
      "http://localhost:3000",
      "http://localhost:5174",
    },
    AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
    AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
    AllowCredentials: true,
  }))

  staff := []types.Role{types.RoleAdmin, types.RoleInstructor}

// ===============
// || Public    ||
// ===============
  router.GET("/health", handlers.HealthCheck)
  api := router.Group("/api")
  {
    api.POST("/auth/register", cfg.AuthHandler.Register)
    api.POST("/auth/login", cfg.AuthHandler.Login)
    api.GET("/courses", cfg.CourseHandler.List)
    api.GET("/courses/:id", cfg.CourseHandler.Get)
  }

// ===============
// || Protected ||
// ===============
  protected := api.Group("/")
  protected.Use(cfg.AuthMiddleware.RequireAuth())
  // Auth
  protected.GET("/auth/me", cfg.AuthHandler.Me)
  // Users
  protected.GET("/users", cfg.AuthMiddleware.RequireRole(types.RoleAdmin), cfg.UserHandler.List)
  protected.GET("/users/:id", cfg.UserHandler.Get)
  protected.PUT("/users/:id", cfg.UserHandler.Update)
  protected.DELETE("/users/:id", cfg.AuthMiddleware.RequireRole(types.RoleAdmin), cfg.UserHandler.Delete)
  // Courses
  protected.POST("/courses", cfg.AuthMiddleware.RequireRole(staff...), cfg.CourseHandler.Create)
  protected.PUT("/courses/:id", cfg.AuthMiddleware.RequireRole(staff...), cfg.CourseHandler.Update)
  protected.DELETE("/courses/:id", cfg.AuthMiddleware.RequireRole(staff...), cfg.CourseHandler.Delete)
  // Lessons
  protected.POST("/lessons", cfg.AuthMiddleware.RequireRole(staff...), cfg.LessonHandler.Create)
  protected.PUT("/lessons/:id", cfg.AuthMiddleware.RequireRole(staff...), cfg.LessonHandler.Update)
  protected.DELETE("/lessons/:id", cfg.AuthMiddleware.RequireRole(staff...), cfg.LessonHandler.Delete)
  // Assignments
  protected.POST("/assignments", cfg.AuthMiddleware.RequireRole(staff...), cfg.AssignmentHandler.Create)
  protected.GET("/assignments/:id", cfg.AssignmentHandler.Get)
  protected.PUT("/assignments/:id", cfg.AuthMiddleware.RequireRole(staff...), cfg.AssignmentHandler.Update)
  protected.DELETE("/assignments/:id", cfg.AuthMiddleware.RequireRole(staff...), cfg.AssignmentHandler.Delete)
  // Enrollments
  protected.POST("/enrollments", cfg.AuthMiddleware.RequireRole(types.RoleStudent), cfg.EnrollmentHandler.Enroll)
  protected.GET("/enrollments/my", cfg.EnrollmentHandler.My)
  // Submissions
  protected.POST("/submissions", cfg.AuthMiddleware.RequireRole(types.RoleStudent), cfg.SubmissionHandler.Submit)
  protected.GET("/submissions/my", cfg.SubmissionHandler.My)
  protected.POST("/submissions/:id/grade", cfg.AuthMiddleware.RequireRole(staff...), cfg.SubmissionHandler.Grade)

  return router
}
