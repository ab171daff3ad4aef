package services

import (
  "context"
  "fmt"

  "gorm.io/gorm"

  "github.com/edukita/lms-backend/internal/apierr"
  "github.com/edukita/lms-backend/internal/cache"
  "github.com/edukita/lms-backend/internal/logger"
  "github.com/edukita/lms-backend/internal/policy"
  "github.com/edukita/lms-backend/internal/repos"
  "github.com/edukita/lms-backend/internal/types"
)

type EnrollmentService interface {
  Enroll(ctx context.Context, courseID uint) (*types.EnrollmentOut, error)
  MyEnrollments(ctx context.Context) ([]*types.EnrollmentOut, error)
}

type enrollmentService struct {
  db             *gorm.DB
  log            *logger.Logger
  courseRepo     repos.CourseRepo
  enrollmentRepo repos.EnrollmentRepo
  store          cache.Store
}

func NewEnrollmentService(
  db *gorm.DB,
  baseLog *logger.Logger,
  courseRepo repos.CourseRepo,
  enrollmentRepo repos.EnrollmentRepo,
  store cache.Store,
) EnrollmentService {
  serviceLog := baseLog.With("service", "EnrollmentService")
  return &enrollmentService{
    db:             db,
    log:            serviceLog,
    courseRepo:     courseRepo,
    enrollmentRepo: enrollmentRepo,
    store:          store,
  }
}

func (es *enrollmentService) Enroll(ctx context.Context, courseID uint) (*types.EnrollmentOut, error) {
  principal := principalFrom(ctx)
  if !policy.CanEnroll(principal) {
    return nil, apierr.Forbidden("permission denied")
  }

  course, err := es.courseRepo.GetByID(ctx, nil, courseID)
  if err != nil {
    return nil, translateDBError(err, "", "course not found")
  }
  if !course.IsActive {
    return nil, apierr.NotFound("course not found")
  }

  enrolled, err := es.enrollmentRepo.Exists(ctx, nil, principal.UserID, courseID)
  if err != nil {
    return nil, fmt.Errorf("check enrollment: %w", err)
  }
  if enrolled {
    return nil, apierr.Duplicate("already enrolled in this course")
  }

  enrollment := &types.Enrollment{
    StudentID: principal.UserID,
    CourseID:  courseID,
    IsActive:  true,
  }
  if _, err := es.enrollmentRepo.Create(ctx, nil, enrollment); err != nil {
    return nil, translateDBError(err, "already enrolled in this course", "course not found")
  }

  es.store.DeletePrefix(ctx, courseCachePrefix)
  return types.NewEnrollmentOut(enrollment), nil
}

func (es *enrollmentService) MyEnrollments(ctx context.Context) ([]*types.EnrollmentOut, error) {
  principal := principalFrom(ctx)
  if !policy.CanEnroll(principal) {
    return nil, apierr.Forbidden("permission denied")
  }

  enrollments, err := es.enrollmentRepo.ListByStudent(ctx, nil, principal.UserID)
  if err != nil {
    return nil, fmt.Errorf("list enrollments: %w", err)
  }
  outs := make([]*types.EnrollmentOut, 0, len(enrollments))
  for _, enrollment := range enrollments {
    outs = append(outs, types.NewEnrollmentOut(enrollment))
  }
  return outs, nil
}
