package repos

import (
  "context"
  "gorm.io/gorm"
  "github.com/edukita/lms-backend/internal/logger"
  "github.com/edukita/lms-backend/internal/types"
)

type EnrollmentRepo interface {
  Create(ctx context.Context, tx *gorm.DB, enrollment *types.Enrollment) (*types.Enrollment, error)
  Exists(ctx context.Context, tx *gorm.DB, studentID, courseID uint) (bool, error)
  ListByStudent(ctx context.Context, tx *gorm.DB, studentID uint) ([]*types.Enrollment, error)
}

type enrollmentRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewEnrollmentRepo(db *gorm.DB, baseLog *logger.Logger) EnrollmentRepo {
  repoLog := baseLog.With("repo", "EnrollmentRepo")
  return &enrollmentRepo{db: db, log: repoLog}
}

func (er *enrollmentRepo) Create(ctx context.Context, tx *gorm.DB, enrollment *types.Enrollment) (*types.Enrollment, error) {
  transaction := tx
  if transaction == nil {
    transaction = er.db
  }

  if err := transaction.WithContext(ctx).Create(enrollment).Error; err != nil {
    return nil, err
  }
  return enrollment, nil
}

func (er *enrollmentRepo) Exists(ctx context.Context, tx *gorm.DB, studentID, courseID uint) (bool, error) {
  transaction := tx
  if transaction == nil {
    transaction = er.db
  }

  var count int64
  if err := transaction.WithContext(ctx).
    Model(&types.Enrollment{}).
    Where("student_id = ? AND course_id = ?", studentID, courseID).
    Count(&count).Error; err != nil {
    return false, err
  }
  return count > 0, nil
}

func (er *enrollmentRepo) ListByStudent(ctx context.Context, tx *gorm.DB, studentID uint) ([]*types.Enrollment, error) {
  transaction := tx
  if transaction == nil {
    transaction = er.db
  }

  var results []*types.Enrollment
  if err := transaction.WithContext(ctx).
    Where("student_id = ? AND is_active = ?", studentID, true).
    Order("enrolled_at DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}
