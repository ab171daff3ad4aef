package repos

import (
  "context"
  "gorm.io/gorm"
  "github.com/edukita/lms-backend/internal/logger"
  "github.com/edukita/lms-backend/internal/types"
)

type AssignmentRepo interface {
  Create(ctx context.Context, tx *gorm.DB, assignment *types.Assignment) (*types.Assignment, error)
  GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Assignment, error)
  AverageScore(ctx context.Context, tx *gorm.DB, assignmentID uint) (float64, error)
  Update(ctx context.Context, tx *gorm.DB, id uint, fields map[string]interface{}) error
  Delete(ctx context.Context, tx *gorm.DB, id uint) error
}

type assignmentRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewAssignmentRepo(db *gorm.DB, baseLog *logger.Logger) AssignmentRepo {
  repoLog := baseLog.With("repo", "AssignmentRepo")
  return &assignmentRepo{db: db, log: repoLog}
}

func (ar *assignmentRepo) Create(ctx context.Context, tx *gorm.DB, assignment *types.Assignment) (*types.Assignment, error) {
  transaction := tx
  if transaction == nil {
    transaction = ar.db
  }

  if err := transaction.WithContext(ctx).Create(assignment).Error; err != nil {
    return nil, err
  }
  return assignment, nil
}

func (ar *assignmentRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Assignment, error) {
  transaction := tx
  if transaction == nil {
    transaction = ar.db
  }

  var assignment types.Assignment
  if err := transaction.WithContext(ctx).
    Preload("Course").
    First(&assignment, id).Error; err != nil {
    return nil, err
  }
  return &assignment, nil
}

// AverageScore averages graded submissions only; ungraded rows do not count.
func (ar *assignmentRepo) AverageScore(ctx context.Context, tx *gorm.DB, assignmentID uint) (float64, error) {
  transaction := tx
  if transaction == nil {
    transaction = ar.db
  }

  var avg *float64
  if err := transaction.WithContext(ctx).
    Model(&types.Submission{}).
    Select("AVG(score)").
    Where("assignment_id = ? AND score IS NOT NULL", assignmentID).
    Scan(&avg).Error; err != nil {
    return 0, err
  }
  if avg == nil {
    return 0, nil
  }
  return *avg, nil
}

func (ar *assignmentRepo) Update(ctx context.Context, tx *gorm.DB, id uint, fields map[string]interface{}) error {
  transaction := tx
  if transaction == nil {
    transaction = ar.db
  }

  if len(fields) == 0 {
    return nil
  }
  return transaction.WithContext(ctx).
    Model(&types.Assignment{}).
    Where("id = ?", id).
    Updates(fields).Error
}

func (ar *assignmentRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
  transaction := tx
  if transaction == nil {
    transaction = ar.db
  }
  return transaction.WithContext(ctx).Delete(&types.Assignment{}, id).Error
}
