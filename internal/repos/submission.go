package repos

import (
  "context"
  "gorm.io/gorm"
  "github.com/edukita/lms-backend/internal/logger"
  "github.com/edukita/lms-backend/internal/types"
)

type SubmissionRepo interface {
  Create(ctx context.Context, tx *gorm.DB, submission *types.Submission) (*types.Submission, error)
  GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Submission, error)
  Exists(ctx context.Context, tx *gorm.DB, assignmentID, studentID uint) (bool, error)
  ListByStudent(ctx context.Context, tx *gorm.DB, studentID uint) ([]*types.Submission, error)
  Update(ctx context.Context, tx *gorm.DB, id uint, fields map[string]interface{}) error
}

type submissionRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewSubmissionRepo(db *gorm.DB, baseLog *logger.Logger) SubmissionRepo {
  repoLog := baseLog.With("repo", "SubmissionRepo")
  return &submissionRepo{db: db, log: repoLog}
}

func (sr *submissionRepo) Create(ctx context.Context, tx *gorm.DB, submission *types.Submission) (*types.Submission, error) {
  transaction := tx
  if transaction == nil {
    transaction = sr.db
  }

  if err := transaction.WithContext(ctx).Create(submission).Error; err != nil {
    return nil, err
  }
  return submission, nil
}

func (sr *submissionRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Submission, error) {
  transaction := tx
  if transaction == nil {
    transaction = sr.db
  }

  var submission types.Submission
  if err := transaction.WithContext(ctx).
    Preload("Assignment").
    Preload("Assignment.Course").
    First(&submission, id).Error; err != nil {
    return nil, err
  }
  return &submission, nil
}

func (sr *submissionRepo) Exists(ctx context.Context, tx *gorm.DB, assignmentID, studentID uint) (bool, error) {
  transaction := tx
  if transaction == nil {
    transaction = sr.db
  }

  var count int64
  if err := transaction.WithContext(ctx).
    Model(&types.Submission{}).
    Where("assignment_id = ? AND student_id = ?", assignmentID, studentID).
    Count(&count).Error; err != nil {
    return false, err
  }
  return count > 0, nil
}

func (sr *submissionRepo) ListByStudent(ctx context.Context, tx *gorm.DB, studentID uint) ([]*types.Submission, error) {
  transaction := tx
  if transaction == nil {
    transaction = sr.db
  }

  var results []*types.Submission
  if err := transaction.WithContext(ctx).
    Preload("Assignment").
    Where("student_id = ?", studentID).
    Order("submitted_at DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (sr *submissionRepo) Update(ctx context.Context, tx *gorm.DB, id uint, fields map[string]interface{}) error {
  transaction := tx
  if transaction == nil {
    transaction = sr.db
  }

  if len(fields) == 0 {
    return nil
  }
  return transaction.WithContext(ctx).
    Model(&types.Submission{}).
    Where("id = ?", id).
    Updates(fields).Error
}
