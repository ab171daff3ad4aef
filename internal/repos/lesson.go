package repos

import (
  "context"
  "gorm.io/gorm"
  "github.com/edukita/lms-backend/internal/logger"
  "github.com/edukita/lms-backend/internal/types"
)

type LessonRepo interface {
  Create(ctx context.Context, tx *gorm.DB, lesson *types.Lesson) (*types.Lesson, error)
  GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Lesson, error)
  SlugExistsInCourse(ctx context.Context, tx *gorm.DB, courseID uint, slug string) (bool, error)
  ListByCourse(ctx context.Context, tx *gorm.DB, courseID uint) ([]*types.Lesson, error)
  Update(ctx context.Context, tx *gorm.DB, id uint, fields map[string]interface{}) error
  Delete(ctx context.Context, tx *gorm.DB, id uint) error
}

type lessonRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewLessonRepo(db *gorm.DB, baseLog *logger.Logger) LessonRepo {
  repoLog := baseLog.With("repo", "LessonRepo")
  return &lessonRepo{db: db, log: repoLog}
}

func (lr *lessonRepo) Create(ctx context.Context, tx *gorm.DB, lesson *types.Lesson) (*types.Lesson, error) {
  transaction := tx
  if transaction == nil {
    transaction = lr.db
  }

  if err := transaction.WithContext(ctx).Create(lesson).Error; err != nil {
    return nil, err
  }
  return lesson, nil
}

func (lr *lessonRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Lesson, error) {
  transaction := tx
  if transaction == nil {
    transaction = lr.db
  }

  var lesson types.Lesson
  if err := transaction.WithContext(ctx).
    Preload("Course").
    First(&lesson, id).Error; err != nil {
    return nil, err
  }
  return &lesson, nil
}

func (lr *lessonRepo) SlugExistsInCourse(ctx context.Context, tx *gorm.DB, courseID uint, slug string) (bool, error) {
  transaction := tx
  if transaction == nil {
    transaction = lr.db
  }

  var count int64
  if err := transaction.WithContext(ctx).
    Model(&types.Lesson{}).
    Where("course_id = ? AND slug = ?", courseID, slug).
    Count(&count).Error; err != nil {
    return false, err
  }
  return count > 0, nil
}

func (lr *lessonRepo) ListByCourse(ctx context.Context, tx *gorm.DB, courseID uint) ([]*types.Lesson, error) {
  transaction := tx
  if transaction == nil {
    transaction = lr.db
  }

  var results []*types.Lesson
  if err := transaction.WithContext(ctx).
    Where("course_id = ?", courseID).
    Order("\"order\" ASC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (lr *lessonRepo) Update(ctx context.Context, tx *gorm.DB, id uint, fields map[string]interface{}) error {
  transaction := tx
  if transaction == nil {
    transaction = lr.db
  }

  if len(fields) == 0 {
    return nil
  }
  return transaction.WithContext(ctx).
    Model(&types.Lesson{}).
    Where("id = ?", id).
    Updates(fields).Error
}

func (lr *lessonRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
  transaction := tx
  if transaction == nil {
    transaction = lr.db
  }
  return transaction.WithContext(ctx).Delete(&types.Lesson{}, id).Error
}
