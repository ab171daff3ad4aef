package repos

import (
  "context"
  "gorm.io/gorm"
  "github.com/edukita/lms-backend/internal/logger"
  "github.com/edukita/lms-backend/internal/types"
)

type CourseFilter struct {
  Category     string
  Level        string
  InstructorID uint
  ActiveOnly   bool
}

type CourseRepo interface {
  Create(ctx context.Context, tx *gorm.DB, course *types.Course) (*types.Course, error)
  GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Course, error)
  GetDetail(ctx context.Context, tx *gorm.DB, id uint) (*types.Course, error)
  SlugExists(ctx context.Context, tx *gorm.DB, slug string) (bool, error)
  List(ctx context.Context, tx *gorm.DB, filter CourseFilter) ([]*types.Course, error)
  EnrollmentCounts(ctx context.Context, tx *gorm.DB, courseIDs []uint) (map[uint]int64, error)
  Update(ctx context.Context, tx *gorm.DB, id uint, fields map[string]interface{}) error
  Delete(ctx context.Context, tx *gorm.DB, id uint) error
}

type courseRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewCourseRepo(db *gorm.DB, baseLog *logger.Logger) CourseRepo {
  repoLog := baseLog.With("repo", "CourseRepo")
  return &courseRepo{db: db, log: repoLog}
}

func (cr *courseRepo) Create(ctx context.Context, tx *gorm.DB, course *types.Course) (*types.Course, error) {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }

  if err := transaction.WithContext(ctx).Create(course).Error; err != nil {
    return nil, err
  }
  return course, nil
}

func (cr *courseRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Course, error) {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }

  var course types.Course
  if err := transaction.WithContext(ctx).
    Preload("Instructor").
    First(&course, id).Error; err != nil {
    return nil, err
  }
  return &course, nil
}

func (cr *courseRepo) GetDetail(ctx context.Context, tx *gorm.DB, id uint) (*types.Course, error) {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }

  var course types.Course
  if err := transaction.WithContext(ctx).
    Preload("Instructor").
    Preload("Lessons", func(db *gorm.DB) *gorm.DB {
      return db.Order("\"order\" ASC")
    }).
    Preload("Assignments", func(db *gorm.DB) *gorm.DB {
      return db.Order("due_date DESC")
    }).
    First(&course, id).Error; err != nil {
    return nil, err
  }
  return &course, nil
}

func (cr *courseRepo) SlugExists(ctx context.Context, tx *gorm.DB, slug string) (bool, error) {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }

  var count int64
  if err := transaction.WithContext(ctx).
    Model(&types.Course{}).
    Where("slug = ?", slug).
    Count(&count).Error; err != nil {
    return false, err
  }
  return count > 0, nil
}

func (cr *courseRepo) List(ctx context.Context, tx *gorm.DB, filter CourseFilter) ([]*types.Course, error) {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }

  query := transaction.WithContext(ctx).Model(&types.Course{}).Preload("Instructor")
  if filter.ActiveOnly {
    query = query.Where("is_active = ?", true)
  }
  if filter.Category != "" {
    query = query.Where("category = ?", filter.Category)
  }
  if filter.Level != "" {
    query = query.Where("level = ?", filter.Level)
  }
  if filter.InstructorID != 0 {
    query = query.Where("instructor_id = ?", filter.InstructorID)
  }

  var results []*types.Course
  if err := query.Order("created_at DESC").Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

// EnrollmentCounts aggregates enrollment rows per course at read time.
func (cr *courseRepo) EnrollmentCounts(ctx context.Context, tx *gorm.DB, courseIDs []uint) (map[uint]int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }

  counts := make(map[uint]int64, len(courseIDs))
  if len(courseIDs) == 0 {
    return counts, nil
  }

  var rows []struct {
    CourseID uint
    Count    int64
  }
  if err := transaction.WithContext(ctx).
    Model(&types.Enrollment{}).
    Select("course_id, COUNT(*) AS count").
    Where("course_id IN ?", courseIDs).
    Group("course_id").
    Scan(&rows).Error; err != nil {
    return nil, err
  }
  for _, row := range rows {
    counts[row.CourseID] = row.Count
  }
  return counts, nil
}

func (cr *courseRepo) Update(ctx context.Context, tx *gorm.DB, id uint, fields map[string]interface{}) error {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }

  if len(fields) == 0 {
    return nil
  }
  return transaction.WithContext(ctx).
    Model(&types.Course{}).
    Where("id = ?", id).
    Updates(fields).Error
}

func (cr *courseRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }
  return transaction.WithContext(ctx).Delete(&types.Course{}, id).Error
}
