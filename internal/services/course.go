package services

import (
  "context"
  "encoding/json"
  "fmt"
  "strconv"
  "time"

  "gorm.io/gorm"

  "github.com/edukita/lms-backend/internal/apierr"
  "github.com/edukita/lms-backend/internal/cache"
  "github.com/edukita/lms-backend/internal/logger"
  "github.com/edukita/lms-backend/internal/policy"
  "github.com/edukita/lms-backend/internal/repos"
  "github.com/edukita/lms-backend/internal/types"
)

type CourseCreateInput struct {
  Title       string
  Slug        string
  Description string
  Category    string
  Level       types.CourseLevel
}

type CourseUpdateInput struct {
  Title       *string
  Description *string
  Category    *string
  Level       *types.CourseLevel
  IsActive    *bool
}

type CourseService interface {
  List(ctx context.Context, filter repos.CourseFilter) ([]*types.CourseOut, error)
  GetDetail(ctx context.Context, id uint) (*types.CourseDetailOut, error)
  Create(ctx context.Context, input CourseCreateInput) (*types.CourseOut, error)
  Update(ctx context.Context, id uint, input CourseUpdateInput) (*types.CourseOut, error)
  Delete(ctx context.Context, id uint) error
}

type courseService struct {
  db         *gorm.DB
  log        *logger.Logger
  courseRepo repos.CourseRepo
  store      cache.Store
  cacheTTL   time.Duration
}

func NewCourseService(
  db *gorm.DB,
  baseLog *logger.Logger,
  courseRepo repos.CourseRepo,
  store cache.Store,
  cacheTTL time.Duration,
) CourseService {
  serviceLog := baseLog.With("service", "CourseService")
  return &courseService{
    db:         db,
    log:        serviceLog,
    courseRepo: courseRepo,
    store:      store,
    cacheTTL:   cacheTTL,
  }
}

// List serves the public course catalog through the read-through cache.
// Only active courses are listed.
func (cs *courseService) List(ctx context.Context, filter repos.CourseFilter) ([]*types.CourseOut, error) {
  params := map[string]string{
    "category": filter.Category,
    "level":    filter.Level,
  }
  if filter.InstructorID != 0 {
    params["instructor_id"] = strconv.FormatUint(uint64(filter.InstructorID), 10)
  }
  key := cache.Key("courses", "list", params)

  if raw, ok := cs.store.Get(ctx, key); ok {
    var cached []*types.CourseOut
    if err := json.Unmarshal(raw, &cached); err == nil {
      return cached, nil
    }
    cs.log.Warn("failed to decode cached course list, falling back to storage", "key", key)
  }

  filter.ActiveOnly = true
  courses, err := cs.courseRepo.List(ctx, nil, filter)
  if err != nil {
    return nil, fmt.Errorf("list courses: %w", err)
  }

  ids := make([]uint, 0, len(courses))
  for _, course := range courses {
    ids = append(ids, course.ID)
  }
  counts, err := cs.courseRepo.EnrollmentCounts(ctx, nil, ids)
  if err != nil {
    return nil, fmt.Errorf("count enrollments: %w", err)
  }

  outs := make([]*types.CourseOut, 0, len(courses))
  for _, course := range courses {
    outs = append(outs, types.NewCourseOut(course, counts[course.ID]))
  }

  if raw, err := json.Marshal(outs); err == nil {
    cs.store.Set(ctx, key, raw, cs.cacheTTL)
  }
  return outs, nil
}

func (cs *courseService) GetDetail(ctx context.Context, id uint) (*types.CourseDetailOut, error) {
  key := cache.Key("courses", "detail", map[string]string{"id": strconv.FormatUint(uint64(id), 10)})

  if raw, ok := cs.store.Get(ctx, key); ok {
    var cached types.CourseDetailOut
    if err := json.Unmarshal(raw, &cached); err == nil {
      return &cached, nil
    }
    cs.log.Warn("failed to decode cached course detail, falling back to storage", "key", key)
  }

  course, err := cs.courseRepo.GetDetail(ctx, nil, id)
  if err != nil {
    return nil, translateDBError(err, "", "course not found")
  }
  counts, err := cs.courseRepo.EnrollmentCounts(ctx, nil, []uint{id})
  if err != nil {
    return nil, fmt.Errorf("count enrollments: %w", err)
  }

  detail := types.NewCourseDetailOut(course, counts[id], time.Now())
  if raw, err := json.Marshal(detail); err == nil {
    cs.store.Set(ctx, key, raw, cs.cacheTTL)
  }
  return detail, nil
}

func (cs *courseService) Create(ctx context.Context, input CourseCreateInput) (*types.CourseOut, error) {
  principal := principalFrom(ctx)
  if !policy.CanCreateCourse(principal) {
    return nil, apierr.Forbidden("permission denied")
  }

  level := input.Level
  if level == "" {
    level = types.LevelBeginner
  }
  if !level.Valid() {
    return nil, apierr.Validation("invalid level")
  }

  slugExists, err := cs.courseRepo.SlugExists(ctx, nil, input.Slug)
  if err != nil {
    return nil, fmt.Errorf("check slug: %w", err)
  }
  if slugExists {
    return nil, apierr.Duplicate("course with this slug already exists")
  }

  course := &types.Course{
    Title:        input.Title,
    Slug:         input.Slug,
    Description:  input.Description,
    InstructorID: principal.UserID,
    Category:     input.Category,
    Level:        level,
    IsActive:     true,
  }
  if _, err := cs.courseRepo.Create(ctx, nil, course); err != nil {
    return nil, translateDBError(err, "course with this slug already exists", "course not found")
  }

  cs.store.DeletePrefix(ctx, courseCachePrefix)

  created, err := cs.courseRepo.GetByID(ctx, nil, course.ID)
  if err != nil {
    return nil, translateDBError(err, "", "course not found")
  }
  return types.NewCourseOut(created, 0), nil
}

func (cs *courseService) Update(ctx context.Context, id uint, input CourseUpdateInput) (*types.CourseOut, error) {
  course, err := cs.courseRepo.GetByID(ctx, nil, id)
  if err != nil {
    return nil, translateDBError(err, "", "course not found")
  }
  if !policy.CanManageCourse(principalFrom(ctx), course.InstructorID) {
    return nil, apierr.Forbidden("permission denied")
  }

  fields := map[string]interface{}{}
  if input.Title != nil {
    fields["title"] = *input.Title
  }
  if input.Description != nil {
    fields["description"] = *input.Description
  }
  if input.Category != nil {
    fields["category"] = *input.Category
  }
  if input.Level != nil {
    if !input.Level.Valid() {
      return nil, apierr.Validation("invalid level")
    }
    fields["level"] = *input.Level
  }
  if input.IsActive != nil {
    fields["is_active"] = *input.IsActive
  }
  if err := cs.courseRepo.Update(ctx, nil, id, fields); err != nil {
    return nil, fmt.Errorf("update course: %w", err)
  }

  cs.store.DeletePrefix(ctx, courseCachePrefix)

  updated, err := cs.courseRepo.GetByID(ctx, nil, id)
  if err != nil {
    return nil, translateDBError(err, "", "course not found")
  }
  counts, err := cs.courseRepo.EnrollmentCounts(ctx, nil, []uint{id})
  if err != nil {
    return nil, fmt.Errorf("count enrollments: %w", err)
  }
  return types.NewCourseOut(updated, counts[id]), nil
}

// Delete removes the course; lessons, assignments and enrollments go with it
// through the storage-level cascade.
func (cs *courseService) Delete(ctx context.Context, id uint) error {
  course, err := cs.courseRepo.GetByID(ctx, nil, id)
  if err != nil {
    return translateDBError(err, "", "course not found")
  }
  if !policy.CanManageCourse(principalFrom(ctx), course.InstructorID) {
    return apierr.Forbidden("permission denied")
  }
  if err := cs.courseRepo.Delete(ctx, nil, id); err != nil {
    return fmt.Errorf("delete course: %w", err)
  }

  cs.store.DeletePrefix(ctx, courseCachePrefix)
  return nil
}
