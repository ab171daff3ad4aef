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

type LessonCreateInput struct {
  CourseID        uint
  Title           string
  Slug            string
  Description     string
  Content         string
  VideoURL        string
  DurationMinutes int
  Order           int
  IsPublished     bool
}

type LessonUpdateInput struct {
  Title           *string
  Description     *string
  Content         *string
  VideoURL        *string
  DurationMinutes *int
  Order           *int
  IsPublished     *bool
}

type LessonService interface {
  Create(ctx context.Context, input LessonCreateInput) (*types.LessonOut, error)
  Update(ctx context.Context, id uint, input LessonUpdateInput) (*types.LessonOut, error)
  Delete(ctx context.Context, id uint) error
}

type lessonService struct {
  db         *gorm.DB
  log        *logger.Logger
  courseRepo repos.CourseRepo
  lessonRepo repos.LessonRepo
  store      cache.Store
}

func NewLessonService(
  db *gorm.DB,
  baseLog *logger.Logger,
  courseRepo repos.CourseRepo,
  lessonRepo repos.LessonRepo,
  store cache.Store,
) LessonService {
  serviceLog := baseLog.With("service", "LessonService")
  return &lessonService{
    db:         db,
    log:        serviceLog,
    courseRepo: courseRepo,
    lessonRepo: lessonRepo,
    store:      store,
  }
}

func (ls *lessonService) Create(ctx context.Context, input LessonCreateInput) (*types.LessonOut, error) {
  course, err := ls.courseRepo.GetByID(ctx, nil, input.CourseID)
  if err != nil {
    return nil, translateDBError(err, "", "course not found")
  }
  if !policy.CanManageCourse(principalFrom(ctx), course.InstructorID) {
    return nil, apierr.Forbidden("permission denied")
  }

  slugExists, err := ls.lessonRepo.SlugExistsInCourse(ctx, nil, input.CourseID, input.Slug)
  if err != nil {
    return nil, fmt.Errorf("check slug: %w", err)
  }
  if slugExists {
    return nil, apierr.Duplicate("lesson with this slug already exists in the course")
  }

  lesson := &types.Lesson{
    CourseID:        input.CourseID,
    Title:           input.Title,
    Slug:            input.Slug,
    Description:     input.Description,
    Content:         input.Content,
    VideoURL:        input.VideoURL,
    DurationMinutes: input.DurationMinutes,
    Order:           input.Order,
    IsPublished:     input.IsPublished,
  }
  if _, err := ls.lessonRepo.Create(ctx, nil, lesson); err != nil {
    return nil, translateDBError(err, "lesson with this slug already exists in the course", "course not found")
  }

  ls.store.DeletePrefix(ctx, courseCachePrefix)
  return types.NewLessonOut(lesson), nil
}

func (ls *lessonService) Update(ctx context.Context, id uint, input LessonUpdateInput) (*types.LessonOut, error) {
  lesson, err := ls.lessonRepo.GetByID(ctx, nil, id)
  if err != nil {
    return nil, translateDBError(err, "", "lesson not found")
  }
  if lesson.Course == nil {
    return nil, fmt.Errorf("lesson %d has no course loaded", id)
  }
  if !policy.CanManageCourse(principalFrom(ctx), lesson.Course.InstructorID) {
    return nil, apierr.Forbidden("permission denied")
  }

  fields := map[string]interface{}{}
  if input.Title != nil {
    fields["title"] = *input.Title
  }
  if input.Description != nil {
    fields["description"] = *input.Description
  }
  if input.Content != nil {
    fields["content"] = *input.Content
  }
  if input.VideoURL != nil {
    fields["video_url"] = *input.VideoURL
  }
  if input.DurationMinutes != nil {
    fields["duration_minutes"] = *input.DurationMinutes
  }
  if input.Order != nil {
    fields["order"] = *input.Order
  }
  if input.IsPublished != nil {
    fields["is_published"] = *input.IsPublished
  }
  if err := ls.lessonRepo.Update(ctx, nil, id, fields); err != nil {
    return nil, fmt.Errorf("update lesson: %w", err)
  }

  ls.store.DeletePrefix(ctx, courseCachePrefix)

  updated, err := ls.lessonRepo.GetByID(ctx, nil, id)
  if err != nil {
    return nil, translateDBError(err, "", "lesson not found")
  }
  return types.NewLessonOut(updated), nil
}

func (ls *lessonService) Delete(ctx context.Context, id uint) error {
  lesson, err := ls.lessonRepo.GetByID(ctx, nil, id)
  if err != nil {
    return translateDBError(err, "", "lesson not found")
  }
  if lesson.Course == nil {
    return fmt.Errorf("lesson %d has no course loaded", id)
  }
  if !policy.CanManageCourse(principalFrom(ctx), lesson.Course.InstructorID) {
    return apierr.Forbidden("permission denied")
  }
  if err := ls.lessonRepo.Delete(ctx, nil, id); err != nil {
    return fmt.Errorf("delete lesson: %w", err)
  }

  ls.store.DeletePrefix(ctx, courseCachePrefix)
  return nil
}
