package services

import (
  "context"
  "fmt"
  "time"

  "gorm.io/gorm"

  "github.com/edukita/lms-backend/internal/apierr"
  "github.com/edukita/lms-backend/internal/cache"
  "github.com/edukita/lms-backend/internal/logger"
  "github.com/edukita/lms-backend/internal/policy"
  "github.com/edukita/lms-backend/internal/repos"
  "github.com/edukita/lms-backend/internal/types"
)

type AssignmentCreateInput struct {
  CourseID      uint
  Title         string
  Description   string
  Instructions  string
  MaxScore      int
  DueDate       time.Time
  AttachmentURL string
}

type AssignmentUpdateInput struct {
  Title        *string
  Description  *string
  Instructions *string
  MaxScore     *int
  DueDate      *time.Time
}

type AssignmentService interface {
  Create(ctx context.Context, input AssignmentCreateInput) (*types.AssignmentOut, error)
  Get(ctx context.Context, id uint) (*types.AssignmentOut, error)
  Update(ctx context.Context, id uint, input AssignmentUpdateInput) (*types.AssignmentOut, error)
  Delete(ctx context.Context, id uint) error
}

type assignmentService struct {
  db             *gorm.DB
  log            *logger.Logger
  courseRepo     repos.CourseRepo
  assignmentRepo repos.AssignmentRepo
  store          cache.Store
}

func NewAssignmentService(
  db *gorm.DB,
  baseLog *logger.Logger,
  courseRepo repos.CourseRepo,
  assignmentRepo repos.AssignmentRepo,
  store cache.Store,
) AssignmentService {
  serviceLog := baseLog.With("service", "AssignmentService")
  return &assignmentService{
    db:             db,
    log:            serviceLog,
    courseRepo:     courseRepo,
    assignmentRepo: assignmentRepo,
    store:          store,
  }
}

func (s *assignmentService) Create(ctx context.Context, input AssignmentCreateInput) (*types.AssignmentOut, error) {
  course, err := s.courseRepo.GetByID(ctx, nil, input.CourseID)
  if err != nil {
    return nil, translateDBError(err, "", "course not found")
  }
  if !policy.CanManageCourse(principalFrom(ctx), course.InstructorID) {
    return nil, apierr.Forbidden("permission denied")
  }
  if input.MaxScore < 0 || input.MaxScore > 100 {
    return nil, apierr.Validation("max_score must be between 0 and 100")
  }

  maxScore := input.MaxScore
  if maxScore == 0 {
    maxScore = 100
  }
  assignment := &types.Assignment{
    CourseID:      input.CourseID,
    Title:         input.Title,
    Description:   input.Description,
    Instructions:  input.Instructions,
    MaxScore:      maxScore,
    DueDate:       input.DueDate,
    AttachmentURL: input.AttachmentURL,
  }
  if _, err := s.assignmentRepo.Create(ctx, nil, assignment); err != nil {
    return nil, fmt.Errorf("create assignment: %w", err)
  }

  s.store.DeletePrefix(ctx, courseCachePrefix)
  return types.NewAssignmentOut(assignment, time.Now()), nil
}

func (s *assignmentService) Get(ctx context.Context, id uint) (*types.AssignmentOut, error) {
  assignment, err := s.assignmentRepo.GetByID(ctx, nil, id)
  if err != nil {
    return nil, translateDBError(err, "", "assignment not found")
  }
  avg, err := s.assignmentRepo.AverageScore(ctx, nil, id)
  if err != nil {
    return nil, fmt.Errorf("average score: %w", err)
  }

  out := types.NewAssignmentOut(assignment, time.Now())
  out.AverageScore = avg
  return out, nil
}

func (s *assignmentService) Update(ctx context.Context, id uint, input AssignmentUpdateInput) (*types.AssignmentOut, error) {
  assignment, err := s.assignmentRepo.GetByID(ctx, nil, id)
  if err != nil {
    return nil, translateDBError(err, "", "assignment not found")
  }
  if assignment.Course == nil {
    return nil, fmt.Errorf("assignment %d has no course loaded", id)
  }
  if !policy.CanManageCourse(principalFrom(ctx), assignment.Course.InstructorID) {
    return nil, apierr.Forbidden("permission denied")
  }

  fields := map[string]interface{}{}
  if input.Title != nil {
    fields["title"] = *input.Title
  }
  if input.Description != nil {
    fields["description"] = *input.Description
  }
  if input.Instructions != nil {
    fields["instructions"] = *input.Instructions
  }
  if input.MaxScore != nil {
    if *input.MaxScore < 0 || *input.MaxScore > 100 {
      return nil, apierr.Validation("max_score must be between 0 and 100")
    }
    fields["max_score"] = *input.MaxScore
  }
  if input.DueDate != nil {
    fields["due_date"] = *input.DueDate
  }
  if err := s.assignmentRepo.Update(ctx, nil, id, fields); err != nil {
    return nil, fmt.Errorf("update assignment: %w", err)
  }

  s.store.DeletePrefix(ctx, courseCachePrefix)

  updated, err := s.assignmentRepo.GetByID(ctx, nil, id)
  if err != nil {
    return nil, translateDBError(err, "", "assignment not found")
  }
  return types.NewAssignmentOut(updated, time.Now()), nil
}

func (s *assignmentService) Delete(ctx context.Context, id uint) error {
  assignment, err := s.assignmentRepo.GetByID(ctx, nil, id)
  if err != nil {
    return translateDBError(err, "", "assignment not found")
  }
  if assignment.Course == nil {
    return fmt.Errorf("assignment %d has no course loaded", id)
  }
  if !policy.CanManageCourse(principalFrom(ctx), assignment.Course.InstructorID) {
    return apierr.Forbidden("permission denied")
  }
  if err := s.assignmentRepo.Delete(ctx, nil, id); err != nil {
    return fmt.Errorf("delete assignment: %w", err)
  }

  s.store.DeletePrefix(ctx, courseCachePrefix)
  return nil
}
