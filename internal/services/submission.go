package services

import (
  "context"
  "fmt"
  "time"

  "gorm.io/gorm"

  "github.com/edukita/lms-backend/internal/apierr"
  "github.com/edukita/lms-backend/internal/logger"
  "github.com/edukita/lms-backend/internal/policy"
  "github.com/edukita/lms-backend/internal/repos"
  "github.com/edukita/lms-backend/internal/types"
)

type SubmissionCreateInput struct {
  AssignmentID  uint
  Content       string
  AttachmentURL string
}

type SubmissionService interface {
  Submit(ctx context.Context, input SubmissionCreateInput) (*types.SubmissionOut, error)
  MySubmissions(ctx context.Context) ([]*types.SubmissionOut, error)
  Grade(ctx context.Context, id uint, score float64, feedback string) (*types.SubmissionOut, error)
}

type submissionService struct {
  db             *gorm.DB
  log            *logger.Logger
  assignmentRepo repos.AssignmentRepo
  submissionRepo repos.SubmissionRepo
}

func NewSubmissionService(
  db *gorm.DB,
  baseLog *logger.Logger,
  assignmentRepo repos.AssignmentRepo,
  submissionRepo repos.SubmissionRepo,
) SubmissionService {
  serviceLog := baseLog.With("service", "SubmissionService")
  return &submissionService{
    db:             db,
    log:            serviceLog,
    assignmentRepo: assignmentRepo,
    submissionRepo: submissionRepo,
  }
}

func (ss *submissionService) Submit(ctx context.Context, input SubmissionCreateInput) (*types.SubmissionOut, error) {
  principal := principalFrom(ctx)
  if !policy.CanSubmit(principal) {
    return nil, apierr.Forbidden("permission denied")
  }

  assignment, err := ss.assignmentRepo.GetByID(ctx, nil, input.AssignmentID)
  if err != nil {
    return nil, translateDBError(err, "", "assignment not found")
  }

  submitted, err := ss.submissionRepo.Exists(ctx, nil, input.AssignmentID, principal.UserID)
  if err != nil {
    return nil, fmt.Errorf("check submission: %w", err)
  }
  if submitted {
    return nil, apierr.Duplicate("already submitted this assignment")
  }

  submission := &types.Submission{
    AssignmentID:  input.AssignmentID,
    StudentID:     principal.UserID,
    Content:       input.Content,
    AttachmentURL: input.AttachmentURL,
  }
  if _, err := ss.submissionRepo.Create(ctx, nil, submission); err != nil {
    return nil, translateDBError(err, "already submitted this assignment", "assignment not found")
  }

  submission.Assignment = assignment
  return types.NewSubmissionOut(submission), nil
}

func (ss *submissionService) MySubmissions(ctx context.Context) ([]*types.SubmissionOut, error) {
  principal := principalFrom(ctx)
  if !policy.CanSubmit(principal) {
    return nil, apierr.Forbidden("permission denied")
  }

  submissions, err := ss.submissionRepo.ListByStudent(ctx, nil, principal.UserID)
  if err != nil {
    return nil, fmt.Errorf("list submissions: %w", err)
  }
  outs := make([]*types.SubmissionOut, 0, len(submissions))
  for _, submission := range submissions {
    outs = append(outs, types.NewSubmissionOut(submission))
  }
  return outs, nil
}

// Grade records score, feedback, grader and timestamp in one transaction so
// a half-written grade is never observable.
func (ss *submissionService) Grade(ctx context.Context, id uint, score float64, feedback string) (*types.SubmissionOut, error) {
  principal := principalFrom(ctx)

  submission, err := ss.submissionRepo.GetByID(ctx, nil, id)
  if err != nil {
    return nil, translateDBError(err, "", "submission not found")
  }
  if submission.Assignment == nil || submission.Assignment.Course == nil {
    return nil, fmt.Errorf("submission %d has no course loaded", id)
  }
  if !policy.CanGrade(principal, submission.Assignment.Course.InstructorID) {
    return nil, apierr.Forbidden("permission denied")
  }
  if score < 0 || score > 100 {
    return nil, apierr.Validation("score must be between 0 and 100")
  }

  gradedAt := time.Now()
  err = ss.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    return ss.submissionRepo.Update(ctx, tx, id, map[string]interface{}{
      "score":        score,
      "feedback":     feedback,
      "graded_by_id": principal.UserID,
      "graded_at":    gradedAt,
    })
  })
  if err != nil {
    return nil, fmt.Errorf("grade submission: %w", err)
  }

  graded, err := ss.submissionRepo.GetByID(ctx, nil, id)
  if err != nil {
    return nil, translateDBError(err, "", "submission not found")
  }
  return types.NewSubmissionOut(graded), nil
}
