package services

import (
  "context"
  "errors"

  "gorm.io/gorm"

  "github.com/edukita/lms-backend/internal/apierr"
  "github.com/edukita/lms-backend/internal/policy"
  "github.com/edukita/lms-backend/internal/requestdata"
)

// courseCachePrefix is the namespace every cached course list/detail entry
// lives under; writes to courses, lessons, assignments and enrollments all
// invalidate it wholesale.
const courseCachePrefix = "courses:"

func principalFrom(ctx context.Context) *policy.Principal {
  rd := requestdata.GetRequestData(ctx)
  if rd == nil {
    return nil
  }
  return &policy.Principal{UserID: rd.UserID, Role: rd.Role}
}

// translateDBError maps the storage layer's constraint failures onto the API
// error taxonomy. The unique index is the source of truth for duplicates;
// handler pre-checks only exist for the friendlier message.
func translateDBError(err error, duplicateMsg, notFoundMsg string) error {
  if err == nil {
    return nil
  }
  if errors.Is(err, gorm.ErrDuplicatedKey) {
    return apierr.Duplicate(duplicateMsg)
  }
  if errors.Is(err, gorm.ErrRecordNotFound) {
    return apierr.NotFound(notFoundMsg)
  }
  return err
}
