package services

import (
  "context"
  "fmt"

  "gorm.io/gorm"

  "github.com/edukita/lms-backend/internal/apierr"
  "github.com/edukita/lms-backend/internal/logger"
  "github.com/edukita/lms-backend/internal/policy"
  "github.com/edukita/lms-backend/internal/repos"
  "github.com/edukita/lms-backend/internal/types"
)

type UserUpdateInput struct {
  FirstName *string
  LastName  *string
  Bio       *string
  Phone     *string
  AvatarURL *string
}

type UserService interface {
  List(ctx context.Context, role types.Role) ([]*types.UserOut, error)
  Get(ctx context.Context, id uint) (*types.UserOut, error)
  Update(ctx context.Context, id uint, input UserUpdateInput) (*types.UserOut, error)
  Delete(ctx context.Context, id uint) error
}

type userService struct {
  db       *gorm.DB
  log      *logger.Logger
  userRepo repos.UserRepo
}

func NewUserService(db *gorm.DB, baseLog *logger.Logger, userRepo repos.UserRepo) UserService {
  serviceLog := baseLog.With("service", "UserService")
  return &userService{db: db, log: serviceLog, userRepo: userRepo}
}

func (us *userService) List(ctx context.Context, role types.Role) ([]*types.UserOut, error) {
  if !policy.CanListUsers(principalFrom(ctx)) {
    return nil, apierr.Forbidden("permission denied")
  }
  if role != "" && !role.Valid() {
    return nil, apierr.Validation("invalid role filter")
  }

  users, err := us.userRepo.List(ctx, nil, role)
  if err != nil {
    return nil, fmt.Errorf("list users: %w", err)
  }
  outs := make([]*types.UserOut, 0, len(users))
  for _, user := range users {
    outs = append(outs, types.NewUserOut(user))
  }
  return outs, nil
}

func (us *userService) Get(ctx context.Context, id uint) (*types.UserOut, error) {
  user, err := us.userRepo.GetByID(ctx, nil, id)
  if err != nil {
    return nil, translateDBError(err, "", "user not found")
  }
  return types.NewUserOut(user), nil
}

// Update applies only the fields the caller supplied; absent fields keep
// their stored values. Role is deliberately not updatable here.
func (us *userService) Update(ctx context.Context, id uint, input UserUpdateInput) (*types.UserOut, error) {
  if !policy.CanModifyUser(principalFrom(ctx), id) {
    return nil, apierr.Forbidden("permission denied")
  }

  if _, err := us.userRepo.GetByID(ctx, nil, id); err != nil {
    return nil, translateDBError(err, "", "user not found")
  }

  fields := map[string]interface{}{}
  if input.FirstName != nil {
    fields["first_name"] = *input.FirstName
  }
  if input.LastName != nil {
    fields["last_name"] = *input.LastName
  }
  if input.Bio != nil {
    fields["bio"] = *input.Bio
  }
  if input.Phone != nil {
    fields["phone"] = *input.Phone
  }
  if input.AvatarURL != nil {
    fields["avatar_url"] = *input.AvatarURL
  }
  if err := us.userRepo.Update(ctx, nil, id, fields); err != nil {
    return nil, fmt.Errorf("update user: %w", err)
  }

  user, err := us.userRepo.GetByID(ctx, nil, id)
  if err != nil {
    return nil, translateDBError(err, "", "user not found")
  }
  return types.NewUserOut(user), nil
}

func (us *userService) Delete(ctx context.Context, id uint) error {
  if !policy.CanDeleteUser(principalFrom(ctx)) {
    return apierr.Forbidden("permission denied")
  }
  if _, err := us.userRepo.GetByID(ctx, nil, id); err != nil {
    return translateDBError(err, "", "user not found")
  }
  if err := us.userRepo.Delete(ctx, nil, id); err != nil {
    return fmt.Errorf("delete user: %w", err)
  }
  return nil
}
