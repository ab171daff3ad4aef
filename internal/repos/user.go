package repos

import (
  "context"
  "gorm.io/gorm"
  "github.com/edukita/lms-backend/internal/logger"
  "github.com/edukita/lms-backend/internal/types"
)

type UserRepo interface {
  Create(ctx context.Context, tx *gorm.DB, user *types.User) (*types.User, error)
  GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.User, error)
  GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*types.User, error)
  EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error)
  UsernameExists(ctx context.Context, tx *gorm.DB, username string) (bool, error)
  List(ctx context.Context, tx *gorm.DB, role types.Role) ([]*types.User, error)
  Update(ctx context.Context, tx *gorm.DB, id uint, fields map[string]interface{}) error
  Delete(ctx context.Context, tx *gorm.DB, id uint) error
}

type userRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
  repoLog := baseLog.With("repo", "UserRepo")
  return &userRepo{db: db, log: repoLog}
}

func (ur *userRepo) Create(ctx context.Context, tx *gorm.DB, user *types.User) (*types.User, error) {
  transaction := tx
  if transaction == nil {
    transaction = ur.db
  }

  if err := transaction.WithContext(ctx).Create(user).Error; err != nil {
    return nil, err
  }
  return user, nil
}

func (ur *userRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.User, error) {
  transaction := tx
  if transaction == nil {
    transaction = ur.db
  }

  var user types.User
  if err := transaction.WithContext(ctx).
    First(&user, id).Error; err != nil {
    return nil, err
  }
  return &user, nil
}

func (ur *userRepo) GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*types.User, error) {
  transaction := tx
  if transaction == nil {
    transaction = ur.db
  }

  var user types.User
  if err := transaction.WithContext(ctx).
    Where("email = ?", email).
    First(&user).Error; err != nil {
    return nil, err
  }
  return &user, nil
}

func (ur *userRepo) EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error) {
  transaction := tx
  if transaction == nil {
    transaction = ur.db
  }

  var count int64
  if err := transaction.WithContext(ctx).
    Model(&types.User{}).
    Where("email = ?", email).
    Count(&count).Error; err != nil {
    return false, err
  }
  return count > 0, nil
}

func (ur *userRepo) UsernameExists(ctx context.Context, tx *gorm.DB, username string) (bool, error) {
  transaction := tx
  if transaction == nil {
    transaction = ur.db
  }

  var count int64
  if err := transaction.WithContext(ctx).
    Model(&types.User{}).
    Where("username = ?", username).
    Count(&count).Error; err != nil {
    return false, err
  }
  return count > 0, nil
}

func (ur *userRepo) List(ctx context.Context, tx *gorm.DB, role types.Role) ([]*types.User, error) {
  transaction := tx
  if transaction == nil {
    transaction = ur.db
  }

  query := transaction.WithContext(ctx).Model(&types.User{})
  if role != "" {
    query = query.Where("role = ?", role)
  }

  var results []*types.User
  if err := query.Order("date_joined DESC").Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (ur *userRepo) Update(ctx context.Context, tx *gorm.DB, id uint, fields map[string]interface{}) error {
  transaction := tx
  if transaction == nil {
    transaction = ur.db
  }

  if len(fields) == 0 {
    return nil
  }
  return transaction.WithContext(ctx).
    Model(&types.User{}).
    Where("id = ?", id).
    Updates(fields).Error
}

func (ur *userRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
  transaction := tx
  if transaction == nil {
    transaction = ur.db
  }
  return transaction.WithContext(ctx).Delete(&types.User{}, id).Error
}
