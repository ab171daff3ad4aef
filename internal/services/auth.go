package services

import (
  "context"
  "errors"
  "fmt"
  "time"

  "github.com/golang-jwt/jwt/v5"
  "gorm.io/gorm"

  "github.com/edukita/lms-backend/internal/apierr"
  "github.com/edukita/lms-backend/internal/logger"
  "github.com/edukita/lms-backend/internal/repos"
  "github.com/edukita/lms-backend/internal/requestdata"
  "github.com/edukita/lms-backend/internal/types"
  "github.com/edukita/lms-backend/internal/utils"
)

type Claims struct {
  UserID   uint        `json:"user_id"`
  Email    string      `json:"email"`
  Username string      `json:"username"`
  Role     types.Role  `json:"role"`
  jwt.RegisteredClaims
}

type RegisterInput struct {
  Email     string
  Username  string
  Password  string
  FirstName string
  LastName  string
  Role      types.Role
  Bio       string
  Phone     string
}

type AuthService interface {
  Register(ctx context.Context, input RegisterInput) (*types.TokenResponse, error)
  Login(ctx context.Context, email, password string) (*types.TokenResponse, error)
  CurrentUser(ctx context.Context) (*types.UserOut, error)
  GenerateToken(user *types.User) (string, error)
  ParseToken(tokenString string) (*Claims, error)
  SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
  AccessTTL() time.Duration
}

type authService struct {
  db           *gorm.DB
  log          *logger.Logger
  userRepo     repos.UserRepo
  jwtSecretKey string
  accessTTL    time.Duration
}

func NewAuthService(
  db *gorm.DB,
  baseLog *logger.Logger,
  userRepo repos.UserRepo,
  jwtSecretKey string,
  accessTTL time.Duration,
) AuthService {
  serviceLog := baseLog.With("service", "AuthService")
  return &authService{
    db:           db,
    log:          serviceLog,
    userRepo:     userRepo,
    jwtSecretKey: jwtSecretKey,
    accessTTL:    accessTTL,
  }
}

func (as *authService) Register(ctx context.Context, input RegisterInput) (*types.TokenResponse, error) {
  email := utils.NormalizeEmail(input.Email)
  username := utils.NormalizeInput(input.Username)

  role := input.Role
  if role == "" {
    role = types.RoleStudent
  }
  if !role.Valid() {
    return nil, apierr.Validation("invalid role")
  }

  // Advisory pre-checks for a friendly message; the unique indexes below
  // still reject a racing writer.
  emailExists, err := as.userRepo.EmailExists(ctx, nil, email)
  if err != nil {
    return nil, fmt.Errorf("check email: %w", err)
  }
  if emailExists {
    return nil, apierr.Duplicate("email already registered")
  }
  usernameExists, err := as.userRepo.UsernameExists(ctx, nil, username)
  if err != nil {
    return nil, fmt.Errorf("check username: %w", err)
  }
  if usernameExists {
    return nil, apierr.Duplicate("username already taken")
  }

  hashed, err := utils.HashPassword(input.Password)
  if err != nil {
    return nil, fmt.Errorf("hash password: %w", err)
  }

  user := &types.User{
    Email:     email,
    Username:  username,
    Password:  hashed,
    FirstName: utils.NormalizeInput(input.FirstName),
    LastName:  utils.NormalizeInput(input.LastName),
    Role:      role,
    Bio:       input.Bio,
    Phone:     input.Phone,
    IsActive:  true,
  }
  if _, err := as.userRepo.Create(ctx, nil, user); err != nil {
    return nil, translateDBError(err, "email or username already taken", "user not found")
  }

  token, err := as.GenerateToken(user)
  if err != nil {
    return nil, fmt.Errorf("generate token: %w", err)
  }
  return &types.TokenResponse{
    AccessToken: token,
    TokenType:   "bearer",
    User:        types.NewUserOut(user),
  }, nil
}

func (as *authService) Login(ctx context.Context, email, password string) (*types.TokenResponse, error) {
  email = utils.NormalizeEmail(email)

  user, err := as.userRepo.GetByEmail(ctx, nil, email)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apierr.Unauthenticated("invalid credentials")
    }
    return nil, fmt.Errorf("load user: %w", err)
  }
  if !utils.CheckPassword(password, user.Password) {
    return nil, apierr.Unauthenticated("invalid credentials")
  }
  if !user.IsActive {
    return nil, apierr.Unauthenticated("account is inactive")
  }

  now := time.Now()
  if err := as.userRepo.Update(ctx, nil, user.ID, map[string]interface{}{"last_login": now}); err != nil {
    as.log.Warn("failed to record last login", "user_id", user.ID, "error", err)
  } else {
    user.LastLogin = &now
  }

  token, err := as.GenerateToken(user)
  if err != nil {
    return nil, fmt.Errorf("generate token: %w", err)
  }
  return &types.TokenResponse{
    AccessToken: token,
    TokenType:   "bearer",
    User:        types.NewUserOut(user),
  }, nil
}

func (as *authService) CurrentUser(ctx context.Context) (*types.UserOut, error) {
  rd := requestdata.GetRequestData(ctx)
  if rd == nil {
    return nil, apierr.Unauthenticated("authentication required")
  }
  user, err := as.userRepo.GetByID(ctx, nil, rd.UserID)
  if err != nil {
    return nil, translateDBError(err, "", "user not found")
  }
  return types.NewUserOut(user), nil
}

func (as *authService) GenerateToken(user *types.User) (string, error) {
  now := time.Now()
  claims := Claims{
    UserID:   user.ID,
    Email:    user.Email,
    Username: user.Username,
    Role:     user.Role,
    RegisteredClaims: jwt.RegisteredClaims{
      ExpiresAt: jwt.NewNumericDate(now.Add(as.accessTTL)),
      IssuedAt:  jwt.NewNumericDate(now),
    },
  }
  token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
  return token.SignedString([]byte(as.jwtSecretKey))
}

// ParseToken collapses every failure mode (bad signature, malformed token,
// expired) into the same unauthenticated outcome.
func (as *authService) ParseToken(tokenString string) (*Claims, error) {
  parsedToken, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
    if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
      return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
    }
    return []byte(as.jwtSecretKey), nil
  })
  if err != nil {
    return nil, apierr.Unauthenticated("invalid or expired token")
  }
  claims, ok := parsedToken.Claims.(*Claims)
  if !ok || !parsedToken.Valid {
    return nil, apierr.Unauthenticated("invalid or expired token")
  }
  return claims, nil
}

// SetContextFromToken resolves the bearer token to a live principal. The
// user row is re-read so a deleted or deactivated account fails even while
// its token is still unexpired.
func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
  claims, err := as.ParseToken(tokenString)
  if err != nil {
    return ctx, err
  }
  user, err := as.userRepo.GetByID(ctx, nil, claims.UserID)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return ctx, apierr.Unauthenticated("invalid or expired token")
    }
    return ctx, fmt.Errorf("load user: %w", err)
  }
  if !user.IsActive {
    return ctx, apierr.Unauthenticated("account is inactive")
  }

  rd := &requestdata.RequestData{
    TokenString: tokenString,
    UserID:      user.ID,
    Username:    user.Username,
    Role:        user.Role,
  }
  return requestdata.WithRequestData(ctx, rd), nil
}

func (as *authService) AccessTTL() time.Duration {
  return as.accessTTL
}
