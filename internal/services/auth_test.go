package services

import (
  "context"
  "net/http"
  "testing"
  "time"

  "github.com/edukita/lms-backend/internal/repos"
  "github.com/edukita/lms-backend/internal/requestdata"
  "github.com/edukita/lms-backend/internal/types"
)

func newAuthService(t *testing.T) AuthService {
  t.Helper()
  gdb := newTestDB(t)
  log := newTestLogger(t)
  return NewAuthService(gdb, log, repos.NewUserRepo(gdb, log), "test-secret", time.Hour)
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
  as := newAuthService(t)
  ctx := context.Background()

  resp, err := as.Register(ctx, RegisterInput{
    Email:    "Alice@Example.COM",
    Username: "alice",
    Password: "password123",
  })
  if err != nil {
    t.Fatalf("Register failed: %v", err)
  }
  if resp.AccessToken == "" {
    t.Fatal("expected an access token")
  }
  if resp.TokenType != "bearer" {
    t.Fatalf("unexpected token type %q", resp.TokenType)
  }
  if resp.User.Email != "alice@example.com" {
    t.Fatalf("expected normalized email, got %q", resp.User.Email)
  }
  if resp.User.Role != types.RoleStudent {
    t.Fatalf("expected default student role, got %q", resp.User.Role)
  }

  login, err := as.Login(ctx, "alice@example.com", "password123")
  if err != nil {
    t.Fatalf("Login failed: %v", err)
  }
  if login.User.LastLogin == nil {
    t.Fatal("expected last_login to be recorded")
  }
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
  as := newAuthService(t)
  ctx := context.Background()

  input := RegisterInput{Email: "bob@example.com", Username: "bob", Password: "password123"}
  if _, err := as.Register(ctx, input); err != nil {
    t.Fatalf("first Register failed: %v", err)
  }

  input.Username = "bob2"
  _, err := as.Register(ctx, input)
  ae := wantAPIError(t, err, http.StatusBadRequest)
  if ae.Code != "duplicate" {
    t.Fatalf("expected duplicate code, got %q", ae.Code)
  }
}

func TestAuthService_RegisterInvalidRole(t *testing.T) {
  as := newAuthService(t)

  _, err := as.Register(context.Background(), RegisterInput{
    Email:    "eve@example.com",
    Username: "eve",
    Password: "password123",
    Role:     types.Role("superuser"),
  })
  wantAPIError(t, err, http.StatusBadRequest)
}

func TestAuthService_LoginFailures(t *testing.T) {
  gdb := newTestDB(t)
  log := newTestLogger(t)
  as := NewAuthService(gdb, log, repos.NewUserRepo(gdb, log), "test-secret", time.Hour)
  ctx := context.Background()

  if _, err := as.Register(ctx, RegisterInput{Email: "carol@example.com", Username: "carol", Password: "password123"}); err != nil {
    t.Fatalf("Register failed: %v", err)
  }

  t.Run("wrong password", func(t *testing.T) {
    _, err := as.Login(ctx, "carol@example.com", "nope")
    wantAPIError(t, err, http.StatusUnauthorized)
  })

  t.Run("unknown email", func(t *testing.T) {
    _, err := as.Login(ctx, "nobody@example.com", "password123")
    wantAPIError(t, err, http.StatusUnauthorized)
  })

  t.Run("inactive account", func(t *testing.T) {
    if err := gdb.Model(&types.User{}).Where("email = ?", "carol@example.com").Update("is_active", false).Error; err != nil {
      t.Fatalf("failed to deactivate user: %v", err)
    }
    _, err := as.Login(ctx, "carol@example.com", "password123")
    wantAPIError(t, err, http.StatusUnauthorized)
  })
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
  gdb := newTestDB(t)
  log := newTestLogger(t)
  as := NewAuthService(gdb, log, repos.NewUserRepo(gdb, log), "test-secret", time.Hour)

  user := createTestUser(t, gdb, types.RoleInstructor, "dave")
  token, err := as.GenerateToken(user)
  if err != nil {
    t.Fatalf("GenerateToken failed: %v", err)
  }

  claims, err := as.ParseToken(token)
  if err != nil {
    t.Fatalf("ParseToken failed: %v", err)
  }
  if claims.UserID != user.ID || claims.Username != "dave" || claims.Role != types.RoleInstructor {
    t.Fatalf("unexpected claims: %+v", claims)
  }

  ctx, err := as.SetContextFromToken(context.Background(), token)
  if err != nil {
    t.Fatalf("SetContextFromToken failed: %v", err)
  }
  rd := requestdata.GetRequestData(ctx)
  if rd == nil || rd.UserID != user.ID || rd.Role != types.RoleInstructor {
    t.Fatalf("unexpected request data: %+v", rd)
  }
}

func TestAuthService_ParseTokenRejectsBadInput(t *testing.T) {
  gdb := newTestDB(t)
  log := newTestLogger(t)
  as := NewAuthService(gdb, log, repos.NewUserRepo(gdb, log), "test-secret", time.Hour)
  user := createTestUser(t, gdb, types.RoleStudent, "erin")

  t.Run("garbage token", func(t *testing.T) {
    _, err := as.ParseToken("not.a.token")
    wantAPIError(t, err, http.StatusUnauthorized)
  })

  t.Run("wrong secret", func(t *testing.T) {
    other := NewAuthService(gdb, log, repos.NewUserRepo(gdb, log), "other-secret", time.Hour)
    token, err := other.GenerateToken(user)
    if err != nil {
      t.Fatalf("GenerateToken failed: %v", err)
    }
    _, err = as.ParseToken(token)
    wantAPIError(t, err, http.StatusUnauthorized)
  })

  t.Run("expired token", func(t *testing.T) {
    expired := NewAuthService(gdb, log, repos.NewUserRepo(gdb, log), "test-secret", -time.Hour)
    token, err := expired.GenerateToken(user)
    if err != nil {
      t.Fatalf("GenerateToken failed: %v", err)
    }
    _, err = as.ParseToken(token)
    wantAPIError(t, err, http.StatusUnauthorized)
  })
}

func TestAuthService_SetContextFromTokenRejectsDeactivated(t *testing.T) {
  gdb := newTestDB(t)
  log := newTestLogger(t)
  as := NewAuthService(gdb, log, repos.NewUserRepo(gdb, log), "test-secret", time.Hour)

  user := createTestUser(t, gdb, types.RoleStudent, "frank")
  token, err := as.GenerateToken(user)
  if err != nil {
    t.Fatalf("GenerateToken failed: %v", err)
  }

  if err := gdb.Model(&types.User{}).Where("id = ?", user.ID).Update("is_active", false).Error; err != nil {
    t.Fatalf("failed to deactivate user: %v", err)
  }

  _, err = as.SetContextFromToken(context.Background(), token)
  wantAPIError(t, err, http.StatusUnauthorized)
}
