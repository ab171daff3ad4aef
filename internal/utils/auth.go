package utils

import (
  "strings"

  "golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
  hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
  if err != nil {
    return "", err
  }
  return string(hashed), nil
}

func CheckPassword(password, hash string) bool {
  return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func NormalizeEmail(email string) string {
  return strings.ToLower(strings.TrimSpace(email))
}

func NormalizeInput(s string) string {
  return strings.TrimSpace(s)
}
