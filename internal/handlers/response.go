package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/edukita/lms-backend/internal/apierr"
)

type ErrorResponse struct {
  Error  string  `json:"error"`
  Detail string  `json:"detail,omitempty"`
}

// RespondError maps a service error onto the error envelope. Anything
// outside the apierr taxonomy becomes an opaque 500.
func RespondError(c *gin.Context, err error) {
  if ae, ok := apierr.As(err); ok {
    c.JSON(ae.Status, ErrorResponse{Error: ae.Error()})
    return
  }
  c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

func RespondValidationError(c *gin.Context, err error) {
  resp := ErrorResponse{Error: "invalid request body"}
  if err != nil {
    resp.Detail = err.Error()
  }
  c.JSON(http.StatusBadRequest, resp)
}

func RespondOK(c *gin.Context, payload any) {
  c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
  c.JSON(http.StatusCreated, payload)
}
