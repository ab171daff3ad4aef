package policy

import (
  "github.com/edukita/lms-backend/internal/types"
)

// Principal is the authenticated caller; nil means anonymous.
type Principal struct {
  UserID uint
  Role   types.Role
}

func CanListUsers(p *Principal) bool {
  return p != nil && p.Role == types.RoleAdmin
}

// CanModifyUser allows a user to update their own record, and admins to
// update anyone's.
func CanModifyUser(p *Principal, targetID uint) bool {
  if p == nil {
    return false
  }
  switch p.Role {
  case types.RoleAdmin:
    return true
  case types.RoleInstructor, types.RoleStudent:
    return p.UserID == targetID
  default:
    return false
  }
}

func CanDeleteUser(p *Principal) bool {
  return p != nil && p.Role == types.RoleAdmin
}

func CanCreateCourse(p *Principal) bool {
  if p == nil {
    return false
  }
  switch p.Role {
  case types.RoleAdmin, types.RoleInstructor:
    return true
  default:
    return false
  }
}

// CanManageCourse covers update/delete of a course and create/update/delete
// of its lessons and assignments: the owning instructor or an admin.
func CanManageCourse(p *Principal, instructorID uint) bool {
  if p == nil {
    return false
  }
  switch p.Role {
  case types.RoleAdmin:
    return true
  case types.RoleInstructor:
    return p.UserID == instructorID
  default:
    return false
  }
}

// CanEnroll requires the student role exactly; admins cannot enroll on a
// student's behalf through this path.
func CanEnroll(p *Principal) bool {
  return p != nil && p.Role == types.RoleStudent
}

func CanSubmit(p *Principal) bool {
  return p != nil && p.Role == types.RoleStudent
}

// CanGrade is the ownership rule applied through the assignment's course.
func CanGrade(p *Principal, courseInstructorID uint) bool {
  return CanManageCourse(p, courseInstructorID)
}
