package types

type Role string

const (
  RoleAdmin      Role = "admin"
  RoleInstructor Role = "instructor"
  RoleStudent    Role = "student"
)

func (r Role) Valid() bool {
  switch r {
  case RoleAdmin, RoleInstructor, RoleStudent:
    return true
  default:
    return false
  }
}

type CourseLevel string

const (
  LevelBeginner     CourseLevel = "beginner"
  LevelIntermediate CourseLevel = "intermediate"
  LevelAdvanced     CourseLevel = "advanced"
)

func (l CourseLevel) Valid() bool {
  switch l {
  case LevelBeginner, LevelIntermediate, LevelAdvanced:
    return true
  default:
    return false
  }
}
