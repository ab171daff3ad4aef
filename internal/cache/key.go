package cache

import (
  "sort"
  "strings"
)

// Key builds a canonical cache key: namespace, operation, then sorted
// non-empty params as k=v segments. The same filters always produce the
// same key regardless of argument order.
//
//   Key("courses", "list", map[string]string{"level": "beginner"})
//   -> "courses:list:level=beginner"
func Key(namespace, op string, params map[string]string) string {
  parts := []string{namespace, op}

  keys := make([]string, 0, len(params))
  for k, v := range params {
    if v == "" {
      continue
    }
    keys = append(keys, k)
  }
  sort.Strings(keys)

  for _, k := range keys {
    parts = append(parts, k+"="+params[k])
  }
  return strings.Join(parts, ":")
}
