package models

import "strconv"

// Int64 returns a pointer to v.
func Int64(v int64) *int64 {
	return &v
}

// sameID is the identity rule of all models: unassigned ids never match.
func sameID(a, b *int64) bool {
	return a != nil && b != nil && *a == *b
}

func fmtID(v *int64) string {
	if v == nil {
		return "null"
	}

	return strconv.FormatInt(*v, 10)
}
