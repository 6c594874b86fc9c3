package e621

// Bool returns a pointer to v, for filling optional fields.
func Bool(v bool) *bool { return &v }

// Int returns a pointer to v, for filling optional fields.
func Int(v int) *int { return &v }

// Int64 returns a pointer to v, for filling optional fields.
func Int64(v int64) *int64 { return &v }

// String returns a pointer to v, for filling optional fields.
func String(v string) *string { return &v }
