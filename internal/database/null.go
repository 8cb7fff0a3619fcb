package database

// nullableString returns a pointer to s, or nil when s is empty. Optional
// text columns store NULL rather than "".
func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
