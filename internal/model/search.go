package model

import "strings"

// SearchFilter holds optional search criteria. Zero values mean "absent":
// blank Name/Genre after trimming and ID <= 0 do not filter anything.
type SearchFilter struct {
	Name  string
	ID    int64
	Genre string
}

// NameTerm returns the lowercased, trimmed name filter and whether it is present.
func (f SearchFilter) NameTerm() (string, bool) {
	return term(f.Name)
}

// GenreTerm returns the lowercased, trimmed genre filter and whether it is present.
func (f SearchFilter) GenreTerm() (string, bool) {
	return term(f.Genre)
}

func (f SearchFilter) HasID() bool {
	return f.ID > 0
}

func (f SearchFilter) IsEmpty() bool {
	_, byName := f.NameTerm()
	_, byGenre := f.GenreTerm()
	return !byName && !f.HasID() && !byGenre
}

func term(s string) (string, bool) {
	t := strings.TrimSpace(s)
	if t == "" {
		return "", false
	}
	return strings.ToLower(t), true
}
