package domain

import "time"

// Tweet is a single post as returned by the Twitter API, reduced to what
// the embed fragment needs.
type Tweet struct {
	ID        string
	Text      string
	CreatedAt time.Time
	Author    Author
}

type Author struct {
	ID       string
	Name     string
	Username string
}

// Permalink returns the public URL of the post under its author's handle.
func (t *Tweet) Permalink(id string) string {
	if id == "" {
		id = t.ID
	}
	return "https://twitter.com/" + t.Author.Username + "/status/" + id
}
