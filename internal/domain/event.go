package domain

import "time"

// Event represents one item from a GitHub user's public activity feed.
// Events arrive most-recent-first and are immutable once fetched.
type Event struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Actor     Actor     `json:"actor"`
	Repo      Repo      `json:"repo"`
	Payload   Payload   `json:"payload"`
	CreatedAt time.Time `json:"created_at"`
}

// Actor identifies the user that triggered an event.
type Actor struct {
	Login string `json:"login"`
}

// Repo identifies the repository an event happened in.
// Name is the full name ("owner/repo").
type Repo struct {
	Name string `json:"name"`
}

// Payload carries the type-specific fields of an event. Only the fields
// relevant to the supported event types are decoded; everything else is
// ignored.
type Payload struct {
	RefType      string   `json:"ref_type,omitempty"`
	Ref          string   `json:"ref,omitempty"`
	MasterBranch string   `json:"master_branch,omitempty"`
	Size         int      `json:"size,omitempty"`
	Commits      []Commit `json:"commits,omitempty"`
	Action       string   `json:"action,omitempty"`
	Number       int      `json:"number,omitempty"`
	Issue        *Issue   `json:"issue,omitempty"`
}

// Commit is a single commit in a PushEvent payload.
type Commit struct {
	SHA     string `json:"sha"`
	Message string `json:"message"`
}

// Issue carries the fields of an IssuesEvent payload that we display.
type Issue struct {
	Number int `json:"number"`
}

// CommitCount returns the number of commits in a push. The API reports the
// count in "size"; older payloads only carry the commit list.
func (p Payload) CommitCount() int {
	if p.Size > 0 {
		return p.Size
	}
	return len(p.Commits)
}
