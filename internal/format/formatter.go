// Package format turns activity events into display lines.
package format

import (
	"fmt"
	"strings"

	"github.com/vilaca/github-activity/internal/domain"
)

// Line renders a single human-readable line for an event. It is total
// over event types: an unrecognized tag degrades to a generic notice
// instead of failing, so new GitHub event types never break the output.
func Line(e domain.Event) string {
	repo := e.Repo.Name

	switch e.Type {
	case domain.EventCreate:
		// An empty ref means the repository itself was created; the
		// payload still names the default branch.
		ref := e.Payload.Ref
		if ref == "" {
			ref = e.Payload.MasterBranch
		}
		return fmt.Sprintf("Created %s %s in %s", e.Payload.RefType, ref, repo)

	case domain.EventDelete:
		return fmt.Sprintf("Deleted %s %s in %s", e.Payload.RefType, e.Payload.Ref, repo)

	case domain.EventPush:
		return fmt.Sprintf("Pushed %d commit(s) to %s", e.Payload.CommitCount(), repo)

	case domain.EventFork:
		return fmt.Sprintf("Forked %s", repo)

	case domain.EventWatch:
		return fmt.Sprintf("Starred %s", repo)

	case domain.EventIssues:
		return fmt.Sprintf("%s issue #%d in %s", capitalize(e.Payload.Action), issueNumber(e), repo)

	case domain.EventPullRequest:
		return fmt.Sprintf("%s pull request #%d in %s", capitalize(e.Payload.Action), e.Payload.Number, repo)

	default:
		return fmt.Sprintf("Unhandled event type: %s", e.Type)
	}
}

// issueNumber prefers the nested issue number; some payloads only carry
// the top-level one.
func issueNumber(e domain.Event) int {
	if e.Payload.Issue != nil {
		return e.Payload.Issue.Number
	}
	return e.Payload.Number
}

// capitalize upper-cases the first letter of an action ("opened" ->
// "Opened"). Actions are plain ASCII words in the GitHub API.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
