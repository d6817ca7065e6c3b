package format

import (
	"testing"

	"github.com/vilaca/github-activity/internal/domain"
)

// TestLine tests the display format for every supported event type plus
// the generic fallback.
func TestLine(t *testing.T) {
	cases := []struct {
		name  string
		event domain.Event
		want  string
	}{
		{
			name: "create branch",
			event: domain.Event{
				Type: domain.EventCreate,
				Repo: domain.Repo{Name: "octo/repo"},
				Payload: domain.Payload{
					RefType: "branch",
					Ref:     "feature-x",
				},
			},
			want: "Created branch feature-x in octo/repo",
		},
		{
			name: "create repository falls back to default branch",
			event: domain.Event{
				Type: domain.EventCreate,
				Repo: domain.Repo{Name: "octo/repo"},
				Payload: domain.Payload{
					RefType:      "repository",
					MasterBranch: "main",
				},
			},
			want: "Created repository main in octo/repo",
		},
		{
			name: "delete tag",
			event: domain.Event{
				Type: domain.EventDelete,
				Repo: domain.Repo{Name: "octo/repo"},
				Payload: domain.Payload{
					RefType: "tag",
					Ref:     "v1.0.0",
				},
			},
			want: "Deleted tag v1.0.0 in octo/repo",
		},
		{
			name: "push with size",
			event: domain.Event{
				Type:    domain.EventPush,
				Repo:    domain.Repo{Name: "octo/repo"},
				Payload: domain.Payload{Size: 3},
			},
			want: "Pushed 3 commit(s) to octo/repo",
		},
		{
			name: "push counts commit list when size is missing",
			event: domain.Event{
				Type: domain.EventPush,
				Repo: domain.Repo{Name: "octo/repo"},
				Payload: domain.Payload{
					Commits: []domain.Commit{{SHA: "a"}, {SHA: "b"}},
				},
			},
			want: "Pushed 2 commit(s) to octo/repo",
		},
		{
			name: "fork",
			event: domain.Event{
				Type: domain.EventFork,
				Repo: domain.Repo{Name: "octo/repo"},
			},
			want: "Forked octo/repo",
		},
		{
			name: "watch",
			event: domain.Event{
				Type: domain.EventWatch,
				Repo: domain.Repo{Name: "octo/repo"},
			},
			want: "Starred octo/repo",
		},
		{
			name: "issue opened",
			event: domain.Event{
				Type: domain.EventIssues,
				Repo: domain.Repo{Name: "octo/repo"},
				Payload: domain.Payload{
					Action: "opened",
					Issue:  &domain.Issue{Number: 42},
				},
			},
			want: "Opened issue #42 in octo/repo",
		},
		{
			name: "pull request closed",
			event: domain.Event{
				Type: domain.EventPullRequest,
				Repo: domain.Repo{Name: "octo/repo"},
				Payload: domain.Payload{
					Action: "closed",
					Number: 7,
				},
			},
			want: "Closed pull request #7 in octo/repo",
		},
		{
			name: "unknown type",
			event: domain.Event{
				Type: "GollumEvent",
				Repo: domain.Repo{Name: "octo/repo"},
			},
			want: "Unhandled event type: GollumEvent",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Line(tc.event)
			if got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

// TestLine_Total tests that arbitrary unseen type tags always produce a
// non-empty line (the formatter never fails).
func TestLine_Total(t *testing.T) {
	for _, typ := range []string{"", "SponsorshipEvent", "x", "PushEvent2"} {
		got := Line(domain.Event{Type: typ, Repo: domain.Repo{Name: "octo/repo"}})
		if got == "" {
			t.Errorf("type %q: expected a non-empty line", typ)
		}
	}
}

// TestLine_OrderPreserved tests that formatting a sequence keeps its order.
func TestLine_OrderPreserved(t *testing.T) {
	// Arrange
	events := []domain.Event{
		{Type: domain.EventWatch, Repo: domain.Repo{Name: "octo/a"}},
		{Type: domain.EventFork, Repo: domain.Repo{Name: "octo/b"}},
		{Type: domain.EventWatch, Repo: domain.Repo{Name: "octo/c"}},
	}
	want := []string{
		"Starred octo/a",
		"Forked octo/b",
		"Starred octo/c",
	}

	// Act & Assert
	for i, e := range events {
		if got := Line(e); got != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], got)
		}
	}
}
