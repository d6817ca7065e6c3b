package domain

// Event type tags used by the GitHub events API. The set is open: the API
// may introduce new tags at any time, so consumers must handle arbitrary
// strings.
const (
	EventCreate      = "CreateEvent"
	EventDelete      = "DeleteEvent"
	EventPush        = "PushEvent"
	EventFork        = "ForkEvent"
	EventWatch       = "WatchEvent"
	EventIssues      = "IssuesEvent"
	EventPullRequest = "PullRequestEvent"
)

// SupportedEventTypes returns the event types with a dedicated display
// format, in display-documentation order.
func SupportedEventTypes() []string {
	return []string{
		EventCreate,
		EventDelete,
		EventPush,
		EventFork,
		EventWatch,
		EventIssues,
		EventPullRequest,
	}
}

// IsSupportedEventType reports whether t has a dedicated display format.
// Unsupported types are still displayed, via a generic fallback line.
func IsSupportedEventType(t string) bool {
	for _, s := range SupportedEventTypes() {
		if s == t {
			return true
		}
	}
	return false
}
