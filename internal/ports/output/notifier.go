package output

// Notifier pushes coarse change notifications to connected clients.
// Receivers re-fetch the full thread aggregate; the notification carries no
// authoritative state.
type Notifier interface {
	ThreadChanged(threadID uint, userIDs []string)
}
