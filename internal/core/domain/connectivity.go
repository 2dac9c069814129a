package domain

// ConnectivityState is the most recent network reachability event.
// There is no queue; consumers always see current state, never a
// historical feed.
type ConnectivityState struct {
	// IsConnected reports whether a network interface is up.
	IsConnected bool `json:"isConnected"`
	// IsInternetReachable reports whether the wider internet responded.
	// Nil means the platform has not determined reachability yet.
	IsInternetReachable *bool `json:"isInternetReachable"`
	// Raw carries the platform-specific event payload verbatim.
	Raw map[string]any `json:"raw,omitempty"`
}

// Online reports whether the device is connected and the internet is
// known to be reachable. An undetermined reachability counts as
// offline (fail closed).
func (s ConnectivityState) Online() bool {
	return s.IsConnected && s.IsInternetReachable != nil && *s.IsInternetReachable
}
