// Package connectivity implements the platform side of network-state
// observation: a one-shot reachability probe and a watcher that pushes
// change events into the monitor, standing in for the mobile OS's own
// connectivity event dispatch.
package connectivity

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/homebase-labs/homebase-core/internal/core/domain"
	"github.com/homebase-labs/homebase-core/internal/core/ports/driven"
)

// Ensure Probe implements the interface.
var _ driven.ConnectivityProbe = (*Probe)(nil)

// DefaultEndpoint is probed for internet reachability. Any 2xx-4xx
// answer proves the network path; only transport failure counts as
// unreachable.
const DefaultEndpoint = "https://api.homebase.app/healthz"

// Probe answers one-shot reachability queries. Interface presence
// determines IsConnected; an HTTP round trip determines
// IsInternetReachable.
type Probe struct {
	endpoint string
	hc       *http.Client
}

// NewProbe creates a probe against the given endpoint. An empty
// endpoint selects DefaultEndpoint.
func NewProbe(endpoint string) *Probe {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Probe{
		endpoint: endpoint,
		hc:       &http.Client{Timeout: 5 * time.Second},
	}
}

// Check queries current reachability. The error path is taken only
// when the host's interface state cannot be read at all; the caller
// fails closed on it.
func (p *Probe) Check(ctx context.Context) (domain.ConnectivityState, error) {
	connected, err := hasNetworkInterface()
	if err != nil {
		return domain.ConnectivityState{}, err
	}

	state := domain.ConnectivityState{
		IsConnected: connected,
		Raw:         map[string]any{"endpoint": p.endpoint},
	}
	if !connected {
		reachable := false
		state.IsInternetReachable = &reachable
		return state, nil
	}

	reachable := p.reachable(ctx)
	state.IsInternetReachable = &reachable
	return state, nil
}

// reachable performs the HTTP round trip. Any response at all counts;
// only a transport failure means unreachable.
func (p *Probe) reachable(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, p.endpoint, nil)
	if err != nil {
		return false
	}
	resp, err := p.hc.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return true
}

// hasNetworkInterface reports whether any non-loopback interface is up
// with an address assigned.
func hasNetworkInterface() (bool, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return false, err
	}
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		if len(addrs) > 0 {
			return true, nil
		}
	}
	return false, nil
}
