// Package driven defines the outbound ports of the session core:
// interfaces the services require from infrastructure (storage, the
// remote API, the platform connectivity feed, the live navigation tree,
// and the alert surface). Adapters under internal/adapters/driven
// provide the implementations.
package driven
