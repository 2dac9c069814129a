// Package driving defines the inbound ports of the session core: the
// interfaces the presentation layer (and the developer CLI) program
// against. Services under internal/core/services implement them.
package driving
