// Package api is the HTTP client for the Homebase backend: auth,
// rooms, tenants, tickets, documents, and analytics.
//
// The client is stateless. Every call hits the network; nothing is
// cached, nothing is retried. A non-2xx response is surfaced verbatim
// as *Error so callers can classify it. Bearer tokens come from an
// oauth2.TokenSource wired to the session.
package api
