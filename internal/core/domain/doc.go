// Package domain contains the core types of the Homebase session and
// navigation layer: credentials, session state, navigation history,
// connectivity state, diagnostics entries, and the property-management
// resources exchanged with the remote API.
//
// Domain types have no dependencies on adapters or services. They carry
// JSON tags because both the persisted credential record and the API
// payloads are JSON.
package domain
