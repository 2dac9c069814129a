// Package services implements the driving ports of the session core:
// the session manager, navigation coordinator, connectivity monitor,
// error log, and document upload saga.
//
// Services are explicitly constructed, dependency-injected instances.
// The application root owns one of each; tests construct as many
// isolated instances as they need. Every shared buffer is guarded by a
// mutex; callers may arrive from any goroutine.
package services
