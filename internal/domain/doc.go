// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/filename, domain/version,
// domain/launch). This root package holds sentinel errors, validation types,
// and the Action interface used to stage reversible filesystem work.
package domain
