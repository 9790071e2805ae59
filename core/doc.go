// Package core provides the foundational domain types and interfaces used by
// PanelMesh. It defines the core abstractions for:
//
//   - Turns (immutable role/content records of a conversation)
//   - History (append-only per-session conversation record)
//   - QA memory (durable question/answer recall contract)
//   - Reply (tagged outcome of a capability call)
//
// The package intentionally keeps implementation concerns (persistence,
// concrete model adapters, orchestration) out of scope, exposing small
// interfaces to enable custom backends and extensions.
package core
