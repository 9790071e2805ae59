// Package agent wraps one text-generation backend behind a named capability.
// An Agent assembles the full message list (role instruction, shared history,
// current user message), forwards it to its model and post-processes the
// reply. Failures never escape this boundary: transport, parse and backend
// errors all degrade to inline sentinel text so one failing backend cannot
// abort a panel round.
package agent
