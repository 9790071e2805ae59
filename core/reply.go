package core

// Reply is the tagged outcome of one capability call. Failed marks replies
// whose text is a sentinel produced from a transport, parse or backend error
// rather than real model output. Both kinds flow identically downstream as
// text; the tag keeps the "never errors past the boundary" contract explicit
// and testable.
type Reply struct {
	Text   string
	Failed bool
}

// OkReply wraps successful model output.
func OkReply(text string) Reply { return Reply{Text: text} }

// FailedReply wraps a sentinel produced from a failure.
func FailedReply(sentinel string) Reply { return Reply{Text: sentinel, Failed: true} }
