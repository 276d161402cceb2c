// Package llm provides the boundary to the external text-generation service:
// a single-operation client interface, its OpenAI-backed implementation, the
// tolerant response decoder, and the call-pacing policy.
package llm

import "context"

// Client is the sole generation boundary. Given a prompt it returns the raw
// completion text or a transient failure. Responses are treated as
// possibly-non-JSON; callers decode them with DecodeInto.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
