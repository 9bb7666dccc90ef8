// Package provider defines the contract for external text generation.
// A nil provider is a valid, expected state: the reflection pipeline
// falls back to deterministic synthesis when no provider is configured.
package provider

import "context"

// TextProvider generates free text from a prompt. Implementations must
// honor context cancellation; callers bound every call with a timeout.
type TextProvider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
