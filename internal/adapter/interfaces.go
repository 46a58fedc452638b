package adapter

import "context"

// TipGenerator produces a short supportive message for the given user text
// and detected emotion.
//
// Implementations are best-effort: GenerateTip always returns usable tip
// text. When the upstream call fails the returned tip is one of the fixed
// fallback strings and err carries the cause so callers can log it; err is
// never fatal for the request.
type TipGenerator interface {
	GenerateTip(ctx context.Context, text string, emotion string) (string, error)
}
