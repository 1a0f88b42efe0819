// Package inputs provides the boundary collaborators that feed raw prose
// into the pipeline: a fixed string, a polled URL, and a push endpoint.
package inputs

import "context"

// TextFunc receives one piece of raw text, ready to be handed to
// core.Pipeline.ProcessWithMap by the caller. Sources never call the
// pipeline themselves, so this package stays free of a dependency on
// package core.
type TextFunc func(text string)

// Source is a long-running boundary collaborator that produces text for
// the pipeline until ctx is canceled.
type Source interface {
	Start(ctx context.Context) error
}
