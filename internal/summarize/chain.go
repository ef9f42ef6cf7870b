package summarize

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tharindu-dev/noteflow/internal/logger"
)

// NoteChain runs map-reduce summarization: one call per chunk producing a
// partial note, then a single combine call over all partials in chunk
// order.
type NoteChain struct {
	caller *RetryingCaller
	logger logger.Logger
}

// NewNoteChain creates a chain over the given caller.
func NewNoteChain(caller *RetryingCaller, log logger.Logger) *NoteChain {
	return &NoteChain{caller: caller, logger: log}
}

// Run produces the combined study note for the ordered chunks. A failing
// chunk aborts the whole run with its index; the chunks' source order is
// preserved into the combine step.
func (n *NoteChain) Run(ctx context.Context, chunks []string) (string, error) {
	if len(chunks) == 0 {
		return "", fmt.Errorf("no chunks to summarize")
	}

	start := time.Now()
	n.logger.Info(ctx, "Starting summarization of %d chunks", len(chunks))

	partials := make([]string, len(chunks))
	for i, chunk := range chunks {
		n.logger.Info(ctx, "Summarizing chunk %d/%d (%d characters)", i+1, len(chunks), len(chunk))

		partial, err := n.caller.Call(ctx, fmt.Sprintf(mapPrompt, chunk))
		if err != nil {
			return "", fmt.Errorf("summarize chunk %d/%d: %w", i+1, len(chunks), err)
		}
		partials[i] = partial
	}

	n.logger.Info(ctx, "Combining %d partial notes", len(partials))

	combined, err := n.caller.Call(ctx, fmt.Sprintf(combinePrompt, strings.Join(partials, "\n\n")))
	if err != nil {
		return "", fmt.Errorf("combine summaries: %w", err)
	}

	n.logger.Info(ctx, "Summarization completed in %.1f minutes", time.Since(start).Minutes())
	return combined, nil
}
