package summarize

import (
	"fmt"
	"strings"
)

// defaultSeparators is the split priority: paragraph break, line break,
// sentence terminators, word boundary, then a hard character split.
var defaultSeparators = []string{"\n\n", "\n", ".", "!", "?", " ", ""}

// Splitter breaks a transcript into ordered chunks bounded by a maximum
// size, preferring coarse semantic boundaries and carrying a trailing
// overlap between adjacent chunks.
type Splitter struct {
	chunkSize  int
	overlap    int
	separators []string
}

// NewSplitter creates a Splitter. overlap >= chunkSize is an illegal
// configuration and is rejected rather than corrected.
func NewSplitter(chunkSize, overlap int) (*Splitter, error) {
	if chunkSize <= 0 {
		return nil, fmt.Errorf("chunk size must be positive, got %d", chunkSize)
	}
	if overlap < 0 || overlap >= chunkSize {
		return nil, fmt.Errorf("overlap (%d) must be non-negative and smaller than chunk size (%d)", overlap, chunkSize)
	}
	return &Splitter{
		chunkSize:  chunkSize,
		overlap:    overlap,
		separators: defaultSeparators,
	}, nil
}

// Split returns the ordered chunks of text. Any input, including empty,
// yields at least one chunk; input that already fits in one chunk is
// returned unchanged.
func (s *Splitter) Split(text string) []string {
	if len(text) <= s.chunkSize {
		return []string{text}
	}

	chunks := s.splitRecursive(text, s.separators)
	if len(chunks) == 0 {
		return []string{""}
	}
	return chunks
}

// splitRecursive splits text on the coarsest separator present; pieces
// that still exceed the chunk size are re-split with the remaining finer
// separators.
func (s *Splitter) splitRecursive(text string, separators []string) []string {
	sep := ""
	rest := separators
	for i, candidate := range separators {
		if candidate == "" || strings.Contains(text, candidate) {
			sep = candidate
			rest = separators[i+1:]
			break
		}
	}

	pieces := splitKeepSeparator(text, sep)

	var chunks []string
	var pending []string

	flush := func() {
		if len(pending) > 0 {
			chunks = append(chunks, s.merge(pending)...)
			pending = nil
		}
	}

	for _, piece := range pieces {
		if len(piece) <= s.chunkSize {
			pending = append(pending, piece)
			continue
		}
		flush()
		chunks = append(chunks, s.splitRecursive(piece, rest)...)
	}
	flush()

	return chunks
}

// splitKeepSeparator splits text with the separator kept attached to the
// end of the preceding piece. The empty separator splits into runes.
func splitKeepSeparator(text, sep string) []string {
	var raw []string
	if sep == "" {
		raw = strings.Split(text, "")
	} else {
		raw = strings.SplitAfter(text, sep)
	}

	pieces := raw[:0]
	for _, p := range raw {
		if p != "" {
			pieces = append(pieces, p)
		}
	}
	return pieces
}

// merge packs small adjacent pieces into chunks up to the size limit.
// When a chunk is emitted, trailing pieces totaling at most the overlap
// length are carried into the next chunk.
func (s *Splitter) merge(pieces []string) []string {
	var chunks []string
	var current []string
	curLen := 0

	emit := func() {
		if c := strings.TrimSpace(strings.Join(current, "")); c != "" {
			chunks = append(chunks, c)
		}
	}

	for _, p := range pieces {
		if curLen+len(p) > s.chunkSize && curLen > 0 {
			emit()
			for curLen > s.overlap || (curLen+len(p) > s.chunkSize && curLen > 0) {
				curLen -= len(current[0])
				current = current[1:]
			}
		}
		current = append(current, p)
		curLen += len(p)
	}
	emit()

	return chunks
}
