package credential

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// ReaderPrompter asks for a key on w and reads one line from r.
type ReaderPrompter struct {
	r *bufio.Reader
	w io.Writer
}

// NewReaderPrompter creates a prompter reading from r and writing the
// question to w.
func NewReaderPrompter(r io.Reader, w io.Writer) *ReaderPrompter {
	return &ReaderPrompter{r: bufio.NewReader(r), w: w}
}

// PromptKey implements Prompter.
func (p *ReaderPrompter) PromptKey(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := fmt.Fprint(p.w, "Gemini API key: "); err != nil {
		return "", err
	}

	line, err := p.r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("failed to read key: %w", err)
	}
	return strings.TrimSpace(line), nil
}
