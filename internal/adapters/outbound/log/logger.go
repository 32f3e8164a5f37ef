package log

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/cleitonmarx/symbiont/depend"
)

// InitLogger registers the process-wide *log.Logger used by every component.
type InitLogger struct {
	Prefix string `config:"LOG_PREFIX" default:"atlas "`
	out    io.Writer
}

// Initialize registers the logger in the dependency container.
func (il InitLogger) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register(NewLogger(il.output(), il.Prefix))
	return ctx, nil
}

func (il InitLogger) output() io.Writer {
	if il.out != nil {
		return il.out
	}
	return os.Stdout
}

// NewLogger creates a logger that writes timestamped lines with the prefix placed
// right before the message.
func NewLogger(w io.Writer, prefix string) *log.Logger {
	return log.New(w, prefix, log.LstdFlags|log.Lmsgprefix)
}
