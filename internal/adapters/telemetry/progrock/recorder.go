// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/packager/internal/core/ports"
	"go.trai.ch/packager/internal/ui/style"
)

// Recorder implements ports.Telemetry using a progrock recorder.
// Status updates go to a tape, which backs the closing summary, and to any
// additional writers such as a Console.
type Recorder struct {
	tape    *progrock.Tape
	w       progrock.Writer
	rec     *progrock.Recorder
	console *Console
	seq     atomic.Uint64

	mu      sync.Mutex
	summary io.Writer
}

// New creates a new Recorder streaming vertex progress and output to out.
// If out is nil, os.Stderr is used.
func New(out io.Writer) *Recorder {
	if out == nil {
		out = os.Stderr
	}
	console := NewConsole(out)
	r := NewRecorder(console)
	r.console = console
	r.summary = out
	return r
}

// NewRecorder creates a new Recorder that also forwards every status update to w.
func NewRecorder(w progrock.Writer) *Recorder {
	tape := progrock.NewTape()
	multi := progrock.MultiWriter{tape, w}
	return &Recorder{
		tape: tape,
		w:    multi,
		rec:  progrock.NewRecorder(multi),
	}
}

// Record starts a new vertex named after the unit of work.
// Every call yields a distinct vertex, even for repeated names.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	id := digest.FromString(fmt.Sprintf("%s#%d", name, r.seq.Add(1)))
	v := &Vertex{vertex: r.rec.Vertex(id, name)}
	return ports.ContextWithVertex(ctx, v), v
}

// Close closes the recording session and, when vertexes were recorded,
// writes a summary of them.
func (r *Recorder) Close() error {
	if err := r.w.Close(); err != nil {
		return err
	}
	r.mu.Lock()
	summary := r.summary
	r.mu.Unlock()
	if summary == nil || r.tape.TotalCount() == 0 {
		return nil
	}

	line := fmt.Sprintf("%d/%d steps completed, %d failed in %s",
		r.tape.CompletedCount(),
		r.tape.TotalCount(),
		r.tape.ErroredCount(),
		r.tape.Duration().Round(time.Millisecond),
	)
	_, err := io.WriteString(summary, style.Branch.Render(line)+"\n")
	return err
}

// SetOutput redirects the console and the closing summary to w.
// It has no effect on a Recorder created with NewRecorder.
func (r *Recorder) SetOutput(w io.Writer) {
	if r.console == nil || w == nil {
		return
	}
	r.console.SetOutput(w)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.summary = w
}

// Stats reports the number of recorded, completed and failed vertexes.
func (r *Recorder) Stats() (total, completed, failed int) {
	return r.tape.TotalCount(), r.tape.CompletedCount(), r.tape.ErroredCount()
}
