package progrock

import (
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/vito/progrock"
	"go.trai.ch/packager/internal/ui/style"
)

// Console is a progrock.Writer that streams vertex progress and output to w.
// Each vertex prints a header when it starts, its log data as it arrives and
// a status line when it completes.
type Console struct {
	w  io.Writer
	mu sync.Mutex

	started   map[string]bool
	completed map[string]bool
}

// NewConsole creates a new Console writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{
		w:         w,
		started:   make(map[string]bool),
		completed: make(map[string]bool),
	}
}

// WriteStatus renders the vertexes and logs of a status update.
func (c *Console) WriteStatus(status *progrock.StatusUpdate) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, v := range status.Vertexes {
		if v.Started != nil && !c.started[v.Id] {
			c.started[v.Id] = true
			if err := c.line(style.Root, "▸ "+v.Name); err != nil {
				return err
			}
		}
	}

	for _, l := range status.Logs {
		if _, err := c.w.Write(l.Data); err != nil {
			return err
		}
	}

	for _, v := range status.Vertexes {
		if v.Completed == nil || c.completed[v.Id] {
			continue
		}
		c.completed[v.Id] = true

		var err error
		switch {
		case v.Canceled:
			err = c.line(lipgloss.NewStyle().Foreground(style.Yellow), style.Warning+" "+v.Name+" canceled")
		case v.Error != nil:
			err = c.line(lipgloss.NewStyle().Foreground(style.Red), style.Cross+" "+v.Name)
		default:
			err = c.line(lipgloss.NewStyle().Foreground(style.Green), style.Check+" "+v.Name)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// SetOutput redirects subsequent output to w.
func (c *Console) SetOutput(w io.Writer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.w = w
}

// Close does nothing; the console holds no buffered state.
func (c *Console) Close() error {
	return nil
}

func (c *Console) line(s lipgloss.Style, text string) error {
	_, err := io.WriteString(c.w, s.Render(text)+"\n")
	return err
}
