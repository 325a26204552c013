package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
)

type colorPair struct {
	fg, bg core.Color
}

// Painter converts Screen buffers to styled strings for one output.
// SSH sessions each get their own so color profiles follow the client.
type Painter struct {
	renderer *lipgloss.Renderer

	mu     sync.Mutex
	styles map[colorPair]lipgloss.Style
}

// NewPainter creates a painter for the given renderer; nil means stdout.
func NewPainter(r *lipgloss.Renderer) *Painter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Painter{
		renderer: r,
		styles:   make(map[colorPair]lipgloss.Style),
	}
}

// style returns the cached style for a color pair.
func (p *Painter) style(c colorPair) lipgloss.Style {
	p.mu.Lock()
	defer p.mu.Unlock()

	if st, ok := p.styles[c]; ok {
		return st
	}

	st := p.renderer.NewStyle()
	if hex := c.fg.Hex(); hex != "" {
		st = st.Foreground(lipgloss.Color(hex))
	}
	if hex := c.bg.Hex(); hex != "" {
		st = st.Background(lipgloss.Color(hex))
	}
	p.styles[c] = st
	return st
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (p *Painter) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := colorPair{cell.Fg, cell.Bg}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (colorPair{cell.Fg, cell.Bg}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start == (colorPair{}) {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(p.style(start).Render(run.String()))
		}
	}
	return sb.String()
}

var defaultPainter = NewPainter(nil)

// RenderScreen renders a Screen buffer for the local terminal.
func RenderScreen(s *core.Screen) string {
	return defaultPainter.Render(s)
}
