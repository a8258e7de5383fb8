//go:build !tinygo

package hal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// TUIConfig controls the terminal front end.
type TUIConfig struct {
	FPS int
	// HoldFrames is how long a key press keeps its button down. Terminals
	// report no key release, so presses are emulated as short holds.
	HoldFrames int
	LogLines   int
}

// RunTUI draws the panel into the terminal with half-block cells and maps keys to buttons.
func RunTUI(ctx context.Context, newApp func(HAL) func() error, cfg TUIConfig) error {
	if cfg.FPS <= 0 {
		cfg.FPS = 20
	}
	if cfg.HoldFrames <= 0 {
		cfg.HoldFrames = 3
	}
	if cfg.LogLines <= 0 {
		cfg.LogLines = 2
	}

	logs := &logRing{max: cfg.LogLines}
	h := newHost(logs)
	m := &tuiModel{
		h:     h,
		step:  newApp(h),
		logs:  logs,
		cfg:   cfg,
		keys:  defaultTUIKeys(),
		help:  help.New(),
		frame: time.Second / time.Duration(cfg.FPS),
	}
	if w, ht, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		m.width, m.height = w, ht
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	if fm, ok := final.(*tuiModel); ok && fm.err != nil {
		return fm.err
	}
	return nil
}

type tuiKeys struct {
	Up, Down, Left, Right, Press key.Binding
	A, B, C                      key.Binding
	Quit                         key.Binding
}

func defaultTUIKeys() tuiKeys {
	return tuiKeys{
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "page up")),
		Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "page down")),
		Press: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "press")),
		C:     key.NewBinding(key.WithKeys("1", "c"), key.WithHelp("1", "details")),
		B:     key.NewBinding(key.WithKeys("2", "b"), key.WithHelp("2", "refresh")),
		A:     key.NewBinding(key.WithKeys("3", "a"), key.WithHelp("3", "heatmap")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k tuiKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Press, k.C, k.B, k.A, k.Quit}
}

func (k tuiKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Left, k.Right, k.Press}, {k.C, k.B, k.A, k.Quit}}
}

func (k tuiKeys) button(msg tea.KeyMsg) (Button, bool) {
	bindings := [ButtonCount]key.Binding{
		ButtonUp: k.Up, ButtonDown: k.Down, ButtonLeft: k.Left, ButtonRight: k.Right,
		ButtonPress: k.Press, ButtonA: k.A, ButtonB: k.B, ButtonC: k.C,
	}
	for i, b := range bindings {
		if key.Matches(msg, b) {
			return Button(i), true
		}
	}
	return 0, false
}

type frameMsg time.Time

type tuiModel struct {
	h     *hostHAL
	step  func() error
	logs  *logRing
	cfg   TUIConfig
	keys  tuiKeys
	help  help.Model
	frame time.Duration

	hold          [ButtonCount]int
	width, height int
	err           error
}

func (m *tuiModel) tick() tea.Cmd {
	return tea.Tick(m.frame, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (m *tuiModel) Init() tea.Cmd { return m.tick() }

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if b, ok := m.keys.button(msg); ok {
			m.hold[b] = m.cfg.HoldFrames
		}
		return m, nil
	case frameMsg:
		for b := range m.hold {
			m.h.buttons.set(Button(b), m.hold[b] > 0)
			if m.hold[b] > 0 {
				m.hold[b]--
			}
		}
		m.h.t.advance()
		if m.step != nil {
			if err := m.step(); err != nil {
				m.err = err
				return m, tea.Quit
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *tuiModel) View() string {
	footer := m.help.View(m.keys)
	logLines := m.logs.lines()

	cols := m.width
	rows := m.height - 1 - len(logLines)
	if cols <= 0 || rows <= 0 {
		cols, rows = PanelWidth/4, PanelHeight/8
	}

	var b strings.Builder
	renderHalfBlocks(&b, m.h.fb, cols, rows)
	for _, l := range logLines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	b.WriteString(footer)
	return b.String()
}

// renderHalfBlocks scales the panel into cols x rows cells. Each cell shows
// two vertically stacked pixels: the top one as foreground of '▀', the
// bottom one as background.
func renderHalfBlocks(b *strings.Builder, fb *hostFramebuffer, cols, rows int) {
	scale := max(float64(fb.width)/float64(cols), float64(fb.height)/float64(rows*2))
	if scale < 1 {
		scale = 1
	}
	outW := int(float64(fb.width) / scale)
	outH := int(float64(fb.height) / (scale * 2))

	hex := func(x, y int) string {
		r, g, bl := fb.pixelAt(int(float64(x)*scale), int(float64(y)*scale))
		return fmt.Sprintf("#%02x%02x%02x", r, g, bl)
	}

	for cy := 0; cy < outH; cy++ {
		run := 0
		var top, bottom string
		flush := func() {
			if run == 0 {
				return
			}
			st := lipgloss.NewStyle().Foreground(lipgloss.Color(top)).Background(lipgloss.Color(bottom))
			b.WriteString(st.Render(strings.Repeat("▀", run)))
			run = 0
		}
		for cx := 0; cx < outW; cx++ {
			t, bt := hex(cx, cy*2), hex(cx, cy*2+1)
			if run > 0 && (t != top || bt != bottom) {
				flush()
			}
			top, bottom = t, bt
			run++
		}
		flush()
		b.WriteByte('\n')
	}
}

// logRing keeps the last few log lines for the footer.
type logRing struct {
	mu   sync.Mutex
	max  int
	buf  []string
	part []byte
}

func (r *logRing) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.part = append(r.part, p...)
	for {
		i := strings.IndexByte(string(r.part), '\n')
		if i < 0 {
			break
		}
		r.buf = append(r.buf, string(r.part[:i]))
		r.part = r.part[i+1:]
	}
	if over := len(r.buf) - r.max; over > 0 {
		r.buf = r.buf[over:]
	}
	return len(p), nil
}

func (r *logRing) lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.buf...)
}
