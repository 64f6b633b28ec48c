package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxEventRows bounds the rows kept by the event stream.
const maxEventRows = 200

// EventMsg is one decoded token log pushed into the stream.
type EventMsg struct {
	Name     string      // event name, e.g. "Transfer"
	Fields   [][2]string // decoded arguments in declaration order
	Block    uint64
	TxHash   string
	LogIndex uint
}

// StatusMsg updates the polling status bar.
type StatusMsg struct {
	Block    uint64
	Fetching bool
	Err      error
}

// EventStreamModel is the Bubble Tea model behind `tanglectl watch`.
type EventStreamModel struct {
	Token    string
	Network  string
	Rows     []EventMsg
	Status   StatusMsg
	Frame    int
	Quitting bool

	cursor   int
	expanded bool
	counts   map[string]int
}

// NewEventStream returns a model for token on network.
func NewEventStream(token, network string) EventStreamModel {
	return EventStreamModel{Token: token, Network: network, counts: map[string]int{}}
}

type streamTickMsg struct{}

func streamSpinTick() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(time.Time) tea.Msg {
		return streamTickMsg{}
	})
}

func (m EventStreamModel) Init() tea.Cmd { return streamSpinTick() }

func (m EventStreamModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.Quitting = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.Rows)-1 {
				m.cursor++
			}
		case "enter", " ":
			m.expanded = !m.expanded
		}

	case streamTickMsg:
		m.Frame = (m.Frame + 1) % len(spinnerFrames)
		return m, streamSpinTick()

	case EventMsg:
		// newest first
		m.Rows = append([]EventMsg{msg}, m.Rows...)
		if len(m.Rows) > maxEventRows {
			m.Rows = m.Rows[:maxEventRows]
		}
		if m.counts == nil {
			m.counts = map[string]int{}
		}
		m.counts[msg.Name]++
		if m.cursor > 0 {
			m.cursor++
			if m.cursor >= len(m.Rows) {
				m.cursor = len(m.Rows) - 1
			}
		}

	case StatusMsg:
		m.Status = msg
	}

	return m, nil
}

// Count reports how many events named name have been received.
func (m EventStreamModel) Count(name string) int { return m.counts[name] }

func (m EventStreamModel) View() string {
	if m.Quitting {
		return ""
	}

	var sb strings.Builder
	spin := spinnerFrames[m.Frame]

	title := fmt.Sprintf("Live events  ·  %s  ·  %s", TruncateAddr(m.Token), m.Network)
	sb.WriteString(StyleTitle.Render(title) + "\n")

	switch {
	case m.Status.Err != nil:
		sb.WriteString(StyleError.Render("✗ "+trimErr(m.Status.Err.Error())) + "\n\n")
	case m.Status.Fetching:
		sb.WriteString(StyleInfo.Render(fmt.Sprintf("%s polling block #%d…", spin, m.Status.Block)) + "\n\n")
	case m.Status.Block > 0:
		sb.WriteString(StyleMeta.Render(fmt.Sprintf("  last checked: block #%d", m.Status.Block)) + "\n\n")
	default:
		sb.WriteString(StyleMeta.Render("  connecting…") + "\n\n")
	}

	const (
		wBlk  = 10
		wName = 22
		wTx   = 14
	)
	sep := StyleMeta.Render(strings.Repeat("─", wBlk+wName+wTx+40))

	sb.WriteString(
		padR(StyleDim.Render("BLOCK"), wBlk) + "  " +
			padR(StyleDim.Render("EVENT"), wName) + "  " +
			padR(StyleDim.Render("TX"), wTx) + "  " +
			StyleDim.Render("ARGS") + "\n",
	)
	sb.WriteString(sep + "\n")

	if len(m.Rows) == 0 {
		sb.WriteString(StyleMeta.Render("  Waiting for events…") + "\n")
	} else {
		for i, row := range m.Rows {
			line := padR(StyleMeta.Render(fmt.Sprintf("#%d", row.Block)), wBlk) + "  " +
				padR(StyleEvent.Render(row.Name), wName) + "  " +
				padR(StyleAddress.Render(TruncateAddr(row.TxHash)), wTx) + "  " +
				summarise(row.Fields)
			if i == m.cursor {
				sb.WriteString(StyleSelected.Render(line) + "\n")
				if m.expanded {
					for _, f := range row.Fields {
						sb.WriteString("      " + StyleMeta.Render(f[0]+": ") + StyleValue.Render(f[1]) + "\n")
					}
				}
			} else {
				sb.WriteString(line + "\n")
			}
		}
		sb.WriteString(sep + "\n")
		sb.WriteString(StyleMeta.Render(fmt.Sprintf("  %d event(s)", len(m.Rows))) + "\n")
	}

	sb.WriteString("\n")
	sb.WriteString(StyleMeta.Render("[ ↑↓ ] navigate   [ Enter ] details   [ q ] quit"))
	sb.WriteString("\n")
	return sb.String()
}

// summarise renders fields as k=v pairs with addresses shortened.
func summarise(fields [][2]string) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		v := f[1]
		if strings.HasPrefix(v, "0x") && len(v) > 20 {
			v = TruncateAddr(v)
		}
		parts[i] = f[0] + "=" + v
	}
	return strings.Join(parts, " ")
}
