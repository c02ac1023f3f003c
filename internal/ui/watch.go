package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var spinFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// ProviderRow is one provider's state in the watch table.
type ProviderRow struct {
	URL                 string
	Latency             time.Duration
	Checked             bool
	Failing             bool
	ErrMsg              string
	ConsecutiveFailures int
	Fastest             bool
}

// StatusMsg is a fresh reading of the balancer state, delivered on every
// refresh tick.
type StatusMsg struct {
	Rows       []ProviderRow
	FastestURL string
	Generation uint64
	Ready      bool
}

// WatchModel is the Bubble Tea model for the live provider table. Refresh is
// polled on every tick to pull the current balancer state.
type WatchModel struct {
	Interval time.Duration
	Refresh  func() StatusMsg

	status   StatusMsg
	frame    int
	quitting bool
}

type spinTickMsg struct{}
type refreshTickMsg struct{}

func spinTick() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(time.Time) tea.Msg {
		return spinTickMsg{}
	})
}

func refreshTick(every time.Duration) tea.Cmd {
	return tea.Tick(every, func(time.Time) tea.Msg {
		return refreshTickMsg{}
	})
}

// refreshEvery caps the poll rate so short check intervals do not burn CPU
// redrawing and long ones still feel live.
func (m WatchModel) refreshEvery() time.Duration {
	every := m.Interval / 2
	if every < 100*time.Millisecond {
		every = 100 * time.Millisecond
	}
	if every > time.Second {
		every = time.Second
	}
	return every
}

func (m WatchModel) Init() tea.Cmd {
	return tea.Batch(spinTick(), refreshTick(m.refreshEvery()))
}

func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		}

	case spinTickMsg:
		m.frame = (m.frame + 1) % len(spinFrames)
		return m, spinTick()

	case refreshTickMsg:
		m.status = m.Refresh()
		return m, refreshTick(m.refreshEvery())
	}

	return m, nil
}

func (m WatchModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder

	sb.WriteString(StyleTitle.Render("⚡ w3pick — live provider latency") + "\n")

	// ── Status bar ────────────────────────────────────────────────────────
	if !m.status.Ready {
		sb.WriteString(StyleMeta.Render(fmt.Sprintf("%s first round in flight…", spinFrames[m.frame])) + "\n\n")
	} else if m.status.FastestURL == "" {
		sb.WriteString(StyleError.Render("✗ no provider responding") + "\n\n")
	} else {
		sb.WriteString(fmt.Sprintf("%s %s  %s\n\n",
			StyleFastest.Render("fastest:"),
			URL(m.status.FastestURL),
			Meta(fmt.Sprintf("round #%d", m.status.Generation))))
	}

	// ── Table ─────────────────────────────────────────────────────────────
	const (
		wURL  = 44
		wLat  = 9
		wFail = 6
	)

	sb.WriteString(StyleHeader.Render(
		fmt.Sprintf("  %-*s %*s %*s  %s", wURL, "PROVIDER", wLat, "LATENCY", wFail, "FAILS", "STATUS")) + "\n")

	for _, row := range m.status.Rows {
		marker := "  "
		if row.Fastest {
			marker = StyleFastest.Render("▶ ")
		}

		var status string
		switch {
		case !row.Checked:
			status = Meta(spinFrames[m.frame] + " probing")
		case row.Failing:
			status = StyleError.Render("✗ " + TruncateURL(row.ErrMsg, 30))
		default:
			status = StyleSuccess.Render("✓ ok")
		}

		lat := LatencyStyle(row.Latency).Render(fmt.Sprintf("%*s", wLat, FormatLatency(row.Latency)))
		if row.Failing || !row.Checked {
			lat = StyleMeta.Render(fmt.Sprintf("%*s", wLat, "—"))
		}

		sb.WriteString(fmt.Sprintf("%s%s %s %*d  %s\n",
			marker,
			URL(fmt.Sprintf("%-*s", wURL, TruncateURL(row.URL, wURL))),
			lat,
			wFail, row.ConsecutiveFailures,
			status))
	}

	sb.WriteString("\n" + Meta("q quit") + "\n")
	return sb.String()
}
