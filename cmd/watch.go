// SPDX-License-Identifier: MIT
// Copyright (c) 2026 the ze15co-go authors

package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ageagainstthemachine/ze15co-go/pkg/ze15"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	watchInterval int
	watchShowAll  bool
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live CO dashboard (TUI)",
	Long: `Full-screen dashboard showing the current CO concentration, a short
history trend, link statistics, and a recent-events log.

Requires a terminal. Use 'monitor' for plain line-oriented output suitable
for pipes and logs.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().IntVarP(&watchInterval, "interval", "i", 2, "Seconds between readings")
	watchCmd.Flags().BoolVar(&watchShowAll, "show-all", false, "Log successful readings too, not just errors")
}

// Event log entry
type eventLogEntry struct {
	timestamp time.Time
	message   string
	isError   bool
}

// Messages
type watchTickMsg time.Time
type readingMsg struct {
	reading ze15.Reading
	stats   ze15.Statistics
}

// Dashboard model
type watchModel struct {
	connInfo      string
	mode          ze15.Mode
	showAll       bool
	spin          spinner.Model
	warmupUntil   time.Time
	warming       bool
	lastReading   *ze15.Reading
	history       []float64
	maxHistory    int
	stats         ze15.Statistics
	eventLog      []eventLogEntry
	maxLogEntries int
	width         int
	height        int
	quitting      bool
}

func initialWatchModel(connInfo string, drv *ze15.Driver, showAll bool) watchModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	remaining := drv.WarmupRemaining()
	return watchModel{
		connInfo:      connInfo,
		mode:          drv.Mode(),
		showAll:       showAll,
		spin:          sp,
		warmupUntil:   time.Now().Add(remaining),
		warming:       remaining > 0,
		history:       make([]float64, 0),
		maxHistory:    60,
		eventLog:      make([]eventLogEntry, 0),
		maxLogEntries: 100,
		width:         80,
		height:        24,
	}
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(
		m.spin.Tick,
		watchTickCmd(),
		tea.EnterAltScreen,
	)
}

func watchTickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return watchTickMsg(t)
	})
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case watchTickMsg:
		if m.warming && time.Now().After(m.warmupUntil) {
			m.warming = false
		}
		return m, watchTickCmd()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case readingMsg:
		m.warming = false
		m.stats = msg.stats
		r := msg.reading
		m.lastReading = &r

		if r.OK() {
			m.history = append(m.history, r.PPM)
			if len(m.history) > m.maxHistory {
				m.history = m.history[len(m.history)-m.maxHistory:]
			}
			if m.showAll {
				m.addLogEntry(fmt.Sprintf("%.1f ppm", r.PPM), false)
			}
		} else {
			m.addLogEntry(fmt.Sprintf("READ FAILED: %s", r.Status), true)
		}
	}

	return m, nil
}

func (m *watchModel) addLogEntry(message string, isError bool) {
	m.eventLog = append(m.eventLog, eventLogEntry{
		timestamp: time.Now(),
		message:   message,
		isError:   isError,
	})
	if len(m.eventLog) > m.maxLogEntries {
		m.eventLog = m.eventLog[len(m.eventLog)-m.maxLogEntries:]
	}
}

// sparkline renders the reading history as a compact bar trend.
func sparkline(values []float64, width int) string {
	if len(values) == 0 {
		return ""
	}
	bars := []rune("▁▂▃▄▅▆▇█")

	start := 0
	if len(values) > width {
		start = len(values) - width
	}
	window := values[start:]

	max := window[0]
	for _, v := range window {
		if v > max {
			max = v
		}
	}

	var sb strings.Builder
	for _, v := range window {
		idx := 0
		if max > 0 {
			idx = int(v / max * float64(len(bars)-1))
		}
		sb.WriteRune(bars[idx])
	}
	return sb.String()
}

// ppmSeverity picks a display color for a concentration. Thresholds follow
// common CO exposure guidance: 35 ppm is the typical 1-hour limit, 200 ppm
// causes symptoms within hours.
func ppmSeverity(ppm float64) lipgloss.Color {
	switch {
	case ppm >= 200:
		return lipgloss.Color("9")
	case ppm >= 35:
		return lipgloss.Color("11")
	default:
		return lipgloss.Color("10")
	}
}

func (m watchModel) View() string {
	if m.quitting {
		return "Shutting down...\n"
	}

	// Styles
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12")).
		Background(lipgloss.Color("235")).
		Padding(0, 1)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("12")).
		Bold(true)

	valueStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("10"))

	errorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("9")).
		Bold(true)

	warningStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("11"))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var s strings.Builder
	s.WriteString(titleStyle.Render("ZE15-CO - CARBON MONOXIDE"))
	s.WriteString("\n")
	s.WriteString(headerStyle.Render(fmt.Sprintf("%s | Mode: %s | Press 'q' to quit",
		m.connInfo, m.mode)))
	s.WriteString("\n\n")

	// Warm-up status
	if m.warming {
		remaining := time.Until(m.warmupUntil).Round(time.Second)
		if remaining < 0 {
			remaining = 0
		}
		s.WriteString(warningStyle.Render(fmt.Sprintf("%s Warming up (%s remaining)...", m.spin.View(), remaining)))
		s.WriteString("\n\n")
	}

	// Current reading
	readingContent := strings.Builder{}
	switch {
	case m.lastReading == nil:
		readingContent.WriteString(headerStyle.Render("waiting for first reading..."))
	case m.lastReading.OK():
		ppmStyle := lipgloss.NewStyle().
			Bold(true).
			Foreground(ppmSeverity(m.lastReading.PPM))
		readingContent.WriteString(fmt.Sprintf("%s %s   %s %s",
			labelStyle.Render("CO:"), ppmStyle.Render(fmt.Sprintf("%.1f ppm", m.lastReading.PPM)),
			labelStyle.Render("At:"), valueStyle.Render(m.lastReading.Timestamp.Format("15:04:05")),
		))
	default:
		readingContent.WriteString(fmt.Sprintf("%s %s",
			labelStyle.Render("CO:"), errorStyle.Render(fmt.Sprintf("-- (%s)", m.lastReading.Status)),
		))
	}
	if len(m.history) > 1 {
		readingContent.WriteString("\n")
		readingContent.WriteString(fmt.Sprintf("%s %s",
			labelStyle.Render("Trend:"), valueStyle.Render(sparkline(m.history, m.width-20)),
		))
	}
	s.WriteString(boxStyle.Render(readingContent.String()))
	s.WriteString("\n\n")

	// Statistics
	statsContent := strings.Builder{}
	statsContent.WriteString(fmt.Sprintf("%s %s   %s %s   %s %s\n",
		labelStyle.Render("Reads:"), valueStyle.Render(fmt.Sprintf("%d", m.stats.Reads)),
		labelStyle.Render("Valid:"), valueStyle.Render(fmt.Sprintf("%d", m.stats.ValidFrames)),
		labelStyle.Render("Failed:"), func() string {
			if m.stats.FailedReads > 0 {
				return errorStyle.Render(fmt.Sprintf("%d", m.stats.FailedReads))
			}
			return valueStyle.Render(fmt.Sprintf("%d", m.stats.FailedReads))
		}(),
	))
	statsContent.WriteString(fmt.Sprintf("%s %s   %s %s   %s %s\n",
		labelStyle.Render("Checksum Errors:"), valueStyle.Render(fmt.Sprintf("%d", m.stats.ChecksumErrors)),
		labelStyle.Render("Framing:"), valueStyle.Render(fmt.Sprintf("%d", m.stats.FramingErrors)),
		labelStyle.Render("Discarded:"), valueStyle.Render(fmt.Sprintf("%d bytes", m.stats.BytesDiscarded)),
	))
	statsContent.WriteString(fmt.Sprintf("%s %s   %s %s",
		labelStyle.Render("Read Rate:"), valueStyle.Render(fmt.Sprintf("%.2f/s", m.stats.ReadRate)),
		labelStyle.Render("Error Rate:"), func() string {
			if m.stats.ErrorRate > 0 {
				return errorStyle.Render(fmt.Sprintf("%.2f/s", m.stats.ErrorRate))
			}
			return valueStyle.Render(fmt.Sprintf("%.2f/s", m.stats.ErrorRate))
		}(),
	))
	s.WriteString(boxStyle.Render(statsContent.String()))
	s.WriteString("\n\n")

	// Event log
	s.WriteString(labelStyle.Render("Recent Events:"))
	s.WriteString("\n")

	logHeight := m.height - 18
	if logHeight < 4 {
		logHeight = 4
	}

	logContent := strings.Builder{}
	startIdx := len(m.eventLog) - logHeight
	if startIdx < 0 {
		startIdx = 0
	}

	if len(m.eventLog) == 0 {
		logContent.WriteString(headerStyle.Render("  (no events yet)"))
	} else {
		for i := startIdx; i < len(m.eventLog); i++ {
			entry := m.eventLog[i]
			timestamp := entry.timestamp.Format("15:04:05.000")
			if entry.isError {
				logContent.WriteString(fmt.Sprintf("%s %s\n",
					headerStyle.Render(timestamp),
					errorStyle.Render("✗ "+entry.message),
				))
			} else {
				logContent.WriteString(fmt.Sprintf("%s %s\n",
					headerStyle.Render(timestamp),
					valueStyle.Render("✓ "+entry.message),
				))
			}
		}
	}

	s.WriteString(boxStyle.Width(m.width - 4).Render(logContent.String()))

	return s.String()
}

func runWatch(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("watch requires a terminal (use 'monitor' for plain output)")
	}

	conn, connInfo, err := OpenConnection()
	if err != nil {
		return err
	}
	defer conn.Close()

	drv := newDriver(conn)

	m := initialWatchModel(connInfo, drv, watchShowAll)
	p := tea.NewProgram(m)

	// Reader goroutine. Driver reads block (warm-up, settle delays), so
	// they stay off the TUI event loop and results arrive via p.Send.
	go func() {
		interval := time.Duration(watchInterval) * time.Second
		for {
			reading := drv.Read()
			p.Send(readingMsg{
				reading: reading,
				stats:   drv.Stats().Snapshot(),
			})
			time.Sleep(interval)
		}
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %v", err)
	}
	return nil
}
