package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/pocketcube"
	"github.com/SeamusWaldron/pocketcube/internal/cube"
	"github.com/SeamusWaldron/pocketcube/internal/explore"
	"github.com/SeamusWaldron/pocketcube/internal/storage"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i"},
	Short:   "Answer queries in an interactive session",
	Long: `Build the index once and answer queries as they are typed.

Input:
  <number>      packed state, decimal or 0x-prefixed hex
  <moves>       move sequence applied to the solved cube, e.g. U F' R2
  + <moves>     apply more moves to the current state
  :corners ...  eight corners as sticker colours, e.g. :corners OGW OWB ...
  :undo         take back the last move applied to the current state
  :reset        return to the solved state
  quit          leave (also Esc or Ctrl+C)`,
	Args: cobra.NoArgs,
	RunE: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

// Messages
type sessionReadyMsg struct{ session *pocketcube.Session }

// Model
type interactiveModel struct {
	ctx     context.Context
	session *pocketcube.Session
	hist    *history
	tracker *cube.Tracker

	input    string
	last     *query
	notice   string
	answered int
	quitting bool
}

func newInteractiveModel(ctx context.Context, hist *history) *interactiveModel {
	return &interactiveModel{
		ctx:     ctx,
		hist:    hist,
		tracker: cube.NewTracker(pocketcube.Solved),
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.buildSession()
}

// buildSession explores in the background. Logging is discarded so it
// does not draw over the alternate screen.
func (m *interactiveModel) buildSession() tea.Cmd {
	ctx := withLogger(m.ctx, silentLogger())
	return func() tea.Msg {
		return sessionReadyMsg{session: buildSession(ctx)}
	}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionReadyMsg:
		m.session = msg.session

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit

		case tea.KeyEnter:
			line := strings.TrimSpace(m.input)
			m.input = ""
			if line == "quit" || line == "exit" {
				m.quitting = true
				return m, tea.Quit
			}
			if m.session != nil && line != "" {
				m.submit(line)
			}

		case tea.KeyBackspace:
			if r := []rune(m.input); len(r) > 0 {
				m.input = string(r[:len(r)-1])
			}

		case tea.KeySpace:
			m.input += " "

		case tea.KeyRunes:
			m.input += string(msg.Runes)
		}
	}

	return m, nil
}

// submit answers one line of input.
func (m *interactiveModel) submit(line string) {
	m.notice = ""

	switch {
	case line == ":undo":
		if !m.tracker.Undo() {
			m.notice = "Nothing to undo"
			return
		}
		m.answer(m.trackedQuery())

	case line == ":reset":
		m.tracker.Reset()
		m.answer(m.trackedQuery())

	case strings.HasPrefix(line, "+"):
		r, err := m.session.Parse(strings.TrimPrefix(line, "+"))
		if err != nil {
			m.answer(&query{kind: storage.KindMoves, input: line, metric: m.session.Metric(), err: err})
			return
		}
		m.tracker.ApplyMoves(r)
		m.answer(m.trackedQuery())

	case strings.HasPrefix(line, ":corners"):
		q := runCornersQuery(m.session, strings.TrimPrefix(line, ":corners"))
		if q.state != nil {
			m.tracker = cube.NewTracker(*q.state)
		}
		m.answer(q)

	case isStateNumber(line):
		q := runStateQuery(m.session, line)
		m.tracker = cube.NewTracker(*q.state)
		m.answer(q)

	default:
		q := runMovesQuery(m.session, line)
		if r, err := m.session.Parse(line); err == nil {
			m.tracker.Reset()
			m.tracker.ApplyMoves(r)
		}
		m.answer(q)
	}
}

// isStateNumber reports whether line is a packed state rather than moves.
// Lines such as "2U" start with a digit but are move text.
func isStateNumber(line string) bool {
	_, err := pocketcube.ParseState(line)
	return err == nil
}

// trackedQuery answers a query for the tracked state.
func (m *interactiveModel) trackedQuery() *query {
	return runStateQuery(m.session, m.tracker.State().String())
}

func (m *interactiveModel) answer(q *query) {
	m.last = q
	m.answered++
	m.hist.add(q)
}

func (m *interactiveModel) View() string {
	if m.quitting {
		return fmt.Sprintf("Answered %d queries. Goodbye!\n", m.answered)
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Pocket Cube Router"))
	b.WriteString("\n\n")

	if m.session == nil {
		b.WriteString(statusStyle.Render(fmt.Sprintf("Indexing %d states in the %s-turn metric...", explore.ReachableStates, settings.metric)))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(statusStyle.Render(fmt.Sprintf("%d states indexed (%s-turn metric, God's number %d, built in %s)",
		m.session.States(), m.session.Metric(), m.session.GodsNumber(), m.session.BuildTime().Round(time.Millisecond))))
	b.WriteString("\n\n")

	if m.last != nil {
		b.WriteString(renderQuery(m.last, answerView{profile: true}))
		b.WriteString("\n")
	}

	if history := m.tracker.History(); len(history) > 0 {
		fmt.Fprintf(&b, "%s %s\n\n", labelStyle.Render("Applied: "), pocketcube.Format(pocketcube.Route(history)))
	}

	if m.notice != "" {
		b.WriteString(errorStyle.Render(m.notice))
		b.WriteString("\n\n")
	}

	fmt.Fprintf(&b, "> %s_\n\n", m.input)
	b.WriteString(helpStyle.Render("state number | moves | + moves | :corners | :undo | :reset | quit"))
	b.WriteString("\n")

	return b.String()
}

func runInteractive(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	hist := openHistory(ctx)
	defer hist.Close()

	model := newInteractiveModel(ctx, hist)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithOutput(cmd.OutOrStdout()))

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
