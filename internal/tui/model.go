package tui

import (
	"context"
	"time"

	"dsa-quiz-service/internal/app"
	"dsa-quiz-service/internal/domain"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Options configures the terminal quiz.
type Options struct {
	Difficulty   domain.Difficulty
	Count        int
	Player       string
	TickInterval time.Duration
	NoColor      bool
}

// Model plays one quiz session at a time in the terminal.
type Model struct {
	ctx          context.Context
	service      *app.QuizService
	session      app.Session
	difficulty   domain.Difficulty
	count        int
	player       string
	tickInterval time.Duration
	// tickID invalidates ticks scheduled before the timer was restarted.
	tickID int
	board  table.Model
	// submitting holds the session still until the pending save reports back.
	submitting bool
	recorded   bool
	notice     string
	noColor    bool
}

// NewModel constructs a model that starts a session on Init.
func NewModel(ctx context.Context, service *app.QuizService, opts Options) Model {
	interval := opts.TickInterval
	if interval <= 0 {
		interval = time.Second
	}
	difficulty := opts.Difficulty
	if !difficulty.Valid() {
		difficulty = domain.Easy
	}
	return Model{
		ctx:          ctx,
		service:      service,
		session:      service.NewSession(),
		difficulty:   difficulty,
		count:        opts.Count,
		player:       opts.Player,
		tickInterval: interval,
		board:        newLeaderboardTable(service.Leaderboard(), opts.NoColor),
		noColor:      opts.NoColor,
	}
}

// Session exposes the current session value.
func (m Model) Session() app.Session { return m.session }

type startedMsg struct {
	session app.Session
	err     error
}

type submittedMsg struct {
	session  app.Session
	recorded bool
	err      error
}

type tickMsg struct{ id int }

// Init starts the first session.
func (m Model) Init() tea.Cmd {
	return m.start()
}

// Update applies key presses, timer ticks and service results to the session.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case startedMsg:
		if typed.err != nil {
			m.notice = typed.err.Error()
			return m, nil
		}
		m.session = typed.session
		m.recorded = false
		m.notice = ""
		cmd := m.restartTimer()
		return m, cmd
	case tickMsg:
		if typed.id != m.tickID || !m.session.Active() {
			return m, nil
		}
		return m.transition(m.session.Tick(), true)
	case submittedMsg:
		m.submitting = false
		m.session = typed.session
		m.recorded = typed.recorded
		switch {
		case typed.err != nil:
			m.notice = "could not save score: " + typed.err.Error()
		case typed.recorded:
			m.notice = "score saved"
		}
		m.board.SetRows(leaderboardRows(m.service.Leaderboard()))
		m.tickID++
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(typed)
	}
	return m, nil
}

func (m Model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	}
	if m.submitting {
		return m, nil
	}
	switch key.String() {
	case "1", "2", "3", "4":
		option := int(key.String()[0] - '1')
		return m.transition(m.session.SelectAnswer(option), false)
	case "enter", "right", "n":
		return m.transition(m.session.Advance(), false)
	case "b", "left":
		return m.transition(m.session.GoBack(), false)
	case "s":
		if m.recorded || (!m.session.Active() && !m.session.Completed()) {
			return m, nil
		}
		m.submitting = true
		m.tickID++
		return m, m.submit()
	case "r":
		m.session = m.session.Reset()
		m.tickID++
		return m, m.start()
	}
	return m, nil
}

// transition installs next and restarts the timer when the position changed.
func (m Model) transition(next app.Session, fromTick bool) (tea.Model, tea.Cmd) {
	before := m.session
	m.session = next
	m.service.Observe(before, next)
	switch {
	case !next.Active():
		m.tickID++
		return m, nil
	case before.Current != next.Current:
		cmd := m.restartTimer()
		return m, cmd
	case fromTick:
		return m, tick(m.tickInterval, m.tickID)
	}
	return m, nil
}

func (m *Model) restartTimer() tea.Cmd {
	m.tickID++
	return tick(m.tickInterval, m.tickID)
}

func (m Model) start() tea.Cmd {
	ctx, service, sess := m.ctx, m.service, m.session
	difficulty, count := m.difficulty, m.count
	return func() tea.Msg {
		next, err := service.Start(ctx, sess, difficulty, count)
		return startedMsg{session: next, err: err}
	}
}

func (m Model) submit() tea.Cmd {
	ctx, service, sess, player := m.ctx, m.service, m.session, m.player
	return func() tea.Msg {
		next, recorded, err := service.Submit(ctx, sess, player)
		return submittedMsg{session: next, recorded: recorded, err: err}
	}
}

func tick(interval time.Duration, id int) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg { return tickMsg{id: id} })
}

// View renders the running question or the results screen.
func (m Model) View() string {
	var body string
	switch m.session.Status {
	case app.StatusRunning:
		body = renderQuestion(m.session, m.noColor)
	case app.StatusCompleted:
		body = lipgloss.JoinVertical(lipgloss.Left, renderResults(m.session, m.noColor), m.board.View())
	default:
		body = "Loading questions..."
	}
	parts := []string{renderHeader(m.session, m.noColor), body}
	if m.notice != "" {
		parts = append(parts, stylize(m.notice, m.noColor, lipgloss.Color("214")))
	}
	parts = append(parts, renderFooter(m.session, m.player, m.recorded, m.noColor))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
