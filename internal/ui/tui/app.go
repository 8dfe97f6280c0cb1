package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ITour-BioInfo/PanelAppByIvan/internal/domain"
)

type screen int

const (
	screenHome screen = iota
	screenPanels
	screenDetail
	screenValidate
)

type menuItem struct {
	title string
	desc  string
}

func (m menuItem) Title() string       { return m.title }
func (m menuItem) Description() string { return m.desc }
func (m menuItem) FilterValue() string { return m.title }

type panelItem struct {
	slug  string
	title string
	genes int
}

func (p panelItem) Title() string       { return p.title }
func (p panelItem) Description() string { return fmt.Sprintf("%s • %d genes", p.slug, p.genes) }
func (p panelItem) FilterValue() string { return p.slug + " " + p.title }

type model struct {
	theme Theme
	deps  Deps

	scr    screen
	menu   list.Model
	panels list.Model

	activeSlug string
	detail     string
	validation string

	workspaceFound bool
	workspaceRoot  string

	busy  bool
	toast string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	t := DefaultTheme()

	items := []list.Item{
		menuItem{"Browse Panels", "List panels, filter with /, open details"},
		menuItem{"Validate", "Check every panel against the format rules"},
		menuItem{"Init Workspace", "Create panels/, reports/ and panelapp.yaml here"},
		menuItem{"Quit", "Exit PanelApp"},
	}

	menu := list.New(items, list.NewDefaultDelegate(), 0, 0)
	menu.Title = "PanelApp"
	menu.SetShowStatusBar(false)
	menu.SetFilteringEnabled(false)
	menu.SetShowHelp(false)

	panels := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	panels.Title = "Panels"
	panels.SetShowStatusBar(false)
	panels.SetFilteringEnabled(true)
	panels.SetShowHelp(false)

	return model{
		theme:  t,
		deps:   deps,
		scr:    screenHome,
		menu:   menu,
		panels: panels,
	}
}

func (m model) Init() tea.Cmd { return cmdRefreshWorkspace(m.deps) }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w, h := msg.Width, msg.Height
		m.menu.SetSize(w-4, h-10)
		m.panels.SetSize(w-4, h-10)
		return m, nil

	case tea.KeyMsg:
		// While the panel list is filtering, every key belongs to it.
		if m.scr == screenPanels && m.panels.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.scr == screenHome {
				return m, tea.Quit
			}
			m.scr = screenHome
			m.activeSlug = ""
			return m, nil

		case "enter":
			switch m.scr {
			case screenHome:
				it, ok := m.menu.SelectedItem().(menuItem)
				if !ok {
					return m, nil
				}
				return m.openMenuEntry(it)

			case screenPanels:
				it, ok := m.panels.SelectedItem().(panelItem)
				if !ok {
					return m, nil
				}
				m.scr = screenDetail
				m.activeSlug = it.slug
				m.detail = ""
				m.busy = true
				return m, cmdLoadPanel(m.workspaceRoot, it.slug)
			}

		case "esc", "b":
			switch m.scr {
			case screenDetail:
				m.scr = screenPanels
				m.activeSlug = ""
				return m, nil
			case screenPanels, screenValidate:
				m.scr = screenHome
				return m, nil
			}
		}

	case workspaceRefreshedMsg:
		m.workspaceFound = msg.found
		m.workspaceRoot = msg.root
		// A plain "not found" is already covered by the banner card.
		if msg.err != nil && !domain.IsKind(msg.err, domain.KindNotFound) {
			m.toast = userMessage(msg.err)
		}
		return m, nil

	case initWorkspaceDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.toast = "Workspace initialized at " + msg.root
		m.workspaceFound = true
		m.workspaceRoot = msg.root
		return m, nil

	case panelsLoadedMsg:
		m.busy = false
		if msg.err != nil {
			m.scr = screenHome
			m.toast = userMessage(msg.err)
			return m, nil
		}
		items := make([]list.Item, 0, len(msg.summaries))
		for _, s := range msg.summaries {
			items = append(items, panelItem{slug: s.Ref.Slug, title: s.Title, genes: s.Genes})
		}
		return m, m.panels.SetItems(items)

	case panelLoadedMsg:
		m.busy = false
		if msg.err != nil {
			m.scr = screenPanels
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.detail = renderPanelDetails(msg.snap, msg.result)
		return m, nil

	case validateDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.scr = screenHome
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.validation = renderBatch(msg.root, msg.batch)
		return m, nil
	}

	var cmd tea.Cmd
	switch m.scr {
	case screenHome:
		m.menu, cmd = m.menu.Update(msg)
	case screenPanels:
		m.panels, cmd = m.panels.Update(msg)
	}
	return m, cmd
}

func (m model) openMenuEntry(it menuItem) (tea.Model, tea.Cmd) {
	m.toast = ""

	switch {
	case strings.EqualFold(it.title, "Quit"):
		return m, tea.Quit

	case strings.EqualFold(it.title, "Browse Panels"):
		if !m.workspaceFound {
			m.toast = "No workspace found. Use Init Workspace first."
			return m, nil
		}
		m.scr = screenPanels
		m.busy = true
		return m, cmdLoadPanels(m.workspaceRoot)

	case strings.EqualFold(it.title, "Validate"):
		if !m.workspaceFound {
			m.toast = "No workspace found. Use Init Workspace first."
			return m, nil
		}
		m.scr = screenValidate
		m.validation = ""
		m.busy = true
		return m, cmdValidateWorkspace(m.workspaceRoot)

	case strings.EqualFold(it.title, "Init Workspace"):
		root := m.workspaceRoot
		if root == "" {
			wd, err := os.Getwd()
			if err != nil {
				m.toast = "Cannot determine current directory"
				return m, nil
			}
			root = wd
		}
		m.busy = true
		return m, cmdInitWorkspaceHere(m.deps, root)
	}

	return m, nil
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("PanelApp") + "\n" +
		m.theme.Subtitle.Render("Gene panel curation: browse, validate, and track changes") + "\n"

	var workspaceBanner string
	if m.workspaceFound {
		workspaceBanner = m.theme.Help.Render(fmt.Sprintf("Workspace: %s", m.workspaceRoot))
	} else {
		workspaceBanner = m.theme.Card.Render(
			"⚠ No workspace found.\n\nUse Init Workspace to create one here.",
		)
	}
	if m.toast != "" {
		workspaceBanner += "\n" + m.theme.Warn.Render(clampString(m.toast, 80))
	}

	switch m.scr {
	case screenHome:
		help := m.theme.Help.Render("↑/↓ navigate • enter open • q quit")
		return wrap.Render(header + "\n" + workspaceBanner + "\n\n" + m.theme.Card.Render(m.menu.View()) + "\n" + help)

	case screenPanels:
		body := m.panels.View()
		if m.busy {
			body = "Loading panels…"
		}
		help := m.theme.Help.Render("↑/↓ navigate • / filter • enter open • esc back • q home")
		return wrap.Render(header + "\n" + workspaceBanner + "\n\n" + m.theme.Card.Render(body) + "\n" + help)

	case screenDetail:
		body := m.detail
		if m.busy {
			body = "Loading " + m.activeSlug + "…"
		}
		help := m.theme.Help.Render("esc/b back • q home")
		return wrap.Render(header + "\n" + workspaceBanner + "\n\n" + m.theme.Card.Render(body) + "\n" + help)

	case screenValidate:
		body := m.validation
		if m.busy {
			body = "Validating panels…"
		}
		help := m.theme.Help.Render("esc/b back • q home")
		return wrap.Render(header + "\n" + workspaceBanner + "\n\n" + m.theme.Card.Render(body) + "\n" + help)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}
