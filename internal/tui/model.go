// Package tui hosts the wizard core in a Bubble Tea program. One model owns
// the controller; every step renders as a huh form, template fetches run as
// commands delivering results back through the controller's generation guard,
// and project creation runs as a command on the review step.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"specwiz/internal/identity"
	"specwiz/internal/project"
	"specwiz/internal/steps"
	"specwiz/internal/templates"
	"specwiz/internal/wizard"
)

const fetchTimeout = 30 * time.Second

// Deps are the collaborators the wizard shell needs. Store and Creator may be
// backed by the HTTP client or the file store; Identity supplies the author
// stamped into the final payload.
type Deps struct {
	Store    wizard.TemplateStore
	Creator  wizard.ProjectCreator
	Identity identity.Provider
	Catalog  []templates.CatalogEntry
	ExitPath string

	// InitialTemplate, when set, is fetched immediately instead of asking.
	InitialTemplate string
}

// router records where the wizard core asked to navigate. In a terminal shell
// "navigation" means leaving the program, so the model quits once a path is
// set and reports it on the final screen.
type router struct {
	path string
	set  bool
}

func (r *router) GoTo(path string) {
	r.path = path
	r.set = true
}

type templateResolvedMsg struct {
	generation uint64
	template   project.Template
	err        error
}

type projectCreatedMsg struct {
	created project.Project
	err     error
}

// Model is the Bubble Tea model for the wizard. It owns all mutable state;
// the controller inside it is only ever touched from Update.
type Model struct {
	ctrl      *wizard.Controller
	router    *router
	store     wizard.TemplateStore
	assembler *wizard.Assembler
	identity  identity.Provider
	catalog   []templates.CatalogEntry

	form     *huh.Form
	formStep steps.Step
	data     *formData

	spinner  spinner.Model
	loading  bool
	errMsg   string
	created  *project.Project
	quitting bool

	initialTemplate string

	width  int
	height int
}

// NewModel builds the wizard model positioned at the template step.
func NewModel(deps Deps) *Model {
	r := &router{}
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &Model{
		ctrl:            wizard.NewController(r, deps.ExitPath),
		router:          r,
		store:           deps.Store,
		assembler:       wizard.NewAssembler(deps.Creator, nil),
		identity:        deps.Identity,
		catalog:         deps.Catalog,
		spinner:         sp,
		initialTemplate: deps.InitialTemplate,
		width:           80,
		height:          24,
	}
	m.rebuildForm()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.WindowSize()}
	if m.initialTemplate != "" {
		cmds = append(cmds, m.beginTemplateFetch(m.initialTemplate))
	} else if m.form != nil {
		cmds = append(cmds, m.form.Init())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.height = typed.Height
		if m.form != nil {
			m.form = m.form.WithWidth(max(typed.Width-4, 40))
		}
		return m, nil

	case tea.KeyMsg:
		if cmd, handled := m.handleKey(typed); handled {
			return m, cmd
		}

	case templateResolvedMsg:
		return m, m.handleTemplateResolved(typed)

	case projectCreatedMsg:
		return m, m.handleProjectCreated(typed)

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(typed)
			return m, cmd
		}
		return m, nil
	}

	if m.created != nil || m.loading || m.form == nil {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	if m.form.State == huh.StateCompleted {
		return m, m.handleFormCompleted()
	}
	return m, cmd
}

func (m *Model) handleKey(key tea.KeyMsg) (tea.Cmd, bool) {
	switch key.String() {
	case "ctrl+c":
		m.ctrl.Close()
		m.quitting = true
		return tea.Quit, true
	case "esc":
		if m.created != nil {
			m.quitting = true
			return tea.Quit, true
		}
		m.back()
		if m.router.set {
			m.quitting = true
			return tea.Quit, true
		}
		return m.formInit(), true
	}

	if m.created != nil {
		m.quitting = true
		return tea.Quit, true
	}

	// alt+1 .. alt+8 jump directly via the breadcrumb guard.
	if step, ok := stepForKey(key.String()); ok {
		before := m.ctrl.CurrentStep()
		m.ctrl.HandleStepClick(step)
		if m.ctrl.CurrentStep() != before {
			m.errMsg = ""
			m.rebuildForm()
			return m.formInit(), true
		}
		return nil, true
	}

	return nil, false
}

func stepForKey(key string) (steps.Step, bool) {
	if len(key) != 5 || key[:4] != "alt+" {
		return "", false
	}
	n := int(key[4] - '1')
	if n < 0 || n >= len(steps.Sequence) {
		return "", false
	}
	return steps.Sequence[n], true
}

// back retreats one step, dropping any in-flight fetch display.
func (m *Model) back() {
	m.loading = false
	m.errMsg = ""
	m.ctrl.Prev()
	m.rebuildForm()
}

// beginTemplateFetch registers a load with the controller and returns the
// command that fetches it. The generation token rides along in the message so
// a superseded response identifies itself.
func (m *Model) beginTemplateFetch(id string) tea.Cmd {
	generation := m.ctrl.BeginTemplateLoad(id)
	m.loading = true
	m.errMsg = ""

	store := m.store
	fetch := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		tmpl, err := store.FetchTemplate(ctx, id)
		return templateResolvedMsg{generation: generation, template: tmpl, err: err}
	}
	return tea.Batch(fetch, m.spinner.Tick)
}

func (m *Model) handleTemplateResolved(msg templateResolvedMsg) tea.Cmd {
	applied, err := m.ctrl.ApplyTemplateResult(msg.generation, msg.template, msg.err)
	if !applied {
		// Superseded by a newer request, a blank selection, or teardown.
		return nil
	}
	m.loading = false
	if err != nil {
		m.errMsg = err.Error()
		m.rebuildForm()
		return m.formInit()
	}

	m.ctrl.Next()
	m.rebuildForm()
	return m.formInit()
}

func (m *Model) handleFormCompleted() tea.Cmd {
	switch m.formStep {
	case steps.StepTemplate:
		if m.data.templateID == blankOptionID {
			m.ctrl.SelectBlank()
			m.ctrl.Next()
			m.rebuildForm()
			return m.formInit()
		}
		return m.beginTemplateFetch(m.data.templateID)

	case steps.StepReview:
		if !m.data.confirm {
			m.back()
			return m.formInit()
		}
		return m.createProject()
	}

	if err := m.data.submit(m.ctrl); err != nil {
		m.errMsg = err.Error()
		m.rebuildForm()
		return m.formInit()
	}
	m.errMsg = ""
	m.rebuildForm()
	return m.formInit()
}

func (m *Model) createProject() tea.Cmd {
	author, err := m.identity.Author()
	if err != nil {
		m.errMsg = err.Error()
		m.rebuildForm()
		return m.formInit()
	}

	payload, err := m.assembler.Assemble(m.ctrl.Accumulator(), m.ctrl.Selection(), author)
	if err != nil {
		m.errMsg = err.Error()
		m.rebuildForm()
		return m.formInit()
	}

	assembler := m.assembler
	m.loading = true
	create := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		created, err := assembler.Create(ctx, payload)
		return projectCreatedMsg{created: created, err: err}
	}
	return tea.Batch(create, m.spinner.Tick)
}

func (m *Model) handleProjectCreated(msg projectCreatedMsg) tea.Cmd {
	m.loading = false
	if msg.err != nil {
		// Wizard state is intact; the user can fix and resubmit.
		m.errMsg = msg.err.Error()
		m.rebuildForm()
		return m.formInit()
	}
	created := msg.created
	m.created = &created
	return nil
}

func (m *Model) rebuildForm() {
	m.formStep = m.ctrl.CurrentStep()
	m.data = newFormData(m.ctrl)
	m.form = buildForm(m.formStep, m.data, m.catalog).WithWidth(max(m.width-4, 40))
}

func (m *Model) formInit() tea.Cmd {
	if m.form == nil {
		return nil
	}
	return m.form.Init()
}

// Run starts the wizard program on the current terminal.
func Run(deps Deps) error {
	_, err := tea.NewProgram(NewModel(deps), tea.WithAltScreen()).Run()
	return err
}
