package content

// Status represents where a project stands in the timeline
type Status string

const (
	StatusCurrent   Status = "current"
	StatusCompleted Status = "completed"
)

// Valid reports whether the status is one of the two known values
func (s Status) Valid() bool {
	return s == StatusCurrent || s == StatusCompleted
}

// Project is one entry in the portfolio timeline
type Project struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Status   Status `json:"status"`
	Problem  string `json:"problem"`
	Solution string `json:"solution"`
	Role     string `json:"role"`
	AppURL   string `json:"app_url,omitempty"`
	RepoURL  string `json:"repo_url,omitempty"`
}

// HasLinks reports whether the project carries an app or repo link
func (p Project) HasLinks() bool {
	return p.AppURL != "" || p.RepoURL != ""
}

// IndexedProject pairs a project with its position in the full timeline
type IndexedProject struct {
	Index   int
	Project Project
}

// RoleGroup is a sidebar section of the timeline
type RoleGroup struct {
	Role     string
	Label    string
	Projects []IndexedProject
}

// Layout tags the visual arrangement of a slide
type Layout string

const (
	LayoutHero                  Layout = "hero"
	LayoutPainBoard             Layout = "painBoard"
	LayoutProcessLoop           Layout = "processLoop"
	LayoutProductComplexity     Layout = "productComplexity"
	LayoutRuleEngineEvolution   Layout = "ruleEngineEvolution"
	LayoutPlatformOrchestration Layout = "platformOrchestration"
	LayoutMicroAutomation       Layout = "microAutomation"
	LayoutPrinciplesGrid        Layout = "principlesGrid"
	LayoutScoreboard            Layout = "scoreboard"
	LayoutBacklogBoard          Layout = "backlogBoard"
	LayoutGuidedDemo            Layout = "guidedDemo"
)

var knownLayouts = map[Layout]bool{
	LayoutHero:                  true,
	LayoutPainBoard:             true,
	LayoutProcessLoop:           true,
	LayoutProductComplexity:     true,
	LayoutRuleEngineEvolution:   true,
	LayoutPlatformOrchestration: true,
	LayoutMicroAutomation:       true,
	LayoutPrinciplesGrid:        true,
	LayoutScoreboard:            true,
	LayoutBacklogBoard:          true,
	LayoutGuidedDemo:            true,
}

// Valid reports whether the layout is one the deck knows how to render
func (l Layout) Valid() bool {
	return knownLayouts[l]
}

// Slide is one section of the presentation deck
type Slide struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Subtitle     string       `json:"subtitle,omitempty"`
	Breadcrumb   string       `json:"breadcrumb"`
	Takeaway     string       `json:"takeaway,omitempty"`
	HideTakeaway bool         `json:"hide_takeaway,omitempty"`
	Summary      string       `json:"summary"`
	Intent       string       `json:"intent"`
	Layout       Layout       `json:"layout"`
	Content      SlideContent `json:"content"`
}

// ShowTakeaway reports whether the takeaway band is rendered
func (s Slide) ShowTakeaway() bool {
	return !s.HideTakeaway && s.Takeaway != ""
}

// ShowHeader reports whether the slide header is rendered at the given position.
// The hero slide leaves room for the navbar instead.
func ShowHeader(index int) bool {
	return index > 0
}

// SlideContent holds the embedded content of a slide. Only the field
// matching the slide layout is set.
type SlideContent struct {
	Hero       *HeroContent       `json:"hero,omitempty"`
	Workflow   *WorkflowContent   `json:"workflow,omitempty"`
	Process    *ProcessContent    `json:"process,omitempty"`
	Products   *ProductContent    `json:"products,omitempty"`
	RuleEngine *RuleEngineContent `json:"rule_engine,omitempty"`
	Platform   *PlatformContent   `json:"platform,omitempty"`
	Micro      *MicroContent      `json:"micro,omitempty"`
	Principles []Principle        `json:"principles,omitempty"`
	Scoreboard *ScoreboardContent `json:"scoreboard,omitempty"`
	Backlog    []BacklogColumn    `json:"backlog,omitempty"`
	Demo       *DemoContent       `json:"demo,omitempty"`
}

type HeroContent struct {
	Headline string `json:"headline"`
	Lead     string `json:"lead"`
}

type WorkflowStage struct {
	Title   string   `json:"title"`
	Bullets []string `json:"bullets"`
}

type WorkflowContent struct {
	Stages  []WorkflowStage `json:"stages"`
	Caption string          `json:"caption"`
}

// ProcessStep is one phase of the process loop carousel
type ProcessStep struct {
	Icon         string   `json:"icon"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Stakeholders []string `json:"stakeholders"`
	Value        []string `json:"value"`
}

type ProcessContent struct {
	Steps []ProcessStep `json:"steps"`
}

type ProductSection struct {
	Label string   `json:"label"`
	Items []string `json:"items"`
	Chips bool     `json:"chips,omitempty"`
}

type ProductCase struct {
	Badge    string           `json:"badge"`
	Title    string           `json:"title"`
	Sub      string           `json:"sub"`
	Sections []ProductSection `json:"sections"`
}

type ProductContent struct {
	Cases []ProductCase `json:"cases"`
}

type RuleEngineContent struct {
	Before        []string `json:"before"`
	BeforeCaption string   `json:"before_caption"`
	EngineLabel   string   `json:"engine_label"`
	EngineModules []string `json:"engine_modules"`
	EngineCaption string   `json:"engine_caption"`
	After         []string `json:"after"`
	AfterCaption  string   `json:"after_caption"`
}

type Capability struct {
	Verb   string `json:"verb"`
	Detail string `json:"detail"`
}

type PlatformContent struct {
	BeforeLabel   string       `json:"before_label"`
	BeforeCaption string       `json:"before_caption"`
	AfterLabel    string       `json:"after_label"`
	Zones         []string     `json:"zones"`
	Capabilities  []Capability `json:"capabilities"`
	Caption       string       `json:"caption"`
}

type MicroContent struct {
	ProblemTitle string   `json:"problem_title"`
	Problem      string   `json:"problem"`
	Metric       string   `json:"metric"`
	MetricLabel  string   `json:"metric_label"`
	Results      []string `json:"results"`
}

type Principle struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type KPI struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Sub   string `json:"sub"`
	Kind  string `json:"kind"`
}

type Milestone struct {
	Name    string `json:"name"`
	Quarter string `json:"quarter"`
}

type ScoreboardContent struct {
	KPIs       []KPI       `json:"kpis"`
	Milestones []Milestone `json:"milestones"`
}

type BacklogColumn struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

type DemoContent struct {
	Steps      []string `json:"steps"`
	ActiveStep int      `json:"active_step"`
	Heading    string   `json:"heading"`
	Body       string   `json:"body"`
	Action     string   `json:"action"`
}

// Evidence links a capability pillar to the work that backs it
type Evidence struct {
	Title     string `json:"title"`
	Detail    string `json:"detail"`
	ProjectID string `json:"project_id,omitempty"`
}

// Link returns the timeline deep link for the evidence, or "" when it has none
func (e Evidence) Link() string {
	if e.ProjectID == "" {
		return ""
	}
	return "/projects?at=" + e.ProjectID + "#" + e.ProjectID
}

// Pillar is one capability area on the summary page
type Pillar struct {
	Title      string     `json:"title"`
	Value      string     `json:"value"`
	Paragraphs []string   `json:"paragraphs"`
	Evidence   []Evidence `json:"evidence"`
}

// Presentation is an entry on the presentations index
type Presentation struct {
	Slug        string `json:"slug"`
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Path        string `json:"path"`
}

type Card struct {
	Eyebrow     string
	Title       string
	Description string
	Path        string
	Accent      string
}

type GuideEntry struct {
	Icon  string
	Title string
	Text  string
}

// Profile carries the copy shared by the home and summary pages
type Profile struct {
	Name             string
	ValueStatement   string
	Overview         []string
	Cards            []Card
	Guide            []GuideEntry
	ExecutiveSummary string
	Presenter        string
}

// Catalog is the full, immutable content of the site
type Catalog struct {
	Profile       Profile
	Projects      []Project
	Slides        []Slide
	Pillars       []Pillar
	Presentations []Presentation
}
