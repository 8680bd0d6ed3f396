package content

const (
	RoleEngineer = "Engineer 1"
	RoleIntern   = "Intern"
)

var roleLabels = []struct {
	role  string
	label string
}{
	{RoleEngineer, "Engineer 1 (Jan 2024 – Present)"},
	{RoleIntern, "Intern (May 2023 – Dec 2023)"},
}

// Default returns the site catalog. Every call builds a fresh copy so
// callers can never mutate shared content.
func Default() *Catalog {
	return &Catalog{
		Profile:       defaultProfile(),
		Projects:      defaultProjects(),
		Slides:        defaultSlides(),
		Pillars:       defaultPillars(),
		Presentations: defaultPresentations(),
	}
}

func defaultProfile() Profile {
	return Profile{
		Name: "Chenla Long, Jr.",
		ValueStatement: "Building scalable engineering systems that reduce operational risk and accelerate technical " +
			"decision-making across the fire protection lifecycle.",
		Overview: []string{
			"This portfolio documents my work architecting configuration-driven software platforms " +
				"that bridge hardware R&D, lab testing, and global sales engineering at Victaulic.",
			"Navigate through the sections below to explore my project timeline, technical capabilities, " +
				"and engineering philosophy.",
		},
		Cards: []Card{
			{
				Eyebrow: "INTERACTIVE TIMELINE",
				Title:   "Project Timeline",
				Description: "Explore my complete project history with an interactive presentation-style timeline. " +
					"Navigate through each project to see problems solved, solutions delivered, and impact created.",
				Path:   "/projects",
				Accent: "orange",
			},
			{
				Eyebrow: "CAPABILITY PILLARS",
				Title:   "Skillset Summary",
				Description: "Review my core technical capabilities organized by engineering domain. " +
					"See how individual projects contribute to broader platform capabilities.",
				Path:   "/summary",
				Accent: "blue",
			},
			{
				Eyebrow: "DEEP DIVES",
				Title:   "Presentations",
				Description: "Access detailed technical presentations and deep-dive content on specific " +
					"engineering systems and methodologies.",
				Path:   "/presentations",
				Accent: "black",
			},
		},
		Guide: []GuideEntry{
			{
				Icon:  "📊",
				Title: "Project Timeline",
				Text:  "Use arrow keys (↑/↓) to navigate between projects. Each project shows problem, solution, and current status.",
			},
			{
				Icon:  "🎯",
				Title: "Skillset Summary",
				Text:  "Click project names to jump directly to that project in the timeline (opens in new tab).",
			},
			{
				Icon:  "🎤",
				Title: "Presentations",
				Text:  "Full-screen presentation mode with detailed technical walkthroughs and case studies.",
			},
		},
		ExecutiveSummary: "My work at Victaulic occupies a unique, cross-functional niche that bridges the gap between hardware " +
			"R&D, lab testing, and global sales application engineering. By architecting centralized, " +
			"configuration-driven software platforms, I enable the organization to scale its technical " +
			"capabilities without incremental headcount.",
		Presenter: "Chenla Long, Jr - Fire Suppression Technology",
	}
}

func defaultProjects() []Project {
	return []Project{
		{
			ID:       "vortex-v2",
			Date:     "May 2025 – Present",
			Title:    "Vortex Project Builder",
			Subtitle: "(Vortex Configuration - V2)",
			Status:   StatusCurrent,
			Problem:  "Single-system tools could not scale to multi-system, multi-enclosure projects without reintroducing manual coordination and error risk.",
			Solution: "Evolved the estimator into a project-based platform supporting multiple engineered and pre-engineered systems with independent configuration and BOMs—while preserving usability under significantly increased complexity.",
			Role:     RoleEngineer,
			AppURL:   "/vortex-project-builder/",
		},
		{
			ID:       "vortex-v1",
			Date:     "Sep 2023 – Present",
			Title:    "Vortex Estimator Tool",
			Subtitle: "(Vortex Configuration - V1)",
			Status:   StatusCurrent,
			Problem:  "Hand calculations and spreadsheets produced slow, inconsistent system estimates.",
			Solution: "Replaced manual sizing with a standardized single-system, multi-zone calculator—establishing a trusted baseline for feasibility, pricing, and configuration accuracy.",
			Role:     RoleEngineer,
		},
		{
			ID:       "vicflex",
			Date:     "Early 2025 – Present",
			Title:    "VicFlex Bracket Filter",
			Status:   StatusCurrent,
			Problem:  "Sales relied on engineering to manually validate bracket compatibility in SolidWorks.",
			Solution: "Delivered an internal sales tool with validated compatible options, constraints, distance ranges, and visuals—reducing engineering interruptions and improving response time.",
			Role:     RoleEngineer,
		},
		{
			ID:       "daq",
			Date:     "Dec 2025",
			Title:    "Scalable DAQ (Bechtel Customer Testing)",
			Status:   StatusCompleted,
			Problem:  "Discharge testing needs varied by campaign, repeatedly consuming lab resources to build custom DAQ systems.",
			Solution: "Designed a configuration-driven DAQ platform that scales across sensor types and test needs—preserving lab capacity and supporting evolving requirements ahead of UL listing efforts.",
			Role:     RoleEngineer,
		},
		{
			ID:       "research",
			Date:     "2024 – 2025",
			Title:    "RG5200i Innovation Research (AI / LiDAR)",
			Status:   StatusCompleted,
			Problem:  "Pipe alignment verification relied on manual inspection, with uncertainty around real-time vision feasibility.",
			Solution: "Conducted feasibility research using ML (YOLOv5) and LiDAR approaches for pipe detection/alignment—reducing uncertainty and informing downstream tool development.",
			Role:     RoleEngineer,
		},
		{
			ID:       "ul-formatter",
			Date:     "Mar 2024 – 2025",
			Title:    "UL Formatter (v1.4)",
			Status:   StatusCompleted,
			Problem:  "Manual transcription of sensor data into UL reports was time-intensive and error-prone.",
			Solution: "Automated UL-compliant certification documents directly from raw test data—improving consistency, auditability, and confidence in reported results.",
			Role:     RoleEngineer,
		},
		{
			ID:       "bom-prototype",
			Date:     "May 2023 – Dec 2023",
			Title:    "Vortex BOM Application",
			Subtitle: "(Vortex Configuration - Prototype)",
			Status:   StatusCompleted,
			Problem:  "Vortex system calculations were difficult to reason about and validate early in the design process.",
			Solution: "Built a prototype to learn calculation methods and prove feasibility—directly informing the later public Vortex Estimator Tool.",
			Role:     RoleIntern,
		},
		{
			ID:       "stepper-motor",
			Date:     "May 2023 – Dec 2023",
			Title:    "Stepper Motor Control Loop (Cost Reduction Research)",
			Status:   StatusCompleted,
			Problem:  "The existing MDrive motor solution met requirements but carried high component cost.",
			Solution: "Implemented a PID-based C++ control loop to evaluate an in-house alternative—targeting cost reduction at the component and panel/system level.",
			Role:     RoleIntern,
		},
		{
			ID:       "rd-support",
			Date:     "May 2023 – Dec 2023",
			Title:    "Vortex R&D & Test DAQ Support",
			Status:   StatusCompleted,
			Problem:  "R&D testing required repeatable sensor setup and reliable data collection across changing test needs.",
			Solution: "Configured sensors and wiring, operated existing DAQ programs, and collected/reported data to support engineered and pre-engineered system development.",
			Role:     RoleIntern,
		},
	}
}

func defaultPillars() []Pillar {
	return []Pillar{
		{
			Title: "Engineering System Automation & Estimation",
			Value: "Accelerating complex system design through the codification of tribal engineering knowledge into real-time validation engines.",
			Paragraphs: []string{
				"Vortex project estimation was historically a manual, spreadsheet-driven process. I progressively automated this workflow by codifying engineering knowledge into software.",
				"What once required days—or even a week—of manual calculations can now be reduced to a five-minute conversation to determine system requirements. The Project Builder unifies calculations, standards compliance, real-time pricing, and system-specific BOM generation into a single customer-facing workflow.",
				"Development required close collaboration across engineering, project management, customer care, IT, and packaging, and includes full ownership of the real-time pricing database that powers all estimation outputs.",
			},
			Evidence: []Evidence{
				{Title: "Vortex Project Builder", Detail: "(Customer-facing platform for configuring and submitting complex multi-system projects)", ProjectID: "vortex-v2"},
				{Title: "Vortex Configurator", Detail: "(Production tool that replaced manual hand-sizing for single-system estimates and pricing)", ProjectID: "vortex-v1"},
				{Title: "Vortex Estimator Tool", Detail: "(Early prototype used to formalize calculation logic and BOM traceability)", ProjectID: "bom-prototype"},
			},
		},
		{
			Title: "Scalable Test & Data Infrastructure",
			Value: "Increasing R&D throughput and confidence by replacing one-off test builds with reusable, configuration-driven data systems.",
			Paragraphs: []string{
				"R&D and customer testing historically relied on project-specific DAQ builds that limited lab throughput and consumed engineering capacity. Test setups were often tightly coupled to individual campaigns, making reuse, comparison, and certification workflows difficult to scale.",
				"I architected a configuration-driven DAQ platform that decouples test logic from hardware wiring and sensor selection. This approach enables the same core system to scale across customer campaigns, internal R&D testing, and future certification cycles without requiring custom rebuilds.",
				"In parallel, I automated certification data pipelines to eliminate manual transcription. The UL Formatter pulls results directly from raw test outputs, producing auditable, repeatable reports and significantly reducing the risk of human error in high-stakes certification workflows.",
				"Together, these systems preserve critical lab capacity, improve repeatability, and increase confidence in data used for customer decisions and regulatory submissions.",
			},
			Evidence: []Evidence{
				{Title: "Scalable DAQ Platform (Bechtel Customer Testing)", Detail: "(Reusable, configuration-driven LabVIEW architecture for campaign-based testing)", ProjectID: "daq"},
				{Title: "Vortex R&D & Test DAQ Support", Detail: "(Ongoing lab infrastructure supporting internal development and validation)", ProjectID: "rd-support"},
				{Title: "UL Formatter", Detail: "(Automated certification reporting pipeline sourced directly from raw test data)", ProjectID: "ul-formatter"},
				{Title: "Test Sheet Automation", Detail: "(Self-service utilities for standardized lab validation and data review)"},
			},
		},
		{
			Title: "Engineering Enablement & Workflow Modernization",
			Value: "Reducing operational risk and knowledge silos by establishing durable, version-controlled engineering software practices.",
			Paragraphs: []string{
				"As internally developed engineering tools expanded in scope and impact, the limitations of spreadsheet-based distribution and ad-hoc file sharing became a growing source of risk. Updates were difficult to track, logic changes were hard to audit, and long-term ownership was unclear.",
				"I advised and supported the team in adopting Git and GitHub as a modern version-control foundation for engineering software. This included guiding best practices around repository structure, change tracking, and collaborative workflows, while working alongside others who executed the implementation.",
				"In coordination with IT, I also helped establish a controlled publishing path for internal engineering tools. This ensured that deployed applications are traceable, maintainable, and resilient to personnel changes, significantly reducing the long-term \"bus factor\" associated with legacy workflows.",
			},
			Evidence: []Evidence{
				{Title: "Git & GitHub Adoption", Detail: "(Advisory leadership on version control strategy and best practices)"},
				{Title: "IT Domain Integration", Detail: "(Controlled publishing and distribution model for internal engineering tools)"},
			},
		},
		{
			Title: "Innovation Research & Technical Risk Reduction",
			Value: "Reducing uncertainty in future hardware and tooling investments through targeted feasibility research and low-level prototyping.",
			Paragraphs: []string{
				"To inform future tool and automation investments, I conducted feasibility research into computer vision, LiDAR, and embedded control systems. This work focused on evaluating technical viability before committing to production development.",
				"Through RG5200i Pipe Detection Research, I explored both machine learning–based approaches and LiDAR point-cloud workflows to detect pipe geometry and alignment. This included training and evaluating detection models as well as assessing the practical limits of point-cloud–based analysis in industrial environments.",
				"Separately, I conducted Stepper Motor Control Loop Research to evaluate low-level motion control as a potential in-house alternative for future systems. This effort focused on C++ development, embedded control logic, and direct board-level communication, expanding internal understanding of real-time control constraints without committing to productization.",
				"These efforts reduced technical uncertainty, expanded internal capability, and provided concrete data to inform future investment decisions.",
			},
			Evidence: []Evidence{
				{Title: "RG5200i Pipe Detection Research", Detail: "(ML-based and LiDAR-based feasibility exploration for pipe detection)", ProjectID: "research"},
				{Title: "Stepper Motor Control Loop Research", Detail: "(C++ embedded control and board communication feasibility study)", ProjectID: "stepper-motor"},
			},
		},
		{
			Title: "Decision Support & Field Enablement Tools",
			Value: "Accelerating Sales and Field response times by removing recurring engineering bottlenecks from high-frequency decision workflows.",
			Paragraphs: []string{
				"Sales and Field teams frequently require rapid confirmation of product compatibility, installation constraints, and system fit. Historically, these questions interrupted engineering teams and relied on manual lookups, informal guidance, or ad-hoc validation.",
				"I delivered self-service decision support tools that decouple routine compatibility checks from engineering availability. By automating the extraction and validation of configuration constraints, these tools provide immediate, data-backed answers while preserving engineering capacity for higher-complexity work.",
				"The VicFlex Bracket Filter transforms SolidWorks-derived compatibility data into an intuitive configuration workflow, allowing Sales and Field users to verify valid combinations with visual confirmation. This improves response time, reduces error risk, and increases customer confidence through validated constraints rather than informal guidance.",
				"Collectively, these tools reduce recurring workflow interruptions, shorten sales cycles, and ensure consistent application of engineering rules across customer-facing interactions.",
			},
			Evidence: []Evidence{
				{Title: "VicFlex Bracket Filter", Detail: "(Automated compatibility configuration and validation system)", ProjectID: "vicflex"},
			},
		},
	}
}

func defaultPresentations() []Presentation {
	return []Presentation{
		{
			Slug:     "lunchandlearn",
			Category: "ENGINEERING SYSTEMS",
			Title:    "From Workflow Friction to Validated Systems",
			Description: "Cross-functional engineering workflows translated into reliable, scalable software platforms. " +
				"Explore the process, principles, and impact of building internal engineering tools.",
			Path: "/presentations/lunchandlearn",
		},
	}
}
