package content

func defaultSlides() []Slide {
	return []Slide{
		{
			ID:           "hero",
			Title:        "Delivering Engineering Software Solutions",
			Subtitle:     "Reducing risk and scaling knowledge across the product lifecycle",
			Breadcrumb:   "CONTEXT",
			Takeaway:     "When workflow rules are encoded into systems, risk drops and efficiency scales.",
			HideTakeaway: true,
			Summary:      "Introduce the talk as a cross-functional, systems-driven approach to reducing manual friction and operational risk.",
			Intent:       "Establish positioning as a strategic, cross-department systems builder.",
			Layout:       LayoutHero,
			Content: SlideContent{Hero: &HeroContent{
				Headline: "FROM WORKFLOW FRICTION TO VALIDATED SYSTEMS",
				Lead:     "Cross-functional engineering workflows translated into reliable, scalable software platforms.",
			}},
		},
		{
			ID:         "pain",
			Title:      "Where Risk Enters the Workflow",
			Subtitle:   "When system logic is fragmented, friction appears at every stage of design and delivery.",
			Breadcrumb: "FRICTION",
			Takeaway:   "When validation happens late, friction multiplies across the workflow.",
			Summary:    "Show where risk enters the engineering workflow when complex systems are designed using fragmented logic.",
			Intent:     `Demonstrate that "friction" is a structural workflow problem, not just an organizational one.`,
			Layout:     LayoutPainBoard,
			Content: SlideContent{Workflow: &WorkflowContent{
				Stages: []WorkflowStage{
					{Title: "DESIGN", Bullets: []string{"Manual constraint interpretation", "Training-dependent outcomes", "Logic spread across multiple files"}},
					{Title: "VALIDATION", Bullets: []string{"Late-stage rule discovery", "Cross-zone or compliance mismatches", "Rework after calculation"}},
					{Title: "QUOTING", Bullets: []string{"Pricing + partcode reconciliation", "Engineering dependency for confirmation", "Slower turnaround"}},
					{Title: "DELIVERY", Bullets: []string{"Inconsistent BOM documentation", "Audit variance", "Output standardization gaps"}},
				},
				Caption: "Fragmented logic shifts validation downstream and multiplies risk.",
			}},
		},
		{
			ID:         "3",
			Title:      "How I Build Internal Platforms",
			Subtitle:   "A cross-functional workflow from concept → deployment.",
			Breadcrumb: "Systems",
			Takeaway:   "Alignment + validation + iteration is what makes tools scalable.",
			Summary:    "I follow a formal product lifecycle even for internal tools. This includes immersion with project engineers, prototyping with calc designers, and validation sprints with test groups.",
			Intent:     "Demonstrate operational rigor and empathy for the end-user (engineer/designer).",
			Layout:     LayoutProcessLoop,
			Content: SlideContent{Process: &ProcessContent{Steps: []ProcessStep{
				{
					Icon:         "💡",
					Title:        "Discovery",
					Description:  "Validate value, scope, and cross-department impact before building.",
					Stakeholders: []string{"Product Management", "Project Engineering"},
					Value:        []string{"Strategic Alignment", "Risk Reduction"},
				},
				{
					Icon:         "🔍",
					Title:        "Immersion",
					Description:  "Map real use cases, constraints, and edge conditions.",
					Stakeholders: []string{"Project Engineering", "Applications Engineering", "Customer Care", "End Users"},
					Value:        []string{"Use-Case Clarity", "Requirement Confidence"},
				},
				{
					Icon:         "🧱",
					Title:        "Architecture",
					Description:  "Define data models, rules, system boundaries, and visibility.",
					Stakeholders: []string{"Project Engineering", "IT"},
					Value:        []string{"Scalable Framework", "Standards Enforcement"},
				},
				{
					Icon:         "🧪",
					Title:        "Prototype",
					Description:  "Prove feasibility with a minimal, validated build.",
					Stakeholders: []string{"Project Engineering", "Applications Engineering"},
					Value:        []string{"Feasibility Validation", "Accelerated Learning"},
				},
				{
					Icon:         "🔁",
					Title:        "Validation Sprints",
					Description:  "Pressure-test assumptions and iterate through structured feedback.",
					Stakeholders: []string{"Internal Testing Group", "Product Management"},
					Value:        []string{"Accuracy", "Operational Confidence"},
				},
				{
					Icon:         "🚀",
					Title:        "Deploy & Sustain",
					Description:  "Release, align stakeholders, and continuously improve.",
					Stakeholders: []string{"Sales", "Marketing", "Legal", "IT", "Customer Care"},
					Value:        []string{"Adoption", "Continuous Improvement"},
				},
			}}},
		},
		{
			ID:         "systems-practice",
			Title:      "Powerful Products. Complex Systems.",
			Subtitle:   "Engineering excellence introduces configuration complexity.",
			Breadcrumb: "SYSTEMS → APPLICATION",
			Takeaway:   "As product capability increases, structured tooling becomes necessary to reduce risk and variability.",
			Summary:    "Increased product capability naturally results in system-level configuration density. Structured engineering platforms are necessary to translate this complexity into consistent, risk-mitigated outputs.",
			Intent:     "Demonstrate product depth understanding and set up case studies as necessary solutions—not optional tools.",
			Layout:     LayoutProductComplexity,
			Content: SlideContent{Products: &ProductContent{Cases: []ProductCase{
				{
					Badge: "SYSTEM CASE A",
					Title: "VORTEX HYBRID SYSTEM",
					Sub:   "Hybrid dual-agent suppression for mission-critical applications.",
					Sections: []ProductSection{
						{Label: "Core Capability", Items: []string{
							"Hybrid media discharge (atomized water + nitrogen)",
							"Effective in water-sensitive + energized environments",
							"Environmentally safe, minimal asset damage",
						}},
						{Label: "System Complexity", Items: []string{
							"Full system design required before sizing + pricing",
							"Logic, partcodes, and pricing fragmented across spreadsheets",
							"Method-specific agency rules layered onto constraints",
							"Training-dependent design expertise",
						}},
						{Label: "Where Friction Appears", Chips: true, Items: []string{
							"Engineering Bottlenecks",
							"Spreadsheet Variance",
							"Human Data Entry Error",
							"Exponential Design Time",
						}},
					},
				},
				{
					Badge: "SYSTEM CASE B",
					Title: "VICFLEX FLEXIBLE FITTINGS",
					Sub:   "Modular sprinkler connection system across diverse install conditions.",
					Sections: []ProductSection{
						{Label: "Core Capability", Items: []string{
							"Modular flexible sprinkler connectivity",
							"Engineered assemblies for multiple ceiling types",
							"Accelerated installation vs traditional pipe",
						}},
						{Label: "System Complexity", Items: []string{
							"Large compatibility matrix across product lines",
							"High configuration variability per application",
							"Application-specific constraints (layout, hazard, ceiling)",
							"Repetitive but non-identical design requests",
						}},
						{Label: "Where Friction Appears", Chips: true, Items: []string{
							"Engineering Gatekeeping",
							"Sales Information Gaps",
							"Quoting Delays",
							"Lost Velocity",
						}},
					},
				},
			}}},
		},
		{
			ID:         "configurator",
			Title:      "Encoding Engineering Judgment",
			Subtitle:   "Case Study 1: From manual variance to rule-based validation",
			Breadcrumb: "SYSTEMS → CASE STUDIES",
			Takeaway:   "When requirements become code, outputs become consistent — and risk shifts upstream.",
			Summary:    "Demonstrates the transition from spreadsheet-based logic to an encoded rules engine with real-time validation and standardized outputs.",
			Intent:     "Prove that automation here means structural risk reduction, not just calculation speed.",
			Layout:     LayoutRuleEngineEvolution,
			Content: SlideContent{RuleEngine: &RuleEngineContent{
				Before:        []string{"Pricing", "Partcodes", "Calculation Logic", "Design Reviews"},
				BeforeCaption: "Fragmented design workflow",
				EngineLabel:   "Vortex Estimator Tool → Vortex Configurator",
				EngineModules: []string{
					"Centralizes design logic",
					"Enforces constraints at input",
					"Applies method-specific compliance",
					"Links calculations to partcodes + pricing",
					"Generates standardized outputs",
				},
				EngineCaption: "Validation moved upstream",
				After:         []string{"Consistent Results", "Faster Validation", "Reduced Rework", "Lower Risk"},
				AfterCaption:  "Standardized results at scale",
			}},
		},
		{
			ID:         "builder",
			Title:      "From Tool to Platform",
			Subtitle:   "Project-Level Orchestration",
			Breadcrumb: "SCALING CAPABILITY",
			Takeaway:   "Project-level hierarchy turns many enclosures into one consistent BOM and documentation set.",
			Summary:    "Shows how enclosure → zone → system → project aggregation enables cross-zone validation and standardized outputs.",
			Intent:     "Highlight the shift from single-system validation to project-wide coordination and repeatable deliverables.",
			Layout:     LayoutPlatformOrchestration,
			Content: SlideContent{Platform: &PlatformContent{
				BeforeLabel:   "Independent System Calculations",
				BeforeCaption: "Multiple system-level outputs. Manual project reconciliation.",
				AfterLabel:    "Project-Level Hierarchy",
				Zones:         []string{"A", "B", "C", "D"},
				Capabilities: []Capability{
					{Verb: "Model", Detail: "enclosure → zone → system → project modeling"},
					{Verb: "Validate", Detail: "cross-system validation logic"},
					{Verb: "Aggregate", Detail: "centralized BOM aggregation"},
					{Verb: "Standardize", Detail: "project-level documentation"},
					{Verb: "Guide", Detail: "warnings, tutorials, error codes"},
				},
				Caption: "Scaling from system validation to project-wide coordination.",
			}},
		},
		{
			ID:         "bracket",
			Title:      "Small Automation, Big Leverage",
			Subtitle:   "Case Study 3: Eliminating a high-frequency bottleneck",
			Breadcrumb: "SYSTEMS → CASE STUDIES",
			Takeaway:   "Automating the decisions made 40 times creates more impact than optimizing the ones made once.",
			Summary:    "Illustrates how targeted automation of repetitive calculations reduces engineering gatekeeping and accelerates quoting.",
			Intent:     "Show that structured thinking scales from large platforms down to small, high-frequency workflows.",
			Layout:     LayoutMicroAutomation,
			Content: SlideContent{Micro: &MicroContent{
				ProblemTitle: "High-Frequency Bottleneck",
				Problem:      "Engineers repeatedly filtered bracket compatibility across matrices and PDF references.",
				Metric:       "40+ Repetitions",
				MetricLabel:  "Per Project",
				Results:      []string{"Instant compatible outputs", "Zero interpretation risk", "No engineering gatekeeping"},
			}},
		},
		{
			ID:         "principles",
			Title:      "The Automation Playbook",
			Subtitle:   "Principles that guide the work",
			Breadcrumb: "Approach → Principles → Future",
			Takeaway:   "The goal is to make the correct way the easy way.",
			Summary:    "Synthesize lessons into repeatable approach.",
			Intent:     `Elevate from "tools" to "systems".`,
			Layout:     LayoutPrinciplesGrid,
			Content: SlideContent{Principles: []Principle{
				{Icon: "🛡️", Title: "Validate Early", Description: "Stop errors at the point of entry."},
				{Icon: "🔗", Title: "Encode Rules", Description: "Translate manuals into logic constraints."},
				{Icon: "✂️", Title: "Cut Handoffs", Description: "Single data entry from sales to build."},
				{Icon: "📏", Title: "Standardize", Description: "Uniform outputs for every stakeholder."},
				{Icon: "🏛️", Title: "Institutionalize", Description: "Memory lives in code, not individuals."},
				{Icon: "🎯", Title: "High Coherence", Description: "Pricing and config always match."},
			}},
		},
		{
			ID:         "impact",
			Title:      "Impact You Can Feel",
			Subtitle:   "Reliability, Speed, & Consistency",
			Breadcrumb: "Approach → Principles → Future",
			Takeaway:   "Automation isn’t about flash—it’s about workflow reliability.",
			Summary:    "Make impact concrete with KPIs.",
			Intent:     "Translate work into business benefits.",
			Layout:     LayoutScoreboard,
			Content: SlideContent{Scoreboard: &ScoreboardContent{
				KPIs: []KPI{
					{Label: "TIME SAVED", Value: "400h+", Sub: "Annual / Lab Ops", Kind: "Estimated"},
					{Label: "RISK REDUCTION", Value: "80%", Sub: "Logic Regressions", Kind: "Observed"},
					{Label: "CONSISTENCY", Value: "100%", Sub: "Output Formats", Kind: "Qualitative"},
				},
				Milestones: []Milestone{
					{Name: "V1 Launch", Quarter: "Q1 2026"},
					{Name: "Builder Beta", Quarter: "Q2 2026"},
					{Name: "Global Release", Quarter: "Q3 2026"},
					{Name: "AI Integration", Quarter: "Q4 2026"},
				},
			}},
		},
		{
			ID:         "next",
			Title:      "What should we automate next?",
			Subtitle:   "Turn friction into a backlog",
			Breadcrumb: "Approach → Principles → Future",
			Takeaway:   "If a workflow is repetitive and rule-based, it’s a candidate for code.",
			Summary:    "Invite collaboration on future friction.",
			Intent:     "Spark discussion and generate projects.",
			Layout:     LayoutBacklogBoard,
			Content: SlideContent{Backlog: []BacklogColumn{
				{Title: "High Value / Easy", Items: []string{"Auto-partcode Gen", "Margin Guardrails"}},
				{Title: "High Value / Hard", Items: []string{"3D Zone Preview", "ERP Direct Sync"}},
				{Title: "Needs Discovery", Items: []string{"Field Image Ingestion", "Mobile App Sync"}},
			}},
		},
		{
			ID:         "demo",
			Title:      "Guided Demo Mode",
			Subtitle:   "Vortex Builder v2.4 Live Preview",
			Breadcrumb: "Live Demo",
			Takeaway:   "From input to design-ready output—without spreadsheet archaeology.",
			Summary:    "Deterministic demo mode end-to-end.",
			Intent:     "End with tangible experience of improvements.",
			Layout:     LayoutGuidedDemo,
			Content: SlideContent{Demo: &DemoContent{
				Steps:      []string{"Load Preset", "Define Zones", "Resolve Warnings", "Export BOM"},
				ActiveStep: 1,
				Heading:    "DEMO MODE ACTIVE",
				Body:       "Interactive platform view ready for live walkthrough.",
				Action:     "LAUNCH BUILDER",
			}},
		},
	}
}
