// Package taxonomy defines the static domain registry for preference
// collection: domain-specific categories, scoring dimensions with 1-5 scale
// anchors, and annotator requirements for each supported platform.
//
// The registry is pure configuration. It is compiled in rather than loaded
// from disk so that every deployment of the pipeline agrees on domain and
// category identifiers, which become record keys in the remote store.
//
// REGISTRY STRUCTURE:
//   - Dimension: a reusable scoring axis (accuracy, safety, ...) with anchors
//   - Category: a sub-area within a domain with example task phrasings
//   - Domain: a platform's complete definition with categories and dimensions
//
// Used by the ingestion API to validate inbound categories, by the CLI to
// list collection targets, and by the pair generator to select seed prompts.
package taxonomy

// Weight expresses how strongly a scoring dimension counts toward a domain's
// aggregate quality score.
type Weight int

const (
	WeightStandard Weight = 1
	WeightHigh     Weight = 2
	WeightCritical Weight = 3
)

// Dimension is a reusable axis for evaluating response quality. Anchors map
// the 1-5 rating scale to concrete descriptions so annotators across
// domains rate consistently.
type Dimension struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Weight      Weight         `json:"weight"`
	Anchors     map[int]string `json:"anchors"`
}

// Category is a sub-area within a domain. ExampleTasks illustrate the kind
// of prompts the category collects.
type Category struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	ExampleTasks []string `json:"example_tasks"`
}

// Domain is a complete platform definition: its categories, the scoring
// dimensions its annotators rate on, and collection targets.
type Domain struct {
	ID                    string      `json:"id"`
	Name                  string      `json:"name"`
	Platform              string      `json:"platform"`
	Description           string      `json:"description"`
	Categories            []Category  `json:"categories"`
	Dimensions            []Dimension `json:"dimensions"`
	AnnotatorRequirements string      `json:"annotator_requirements"`
	MinSamples            int         `json:"min_samples"`
}

// Reusable scoring dimensions shared across domains.
var (
	DimensionAccuracy = Dimension{
		Name:        "accuracy",
		Description: "Factual correctness and domain expertise demonstrated",
		Weight:      WeightCritical,
		Anchors: map[int]string{
			1: "Contains major factual errors or misconceptions",
			2: "Some inaccuracies that could mislead",
			3: "Generally accurate with minor gaps",
			4: "Accurate with good domain knowledge",
			5: "Expertly accurate, demonstrates deep expertise",
		},
	}

	DimensionSafety = Dimension{
		Name:        "safety",
		Description: "Avoids harmful, unethical, or dangerous content",
		Weight:      WeightCritical,
		Anchors: map[int]string{
			1: "Contains dangerous or harmful guidance",
			2: "Potential safety concerns present",
			3: "Safe but lacks precautionary context",
			4: "Safe with appropriate caveats",
			5: "Exemplary safety awareness and guardrails",
		},
	}

	DimensionActionability = Dimension{
		Name:        "actionability",
		Description: "Provides clear, implementable guidance",
		Weight:      WeightHigh,
		Anchors: map[int]string{
			1: "Vague, no clear next steps",
			2: "Somewhat actionable but unclear",
			3: "Moderately actionable guidance",
			4: "Clear, specific action items",
			5: "Immediately actionable with concrete steps",
		},
	}

	DimensionClarity = Dimension{
		Name:        "clarity",
		Description: "Well-structured, easy to understand response",
		Weight:      WeightStandard,
		Anchors: map[int]string{
			1: "Confusing, poorly organized",
			2: "Somewhat unclear structure",
			3: "Adequate clarity",
			4: "Well-organized and clear",
			5: "Exceptionally clear and well-structured",
		},
	}

	DimensionCompliance = Dimension{
		Name:        "compliance",
		Description: "Adherence to regulatory/legal requirements",
		Weight:      WeightCritical,
		Anchors: map[int]string{
			1: "Violates regulations/standards",
			2: "Compliance gaps present",
			3: "Basic compliance awareness",
			4: "Strong regulatory alignment",
			5: "Expert compliance with citations",
		},
	}

	DimensionTechnicalDepth = Dimension{
		Name:        "technical_depth",
		Description: "Appropriate level of technical detail",
		Weight:      WeightHigh,
		Anchors: map[int]string{
			1: "Superficial, lacks technical substance",
			2: "Limited technical depth",
			3: "Adequate technical content",
			4: "Good technical depth",
			5: "Excellent technical depth and insight",
		},
	}

	DimensionEthics = Dimension{
		Name:        "ethics",
		Description: "Ethical considerations and responsible AI",
		Weight:      WeightCritical,
		Anchors: map[int]string{
			1: "Ignores ethical implications",
			2: "Minimal ethical awareness",
			3: "Basic ethical consideration",
			4: "Strong ethical framing",
			5: "Exemplary ethical reasoning",
		},
	}
)

// domains is the ordered registry of all collection domains.
var domains = []Domain{
	{
		ID:          "procurement",
		Name:        "Fed/SLED Procurement",
		Platform:    "Aureon",
		Description: "Government contracting expertise covering FAR/DFARS regulations, RFP analysis, proposal writing, and compliance",
		Categories: []Category{
			{
				ID:          "rfp_analysis",
				Name:        "RFP Analysis",
				Description: "Analyzing government solicitations and requirements",
				ExampleTasks: []string{
					"Extract key requirements from this RFP",
					"Identify evaluation criteria and weights",
					"Flag compliance risks in solicitation",
				},
			},
			{
				ID:          "proposal_writing",
				Name:        "Proposal Writing",
				Description: "Technical and management proposal development",
				ExampleTasks: []string{
					"Draft technical approach section",
					"Write past performance narrative",
					"Develop staffing plan justification",
				},
			},
			{
				ID:          "far_dfars",
				Name:        "FAR/DFARS Interpretation",
				Description: "Regulatory guidance and clause interpretation",
				ExampleTasks: []string{
					"Explain implications of this FAR clause",
					"DFARS compliance requirements for CUI",
					"Small business subcontracting plan requirements",
				},
			},
			{
				ID:          "pricing_strategy",
				Name:        "Pricing & Cost Strategy",
				Description: "Cost proposal development and pricing analysis",
				ExampleTasks: []string{
					"Labor category rate justification",
					"Cost realism analysis approach",
					"CPFF vs FFP tradeoff analysis",
				},
			},
		},
		Dimensions:            []Dimension{DimensionAccuracy, DimensionCompliance, DimensionActionability, DimensionClarity},
		AnnotatorRequirements: "Government contracting experience (CO, contracts specialist, or proposal manager)",
		MinSamples:            500,
	},
	{
		ID:          "biomedical",
		Name:        "Biomedical GB-CI",
		Platform:    "Symbion",
		Description: "Gut-brain communication interface research, biosensor development, and neural-enteric system analysis",
		Categories: []Category{
			{
				ID:          "biosensor_design",
				Name:        "Biosensor Design",
				Description: "Design of gut-brain interface sensors",
				ExampleTasks: []string{
					"Specify biosensor requirements for enteric signaling",
					"Material biocompatibility analysis",
					"Signal processing architecture for vagal nerve",
				},
			},
			{
				ID:          "neural_analysis",
				Name:        "Neural-Enteric Analysis",
				Description: "Analysis of gut-brain axis communication",
				ExampleTasks: []string{
					"Interpret microbiome-brain signaling data",
					"Vagus nerve stimulation protocol design",
					"Enteric nervous system mapping",
				},
			},
			{
				ID:          "clinical_protocols",
				Name:        "Clinical Protocols",
				Description: "Clinical study design and protocols",
				ExampleTasks: []string{
					"Design IRB protocol for GB-CI trial",
					"Adverse event monitoring plan",
					"Patient selection criteria",
				},
			},
			{
				ID:          "data_interpretation",
				Name:        "Data Interpretation",
				Description: "Biomedical data analysis and interpretation",
				ExampleTasks: []string{
					"Statistical analysis of biosensor readings",
					"Correlate gut signals with cognitive metrics",
					"Longitudinal biomarker tracking",
				},
			},
		},
		Dimensions:            []Dimension{DimensionAccuracy, DimensionSafety, DimensionTechnicalDepth, DimensionClarity},
		AnnotatorRequirements: "Biomedical or neuroscience background (PhD preferred)",
		MinSamples:            400,
	},
	{
		ID:          "ingestible",
		Name:        "Ingestible GB-CI",
		Platform:    "Symbion HW",
		Description: "Capsule endoscopy and in-vivo sensing devices, ingestible electronics design and safety",
		Categories: []Category{
			{
				ID:          "capsule_design",
				Name:        "Capsule Design",
				Description: "Ingestible device hardware design",
				ExampleTasks: []string{
					"Capsule form factor optimization",
					"Power management for 72hr transit",
					"Antenna design for in-body telemetry",
				},
			},
			{
				ID:          "invivo_sensing",
				Name:        "In-Vivo Sensing",
				Description: "Sensing modalities for GI tract",
				ExampleTasks: []string{
					"pH sensing array calibration",
					"Motility pattern detection algorithm",
					"Gas composition sensing approach",
				},
			},
			{
				ID:          "regulatory_path",
				Name:        "Regulatory Pathway",
				Description: "FDA/CE regulatory strategy",
				ExampleTasks: []string{
					"510(k) predicate device analysis",
					"De novo classification strategy",
					"Clinical evidence requirements",
				},
			},
			{
				ID:          "manufacturing",
				Name:        "Manufacturing & QC",
				Description: "Production and quality control",
				ExampleTasks: []string{
					"Bioburden testing protocol",
					"Encapsulation process validation",
					"Batch release testing requirements",
				},
			},
		},
		Dimensions:            []Dimension{DimensionSafety, DimensionAccuracy, DimensionCompliance, DimensionTechnicalDepth},
		AnnotatorRequirements: "Medical device or biomedical engineering experience",
		MinSamples:            350,
	},
	{
		ID:          "legacy",
		Name:        "Legacy Refactoring",
		Platform:    "Relian",
		Description: "COBOL modernization, mainframe migration, and legacy system transformation",
		Categories: []Category{
			{
				ID:          "cobol_analysis",
				Name:        "COBOL Analysis",
				Description: "Understanding and documenting COBOL systems",
				ExampleTasks: []string{
					"Parse COBOL copybook structure",
					"Document business rules from code",
					"Identify dead code and dependencies",
				},
			},
			{
				ID:          "migration_strategy",
				Name:        "Migration Strategy",
				Description: "Planning legacy system migration",
				ExampleTasks: []string{
					"Recommend migration approach (rehost/refactor/replace)",
					"Risk assessment for CICS migration",
					"Data migration strategy for VSAM files",
				},
			},
			{
				ID:          "code_translation",
				Name:        "Code Translation",
				Description: "Converting legacy code to modern languages",
				ExampleTasks: []string{
					"Translate COBOL paragraph to Java",
					"Map JCL to modern orchestration",
					"Convert CICS screens to REST APIs",
				},
			},
			{
				ID:          "testing_validation",
				Name:        "Testing & Validation",
				Description: "Ensuring migration correctness",
				ExampleTasks: []string{
					"Design test cases for COBOL migration",
					"Output comparison strategy",
					"Performance baseline methodology",
				},
			},
		},
		Dimensions:            []Dimension{DimensionAccuracy, DimensionTechnicalDepth, DimensionActionability, DimensionClarity},
		AnnotatorRequirements: "COBOL/mainframe experience (developer or architect)",
		MinSamples:            300,
	},
	{
		ID:          "autonomy",
		Name:        "Autonomy OS",
		Platform:    "Veyra",
		Description: "Agent systems, AI safety, autonomous decision-making, and multi-agent coordination",
		Categories: []Category{
			{
				ID:          "agent_design",
				Name:        "Agent Architecture",
				Description: "Designing autonomous agent systems",
				ExampleTasks: []string{
					"Design agent goal hierarchy",
					"Specify agent communication protocol",
					"Memory and state management approach",
				},
			},
			{
				ID:          "safety_constraints",
				Name:        "Safety Constraints",
				Description: "Ensuring safe autonomous behavior",
				ExampleTasks: []string{
					"Define safety invariants for agent",
					"Design human override mechanisms",
					"Specify resource usage limits",
				},
			},
			{
				ID:          "multi_agent",
				Name:        "Multi-Agent Coordination",
				Description: "Coordinating multiple agents",
				ExampleTasks: []string{
					"Design agent negotiation protocol",
					"Resource allocation among agents",
					"Conflict resolution mechanism",
				},
			},
			{
				ID:          "verification",
				Name:        "Verification & Alignment",
				Description: "Verifying agent behavior alignment",
				ExampleTasks: []string{
					"Define alignment test suite",
					"Behavioral monitoring approach",
					"Value learning methodology",
				},
			},
		},
		Dimensions:            []Dimension{DimensionSafety, DimensionEthics, DimensionAccuracy, DimensionTechnicalDepth},
		AnnotatorRequirements: "AI safety familiarity (researcher or practitioner)",
		MinSamples:            300,
	},
	{
		ID:          "quantum_arch",
		Name:        "Quantum Archaeology",
		Platform:    "QAWM",
		Description: "Historical reconstruction using quantum computing, archaeological data analysis, and temporal modeling",
		Categories: []Category{
			{
				ID:          "temporal_modeling",
				Name:        "Temporal Modeling",
				Description: "Modeling historical timelines and events",
				ExampleTasks: []string{
					"Bayesian chronology construction",
					"Event sequence probability analysis",
					"Temporal uncertainty quantification",
				},
			},
			{
				ID:          "artifact_analysis",
				Name:        "Artifact Analysis",
				Description: "Analyzing archaeological artifacts",
				ExampleTasks: []string{
					"Material composition inference",
					"Provenance network reconstruction",
					"Trade route probability mapping",
				},
			},
			{
				ID:          "quantum_algorithms",
				Name:        "Quantum Algorithms",
				Description: "Quantum computing for archaeology",
				ExampleTasks: []string{
					"Design QAOA for site optimization",
					"Quantum sampling for reconstruction",
					"VQE for molecular dating",
				},
			},
			{
				ID:          "data_integration",
				Name:        "Data Integration",
				Description: "Combining heterogeneous archaeological data",
				ExampleTasks: []string{
					"Fuse stratigraphy with radiocarbon",
					"Integrate textual and material evidence",
					"Cross-site correlation analysis",
				},
			},
		},
		Dimensions:            []Dimension{DimensionAccuracy, DimensionTechnicalDepth, DimensionClarity, DimensionActionability},
		AnnotatorRequirements: "Archaeology or quantum computing background",
		MinSamples:            250,
	},
	{
		ID:          "defense_wm",
		Name:        "Defense World Models",
		Platform:    "Orb",
		Description: "3D scene understanding, ISR applications, and geospatial intelligence modeling",
		Categories: []Category{
			{
				ID:          "scene_reconstruction",
				Name:        "3D Scene Reconstruction",
				Description: "Building world models from sensor data",
				ExampleTasks: []string{
					"Multi-sensor fusion architecture",
					"NeRF optimization for aerial imagery",
					"Point cloud registration approach",
				},
			},
			{
				ID:          "isr_analysis",
				Name:        "ISR Analysis",
				Description: "Intelligence, surveillance, reconnaissance",
				ExampleTasks: []string{
					"Change detection methodology",
					"Activity pattern analysis",
					"Object identification protocol",
				},
			},
			{
				ID:          "geospatial",
				Name:        "Geospatial Intelligence",
				Description: "Location-based intelligence analysis",
				ExampleTasks: []string{
					"Terrain analysis for mobility",
					"LOC/LOS computation",
					"Pattern-of-life modeling",
				},
			},
			{
				ID:          "simulation",
				Name:        "Simulation & Prediction",
				Description: "World model simulation capabilities",
				ExampleTasks: []string{
					"Scenario generation methodology",
					"Predictive modeling approach",
					"What-if analysis framework",
				},
			},
		},
		Dimensions:            []Dimension{DimensionAccuracy, DimensionSafety, DimensionTechnicalDepth, DimensionClarity},
		AnnotatorRequirements: "GEOINT or ISR background (analyst or engineer)",
		MinSamples:            300,
	},
	{
		ID:          "halal",
		Name:        "Halal Compliance",
		Platform:    "Civium",
		Description: "Halal certification, supply chain traceability, and Islamic dietary law compliance",
		Categories: []Category{
			{
				ID:          "certification",
				Name:        "Certification Process",
				Description: "Halal certification requirements and process",
				ExampleTasks: []string{
					"Certification body evaluation",
					"Audit preparation checklist",
					"Non-conformance remediation",
				},
			},
			{
				ID:          "supply_chain",
				Name:        "Supply Chain Traceability",
				Description: "Tracking halal compliance through supply chain",
				ExampleTasks: []string{
					"Ingredient verification protocol",
					"Cross-contamination prevention",
					"Supplier qualification process",
				},
			},
			{
				ID:          "ingredient_analysis",
				Name:        "Ingredient Analysis",
				Description: "Analyzing ingredients for halal status",
				ExampleTasks: []string{
					"E-number halal assessment",
					"Animal-derived ingredient alternatives",
					"Processing aid evaluation",
				},
			},
			{
				ID:          "documentation",
				Name:        "Documentation & Records",
				Description: "Maintaining compliance documentation",
				ExampleTasks: []string{
					"Halal control plan development",
					"Traceability record requirements",
					"Certificate authenticity verification",
				},
			},
		},
		Dimensions:            []Dimension{DimensionCompliance, DimensionAccuracy, DimensionClarity, DimensionActionability},
		AnnotatorRequirements: "Halal certification or Islamic dietary law expertise",
		MinSamples:            300,
	},
	{
		ID:          "mobile_dc",
		Name:        "Mobile Data Center",
		Platform:    "PodX",
		Description: "Edge computing, DDIL (Denied, Degraded, Intermittent, Limited) environments, tactical infrastructure",
		Categories: []Category{
			{
				ID:          "edge_compute",
				Name:        "Edge Computing",
				Description: "Computing at the tactical edge",
				ExampleTasks: []string{
					"Workload placement optimization",
					"Latency-aware service mesh",
					"Resource-constrained ML inference",
				},
			},
			{
				ID:          "ddil_ops",
				Name:        "DDIL Operations",
				Description: "Operating in disconnected environments",
				ExampleTasks: []string{
					"Data sync strategy for intermittent connectivity",
					"Autonomous operation protocols",
					"Reconnection reconciliation",
				},
			},
			{
				ID:          "tactical_infra",
				Name:        "Tactical Infrastructure",
				Description: "Deployable infrastructure design",
				ExampleTasks: []string{
					"Power budget optimization",
					"Environmental hardening requirements",
					"Rapid deployment checklist",
				},
			},
			{
				ID:          "security",
				Name:        "Security & COMSEC",
				Description: "Security in tactical environments",
				ExampleTasks: []string{
					"Zero-trust edge architecture",
					"Key management for disconnected ops",
					"Tamper detection mechanisms",
				},
			},
		},
		Dimensions:            []Dimension{DimensionAccuracy, DimensionSafety, DimensionTechnicalDepth, DimensionActionability},
		AnnotatorRequirements: "Edge computing or tactical IT experience",
		MinSamples:            300,
	},
	{
		ID:          "hubzone",
		Name:        "HUBZone Contracting",
		Platform:    "HZ Navigator",
		Description: "HUBZone small business contracting, certification, and compliance",
		Categories: []Category{
			{
				ID:          "certification",
				Name:        "HUBZone Certification",
				Description: "HUBZone program certification process",
				ExampleTasks: []string{
					"Eligibility determination",
					"Employee residence verification",
					"Principal office requirements",
				},
			},
			{
				ID:          "contracting",
				Name:        "Set-Aside Contracting",
				Description: "HUBZone set-aside opportunities",
				ExampleTasks: []string{
					"Sole-source threshold analysis",
					"Price evaluation preference calculation",
					"Subcontracting limitations",
				},
			},
			{
				ID:          "compliance",
				Name:        "Ongoing Compliance",
				Description: "Maintaining HUBZone status",
				ExampleTasks: []string{
					"Recertification requirements",
					"Employee count maintenance",
					"Redesignation period rules",
				},
			},
			{
				ID:          "teaming",
				Name:        "Teaming & JVs",
				Description: "Partnership strategies for HUBZone firms",
				ExampleTasks: []string{
					"Mentor-protégé eligibility",
					"JV performance of work rules",
					"Affiliation analysis",
				},
			},
		},
		Dimensions:            []Dimension{DimensionCompliance, DimensionAccuracy, DimensionActionability, DimensionClarity},
		AnnotatorRequirements: "SBA programs or small business contracting experience",
		MinSamples:            250,
	},
}

// index maps domain IDs to registry positions for O(1) lookup.
var index = func() map[string]int {
	m := make(map[string]int, len(domains))
	for i, d := range domains {
		m[d.ID] = i
	}
	return m
}()

// Get returns the domain with the given ID, or nil when unknown.
func Get(domainID string) *Domain {
	if i, ok := index[domainID]; ok {
		return &domains[i]
	}
	return nil
}

// All returns every registered domain in registry order.
func All() []Domain {
	out := make([]Domain, len(domains))
	copy(out, domains)
	return out
}

// IDs returns all registered domain IDs in registry order.
func IDs() []string {
	ids := make([]string, len(domains))
	for i, d := range domains {
		ids[i] = d.ID
	}
	return ids
}

// Categories returns the categories of a domain, or nil when the domain is
// unknown.
func Categories(domainID string) []Category {
	d := Get(domainID)
	if d == nil {
		return nil
	}
	return d.Categories
}

// HasCategory reports whether the domain defines the given category. The
// "general" category is always accepted since it is the pipeline's default
// for uncategorized submissions.
func HasCategory(domainID, categoryID string) bool {
	if categoryID == "general" {
		return true
	}
	for _, c := range Categories(domainID) {
		if c.ID == categoryID {
			return true
		}
	}
	return false
}
