// Package prompts provides the seed prompt library used to drive synthetic
// preference pair generation. Each domain carries a small set of curated
// prompts grouped by topic, plus Evol-Instruct style evolution templates
// for deriving harder variants from a seed.
//
// Topic keys here are generation-side groupings and intentionally do not
// have to match the taxonomy's annotation categories. A prompt drawn from
// the "telemetry" topic is still submitted under whatever taxonomy category
// the operator selects.
package prompts

import (
	"fmt"
	"math/rand"
	"sort"
)

// SeedPrompt is one curated prompt ready for pair generation.
type SeedPrompt struct {
	Domain   string `json:"domain"`
	Category string `json:"category"`
	Prompt   string `json:"prompt"`
}

// Evolution identifies a prompt evolution strategy.
type Evolution string

const (
	EvolveComplexity  Evolution = "complexity"
	EvolveSpecificity Evolution = "specificity"
	EvolveConstraint  Evolution = "constraint"
	EvolveMultiStep   Evolution = "multi_step"
)

var evolutionTemplates = map[Evolution]string{
	EvolveComplexity:  "Make this task more complex by adding regulatory constraints:\n\n%s",
	EvolveSpecificity: "Make this more specific with concrete numbers and requirements:\n\n%s",
	EvolveConstraint:  "Add a difficult constraint that requires creative problem-solving:\n\n%s",
	EvolveMultiStep:   "Expand this into a multi-step problem requiring planning:\n\n%s",
}

// seedPrompts maps domain ID to topic to curated prompts.
var seedPrompts = map[string]map[string][]string{
	"procurement": {
		"RFP_analysis": {
			"Analyze this RFP for a cloud migration contract. What are the key evaluation factors and how should we weight our response?",
			"The solicitation mentions 'best value' but doesn't specify weights. How should we interpret this?",
			"What are the protest risks in this sole-source justification?",
		},
		"proposal_writing": {
			"Write a technical approach section for a cybersecurity assessment contract.",
			"How should we structure our past performance volume for a DoD contract?",
			"Draft an executive summary for a $50M IT modernization proposal.",
		},
		"compliance_check": {
			"Review this subcontracting plan for FAR 52.219-9 compliance.",
			"Does our teaming arrangement create an OCI? How do we mitigate?",
			"What CMMC level is required for this CUI-handling contract?",
		},
	},
	"biomedical": {
		"signal_processing": {
			"Design a filtering pipeline for EGG signals to extract gastric slow wave activity.",
			"How do I handle motion artifacts in wearable gut biosensor data?",
			"What's the optimal sampling rate for detecting gut-brain vagal signaling?",
		},
		"microbiome_analysis": {
			"Design a study to correlate gut microbiome composition with anxiety symptoms.",
			"What are the confounders in microbiome-mood association studies?",
			"How should we handle the compositional nature of 16S data in our analysis?",
		},
		"regulatory_pathway": {
			"What FDA classification would a gut motility monitoring patch fall under?",
			"Design a clinical validation study for a gut-brain biomarker device.",
			"What's the predicate device strategy for a novel intestinal biosensor?",
		},
	},
	"ingestible": {
		"capsule_design": {
			"What are the size constraints for an ingestible capsule to ensure safe GI transit?",
			"Design a biocompatible encapsulation strategy for an electronic capsule.",
			"How do we ensure the capsule passes naturally without retention?",
		},
		"telemetry": {
			"Calculate the RF link budget for in-body to external receiver communication.",
			"What frequencies are approved for medical ingestible device telemetry?",
			"Design a low-power protocol for continuous gut parameter transmission.",
		},
		"clinical_validation": {
			"Design a clinical study comparing our ingestible sensor to colonoscopy.",
			"What are the primary endpoints for an ingestible gut motility monitor trial?",
			"How do we handle capsule retention as an adverse event in our protocol?",
		},
	},
	"legacy": {
		"code_translation": {
			"Translate this COBOL PERFORM VARYING loop to Python.",
			"How do I handle COBOL REDEFINES clauses in a modern data model?",
			"Convert this CICS transaction to a REST API while preserving semantics.",
		},
		"testing_strategy": {
			"Design characterization tests for a COBOL batch job with no documentation.",
			"How do we ensure decimal precision parity between COBOL COMP-3 and Python?",
			"Create a parallel run strategy to validate our migrated system.",
		},
		"strangler_pattern": {
			"Design a strangler fig architecture for migrating a mainframe banking system.",
			"How do we route traffic between legacy and new systems during migration?",
			"What's the rollback strategy if the new component fails in production?",
		},
	},
	"autonomy": {
		"agent_design": {
			"Design a tool permission system for an autonomous coding agent.",
			"How should multi-agent systems handle conflicting goals?",
			"What's the architecture for a self-improving agent with safety constraints?",
		},
		"safety_constraints": {
			"Implement a human approval gate for high-impact autonomous actions.",
			"How do we ensure an agent can always be shut down?",
			"Design a monitoring system to detect agent capability jumps.",
		},
		"capability_assessment": {
			"How do we measure if an autonomous agent is safe to deploy?",
			"What benchmarks should we use for tool-use safety evaluation?",
			"Design an eval suite for multi-agent coordination correctness.",
		},
	},
	"quantum_arch": {
		"event_reconstruction": {
			"Reconstruct the logistics of Alexander's army crossing the Hindu Kush.",
			"What's the uncertainty range for the population of Rome in 100 CE?",
			"Synthesize archaeological and textual evidence for the Exodus route.",
		},
		"source_analysis": {
			"How should we weight Herodotus vs archaeological evidence for Persian forces at Thermopylae?",
			"Design a provenance tracking system for historical source documents.",
			"What's the methodology for detecting interpolations in ancient manuscripts?",
		},
		"uncertainty_modeling": {
			"Build a Bayesian model for dating the Thera eruption.",
			"How do we quantify uncertainty in historical population estimates?",
			"Design a confidence framework for AI-reconstructed historical events.",
		},
	},
	"defense_wm": {
		"scene_reconstruction": {
			"Design a pipeline for 3D reconstruction from drone imagery in contested environments.",
			"How do we handle GPS-denied localization for world model construction?",
			"What's the uncertainty quantification approach for terrain reconstruction?",
		},
		"sensor_fusion": {
			"Fuse EO, IR, and SAR data for a unified 3D scene representation.",
			"How do we handle temporal misalignment in multi-sensor fusion?",
			"Design a confidence metric for fused intelligence products.",
		},
		"tactical_planning": {
			"Generate terrain analysis for route planning with concealment optimization.",
			"How should the world model support line-of-sight calculations?",
			"Design an interface for human-AI collaborative mission planning.",
		},
	},
	"halal": {
		"ingredient_analysis": {
			"Analyze this ingredient list for halal compliance across GSO and JAKIM standards.",
			"How do we handle E471 (mono- and diglycerides) which may be plant or animal derived?",
			"What's the ruling on alcohol in vanilla extract under different madhabs?",
		},
		"certification_mapping": {
			"Map our product certification to OIC/SMIIC mutual recognition requirements.",
			"What additional testing is required for UAE vs Malaysian halal certification?",
			"Design a system to track certification status across multiple jurisdictions.",
		},
		"supply_chain": {
			"Design a blockchain-based provenance system for halal meat supply chain.",
			"How do we prevent cross-contamination in shared manufacturing facilities?",
			"What's the audit protocol for verifying halal slaughter compliance?",
		},
	},
	"mobile_dc": {
		"architecture_design": {
			"Design a compute architecture for a 20kW mobile data center in a transit case.",
			"How do we handle storage redundancy in a single-node deployable unit?",
			"What's the network topology for a mesh of mobile data centers?",
		},
		"power_systems": {
			"Calculate the power budget for a GPU-heavy edge AI workload in a PodX unit.",
			"Design a power management strategy for generator + battery hybrid operation.",
			"How do we handle graceful shutdown on power loss?",
		},
		"ddil_operations": {
			"Design a data synchronization strategy for intermittent connectivity.",
			"How should applications degrade gracefully in bandwidth-limited scenarios?",
			"What's the PACE plan for a deployed mobile data center?",
		},
	},
	"hubzone": {
		"eligibility_assessment": {
			"Does our company qualify for HUBZone if 30% of employees live in the zone but we're headquartered outside?",
			"How do we count remote employees for HUBZone residency calculation?",
			"What happens to our certification if the HUBZone map is redrawn?",
		},
		"contracting_strategy": {
			"Identify HUBZone set-aside opportunities matching our IT capabilities.",
			"How do we compete effectively when a HUBZone contract is full and open?",
			"Design a teaming strategy that preserves our HUBZone status.",
		},
		"compliance_maintenance": {
			"Create an annual recertification checklist for HUBZone compliance.",
			"How do we document employee residency for SBA audit?",
			"What triggers require us to notify SBA of material changes?",
		},
	},
}

// Topics returns the topic keys for a domain in sorted order, or nil when
// the domain has no seed prompts.
func Topics(domainID string) []string {
	byTopic, ok := seedPrompts[domainID]
	if !ok {
		return nil
	}
	topics := make([]string, 0, len(byTopic))
	for topic := range byTopic {
		topics = append(topics, topic)
	}
	sort.Strings(topics)
	return topics
}

// Random picks a random seed prompt for the domain. When topic is non-empty
// and known, selection is limited to that topic; otherwise prompts from all
// topics are candidates and the returned category is "mixed".
func Random(domainID, topic string) (*SeedPrompt, error) {
	byTopic, ok := seedPrompts[domainID]
	if !ok {
		return nil, fmt.Errorf("no seed prompts for domain: %s", domainID)
	}

	if candidates, ok := byTopic[topic]; ok && topic != "" {
		return &SeedPrompt{
			Domain:   domainID,
			Category: topic,
			Prompt:   candidates[rand.Intn(len(candidates))],
		}, nil
	}

	var flat []string
	for _, t := range Topics(domainID) {
		flat = append(flat, byTopic[t]...)
	}
	if len(flat) == 0 {
		return nil, fmt.Errorf("no seed prompts for domain: %s", domainID)
	}
	return &SeedPrompt{
		Domain:   domainID,
		Category: "mixed",
		Prompt:   flat[rand.Intn(len(flat))],
	}, nil
}

// All returns every seed prompt for the domain in deterministic topic order.
func All(domainID string) []SeedPrompt {
	byTopic, ok := seedPrompts[domainID]
	if !ok {
		return nil
	}
	var out []SeedPrompt
	for _, topic := range Topics(domainID) {
		for _, p := range byTopic[topic] {
			out = append(out, SeedPrompt{Domain: domainID, Category: topic, Prompt: p})
		}
	}
	return out
}

// ValidStrategy reports whether s names a known evolution strategy.
func ValidStrategy(s string) bool {
	_, ok := evolutionTemplates[Evolution(s)]
	return ok
}

// Evolve derives a harder variant of a prompt using the given strategy.
// Unknown strategies return the prompt unchanged.
func Evolve(prompt string, strategy Evolution) string {
	tmpl, ok := evolutionTemplates[strategy]
	if !ok {
		return prompt
	}
	return fmt.Sprintf(tmpl, prompt)
}
