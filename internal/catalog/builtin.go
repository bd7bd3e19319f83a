package catalog

import "github.com/jmorland/bmadcoach/internal/domain"

// Builtin returns the shipped lesson catalog. It is the fallback catalog
// when no lesson directory is configured or telemetry is unavailable, and
// the base layer a lesson directory merges over.
func Builtin() *Catalog {
	return New(builtinLessons())
}

func builtinLessons() []domain.Lesson {
	return []domain.Lesson{
		{
			ID:          "bmad-fundamentals",
			Title:       "BMAD Fundamentals",
			Description: "Master the core principles of the Breakthrough Method for Agile AI-Driven Development",
			Phase:       domain.PhaseGeneral,
			Difficulty:  domain.DifficultyBeginner,
			Tags:        []string{"fundamentals", "methodology", "overview"},

			EstimatedDuration: 30,
			Exercises: []domain.Exercise{
				{
					ID:            "bmad-fundamentals-quiz",
					Title:         "BMAD Fundamentals Knowledge Check",
					Description:   "Test your understanding of BMAD core concepts",
					Type:          domain.ExerciseWorkflowSimulation,
					Difficulty:    domain.DifficultyBeginner,
					EstimatedTime: 15,
				},
			},
		},
		{
			ID:            "project-setup",
			Title:         "Project Setup",
			Description:   "Learn to create and configure BMAD projects for optimal workflow management",
			Phase:         domain.PhaseGeneral,
			Difficulty:    domain.DifficultyBeginner,
			Prerequisites: []string{"bmad-fundamentals"},
			Tags:          []string{"setup", "project-management", "configuration"},

			EstimatedDuration:      25,
			RealProjectIntegration: true,
			Exercises: []domain.Exercise{
				{
					ID:                  "create-practice-project",
					Title:               "Create Your First BMAD Project",
					Description:         "Use the project creator to set up a practice BMAD project",
					Type:                domain.ExerciseProjectSetup,
					Difficulty:          domain.DifficultyBeginner,
					EstimatedTime:       20,
					RealProjectRequired: true,
				},
			},
		},
		{
			ID:            "agent-coordination",
			Title:         "Agent Coordination",
			Description:   "Master the art of coordinating AI agents for maximum productivity and quality",
			Phase:         domain.PhaseGeneral,
			Difficulty:    domain.DifficultyIntermediate,
			Prerequisites: []string{"bmad-fundamentals", "project-setup"},
			Tags:          []string{"coordination", "agents", "workflow"},

			EstimatedDuration:      40,
			RealProjectIntegration: true,
			Exercises: []domain.Exercise{
				{
					ID:                  "practice-agent-dispatch",
					Title:               "Practice Agent Dispatch and Handoffs",
					Description:         "Learn to effectively dispatch agents and manage handoffs",
					Type:                domain.ExerciseAgentDispatch,
					Difficulty:          domain.DifficultyIntermediate,
					EstimatedTime:       25,
					RealProjectRequired: true,
				},
			},
		},
		{
			ID:            "workflow-management",
			Title:         "Workflow Management",
			Description:   "Learn to effectively manage BMAD phases, transitions, and story progression",
			Phase:         domain.PhaseGeneral,
			Difficulty:    domain.DifficultyIntermediate,
			Prerequisites: []string{"bmad-fundamentals", "project-setup", "agent-coordination"},
			Tags:          []string{"workflow", "phases", "management"},

			EstimatedDuration:      45,
			RealProjectIntegration: true,
			Exercises: []domain.Exercise{
				{
					ID:                  "workflow-simulation",
					Title:               "Complete Workflow Simulation",
					Description:         "Simulate a complete BMAD workflow from planning to completion",
					Type:                domain.ExerciseWorkflowSimulation,
					Difficulty:          domain.DifficultyIntermediate,
					EstimatedTime:       35,
					RealProjectRequired: true,
				},
			},
		},
		{
			ID:            "communication-best-practices",
			Title:         "Communication Best Practices",
			Description:   "Master effective communication patterns for AI agent coordination and team collaboration",
			Phase:         domain.PhaseGeneral,
			Difficulty:    domain.DifficultyIntermediate,
			Prerequisites: []string{"bmad-fundamentals", "project-setup", "agent-coordination"},
			Tags:          []string{"communication", "collaboration", "team"},

			EstimatedDuration:      35,
			RealProjectIntegration: true,
			Exercises: []domain.Exercise{
				{
					ID:                  "communication-practice",
					Title:               "Practice Effective Communication",
					Description:         "Learn to create clear, effective communications in BMAD projects",
					Type:                domain.ExerciseCommunication,
					Difficulty:          domain.DifficultyIntermediate,
					EstimatedTime:       30,
					RealProjectRequired: true,
				},
			},
		},
		{
			ID:            "quality-gates",
			Title:         "Quality Gates",
			Description:   "Implement effective quality assurance workflows and standards in BMAD projects",
			Phase:         domain.PhaseQualityAssurance,
			Difficulty:    domain.DifficultyAdvanced,
			Prerequisites: []string{"bmad-fundamentals", "project-setup", "workflow-management"},
			Tags:          []string{"quality", "testing", "standards"},

			EstimatedDuration:      45,
			RealProjectIntegration: true,
			Exercises: []domain.Exercise{
				{
					ID:                  "quality-gate-setup",
					Title:               "Configure Quality Gates",
					Description:         "Set up and test quality gates for a BMAD project",
					Type:                domain.ExerciseQualityGates,
					Difficulty:          domain.DifficultyAdvanced,
					EstimatedTime:       40,
					RealProjectRequired: true,
				},
			},
		},
		{
			ID:          "advanced-techniques",
			Title:       "Advanced Techniques",
			Description: "Master advanced BMAD patterns for complex projects and team scenarios",
			Phase:       domain.PhaseGeneral,
			Difficulty:  domain.DifficultyExpert,
			Prerequisites: []string{
				"bmad-fundamentals", "project-setup", "agent-coordination",
				"workflow-management", "communication-best-practices", "quality-gates",
			},
			Tags: []string{"advanced", "coordination", "optimization"},

			EstimatedDuration:      60,
			RealProjectIntegration: true,
			Exercises: []domain.Exercise{
				{
					ID:                  "advanced-scenario",
					Title:               "Handle Complex Project Scenario",
					Description:         "Manage a complex BMAD project with multiple challenges",
					Type:                domain.ExerciseWorkflowSimulation,
					Difficulty:          domain.DifficultyExpert,
					EstimatedTime:       60,
					RealProjectRequired: true,
				},
			},
		},
	}
}
