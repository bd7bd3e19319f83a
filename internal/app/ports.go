package app

import (
	"context"
	"time"

	"github.com/jmorland/bmadcoach/internal/domain"
)

// AnalyzeRequest identifies the project to analyze. ProjectDir points at a
// BMAD project directory containing .bmad/state.yaml.
type AnalyzeRequest struct {
	ProjectDir string
	Now        *time.Time // test clock; nil means wall clock
}

// AnalyzeResponse carries the full analysis. Degraded marks an analysis
// computed from fallback defaults after a telemetry failure; callers should
// surface it distinctly from a healthy empty result.
type AnalyzeResponse struct {
	GeneratedAt time.Time
	Analysis    *ProjectLearningAnalysis
	Degraded    bool
	Warnings    []string
}

// SuggestRequest asks for lightweight contextual suggestions for a UI view.
// ProjectDir is optional; without it a small default set is returned.
type SuggestRequest struct {
	View       string
	ProjectDir string
}

// ValidateRequest checks one lesson against one project.
type ValidateRequest struct {
	ProjectDir string
	LessonID   string
}

// TrackRequest reports a learning observation to the progress store.
type TrackRequest struct {
	ProjectDir    string
	LessonID      string
	SkillsApplied []domain.Skill
	Outcome       domain.LearningOutcome
	Now           *time.Time
}

// LearningUseCase is the engine's full functional surface.
type LearningUseCase interface {
	AnalyzeProject(ctx context.Context, req AnalyzeRequest) (*AnalyzeResponse, error)
	ContextualSuggestions(ctx context.Context, req SuggestRequest) ([]Suggestion, error)
	ValidateLessonEligibility(ctx context.Context, req ValidateRequest) (*ValidationResult, error)
	TrackProjectLearning(ctx context.Context, req TrackRequest) error
}

// LearningErrorCode classifies use-case failures.
type LearningErrorCode string

const (
	ErrUnknownLesson  LearningErrorCode = "UNKNOWN_LESSON"
	ErrInvalidOutcome LearningErrorCode = "INVALID_OUTCOME"
	ErrUnknownView    LearningErrorCode = "UNKNOWN_VIEW"
	ErrInternalError  LearningErrorCode = "INTERNAL_ERROR"
)

// LearningError is a typed use-case error with a stable code.
type LearningError struct {
	Code    LearningErrorCode
	Message string
}

func (e *LearningError) Error() string {
	return string(e.Code) + ": " + e.Message
}
