package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jmorland/bmadcoach/internal/app"
	"github.com/jmorland/bmadcoach/internal/catalog"
	"github.com/jmorland/bmadcoach/internal/domain"
	"github.com/jmorland/bmadcoach/internal/engine"
	"github.com/jmorland/bmadcoach/internal/repository"
	"github.com/jmorland/bmadcoach/internal/telemetry"
)

type learningService struct {
	telemetry    telemetry.Adapter
	catalogs     catalog.Source
	progress     repository.ProgressRepo
	observations repository.ObservationRepo
	engine       *engine.Engine
}

// NewLearningService wires the telemetry boundary, catalog source, and
// progress stores to the pure recommendation engine.
func NewLearningService(
	adapter telemetry.Adapter,
	catalogs catalog.Source,
	progress repository.ProgressRepo,
	observations repository.ObservationRepo,
) app.LearningUseCase {
	return &learningService{
		telemetry:    adapter,
		catalogs:     catalogs,
		progress:     progress,
		observations: observations,
		engine:       engine.New(),
	}
}

// AnalyzeProject runs the full analysis. Telemetry, catalog, and progress
// failures never fail the call: each one degrades to defaults and marks
// the response, so a broken orchestrator still yields usable guidance.
func (s *learningService) AnalyzeProject(ctx context.Context, req app.AnalyzeRequest) (*app.AnalyzeResponse, error) {
	resp := &app.AnalyzeResponse{GeneratedAt: s.now(req.Now)}

	project, learner, cat := s.loadInputs(ctx, req.ProjectDir, resp)
	resp.Analysis = s.engine.Analyze(project, learner, cat)
	return resp, nil
}

// loadInputs fetches the three analysis inputs, substituting defaults and
// recording a warning for every source that fails.
func (s *learningService) loadInputs(ctx context.Context, projectDir string, resp *app.AnalyzeResponse) (*domain.ProjectState, *domain.LearnerProgress, *catalog.Catalog) {
	project, err := s.telemetry.Project(ctx, projectDir)
	if err != nil {
		resp.Degraded = true
		resp.Warnings = append(resp.Warnings, fmt.Sprintf("project telemetry: %v", err))
		project = &domain.ProjectState{CurrentPhase: domain.PhasePlanning}
	}

	learner, err := s.progress.Get(ctx)
	if err != nil {
		resp.Degraded = true
		resp.Warnings = append(resp.Warnings, fmt.Sprintf("learner progress: %v", err))
		learner = domain.DefaultProgress()
	}

	cat, warnings, err := s.catalogs.Catalog()
	resp.Warnings = append(resp.Warnings, warnings...)
	if err != nil {
		resp.Degraded = true
		resp.Warnings = append(resp.Warnings, fmt.Sprintf("lesson catalog: %v", err))
		cat = catalog.Builtin()
	}

	return project, learner, cat
}

func (s *learningService) ContextualSuggestions(ctx context.Context, req app.SuggestRequest) ([]app.Suggestion, error) {
	if req.ProjectDir == "" {
		if !engine.KnownView(req.View) {
			return nil, &app.LearningError{
				Code:    app.ErrUnknownView,
				Message: fmt.Sprintf("no suggestions for view %q", req.View),
			}
		}
		return engine.ViewSuggestions(req.View), nil
	}

	resp, err := s.AnalyzeProject(ctx, app.AnalyzeRequest{ProjectDir: req.ProjectDir})
	if err != nil {
		return nil, err
	}
	if resp.Degraded && engine.KnownView(req.View) {
		// No live project to reason about; serve the view fallback.
		return engine.ViewSuggestions(req.View), nil
	}
	return resp.Analysis.Suggestions, nil
}

func (s *learningService) ValidateLessonEligibility(ctx context.Context, req app.ValidateRequest) (*app.ValidationResult, error) {
	cat, _, err := s.catalogs.Catalog()
	if err != nil {
		cat = catalog.Builtin()
	}
	lesson, ok := cat.Lesson(req.LessonID)
	if !ok {
		return nil, &app.LearningError{
			Code:    app.ErrUnknownLesson,
			Message: fmt.Sprintf("lesson %q is not in the catalog", req.LessonID),
		}
	}

	// Eligibility against "no project" is a legitimate question; a failed
	// telemetry read answers it the same way as no project dir at all.
	var project *domain.ProjectState
	if req.ProjectDir != "" {
		if p, telErr := s.telemetry.Project(ctx, req.ProjectDir); telErr == nil {
			project = p
		}
	}

	result := engine.ValidateLessonEligibility(project, lesson, s.engine.Policy)
	return &result, nil
}

func (s *learningService) TrackProjectLearning(ctx context.Context, req app.TrackRequest) error {
	if !domain.ValidOutcome(req.Outcome) {
		return &app.LearningError{
			Code:    app.ErrInvalidOutcome,
			Message: fmt.Sprintf("unknown outcome %q", req.Outcome),
		}
	}

	cat, _, err := s.catalogs.Catalog()
	if err != nil {
		cat = catalog.Builtin()
	}
	if _, ok := cat.Lesson(req.LessonID); !ok {
		return &app.LearningError{
			Code:    app.ErrUnknownLesson,
			Message: fmt.Sprintf("lesson %q is not in the catalog", req.LessonID),
		}
	}

	now := s.now(req.Now)
	obs := &domain.Observation{
		ID:            uuid.New().String(),
		LessonID:      req.LessonID,
		SkillsApplied: req.SkillsApplied,
		Outcome:       req.Outcome,
		ObservedAt:    now,
	}
	if project, telErr := s.telemetry.Project(ctx, req.ProjectDir); telErr == nil {
		obs.ProjectID = project.ProjectID
		obs.Phase = project.CurrentPhase
		obs.TotalStories = project.TotalStories
		obs.CompletedStories = project.CompletedStories
	}

	if err := s.observations.Record(ctx, obs); err != nil {
		return fmt.Errorf("recording observation: %w", err)
	}

	if req.Outcome == domain.OutcomeSuccess {
		if err := s.progress.MarkCompleted(ctx, req.LessonID, now); err != nil {
			return fmt.Errorf("marking lesson completed: %w", err)
		}
	}
	delta := obs.SkillDelta()
	for _, skill := range req.SkillsApplied {
		if err := s.progress.BumpSkill(ctx, skill, delta); err != nil {
			return fmt.Errorf("bumping skill %s: %w", skill, err)
		}
	}
	if err := s.progress.Touch(ctx, now); err != nil {
		return fmt.Errorf("updating learner stats: %w", err)
	}
	return nil
}

func (s *learningService) now(override *time.Time) time.Time {
	if override != nil {
		return *override
	}
	return time.Now().UTC()
}
