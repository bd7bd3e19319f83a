// Package telemetry is the engine's only external boundary: it fetches a
// BMAD project's coordination snapshot from the orchestrator's on-disk
// state. Fetches are bounded by a timeout so a wedged filesystem can never
// stall an analysis; callers fall back to defaults on any error here.
package telemetry

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jmorland/bmadcoach/internal/domain"
)

// Adapter fetches project coordination snapshots.
type Adapter interface {
	Project(ctx context.Context, projectDir string) (*domain.ProjectState, error)
}

// FileAdapter reads snapshots from <projectDir>/.bmad/state.yaml.
type FileAdapter struct {
	cfg Config
}

// NewFileAdapter returns a snapshot reader with the given config.
func NewFileAdapter(cfg Config) *FileAdapter {
	return &FileAdapter{cfg: cfg}
}

// SnapshotPath returns the state file location for a project directory.
func SnapshotPath(projectDir string) string {
	return filepath.Join(projectDir, ".bmad", "state.yaml")
}

// Project reads and parses the project snapshot. Returns ErrUnavailable
// when no snapshot exists, ErrMalformed when it cannot be parsed, and
// ErrTimeout when the read outlives the configured deadline.
func (a *FileAdapter) Project(ctx context.Context, projectDir string) (*domain.ProjectState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, time.Duration(a.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	type result struct {
		state *domain.ProjectState
		err   error
	}
	done := make(chan result, 1)
	go func() {
		state, err := readSnapshot(SnapshotPath(projectDir))
		done <- result{state, err}
	}()

	select {
	case r := <-done:
		return r.state, r.err
	case <-ctx.Done():
		if ctx.Err() == context.DeadlineExceeded {
			return nil, ErrTimeout
		}
		return nil, ctx.Err()
	}
}

// snapshotDoc is the YAML shape of .bmad/state.yaml, written by the
// orchestrator.
type snapshotDoc struct {
	ProjectID        string                  `yaml:"projectId"`
	Name             string                  `yaml:"name"`
	CurrentPhase     string                  `yaml:"currentPhase"`
	TotalStories     int                     `yaml:"totalStories"`
	CompletedStories int                     `yaml:"completedStories"`
	ActiveStory      string                  `yaml:"activeStory"`
	Agents           map[string]agentDoc     `yaml:"agents"`
	WorkflowHistory  []workflowEventDoc      `yaml:"workflowHistory"`
}

type agentDoc struct {
	Status       string     `yaml:"status"`
	LastActivity *time.Time `yaml:"lastActivity"`
	CurrentTask  string     `yaml:"currentTask"`
}

type workflowEventDoc struct {
	EventType   string    `yaml:"eventType"`
	Agent       string    `yaml:"agent"`
	Description string    `yaml:"description"`
	Timestamp   time.Time `yaml:"timestamp"`
}

func readSnapshot(path string) (*domain.ProjectState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrUnavailable, path)
		}
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var doc snapshotDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	phase := domain.Phase(doc.CurrentPhase)
	if !domain.ValidPhase(phase) {
		return nil, fmt.Errorf("%w: unknown phase %q", ErrMalformed, doc.CurrentPhase)
	}

	state := &domain.ProjectState{
		ProjectID:        doc.ProjectID,
		Name:             doc.Name,
		CurrentPhase:     phase,
		TotalStories:     doc.TotalStories,
		CompletedStories: doc.CompletedStories,
		ActiveStory:      doc.ActiveStory,
	}
	if len(doc.Agents) > 0 {
		state.Agents = make(map[string]domain.AgentStatus, len(doc.Agents))
		for role, agent := range doc.Agents {
			state.Agents[role] = domain.AgentStatus{
				Status:       domain.AgentStatusType(agent.Status),
				LastActivity: agent.LastActivity,
				CurrentTask:  agent.CurrentTask,
			}
		}
	}
	for _, event := range doc.WorkflowHistory {
		state.WorkflowHistory = append(state.WorkflowHistory, domain.WorkflowEvent{
			EventType:   event.EventType,
			Agent:       event.Agent,
			Description: event.Description,
			Timestamp:   event.Timestamp,
		})
	}
	return state, nil
}
