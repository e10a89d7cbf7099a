package agent

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workspace/internal/config"
	"workspace/internal/domain"
)

const planJSON = `{
  "name": "Add caching",
  "task_type": "parallel",
  "subtasks": [
    {"id": "1", "name": "cache layer", "description": "introduce the cache", "dependencies": []},
    {"id": "2", "name": "wire handlers", "description": "use the cache", "dependencies": ["1"]}
  ]
}`

func TestParseAgentResponse_SurroundingProse(t *testing.T) {
	response := "Here is my plan:\n" + planJSON + "\nLet me know if you need changes."

	plan, err := parseAgentResponse(response)

	require.NoError(t, err)
	assert.Equal(t, "Add caching", plan.Name)
	assert.Equal(t, "parallel", plan.TaskType)
	require.Len(t, plan.Subtasks, 2)
	assert.Equal(t, []string{"1"}, plan.Subtasks[1].Dependencies)
}

func TestParseAgentResponse_NoJSON(t *testing.T) {
	_, err := parseAgentResponse("I could not produce a plan.")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no valid JSON found")
}

func TestParseAgentResponse_MalformedJSON(t *testing.T) {
	_, err := parseAgentResponse(`{"name": "broken"`)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no valid JSON found")
}

func TestBuildTask(t *testing.T) {
	plan, err := parseAgentResponse(planJSON)
	require.NoError(t, err)

	task, err := buildTask(plan, "api", "add caching everywhere")

	require.NoError(t, err)
	assert.Equal(t, "Add caching", task.Name)
	assert.Equal(t, "api", task.Project)
	assert.Equal(t, "add caching everywhere", task.Description)
	assert.Equal(t, domain.TaskParallel, task.Type)
	assert.Equal(t, domain.TaskPlanning, task.Status)
	assert.Len(t, task.ID, 8)
	require.Len(t, task.Subtasks, 2)
	assert.Equal(t, domain.SubtaskPending, task.Subtasks[0].Status)
}

func TestBuildTask_GeneratesMissingSubtaskIDs(t *testing.T) {
	plan, err := parseAgentResponse(`{"name": "n", "task_type": "sequential", "subtasks": [{"name": "anon", "description": "d"}]}`)
	require.NoError(t, err)

	task, err := buildTask(plan, "api", "desc")

	require.NoError(t, err)
	require.Len(t, task.Subtasks, 1)
	assert.Len(t, task.Subtasks[0].ID, 8)
}

func TestBuildTask_UnknownTaskType(t *testing.T) {
	plan, err := parseAgentResponse(`{"name": "n", "task_type": "recursive", "subtasks": []}`)
	require.NoError(t, err)

	_, err = buildTask(plan, "api", "desc")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown task type")
}

func TestAnalyzeTask_StubAgent(t *testing.T) {
	planner := NewCLIPlanner()
	project := &domain.Project{Name: "api", Root: t.TempDir()}

	// A stub agent that ignores its stdin and prints a fixed plan
	cmd := "cat > /dev/null; printf '%s' '" + planJSON + "'"

	task, err := planner.AnalyzeTask(context.Background(), project, "add caching", cmd)

	require.NoError(t, err)
	assert.Equal(t, "Add caching", task.Name)
	require.Len(t, task.Subtasks, 2)
}

func TestAnalyzeTask_AgentFailure(t *testing.T) {
	planner := NewCLIPlanner()
	project := &domain.Project{Name: "api", Root: t.TempDir()}

	_, err := planner.AnalyzeTask(context.Background(), project, "add caching", "exit 3")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "agent execution failed")
}

func TestResolveAgentCommand_Precedence(t *testing.T) {
	dir := t.TempDir()
	pf := &config.ProjectFile{
		Project: config.ProjectSection{Name: "api"},
		Agent:   &config.AgentConfig{Primary: "aider"},
	}
	require.NoError(t, config.SaveProjectFile(pf, dir))

	project := &domain.Project{Name: "api", Root: dir}

	assert.Equal(t, "goose", resolveAgentCommand(project, "goose"), "explicit override wins")
	assert.Equal(t, "aider", resolveAgentCommand(project, ""), "project file agent is next")

	bare := &domain.Project{Name: "bare", Root: filepath.Join(dir, "nope")}
	assert.Equal(t, defaultAgentCommand, resolveAgentCommand(bare, ""))
}

func TestNewID_Length(t *testing.T) {
	id := newID()
	assert.Len(t, id, 8)
	assert.NotEqual(t, id, newID())
}
