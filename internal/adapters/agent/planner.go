package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/google/uuid"

	"workspace/internal/config"
	"workspace/internal/domain"
	"workspace/internal/logging"
	"workspace/internal/ports"
)

// defaultAgentCommand is used when neither the caller nor the project
// configuration names a planning agent
const defaultAgentCommand = "claude-code"

// planPromptFormat is fed to the planning agent on stdin. The agent decides
// sequential vs parallel execution and returns the plan as JSON.
const planPromptFormat = `
You are a development task planner. Your job is to analyze a development task and break it down into logical subtasks.

PROJECT: %s

TASK DESCRIPTION:
%s

Your job is to:
1. Determine if this task should be executed SEQUENTIALLY (all changes in one workspace, one after another) or in PARALLEL (multiple independent workspaces)
2. Break down the task into logical subtasks
3. Identify dependencies between subtasks (which subtasks depend on others)
4. Return a structured plan

For SEQUENTIAL tasks, all work will happen in a single worktree/branch, with changes building on each other.
For PARALLEL tasks, each subtask will have its own independent worktree and can be worked on separately.

FORMAT YOUR RESPONSE AS A JSON OBJECT with the following structure:
{
  "name": "Short task name",
  "task_type": "sequential" or "parallel",
  "subtasks": [
    {
      "id": "1",
      "name": "Short subtask name",
      "description": "Detailed description of what needs to be done",
      "dependencies": []
    },
    {
      "id": "2",
      "name": "Another subtask",
      "description": "Description",
      "dependencies": ["1"]
    }
  ]
}
`

// CLIPlanner implements ports.TaskPlanner by shelling out to an agent CLI
type CLIPlanner struct{}

// Verify interface compliance at compile time
var _ ports.TaskPlanner = (*CLIPlanner)(nil)

// NewCLIPlanner creates a new CLIPlanner
func NewCLIPlanner() *CLIPlanner {
	return &CLIPlanner{}
}

// agentPlan is the JSON shape the planning agent must answer with
type agentPlan struct {
	Name     string `json:"name"`
	TaskType string `json:"task_type"`
	Subtasks []struct {
		ID           string   `json:"id"`
		Name         string   `json:"name"`
		Description  string   `json:"description"`
		Dependencies []string `json:"dependencies"`
	} `json:"subtasks"`
}

// AnalyzeTask implements TaskPlanner.AnalyzeTask. The agent command is
// resolved as: explicit agentCommand, then the project file's primary
// agent, then the default.
func (p *CLIPlanner) AnalyzeTask(ctx context.Context, project *domain.Project, description, agentCommand string) (*domain.Task, error) {
	cmd := resolveAgentCommand(project, agentCommand)
	logging.Logger.Info("Analyzing task with agent", "project", project.Name, "agent", cmd)

	prompt := fmt.Sprintf(planPromptFormat, project.Name, description)

	response, err := runAgent(ctx, cmd, prompt)
	if err != nil {
		return nil, err
	}

	plan, err := parseAgentResponse(response)
	if err != nil {
		return nil, err
	}

	return buildTask(plan, project.Name, description)
}

// resolveAgentCommand applies the command precedence rules
func resolveAgentCommand(project *domain.Project, override string) string {
	if override != "" {
		return override
	}

	if pf, err := config.LoadProjectFile(project.Root); err == nil {
		if pf.Agent != nil && pf.Agent.Primary != "" {
			return pf.Agent.Primary
		}
	}

	return defaultAgentCommand
}

// runAgent executes the agent command with the prompt on stdin
func runAgent(ctx context.Context, command, prompt string) (string, error) {
	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	cmd.Stdin = strings.NewReader(prompt)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		logging.Logger.Error("Agent execution failed", "error", err, "stderr", stderr.String())
		return "", fmt.Errorf("agent execution failed: %s: %w", strings.TrimSpace(stderr.String()), err)
	}

	return stdout.String(), nil
}

// parseAgentResponse extracts and decodes the JSON object from the agent's
// output, which may be surrounded by prose
func parseAgentResponse(response string) (*agentPlan, error) {
	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("no valid JSON found in agent response")
	}

	var plan agentPlan
	if err := json.Unmarshal([]byte(response[start:end+1]), &plan); err != nil {
		return nil, fmt.Errorf("failed to decode agent response: %w", err)
	}

	return &plan, nil
}

// buildTask converts a parsed plan into a task in the planning state
func buildTask(plan *agentPlan, projectName, description string) (*domain.Task, error) {
	taskType := domain.TaskType(plan.TaskType)
	if taskType != domain.TaskSequential && taskType != domain.TaskParallel {
		return nil, fmt.Errorf("agent returned unknown task type %q", plan.TaskType)
	}

	task := &domain.Task{
		CreatedAt:   time.Now(),
		Description: description,
		ID:          newID(),
		Name:        plan.Name,
		Project:     projectName,
		Status:      domain.TaskPlanning,
		Type:        taskType,
	}

	for _, st := range plan.Subtasks {
		id := st.ID
		if id == "" {
			id = newID()
		}
		task.Subtasks = append(task.Subtasks, &domain.Subtask{
			Dependencies: st.Dependencies,
			Description:  st.Description,
			ID:           id,
			Name:         st.Name,
			Status:       domain.SubtaskPending,
		})
	}

	return task, nil
}

// newID returns a short unique id, the first uuid group
func newID() string {
	return uuid.NewString()[:8]
}
