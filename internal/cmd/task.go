package cmd

// TaskCmd plans and orchestrates multi-step tasks
type TaskCmd struct {
	Cancel   TaskCancelCmd   `cmd:"cancel" help:"Cancel a task and tear down its workspaces"`
	Complete TaskCompleteCmd `cmd:"complete" help:"Mark a subtask completed"`
	Confirm  TaskConfirmCmd  `cmd:"confirm" help:"Confirm a reviewed plan and start the task"`
	List     TaskListCmd     `cmd:"list" help:"List confirmed tasks" default:"1"`
	Plan     TaskPlanCmd     `cmd:"plan" help:"Plan a task with the planning agent"`
	Ready    TaskReadyCmd    `cmd:"ready" help:"List subtasks whose dependencies are satisfied"`
	Show     TaskShowCmd     `cmd:"show" help:"Show a task's plan and progress"`
	Start    TaskStartCmd    `cmd:"start" help:"Start a subtask in its workspace"`
}
