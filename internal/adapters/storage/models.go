package storage

import "time"

// ProjectModel is the GORM model for the projects table
type ProjectModel struct {
	CreatedAt time.Time
	Name      string `gorm:"primaryKey"`
	Root      string `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (ProjectModel) TableName() string { return "projects" }

// WorkspaceModel is the GORM model for the workspaces table. Workspace
// names are scoped per project, hence the composite primary key.
type WorkspaceModel struct {
	CreatedAt     time.Time
	EndTime       *time.Time `gorm:"default:null"`
	ErrorMessage  string     `gorm:"default:''"`
	ExitCode      *int       `gorm:"default:null"`
	Name          string     `gorm:"primaryKey"`
	Path          string     `gorm:"not null"`
	ProcessStatus string     `gorm:"not null;default:'not_started'"`
	Project       string     `gorm:"primaryKey"`
	ResultFile    string     `gorm:"default:''"`
	Started       bool       `gorm:"not null;default:false"`
	StartTime     *time.Time `gorm:"default:null"`
	TmuxSession   string     `gorm:"default:''"`
	UpdatedAt     time.Time
	WorktreeName  string     `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (WorkspaceModel) TableName() string { return "workspaces" }

// TaskModel is the GORM model for the tasks table
type TaskModel struct {
	CreatedAt   time.Time
	Description string `gorm:"not null;default:''"`
	ID          string `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Project     string `gorm:"not null;index:idx_task_project"`
	Status      string `gorm:"not null;default:'planning'"`
	Type        string `gorm:"not null"`
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (TaskModel) TableName() string { return "tasks" }

// SubtaskModel is the GORM model for the subtasks table. Position preserves
// declaration order, which readiness evaluation depends on.
type SubtaskModel struct {
	CreatedAt     time.Time
	Dependencies  string `gorm:"not null;default:''"`
	Description   string `gorm:"not null;default:''"`
	ID            string `gorm:"primaryKey"`
	Name          string `gorm:"not null"`
	Position      int    `gorm:"not null;default:0"`
	Status        string `gorm:"not null;default:'pending'"`
	TaskID        string `gorm:"primaryKey;index:idx_subtask_task"`
	UpdatedAt     time.Time
	WorkspaceName string `gorm:"default:''"`
	WorktreeName  string `gorm:"default:''"`
}

// TableName specifies the table name for GORM
func (SubtaskModel) TableName() string { return "subtasks" }
