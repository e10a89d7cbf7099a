package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"workspace/internal/domain"
	"workspace/internal/logging"
	"workspace/internal/ports"
)

// SQLiteStore implements ports.RegistryStore using GORM
type SQLiteStore struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.RegistryStore = (*SQLiteStore)(nil)

// gormLogger routes GORM logs through the workspace logger
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("WORKSPACE_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteStore opens (and migrates) the registry database at dbPath
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	// Expand home directory if present
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL mode for concurrent invocations
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")
	db.Exec("PRAGMA foreign_keys=ON")

	for _, model := range []any{&ProjectModel{}, &WorkspaceModel{}, &TaskModel{}} {
		if err := db.AutoMigrate(model); err != nil {
			if !strings.Contains(err.Error(), "already exists") {
				return nil, fmt.Errorf("failed to migrate schema: %w", err)
			}
		}
	}

	// Subtasks are created manually so the task foreign key cascades
	if !db.Migrator().HasTable(&SubtaskModel{}) {
		if err := db.Exec(`
			CREATE TABLE IF NOT EXISTS subtasks (
				id TEXT NOT NULL,
				task_id TEXT NOT NULL,
				name TEXT NOT NULL,
				description TEXT NOT NULL DEFAULT '',
				dependencies TEXT NOT NULL DEFAULT '',
				status TEXT NOT NULL DEFAULT 'pending',
				position INTEGER NOT NULL DEFAULT 0,
				workspace_name TEXT DEFAULT '',
				worktree_name TEXT DEFAULT '',
				created_at DATETIME,
				updated_at DATETIME,
				PRIMARY KEY (id, task_id),
				FOREIGN KEY (task_id) REFERENCES tasks(id) ON UPDATE CASCADE ON DELETE CASCADE
			)
		`).Error; err != nil {
			return nil, fmt.Errorf("failed to create subtasks table: %w", err)
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Load implements RegistryLoader.Load. Workspaces and tasks come back in
// creation order, subtasks in declaration order.
func (s *SQLiteStore) Load(ctx context.Context) (*domain.Registry, error) {
	var projects []ProjectModel
	var workspaces []WorkspaceModel
	var tasks []TaskModel
	var subtasks []SubtaskModel

	err := withRetry(func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Order("name ASC").Find(&projects).Error; err != nil {
				return fmt.Errorf("failed to load projects: %w", err)
			}
			if err := tx.Order("created_at ASC, name ASC").Find(&workspaces).Error; err != nil {
				return fmt.Errorf("failed to load workspaces: %w", err)
			}
			if err := tx.Order("created_at ASC, id ASC").Find(&tasks).Error; err != nil {
				return fmt.Errorf("failed to load tasks: %w", err)
			}
			if err := tx.Order("task_id ASC, position ASC").Find(&subtasks).Error; err != nil {
				return fmt.Errorf("failed to load subtasks: %w", err)
			}
			return nil
		})
	}, 3)

	if err != nil {
		return nil, err
	}

	subtasksByTask := make(map[string][]*domain.Subtask)
	for _, sm := range subtasks {
		subtasksByTask[sm.TaskID] = append(subtasksByTask[sm.TaskID], subtaskModelToDomain(sm))
	}

	reg := &domain.Registry{}
	for _, pm := range projects {
		reg.Projects = append(reg.Projects, projectModelToDomain(pm))
	}
	for _, wm := range workspaces {
		reg.Workspaces = append(reg.Workspaces, workspaceModelToDomain(wm))
	}
	for _, tm := range tasks {
		reg.Tasks = append(reg.Tasks, taskModelToDomain(tm, subtasksByTask[tm.ID]))
	}

	logging.Logger.Debug("Registry loaded",
		"projects", len(reg.Projects),
		"workspaces", len(reg.Workspaces),
		"tasks", len(reg.Tasks))

	return reg, nil
}

type workspaceKey struct {
	project string
	name    string
}

type subtaskKey struct {
	taskID string
	id     string
}

// Save implements RegistrySaver.Save. The registry is written as a full
// state sync: rows are upserted and rows absent from the registry are
// deleted, all in one transaction.
func (s *SQLiteStore) Save(ctx context.Context, reg *domain.Registry) error {
	return withRetry(func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var existingProjects []ProjectModel
			if err := tx.Find(&existingProjects).Error; err != nil {
				return fmt.Errorf("failed to load existing projects: %w", err)
			}
			var existingWorkspaces []WorkspaceModel
			if err := tx.Find(&existingWorkspaces).Error; err != nil {
				return fmt.Errorf("failed to load existing workspaces: %w", err)
			}
			var existingTasks []TaskModel
			if err := tx.Find(&existingTasks).Error; err != nil {
				return fmt.Errorf("failed to load existing tasks: %w", err)
			}
			var existingSubtasks []SubtaskModel
			if err := tx.Find(&existingSubtasks).Error; err != nil {
				return fmt.Errorf("failed to load existing subtasks: %w", err)
			}

			staleProjects := make(map[string]bool)
			for _, pm := range existingProjects {
				staleProjects[pm.Name] = true
			}
			staleWorkspaces := make(map[workspaceKey]bool)
			for _, wm := range existingWorkspaces {
				staleWorkspaces[workspaceKey{wm.Project, wm.Name}] = true
			}
			staleTasks := make(map[string]bool)
			for _, tm := range existingTasks {
				staleTasks[tm.ID] = true
			}
			staleSubtasks := make(map[subtaskKey]bool)
			for _, sm := range existingSubtasks {
				staleSubtasks[subtaskKey{sm.TaskID, sm.ID}] = true
			}

			for _, p := range reg.Projects {
				model := domainToProjectModel(p)
				if err := tx.Save(&model).Error; err != nil {
					return fmt.Errorf("failed to save project %s: %w", p.Name, err)
				}
				delete(staleProjects, p.Name)
			}

			for _, w := range reg.Workspaces {
				model := domainToWorkspaceModel(w)
				if err := tx.Save(&model).Error; err != nil {
					return fmt.Errorf("failed to save workspace %s: %w", w.Name, err)
				}
				delete(staleWorkspaces, workspaceKey{w.Project, w.Name})
			}

			for _, t := range reg.Tasks {
				model := domainToTaskModel(t)
				if err := tx.Save(&model).Error; err != nil {
					return fmt.Errorf("failed to save task %s: %w", t.ID, err)
				}
				delete(staleTasks, t.ID)

				for i, st := range t.Subtasks {
					subModel := domainToSubtaskModel(t.ID, i, st)
					if err := tx.Save(&subModel).Error; err != nil {
						return fmt.Errorf("failed to save subtask %s of task %s: %w", st.ID, t.ID, err)
					}
					delete(staleSubtasks, subtaskKey{t.ID, st.ID})
				}
			}

			for name := range staleProjects {
				if err := tx.Where("name = ?", name).Delete(&ProjectModel{}).Error; err != nil {
					return fmt.Errorf("failed to delete project %s: %w", name, err)
				}
			}
			for key := range staleWorkspaces {
				if err := tx.Where("project = ? AND name = ?", key.project, key.name).Delete(&WorkspaceModel{}).Error; err != nil {
					return fmt.Errorf("failed to delete workspace %s: %w", key.name, err)
				}
			}
			for id := range staleTasks {
				// Subtasks go with the task via the cascading foreign key
				if err := tx.Where("id = ?", id).Delete(&TaskModel{}).Error; err != nil {
					return fmt.Errorf("failed to delete task %s: %w", id, err)
				}
			}
			for key := range staleSubtasks {
				if err := tx.Where("task_id = ? AND id = ?", key.taskID, key.id).Delete(&SubtaskModel{}).Error; err != nil {
					return fmt.Errorf("failed to delete subtask %s: %w", key.id, err)
				}
			}

			return nil
		})
	}, 3)
}

// withRetry retries operations on SQLITE_BUSY with linear backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
