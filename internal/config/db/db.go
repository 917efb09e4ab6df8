package db

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/linskybing/projecthub-go/internal/config"
	"github.com/linskybing/projecthub-go/internal/domain/audit"
	"github.com/linskybing/projecthub-go/internal/domain/phase"
	"github.com/linskybing/projecthub-go/internal/domain/project"
	"github.com/linskybing/projecthub-go/internal/domain/task"
	"github.com/linskybing/projecthub-go/internal/domain/user"
	"github.com/linskybing/projecthub-go/internal/migrations"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// DSN builds the connection string from config. Statement and lock timeouts are
// passed as session parameters so a stuck query cannot hold the project lock forever.
func DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s statement_timeout=%d lock_timeout=%d",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
		config.DbSSLMode,
		config.DbStatementTimeout,
		config.DbLockTimeout,
	)
}

func Open(dialector gorm.Dialector, level logger.LogLevel) (*gorm.DB, error) {
	return gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger: logger.New(log.New(os.Stdout, "[DB] ", log.LstdFlags), logger.Config{
			SlowThreshold:             500 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		}),
	})
}

func Init() error {
	var err error
	DB, err = Open(postgres.Open(DSN()), logger.Warn)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	log.Println("Database connected")
	return nil
}

func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}

// Models lists every table owned by the service, in creation order.
func Models() []any {
	return []any{
		&user.User{},
		&project.ProjectMaster{},
		&project.ProjectMain{},
		&project.ProjectStatus{},
		&project.ProjectMember{},
		&project.StudentJoined{},
		&phase.PhaseMain{},
		&phase.PhaseProject{},
		&phase.PhaseProjectStatus{},
		&phase.RevisionPhase{},
		&phase.PhaseDiscussion{},
		&phase.PhaseProjectFile{},
		&task.ProjectTask{},
		&task.ProjectAssigned{},
		&audit.AuditLog{},
	}
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	if err := migrations.RunMigrations(db); err != nil {
		return err
	}
	log.Println("Database migrated")
	return nil
}
