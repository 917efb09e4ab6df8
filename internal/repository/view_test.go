package repository

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// sqlRecorder keeps every statement gorm builds.
type sqlRecorder struct {
	logger.Interface
	statements []string
}

func (r *sqlRecorder) LogMode(logger.LogLevel) logger.Interface { return r }

func (r *sqlRecorder) Trace(_ context.Context, _ time.Time, fc func() (string, int64), _ error) {
	sql, _ := fc()
	r.statements = append(r.statements, sql)
}

func dryRunDB(t *testing.T) (*gorm.DB, *sqlRecorder) {
	t.Helper()
	rec := &sqlRecorder{Interface: logger.Discard}
	db, err := gorm.Open(postgres.New(postgres.Config{DSN: "host=localhost dbname=dry"}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               rec,
	})
	require.NoError(t, err)
	return db, rec
}

func TestViewRepo_PhaseDetailListsOrderNewestFirst(t *testing.T) {
	db, rec := dryRunDB(t)
	repo := NewViewRepo(db)

	_, _ = repo.ListDiscussions(55)
	_, _ = repo.ListFiles(55)
	_, _ = repo.PhaseStatusHistory(55)

	require.Len(t, rec.statements, 3)
	assert.Contains(t, rec.statements[0], "ORDER BY d.discussion_created_at DESC, d.phase_discussion_id DESC")
	assert.Contains(t, rec.statements[1], "ORDER BY f.phase_file_created_at DESC, f.phase_project_files_id DESC")
	assert.Contains(t, rec.statements[2], "ORDER BY s.phase_project_status_created_at DESC, s.phase_project_status_id DESC")
	for _, sql := range rec.statements {
		assert.False(t, strings.Contains(sql, " ASC"), sql)
	}
}
