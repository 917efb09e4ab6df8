package migrations

import (
	"fmt"
	"log"

	"gorm.io/gorm"
)

// constraint is a CHECK that AutoMigrate cannot express from struct tags.
type constraint struct {
	table, name, check string
}

var constraints = []constraint{
	{"project_status", "ck_project_status_code", "project_status_status_id IN (1, 2, 3, 4, 5, 7, 8)"},
	{"phase_project_status", "ck_phase_project_status_code", "phase_project_status_status_id IN (1, 2, 3, 4, 5, 7, 8)"},
	{"project_members", "ck_project_members_is_active", "is_active IN (-1, 0, 1)"},
	{"project_tasks", "ck_project_tasks_priority", "priority_id IN (1, 2, 3)"},
}

// RunMigrations applies the raw SQL schema changes. It is safe to run repeatedly.
func RunMigrations(db *gorm.DB) error {
	for _, c := range constraints {
		stmt := fmt.Sprintf(`DO $$ BEGIN
	ALTER TABLE %q ADD CONSTRAINT %q CHECK (%s);
EXCEPTION WHEN duplicate_object THEN NULL;
END $$`, c.table, c.name, c.check)
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("add constraint %s: %w", c.name, err)
		}
	}
	log.Printf("[DB] %d constraints ensured", len(constraints))
	return nil
}
