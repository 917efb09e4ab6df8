package utils

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/linskybing/projecthub-go/internal/domain/audit"
	"github.com/linskybing/projecthub-go/internal/repository"
)

// LogAudit writes one audit row through repo. Callers pass the transaction-bound
// AuditRepo so the row commits or rolls back with the change it describes.
var LogAudit = func(
	repo repository.AuditRepo,
	userID uint,
	action string,
	resourceType string,
	resourceID uint,
	before any,
	after any,
	description string,
) error {
	var oldData, newData []byte
	var err error

	if before != nil {
		oldData, err = json.Marshal(before)
		if err != nil {
			log.Printf("[Audit] marshal old data: %v", err)
		}
	}
	if after != nil {
		newData, err = json.Marshal(after)
		if err != nil {
			log.Printf("[Audit] marshal new data: %v", err)
		}
	}

	auditLog := &audit.AuditLog{
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   fmt.Sprintf("%d", resourceID),
		OldData:      oldData,
		NewData:      newData,
		Description:  description,
	}

	return repo.CreateAuditLog(auditLog)
}
