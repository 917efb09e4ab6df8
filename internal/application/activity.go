package application

import (
	"context"
	"log"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/linskybing/projecthub-go/internal/domain/phase"
	"github.com/linskybing/projecthub-go/internal/repository"
	"github.com/linskybing/projecthub-go/internal/storage"
	"github.com/linskybing/projecthub-go/pkg/utils"
)

// ActivityService records discussion and file uploads on started phases.
type ActivityService struct {
	Repos *repository.Repos
	Blobs storage.BlobStore
	// MaxUploadBytes bounds a single upload; zero means unlimited.
	MaxUploadBytes int64
}

func NewActivityService(repos *repository.Repos, blobs storage.BlobStore, maxUploadBytes int64) *ActivityService {
	return &ActivityService{
		Repos:          repos,
		Blobs:          blobs,
		MaxUploadBytes: maxUploadBytes,
	}
}

func (s *ActivityService) AddDiscussion(ctx context.Context, phaseProjectID, userID uint, text string) (*phase.PhaseDiscussion, error) {
	text = strings.TrimSpace(text)
	if phaseProjectID == 0 || userID == 0 {
		return nil, validationf("phase_project_id and user are required")
	}
	if text == "" {
		return nil, validationf("discussion text is required")
	}
	d := &phase.PhaseDiscussion{PhaseProjectID: phaseProjectID, UserID: userID, Text: text}
	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		if _, err := tx.Phase.GetInstance(phaseProjectID); err != nil {
			return classify(err, ErrPhaseNotFound)
		}
		if err := tx.Discussion.CreateDiscussion(d); err != nil {
			return storageErr("failed to save discussion", err)
		}
		return recordAudit(tx, userID, "create", "phase_discussion", d.ID, nil, d)
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}

type Upload struct {
	PhaseProjectID uint
	UserID         uint
	FileName       string
	Content        []byte
}

// UploadFile stores the blob under a unique name and then records its manifest
// row. A failed manifest write removes the blob again.
func (s *ActivityService) UploadFile(ctx context.Context, up Upload) (*phase.PhaseProjectFile, error) {
	if up.PhaseProjectID == 0 || up.UserID == 0 {
		return nil, validationf("phase_project_id and user are required")
	}
	if strings.TrimSpace(up.FileName) == "" {
		return nil, validationf("file name is required")
	}
	if len(up.Content) == 0 {
		return nil, validationf("file is empty")
	}
	if s.MaxUploadBytes > 0 && int64(len(up.Content)) > s.MaxUploadBytes {
		return nil, validationf("file exceeds the %d byte upload limit", s.MaxUploadBytes)
	}
	if s.Blobs == nil {
		return nil, storageErr("file storage is not configured", nil)
	}

	if _, err := s.Repos.WithContext(ctx).Phase.GetInstance(up.PhaseProjectID); err != nil {
		return nil, classify(err, ErrPhaseNotFound)
	}

	f := &phase.PhaseProjectFile{
		PhaseProjectID: up.PhaseProjectID,
		StoredName:     utils.StoredFileName(up.FileName),
		OriginalName:   strings.TrimSpace(up.FileName),
		ContentType:    mimetype.Detect(up.Content).String(),
		Size:           int64(len(up.Content)),
		CreatedBy:      up.UserID,
	}
	if err := s.Blobs.Put(ctx, f.StoredName, f.ContentType, up.Content); err != nil {
		return nil, storageErr("failed to store file", err)
	}

	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		if err := tx.File.CreateFile(f); err != nil {
			return storageErr("failed to record file", err)
		}
		return recordAudit(tx, up.UserID, "upload", "phase_project_files", f.ID, nil, f)
	})
	if err != nil {
		if delErr := s.Blobs.Delete(context.WithoutCancel(ctx), f.StoredName); delErr != nil {
			log.Printf("[Upload] failed to remove orphaned blob %s: %v", f.StoredName, delErr)
		}
		return nil, err
	}
	return f, nil
}
