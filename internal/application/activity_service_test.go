package application

import (
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/projecthub-go/internal/domain/phase"
	"github.com/linskybing/projecthub-go/internal/repository"
	storagemock "github.com/linskybing/projecthub-go/internal/storage/mock"
	"github.com/linskybing/projecthub-go/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUploadFile(t *testing.T) {
	t.Run("stores blob then manifest", func(t *testing.T) {
		m := newMockRepos(t)
		blobs := storagemock.NewMockBlobStore(gomock.NewController(t))
		svc := NewActivityService(m.repos, blobs, 1024)

		var storedName string
		m.phase.EXPECT().GetInstance(uint(55)).Return(phase.PhaseProject{ID: 55}, nil)
		blobs.EXPECT().Put(gomock.Any(), gomock.Any(), "text/plain; charset=utf-8", []byte("hello")).
			DoAndReturn(func(_ any, name, _ string, _ []byte) error {
				storedName = name
				return nil
			})
		m.file.EXPECT().CreateFile(gomock.Any()).DoAndReturn(func(f *phase.PhaseProjectFile) error {
			f.ID = 1
			return nil
		})

		f, err := svc.UploadFile(ctx, Upload{PhaseProjectID: 55, UserID: 7, FileName: "notes v1.txt", Content: []byte("hello")})
		require.NoError(t, err)
		assert.Equal(t, storedName, f.StoredName)
		assert.True(t, strings.HasSuffix(f.StoredName, "_notes_v1.txt"))
		assert.Equal(t, "notes v1.txt", f.OriginalName)
		assert.Equal(t, int64(5), f.Size)
	})

	t.Run("manifest failure removes blob", func(t *testing.T) {
		m := newMockRepos(t)
		blobs := storagemock.NewMockBlobStore(gomock.NewController(t))
		svc := NewActivityService(m.repos, blobs, 0)

		var storedName string
		m.phase.EXPECT().GetInstance(uint(55)).Return(phase.PhaseProject{ID: 55}, nil)
		blobs.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, name, _ string, _ []byte) error {
				storedName = name
				return nil
			})
		m.file.EXPECT().CreateFile(gomock.Any()).Return(errors.New("insert failed"))
		blobs.EXPECT().Delete(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, name string) error {
			assert.Equal(t, storedName, name)
			return nil
		})

		_, err := svc.UploadFile(ctx, Upload{PhaseProjectID: 55, UserID: 7, FileName: "a.pdf", Content: []byte("%PDF-1.4")})
		assert.ErrorIs(t, err, ErrStorage)
	})

	t.Run("too large", func(t *testing.T) {
		m := newMockRepos(t)
		blobs := storagemock.NewMockBlobStore(gomock.NewController(t))
		_, err := NewActivityService(m.repos, blobs, 4).UploadFile(ctx, Upload{PhaseProjectID: 55, UserID: 7, FileName: "a.txt", Content: []byte("hello")})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("unknown phase stores nothing", func(t *testing.T) {
		m := newMockRepos(t)
		blobs := storagemock.NewMockBlobStore(gomock.NewController(t))
		m.phase.EXPECT().GetInstance(uint(55)).Return(phase.PhaseProject{}, gorm.ErrRecordNotFound)

		_, err := NewActivityService(m.repos, blobs, 0).UploadFile(ctx, Upload{PhaseProjectID: 55, UserID: 7, FileName: "a.txt", Content: []byte("x")})
		assert.ErrorIs(t, err, ErrPhaseNotFound)
	})
}

func TestAddDiscussion(t *testing.T) {
	m := newMockRepos(t)
	m.phase.EXPECT().GetInstance(uint(55)).Return(phase.PhaseProject{ID: 55}, nil)
	m.discussion.EXPECT().CreateDiscussion(gomock.Any()).Return(nil)

	d, err := NewActivityService(m.repos, nil, 0).AddDiscussion(ctx, 55, 7, "  see comments  ")
	require.NoError(t, err)
	assert.Equal(t, "see comments", d.Text)

	_, err = NewActivityService(m.repos, nil, 0).AddDiscussion(ctx, 55, 7, "   ")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAddDiscussion_AuditedInTransaction(t *testing.T) {
	m := newMockRepos(t)
	m.phase.EXPECT().GetInstance(uint(55)).Return(phase.PhaseProject{ID: 55}, nil)
	m.discussion.EXPECT().CreateDiscussion(gomock.Any()).DoAndReturn(func(d *phase.PhaseDiscussion) error {
		d.ID = 31
		return nil
	})

	var action, resource string
	var resourceID uint
	utils.LogAudit = func(_ repository.AuditRepo, userID uint, a, rt string, rid uint, _, _ any, _ string) error {
		action, resource, resourceID = a, rt, rid
		return errors.New("audit table locked")
	}

	_, err := NewActivityService(m.repos, nil, 0).AddDiscussion(ctx, 55, 7, "looks good")
	assert.ErrorIs(t, err, ErrStorage)
	assert.Equal(t, "create", action)
	assert.Equal(t, "phase_discussion", resource)
	assert.Equal(t, uint(31), resourceID)
}
