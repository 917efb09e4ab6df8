package handlers

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/linskybing/projecthub-go/internal/api/middleware"
	"github.com/linskybing/projecthub-go/internal/application"
	"github.com/linskybing/projecthub-go/internal/config"
	"github.com/linskybing/projecthub-go/internal/domain/phase"
	"github.com/linskybing/projecthub-go/internal/domain/project"
	"github.com/linskybing/projecthub-go/internal/domain/status"
	"github.com/linskybing/projecthub-go/internal/repository"
	"github.com/linskybing/projecthub-go/internal/repository/mock"
	storagemock "github.com/linskybing/projecthub-go/internal/storage/mock"
	"github.com/linskybing/projecthub-go/pkg/response"
	"github.com/linskybing/projecthub-go/pkg/types"
	"github.com/linskybing/projecthub-go/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testEnv struct {
	router     *gin.Engine
	project    *mock.MockProjectRepo
	member     *mock.MockMemberRepo
	phase      *mock.MockPhaseRepo
	ledger     *mock.MockLedgerRepo
	enrollment *mock.MockEnrollmentRepo
	view       *mock.MockViewRepo
	blobs      *storagemock.MockBlobStore
}

func setupRouter(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.JwtSecret = "handler-test-secret"
	config.Issuer = "projecthub-test"
	middleware.Init()
	require.NoError(t, middleware.RegisterValidators())

	ctrl := gomock.NewController(t)
	env := &testEnv{
		project:    mock.NewMockProjectRepo(ctrl),
		member:     mock.NewMockMemberRepo(ctrl),
		phase:      mock.NewMockPhaseRepo(ctrl),
		ledger:     mock.NewMockLedgerRepo(ctrl),
		enrollment: mock.NewMockEnrollmentRepo(ctrl),
		view:       mock.NewMockViewRepo(ctrl),
		blobs:      storagemock.NewMockBlobStore(ctrl),
	}
	repos := &repository.Repos{
		Project:    env.project,
		Member:     env.member,
		Enrollment: env.enrollment,
		Phase:      env.phase,
		Ledger:     env.ledger,
		Revision:   mock.NewMockRevisionRepo(ctrl),
		Discussion: mock.NewMockDiscussionRepo(ctrl),
		File:       mock.NewMockFileRepo(ctrl),
		Task:       mock.NewMockTaskRepo(ctrl),
		User:       mock.NewMockUserRepo(ctrl),
		Audit:      mock.NewMockAuditRepo(ctrl),
		View:       env.view,
	}

	origAudit := utils.LogAudit
	utils.LogAudit = func(repo repository.AuditRepo, userID uint, action, resourceType string, resourceID uint, before, after any, description string) error {
		return nil
	}
	t.Cleanup(func() { utils.LogAudit = origAudit })

	h := New(application.New(repos, env.blobs, 16))
	r := gin.New()
	r.Use(middleware.RequestLogger(), middleware.Recovery())
	r.POST("/operations", middleware.JWTAuthMiddleware(), h.Dispatcher.Handle)
	env.router = r
	return env
}

func tokenFor(t *testing.T, userID uint, role string) string {
	t.Helper()
	tok, err := middleware.GenerateToken(userID, "user", role, time.Hour)
	require.NoError(t, err)
	return tok
}

func call(t *testing.T, r *gin.Engine, token string, body any) (*httptest.ResponseRecorder, response.Envelope) {
	t.Helper()
	var raw []byte
	switch b := body.(type) {
	case string:
		raw = []byte(b)
	default:
		var err error
		raw, err = json.Marshal(b)
		require.NoError(t, err)
	}
	req := httptest.NewRequest(http.MethodPost, "/operations", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

func TestDispatcher_RegistersEveryOperation(t *testing.T) {
	h := New(application.New(&repository.Repos{}, nil, 0))
	want := []string{
		"saveProjectMaster", "fetchProjectMastersBySchoolYear", "findProjectMasterByCode", "savePhases",
		"fetchPhases", "saveProjectMain", "fetchProjectsByMaster", "fetchMyProjects", "fetchCollaborator",
		"fetchMembers", "addMember", "respondToInvite", "saveJoinedWorkspace", "batchJoinWorkspace",
		"fetchJoinedWorkspaces", "startPhase", "submitForReview", "requestRevision", "fulfillRevision",
		"decidePhase", "fetchRevisions", "insertDiscussion", "uploadPhaseFile", "createTask", "fetchTasks",
		"setTaskDone", "fetchPhaseDetail", "fetchPhaseDetailByTemplate", "fetchProjectOverview",
		"fetchProjectStatus", "fetchAuditLogs", "fetchStatusHistory", "setProjectStatus",
	}
	assert.ElementsMatch(t, want, h.Dispatcher.Operations())
}

func TestDispatcher_Envelope(t *testing.T) {
	env := setupRouter(t)
	student := tokenFor(t, 7, types.RoleStudent)

	t.Run("missing token", func(t *testing.T) {
		w, body := call(t, env.router, "", map[string]any{"operation": "fetchPhases"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, response.StatusError, body.Status)
	})

	t.Run("not json", func(t *testing.T) {
		w, body := call(t, env.router, student, "operation=fetchPhases")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, response.StatusError, body.Status)
	})

	t.Run("missing operation", func(t *testing.T) {
		w, _ := call(t, env.router, student, map[string]any{"project_master_id": 1})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown operation", func(t *testing.T) {
		w, body := call(t, env.router, student, map[string]any{"operation": "dropTables"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "unknown operation: dropTables", body.Message)
	})

	t.Run("role gate", func(t *testing.T) {
		w, body := call(t, env.router, student, map[string]any{
			"operation":              "saveProjectMaster",
			"project_title":          "Capstone",
			"project_code":           "CAP-2025",
			"project_school_year_id": 1,
		})
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, response.StatusError, body.Status)
	})

	t.Run("request id echoed", func(t *testing.T) {
		w, _ := call(t, env.router, student, map[string]any{"operation": "dropTables"})
		assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	})
}

func TestStartPhaseOperation(t *testing.T) {
	t.Run("validation names the missing field", func(t *testing.T) {
		env := setupRouter(t)
		w, body := call(t, env.router, tokenFor(t, 7, types.RoleStudent), map[string]any{
			"operation":       "startPhase",
			"project_main_id": 10,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "phase_main_id is required", body.Message)
	})

	t.Run("success", func(t *testing.T) {
		env := setupRouter(t)
		gomock.InOrder(
			env.project.EXPECT().LockProject(uint(10)).Return(project.ProjectMain{ID: 10, MasterID: 3}, nil),
			env.phase.EXPECT().GetPhaseByID(uint(1)).Return(phase.PhaseMain{ID: 1, MasterID: 3}, nil),
			env.phase.EXPECT().InstanceExists(uint(1), uint(10)).Return(false, nil),
			env.ledger.EXPECT().Current(status.ScopeProject, uint(10)).Return(&status.Entry{Code: status.InProgress}, nil),
			env.phase.EXPECT().CreateInstance(gomock.Any()).DoAndReturn(func(pp *phase.PhaseProject) error {
				pp.ID = 55
				return nil
			}),
			env.ledger.EXPECT().Append(gomock.Any()).Return(nil),
		)

		w, body := call(t, env.router, tokenFor(t, 7, types.RoleStudent), map[string]any{
			"operation":       "startPhase",
			"phase_main_id":   1,
			"project_main_id": 10,
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, response.StatusSuccess, body.Status)
		assert.Equal(t, "Phase started", body.Message)
		data := body.Data.(map[string]any)
		assert.EqualValues(t, 55, data["phase_project_id"])
	})

	t.Run("second start conflicts", func(t *testing.T) {
		env := setupRouter(t)
		env.project.EXPECT().LockProject(uint(10)).Return(project.ProjectMain{ID: 10, MasterID: 3}, nil)
		env.phase.EXPECT().GetPhaseByID(uint(1)).Return(phase.PhaseMain{ID: 1, MasterID: 3}, nil)
		env.phase.EXPECT().InstanceExists(uint(1), uint(10)).Return(true, nil)

		w, body := call(t, env.router, tokenFor(t, 7, types.RoleStudent), map[string]any{
			"operation":       "startPhase",
			"phase_main_id":   1,
			"project_main_id": 10,
		})
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, application.ErrPhaseAlreadyStarted.Message, body.Message)
	})

	t.Run("missing project", func(t *testing.T) {
		env := setupRouter(t)
		env.project.EXPECT().LockProject(uint(10)).Return(project.ProjectMain{}, gorm.ErrRecordNotFound)

		w, _ := call(t, env.router, tokenFor(t, 7, types.RoleStudent), map[string]any{
			"operation":       "startPhase",
			"phase_main_id":   1,
			"project_main_id": 10,
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestStorageFailureHidesCause(t *testing.T) {
	env := setupRouter(t)
	env.view.EXPECT().ListTasks(uint(4)).Return(nil, errors.New("dial tcp 10.0.0.5:5432: connection refused"))

	w, body := call(t, env.router, tokenFor(t, 7, types.RoleStudent), map[string]any{
		"operation":       "fetchTasks",
		"project_main_id": 4,
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, response.StatusError, body.Status)
	assert.NotContains(t, body.Message, "10.0.0.5")
}

func TestBatchJoinOperation(t *testing.T) {
	env := setupRouter(t)
	env.project.EXPECT().GetMasterByCode("CAP-2025").Return(project.ProjectMaster{ID: 3, Code: "CAP-2025"}, nil)
	env.enrollment.EXPECT().Join(&project.StudentJoined{StudentUserID: 5, ProjectMasterID: 3}).Return(true, nil)
	env.enrollment.EXPECT().Join(&project.StudentJoined{StudentUserID: 7, ProjectMasterID: 3}).Return(false, nil)

	w, body := call(t, env.router, tokenFor(t, 2, types.RoleTeacher), map[string]any{
		"operation":    "batchJoinWorkspace",
		"project_code": "CAP-2025",
		"user_ids":     []int{5, 5, 7},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	raw, err := json.Marshal(body.Data)
	require.NoError(t, err)
	var res project.BatchJoinResult
	require.NoError(t, json.Unmarshal(raw, &res))
	assert.Equal(t, []int64{5}, res.Inserted)
	assert.Equal(t, []project.SkippedJoin{{UserID: 7, Reason: project.SkipAlreadyJoined}}, res.Skipped)
	assert.Equal(t, 1, res.TotalInserted)
	assert.Equal(t, 1, res.TotalSkipped)
}

func TestReadingAnotherUsersRecords(t *testing.T) {
	env := setupRouter(t)

	w, _ := call(t, env.router, tokenFor(t, 7, types.RoleStudent), map[string]any{
		"operation":  "fetchJoinedWorkspaces",
		"student_id": 8,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	env.view.EXPECT().ListJoinedWorkspaces(uint(8)).Return(nil, nil)
	w, body := call(t, env.router, tokenFor(t, 2, types.RoleTeacher), map[string]any{
		"operation":  "fetchJoinedWorkspaces",
		"student_id": 8,
	})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, response.StatusSuccess, body.Status)
}

func TestUploadPhaseFileOperation(t *testing.T) {
	t.Run("over the limit", func(t *testing.T) {
		env := setupRouter(t)
		env.blobs.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		w, body := call(t, env.router, tokenFor(t, 7, types.RoleStudent), map[string]any{
			"operation":        "uploadPhaseFile",
			"phase_project_id": 55,
			"file_name":        "report.txt",
			"content_base64":   base64.StdEncoding.EncodeToString([]byte(strings.Repeat("x", 64))),
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, body.Message, "upload limit")
	})

	t.Run("not base64", func(t *testing.T) {
		env := setupRouter(t)
		w, body := call(t, env.router, tokenFor(t, 7, types.RoleStudent), map[string]any{
			"operation":        "uploadPhaseFile",
			"phase_project_id": 55,
			"file_name":        "report.txt",
			"content_base64":   "***",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "content_base64 must be base64 encoded", body.Message)
	})
}

func TestSetProjectStatusOperation(t *testing.T) {
	t.Run("teacher closes a project", func(t *testing.T) {
		env := setupRouter(t)
		gomock.InOrder(
			env.project.EXPECT().GetProjectByID(uint(10)).Return(project.ProjectMain{ID: 10}, nil),
			env.ledger.EXPECT().Append(gomock.Any()).Return(nil),
		)
		w, body := call(t, env.router, tokenFor(t, 2, types.RoleTeacher), map[string]any{
			"operation":       "setProjectStatus",
			"project_main_id": 10,
			"status_code":     int(status.Approved),
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "Project status updated", body.Message)
	})

	t.Run("legacy code is rejected", func(t *testing.T) {
		env := setupRouter(t)
		w, body := call(t, env.router, tokenFor(t, 2, types.RoleTeacher), map[string]any{
			"operation":       "setProjectStatus",
			"project_main_id": 10,
			"status_code":     int(status.Completed),
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "status code 2 is not writable", body.Message)
	})

	t.Run("students may not", func(t *testing.T) {
		env := setupRouter(t)
		w, _ := call(t, env.router, tokenFor(t, 7, types.RoleStudent), map[string]any{
			"operation":       "setProjectStatus",
			"project_main_id": 10,
			"status_code":     int(status.Approved),
		})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestFetchStatusHistoryOperation(t *testing.T) {
	env := setupRouter(t)
	env.ledger.EXPECT().Current(status.ScopePhase, uint(55)).Return(&status.Entry{ID: 2, Scope: status.ScopePhase, ScopeID: 55, Code: status.UnderReview}, nil)
	env.ledger.EXPECT().History(status.ScopePhase, uint(55)).Return([]status.Entry{
		{ID: 2, Scope: status.ScopePhase, ScopeID: 55, Code: status.UnderReview},
		{ID: 1, Scope: status.ScopePhase, ScopeID: 55, Code: status.InProgress},
	}, nil)

	w, body := call(t, env.router, tokenFor(t, 7, types.RoleStudent), map[string]any{
		"operation": "fetchStatusHistory",
		"scope":     "phase",
		"scope_id":  55,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data, ok := body.Data.(map[string]any)
	require.True(t, ok)
	assert.Len(t, data["history"], 2)
	current, ok := data["current"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, status.UnderReview, current["status_code"])

	w, body = call(t, env.router, tokenFor(t, 7, types.RoleStudent), map[string]any{
		"operation": "fetchStatusHistory",
		"scope":     "task",
		"scope_id":  55,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "scope must be one of [project phase]", body.Message)
}

func TestRespondToInviteOperation_OnlyInvitee(t *testing.T) {
	env := setupRouter(t)
	env.member.EXPECT().GetMember(uint(5)).Return(project.ProjectMember{ID: 5, ProjectMainID: 10, UserID: 8}, nil)
	env.member.EXPECT().SetMemberState(gomock.Any(), gomock.Any()).Times(0)

	w, body := call(t, env.router, tokenFor(t, 7, types.RoleStudent), map[string]any{
		"operation":          "respondToInvite",
		"project_members_id": 5,
		"accept":             true,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "cannot answer another user's invitation", body.Message)
}
