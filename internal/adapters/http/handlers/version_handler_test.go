package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/shard-launcher-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/shard-launcher-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/shard-launcher-service/internal/domain"
	"github.com/jsamuelsen11/shard-launcher-service/internal/domain/filename"
	"github.com/jsamuelsen11/shard-launcher-service/internal/domain/version"
	"github.com/jsamuelsen11/shard-launcher-service/mocks"
)

func newVersionHandler(t *testing.T) (*handlers.VersionHandler, *mocks.MockVersionService) {
	t.Helper()
	svc := mocks.NewMockVersionService(t)
	return handlers.NewVersionHandler(svc), svc
}

// --- ListVersions ---

func TestListVersions_Success(t *testing.T) {
	t.Parallel()
	h, svc := newVersionHandler(t)

	svc.EXPECT().ListVersions(mock.Anything).Return([]version.Version{
		validVersion("modded"),
		{Name: "broken"},
	}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/versions", nil)
	h.ListVersions(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.VersionListResponse](t, rec)
	if resp.Count != 2 {
		t.Errorf("Count = %d, want 2", resp.Count)
	}
	if resp.Versions[1].Valid {
		t.Error("Versions[1].Valid = true, want false")
	}
}

func TestListVersions_ServiceError(t *testing.T) {
	t.Parallel()
	h, svc := newVersionHandler(t)

	svc.EXPECT().ListVersions(mock.Anything).Return(nil, domain.ErrUnavailable)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/versions", nil)
	h.ListVersions(rec, req)

	requireStatus(t, rec, http.StatusBadGateway)
}

// --- GetVersion ---

func TestGetVersion_Success(t *testing.T) {
	t.Parallel()
	h, svc := newVersionHandler(t)

	v := validVersion("modded")
	svc.EXPECT().GetVersion(mock.Anything, "modded").Return(&v, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/versions/modded", nil)
	req = withChiParams(req, map[string]string{"name": "modded"})
	h.GetVersion(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.VersionResponse](t, rec)
	if resp.Loader == nil || resp.Loader.Type != "forge" {
		t.Errorf("Loader = %+v, want forge", resp.Loader)
	}
}

func TestGetVersion_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newVersionHandler(t)

	svc.EXPECT().GetVersion(mock.Anything, "missing").Return(nil, domain.ErrNotFound)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/versions/missing", nil)
	req = withChiParams(req, map[string]string{"name": "missing"})
	h.GetVersion(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

func TestGetVersion_MissingParam(t *testing.T) {
	t.Parallel()
	h, _ := newVersionHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/versions/", nil)
	req = withChiParams(req, map[string]string{})
	h.GetVersion(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- RenameVersion ---

func TestRenameVersion_Success(t *testing.T) {
	t.Parallel()
	h, svc := newVersionHandler(t)

	v := validVersion("modpack")
	svc.EXPECT().RenameVersion(mock.Anything, "modded", "modpack").Return(&v, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/versions/modded/rename",
		jsonBody(t, dto.RenameVersionRequest{NewName: "modpack"}))
	req = withChiParams(req, map[string]string{"name": "modded"})
	h.RenameVersion(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.VersionResponse](t, rec)
	if resp.Name != "modpack" {
		t.Errorf("Name = %q, want %q", resp.Name, "modpack")
	}
}

func TestRenameVersion_FilenameViolation(t *testing.T) {
	t.Parallel()
	h, svc := newVersionHandler(t)

	svc.EXPECT().RenameVersion(mock.Anything, "modded", "a|b").
		Return(nil, &filename.Error{Name: "a|b", Violation: filename.IllegalCharacters{Chars: "|"}})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/versions/modded/rename",
		jsonBody(t, dto.RenameVersionRequest{NewName: "a|b"}))
	req = withChiParams(req, map[string]string{"name": "modded"})
	h.RenameVersion(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if resp.Violation == nil {
		t.Fatal("Violation = nil, want illegal_characters")
	}
	if resp.Violation.Kind != "illegal_characters" || resp.Violation.Chars != "|" {
		t.Errorf("Violation = %+v, want illegal_characters with %q", resp.Violation, "|")
	}
}

func TestRenameVersion_Conflict(t *testing.T) {
	t.Parallel()
	h, svc := newVersionHandler(t)

	svc.EXPECT().RenameVersion(mock.Anything, "modded", "vanilla").
		Return(nil, &version.ConflictError{Name: "vanilla"})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/versions/modded/rename",
		jsonBody(t, dto.RenameVersionRequest{NewName: "vanilla"}))
	req = withChiParams(req, map[string]string{"name": "modded"})
	h.RenameVersion(rec, req)

	requireStatus(t, rec, http.StatusConflict)
}

// --- CopyVersion ---

func TestCopyVersion_Success(t *testing.T) {
	t.Parallel()
	h, svc := newVersionHandler(t)

	v := validVersion("copy")
	v.Config.Isolation = true
	svc.EXPECT().CopyVersion(mock.Anything, "modded", "copy", true).Return(&v, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/versions/modded/copy",
		jsonBody(t, dto.CopyVersionRequest{NewName: "copy", All: true}))
	req = withChiParams(req, map[string]string{"name": "modded"})
	h.CopyVersion(rec, req)

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[dto.VersionResponse](t, rec)
	if !resp.Config.Isolation {
		t.Error("Config.Isolation = false, want true")
	}
}

// --- DeleteVersion ---

func TestDeleteVersion_Success(t *testing.T) {
	t.Parallel()
	h, svc := newVersionHandler(t)

	svc.EXPECT().DeleteVersion(mock.Anything, "modded").Return(nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/versions/modded", nil)
	req = withChiParams(req, map[string]string{"name": "modded"})
	h.DeleteVersion(rec, req)

	requireStatus(t, rec, http.StatusNoContent)
}

func TestDeleteVersion_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newVersionHandler(t)

	svc.EXPECT().DeleteVersion(mock.Anything, "missing").Return(domain.ErrNotFound)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/versions/missing", nil)
	req = withChiParams(req, map[string]string{"name": "missing"})
	h.DeleteVersion(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

// --- CurrentVersion / SelectVersion ---

func TestCurrentVersion_NoneInstalled(t *testing.T) {
	t.Parallel()
	h, svc := newVersionHandler(t)

	svc.EXPECT().CurrentVersion(mock.Anything).Return(nil, domain.ErrNotFound)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/versions/current", nil)
	h.CurrentVersion(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

func TestSelectVersion_Success(t *testing.T) {
	t.Parallel()
	h, svc := newVersionHandler(t)

	v := validVersion("modded")
	svc.EXPECT().SelectVersion(mock.Anything, "modded").Return(&v, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/versions/current",
		jsonBody(t, dto.SelectVersionRequest{Name: "modded"}))
	h.SelectVersion(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

func TestSelectVersion_MissingName(t *testing.T) {
	t.Parallel()
	h, _ := newVersionHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/versions/current",
		jsonBody(t, dto.SelectVersionRequest{}))
	h.SelectVersion(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}
