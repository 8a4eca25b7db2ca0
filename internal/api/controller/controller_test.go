package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelekornrud/BouvetRadar/internal/api/controller"
	"github.com/michaelekornrud/BouvetRadar/internal/pkg/constants"
	"github.com/michaelekornrud/BouvetRadar/internal/pkg/klass"
	"github.com/michaelekornrud/BouvetRadar/internal/service/cpv"
	"github.com/michaelekornrud/BouvetRadar/internal/service/doffin"
	"github.com/michaelekornrud/BouvetRadar/internal/service/ssb"
)

const nutsTable = `code;parentCode;level;name
NO08;;1;Oslo og Viken
NO081;NO08;2;Oslo
NO0811;NO081;3;Oslo kommune
`

const styrkTable = `code;parentCode;level;name
2;;1;Akademiske yrker
21;2;2;Realister, sivilingeniører mv.
`

func csvServer(t *testing.T, table string) *klass.Cache {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(table))
	}))
	t.Cleanup(srv.Close)

	return klass.NewCache(klass.NewClient(srv.URL+"/", 0), 0)
}

// newController wires a controller against fake upstreams. doffinHandler may
// be nil when the test never reaches the Doffin routes.
func newController(t *testing.T, doffinHandler http.HandlerFunc) *controller.Controller {
	t.Helper()

	nuts := ssb.NewNUTSService(csvServer(t, nutsTable))
	styrk := ssb.NewSTYRKService(csvServer(t, styrkTable))

	if doffinHandler == nil {
		doffinHandler = func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "unexpected call", http.StatusInternalServerError)
		}
	}
	srv := httptest.NewServer(doffinHandler)
	t.Cleanup(srv.Close)

	doffinSvc, err := doffin.NewService(doffin.Config{BaseURL: srv.URL, APIKey: "test-key"}, nuts)
	require.NoError(t, err)

	return controller.NewController(cpv.NewService(), nuts, styrk, doffinSvc)
}

// invoke drives one handler through a bare echo context and decodes the JSON
// body it wrote.
func invoke(t *testing.T, handler echo.HandlerFunc, target string, pathParams map[string]string) (int, map[string]any, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	for name, value := range pathParams {
		c.SetParamNames(name)
		c.SetParamValues(value)
	}

	if err := handler(c); err != nil {
		return 0, nil, err
	}

	var body map[string]any
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body, nil
}

func TestHealthCheck(t *testing.T) {
	t.Parallel()
	cntrl := newController(t, nil)

	code, body, err := invoke(t, cntrl.HealthCheck, "/api/health", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "API is running", body["message"])
}

func TestGetMainCategories(t *testing.T) {
	t.Parallel()
	cntrl := newController(t, nil)

	code, body, err := invoke(t, cntrl.GetMainCategories, "/api/cpv/categories", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(6), body["total"])

	data, ok := body["data"].([]any)
	require.True(t, ok)
	first, ok := data[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(48000000), first["code"])
	assert.Equal(t, "Software and Information Systems", first["name"])
	assert.Equal(t, "Programvare og informasjonssystemer", first["description"])
}

func TestGetCodes(t *testing.T) {
	t.Parallel()
	cntrl := newController(t, nil)

	t.Run("category filter narrows to the series", func(t *testing.T) {
		t.Parallel()

		code, body, err := invoke(t, cntrl.GetCodes, "/api/cpv/codes?category=64000000", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, code)

		data := body["data"].([]any)
		require.NotEmpty(t, data)
		for _, item := range data {
			assert.Equal(t, "Telecommunications Services", item.(map[string]any)["category"])
		}

		filters := body["filters"].(map[string]any)
		assert.Equal(t, "64000000", filters["category"])
	})

	t.Run("search filter matches descriptions", func(t *testing.T) {
		t.Parallel()

		_, body, err := invoke(t, cntrl.GetCodes, "/api/cpv/codes?search=Dataspill", nil)
		require.NoError(t, err)
		data := body["data"].([]any)
		require.NotEmpty(t, data)
	})

	t.Run("single-digit category filters without error", func(t *testing.T) {
		t.Parallel()

		code, body, err := invoke(t, cntrl.GetCodes, "/api/cpv/codes?category=5", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, float64(0), body["total"])
	})

	t.Run("non-integer category is rejected", func(t *testing.T) {
		t.Parallel()

		_, _, err := invoke(t, cntrl.GetCodes, "/api/cpv/codes?category=abc", nil)
		var ce *constants.CodedError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, constants.CodeInvalidParameterType, ce.ErrorCode())
	})

	t.Run("no filter returns the full sorted table", func(t *testing.T) {
		t.Parallel()

		_, body, err := invoke(t, cntrl.GetCodes, "/api/cpv/codes", nil)
		require.NoError(t, err)
		data := body["data"].([]any)
		require.NotEmpty(t, data)

		prev := float64(0)
		for _, item := range data {
			cur := item.(map[string]any)["code"].(float64)
			assert.Greater(t, cur, prev)
			prev = cur
		}
	})
}

func TestGetCodeDetails(t *testing.T) {
	t.Parallel()
	cntrl := newController(t, nil)

	code, body, err := invoke(t, cntrl.GetCodeDetails, "/api/cpv/codes/48000000", map[string]string{"code": "48000000"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, code)
	detail := body["data"].(map[string]any)
	assert.Equal(t, "Programvare og informasjonssystemer", detail["description"])

	_, _, err = invoke(t, cntrl.GetCodeDetails, "/api/cpv/codes/99999999", map[string]string{"code": "99999999"})
	var ce *constants.CodedError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, constants.CodeCPVCodeNotFound, ce.ErrorCode())
}

func TestGetNUTSStructureByLevel(t *testing.T) {
	t.Parallel()
	cntrl := newController(t, nil)

	code, body, err := invoke(t, cntrl.GetNUTSStructureByLevel, "/api/nuts/codes/level/2", map[string]string{"level": "2"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(1), body["total"])

	structure := body["structure"].([]any)
	region := structure[0].(map[string]any)
	assert.Equal(t, "NO08", region["code"])
	counties := region["counties"].([]any)
	require.Len(t, counties, 1)
	assert.Equal(t, "NO081", counties[0].(map[string]any)["code"])

	_, _, err = invoke(t, cntrl.GetNUTSStructureByLevel, "/api/nuts/codes/level/4", map[string]string{"level": "4"})
	var ce *constants.CodedError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, constants.CodeInvalidInput, ce.ErrorCode())
}

func TestSearchNUTSCodes(t *testing.T) {
	t.Parallel()
	cntrl := newController(t, nil)

	_, body, err := invoke(t, cntrl.SearchNUTSCodes, "/api/nuts/search?q=oslo", nil)
	require.NoError(t, err)
	assert.Equal(t, float64(3), body["total"])

	_, _, err = invoke(t, cntrl.SearchNUTSCodes, "/api/nuts/search", nil)
	var ce *constants.CodedError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, constants.CodeMissingParameter, ce.ErrorCode())
}

func TestGetProfessionGroups(t *testing.T) {
	t.Parallel()
	cntrl := newController(t, nil)

	code, body, err := invoke(t, cntrl.GetProfessionGroups, "/api/styrk/profession-groups", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(1), body["total"])

	groups := body["profession_groups"].([]any)
	assert.Equal(t, "Akademiske yrker", groups[0].(map[string]any)["name"])
}

func TestGetSubProfessions(t *testing.T) {
	t.Parallel()
	cntrl := newController(t, nil)

	_, body, err := invoke(t, cntrl.GetSubProfessions, "/api/styrk/sub-professions", nil)
	require.NoError(t, err)

	structure := body["structure"].([]any)
	group := structure[0].(map[string]any)
	subgroups := group["subgroups"].([]any)
	require.Len(t, subgroups, 1)
	assert.Equal(t, "21", subgroups[0].(map[string]any)["code"])
}

func TestGetSTYRKStructureByLevel(t *testing.T) {
	t.Parallel()
	cntrl := newController(t, nil)

	_, body, err := invoke(t, cntrl.GetSTYRKStructureByLevel, "/api/styrk/codes/level/2", map[string]string{"level": "2"})
	require.NoError(t, err)

	structure := body["structure"].([]any)
	group := structure[0].(map[string]any)
	assert.Equal(t, "2", group["code"])
	subgroups := group["subgroups"].([]any)
	require.Len(t, subgroups, 1)

	_, _, err = invoke(t, cntrl.GetSTYRKStructureByLevel, "/api/styrk/codes/level/5", map[string]string{"level": "5"})
	var ce *constants.CodedError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, constants.CodeInvalidInput, ce.ErrorCode())
}

func TestSearchNotices(t *testing.T) {
	t.Parallel()

	t.Run("counts hits from the upstream payload", func(t *testing.T) {
		t.Parallel()
		cntrl := newController(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"hits": [{"id": "a"}, {"id": "b"}], "numHitsTotal": 2}`))
		})

		code, body, err := invoke(t, cntrl.SearchNotices, "/api/doffin/search?search=vei", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, float64(2), body["total"])
	})

	t.Run("payload without hits gets total zero", func(t *testing.T) {
		t.Parallel()
		cntrl := newController(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"message": "no results"}`))
		})

		_, body, err := invoke(t, cntrl.SearchNotices, "/api/doffin/search", nil)
		require.NoError(t, err)
		assert.NotContains(t, body, "total")
	})

	t.Run("invalid query never reaches upstream", func(t *testing.T) {
		t.Parallel()
		cntrl := newController(t, nil)

		_, _, err := invoke(t, cntrl.SearchNotices, "/api/doffin/search?status=bogus", nil)
		var ce *constants.CodedError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, constants.CodeInvalidInput, ce.ErrorCode())
	})
}

func TestDownloadNotice(t *testing.T) {
	t.Parallel()
	cntrl := newController(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("notice-bytes"))
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/doffin/download/2024-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("2024-1")

	require.NoError(t, cntrl.DownloadNotice(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/octet-stream", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "notice-bytes", rec.Body.String())
}
