package render

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/mrbennbenn/universal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ShellTestSuite struct {
	suite.Suite
	dir   string
	index string
	logs  *bytes.Buffer
	shell *Shell
}

func (s *ShellTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.index = filepath.Join(s.dir, "index.html")
	s.writeIndex("<html><body><app-root>v1</app-root></body></html>")

	s.logs = &bytes.Buffer{}
	s.shell = NewShell(log.New(s.logs, "", 0))
}

func (s *ShellTestSuite) writeIndex(doc string) {
	s.Require().NoError(os.WriteFile(s.index, []byte(doc), 0644))
}

func (s *ShellTestSuite) get(h http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func (s *ShellTestSuite) TestRendersIndexDocument() {
	h := s.shell.Handler(Options{Index: s.index, ProdMode: true})

	rec := s.get(h, "/products/42")

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	s.Contains(rec.Body.String(), "<app-root>v1</app-root>")
}

func (s *ShellTestSuite) TestProdModeKeepsFirstRead() {
	h := s.shell.Handler(Options{Index: s.index, ProdMode: true})

	s.Contains(s.get(h, "/").Body.String(), "v1")
	s.writeIndex("<html><body><app-root>v2</app-root></body></html>")
	s.Contains(s.get(h, "/").Body.String(), "v1")

	s.shell.Invalidate()
	s.Contains(s.get(h, "/").Body.String(), "v2")
}

func (s *ShellTestSuite) TestDevModeRereads() {
	h := s.shell.Handler(Options{Index: s.index, ProdMode: false})

	s.Contains(s.get(h, "/").Body.String(), "v1")
	s.writeIndex("<html><body><app-root>v2</app-root></body></html>")
	s.Contains(s.get(h, "/").Body.String(), "v2")
	s.Contains(s.logs.String(), "id=render_")
}

func (s *ShellTestSuite) TestMissingIndexAnswers500() {
	h := s.shell.Handler(Options{Index: filepath.Join(s.dir, "nope.html")})

	rec := s.get(h, "/")

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Contains(s.logs.String(), "Render failed")
}

func (s *ShellTestSuite) TestNoIndexConfigured() {
	rec := s.get(s.shell.Handler(Options{}), "/")
	s.Equal(http.StatusInternalServerError, rec.Code)
}

func (s *ShellTestSuite) TestWarnsOnMissingMainBundle() {
	s.shell.Handler(Options{Index: s.index, Main: filepath.Join(s.dir, "main.bundle")})
	s.Contains(s.logs.String(), "Main bundle not readable")
}

func TestShellTestSuite(t *testing.T) {
	suite.Run(t, new(ShellTestSuite))
}

func TestShell_NilLogger(t *testing.T) {
	rec := httptest.NewRecorder()
	NewShell(nil).Handler(Options{Main: "/does/not/exist"}).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestOptionsFrom(t *testing.T) {
	cfg := config.RenderConfig{
		Index:          "dist-server/index.html",
		Main:           "dist-server/main.bundle",
		EnableProdMode: true,
		CDNCacheExpiry: config.Seconds(1200),
	}

	assert.Equal(t, Options{
		Index:    "dist-server/index.html",
		Main:     "dist-server/main.bundle",
		ProdMode: true,
	}, OptionsFrom(cfg))
}

func TestRendererFunc(t *testing.T) {
	var got Options
	r := RendererFunc(func(opts Options) http.Handler {
		got = opts
		return http.NotFoundHandler()
	})

	h := r.Handler(Options{Index: "i"})
	require.NotNil(t, h)
	assert.Equal(t, "i", got.Index)
}
