package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avvvet/signin-register/internal/registersvc/handlers"
	"github.com/avvvet/signin-register/internal/registersvc/models"
	"github.com/avvvet/signin-register/internal/registersvc/service"
	"github.com/avvvet/signin-register/internal/registersvc/store/memstore"
)

// executeCommand runs a command with the given args and captures output.
func executeCommand(args ...string) (string, error) {
	root := NewRootCmd()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// newServer runs the register API over an in-memory store.
func newServer(t *testing.T) (*httptest.Server, *memstore.Store) {
	t.Helper()
	st := memstore.New()
	h := handlers.NewHandler(service.NewVisitorService(st), service.NewContractorService(st), "0")
	r := chi.NewRouter()
	h.SetRoutes(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, st
}

func TestRootHelp(t *testing.T) {
	out, err := executeCommand("--help")
	require.NoError(t, err)
	assert.Contains(t, out, "visitors")
	assert.Contains(t, out, "contractors")
}

func TestGlobalFlags(t *testing.T) {
	root := NewRootCmd()

	formatFlag := root.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)
	assert.NotNil(t, root.PersistentFlags().Lookup("server"))
}

func TestServerURLFromEnv(t *testing.T) {
	t.Setenv("SIGNIN_SERVER", "http://register.local:9000")
	flagServer = ""
	assert.Equal(t, "http://register.local:9000", getServerURL())

	flagServer = "http://flag:1"
	assert.Equal(t, "http://flag:1", getServerURL())
	flagServer = ""
}

func TestEditRequiresID(t *testing.T) {
	_, err := executeCommand("contractors", "edit")
	assert.Error(t, err)
}

func TestListRejectsArgs(t *testing.T) {
	_, err := executeCommand("visitors", "list", "extra")
	assert.Error(t, err)
}

func TestVisitorsAddThenList(t *testing.T) {
	srv, _ := newServer(t)

	out, err := executeCommand("--server", srv.URL, "visitors", "add",
		"--name", "Ann Lee", "--company", "Acme", "--visiting", "HR", "--date", "2024-02-05", "--time-in", "09:15")
	require.NoError(t, err)
	assert.Contains(t, out, "Visitor Ann Lee signed in")

	out, err = executeCommand("--server", srv.URL, "visitors", "list", "--from", "2024-02-01", "--to", "2024-02-05")
	require.NoError(t, err)
	assert.Contains(t, out, "VISITING")
	assert.Contains(t, out, "Ann Lee")
	assert.Contains(t, out, "Total: 1 visitors")

	out, err = executeCommand("--server", srv.URL, "visitors", "list", "--from", "2024-02-06", "--to", "2024-02-10")
	require.NoError(t, err)
	assert.Contains(t, out, "No visitors found.")
}

func TestVisitorsListInvalidWindow(t *testing.T) {
	srv, _ := newServer(t)
	_, err := executeCommand("--server", srv.URL, "visitors", "list", "--from", "2024-02-10", "--to", "2024-02-01")
	assert.EqualError(t, err, "invalid date request")
}

func TestContractorsAddValidation(t *testing.T) {
	srv, st := newServer(t)

	_, err := executeCommand("--server", srv.URL, "contractors", "add", "--company", "Acme", "--phone", "12345")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "phone number")

	all, err := st.ListContractors(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestContractorsAddEditList(t *testing.T) {
	srv, st := newServer(t)

	out, err := executeCommand("--server", srv.URL, "--format", "json", "contractors", "add",
		"--company", "Acme Lifts", "--engineer", "Eve", "--job", "J-7", "--action", "service",
		"--date", "2024-02-05", "--time-in", "08:00", "--phone", "0712345678", "--card", "AB12")
	require.NoError(t, err)

	var created models.Contractor
	require.NoError(t, json.Unmarshal([]byte(out), &created))
	require.NotEmpty(t, created.ID)

	_, err = executeCommand("--server", srv.URL, "contractors", "edit", created.ID, "--time-out", "16:45")
	require.NoError(t, err)

	all, err := st.ListContractors(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "16:45", all[0].TimeOut)
	assert.Equal(t, "Eve", all[0].Engineer)
	assert.Equal(t, "0712345678", all[0].PhoneNumber)

	out, err = executeCommand("--server", srv.URL, "contractors", "list", "--all", "--search", "acme")
	require.NoError(t, err)
	assert.Contains(t, out, "16:45")
	assert.Contains(t, out, "Total: 1 contractors")
}

func TestContractorsEditUnknownID(t *testing.T) {
	srv, _ := newServer(t)
	_, err := executeCommand("--server", srv.URL, "contractors", "edit", "nope", "--time-out", "17:00")
	assert.Error(t, err)
}

func TestListWritesExports(t *testing.T) {
	srv, st := newServer(t)
	today := time.Now().UTC().Format("2006-01-02")
	_, err := st.CreateVisitor(context.Background(), models.Visitor{Name: "Ann", Date: today})
	require.NoError(t, err)

	dir := t.TempDir()
	pdfPath := filepath.Join(dir, "visitors.pdf")
	xlsxPath := filepath.Join(dir, "visitors.xlsx")

	out, err := executeCommand("--server", srv.URL, "visitors", "list", "--pdf", pdfPath, "--xlsx", xlsxPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Ann")

	data, err := os.ReadFile(pdfPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))

	info, err := os.Stat(xlsxPath)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
}
