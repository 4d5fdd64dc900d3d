package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bgdnlp/facatura/internal/apperr"
)

// runCommand executes one full facatura invocation against the given
// database file, the way main does, and captures stdout.
func runCommand(t *testing.T, dbPath string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--db-path", dbPath))
	err := cmd.Execute()
	return out.String(), err
}

func mustRun(t *testing.T, dbPath string, args ...string) string {
	t.Helper()
	out, err := runCommand(t, dbPath, args...)
	require.NoError(t, err, "command %v failed: %s", args, out)
	return out
}

func TestSetupDBSeedsOnce(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "facatura.db")

	out := mustRun(t, dbPath, "setup-db")
	assert.Contains(t, out, "Database ready")

	out = mustRun(t, dbPath, "rate", "list")
	assert.Contains(t, out, "EUR")
	assert.Contains(t, out, "4.9")
	assert.Contains(t, out, "USD")
	assert.Contains(t, out, "GBP")

	// Running setup again must not duplicate the seeded rates.
	mustRun(t, dbPath, "setup-db")
	out = mustRun(t, dbPath, "rate", "list")
	assert.Equal(t, 1, strings.Count(out, "EUR"))
}

func TestInvoiceLifecycle(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "facatura.db")

	out := mustRun(t, dbPath, "company", "create",
		"--name", "Exemplu Software SRL",
		"--address", "Str. Revolutiei 10",
		"--city", "Cluj-Napoca",
		"--county", "Cluj",
		"--registration-number", "J12/345/2020",
		"--fiscal-code", "RO1234567",
	)
	assert.Contains(t, out, "Company 1 created")

	out = mustRun(t, dbPath, "client", "create",
		"--name", "Clientul Unu SRL",
		"--address", "Bd. Unirii 1",
		"--city", "Bucuresti",
		"--county", "Sector 3",
		"--fiscal-code", "RO7654321",
	)
	assert.Contains(t, out, "Client 1 created")

	out = mustRun(t, dbPath, "product", "create",
		"--name", "Licenta software",
		"--unit", "buc",
		"--price", "19.99",
	)
	assert.Contains(t, out, "Product 1 created")

	// The standard VAT rate applies when none is given.
	out = mustRun(t, dbPath, "product", "get", "1")
	assert.Contains(t, out, "19%")

	out = mustRun(t, dbPath, "create-invoice",
		"--company", "1",
		"--client", "1",
		"--date", "2025-03-10",
		"--item", "1:3",
		"--item", "adhoc:Transport:cursa:1:50",
	)
	assert.Contains(t, out, "Invoice FCT-2025-000001 created")
	assert.Contains(t, out, "130.86 RON")

	out = mustRun(t, dbPath, "invoice", "get", "FCT-2025-000001")
	assert.Contains(t, out, "Licenta software")
	assert.Contains(t, out, "Transport")
	assert.Contains(t, out, "130.86")

	out = mustRun(t, dbPath, "invoice", "list")
	assert.Contains(t, out, "FCT-2025-000001")

	htmlPath := filepath.Join(t.TempDir(), "factura.html")
	out = mustRun(t, dbPath, "invoice", "render", "FCT-2025-000001",
		"--format", "html", "--output", htmlPath)
	assert.Contains(t, out, "Wrote "+htmlPath)
	html, err := os.ReadFile(htmlPath)
	require.NoError(t, err)
	assert.Contains(t, string(html), "TOTAL DE PLATA")
	assert.Contains(t, string(html), "FCT-2025-000001")
}

func TestRenderDefaultFileName(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "facatura.db")

	mustRun(t, dbPath, "company", "create",
		"--name", "Exemplu Software SRL", "--address", "Str. Revolutiei 10",
		"--city", "Cluj-Napoca", "--county", "Cluj",
		"--registration-number", "J12/345/2020", "--fiscal-code", "RO1234567")
	mustRun(t, dbPath, "client", "create",
		"--name", "Clientul Unu SRL", "--address", "Bd. Unirii 1",
		"--city", "Bucuresti", "--county", "Sector 3", "--fiscal-code", "RO7654321")
	mustRun(t, dbPath, "create-invoice",
		"--company", "1", "--client", "1", "--date", "2025-03-10",
		"--item", "adhoc:Consultanta:ora:2:100")

	workDir := t.TempDir()
	t.Chdir(workDir)
	out := mustRun(t, dbPath, "invoice", "render", "1", "--format", "pdf")
	assert.Contains(t, out, "Wrote fct-2025-000001.pdf")

	rendered, err := os.ReadFile(filepath.Join(workDir, "fct-2025-000001.pdf"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(rendered, []byte("%PDF")))
}

func TestErrorExitCodes(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "facatura.db")

	mustRun(t, dbPath, "company", "create",
		"--name", "Exemplu Software SRL", "--address", "Str. Revolutiei 10",
		"--city", "Cluj-Napoca", "--county", "Cluj",
		"--registration-number", "J12/345/2020", "--fiscal-code", "RO1234567")
	mustRun(t, dbPath, "client", "create",
		"--name", "Clientul Unu SRL", "--address", "Bd. Unirii 1",
		"--city", "Bucuresti", "--county", "Sector 3", "--fiscal-code", "RO7654321")

	// Malformed item spec.
	_, err := runCommand(t, dbPath, "create-invoice",
		"--company", "1", "--client", "1", "--item", "abc")
	require.Error(t, err)
	assert.Equal(t, 2, apperr.ExitCode(err))

	// Product that does not exist.
	_, err = runCommand(t, dbPath, "create-invoice",
		"--company", "1", "--client", "1", "--item", "99:1")
	require.Error(t, err)
	assert.Equal(t, 3, apperr.ExitCode(err))

	// No exchange rate recorded for the requested day.
	_, err = runCommand(t, dbPath, "create-invoice",
		"--company", "1", "--client", "1", "--currency", "EUR",
		"--date", "2025-03-10", "--item", "adhoc:Consultanta:ora:1:100")
	require.Error(t, err)
	assert.Equal(t, 5, apperr.ExitCode(err))

	// Missing record on plain reads.
	_, err = runCommand(t, dbPath, "invoice", "get", "FCT-1999-000001")
	require.Error(t, err)
	assert.Equal(t, 3, apperr.ExitCode(err))
}

func TestCompanyLookupByFiscalCode(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "facatura.db")

	mustRun(t, dbPath, "company", "create",
		"--name", "Exemplu Software SRL", "--address", "Str. Revolutiei 10",
		"--city", "Cluj-Napoca", "--county", "Cluj",
		"--registration-number", "J12/345/2020", "--fiscal-code", "RO1234567")

	out := mustRun(t, dbPath, "company", "get", "--fiscal-code", "RO1234567")
	assert.Contains(t, out, "Exemplu Software SRL")
	assert.Contains(t, out, "J12/345/2020")

	out = mustRun(t, dbPath, "company", "list")
	assert.Contains(t, out, "RO1234567")
}
