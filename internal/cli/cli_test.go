package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/RavinduBA/e19-4yp-AI-Powered-Knowledge-Management-System/internal/domain/kbModels"
)

type stubService struct {
	populateResult kbModels.PopulateResult
	clearResult    kbModels.ClearResult
	lastReset      bool
}

func (s *stubService) Populate(ctx context.Context, reset bool) kbModels.PopulateResult {
	s.lastReset = reset
	return s.populateResult
}

func (s *stubService) Clear(ctx context.Context) kbModels.ClearResult {
	return s.clearResult
}

func runCommand(t *testing.T, svc *stubService, args ...string) (string, error) {
	t.Helper()
	service = svc
	t.Cleanup(func() { service = nil; resetFlag = false })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestPopulateCommand_PrintsCounts(t *testing.T) {
	svc := &stubService{populateResult: kbModels.PopulateResult{
		Success:            true,
		Message:            "Database populated successfully",
		DocumentsProcessed: 4,
		ChunksCreated:      10,
		NewDocumentsAdded:  3,
	}}

	out, err := runCommand(t, svc, "populate")
	if err != nil {
		t.Fatalf("populate returned error: %v", err)
	}
	for _, want := range []string{"Database populated successfully", "Documents processed: 4", "New documents added: 3"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if svc.lastReset {
		t.Error("reset must default to false")
	}
}

func TestPopulateCommand_ResetFlag(t *testing.T) {
	svc := &stubService{populateResult: kbModels.PopulateResult{Success: true}}

	if _, err := runCommand(t, svc, "populate", "--reset"); err != nil {
		t.Fatalf("populate --reset returned error: %v", err)
	}
	if !svc.lastReset {
		t.Error("expected reset=true to reach the service")
	}
}

func TestPopulateCommand_FailureBecomesError(t *testing.T) {
	svc := &stubService{populateResult: kbModels.PopulateResult{
		Message:     "Data directory 'data' not found. Please create it and add PDF files.",
		FailureKind: kbModels.FailurePrecondition,
	}}

	_, err := runCommand(t, svc, "populate")
	if err == nil {
		t.Fatal("expected an error for a failed populate")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("error %q should carry the result message", err)
	}
}

func TestClearCommand(t *testing.T) {
	svc := &stubService{clearResult: kbModels.ClearResult{
		Success:       true,
		Message:       "Deleted 7 documents from the knowledge base.",
		ChunksDeleted: 7,
	}}

	out, err := runCommand(t, svc, "clear")
	if err != nil {
		t.Fatalf("clear returned error: %v", err)
	}
	if !strings.Contains(out, "Chunks deleted: 7") {
		t.Errorf("output missing deleted count:\n%s", out)
	}
}
