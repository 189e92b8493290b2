package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/clinical-doc-assist/internal/domain"
	"github.com/jsamuelsen11/clinical-doc-assist/internal/domain/clinical"
	"github.com/jsamuelsen11/clinical-doc-assist/mocks"
)

const testTranscript = "Doctor: Any chest pain?\nPatient: Only when I climb stairs."

// staticLoader returns a Loader that hands out svc and records the profile
// and config dir it was asked for.
func staticLoader(svc *mocks.MockDocumentationService, def clinical.Specialty, gotProfile, gotDir *string) Loader {
	return func(_ context.Context, profile, configDir string) (*Session, error) {
		if gotProfile != nil {
			*gotProfile = profile
		}
		if gotDir != nil {
			*gotDir = configDir
		}
		return &Session{Service: svc, DefaultSpecialty: def}, nil
	}
}

// run executes the command tree with args and stdin, returning stdout.
func run(t *testing.T, load Loader, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd(load)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return p
}

// --- single-stage commands ---

func TestSummary_Stdin(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockDocumentationService(t)
	svc.EXPECT().Summarize(mock.Anything, "58F. HTN.").Return("summary text").Once()

	var profile, dir string
	out, err := run(t, staticLoader(svc, "", &profile, &dir), "58F. HTN.",
		"summary", "--profile", "dev", "--config-dir", "/etc/clinicaldoc")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if out != "summary text\n" {
		t.Errorf("stdout = %q, want %q", out, "summary text\n")
	}
	if profile != "dev" || dir != "/etc/clinicaldoc" {
		t.Errorf("loader got (%q, %q), want (dev, /etc/clinicaldoc)", profile, dir)
	}
}

func TestNote_FileJSON(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, "data.json", `{"bp": "148/92"}`)

	svc := mocks.NewMockDocumentationService(t)
	svc.EXPECT().GenerateNote(mock.Anything, `{"bp": "148/92"}`).Return("S: ...").Once()

	out, err := run(t, staticLoader(svc, "", nil, nil), "",
		"note", "--file", path, "--format", "json", "--profile", "test")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var got map[string]string
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("stdout is not JSON: %v; out = %s", err, out)
	}
	if got["soap_note"] != "S: ..." {
		t.Errorf("soap_note = %q, want %q", got["soap_note"], "S: ...")
	}
}

func TestCodes_ModelErrorTextExitsZero(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockDocumentationService(t)
	svc.EXPECT().GenerateCodes(mock.Anything, "data").Return("Error generating codes: unavailable").Once()

	out, err := run(t, staticLoader(svc, "", nil, nil), "data", "codes", "--profile", "test")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "Error generating codes: unavailable") {
		t.Errorf("stdout = %q, want stage error text", out)
	}
}

func TestCodes_HelpNamesICD11(t *testing.T) {
	t.Parallel()

	cmd, _, err := NewRootCmd(nil).Find([]string{"codes"})
	if err != nil {
		t.Fatalf("Find(codes) error = %v", err)
	}
	if !strings.Contains(cmd.Short, "ICD-11") || strings.Contains(cmd.Short, "ICD-10") {
		t.Errorf("codes Short = %q, want ICD-11", cmd.Short)
	}
}

func TestSingleStage_InputErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		stdin string
		args  []string
	}{
		{name: "blank stdin", stdin: "  \n", args: []string{"summary"}},
		{name: "missing file", args: []string{"note", "--file", "/nonexistent/record.txt"}},
		{name: "bad format", stdin: "data", args: []string{"codes", "--format", "yaml"}},
		{name: "positional arg", stdin: "data", args: []string{"summary", "extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// No expectations: the service must not be called.
			svc := mocks.NewMockDocumentationService(t)
			args := append(tt.args, "--profile", "test")
			if _, err := run(t, staticLoader(svc, "", nil, nil), tt.stdin, args...); err == nil {
				t.Error("Execute() error = nil, want error")
			}
		})
	}
}

// --- analyze ---

func TestAnalyze_Specialty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		def  clinical.Specialty
		args []string
		want clinical.Specialty
	}{
		{name: "flag wins", def: clinical.SpecialtyPediatrics, args: []string{"--specialty", "Neurology"}, want: clinical.SpecialtyNeurology},
		{name: "profile default", def: clinical.SpecialtyPediatrics, want: clinical.SpecialtyPediatrics},
		{name: "no default", want: clinical.SpecialtyGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewMockDocumentationService(t)
			svc.EXPECT().AnalyzeConversation(mock.Anything, testTranscript, tt.want).Return("analysis").Once()

			args := append([]string{"analyze", "--profile", "test"}, tt.args...)
			out, err := run(t, staticLoader(svc, tt.def, nil, nil), testTranscript, args...)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if out != "analysis\n" {
				t.Errorf("stdout = %q, want %q", out, "analysis\n")
			}
		})
	}
}

func TestAnalyze_UnknownSpecialtySkipsLoad(t *testing.T) {
	t.Parallel()

	loaded := false
	load := func(context.Context, string, string) (*Session, error) {
		loaded = true
		return nil, errors.New("unexpected load")
	}

	_, err := run(t, load, testTranscript, "analyze", "--specialty", "oncology", "--profile", "test")
	if err == nil || !strings.Contains(err.Error(), "oncology") {
		t.Errorf("Execute() error = %v, want unsupported specialty error", err)
	}
	if loaded {
		t.Error("loader called for an invalid specialty")
	}
}

// --- pipeline ---

func TestPipeline_Files(t *testing.T) {
	t.Parallel()

	record := writeTemp(t, "record.txt", "61M, exertional chest pain")
	transcript := writeTemp(t, "transcript.txt", testTranscript)

	want := clinical.PipelineInput{
		PatientRecord: "61M, exertional chest pain",
		Transcript:    testTranscript,
		Specialty:     clinical.SpecialtyCardiology,
	}
	svc := mocks.NewMockDocumentationService(t)
	svc.EXPECT().RunPipeline(mock.Anything, want).Return(clinical.PipelineResult{
		Summary:  "summary",
		Analysis: "analysis",
		SOAPNote: "note",
		Codes:    "codes",
	}, nil).Once()

	out, err := run(t, staticLoader(svc, "", nil, nil), "",
		"pipeline", "--record", record, "--transcript", transcript, "--specialty", "cardiology", "--profile", "test")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, s := range []string{"## Patient Summary\n\nsummary", "## Conversation Analysis\n\nanalysis", "## SOAP Note\n\nnote", "## Billing Codes\n\ncodes"} {
		if !strings.Contains(out, s) {
			t.Errorf("stdout missing %q; out = %s", s, out)
		}
	}
}

func TestPipeline_StdinRecordJSON(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockDocumentationService(t)
	svc.EXPECT().RunPipeline(mock.Anything, clinical.PipelineInput{
		PatientRecord: "record",
		Specialty:     clinical.SpecialtyGeneral,
	}).Return(clinical.PipelineResult{Summary: "a", Analysis: "b", SOAPNote: "c", Codes: "d"}, nil).Once()

	out, err := run(t, staticLoader(svc, "", nil, nil), "record", "pipeline", "--format", "json", "--profile", "test")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	want := "{\n  \"summary\": \"a\",\n  \"analysis\": \"b\",\n  \"soap_note\": \"c\",\n  \"codes\": \"d\"\n}\n"
	if out != want {
		t.Errorf("stdout = %q, want %q", out, want)
	}
}

func TestPipeline_ServiceError(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockDocumentationService(t)
	svc.EXPECT().RunPipeline(mock.Anything, mock.Anything).Return(clinical.PipelineResult{}, errors.New("boom")).Once()

	if _, err := run(t, staticLoader(svc, "", nil, nil), "record", "pipeline", "--profile", "test"); err == nil {
		t.Error("Execute() error = nil, want service error")
	}
}

// --- session lifecycle ---

func TestWithSession_LoadErrorAndClose(t *testing.T) {
	t.Parallel()

	t.Run("load error", func(t *testing.T) {
		t.Parallel()

		load := func(context.Context, string, string) (*Session, error) {
			return nil, errors.New("no config")
		}
		_, err := run(t, load, "record", "summary", "--profile", "missing")
		if err == nil || !strings.Contains(err.Error(), `loading profile "missing"`) {
			t.Errorf("Execute() error = %v, want load error naming the profile", err)
		}
	})

	t.Run("close error is reported", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewMockDocumentationService(t)
		svc.EXPECT().Summarize(mock.Anything, "record").Return("summary").Once()

		closed := false
		load := func(context.Context, string, string) (*Session, error) {
			return &Session{Service: svc, Close: func(context.Context) error {
				closed = true
				return errors.New("flush failed")
			}}, nil
		}

		_, err := run(t, load, "record", "summary", "--profile", "test")
		if !closed {
			t.Error("session was not closed")
		}
		if err == nil || !strings.Contains(err.Error(), "flush failed") {
			t.Errorf("Execute() error = %v, want close error", err)
		}
	})
}

// --- models ---

func catalogLoader(catalog *mocks.MockModelCatalog, configured string) Loader {
	return func(context.Context, string, string) (*Session, error) {
		return &Session{Models: catalog, Model: configured}, nil
	}
}

func TestModels_Text(t *testing.T) {
	t.Parallel()

	catalog := mocks.NewMockModelCatalog(t)
	catalog.EXPECT().ListModels(mock.Anything).Return([]domain.ModelInfo{
		{ID: "gemma2-9b-it", OwnedBy: "Google"},
		{ID: "llama3-70b-8192", OwnedBy: "Meta"},
		{ID: "meditron:7b", SizeBytes: 3_800_000_000},
	}, nil).Once()

	out, err := run(t, catalogLoader(catalog, "llama3-70b-8192"), "", "models", "--profile", "test")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	want := "  gemma2-9b-it  (Google)\n* llama3-70b-8192  (Meta)\n  meditron:7b  (3.8 GB)\n"
	if out != want {
		t.Errorf("stdout = %q, want %q", out, want)
	}
}

func TestModels_JSON(t *testing.T) {
	t.Parallel()

	catalog := mocks.NewMockModelCatalog(t)
	catalog.EXPECT().ListModels(mock.Anything).Return([]domain.ModelInfo{{ID: "llama3:latest", SizeBytes: 42}}, nil).Once()

	out, err := run(t, catalogLoader(catalog, "llama3:latest"), "", "models", "--format", "json", "--profile", "test")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var got modelsOutput
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("stdout is not JSON: %v; out = %s", err, out)
	}
	if got.Configured != "llama3:latest" || len(got.Models) != 1 || got.Models[0] != (modelOutput{ID: "llama3:latest", SizeBytes: 42}) {
		t.Errorf("output = %+v, want configured model and one entry", got)
	}
}

func TestModels_Errors(t *testing.T) {
	t.Parallel()

	t.Run("provider error", func(t *testing.T) {
		t.Parallel()

		catalog := mocks.NewMockModelCatalog(t)
		catalog.EXPECT().ListModels(mock.Anything).Return(nil, domain.ErrForbidden).Once()

		_, err := run(t, catalogLoader(catalog, ""), "", "models", "--profile", "test")
		if !errors.Is(err, domain.ErrForbidden) {
			t.Errorf("Execute() error = %v, want ErrForbidden", err)
		}
	})

	t.Run("no catalog", func(t *testing.T) {
		t.Parallel()

		load := func(context.Context, string, string) (*Session, error) { return &Session{}, nil }
		if _, err := run(t, load, "", "models", "--profile", "test"); err == nil {
			t.Error("Execute() error = nil, want error")
		}
	})
}

func TestPrintModels_Empty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := printModels(&buf, formatText, "llama3", nil); err != nil {
		t.Fatalf("printModels() error = %v", err)
	}
	if buf.String() != "no models available\n" {
		t.Errorf("output = %q, want empty-list message", buf.String())
	}
}

// --- helpers ---

func TestReadInput_TooLarge(t *testing.T) {
	t.Parallel()

	big := strings.Repeat("a", maxInputBytes+1)
	if _, err := readInput(strings.NewReader(big), ""); err == nil {
		t.Error("readInput() error = nil, want size error")
	}
}

func TestResolveSpecialty(t *testing.T) {
	t.Parallel()

	cases := []struct {
		flag     string
		fallback clinical.Specialty
		want     clinical.Specialty
		wantErr  bool
	}{
		{flag: "", fallback: clinical.SpecialtyPsychiatry, want: clinical.SpecialtyPsychiatry},
		{flag: "", fallback: "bogus", want: clinical.SpecialtyGeneral},
		{flag: " Dermatology ", want: clinical.SpecialtyDermatology},
		{flag: "oncology", wantErr: true},
	}
	for _, c := range cases {
		got, err := resolveSpecialty(c.flag, c.fallback)
		if (err != nil) != c.wantErr {
			t.Errorf("resolveSpecialty(%q) error = %v, wantErr %v", c.flag, err, c.wantErr)
			continue
		}
		if got != c.want {
			t.Errorf("resolveSpecialty(%q) = %q, want %q", c.flag, got, c.want)
		}
	}
}
