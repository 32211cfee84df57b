// ABOUTME: Tests for the typed ReadsUtils operations against a mocked service
// ABOUTME: Asserts wire method names, typed results, and zero-I/O validation failures

package readsutils

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ugswork/ReadsUtils/internal/auth"
	"github.com/ugswork/ReadsUtils/pkg/jsonrpc"
)

// rpcHandler returns a handler that asserts the wire method and replies with
// the given ordered result values (already JSON-encoded).
func rpcHandler(t *testing.T, wantMethod string, results ...string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		var req jsonrpc.Request
		data, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(data, &req); err != nil {
			t.Errorf("bad request envelope: %v", err)
		}
		if req.Method != wantMethod {
			t.Errorf("got wire method %q, want %q", req.Method, wantMethod)
		}
		if req.Version != "1.1" {
			t.Errorf("got protocol version %q, want 1.1", req.Version)
		}
		body := `{"version":"1.1","result":[`
		for i, res := range results {
			if i > 0 {
				body += ","
			}
			body += res
		}
		body += `]}`
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}
}

func newTestClient(t *testing.T, h http.Handler, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := New(srv.URL, auth.Static("test-token"), opts...)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return c
}

// failingTransport fails the test on any network use.
type failingTransport struct{ t *testing.T }

func (f failingTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	f.t.Errorf("unexpected network I/O: %s %s", r.Method, r.URL)
	return nil, errors.New("network disabled")
}

func newOfflineClient(t *testing.T) *Client {
	t.Helper()
	c, err := New("http://readsutils.invalid", auth.Static("test-token"),
		WithHTTPClient(&http.Client{Transport: failingTransport{t: t}}))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return c
}

func TestNewRequiresURL(t *testing.T) {
	t.Parallel()

	if _, err := New("", auth.Static("tok")); err == nil {
		t.Error("expected error for empty service URL")
	}
}

func TestNewRequiresTokenProvider(t *testing.T) {
	t.Parallel()

	if _, err := New("http://readsutils.invalid", nil); err == nil {
		t.Error("expected error for nil token provider")
	}
}

func TestNewFailsWithoutToken(t *testing.T) {
	t.Parallel()

	if _, err := New("http://readsutils.invalid", auth.Static("")); err == nil {
		t.Error("expected construction to fail when no token can be obtained")
	}
}

func TestValidateFASTQ(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, rpcHandler(t, "ReadsUtils.validateFASTQ",
		`[{"validated":true},{"validated":false}]`))

	out, err := c.ValidateFASTQ(context.Background(), []ValidateFASTQParams{
		{FilePath: "/scratch/a.fq"},
		{FilePath: "/scratch/b.fq", Interleaved: true},
	})
	if err != nil {
		t.Fatalf("ValidateFASTQ() error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d results, want 2", len(out))
	}
	if !out[0].Validated || out[1].Validated {
		t.Errorf("got results %+v, want [validated, not validated]", out)
	}
}

func TestValidateFASTQArgumentErrors(t *testing.T) {
	t.Parallel()

	c := newOfflineClient(t)

	cases := []struct {
		name   string
		params []ValidateFASTQParams
	}{
		{"empty list", nil},
		{"blank file path", []ValidateFASTQParams{{FilePath: ""}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := c.ValidateFASTQ(context.Background(), tc.params)
			var argErr *ArgumentError
			if !errors.As(err, &argErr) {
				t.Fatalf("got %T (%v), want *ArgumentError", err, err)
			}
			if argErr.Method != "validateFASTQ" {
				t.Errorf("got method %q, want validateFASTQ", argErr.Method)
			}
		})
	}
}

func TestUploadReads(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, rpcHandler(t, "ReadsUtils.upload_reads", `{"obj_ref":"7/11/2"}`))

	out, err := c.UploadReads(context.Background(), UploadReadsParams{
		FwdID:          "shock-abc",
		WorkspaceName:  "my_workspace",
		Name:           "my_reads",
		SequencingTech: "Illumina",
	})
	if err != nil {
		t.Fatalf("UploadReads() error: %v", err)
	}
	if out.ObjRef != "7/11/2" {
		t.Errorf("got obj_ref %q, want %q", out.ObjRef, "7/11/2")
	}
}

func TestUploadReadsArgumentErrors(t *testing.T) {
	t.Parallel()

	c := newOfflineClient(t)

	base := UploadReadsParams{
		FwdID:          "shock-abc",
		WorkspaceName:  "ws",
		Name:           "obj",
		SequencingTech: "Illumina",
	}

	cases := []struct {
		name   string
		mutate func(*UploadReadsParams)
	}{
		{"no fwd source", func(p *UploadReadsParams) { p.FwdID = "" }},
		{"two fwd sources", func(p *UploadReadsParams) { p.FwdFile = "/tmp/reads.fq" }},
		{"mismatched rev source", func(p *UploadReadsParams) { p.RevFile = "/tmp/rev.fq" }},
		{"no workspace", func(p *UploadReadsParams) { p.WorkspaceName = "" }},
		{"both workspaces", func(p *UploadReadsParams) { p.WorkspaceID = 4 }},
		{"no object", func(p *UploadReadsParams) { p.Name = "" }},
		{"no sequencing tech", func(p *UploadReadsParams) { p.SequencingTech = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := base
			tc.mutate(&p)
			_, err := c.UploadReads(context.Background(), p)
			var argErr *ArgumentError
			if !errors.As(err, &argErr) {
				t.Fatalf("got %T (%v), want *ArgumentError", err, err)
			}
		})
	}
}

func TestDownloadReads(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, rpcHandler(t, "ReadsUtils.download_reads",
		`{"files":{"7/11/2":{"files":{"fwd":"/scratch/f.fq","otype":"interleaved","type":"interleaved"},"ref":"7/11/2","sequencing_tech":"Illumina","gc_content":0.51}}}`))

	out, err := c.DownloadReads(context.Background(), DownloadReadsParams{
		ReadLibraries: []string{"7/11/2"},
		Interleaved:   TernTrue,
	})
	if err != nil {
		t.Fatalf("DownloadReads() error: %v", err)
	}
	lib, ok := out.Files["7/11/2"]
	if !ok {
		t.Fatalf("missing library in result: %+v", out.Files)
	}
	if lib.Files.Fwd != "/scratch/f.fq" {
		t.Errorf("got fwd %q, want /scratch/f.fq", lib.Files.Fwd)
	}
	if lib.GCContent == nil || *lib.GCContent != 0.51 {
		t.Errorf("got gc_content %v, want 0.51", lib.GCContent)
	}
}

func TestDownloadReadsArgumentErrors(t *testing.T) {
	t.Parallel()

	c := newOfflineClient(t)

	cases := []struct {
		name   string
		params DownloadReadsParams
	}{
		{"no libraries", DownloadReadsParams{}},
		{"blank reference", DownloadReadsParams{ReadLibraries: []string{""}}},
		{"bad tern", DownloadReadsParams{ReadLibraries: []string{"1/2/3"}, Interleaved: Tern("maybe")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := c.DownloadReads(context.Background(), tc.params)
			var argErr *ArgumentError
			if !errors.As(err, &argErr) {
				t.Fatalf("got %T (%v), want *ArgumentError", err, err)
			}
		})
	}
}

func TestExportReads(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, rpcHandler(t, "ReadsUtils.export_reads", `{"shock_id":"node-123"}`))

	out, err := c.ExportReads(context.Background(), ExportParams{InputRef: "7/11/2"})
	if err != nil {
		t.Fatalf("ExportReads() error: %v", err)
	}
	if out.ShockID != "node-123" {
		t.Errorf("got shock_id %q, want node-123", out.ShockID)
	}
}

func TestExportReadsRequiresInputRef(t *testing.T) {
	t.Parallel()

	c := newOfflineClient(t)
	_, err := c.ExportReads(context.Background(), ExportParams{})
	var argErr *ArgumentError
	if !errors.As(err, &argErr) {
		t.Fatalf("got %T (%v), want *ArgumentError", err, err)
	}
}

func TestStatus(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, rpcHandler(t, "ReadsUtils.status",
		`{"state":"OK","message":"","version":"1.3.2","git_url":"https://github.com/ugswork/ReadsUtils","git_commit_hash":"deadbeef"}`))

	st, err := c.Status(context.Background())
	if err != nil {
		t.Fatalf("Status() error: %v", err)
	}
	if st.State != "OK" {
		t.Errorf("got state %q, want OK", st.State)
	}
	if st.Version != "1.3.2" {
		t.Errorf("got version %q, want 1.3.2", st.Version)
	}
}

func TestVersion(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, rpcHandler(t, "ReadsUtils.version", `"1.3.2"`))

	v, err := c.Version(context.Background())
	if err != nil {
		t.Fatalf("Version() error: %v", err)
	}
	if v != "1.3.2" {
		t.Errorf("got version %q, want 1.3.2", v)
	}
}

func TestServerErrorSurfacesAsRPCError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"code":-32000,"message":"boom","name":"JSONRPCError"}}`))
	}))
	t.Cleanup(srv.Close)

	c, err := New(srv.URL, auth.Static("test-token"))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	_, err = c.Status(context.Background())
	var rpcErr *jsonrpc.RPCError
	if !errors.As(err, &rpcErr) {
		t.Fatalf("got %T (%v), want *jsonrpc.RPCError", err, err)
	}
	if rpcErr.Code != -32000 || rpcErr.Message != "boom" {
		t.Errorf("got code=%d message=%q, want -32000/boom", rpcErr.Code, rpcErr.Message)
	}
}
