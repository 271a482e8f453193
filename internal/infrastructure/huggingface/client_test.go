package huggingface

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"modelhub-server/internal/utils/platformerrors"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(Config{
		BaseURL: server.URL,
		Timeout: 5 * time.Second,
	}, zerolog.Nop())
	return client, server
}

func TestFetchModelSuccess(t *testing.T) {
	client, server := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/models/acme/demo-llm" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"acme/demo-llm","author":"acme","tags":["text-generation"],"pipeline_tag":"text-generation","likes":7,"gated":true}`))
	}))

	record, err := client.FetchModel(context.Background(), "acme/demo-llm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.ID != "acme/demo-llm" || record.Author != "acme" {
		t.Fatalf("record not decoded: %+v", record)
	}
	if !record.Gated {
		t.Fatal("expected gated flag decoded")
	}
	if record.URL != server.URL+"/acme/demo-llm" {
		t.Fatalf("page URL not filled: %s", record.URL)
	}
}

func TestFetchModelNotFound(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))

	_, err := client.FetchModel(context.Background(), "acme/missing")
	if err == nil {
		t.Fatal("expected error")
	}
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound) {
		t.Fatalf("expected not-found type, got %v", err)
	}
}

func TestFetchModelServerErrorIsExternal(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	_, err := client.FetchModel(context.Background(), "acme/demo-llm")
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeExternal) {
		t.Fatalf("expected external error, got %v", err)
	}
}

func TestFetchPapersParsesAnchors(t *testing.T) {
	page := `<html><body>
		<a class="paper-link" href="/papers/2501.00001">Attention Is Still All You Need</a>
		<a class="other-link" href="/nope">ignored</a>
		<div><a class="btn paper-link" href="/papers/2501.00002"> Second Paper </a></div>
	</body></html>`
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(page))
	}))

	fragment := client.FetchPapers(context.Background(), "acme/demo-llm")
	if fragment.Err != nil {
		t.Fatalf("unexpected error: %v", fragment.Err)
	}
	if len(fragment.Value) != 2 {
		t.Fatalf("expected 2 papers, got %+v", fragment.Value)
	}
	if fragment.Value[0].Title != "Attention Is Still All You Need" || fragment.Value[0].URL != "/papers/2501.00001" {
		t.Fatalf("unexpected first paper: %+v", fragment.Value[0])
	}
	if fragment.Value[1].Title != "Second Paper" {
		t.Fatalf("title not trimmed: %q", fragment.Value[1].Title)
	}
}

func TestFetchPapersFailureYieldsDefault(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))

	fragment := client.FetchPapers(context.Background(), "acme/demo-llm")
	if fragment.Err == nil {
		t.Fatal("expected recorded error")
	}
	if fragment.Value != nil {
		t.Fatalf("expected empty default, got %+v", fragment.Value)
	}
}

func TestFetchCitationExtractsBibtex(t *testing.T) {
	readme := "# Model\n\n```bibtex\n@misc{demo2025,\n  title={Demo}\n}\n```\n"
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/acme/demo-llm/raw/main/README.md" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(readme))
	}))

	fragment := client.FetchCitation(context.Background(), "acme/demo-llm")
	if fragment.Err != nil {
		t.Fatalf("unexpected error: %v", fragment.Err)
	}
	if fragment.Value == nil {
		t.Fatal("expected citation")
	}
	want := "@misc{demo2025,\n  title={Demo}\n}"
	if *fragment.Value != want {
		t.Fatalf("unexpected citation:\n%s", *fragment.Value)
	}
}

func TestFetchCitationPlainCodeFence(t *testing.T) {
	readme := "```\n@article{plain}\n```"
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(readme))
	}))

	fragment := client.FetchCitation(context.Background(), "acme/demo-llm")
	if fragment.Err != nil || fragment.Value == nil {
		t.Fatalf("expected citation from plain fence: value=%v err=%v", fragment.Value, fragment.Err)
	}
	if *fragment.Value != "@article{plain}" {
		t.Fatalf("unexpected citation %q", *fragment.Value)
	}
}

func TestFetchCitationMissingBlockIsSuccess(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("# A card with no citation"))
	}))

	fragment := client.FetchCitation(context.Background(), "acme/demo-llm")
	if fragment.Err != nil {
		t.Fatalf("a card without bibtex is not a failure: %v", fragment.Err)
	}
	if fragment.Value != nil {
		t.Fatalf("expected nil citation, got %q", *fragment.Value)
	}
}

func TestFetchTreeAndSpecs(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/models/acme/demo-llm/tree":
			w.Write([]byte(`{"adapters":["acme/lora"],"finetunes":[],"merges":[],"quantizations":["acme/q4"]}`))
		case "/api/models/acme/demo-llm/specs":
			w.Write([]byte(`{"model_size":"7B","parameters":7000000000,"architecture":"llama","safetensors":true}`))
		default:
			http.NotFound(w, r)
		}
	}))

	tree := client.FetchTree(context.Background(), "acme/demo-llm")
	if tree.Err != nil {
		t.Fatalf("unexpected tree error: %v", tree.Err)
	}
	if len(tree.Value.Adapters) != 1 || len(tree.Value.Quantizations) != 1 {
		t.Fatalf("tree not decoded: %+v", tree.Value)
	}

	specs := client.FetchTechnicalDetails(context.Background(), "acme/demo-llm")
	if specs.Err != nil {
		t.Fatalf("unexpected specs error: %v", specs.Err)
	}
	if specs.Value.ModelSize != "7B" || !specs.Value.Safetensors {
		t.Fatalf("specs not decoded: %+v", specs.Value)
	}
	if specs.Value.Parameters == nil || *specs.Value.Parameters != 7000000000 {
		t.Fatalf("parameters not decoded: %+v", specs.Value.Parameters)
	}
}

func TestFetchDownloads(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"downloads":12345}`))
	}))

	fragment := client.FetchDownloads(context.Background(), "acme/demo-llm")
	if fragment.Err != nil {
		t.Fatalf("unexpected error: %v", fragment.Err)
	}
	if fragment.Value.Downloads != 12345 {
		t.Fatalf("downloads not decoded: %+v", fragment.Value)
	}
}

func TestListerMapsSummaries(t *testing.T) {
	client, server := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/models" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("limit") != "50" {
			t.Fatalf("limit not forwarded: %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"acme/a","author":"acme","downloads":10,"likes":2,"tags":["chat"]}]`))
	}))

	lister := NewLister(client, 50)
	summaries, err := lister.ListModels(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("expected one summary, got %d", len(summaries))
	}
	if summaries[0].ID != "acme/a" || summaries[0].Downloads != 10 {
		t.Fatalf("summary not mapped: %+v", summaries[0])
	}
	if summaries[0].URL != server.URL+"/acme/a" {
		t.Fatalf("page URL not built: %s", summaries[0].URL)
	}
}
