package sink

import (
	"io"
	"net/http"
	"strings"
	"testing"
)

func TestDebugWindow_ServesEscapedReports(t *testing.T) {
	t.Parallel()

	d := NewDebugWindow()
	t.Cleanup(func() { _ = d.Close() })

	d.WriteMessage("<script>alert(1)</script>")
	d.WriteMessage("plain")

	u := d.URL()
	if u == "" {
		t.Fatalf("display surface did not open")
	}

	resp, err := http.Get(u)
	if err != nil {
		t.Fatalf("GET %s: %v", u, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}

	got := string(body)
	if strings.Contains(got, "<script>") {
		t.Fatalf("body=%q, want HTML-escaped output", got)
	}
	if !strings.Contains(got, "&lt;script&gt;alert(1)&lt;/script&gt;") {
		t.Fatalf("body=%q, want escaped report", got)
	}
	if !strings.Contains(got, "plain") {
		t.Fatalf("body=%q, want second report", got)
	}
}

func TestDebugWindow_RejectsWrites(t *testing.T) {
	t.Parallel()

	d := NewDebugWindow()
	t.Cleanup(func() { _ = d.Close() })

	d.WriteMessage("x")

	resp, err := http.Post(d.URL(), "text/plain", strings.NewReader("y"))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("status=%d, want 405", resp.StatusCode)
	}
}

func TestDebugWindow_URLEmptyBeforeFirstWrite(t *testing.T) {
	t.Parallel()

	d := NewDebugWindow()
	if got := d.URL(); got != "" {
		t.Fatalf("URL=%q, want empty before first report", got)
	}
}
