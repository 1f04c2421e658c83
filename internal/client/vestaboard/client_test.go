package vestaboard

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	go_json "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"

	"github.com/garrettladley/lyricboard/internal/board"
	"github.com/garrettladley/lyricboard/internal/xerrors"
	"github.com/garrettladley/lyricboard/internal/xhttp"
)

type captured struct {
	method string
	key    string
	body   []byte
}

func newServer(t *testing.T, status int, respBody string) (*Client, *captured) {
	t.Helper()
	got := &captured{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.method = r.Method
		got.key = r.Header.Get(xhttp.XVestaboardReadWriteKey)
		got.body, _ = io.ReadAll(r.Body)
		w.WriteHeader(status)
		_, _ = io.WriteString(w, respBody)
	}))
	t.Cleanup(srv.Close)
	return NewClient("rw-key", WithURL(srv.URL+"/"), WithHTTPClient(srv.Client())), got
}

func sampleGrid() board.Grid {
	var g board.Grid
	copy(g[2][:], []int{0, 0, 0, 0, 0, 0, 0, 0, 0, 12, 15, 22, 5})
	return g
}

func TestSendGrid(t *testing.T) {
	t.Parallel()

	client, got := newServer(t, http.StatusOK, `{"status":"ok","id":"msg-1","created":1760600000000}`)
	grid := sampleGrid()

	ack, err := client.Send(t.Context(), grid)
	if err != nil {
		t.Fatalf("Send() error: %v", err)
	}

	if got.method != http.MethodPost {
		t.Errorf("method = %s, want POST", got.method)
	}
	if got.key != "rw-key" {
		t.Errorf("read/write key = %q, want rw-key", got.key)
	}

	var sent [][]int
	if err := go_json.Unmarshal(got.body, &sent); err != nil {
		t.Fatalf("request body is not a grid: %v (%s)", err, got.body)
	}
	if diff := cmp.Diff(grid.Slice(), sent); diff != "" {
		t.Errorf("sent grid mismatch (-want +got):\n%s", diff)
	}

	want := &Ack{StatusCode: http.StatusOK, Status: "ok", ID: "msg-1", Created: 1760600000000}
	if diff := cmp.Diff(want, ack); diff != "" {
		t.Errorf("Ack mismatch (-want +got):\n%s", diff)
	}
}

func TestSendText(t *testing.T) {
	t.Parallel()

	client, got := newServer(t, http.StatusOK, "")

	if _, err := client.SendText(t.Context(), "Lean on me & you"); err != nil {
		t.Fatalf("SendText() error: %v", err)
	}
	if want := `{"text":"Lean on me & you"}`; string(got.body) != want {
		t.Errorf("body = %s, want %s", got.body, want)
	}
}

func TestSendAcceptsAny2xx(t *testing.T) {
	t.Parallel()

	for _, status := range []int{http.StatusOK, http.StatusCreated, http.StatusNoContent} {
		client, _ := newServer(t, status, "")
		ack, err := client.Send(t.Context(), sampleGrid())
		if err != nil {
			t.Errorf("Send() with %d error: %v", status, err)
			continue
		}
		if ack.StatusCode != status {
			t.Errorf("Ack.StatusCode = %d, want %d", ack.StatusCode, status)
		}
	}
}

func TestSendIgnoresUnexpectedAckBody(t *testing.T) {
	t.Parallel()

	client, _ := newServer(t, http.StatusOK, "not json")
	if _, err := client.Send(t.Context(), sampleGrid()); err != nil {
		t.Errorf("Send() error: %v", err)
	}
}

func TestSendRejected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"message":"Unauthorized"}`},
		{name: "rate limited", status: http.StatusServiceUnavailable, body: "slow down"},
		{name: "server error", status: http.StatusInternalServerError, body: "oops"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			client, _ := newServer(t, tt.status, tt.body)

			_, err := client.Send(t.Context(), sampleGrid())
			appErr := xerrors.As(err)
			if appErr == nil || appErr.Kind != xerrors.KindDelivery {
				t.Fatalf("Send() error = %v, want delivery error", err)
			}
			if appErr.StatusCode != tt.status {
				t.Errorf("StatusCode = %d, want %d", appErr.StatusCode, tt.status)
			}
			if appErr.Body != tt.body {
				t.Errorf("Body = %q, want %q", appErr.Body, tt.body)
			}
		})
	}
}

func TestSendUnreachable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewClient("rw-key", WithURL(url))
	_, err := client.Send(t.Context(), sampleGrid())
	if !xerrors.IsKind(err, xerrors.KindDelivery) {
		t.Fatalf("Send() error = %v, want delivery error", err)
	}
	if !strings.Contains(err.Error(), "unreachable") {
		t.Errorf("error %q does not mention unreachable", err)
	}
}

func TestSendWithoutKey(t *testing.T) {
	t.Parallel()

	client, got := newServer(t, http.StatusOK, "")
	client.apiKey = ""

	_, err := client.Send(t.Context(), sampleGrid())
	if !xerrors.IsKind(err, xerrors.KindConfiguration) {
		t.Fatalf("Send() error = %v, want configuration error", err)
	}
	if got.method != "" {
		t.Error("request sent without a key")
	}
}
