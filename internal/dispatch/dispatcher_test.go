package dispatch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	go_json "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"

	"github.com/garrettladley/lyricboard/internal/board"
	"github.com/garrettladley/lyricboard/internal/client/vbml"
	"github.com/garrettladley/lyricboard/internal/client/vestaboard"
	"github.com/garrettladley/lyricboard/internal/lyrics"
	"github.com/garrettladley/lyricboard/internal/xerrors"
)

type recorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *recorder) add(call string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, call)
}

func (r *recorder) get() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

type fakeSelector struct {
	rec *recorder
	sel lyrics.Selection
	err error
}

func (f *fakeSelector) Select(context.Context) (lyrics.Selection, error) {
	f.rec.add("select")
	return f.sel, f.err
}

type fakeFormatter struct {
	rec  *recorder
	grid board.Grid
	err  error
	got  string
}

func (f *fakeFormatter) Format(_ context.Context, text string) (board.Grid, error) {
	f.rec.add("format")
	f.got = text
	return f.grid, f.err
}

type fakeDisplay struct {
	rec  *recorder
	err  error
	grid board.Grid
	text string
}

func (f *fakeDisplay) Send(_ context.Context, grid board.Grid) (*vestaboard.Ack, error) {
	f.rec.add("send")
	f.grid = grid
	if f.err != nil {
		return nil, f.err
	}
	return &vestaboard.Ack{StatusCode: http.StatusOK}, nil
}

func (f *fakeDisplay) SendText(_ context.Context, text string) (*vestaboard.Ack, error) {
	f.rec.add("send_text")
	f.text = text
	if f.err != nil {
		return nil, f.err
	}
	return &vestaboard.Ack{StatusCode: http.StatusOK}, nil
}

func testGrid() board.Grid {
	var g board.Grid
	copy(g[2][:], []int{0, 0, 0, 0, 0, 0, 0, 0, 8, 9})
	return g
}

func fixedRunID() string { return "run-1" }

func TestRunSuccess(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	sel := &fakeSelector{rec: rec, sel: lyrics.Selection{Lyric: "hi", Origin: lyrics.OriginStatic}}
	fmtr := &fakeFormatter{rec: rec, grid: testGrid()}
	disp := &fakeDisplay{rec: rec}

	result, err := New(sel, fmtr, disp, WithRunIDFunc(fixedRunID)).Run(t.Context())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if diff := cmp.Diff([]string{"select", "format", "send"}, rec.get()); diff != "" {
		t.Errorf("call order mismatch (-want +got):\n%s", diff)
	}
	if fmtr.got != "hi" {
		t.Errorf("formatter got %q, want selected lyric", fmtr.got)
	}
	if disp.grid != testGrid() {
		t.Error("display did not receive the formatted grid")
	}

	want := &Result{
		RunID:  "run-1",
		Lyric:  "hi",
		Origin: lyrics.OriginStatic,
		Grid:   testGrid(),
		Ack:    &vestaboard.Ack{StatusCode: http.StatusOK},
	}
	if diff := cmp.Diff(want, result); diff != "" {
		t.Errorf("Result mismatch (-want +got):\n%s", diff)
	}
}

func TestRunShortCircuits(t *testing.T) {
	t.Parallel()

	selectErr := xerrors.Configuration(xerrors.WithMessage("no lyrics"))
	formatErr := xerrors.Formatting(xerrors.WithStatus(http.StatusBadRequest))
	sendErr := xerrors.Delivery(xerrors.WithStatus(http.StatusUnauthorized))

	tests := []struct {
		name      string
		selectErr error
		formatErr error
		sendErr   error
		wantCalls []string
		wantKind  xerrors.Kind
	}{
		{
			name:      "select fails",
			selectErr: selectErr,
			wantCalls: []string{"select"},
			wantKind:  xerrors.KindConfiguration,
		},
		{
			name:      "format fails",
			formatErr: formatErr,
			wantCalls: []string{"select", "format"},
			wantKind:  xerrors.KindFormatting,
		},
		{
			name:      "send fails",
			sendErr:   sendErr,
			wantCalls: []string{"select", "format", "send"},
			wantKind:  xerrors.KindDelivery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := &recorder{}
			d := New(
				&fakeSelector{rec: rec, sel: lyrics.Selection{Lyric: "hi"}, err: tt.selectErr},
				&fakeFormatter{rec: rec, grid: testGrid(), err: tt.formatErr},
				&fakeDisplay{rec: rec, err: tt.sendErr},
			)

			result, err := d.Run(t.Context())
			if result != nil {
				t.Errorf("Run() result = %+v, want nil", result)
			}
			if !xerrors.IsKind(err, tt.wantKind) {
				t.Errorf("Run() error = %v, want %s error", err, tt.wantKind)
			}
			if diff := cmp.Diff(tt.wantCalls, rec.get()); diff != "" {
				t.Errorf("call order mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPreviewDoesNotSend(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	d := New(
		&fakeSelector{rec: rec, sel: lyrics.Selection{Lyric: "hi", Origin: lyrics.OriginSheet}},
		&fakeFormatter{rec: rec, grid: testGrid()},
		&fakeDisplay{rec: rec},
	)

	result, err := d.Preview(t.Context())
	if err != nil {
		t.Fatalf("Preview() error: %v", err)
	}
	if diff := cmp.Diff([]string{"select", "format"}, rec.get()); diff != "" {
		t.Errorf("call order mismatch (-want +got):\n%s", diff)
	}
	if result.Grid != testGrid() || result.Origin != lyrics.OriginSheet || result.Ack != nil {
		t.Errorf("Preview() result = %+v", result)
	}
	if result.RunID == "" {
		t.Error("Preview() result has no run ID")
	}
}

func TestSendText(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	disp := &fakeDisplay{rec: rec}
	d := New(&fakeSelector{rec: rec}, &fakeFormatter{rec: rec}, disp)

	if _, err := d.SendText(t.Context(), "good morning"); err != nil {
		t.Fatalf("SendText() error: %v", err)
	}
	if diff := cmp.Diff([]string{"send_text"}, rec.get()); diff != "" {
		t.Errorf("call order mismatch (-want +got):\n%s", diff)
	}
	if disp.text != "good morning" {
		t.Errorf("display got %q", disp.text)
	}

	_, err := d.SendText(t.Context(), "  ")
	if !xerrors.IsKind(err, xerrors.KindConfiguration) {
		t.Errorf("SendText(blank) error = %v, want configuration error", err)
	}
	if len(rec.get()) != 1 {
		t.Error("blank text reached the display")
	}

	disp.err = errors.New("boom")
	if _, err := d.SendText(t.Context(), "x"); err == nil {
		t.Error("SendText() error = nil, want display error")
	}
}

// TestRunEndToEnd wires the real clients to fake services and checks the
// formatting service is called once, then the display once.
func TestRunEndToEnd(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	grid := testGrid()

	vbmlSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		rec.add("format")
		w.Header().Set("Content-Type", "application/json")
		_ = go_json.NewEncoder(w).Encode(grid.Slice())
	}))
	t.Cleanup(vbmlSrv.Close)

	var sent [][]int
	displaySrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.add("send")
		_ = go_json.NewDecoder(r.Body).Decode(&sent)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(displaySrv.Close)

	d := New(
		lyrics.NewSelector(lyrics.Static),
		vbml.NewClient(vbml.WithURL(vbmlSrv.URL)),
		vestaboard.NewClient("rw-key", vestaboard.WithURL(displaySrv.URL)),
	)

	result, err := d.Run(t.Context())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if diff := cmp.Diff([]string{"format", "send"}, rec.get()); diff != "" {
		t.Errorf("service call order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(grid.Slice(), sent); diff != "" {
		t.Errorf("display received a different grid (-want +got):\n%s", diff)
	}
	if result.Origin != lyrics.OriginStatic {
		t.Errorf("Origin = %q, want static", result.Origin)
	}
}
