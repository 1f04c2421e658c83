// Package sheets reads lyrics from a Google Sheet using a service account.
package sheets

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/garrettladley/lyricboard/internal/lyrics"
	"github.com/garrettladley/lyricboard/internal/xhttp"
	"github.com/garrettladley/lyricboard/internal/xslog"
)

const DefaultRange = "A:A"

// Source returns the first cell of every row in a range. Blank rows are
// kept so callers can see the sheet as-is; lyrics.Selector filters them.
type Source struct {
	service *sheets.Service
	sheetID string
	rng     string
}

var _ lyrics.Source = (*Source)(nil)

// NewFromCredentialsFile authenticates with a service account key file.
// httpClient carries both token and Sheets requests, and its Timeout bounds
// each of them; nil uses xhttp defaults. Token requests share ctx, so it
// should outlive the Source.
func NewFromCredentialsFile(ctx context.Context, httpClient *http.Client, credentialsFile, sheetID, rng string, opts ...option.ClientOption) (*Source, error) {
	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("unable to read service account file: %w", err)
	}

	cfg, err := google.JWTConfigFromJSON(data, sheets.SpreadsheetsReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("unable to parse service account: %w", err)
	}

	if httpClient == nil {
		httpClient = xhttp.NewHTTPClient()
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, httpClient)
	client := cfg.Client(ctx)
	client.Timeout = httpClient.Timeout

	return New(ctx, sheetID, rng, append([]option.ClientOption{option.WithHTTPClient(client)}, opts...)...)
}

func New(ctx context.Context, sheetID, rng string, opts ...option.ClientOption) (*Source, error) {
	if sheetID == "" {
		return nil, fmt.Errorf("sheet id is required")
	}
	if rng == "" {
		rng = DefaultRange
	}

	service, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to create Sheets service: %w", err)
	}

	return &Source{service: service, sheetID: sheetID, rng: rng}, nil
}

func (s *Source) Lyrics(ctx context.Context) ([]string, error) {
	start := time.Now()

	resp, err := s.service.Spreadsheets.Values.Get(s.sheetID, s.rng).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet range %q: %w", s.rng, err)
	}

	rows := make([]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		if len(row) == 0 || row[0] == nil {
			rows = append(rows, "")
			continue
		}
		rows = append(rows, fmt.Sprint(row[0]))
	}

	xslog.FromContext(ctx).DebugContext(ctx, "read lyric sheet",
		xslog.Rows(len(rows)),
		xslog.Duration(time.Since(start)))

	return rows, nil
}
