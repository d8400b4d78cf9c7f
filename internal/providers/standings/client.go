package standings

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/seguro-calcio/roster-service/internal/domain/standings"
)

const defaultTimeout = 10 * time.Second

// Config controls how the standings client reaches the league-table page.
type Config struct {
	URL        string
	HTTPClient *http.Client
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client scrapes the published league table into standings rows.
type Client struct {
	url        string
	httpClient httpDoer
}

// NewClient constructs a standings client with the provided configuration.
func NewClient(cfg Config) *Client {
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{url: cfg.URL, httpClient: client}
}

// FetchStandings downloads the league-table page and extracts its rows.
func (c *Client) FetchStandings(ctx context.Context) ([]standings.Row, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("standings: unexpected status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("standings: parse page: %w", err)
	}

	rows := parseTable(doc)
	if len(rows) == 0 {
		return nil, fmt.Errorf("standings: no table rows found at %s", c.url)
	}
	return rows, nil
}

// parseTable walks the first table on the page. Expected column order:
// position, team, points, played, won, drawn, lost, goals for, goals
// against. Rows with fewer cells or a non-numeric position are skipped.
func parseTable(doc *goquery.Document) []standings.Row {
	var rows []standings.Row

	doc.Find("table").First().Find("tr").Each(func(i int, tr *goquery.Selection) {
		cells := tr.Find("td")
		if cells.Length() < 9 {
			return
		}

		text := func(idx int) string {
			return strings.TrimSpace(cells.Eq(idx).Text())
		}

		position, ok := atoi(text(0))
		if !ok {
			return
		}
		row := standings.Row{
			Position: position,
			Team:     text(1),
		}
		row.Points, _ = atoi(text(2))
		row.Played, _ = atoi(text(3))
		row.Won, _ = atoi(text(4))
		row.Drawn, _ = atoi(text(5))
		row.Lost, _ = atoi(text(6))
		row.GoalsFor, _ = atoi(text(7))
		row.GoalsAgainst, _ = atoi(text(8))
		rows = append(rows, row)
	})

	return rows
}

func atoi(value string) (int, bool) {
	n := 0
	if value == "" {
		return 0, false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}
