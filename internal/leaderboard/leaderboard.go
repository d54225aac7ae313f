// Package leaderboard serves the contributor ranking shown on the
// leaderboard page. Rows come from the GitHub contributors API and are
// cached for a day; when the fetch fails the service falls back to a
// CSV snapshot shipped with the data directory, cached only briefly so
// the remote source is retried soon after upstream recovers.
package leaderboard

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/ded-grl/substancesearch/internal/util"
	"github.com/ded-grl/substancesearch/pkg/logger"

	"golang.org/x/sync/singleflight"
)

const (
	remoteCacheTTL   = 24 * time.Hour
	fallbackCacheTTL = time.Minute
	fetchTimeout     = 10 * time.Second
	fetchRetries     = 2
)

// Row is one rendered leaderboard entry. Rank is a display string because
// the top three ranks carry a medal emoji.
type Row struct {
	Rank          string `json:"rank"`
	Contributor   string `json:"contributor"`
	Contributions int    `json:"contributions"`
}

// ServiceParams configures a leaderboard Service.
type ServiceParams struct {
	APIURL       string
	AuthToken    string
	FallbackPath string
	Client       *http.Client
}

// Service fetches, caches and formats contributor rankings. Safe for
// concurrent use; concurrent cache misses are collapsed into a single
// upstream fetch.
type Service struct {
	apiURL   string
	token    string
	fallback string
	client   *http.Client

	mu      sync.RWMutex
	rows    []Row
	expires time.Time

	group singleflight.Group
}

// NewService creates a leaderboard service.
func NewService(params ServiceParams) *Service {
	client := params.Client
	if client == nil {
		client = &http.Client{Timeout: fetchTimeout}
	}
	return &Service{
		apiURL:   params.APIURL,
		token:    params.AuthToken,
		fallback: params.FallbackPath,
		client:   client,
	}
}

// Rows returns the current leaderboard, refreshing the cache if it has
// expired.
func (s *Service) Rows(ctx context.Context) ([]Row, error) {
	s.mu.RLock()
	if time.Now().Before(s.expires) {
		rows := s.rows
		s.mu.RUnlock()
		return rows, nil
	}
	s.mu.RUnlock()

	result, err, _ := s.group.Do("rows", func() (any, error) {
		s.mu.RLock()
		if time.Now().Before(s.expires) {
			rows := s.rows
			s.mu.RUnlock()
			return rows, nil
		}
		s.mu.RUnlock()

		return s.refresh(ctx)
	})
	if err != nil {
		return nil, err
	}
	return result.([]Row), nil
}

func (s *Service) refresh(ctx context.Context) ([]Row, error) {
	rows, err := util.RetryWithContext(ctx, fetchRetries, s.fetchRemote)
	if err == nil {
		s.store(rows, remoteCacheTTL)
		return rows, nil
	}

	logger.Error("Failed to fetch contribution data", "err", err)
	logger.Error("Using cached leaderboard data instead")

	rows, err = s.loadFallback()
	if err != nil {
		return nil, err
	}
	s.store(rows, fallbackCacheTTL)
	return rows, nil
}

func (s *Service) store(rows []Row, ttl time.Duration) {
	s.mu.Lock()
	s.rows = rows
	s.expires = time.Now().Add(ttl)
	s.mu.Unlock()
}

func (s *Service) fetchRemote(ctx context.Context) ([]Row, error) {
	logger.Info("Fetching leaderboard data")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.apiURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-Github-Api-Version", "2022-11-28")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("contributors request failed: %s: %s", resp.Status, body)
	}

	var contributions []struct {
		Login         string `json:"login"`
		Contributions int    `json:"contributions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&contributions); err != nil {
		return nil, fmt.Errorf("failed to decode contributors response: %w", err)
	}

	rows := make([]Row, 0, len(contributions))
	for i, contribution := range contributions {
		rows = append(rows, Row{
			Rank:          displayRank(i + 1),
			Contributor:   contribution.Login,
			Contributions: contribution.Contributions,
		})
	}
	return rows, nil
}

func (s *Service) loadFallback() ([]Row, error) {
	f, err := os.Open(s.fallback)
	if err != nil {
		return nil, fmt.Errorf("failed to open leaderboard fallback: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read leaderboard fallback header: %w", err)
	}
	contributorCol, contributionsCol := -1, -1
	for i, name := range header {
		switch name {
		case "Contributor":
			contributorCol = i
		case "Contributions":
			contributionsCol = i
		}
	}
	if contributorCol < 0 || contributionsCol < 0 {
		return nil, fmt.Errorf("leaderboard fallback is missing required columns: %v", header)
	}

	rows := make([]Row, 0)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read leaderboard fallback row: %w", err)
		}
		if contributorCol >= len(record) || contributionsCol >= len(record) {
			continue
		}
		contributions, err := strconv.Atoi(record[contributionsCol])
		if err != nil {
			continue
		}
		rows = append(rows, Row{
			Rank:          displayRank(len(rows) + 1),
			Contributor:   record[contributorCol],
			Contributions: contributions,
		})
	}
	return rows, nil
}

func displayRank(rank int) string {
	emoji := ""
	switch rank {
	case 1:
		emoji = "🥇 "
	case 2:
		emoji = "🥈 "
	case 3:
		emoji = "🥉 "
	}
	return fmt.Sprintf("%s%d", emoji, rank)
}
