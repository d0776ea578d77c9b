package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rocketscienceinc/multigame-backend/internal/entity"
)

const gamesPath = "/api/games"

var ErrUnexpectedStatus = errors.New("unexpected status from history service")

// HistoryClient - talks to a remote game history service.
type HistoryClient struct {
	baseURL string
	limit   int
	client  *http.Client
}

func NewHistoryClient(baseURL string, limit int, timeout time.Duration) *HistoryClient {
	return &HistoryClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		limit:   limit,
		client:  &http.Client{Timeout: timeout},
	}
}

// Recent - the latest results, most recent first, at most limit of them.
func (that *HistoryClient) Recent(ctx context.Context) ([]*entity.GameResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, that.baseURL+gamesPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	var results []*entity.GameResult
	if err = that.do(req, http.StatusOK, &results); err != nil {
		return nil, fmt.Errorf("failed to fetch game history: %w", err)
	}

	if that.limit > 0 && len(results) > that.limit {
		results = results[:that.limit]
	}

	return results, nil
}

// Add - posts a finished game and returns the result as stored by the service.
func (that *HistoryClient) Add(ctx context.Context, result *entity.GameResult) (*entity.GameResult, error) {
	body, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("could not marshal game result: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, that.baseURL+gamesPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var stored entity.GameResult
	if err = that.do(req, http.StatusCreated, &stored); err != nil {
		return nil, fmt.Errorf("failed to save game result: %w", err)
	}

	return &stored, nil
}

func (that *HistoryClient) do(req *http.Request, expected int, out any) error {
	resp, err := that.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	// some services answer a POST with 200 instead of 201
	if resp.StatusCode != expected && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
