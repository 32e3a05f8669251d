package feed

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/vfg2006/inventory-forecast-api/internal/config"
	"github.com/vfg2006/inventory-forecast-api/internal/domain"
)

// Loader lê observações de um arquivo local ou de uma URL http(s)
type Loader struct {
	httpClient *http.Client
	token      string
	timeout    time.Duration
}

func NewLoader(cfg config.ProfileUpdateSync) *Loader {
	timeout := cfg.FeedTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Loader{
		httpClient: &http.Client{Timeout: timeout},
		token:      cfg.FeedToken,
		timeout:    timeout,
	}
}

// Load escolhe a origem pelo formato do endereço
func (l *Loader) Load(location string) ([]domain.Observation, error) {
	if isRemote(location) {
		ctx, cancel := context.WithTimeout(context.Background(), l.timeout)
		defer cancel()
		return l.Fetch(ctx, location)
	}
	return ReadObservationsFile(location)
}

// Fetch baixa o CSV de observações da URL informada
func (l *Loader) Fetch(ctx context.Context, rawURL string) ([]domain.Observation, error) {
	endpoint, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("feed: erro ao analisar a URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("feed: erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Accept", "text/csv")
	if l.token != "" {
		req.Header.Set("Authorization", "Bearer "+l.token)
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("feed: erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed: requisição falhou com status: %s", resp.Status)
	}

	return ReadObservations(resp.Body)
}

func isRemote(location string) bool {
	lower := strings.ToLower(location)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
