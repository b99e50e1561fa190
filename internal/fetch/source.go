package fetch

import (
	"bytes"
	"context"
	"countries/internal/country"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const DefaultURL = "https://raw.githubusercontent.com/shah0150/data/main/countries_data.json"

const userAgent = "countries-cli"

// HTTPSource fetches the dataset with a single GET. It never retries.
type HTTPSource struct {
	URL    string
	Client *http.Client
	Logger *zap.Logger
}

func NewHTTPSource(url string, logger *zap.Logger) *HTTPSource {
	if url == "" {
		url = DefaultURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPSource{
		URL:    url,
		Client: http.DefaultClient,
		Logger: logger,
	}
}

var _ country.Source = (*HTTPSource)(nil)

func (s *HTTPSource) Fetch(ctx context.Context) ([]country.Country, error) {
	requestID := uuid.NewString()
	log := s.Logger.With(zap.String("url", s.URL), zap.String("request_id", requestID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, &NetworkError{Source: s.URL, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Request-ID", requestID)

	log.Debug("Fetching countries")
	resp, err := s.Client.Do(req)
	if err != nil {
		log.Warn("Fetch failed", zap.Error(err))
		return nil, &NetworkError{Source: s.URL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		log.Warn("Unexpected status", zap.Int("status", resp.StatusCode))
		return nil, &NetworkError{Source: s.URL, Status: resp.Status}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Warn("Reading body failed", zap.Error(err))
		return nil, &NetworkError{Source: s.URL, Err: err}
	}

	countries, err := Decode(body)
	if err != nil {
		log.Warn("Decode failed", zap.Error(err))
		return nil, &DecodeError{Source: s.URL, Err: err}
	}

	log.Debug("Fetched countries", zap.Int("count", len(countries)))
	return countries, nil
}

// FileSource reads the dataset from a local JSON file.
type FileSource struct {
	Path string
}

var _ country.Source = FileSource{}

func (s FileSource) Fetch(ctx context.Context) ([]country.Country, error) {
	if err := ctx.Err(); err != nil {
		return nil, &NetworkError{Source: s.Path, Err: err}
	}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, &NetworkError{Source: s.Path, Err: err}
	}

	countries, err := Decode(data)
	if err != nil {
		return nil, &DecodeError{Source: s.Path, Err: err}
	}
	return countries, nil
}

var errNotArray = errors.New("expected a JSON array of countries")

// Decode parses a JSON array of countries and validates every entry.
func Decode(data []byte) ([]country.Country, error) {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		return []country.Country{}, nil
	}
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, errNotArray
	}

	var countries []country.Country
	if err := json.Unmarshal(trimmed, &countries); err != nil {
		return nil, fmt.Errorf("invalid country JSON: %w", err)
	}
	if err := country.ValidateAll(countries); err != nil {
		return nil, err
	}
	if countries == nil {
		countries = []country.Country{}
	}
	return countries, nil
}
