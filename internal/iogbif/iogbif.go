// Package iogbif implements flora.OccurrenceService over GBIF REST API.
// This is an impure I/O package.
package iogbif

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"github.com/gnames/gnflora/pkg/config"
	"github.com/gnames/gnflora/pkg/flora"
	"github.com/go-resty/resty/v2"
)

// matchNone is the GBIF match type of names without a match.
const matchNone = "NONE"

var errNoMatch = errors.New("no usageKey in response or matchType is NONE")

type service struct {
	client  *resty.Client
	kingdom string
	retries uint
}

// New creates a GBIF service from the config.
func New(cfg *config.Config) flora.OccurrenceService {
	client := resty.New()
	client.SetBaseURL(cfg.GBIF.URL)
	client.SetTimeout(time.Duration(cfg.GBIF.TimeoutSec) * time.Second)
	client.SetHeader("Accept", "application/json")
	client.SetHeader("User-Agent", config.AppName)

	retries := uint(1)
	if cfg.GBIF.RetryAttempts > 1 {
		retries = uint(cfg.GBIF.RetryAttempts)
	}
	return &service{
		client:  client,
		kingdom: cfg.GBIF.Kingdom,
		retries: retries,
	}
}

// nameMatch is a response of species/match endpoint.
type nameMatch struct {
	UsageKey       int    `json:"usageKey"`
	ScientificName string `json:"scientificName"`
	CanonicalName  string `json:"canonicalName"`
	Rank           string `json:"rank"`
	MatchType      string `json:"matchType"`
	Confidence     int    `json:"confidence"`
	Kingdom        string `json:"kingdom"`
	Phylum         string `json:"phylum"`
	Class          string `json:"class"`
	Order          string `json:"order"`
	Family         string `json:"family"`
	Genus          string `json:"genus"`
}

// occurrencePage is a response of occurrence/search endpoint.
type occurrencePage struct {
	Offset       int          `json:"offset"`
	Limit        int          `json:"limit"`
	EndOfRecords bool         `json:"endOfRecords"`
	Count        int          `json:"count"`
	Results      []occurrence `json:"results"`
}

type occurrence struct {
	Key              int64    `json:"key"`
	Species          string   `json:"species"`
	Family           string   `json:"family"`
	DecimalLatitude  *float64 `json:"decimalLatitude"`
	DecimalLongitude *float64 `json:"decimalLongitude"`
}

// MatchName implements flora.OccurrenceService. Transport failures and
// server errors are retried, a missing match is not.
func (s *service) MatchName(
	ctx context.Context,
	name string,
) (flora.Taxon, error) {
	var res flora.Taxon
	err := retry.Do(
		func() error {
			var err error
			res, err = s.matchName(ctx, name)
			if err != nil && !isRetryable(err) {
				return retry.Unrecoverable(err)
			}
			return err
		},
		retry.Context(ctx),
		retry.Attempts(s.retries),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			slog.Warn("Retrying GBIF name match", "name", name,
				"attempt", n+1, "error", err)
		}),
	)
	if err != nil {
		return flora.Taxon{}, err
	}
	return res, nil
}

func (s *service) matchName(
	ctx context.Context,
	name string,
) (flora.Taxon, error) {
	var m nameMatch
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"name":    name,
			"kingdom": s.kingdom,
			"verbose": "false",
		}).
		SetResult(&m).
		Get("species/match")
	if err != nil {
		return flora.Taxon{}, fmt.Errorf("species/match: %w", err)
	}
	if err = statusError(resp); err != nil {
		return flora.Taxon{}, err
	}
	if m.UsageKey == 0 || m.MatchType == matchNone {
		return flora.Taxon{}, errNoMatch
	}

	res := flora.Taxon{
		UsageKey:       m.UsageKey,
		ScientificName: m.ScientificName,
		CanonicalName:  m.CanonicalName,
		Rank:           titleCase(m.Rank),
		MatchType:      m.MatchType,
		Confidence:     m.Confidence,
		Kingdom:        m.Kingdom,
		Phylum:         m.Phylum,
		Class:          m.Class,
		Order:          m.Order,
		Family:         m.Family,
		Genus:          m.Genus,
	}
	return res, nil
}

// SearchPage implements flora.OccurrenceService.
func (s *service) SearchPage(
	ctx context.Context,
	params flora.SearchParams,
) ([]flora.OccurrenceRecord, error) {
	var page occurrencePage
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"taxonKey":           strconv.Itoa(params.TaxonKey),
			"decimalLatitude":    rangeParam(params.BBox.MinLat, params.BBox.MaxLat),
			"decimalLongitude":   rangeParam(params.BBox.MinLon, params.BBox.MaxLon),
			"hasCoordinate":      "true",
			"hasGeospatialIssue": "false",
			"limit":              strconv.Itoa(params.Limit),
			"offset":             strconv.Itoa(params.Offset),
		}).
		SetResult(&page).
		Get("occurrence/search")
	if err != nil {
		return nil, fmt.Errorf("occurrence/search: %w", err)
	}
	if err = statusError(resp); err != nil {
		return nil, err
	}

	res := make([]flora.OccurrenceRecord, len(page.Results))
	for i, v := range page.Results {
		res[i] = flora.OccurrenceRecord{
			Species: v.Species,
			Family:  v.Family,
		}
		if v.DecimalLatitude != nil {
			res[i].Latitude = *v.DecimalLatitude
		}
		if v.DecimalLongitude != nil {
			res[i].Longitude = *v.DecimalLongitude
		}
	}
	return res, nil
}

type httpError struct {
	status int
	body   string
}

func (e *httpError) Error() string {
	return fmt.Sprintf("GBIF response status %d: %s", e.status, e.body)
}

func statusError(resp *resty.Response) error {
	if resp.StatusCode() == http.StatusOK {
		return nil
	}
	body := resp.String()
	if len(body) > 200 {
		body = body[:200]
	}
	return &httpError{status: resp.StatusCode(), body: body}
}

// isRetryable is true for transport errors, rate limiting and server
// errors.
func isRetryable(err error) bool {
	if err == nil || errors.Is(err, errNoMatch) {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	var he *httpError
	if errors.As(err, &he) {
		return he.status == http.StatusTooManyRequests || he.status >= 500
	}
	return true
}

func rangeParam(min, max float64) string {
	return strconv.FormatFloat(min, 'f', -1, 64) + "," +
		strconv.FormatFloat(max, 'f', -1, 64)
}

// titleCase converts GBIF ranks like "SPECIES" to "Species".
func titleCase(s string) string {
	if s == "" {
		return s
	}
	s = strings.ToLower(s)
	return strings.ToUpper(s[:1]) + s[1:]
}
