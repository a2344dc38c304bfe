package iogbif_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gnames/gnflora/internal/iogbif"
	"github.com/gnames/gnflora/pkg/config"
	"github.com/gnames/gnflora/pkg/flora"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const matchJSON = `{
  "usageKey": 2877951,
  "scientificName": "Quercus L.",
  "canonicalName": "Quercus",
  "rank": "GENUS",
  "status": "ACCEPTED",
  "confidence": 97,
  "matchType": "EXACT",
  "kingdom": "Plantae",
  "phylum": "Tracheophyta",
  "order": "Fagales",
  "family": "Fagaceae",
  "genus": "Quercus",
  "class": "Magnoliopsida"
}`

const pageJSON = `{
  "offset": 0,
  "limit": 2,
  "endOfRecords": false,
  "count": 1200,
  "results": [
    {"key": 1, "species": "Quercus robur", "family": "Fagaceae",
     "decimalLatitude": 50.1, "decimalLongitude": 14.2},
    {"key": 2, "family": "Fagaceae"}
  ]
}`

func newService(t *testing.T, h http.HandlerFunc, attempts int) flora.OccurrenceService {
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptGBIFURL(srv.URL),
		config.OptGBIFRetryAttempts(attempts),
	})
	return iogbif.New(cfg)
}

func TestMatchName(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/species/match", r.URL.Path)
		assert.Equal(t, "Quercus", r.URL.Query().Get("name"))
		assert.Equal(t, "Plantae", r.URL.Query().Get("kingdom"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(matchJSON))
	}, 1)

	res, err := svc.MatchName(context.Background(), "Quercus")
	require.NoError(t, err)
	assert.Equal(t, 2877951, res.UsageKey)
	assert.Equal(t, "Quercus L.", res.ScientificName)
	assert.Equal(t, "Genus", res.Rank)
	assert.Equal(t, "EXACT", res.MatchType)
	assert.Equal(t,
		"Plantae -> Tracheophyta -> Magnoliopsida -> Fagales -> Fagaceae -> Quercus",
		res.Classification(),
	)
}

func TestMatchNameNone(t *testing.T) {
	var calls atomic.Int32
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"confidence": 100, "matchType": "NONE"}`))
	}, 3)

	_, err := svc.MatchName(context.Background(), "Xyzzy")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "matchType is NONE")
	assert.Equal(t, int32(1), calls.Load(), "a missing match is not retried")
}

func TestMatchNameRetries(t *testing.T) {
	var calls atomic.Int32
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(matchJSON))
	}, 2)

	res, err := svc.MatchName(context.Background(), "Quercus")
	require.NoError(t, err)
	assert.Equal(t, 2877951, res.UsageKey)
	assert.Equal(t, int32(2), calls.Load())
}

func TestMatchNameBadRequest(t *testing.T) {
	var calls atomic.Int32
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}, 3)

	_, err := svc.MatchName(context.Background(), "Quercus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
	assert.Equal(t, int32(1), calls.Load())
}

func TestSearchPage(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/occurrence/search", r.URL.Path)
		assert.Equal(t, "2877951", q.Get("taxonKey"))
		assert.Equal(t, "49.5,50.5", q.Get("decimalLatitude"))
		assert.Equal(t, "13.75,14.75", q.Get("decimalLongitude"))
		assert.Equal(t, "true", q.Get("hasCoordinate"))
		assert.Equal(t, "false", q.Get("hasGeospatialIssue"))
		assert.Equal(t, "300", q.Get("limit"))
		assert.Equal(t, "600", q.Get("offset"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(pageJSON))
	}, 1)

	res, err := svc.SearchPage(context.Background(), flora.SearchParams{
		TaxonKey: 2877951,
		BBox: flora.BBox{
			MinLat: 49.5, MaxLat: 50.5, MinLon: 13.75, MaxLon: 14.75,
		},
		Limit:  300,
		Offset: 600,
	})
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, flora.OccurrenceRecord{
		Species: "Quercus robur", Family: "Fagaceae",
		Latitude: 50.1, Longitude: 14.2,
	}, res[0])
	assert.Equal(t, "", res[1].Species)
}

func TestSearchPageError(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}, 1)

	res, err := svc.SearchPage(context.Background(), flora.SearchParams{
		TaxonKey: 1, Limit: 300,
	})
	require.Error(t, err)
	assert.Nil(t, res)
	assert.Contains(t, err.Error(), "500")
}
