package analysis_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnflora/internal/iocache"
	mock_flora "github.com/gnames/gnflora/internal/mocks/flora"
	"github.com/gnames/gnflora/pkg/analysis"
	"github.com/gnames/gnflora/pkg/config"
	"github.com/gnames/gnflora/pkg/errcode"
	"github.com/gnames/gnflora/pkg/flora"
	"github.com/gnames/gnflora/pkg/occurrence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type mapIndex map[string]flora.ReferenceEntry

func (m mapIndex) Lookup(key string) (flora.ReferenceEntry, bool) {
	res, ok := m[key]
	return res, ok
}

func (m mapIndex) Len() int { return len(m) }

var index = mapIndex{
	"Quercus robur": {
		Key:            "Quercus robur",
		ScientificName: "Quercus robur L.",
		Sections: map[string]string{
			"Habitat": "Deciduous forests.",
			"Uses":    "Timber.",
		},
		Vernaculars: []string{"English oak"},
	},
}

var query = flora.Query{
	TaxonName: "Fagaceae",
	Latitude:  50.08,
	Longitude: 14.42,
	RadiusKm:  10,
}

func records() []flora.OccurrenceRecord {
	var res []flora.OccurrenceRecord
	for range 30 {
		res = append(res, flora.OccurrenceRecord{
			Species: "Quercus robur", Family: "Fagaceae",
		})
	}
	for range 20 {
		res = append(res, flora.OccurrenceRecord{
			Species: "Fagus sylvatica", Family: "Fagaceae",
		})
	}
	return res
}

func errCode(t *testing.T, err error) gn.ErrorCode {
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	return gnErr.Code
}

func newClient(svc flora.OccurrenceService) *occurrence.Client {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptGBIFPageDelayMs(1)})
	return occurrence.New(svc, iocache.NewMemory(), cfg, occurrence.OptQuiet(true))
}

func expectSearch(svc *mock_flora.MockOccurrenceService, recs []flora.OccurrenceRecord) {
	svc.EXPECT().MatchName(gomock.Any(), "Fagaceae").Return(flora.Taxon{
		UsageKey: 4689, ScientificName: "Fagaceae", Rank: "Family",
	}, nil).Times(1)
	svc.EXPECT().SearchPage(gomock.Any(), gomock.Any()).Return(recs, nil).Times(1)
}

func TestRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock_flora.NewMockOccurrenceService(ctrl)
	expectSearch(svc, records())

	rep := mock_flora.NewMockReportAssembler(ctrl)
	var input flora.ReportInput
	rep.EXPECT().Assemble(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in flora.ReportInput) flora.Report {
			input = in
			return flora.Report{Text: "field guide"}
		}).Times(1)

	arch := mock_flora.NewMockArchive(ctrl)
	var rec flora.RunRecord
	arch.EXPECT().Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r flora.RunRecord) error {
			rec = r
			return nil
		}).Times(1)

	a := analysis.New(config.New(), newClient(svc), index,
		analysis.OptReport(rep),
		analysis.OptArchive(arch),
		analysis.OptQuiet(true),
	)
	res, err := a.Run(context.Background(), query)
	require.NoError(t, err)

	assert.NotEmpty(t, res.ID)
	assert.Equal(t, []flora.SpeciesAggregate{
		{Name: "Quercus robur", Family: "Fagaceae", Count: 30},
		{Name: "Fagus sylvatica", Family: "Fagaceae", Count: 20},
	}, res.Search.Species)
	assert.Equal(t, flora.Exhausted, res.Search.Completion)

	require.Len(t, res.Match.Matched, 1)
	assert.Equal(t, "Quercus robur", res.Match.Matched[0].Name)
	assert.Equal(t, 30, res.Match.Matched[0].GBIFCount)
	assert.Equal(t, []string{"Fagus sylvatica"}, res.Match.UnmatchedNames())
	assert.Equal(t, "Descriptions found: 1 / 2", res.Match.Summary())
	assert.Contains(t, res.Combined,
		"### Quercus robur (Family: Fagaceae, GBIF Records in Area: 30)")
	assert.Contains(t, res.Combined, "**Habitat:**\nDeciduous forests.")
	assert.NotContains(t, res.Combined, "Timber")

	require.NotNil(t, res.Report)
	assert.Equal(t, "field guide", res.Report.Text)
	assert.Equal(t, res.Combined, input.Combined)
	assert.Equal(t, []string{"Fagus sylvatica"}, input.Unmatched)
	assert.Len(t, input.Species, 2)

	assert.Equal(t, res.ID, rec.ID)
	assert.Equal(t, 4689, rec.Taxon.UsageKey)
	assert.Equal(t, "field guide", rec.Report.Text)
	assert.Equal(t, 2, rec.Processed)
}

func TestRunCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock_flora.NewMockOccurrenceService(ctrl)
	expectSearch(svc, records())

	a := analysis.New(config.New(), newClient(svc), index, analysis.OptQuiet(true))
	res1, err := a.Run(context.Background(), query)
	require.NoError(t, err)
	assert.False(t, res1.Search.FromCache)
	assert.Nil(t, res1.Report)

	res2, err := a.Run(context.Background(), query)
	require.NoError(t, err)
	assert.True(t, res2.Search.FromCache)
	assert.Equal(t, res1.Search.Species, res2.Search.Species)
	assert.Equal(t, res1.Combined, res2.Combined)
	assert.NotEqual(t, res1.ID, res2.ID)
}

func TestRunNoMatches(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock_flora.NewMockOccurrenceService(ctrl)
	expectSearch(svc, records()[30:])

	rep := mock_flora.NewMockReportAssembler(ctrl)
	rep.EXPECT().Assemble(gomock.Any(), gomock.Any()).Times(0)

	a := analysis.New(config.New(), newClient(svc), index,
		analysis.OptReport(rep), analysis.OptQuiet(true))
	res, err := a.Run(context.Background(), query)
	require.Error(t, err)
	assert.Equal(t, errcode.NoMatchedSpeciesError, errCode(t, err))
	assert.Len(t, res.Search.Species, 1)
	assert.Equal(t, []flora.UnmatchedSpecies{
		{Name: "Fagus sylvatica", Reason: flora.ReasonNotFound},
	}, res.Match.Unmatched)
	assert.Nil(t, res.Report)
}

func TestRunNoOccurrences(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock_flora.NewMockOccurrenceService(ctrl)
	expectSearch(svc, nil)

	arch := mock_flora.NewMockArchive(ctrl)
	arch.EXPECT().Save(gomock.Any(), gomock.Any()).
		Return(errors.New("db is down")).Times(1)

	a := analysis.New(config.New(), newClient(svc), index,
		analysis.OptArchive(arch), analysis.OptQuiet(true))
	res, err := a.Run(context.Background(), query)
	require.Error(t, err)
	assert.Equal(t, errcode.NoOccurrencesError, errCode(t, err))
	assert.Empty(t, res.Search.Species)
	assert.Equal(t, 0, res.Match.Processed)
}

func TestRunUnresolvedTaxon(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock_flora.NewMockOccurrenceService(ctrl)
	svc.EXPECT().MatchName(gomock.Any(), "Fagaceae").
		Return(flora.Taxon{}, errors.New("no match")).Times(1)
	svc.EXPECT().SearchPage(gomock.Any(), gomock.Any()).Times(0)

	a := analysis.New(config.New(), newClient(svc), index, analysis.OptQuiet(true))
	res, err := a.Run(context.Background(), query)
	require.Error(t, err)
	assert.Equal(t, errcode.NoOccurrencesError, errCode(t, err))
	require.Error(t, res.Search.ResolveErr)
	assert.Equal(t, errcode.TaxonResolutionError, errCode(t, res.Search.ResolveErr))
}

func TestRunInvalidQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock_flora.NewMockOccurrenceService(ctrl)

	a := analysis.New(config.New(), newClient(svc), index, analysis.OptQuiet(true))
	q := query
	q.Latitude = 91
	res, err := a.Run(context.Background(), q)
	require.Error(t, err)
	assert.Equal(t, errcode.InvalidQueryError, errCode(t, err))
	assert.Empty(t, res.ID)
}
