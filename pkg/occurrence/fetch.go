package occurrence

import (
	"context"
	"log/slog"

	"github.com/cheggaaa/pb/v3"
	"github.com/gnames/gnflora/pkg/flora"
)

// FetchResult is the outcome of a paginated occurrence search.
type FetchResult struct {
	Records    []flora.OccurrenceRecord
	Completion flora.Completion

	// Err is the error that stopped pagination, only set when Completion
	// is flora.Failed.
	Err error

	// Pages is the number of page requests made, including a failed one.
	Pages int
}

// fetch requests pages until the service returns an empty or short page,
// the result cap is reached, or a request fails. Records received before a
// failure are kept.
func (c *Client) fetch(
	ctx context.Context,
	params flora.SearchParams,
) FetchResult {
	var res FetchResult
	limit := c.cfg.PageLimit
	resultCap := c.cfg.ResultCap

	var bar *pb.ProgressBar
	if !c.quiet {
		bar = newProgressBar(resultCap, "Fetching records: ")
		defer bar.Finish()
	}

	for offset := 0; offset < resultCap; {
		if err := c.limiter.Wait(ctx); err != nil {
			res.Completion = flora.Failed
			res.Err = OccurrenceFetchError(offset, err)
			return res
		}

		params.Limit = limit
		params.Offset = offset
		page, err := c.svc.SearchPage(ctx, params)
		res.Pages++
		if err != nil {
			slog.Warn("Occurrence page request failed",
				"offset", offset, "records", len(res.Records), "error", err)
			res.Completion = flora.Failed
			res.Err = OccurrenceFetchError(offset, err)
			return res
		}

		res.Records = append(res.Records, page...)
		if bar != nil {
			bar.Add(len(page))
		}

		if len(page) < limit {
			res.Completion = flora.Exhausted
			return res
		}
		offset += len(page)
	}

	res.Completion = flora.Capped
	return res
}

func newProgressBar(total int, prefix string) *pb.ProgressBar {
	bar := pb.Full.Start(total)
	bar.Set("prefix", prefix)
	bar.Set(pb.CleanOnFinish, true)
	return bar
}
