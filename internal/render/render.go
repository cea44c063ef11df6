// Package render writes usage reports to a terminal as text.
package render

import (
	"context"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/samber/lo"

	"github.com/j-veylop/screentime/internal/format"
	"github.com/j-veylop/screentime/internal/models"
	"github.com/j-veylop/screentime/internal/report"
)

const (
	listRuleWidth = 50
	nameColumn    = 25
	durationWidth = 12
	// verifyTolerance is how far, in seconds, the totals may drift before
	// the debug block warns.
	verifyTolerance = 1.0
)

// NoDataMessage is printed in place of a report with no records.
const NoDataMessage = "😔 No usage data found"

// Namer resolves bundle identifiers to display names.
type Namer interface {
	Name(ctx context.Context, appID string) string
}

// ListOptions controls the ranked list.
type ListOptions struct {
	// Limit is how many applications are listed individually. Zero means
	// report.DefaultPageSize.
	Limit int
	// Debug adds raw totals and a verification block.
	Debug bool
}

// Labels resolves the display name of every record in r.
func Labels(ctx context.Context, r models.UsageReport, namer Namer) []string {
	return lo.Map(r.Records, func(rec models.UsageRecord, _ int) string {
		return namer.Name(ctx, rec.AppID)
	})
}

// Empty writes the no-data message.
func Empty(w io.Writer) error {
	_, err := fmt.Fprintln(w, NoDataMessage)
	return err
}

// RankedList writes the numbered per-application breakdown of r.
func RankedList(ctx context.Context, w io.Writer, r models.UsageReport, namer Namer, opts ListOptions) error {
	if r.IsEmpty() {
		return Empty(w)
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = report.DefaultPageSize
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n📱 Screen time, %s\n", format.WindowLabel(r.WindowDays))
	b.WriteString(strings.Repeat("=", listRuleWidth) + "\n")
	fmt.Fprintf(&b, "📊 Total: %s\n", format.Duration(r.TotalSeconds))
	if opts.Debug {
		fmt.Fprintf(&b, "🔍 Debug: total seconds = %s, apps = %s\n",
			humanize.Comma(int64(math.Round(r.TotalSeconds))),
			humanize.Comma(int64(len(r.Records))))
	}
	b.WriteString(strings.Repeat("-", listRuleWidth) + "\n")

	page := report.Paginate(r, limit)
	for i, rec := range page.Shown {
		fmt.Fprintf(&b, "%2d. %s %s (%s)\n",
			i+1,
			format.PadRight(namer.Name(ctx, rec.AppID), nameColumn),
			format.PadLeft(format.Duration(rec.Seconds), durationWidth),
			format.Percent(report.Percent(r, rec.Seconds)),
		)
	}
	if page.RemainingCount > 0 {
		fmt.Fprintf(&b, "    ... %d more apps, remaining: %s\n",
			page.RemainingCount, format.Duration(page.RemainingSeconds))
	}

	if opts.Debug && len(r.Records) <= limit {
		writeVerification(&b, r, page)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeVerification(b *strings.Builder, r models.UsageReport, page report.Page) {
	manual := lo.SumBy(r.Records, func(rec models.UsageRecord) float64 { return rec.Seconds })

	b.WriteString("\n🔍 Verification:\n")
	fmt.Fprintf(b, "   reported total:  %s s\n", humanize.Comma(int64(math.Round(r.TotalSeconds))))
	fmt.Fprintf(b, "   recomputed:      %s s\n", humanize.Comma(int64(math.Round(manual))))
	fmt.Fprintf(b, "   displayed total: %s s\n", humanize.Comma(int64(math.Round(page.ShownSeconds))))
	if math.Abs(r.TotalSeconds-manual) > verifyTolerance {
		b.WriteString("   ⚠️  totals differ, the calculation may be off\n")
	}
}
