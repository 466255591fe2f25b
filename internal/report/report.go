// Package report writes a session's round history as text, TSV or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/message"

	"fiscal-sim/internal/economy"
	"fiscal-sim/internal/i18n"
)

// Output formats accepted by Write.
const (
	FormatText = "text"
	FormatTSV  = "tsv"
	FormatJSON = "json"
)

// TSVHeader is the header row of TSV output. Scripts depend on the column
// order; append new columns at the end.
const TSVHeader = "round\tgdp\tbudget_deficit\temployment_rate\twelfare_index\tinflation_rate\t" +
	"income_tax\tcorporate_tax\tconsumption_tax\teducation\tinfrastructure\thealthcare\twelfare"

// Summary is the outcome of one replayed plan.
type Summary struct {
	Scenario string                `json:"scenario"`
	Status   economy.Status        `json:"status"`
	Rounds   int                   `json:"rounds"`
	History  []economy.RoundRecord `json:"history"`
}

// FromSession summarises a finished or running session.
func FromSession(name string, s *economy.Session) Summary {
	return Summary{
		Scenario: name,
		Status:   s.Status(),
		Rounds:   s.Round(),
		History:  s.History(),
	}
}

// Formats lists the names accepted by Write.
func Formats() []string {
	return []string{FormatText, FormatTSV, FormatJSON}
}

// Write renders sum in the named format. The printer is only used by the
// text format.
func Write(w io.Writer, format string, p *message.Printer, sum Summary) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatText:
		return WriteText(w, p, sum)
	case FormatTSV:
		return WriteTSV(w, sum.History, true)
	case FormatJSON:
		return WriteJSON(w, sum)
	default:
		return fmt.Errorf("unknown report format %q (want one of %s)", format, strings.Join(Formats(), ", "))
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatRowTSV returns one TSV row without a trailing newline.
func FormatRowTSV(r economy.RoundRecord) string {
	cols := []string{
		strconv.Itoa(r.Round),
		formatFloat(r.State.GDP),
		formatFloat(r.State.BudgetDeficit),
		formatFloat(r.State.EmploymentRate),
		formatFloat(r.State.WelfareIndex),
		formatFloat(r.State.InflationRate),
		formatFloat(r.Policy.IncomeTax),
		formatFloat(r.Policy.CorporateTax),
		formatFloat(r.Policy.ConsumptionTax),
		formatFloat(r.Policy.Education),
		formatFloat(r.Policy.Infrastructure),
		formatFloat(r.Policy.Healthcare),
		formatFloat(r.Policy.Welfare),
	}
	return strings.Join(cols, "\t")
}

// WriteTSV prints one row per record, optionally preceded by TSVHeader.
func WriteTSV(w io.Writer, records []economy.RoundRecord, header bool) error {
	if header {
		if _, err := io.WriteString(w, TSVHeader+"\n"); err != nil {
			return err
		}
	}
	for _, r := range records {
		if _, err := io.WriteString(w, FormatRowTSV(r)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// WriteText prints a localized, column-aligned table of the history.
func WriteText(w io.Writer, p *message.Printer, sum Summary) error {
	if _, err := fmt.Fprintln(w, p.Sprintf("report.scenario", sum.Scenario)); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t\n",
		p.Sprintf("report.round"), p.Sprintf("report.gdp"), p.Sprintf("report.deficit"),
		p.Sprintf("report.employment"), p.Sprintf("report.welfare"), p.Sprintf("report.inflation"))
	for _, r := range sum.History {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t\n",
			p.Sprintf("%d", r.Round),
			p.Sprintf("%.1f", r.State.GDP),
			p.Sprintf("%.1f", r.State.BudgetDeficit),
			p.Sprintf("%.1f", r.State.EmploymentRate),
			p.Sprintf("%.1f", r.State.WelfareIndex),
			p.Sprintf("%.2f", r.State.InflationRate))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, p.Sprintf("report.status", statusLine(p, sum)))
	return err
}

func statusLine(p *message.Printer, sum Summary) string {
	if len(sum.History) == 0 {
		return sum.Status.String()
	}
	last := sum.History[len(sum.History)-1].State
	return i18n.StatusMessage(p, sum.Status, last)
}

// WriteJSON writes sum as indented JSON.
func WriteJSON(w io.Writer, sum Summary) error {
	if sum.History == nil {
		sum.History = []economy.RoundRecord{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(sum)
}
