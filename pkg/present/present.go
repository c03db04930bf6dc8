// Package present renders parsed registry responses as status lines and
// column-aligned tables.
package present

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/shivanshkc/dronebl/pkg/rpc"
)

// timestampLayout is ISO-8601 local time without a zone offset.
const timestampLayout = "2006-01-02T15:04:05"

// Printer writes responses to an output stream.
type Printer struct {
	w     io.Writer
	debug bool
}

// NewPrinter returns a Printer. Debug notices are printed only when debug is set.
func NewPrinter(w io.Writer, debug bool) *Printer {
	return &Printer{w: w, debug: debug}
}

// Successes prints one line per success notice.
func (p *Printer) Successes(records []rpc.Record) {
	p.notices(text.FgGreen.Sprint("Success:"), records)
}

// Warnings prints one line per warning notice.
func (p *Printer) Warnings(records []rpc.Record) {
	p.notices(text.FgYellow.Sprint("WARNING:"), records)
}

// Debug prints one line per debug notice if debug output is enabled.
func (p *Printer) Debug(records []rpc.Record) {
	if !p.debug {
		return
	}
	p.notices(text.FgCyan.Sprint("Debug:"), records)
}

// Advisories prints the warning and debug channels of a response.
func (p *Printer) Advisories(res *rpc.Response) {
	p.Warnings(res.Channel(rpc.ChannelWarning))
	p.Debug(res.Channel(rpc.ChannelDebug))
}

// notices prints "<label> <data> (k=v, ...)" for each record.
func (p *Printer) notices(label string, records []rpc.Record) {
	for _, record := range records {
		var extra []string
		for _, attr := range record {
			if attr.Name == "data" {
				continue
			}
			extra = append(extra, attr.Name+"="+attr.Value)
		}

		info := ""
		if len(extra) > 0 {
			info = " (" + strings.Join(extra, ", ") + ")"
		}
		p.printf("%s %s%s\n", label, record.Get("data"), info)
	}
}

// Types prints the listing type table.
func (p *Printer) Types(records []rpc.Record) {
	width := 0
	for _, record := range records {
		width = max(width, text.RuneWidthWithoutEscSequences(record.Get("description")))
	}
	width++

	p.printf("Type  Description\n")
	p.printf("%s\n", text.Pad("===== ", width+6, '='))
	for _, record := range records {
		p.printf("%s%s\n", text.Pad(record.Get("type"), 6, ' '), record.Get("description"))
	}
}

// column is one column of the query result table.
type column struct {
	key, label string
	width      int
}

// resultColumns returns the query table columns with their minimum widths.
func resultColumns() []column {
	return []column{
		{key: "timestamp", label: "Time", width: 5},
		{key: "id", label: "ID", width: 3},
		{key: "ip", label: "IP", width: 3},
		{key: "type", label: "Type", width: 5},
		{key: "listed", label: "Listed", width: 7},
		{key: "comment", label: "Comment", width: 8},
	}
}

// Results prints the query result table and returns the number of rows.
//
// A column is widened to one more than the longest value that exceeds it. A
// row that lacks a column's attribute contributes no cell for that column, so
// its remaining cells shift left.
func (p *Printer) Results(records []rpc.Record) int {
	columns := resultColumns()

	rows := make([]rpc.Record, 0, len(records))
	for _, record := range records {
		if ts, ok := record.Lookup("timestamp"); ok {
			record = record.With("timestamp", FormatTimestamp(ts))
		}
		for i := range columns {
			value, ok := record.Lookup(columns[i].key)
			if n := text.RuneWidthWithoutEscSequences(value); ok && n > columns[i].width {
				columns[i].width = n + 1
			}
		}
		rows = append(rows, record)
	}

	header := make([]string, len(columns))
	rule := make([]string, len(columns))
	for i, col := range columns {
		header[i] = text.Pad(col.label, col.width, ' ')
		rule[i] = strings.Repeat("=", col.width)
	}
	p.printf("%s\n", strings.Join(header, " "))
	p.printf("%s\n", strings.Join(rule, " "))

	for _, row := range rows {
		var cells []string
		for _, col := range columns {
			value, ok := row.Lookup(col.key)
			if !ok {
				continue
			}
			cells = append(cells, text.Pad(value, col.width, ' '))
		}
		p.printf("%s\n", strings.Join(cells, " "))
	}

	return len(rows)
}

// FormatTimestamp converts a Unix epoch string into ISO-8601 local time.
// Values that are not integers are returned unchanged.
func FormatTimestamp(value string) string {
	seconds, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return value
	}
	return time.Unix(seconds, 0).Local().Format(timestampLayout)
}

// ServerError prints the three fields of an error reported by the registry.
func (p *Printer) ServerError(err *rpc.ServerError) {
	p.printf("%s\n\n", text.FgRed.Sprint("Error received from RPC server:"))
	p.printf("Code:    %s\n", err.Code)
	p.printf("Message: %s\n", err.Message)
	p.printf("Data:    %s\n", err.Data)
}

func (p *Printer) printf(format string, args ...any) {
	fmt.Fprintf(p.w, format, args...)
}
