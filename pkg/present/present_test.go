package present_test

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shivanshkc/dronebl/pkg/present"
	"github.com/shivanshkc/dronebl/pkg/rpc"
)

func TestMain(m *testing.M) {
	text.DisableColors()
	os.Exit(m.Run())
}

// record builds an rpc.Record from alternating names and values.
func record(pairs ...string) rpc.Record {
	var r rpc.Record
	for i := 0; i+1 < len(pairs); i += 2 {
		r = append(r, rpc.Attr{Name: pairs[i], Value: pairs[i+1]})
	}
	return r
}

func lines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func TestPrinter_Notices(t *testing.T) {
	type testCase struct {
		name     string
		debug    bool
		print    func(p *present.Printer)
		expected string
	}

	testCases := []testCase{
		{
			name: "Success With Context",
			print: func(p *present.Printer) {
				p.Successes([]rpc.Record{record("data", "Added", "ip", "192.0.2.1", "id", "5")})
			},
			expected: "Success: Added (ip=192.0.2.1, id=5)\n",
		},
		{
			name: "Warning Without Context",
			print: func(p *present.Printer) {
				p.Warnings([]rpc.Record{record("data", "careful"), record("data", "again", "limit", "5")})
			},
			expected: "WARNING: careful\nWARNING: again (limit=5)\n",
		},
		{
			name: "Data Not First",
			print: func(p *present.Printer) {
				p.Warnings([]rpc.Record{record("ip", "192.0.2.1", "data", "already listed")})
			},
			expected: "WARNING: already listed (ip=192.0.2.1)\n",
		},
		{
			name: "Debug Suppressed",
			print: func(p *present.Printer) {
				p.Debug([]rpc.Record{record("data", "query took 3ms")})
			},
			expected: "",
		},
		{
			name:  "Debug Enabled",
			debug: true,
			print: func(p *present.Printer) {
				p.Debug([]rpc.Record{record("data", "query took 3ms", "rows", "1")})
			},
			expected: "Debug: query took 3ms (rows=1)\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			tc.print(present.NewPrinter(&out, tc.debug))
			assert.Equal(t, tc.expected, out.String())
		})
	}
}

func TestPrinter_Advisories(t *testing.T) {
	res, err := rpc.ParseResponse([]byte(`<response type="success">
		<debug data="sql"/>
		<warning data="w1"/>
	</response>`))
	require.NoError(t, err)

	var out bytes.Buffer
	present.NewPrinter(&out, true).Advisories(res)
	// Warnings always come before debug notices.
	assert.Equal(t, "WARNING: w1\nDebug: sql\n", out.String())
}

func TestPrinter_Types(t *testing.T) {
	var out bytes.Buffer
	present.NewPrinter(&out, false).Types([]rpc.Record{
		record("type", "1", "description", "Testing class."),
		record("type", "13", "description", "Brute force attackers"),
	})

	assert.Equal(t, []string{
		"Type  Description",
		"===== ======================",
		"1     Testing class.",
		"13    Brute force attackers",
	}, lines(out.String()))
}

func TestPrinter_Results(t *testing.T) {
	ts := time.Unix(1700000000, 0).Local().Format("2006-01-02T15:04:05")

	var out bytes.Buffer
	count := present.NewPrinter(&out, false).Results([]rpc.Record{
		record("id", "17", "ip", "192.0.2.10", "type", "3", "listed", "1", "timestamp", "1700000000", "comment", "open proxy"),
	})
	require.Equal(t, 1, count)

	assert.Equal(t, []string{
		fmt.Sprintf("%-20s %-3s %-11s %-5s %-7s %-11s", "Time", "ID", "IP", "Type", "Listed", "Comment"),
		fmt.Sprintf("%s %s %s %s %s %s",
			strings.Repeat("=", 20), strings.Repeat("=", 3), strings.Repeat("=", 11),
			strings.Repeat("=", 5), strings.Repeat("=", 7), strings.Repeat("=", 11)),
		fmt.Sprintf("%-20s %-3s %-11s %-5s %-7s %-11s", ts, "17", "192.0.2.10", "3", "1", "open proxy"),
	}, lines(out.String()))
}

// TestPrinter_Results_MissingColumns pins the current behaviour for rows that
// lack a column: the cell is dropped rather than padded, which shifts the rest
// of the row left.
func TestPrinter_Results_MissingColumns(t *testing.T) {
	var out bytes.Buffer
	count := present.NewPrinter(&out, false).Results([]rpc.Record{
		record("id", "18", "ip", "192.0.2.11", "type", "3", "listed", "0"),
	})
	require.Equal(t, 1, count)

	got := lines(out.String())
	require.Len(t, got, 3)
	assert.Equal(t, "Time  ID  IP          Type  Listed  Comment ", got[0])
	assert.Equal(t, "18  192.0.2.11  3     0      ", got[2])
}

func TestPrinter_Results_Empty(t *testing.T) {
	var out bytes.Buffer
	count := present.NewPrinter(&out, false).Results(nil)
	assert.Equal(t, 0, count)
	assert.Equal(t, []string{
		"Time  ID  IP  Type  Listed  Comment ",
		"===== === === ===== ======= ========",
	}, lines(out.String()))
}

func TestFormatTimestamp(t *testing.T) {
	assert.Equal(t, time.Unix(0, 0).Local().Format("2006-01-02T15:04:05"), present.FormatTimestamp("0"))
	assert.Equal(t, "yesterday", present.FormatTimestamp("yesterday"))
}

func TestPrinter_ServerError(t *testing.T) {
	var out bytes.Buffer
	present.NewPrinter(&out, false).ServerError(&rpc.ServerError{Code: "100", Message: "Bad key", Data: "detail"})

	assert.Equal(t, "Error received from RPC server:\n\nCode:    100\nMessage: Bad key\nData:    detail\n", out.String())
}
