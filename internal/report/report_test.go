package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fiscal-sim/internal/economy"
	"fiscal-sim/internal/i18n"
)

func playedSummary(t *testing.T) Summary {
	t.Helper()
	s := economy.NewSession(economy.DefaultConfig())
	_, err := s.Apply(economy.Baseline())
	require.NoError(t, err)
	return FromSession("demo", s)
}

func TestTSVHeaderIsStable(t *testing.T) {
	cols := strings.Split(TSVHeader, "\t")
	require.Len(t, cols, 13)
	assert.Equal(t, "round", cols[0])
	assert.Equal(t, "gdp", cols[1])
	assert.Equal(t, "welfare", cols[12])
	assert.Len(t, strings.Split(FormatRowTSV(economy.RoundRecord{}), "\t"), len(cols))
}

func TestWriteTSV(t *testing.T) {
	sum := playedSummary(t)

	var buf bytes.Buffer
	require.NoError(t, WriteTSV(&buf, sum.History, true))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, TSVHeader, lines[0])
	assert.Equal(t, "0\t1000\t0\t95\t50\t2\t20\t25\t15\t40\t60\t30\t20", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "1\t"))

	buf.Reset()
	require.NoError(t, WriteTSV(&buf, sum.History, false))
	assert.False(t, strings.HasPrefix(buf.String(), "round"))
}

func TestWriteJSON(t *testing.T) {
	sum := playedSummary(t)

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sum))

	var got struct {
		Scenario string `json:"scenario"`
		Status   string `json:"status"`
		Rounds   int    `json:"rounds"`
		History  []struct {
			Round int `json:"round"`
			State struct {
				GDP float64 `json:"gdp"`
			} `json:"state"`
		} `json:"history"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "demo", got.Scenario)
	assert.Equal(t, "continuing", got.Status)
	assert.Equal(t, 1, got.Rounds)
	require.Len(t, got.History, 2)
	assert.Equal(t, 1000.0, got.History[0].State.GDP)

	buf.Reset()
	require.NoError(t, WriteJSON(&buf, Summary{Scenario: "empty"}))
	assert.Contains(t, buf.String(), `"history": []`)
}

func TestWriteTextIsLocalized(t *testing.T) {
	bundle, err := i18n.Load()
	require.NoError(t, err)
	sum := playedSummary(t)

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, bundle.Printer("en-US"), sum))
	out := buf.String()
	assert.Contains(t, out, "Scenario: demo")
	assert.Contains(t, out, "Employment")
	assert.Contains(t, out, "Result: In progress")

	buf.Reset()
	require.NoError(t, WriteText(&buf, bundle.Printer("zh-CN"), sum))
	assert.Contains(t, buf.String(), "方案: demo")
	assert.Contains(t, buf.String(), "就业率")
}

func TestWriteDispatchesByFormat(t *testing.T) {
	bundle, err := i18n.Load()
	require.NoError(t, err)
	p := bundle.Printer("en-US")
	sum := playedSummary(t)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, " TSV ", p, sum))
	assert.True(t, strings.HasPrefix(buf.String(), TSVHeader))

	buf.Reset()
	err = Write(&buf, "xml", p, sum)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xml")
	assert.Zero(t, buf.Len())
}
