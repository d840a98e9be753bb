package lsystem

import (
	"io"
	"net/http"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// GrowthReport records the sequence length of every generation from the
// axiom up to the analysed depth.
type GrowthReport struct {
	System  string
	Lengths []int
}

// AnalyseGrowth expands a private copy of the system from its axiom and
// records the length of each generation. The receiver is not stepped.
func (l *LSystem) AnalyseGrowth(generations int) GrowthReport {
	sample := newLSystem(l.arena, l.rules, l.axiom)
	report := GrowthReport{
		System:  l.String(),
		Lengths: make([]int, 0, generations+1),
	}
	report.Lengths = append(report.Lengths, sample.Len())
	for i := 0; i < generations; i++ {
		sample.Step()
		report.Lengths = append(report.Lengths, sample.Len())
	}
	return report
}

// Rates returns the ratio between consecutive generation lengths. A
// generation following an empty one has rate 0.
func (gr *GrowthReport) Rates() []float64 {
	if len(gr.Lengths) < 2 {
		return nil
	}
	rates := make([]float64, len(gr.Lengths)-1)
	for i := 1; i < len(gr.Lengths); i++ {
		if gr.Lengths[i-1] == 0 {
			continue
		}
		rates[i-1] = float64(gr.Lengths[i]) / float64(gr.Lengths[i-1])
	}
	return rates
}

func (gr *GrowthReport) AverageGrowth() float64 {
	rates := gr.Rates()
	if len(rates) == 0 {
		return 0
	}
	total := 0.0
	for _, r := range rates {
		total += r
	}
	return total / float64(len(rates))
}

func (gr *GrowthReport) RenderChart(w io.Writer) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{
		Title:    "Growth Analysis",
		Subtitle: gr.System,
	}))

	labels := make([]string, len(gr.Lengths))
	lengths := make([]opts.BarData, len(gr.Lengths))
	for i, n := range gr.Lengths {
		labels[i] = strconv.Itoa(i)
		lengths[i] = opts.BarData{Value: n}
	}

	title := "Tokens per generation (avg growth " + strconv.FormatFloat(gr.AverageGrowth(), 'f', 4, 64) + ")"
	bar.SetXAxis(labels).
		AddSeries(title, lengths)
	return bar.Render(w)
}

// HandleStatistics serves the growth chart of the system.
func (l *LSystem) HandleStatistics(generations int) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		report := l.AnalyseGrowth(generations)
		if err := report.RenderChart(w); err != nil {
			log.Errorf("rendering growth chart: %s", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}
