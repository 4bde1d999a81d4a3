package main

import (
	"encoding/json"
	"fmt"
	"image/color"
	"math"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// BenchmarkResult holds the fields of one benchmark result the graphs need.
type BenchmarkResult struct {
	Implementation string `json:"implementation"`
	NumWorkers     int    `json:"num_workers"`
	NumInserted    int64  `json:"num_inserted"`
	NumRemoved     int64  `json:"num_removed"`
	ActualElapsed  string `json:"actual_elapsed"`
}

// SystemInfo holds system information.
type SystemInfo struct {
	NumCPU            int `json:"num_cpu"`
	SimulatedCPUCount int `json:"simulated_cpu_count,omitempty"`
}

// FullReport represents a complete test session.
type FullReport struct {
	SessionID  string            `json:"session_id"`
	SystemInfo SystemInfo        `json:"system_info"`
	Benchmarks []BenchmarkResult `json:"benchmarks"`
}

// workerStats holds "5%-avg-min", median, and "5%-avg-max" for one worker count.
type workerStats struct {
	x      float64 // category index plus the per-implementation offset
	orig   float64 // original worker count
	min    float64 // average of bottom 5%
	median float64
	max    float64 // average of top 5%
}

// statsPoints implements XYer and YErrorer, so we can plot lines + error bars.
type statsPoints []workerStats

func (s statsPoints) Len() int                { return len(s) }
func (s statsPoints) XY(i int) (x, y float64) { return s[i].x, s[i].median }
func (s statsPoints) YError(i int) (low, high float64) {
	return s[i].median - s[i].min, s[i].max - s[i].median
}

// categoryTicks implements a categorical X-axis: 0,1,2,... => labels for worker counts.
type categoryTicks struct {
	positions []float64
	labels    []string
}

func (ct categoryTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for i, pos := range ct.positions {
		if pos >= min && pos <= max {
			ticks = append(ticks, plot.Tick{Value: pos, Label: ct.labels[i]})
		}
	}
	return ticks
}

var (
	jsonFile     string
	outputPrefix string
)

var rootCmd = &cobra.Command{
	Use:   "buildGraph",
	Short: "Render benchmark sessions into one PNG chart per CPU setting",
	RunE: func(cmd *cobra.Command, args []string) error {
		sessions, err := readSessions(jsonFile)
		if err != nil {
			return err
		}

		for cpus, implMap := range groupByCPU(sessions) {
			p := newPlot(cpus)
			addSeries(p, implMap)

			filename := fmt.Sprintf("%s_%d.png", outputPrefix, cpus)
			if err := p.Save(12*vg.Inch, 9*vg.Inch, filename); err != nil {
				zap.S().Errorw("cannot save plot", "cpus", cpus, "error", err)
				continue
			}
			zap.S().Infow("graph saved", "cpus", cpus, "file", filename)
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&jsonFile, "jsonfile", "test-results.json", "Path to JSON file containing test sessions")
	rootCmd.Flags().StringVar(&outputPrefix, "out", "benchmark_graph", "Output graph image filename prefix")
}

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	undo := zap.ReplaceGlobals(logger)

	err = rootCmd.Execute()
	undo()
	logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func readSessions(filename string) ([]FullReport, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "reading JSON file")
	}
	var sessions []FullReport
	if err := json.Unmarshal(data, &sessions); err != nil {
		return nil, errors.Wrap(err, "unmarshalling JSON")
	}
	return sessions, nil
}

// groupByCPU groups ns/op samples by CPU count -> implementation -> worker count.
func groupByCPU(sessions []FullReport) map[int]map[string]map[float64][]float64 {
	pointsByCPU := make(map[int]map[string]map[float64][]float64)

	for _, session := range sessions {
		cpus := session.SystemInfo.SimulatedCPUCount
		if cpus == 0 {
			cpus = session.SystemInfo.NumCPU
		}
		if _, ok := pointsByCPU[cpus]; !ok {
			pointsByCPU[cpus] = make(map[string]map[float64][]float64)
		}

		for _, b := range session.Benchmarks {
			ops := b.NumInserted + b.NumRemoved
			dur, err := time.ParseDuration(b.ActualElapsed)
			if err != nil || ops == 0 {
				continue
			}
			nsPerOp := float64(dur.Nanoseconds()) / float64(ops)

			implMap := pointsByCPU[cpus]
			if _, ok := implMap[b.Implementation]; !ok {
				implMap[b.Implementation] = make(map[float64][]float64)
			}
			x := float64(b.NumWorkers)
			implMap[b.Implementation][x] = append(implMap[b.Implementation][x], nsPerOp)
		}
	}
	return pointsByCPU
}

func newPlot(cpus int) *plot.Plot {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Benchmark (5%%-avg-min / Median / 5%%-avg-max) vs. Workers for %d CPU(s)", cpus)
	p.X.Label.Text = "Workers (one container each)"
	p.Y.Label.Text = "Time per Op (ns) [log scale]"
	p.Y.Scale = plot.LogScale{}

	// Dark theme.
	p.BackgroundColor = color.RGBA{R: 30, G: 30, B: 30, A: 255}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	p.Title.TextStyle.Color = white
	p.X.Label.TextStyle.Color = white
	p.Y.Label.TextStyle.Color = white
	p.X.Color = white
	p.Y.Color = white
	p.X.Tick.Label.Color = white
	p.Y.Tick.Label.Color = white
	p.Legend.Top = true
	p.Legend.Left = true
	p.Legend.TextStyle.Color = white

	p.Y.Tick.Marker = plot.TickerFunc(logTicks)
	p.Add(plotter.NewGrid())
	return p
}

// logTicks spreads roughly 20 labelled ticks evenly on a log axis.
func logTicks(min, max float64) []plot.Tick {
	const nTicks = 20.0
	if min <= 0 {
		min = 1e-9
	}
	start := math.Log10(min)
	step := (math.Log10(max) - start) / nTicks

	var ticks []plot.Tick
	for i := 0.0; i <= nTicks; i++ {
		y := math.Pow(10, start+i*step)
		ticks = append(ticks, plot.Tick{Value: y, Label: formatNs(y)})
	}
	return ticks
}

func addSeries(p *plot.Plot, implMap map[string]map[float64][]float64) {
	// Union of worker counts, mapped to category indexes.
	workerSet := make(map[float64]struct{})
	for _, implData := range implMap {
		for w := range implData {
			workerSet[w] = struct{}{}
		}
	}
	var workerValues []float64
	for w := range workerSet {
		workerValues = append(workerValues, w)
	}
	sort.Float64s(workerValues)

	mapping := make(map[float64]float64)
	var positions []float64
	var labels []string
	for i, w := range workerValues {
		mapping[w] = float64(i)
		positions = append(positions, float64(i))
		labels = append(labels, strconv.FormatFloat(w, 'f', -1, 64))
	}
	p.X.Tick.Marker = categoryTicks{positions: positions, labels: labels}

	var implNames []string
	for name := range implMap {
		implNames = append(implNames, name)
	}
	sort.Strings(implNames)

	colors := plotutil.SoftColors
	shapes := []draw.GlyphDrawer{
		draw.CircleGlyph{},
		draw.SquareGlyph{},
		draw.TriangleGlyph{},
		draw.CrossGlyph{},
		draw.PlusGlyph{},
	}

	// Slight offset so each implementation is visually separated.
	offsetRange := 0.4
	offsetStep := offsetRange / float64(len(implNames))
	startOffset := -offsetRange/2 + offsetStep/2

	for i, impl := range implNames {
		stats := buildStats(implMap[impl])
		if len(stats) == 0 {
			continue
		}
		for j := range stats {
			stats[j].x = mapping[stats[j].orig] + startOffset + float64(i)*offsetStep
		}
		sort.Slice(stats, func(a, b int) bool { return stats[a].x < stats[b].x })
		sp := statsPoints(stats)

		line, err := plotter.NewLine(sp)
		if err != nil {
			zap.S().Errorw("cannot create line", "implementation", impl, "error", err)
			continue
		}
		line.Color = colors[i%len(colors)]

		points, err := plotter.NewScatter(sp)
		if err != nil {
			zap.S().Errorw("cannot create scatter", "implementation", impl, "error", err)
			continue
		}
		points.GlyphStyle.Radius = vg.Points(5)
		points.Color = colors[i%len(colors)]
		points.Shape = shapes[i%len(shapes)]

		yErrBars, err := plotter.NewYErrorBars(sp)
		if err != nil {
			zap.S().Errorw("cannot create error bars", "implementation", impl, "error", err)
			continue
		}
		yErrBars.Color = colors[i%len(colors)]

		p.Add(line, points, yErrBars)
		p.Legend.Add(impl, line, points)
	}
}

// buildStats computes "average of bottom 5%", median, and "average of top 5%".
func buildStats(samples map[float64][]float64) []workerStats {
	var out []workerStats
	for x, vals := range samples {
		if len(vals) == 0 {
			continue
		}
		sort.Float64s(vals)
		out = append(out, workerStats{
			x:      x,
			orig:   x,
			min:    averageOfRange(vals, 0.0, 0.05),
			median: stat.Quantile(0.5, stat.Empirical, vals, nil),
			max:    averageOfRange(vals, 0.95, 1.0),
		})
	}
	return out
}

// averageOfRange returns the mean of sortedVals in [startFrac, endFrac] of its
// length, falling back to the median when the range holds no samples.
func averageOfRange(sortedVals []float64, startFrac, endFrac float64) float64 {
	n := len(sortedVals)
	if n == 0 {
		return 0
	}
	startIndex := int(float64(n) * startFrac)
	endIndex := int(float64(n) * endFrac)
	if endIndex > n {
		endIndex = n
	}
	if startIndex >= endIndex {
		return stat.Quantile(0.5, stat.Empirical, sortedVals, nil)
	}
	return stat.Mean(sortedVals[startIndex:endIndex], nil)
}

// formatNs nicely formats a nanoseconds value in ns, µs, ms, or s.
func formatNs(ns float64) string {
	switch {
	case ns < 1e3:
		return fmt.Sprintf("%.0fns", ns)
	case ns < 1e6:
		return fmt.Sprintf("%.1fµs", ns/1e3)
	case ns < 1e9:
		return fmt.Sprintf("%.1fms", ns/1e6)
	default:
		return fmt.Sprintf("%.2fs", ns/1e9)
	}
}
