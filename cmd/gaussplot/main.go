// Command gaussplot draws a large batch of discrete Gaussian (and optional
// LWE) samples and renders their empirical distribution to an HTML page,
// with summary statistics in the chart subtitle. Useful for eyeballing a
// freshly built CDT table against its nominal sigma.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"golang.org/x/crypto/sha3"

	"secrand/entropy"
	"secrand/lwe"
)

type summaryStats struct {
	Count int
	Mean  float64
	Std   float64
	Min   float64
	Max   float64
}

func computeStats(vals []float64) summaryStats {
	st := summaryStats{Count: len(vals)}
	if len(vals) == 0 {
		return st
	}
	st.Min = vals[0]
	st.Max = vals[0]
	mean := 0.0
	m2 := 0.0
	for i, v := range vals {
		if v < st.Min {
			st.Min = v
		}
		if v > st.Max {
			st.Max = v
		}
		delta := v - mean
		mean += delta / float64(i+1)
		m2 += delta * (v - mean)
	}
	st.Mean = mean
	if len(vals) > 1 {
		st.Std = math.Sqrt(m2 / float64(len(vals)-1))
	}
	return st
}

func toBarItems(vals []int) []opts.BarData {
	out := make([]opts.BarData, len(vals))
	for i, v := range vals {
		out[i] = opts.BarData{Value: v}
	}
	return out
}

// newHistogramChart bins integer-valued samples at unit width.
func newHistogramChart(title string, values []float64, stats summaryStats) *charts.Bar {
	lo := int(stats.Min)
	hi := int(stats.Max)
	counts := make([]int, hi-lo+1)
	xLabels := make([]string, hi-lo+1)
	for i := range xLabels {
		xLabels[i] = fmt.Sprintf("%d", lo+i)
	}
	for _, v := range values {
		counts[int(v)-lo]++
	}
	bar := charts.NewBar()
	subtitle := fmt.Sprintf("n=%d, mean=%.4f, std=%.4f, min=%.0f, max=%.0f",
		stats.Count, stats.Mean, stats.Std, stats.Min, stats.Max)
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1200px", Height: "600px"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}, opts.DataZoom{Type: "slider"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(xLabels).
		AddSeries("count", toBarItems(counts)).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}))
	return bar
}

func main() {
	sigma := flag.Float64("sigma", lwe.DefaultSigma, "standard deviation of the sampled Gaussian")
	n := flag.Int("n", 100000, "number of samples")
	withLattice := flag.Bool("lattice", false, "also plot LWE residues")
	dim := flag.Int("dim", 256, "lattice dimension for -lattice")
	mod := flag.Int("mod", 4093, "modulus for -lattice")
	seed := flag.String("seed", "", "deterministic seed (empty = system entropy)")
	out := flag.String("out", ".", "output directory")
	flag.Parse()

	src := entropy.System()
	if *seed != "" {
		key := sha3.Sum256([]byte(*seed))
		var err error
		src, err = entropy.NewSeeded(key[:])
		if err != nil {
			log.Fatalf("seeded source: %v", err)
		}
	}

	tables := lwe.DefaultTables
	if _, ok := tables[*sigma]; !ok {
		tables = map[float64][]uint16{*sigma: lwe.BuildTable(*sigma)}
	}

	gauss := make([]float64, *n)
	for i := range gauss {
		s, err := lwe.Sample(*sigma, tables, src)
		if err != nil {
			log.Fatalf("sample: %v", err)
		}
		gauss[i] = float64(s)
	}

	page := components.NewPage()
	page.AddCharts(newHistogramChart(fmt.Sprintf("discrete Gaussian, sigma=%g", *sigma), gauss, computeStats(gauss)))

	if *withLattice {
		residues := make([]float64, *n)
		for i := range residues {
			b, err := lwe.RandLattice(*dim, *mod, *sigma, lwe.ModeInteger, tables, src)
			if err != nil {
				log.Fatalf("lattice: %v", err)
			}
			residues[i] = b
		}
		page.AddCharts(newHistogramChart(fmt.Sprintf("LWE residues, dim=%d mod=%d", *dim, *mod), residues, computeStats(residues)))
	}

	ts := time.Now().Format("20060102_150405")
	htmlPath := fmt.Sprintf("%s/gauss_histograms_%s.html", *out, ts)
	f, err := os.Create(htmlPath)
	if err != nil {
		log.Fatalf("create html: %v", err)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		log.Fatalf("render html: %v", err)
	}
	fmt.Println("Histogram page:", htmlPath)
}
