// Command distplot runs the full enumeration for both signing variants and
// renders the GCD-normalized distribution as a go-echarts HTML bar chart,
// alongside a JSON file of summary statistics.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/big"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/montanaflynn/stats"

	"github.com/dsprenkels/dilithium-aborts-distributions/rejection"
)

type summaryStats struct {
	Count   int     `json:"count"`
	Mean    float64 `json:"mean"`
	Std     float64 `json:"std"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Uniform bool    `json:"uniform"`
}

func main() {
	beta := flag.Int("beta", 3, "rejection bound")
	gamma1 := flag.Int("gamma1", 9, "mask half-range (must exceed beta)")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel workers over the mask space")
	outDir := flag.String("out", "Reports", "output directory for reports")
	flag.Parse()

	p, err := rejection.NewParams(*beta, *gamma1)
	if err != nil {
		log.Fatalf("params: %v", err)
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("mkdir: %v", err)
	}

	vanilla := rejection.Count(p, rejection.CountOpts{Variant: rejection.Vanilla, Workers: *workers})
	ztrick := rejection.Count(p, rejection.CountOpts{Variant: rejection.ZTrick, Workers: *workers})

	keys := vanilla.Signatures()
	labels := make([]string, len(keys))
	for i, sig := range keys {
		labels[i] = fmt.Sprintf("(%d,%d,%d,%d)", sig.Z1, sig.Z2, sig.C1, sig.C2)
	}
	vanillaVals := normalized(vanilla, keys)
	ztrickVals := normalized(ztrick, keys)

	outStats := map[string]summaryStats{
		"vanilla": summarize(vanilla, vanillaVals),
		"ztrick":  summarize(ztrick, ztrickVals),
	}

	ts := time.Now().Format("20060102_150405")
	jsonPath := filepath.Join(*outDir, fmt.Sprintf("dist_stats_%s.json", ts))
	if err := saveJSON(jsonPath, outStats); err != nil {
		log.Printf("warn: save stats: %v", err)
	}

	page := components.NewPage()
	title := fmt.Sprintf("signature distribution (beta=%d, gamma1=%d)", p.Beta, p.Gamma1)
	page.AddCharts(newDistributionChart(title, labels, vanillaVals, ztrickVals, outStats))

	htmlPath := filepath.Join(*outDir, fmt.Sprintf("dist_%s.html", ts))
	f, err := os.Create(htmlPath)
	if err != nil {
		log.Fatalf("create html: %v", err)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		log.Fatalf("render html: %v", err)
	}
	fmt.Println("Distribution page:", htmlPath)
	fmt.Println("Stats JSON:", jsonPath)
}

// normalized divides every count by the counter's GCD so the plotted values
// stay small regardless of gamma1; a uniform distribution plots as all ones.
func normalized(c *rejection.Counter, keys []rejection.Signature) []float64 {
	gcd := c.GCD()
	out := make([]float64, len(keys))
	for i, sig := range keys {
		q := new(big.Int).Quo(c.Get(sig), gcd)
		out[i], _ = new(big.Float).SetInt(q).Float64()
	}
	return out
}

func summarize(c *rejection.Counter, vals []float64) summaryStats {
	mean, _ := stats.Mean(vals)
	std, _ := stats.StandardDeviation(vals)
	minv, _ := stats.Min(vals)
	maxv, _ := stats.Max(vals)
	uniform, _ := c.IsUniform()
	return summaryStats{Count: len(vals), Mean: mean, Std: std, Min: minv, Max: maxv, Uniform: uniform}
}

func toBarItems(vals []float64) []opts.BarData {
	out := make([]opts.BarData, len(vals))
	for i, v := range vals {
		out[i] = opts.BarData{Value: v}
	}
	return out
}

func newDistributionChart(title string, labels []string, vanillaVals, ztrickVals []float64, outStats map[string]summaryStats) *charts.Bar {
	bar := charts.NewBar()
	subtitle := fmt.Sprintf("keys=%d, vanilla uniform=%v, ztrick uniform=%v",
		len(labels), outStats["vanilla"].Uniform, outStats["ztrick"].Uniform)
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1200px", Height: "600px"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}, opts.DataZoom{Type: "slider"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(labels).
		AddSeries("vanilla", toBarItems(vanillaVals)).
		AddSeries("ztrick", toBarItems(ztrickVals)).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}))
	return bar
}

func saveJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
