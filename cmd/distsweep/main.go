// Command distsweep walks a grid of (beta, gamma1) parameter pairs, runs the
// full enumeration for both signing variants at every point, and records the
// uniformity verdicts and count statistics to CSV and JSONL.
package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/big"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/montanaflynn/stats"

	"github.com/dsprenkels/dilithium-aborts-distributions/rejection"
)

const (
	defaultBetaSpec   = "1,2,3"
	defaultGamma1Spec = "3,4,5,6,7"
	defaultCSVPath    = "sweep.csv"
	defaultJSONLPath  = "sweep.jsonl"
)

type record struct {
	Beta           int     `json:"beta"`
	Gamma1         int     `json:"gamma1"`
	Support        int     `json:"support"`
	VanillaUniform bool    `json:"vanilla_uniform"`
	ZTrickUniform  bool    `json:"ztrick_uniform"`
	SameSupport    bool    `json:"same_support"`
	RatioMean      float64 `json:"ratio_mean"`
	RatioStd       float64 `json:"ratio_std"`
}

func main() {
	betaSpec := flag.String("betas", defaultBetaSpec, "comma-separated beta values")
	gamma1Spec := flag.String("gamma1s", defaultGamma1Spec, "comma-separated gamma1 values")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel workers over the mask space")
	csvPath := flag.String("csv", defaultCSVPath, "CSV output path")
	jsonlPath := flag.String("jsonl", defaultJSONLPath, "JSONL output path")
	flag.Parse()

	betas, err := parseIntSpec(*betaSpec)
	if err != nil {
		log.Fatalf("betas: %v", err)
	}
	gamma1s, err := parseIntSpec(*gamma1Spec)
	if err != nil {
		log.Fatalf("gamma1s: %v", err)
	}

	csvFile, err := os.Create(*csvPath)
	if err != nil {
		log.Fatalf("create csv: %v", err)
	}
	defer csvFile.Close()
	csvWriter := csv.NewWriter(csvFile)
	defer csvWriter.Flush()
	header := []string{"beta", "gamma1", "support", "vanilla_uniform", "ztrick_uniform", "same_support", "ratio_mean", "ratio_std"}
	if err := csvWriter.Write(header); err != nil {
		log.Fatalf("csv header: %v", err)
	}

	jsonlFile, err := os.Create(*jsonlPath)
	if err != nil {
		log.Fatalf("create jsonl: %v", err)
	}
	defer jsonlFile.Close()
	jsonEnc := json.NewEncoder(jsonlFile)

	points, uniformPoints := 0, 0
	for _, beta := range betas {
		for _, gamma1 := range gamma1s {
			p, err := rejection.NewParams(beta, gamma1)
			if err != nil {
				log.Printf("skip beta=%d gamma1=%d: %v", beta, gamma1, err)
				continue
			}
			rec := sweepPoint(p, *workers)
			points++
			if rec.VanillaUniform && rec.ZTrickUniform {
				uniformPoints++
			}
			log.Printf("beta=%d gamma1=%d: support=%d vanilla_uniform=%v ztrick_uniform=%v",
				rec.Beta, rec.Gamma1, rec.Support, rec.VanillaUniform, rec.ZTrickUniform)

			if err := jsonEnc.Encode(rec); err != nil {
				log.Fatalf("jsonl: %v", err)
			}
			row := []string{
				strconv.Itoa(rec.Beta), strconv.Itoa(rec.Gamma1), strconv.Itoa(rec.Support),
				strconv.FormatBool(rec.VanillaUniform), strconv.FormatBool(rec.ZTrickUniform),
				strconv.FormatBool(rec.SameSupport),
				strconv.FormatFloat(rec.RatioMean, 'g', -1, 64),
				strconv.FormatFloat(rec.RatioStd, 'g', -1, 64),
			}
			if err := csvWriter.Write(row); err != nil {
				log.Fatalf("csv: %v", err)
			}
		}
	}
	fmt.Printf("%d/%d grid points uniform under both variants\n", uniformPoints, points)
	fmt.Println("CSV:", *csvPath)
	fmt.Println("JSONL:", *jsonlPath)
}

func sweepPoint(p rejection.Params, workers int) record {
	vanilla := rejection.Count(p, rejection.CountOpts{Variant: rejection.Vanilla, Workers: workers})
	ztrick := rejection.Count(p, rejection.CountOpts{Variant: rejection.ZTrick, Workers: workers})

	vUniform, _ := vanilla.IsUniform()
	zUniform, _ := ztrick.IsUniform()

	sameSupport := vanilla.Len() == ztrick.Len()
	if sameSupport {
		for _, sig := range vanilla.Signatures() {
			if ztrick.Get(sig).Sign() == 0 {
				sameSupport = false
				break
			}
		}
	}

	mean, std := ratioStats(ztrick)
	return record{
		Beta:           p.Beta,
		Gamma1:         p.Gamma1,
		Support:        vanilla.Len(),
		VanillaUniform: vUniform,
		ZTrickUniform:  zUniform,
		SameSupport:    sameSupport,
		RatioMean:      mean,
		RatioStd:       std,
	}
}

// ratioStats summarizes the GCD-normalized count profile. A uniform
// distribution gives mean 1 and deviation 0.
func ratioStats(c *rejection.Counter) (mean, std float64) {
	var values []float64
	for _, r := range c.Ratios() {
		v, _ := new(big.Float).SetInt(r.Value).Float64()
		for i := 0; i < r.Occurrences; i++ {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return 0, 0
	}
	mean, _ = stats.Mean(values)
	std, _ = stats.StandardDeviation(values)
	return mean, std
}

func parseIntSpec(spec string) ([]int, error) {
	parts := strings.Split(spec, ",")
	out := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("bad value %q: %w", part, err)
		}
		out = append(out, n)
	}
	return out, nil
}
