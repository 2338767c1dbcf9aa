// Command distcount enumerates the exact signature distribution of the
// vanilla and z-trick signing loops for one parameter set, reports the
// uniformity verdict per variant, and prints the side-by-side count table.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"strconv"

	"github.com/dsprenkels/dilithium-aborts-distributions/rejection"
)

func main() {
	beta := flag.Int("beta", 3, "rejection bound")
	gamma1 := flag.Int("gamma1", 9, "mask half-range (must exceed beta)")
	variantFlag := flag.String("variant", "both", "signing variant: vanilla|ztrick|both")
	onlyAttempt := flag.Int("attempt", 0, "count only acceptances from attempt 1 or 2 (0 counts all)")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel workers over the mask space")
	ratios := flag.Bool("ratios", false, "print the GCD-normalized ratio profile per variant")
	csvPath := flag.String("csv", "", "optional CSV output path for the count table")
	flag.Parse()

	p, err := rejection.NewParams(*beta, *gamma1)
	if err != nil {
		log.Fatalf("params: %v", err)
	}
	variants, err := selectVariants(*variantFlag)
	if err != nil {
		log.Fatalf("variant: %v", err)
	}
	if *onlyAttempt < 0 || *onlyAttempt > 2 {
		log.Fatalf("attempt must be 0, 1 or 2 (got %d)", *onlyAttempt)
	}

	results := make([]*rejection.Counter, len(variants))
	for i, v := range variants {
		results[i] = rejection.Count(p, rejection.CountOpts{
			Variant:     v,
			OnlyAttempt: *onlyAttempt,
			Workers:     *workers,
		})
		uniform, mismatch := results[i].IsUniform()
		fmt.Printf("%s: is_uniform=%v\n", v, uniform)
		if mismatch != nil {
			fmt.Printf("  first mismatch at (%d, %d, %d, %d): %s, baseline %s\n",
				mismatch.Sig.Z1, mismatch.Sig.Z2, mismatch.Sig.C1, mismatch.Sig.C2,
				mismatch.Count, mismatch.Baseline)
		}
	}

	printTable(variants, results)

	if *ratios {
		for i, v := range variants {
			fmt.Printf("%s: gcd=%s\n", v, results[i].GCD())
			for _, r := range results[i].Ratios() {
				fmt.Printf("  %s: %d\n", r.Value, r.Occurrences)
			}
		}
	}

	if *csvPath != "" {
		if err := writeCSV(*csvPath, variants, results); err != nil {
			log.Fatalf("csv: %v", err)
		}
		fmt.Println("Count table:", *csvPath)
	}
}

func selectVariants(name string) ([]rejection.Variant, error) {
	if name == "both" {
		return []rejection.Variant{rejection.Vanilla, rejection.ZTrick}, nil
	}
	v, err := rejection.ParseVariant(name)
	if err != nil {
		return nil, err
	}
	return []rejection.Variant{v}, nil
}

// unionKeys returns the sorted union of all signature supports. The supports
// are expected to coincide, but a divergence must still show up in the table.
func unionKeys(results []*rejection.Counter) []rejection.Signature {
	union := rejection.NewCounter()
	for _, c := range results {
		union.Merge(c)
	}
	return union.Signatures()
}

func printTable(variants []rejection.Variant, results []*rejection.Counter) {
	fmt.Print("(z1, z2, c1, c2)")
	for _, v := range variants {
		fmt.Printf(": %s", v)
	}
	fmt.Println()
	for _, sig := range unionKeys(results) {
		fmt.Printf("(%d, %d, %d, %d)", sig.Z1, sig.Z2, sig.C1, sig.C2)
		for _, c := range results {
			fmt.Printf(": %s", c.Get(sig))
		}
		fmt.Println()
	}
}

func writeCSV(path string, variants []rejection.Variant, results []*rejection.Counter) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"z1", "z2", "c1", "c2"}
	for _, v := range variants {
		header = append(header, v.String())
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, sig := range unionKeys(results) {
		row := []string{
			strconv.Itoa(sig.Z1), strconv.Itoa(sig.Z2),
			strconv.Itoa(sig.C1), strconv.Itoa(sig.C2),
		}
		for _, c := range results {
			row = append(row, c.Get(sig).String())
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
