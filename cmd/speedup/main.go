package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/sp301415/ringo-rhizomes/csprng"
	"github.com/sp301415/ringo-rhizomes/field"
	"github.com/sp301415/ringo-rhizomes/ntt"
	"github.com/sp301415/ringo-rhizomes/rhizomes"
)

// Measurement is the timing of one benchmark category.
type Measurement struct {
	Baseline time.Duration `json:"baseline_ns"`
	Rhizomes time.Duration `json:"rhizomes_ns"`
	Speedup  float64       `json:"speedup"`
}

// Report is written to speedup.json.
type Report struct {
	Name       string                 `json:"name"`
	Field      string                 `json:"field"`
	Points     int                    `json:"points"`
	Reps       int                    `json:"reps"`
	Benchmarks map[string]Measurement `json:"benchmarks"`
}

type config struct {
	logMin, logMax int
	points, reps   int
}

// timeIt returns the mean duration of f over reps runs.
func timeIt(reps int, f func() error) (time.Duration, error) {
	now := time.Now()
	for i := 0; i < reps; i++ {
		if err := f(); err != nil {
			return 0, err
		}
	}
	return time.Since(now) / time.Duration(reps), nil
}

func newMeasurement(baseline, rhz time.Duration) Measurement {
	m := Measurement{Baseline: baseline, Rhizomes: rhz}
	if rhz > 0 {
		m.Speedup = float64(baseline) / float64(rhz)
	}
	return m
}

func run[E field.NTTFriendly[E]](cfg config, tr ntt.Transform[E]) (map[string]Measurement, error) {
	var z E
	if cfg.logMax > z.MaxLogOrder() {
		return nil, fmt.Errorf("logmax %d exceeds field order 2^%d", cfg.logMax, z.MaxLogOrder())
	}

	us := csprng.NewStreamSampler()
	cache := rhizomes.NewRootCache[E]()
	out := make(map[string]Measurement)

	for logN := cfg.logMin; logN <= cfg.logMax; logN++ {
		n := 1 << logN
		poly := csprng.SampleVector[E](us, n)
		points := csprng.SampleVector[E](us, cfg.points)

		roots, err := cache.Get(n)
		if err != nil {
			return nil, err
		}
		nInv, err := rhizomes.InvPow2[E](n)
		if err != nil {
			return nil, err
		}

		baseline, err := timeIt(cfg.reps, func() error {
			_, err := rhizomes.PolyEvalMonomial(poly, points[0], tr)
			return err
		})
		if err != nil {
			return nil, err
		}
		rhz, err := timeIt(cfg.reps, func() error {
			_, err := rhizomes.PolyEvalRhizomes(poly, roots, points[0])
			return err
		})
		if err != nil {
			return nil, err
		}
		out[fmt.Sprintf("eval/2^%02d", logN)] = newMeasurement(baseline, rhz)

		coeffs := make([]E, n)
		buf := make([]E, len(points))
		baseline, err = timeIt(cfg.reps, func() error {
			if err := tr.NTT(coeffs, poly, n); err != nil {
				return err
			}
			ntt.InvFinish(coeffs, n, nInv)
			for i := range points {
				buf[i] = rhizomes.HornerEval(coeffs, points[i])
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		rhz, err = timeIt(cfg.reps, func() error {
			copy(buf, points)
			return rhizomes.PolyMultiEvalRhizomesBatchedParallel(buf, poly, roots)
		})
		if err != nil {
			return nil, err
		}
		out[fmt.Sprintf("multieval/2^%02d", logN)] = newMeasurement(baseline, rhz)

		log.Printf("[speedup] n=2^%d eval=%.2fx multieval=%.2fx", logN,
			out[fmt.Sprintf("eval/2^%02d", logN)].Speedup, out[fmt.Sprintf("multieval/2^%02d", logN)].Speedup)
	}

	return out, nil
}

func toBarItems(vals []float64) []opts.BarData {
	out := make([]opts.BarData, len(vals))
	for i, v := range vals {
		out[i] = opts.BarData{Value: v}
	}
	return out
}

func newSpeedupChart(r Report) *charts.Bar {
	categories := make([]string, 0, len(r.Benchmarks))
	for c := range r.Benchmarks {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	baseline := make([]float64, len(categories))
	speedup := make([]float64, len(categories))
	for i, c := range categories {
		baseline[i] = 1
		speedup[i] = r.Benchmarks[c].Speedup
	}

	title := fmt.Sprintf("Speedup monomial vs rhizomes (%s)", r.Field)
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: fmt.Sprintf("points=%d, reps=%d", r.Points, r.Reps)}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1200px", Height: "600px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(categories).
		AddSeries("monomial", toBarItems(baseline)).
		AddSeries("rhizomes", toBarItems(speedup)).
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

// saveHTML renders charts into a single page at path.
func saveHTML(path string, cs ...components.Charter) error {
	page := components.NewPage()
	page.AddCharts(cs...)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := page.Render(f); err != nil {
		f.Close()
		return fmt.Errorf("render %s: %w", path, err)
	}
	return f.Close()
}

func main() {
	fieldName := flag.String("field", "fr", "field: fr|goldilocks|prio2")
	logMin := flag.Int("logmin", 4, "smallest log2 polynomial size")
	logMax := flag.Int("logmax", 16, "largest log2 polynomial size")
	points := flag.Int("points", 64, "number of points for multi-point evaluation")
	reps := flag.Int("reps", 10, "repetitions per measurement")
	outDir := flag.String("out", "speedup", "output directory")
	flag.Parse()

	if *logMin < 0 || *logMin > *logMax {
		log.Fatalf("invalid size range [%d, %d]", *logMin, *logMax)
	}
	if *points < 1 || *reps < 1 {
		log.Fatalf("points and reps must be positive")
	}
	cfg := config{logMin: *logMin, logMax: *logMax, points: *points, reps: *reps}

	var benchmarks map[string]Measurement
	var err error
	switch *fieldName {
	case "fr":
		benchmarks, err = run[field.Fr](cfg, ntt.NewFrFFT())
	case "goldilocks":
		benchmarks, err = run[field.Goldilocks](cfg, ntt.NewRadix2[field.Goldilocks]())
	case "prio2":
		benchmarks, err = run[field.Prio2](cfg, ntt.NewRadix2[field.Prio2]())
	default:
		log.Fatalf("unsupported field %q", *fieldName)
	}
	if err != nil {
		log.Fatalf("benchmark: %v", err)
	}

	report := Report{
		Name:       "rhizomes",
		Field:      *fieldName,
		Points:     *points,
		Reps:       *reps,
		Benchmarks: benchmarks,
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("mkdir: %v", err)
	}

	jsonPath := filepath.Join(*outDir, "speedup.json")
	if err := saveJSON(jsonPath, report); err != nil {
		log.Fatalf("save report: %v", err)
	}

	htmlPath := filepath.Join(*outDir, "speedup.html")
	if err := saveHTML(htmlPath, newSpeedupChart(report)); err != nil {
		log.Fatalf("save chart: %v", err)
	}
	fmt.Println("Speedup chart:", htmlPath)
	fmt.Println("Report JSON:", jsonPath)
}
