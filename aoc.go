// Package aoc are quick & dirty utilities for solving Advent of Code
// problems: a harness that finds solver methods, checks them against the
// samples in their doc comments, and runs them on the real input.
package aoc

import (
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"os"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
	"tailscale.com/util/deephash"
)

var log = logrus.New()

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := sample{
			want:  m[1],
			input: m[2],
		}
		return s, true
	}
	var zero sample
	return zero, false
}

// extractSamples returns the samples found in the doc comments of the
// functions in src, keyed by function name. A sample without input reuses
// the input of the previous sample.
func extractSamples(src []byte) (map[string]sample, error) {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "solver.go", src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing source to extract samples: %w", err)
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if ok {
				s.input = Or(s.input, lastInput)
				samples[fd.Name.Name] = s
				lastInput = s.input
				break
			}
		}
	}
	return samples, nil
}

// Puzzle is the state handed to a solver for one day. Solvers embed a
// *Puzzle and the harness fills it in before calling them.
type Puzzle struct {
	SampleMode bool

	solver  partSolver
	samples map[string]sample
	memo    map[deephash.Sum]any
}

// Input returns the puzzle input: the sample input in sample mode,
// otherwise the contents of -input (standard input by default).
func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.Sample().input)
	}
	return MustGet(realInput())
}

func (p *Puzzle) Debug(v ...any) {
	log.Debug(v...)
}

func (p *Puzzle) Debugf(format string, args ...any) {
	log.Debugf(format, args...)
}

// Sample returns the sample of the part being run.
func (p *Puzzle) Sample() sample {
	sample, ok := p.samples[p.solver.Name]
	if !ok {
		log.Fatalf("no sample found for %v", p.solver.Name)
	}
	return sample
}

type memoKey struct {
	Input []byte
	Name  string
}

// Memo returns the value built by build for the current input and name,
// calling build only the first time. Parts of a day share the cache, and
// since the key hashes the input itself, sample and real inputs never mix.
func Memo[T any](p *Puzzle, name string, build func() (T, error)) (T, error) {
	k := memoKey{Input: p.Input(), Name: name}
	sum := deephash.Hash(&k)
	if v, ok := p.memo[sum]; ok {
		return v.(T), nil
	}
	v, err := build()
	if err != nil {
		var zero T
		return zero, err
	}
	InitMap(&p.memo)
	p.memo[sum] = v
	return v, nil
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() (any, error)
	Part string
	Name string
}

// extractMethods finds the methods named D{day}p{part} on x, a pointer to a
// struct. A method either returns just the answer or the answer and an
// error.
func extractMethods(x any) (map[int]day, error) {
	rx := regexp.MustCompile(`^D(\d+)p(\d+.*)$`)
	v := reflect.ValueOf(x).Elem()
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("solver is %T; want pointer to struct", x)
	}
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := rx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		var fn func() (any, error)
		switch m := v.Method(i).Interface().(type) {
		case func() any:
			fn = func() (any, error) { return m(), nil }
		case func() (any, error):
			fn = m
		default:
			return nil, fmt.Errorf("method %s has signature %T; want func() any or func() (any, error)", mn, m)
		}
		d := Int(matches[1])
		byDays[d] = append(byDays[d], partSolver{
			fn:   fn,
			Part: matches[2],
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days, nil
}

var (
	flagCurDay     int
	flagPart       string
	flagDebug      bool
	flagOnlySample bool
	flagSkipSample bool
	flagInput      string
	flagPprof      bool
)

func init() {
	flag.IntVar(&flagCurDay, "day", -1, "day to run")
	flag.BoolVar(&flagOnlySample, "sample", false, "only run sample")
	flag.BoolVar(&flagSkipSample, "skip-sample", false, "skip sample")
	flag.BoolVar(&flagDebug, "debug", false, "debug mode")
	flag.StringVar(&flagPart, "part", "", "part to run")
	flag.StringVar(&flagInput, "input", "-", "puzzle input file; - reads standard input")
	flag.BoolVar(&flagPprof, "pprof", false, "write a CPU profile")
}

var initFlags = sync.OnceFunc(func() {
	flag.Parse()
	if flagDebug {
		log.SetLevel(logrus.DebugLevel)
	}
})

// realInput reads the real input once; standard input cannot be read twice.
var realInput = sync.OnceValues(func() ([]byte, error) {
	return readInput(flagInput, os.Stdin)
})

func readInput(name string, stdin io.Reader) ([]byte, error) {
	if name == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading standard input: %w", err)
		}
		return b, nil
	}
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return b, nil
}

// runDay runs every selected part of day, sample first. Real answers go to
// out, one per line.
func runDay(slvr any, year int, day day, samples map[string]sample, out io.Writer) {
	p := Puzzle{
		samples: samples,
	}
	log.WithField("year", year).Infof("Running day %d", day.day)
	sr := reflect.ValueOf(slvr)
	sr.Elem().FieldByName("Puzzle").Set(reflect.ValueOf(&p))
	for _, ps := range day.parts {
		p.solver = ps
		if flagPart != "" && ps.Part != flagPart {
			continue
		}

		for _, sm := range []bool{true, false} {
			if !sm && flagOnlySample {
				continue
			} else if sm && flagSkipSample {
				continue
			}
			p.SampleMode = sm
			if !sm {
				// Prime the input.
				if _, err := realInput(); err != nil {
					log.Fatal(err)
				}
			}
			t0 := time.Now()
			got, err := ps.fn()
			if err != nil {
				log.Fatalf("part %s: %v", ps.Part, err)
			}
			took := time.Since(t0).Round(time.Microsecond)
			if sm {
				sample := p.Sample()
				if fmt.Sprint(got) != sample.want {
					log.Fatalf("part %s sample: %v ❌; want %v", ps.Part, got, sample.want)
					return
				}
				log.Infof("part %s sample: %v ✅ (%v)", ps.Part, got, took)
			} else {
				log.Infof("part %s took %v", ps.Part, took)
				fmt.Fprintln(out, got)
			}
		}
	}
}

// Run runs the solver methods of slvr, a pointer to a struct embedding
// *Puzzle. src is the solver's source, from which samples are extracted.
func Run(year int, src []byte, slvr any) {
	initFlags()
	if flagPprof {
		prof := profile.Start(profile.Quiet)
		defer prof.Stop()
		stopOnFatal(prof.Stop)
	}

	samples, err := extractSamples(src)
	if err != nil {
		log.Fatal(err)
	}
	days, err := extractMethods(slvr)
	if err != nil {
		log.Fatal(err)
	}

	if flagCurDay != -1 {
		day, ok := days[flagCurDay]
		if !ok {
			log.Fatalf("no day %d", flagCurDay)
		}
		runDay(slvr, year, day, samples, os.Stdout)
		return
	}

	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	for _, day := range dayNums {
		runDay(slvr, year, days[day], samples, os.Stdout)
	}
}

// stopOnFatal makes log.Fatal call stop before exiting, as deferred calls
// do not run then.
func stopOnFatal(stop func()) {
	logrus.RegisterExitHandler(stop)
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Or returns the first non-zero value in list.
func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}

func InitMap[K comparable, V any](m *map[K]V) {
	if *m == nil {
		*m = make(map[K]V)
	}
}
