// Command wordfreq counts word occurrences in text files, or stdin when no
// files are given, and prints the most frequent words.
//
// Defaults for -capacity and -top are read from WORDFREQ_CAPACITY and
// WORDFREQ_TOP, which may also be set in a .env file in the working directory.
package main

import (
	"bufio"
	"cmp"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/homier/freqtable"
)

const (
	envCapacity = "WORDFREQ_CAPACITY"
	envTop      = "WORDFREQ_TOP"

	defaultTop = 10

	maxTokenSize = 1 << 20
)

type config struct {
	capacity int
	top      int
	display  bool
	remove   []string
	verbose  bool
	inputs   []string
}

func main() {
	envErr := godotenv.Load()

	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}

	logger, err := newLogger(cfg.verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, "wordfreq: build logger:", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	if envErr != nil {
		logger.Debug("no .env file loaded, relying on process environment", zap.Error(envErr))
	}

	if err := run(cfg, os.Stdin, os.Stdout, logger); err != nil {
		logger.Error("wordfreq failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}

func parseFlags(args []string, output io.Writer) (config, error) {
	var (
		cfg    config
		remove string
		fs     = flag.NewFlagSet("wordfreq", flag.ContinueOnError)
	)

	fs.SetOutput(output)
	fs.IntVar(&cfg.capacity, "capacity", getEnvInt(envCapacity, freqtable.DefaultCapacity), "initial table capacity")
	fs.IntVar(&cfg.top, "top", getEnvInt(envTop, defaultTop), "number of most frequent words to print")
	fs.BoolVar(&cfg.display, "display", false, "dump every table slot after counting")
	fs.StringVar(&remove, "remove", "", "comma separated words to remove after counting")
	fs.BoolVar(&cfg.verbose, "verbose", false, "development logging")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	for _, w := range strings.Split(remove, ",") {
		if w = strings.TrimSpace(w); w != "" {
			cfg.remove = append(cfg.remove, w)
		}
	}
	cfg.inputs = fs.Args()

	return cfg, nil
}

func getEnvInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}

	return n
}

func run(cfg config, stdin io.Reader, stdout io.Writer, logger *zap.Logger) error {
	ft, err := freqtable.New(cfg.capacity, freqtable.WithLogger(logger))
	if err != nil {
		return err
	}

	var (
		errs  error
		total int
	)

	if len(cfg.inputs) == 0 {
		total, errs = count(ft, stdin)
	}

	for _, path := range cfg.inputs {
		n, err := countFile(ft, path)
		total += n

		if err != nil {
			logger.Warn("failed to read input", zap.String("path", path), zap.Error(err))
			errs = multierr.Append(errs, err)
		}
	}

	for _, w := range cfg.remove {
		if _, ok := ft.Remove(w); !ok {
			logger.Debug("word not found for removal", zap.String("word", w))
		}
	}

	if err := report(stdout, ft, total, cfg); err != nil {
		errs = multierr.Append(errs, err)
	}

	return errs
}

func countFile(ft *freqtable.FreqTable, path string) (n int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))

	n, err = count(ft, f)
	if err != nil {
		err = fmt.Errorf("%s: %w", path, err)
	}

	return n, err
}

// count inserts every run of ASCII letters read from r.
// Returns the number of words inserted.
func count(ft *freqtable.FreqTable, r io.Reader) (int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxTokenSize)
	sc.Split(scanLetters)

	n := 0
	for sc.Scan() {
		ft.Insert(sc.Text())
		n++
	}

	return n, sc.Err()
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// scanLetters is a bufio.SplitFunc yielding maximal runs of ASCII letters.
func scanLetters(data []byte, atEOF bool) (int, []byte, error) {
	start := 0
	for start < len(data) && !isLetter(data[start]) {
		start++
	}

	for i := start; i < len(data); i++ {
		if !isLetter(data[i]) {
			return i + 1, data[start:i], nil
		}
	}

	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}

	// Request more data.
	return start, nil, nil
}

type wordCount struct {
	word string
	freq int
}

func topWords(ft *freqtable.FreqTable, n int) []wordCount {
	words := make([]wordCount, 0, ft.Size())
	for word, freq := range ft.All() {
		words = append(words, wordCount{word, freq})
	}

	slices.SortFunc(words, func(a, b wordCount) int {
		if c := cmp.Compare(b.freq, a.freq); c != 0 {
			return c
		}

		return strings.Compare(a.word, b.word)
	})

	if n >= 0 && n < len(words) {
		words = words[:n]
	}

	return words
}

func report(w io.Writer, ft *freqtable.FreqTable, total int, cfg config) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "words=%d unique=%d capacity=%d collisions=%d\n",
		total, ft.Size(), ft.Capacity(), ft.NumOfCollisions())

	for _, wc := range topWords(ft, cfg.top) {
		fmt.Fprintf(bw, "%s\t%d\n", wc.word, wc.freq)
	}

	if cfg.display {
		if err := ft.Display(bw); err != nil {
			return err
		}
	}

	return bw.Flush()
}
