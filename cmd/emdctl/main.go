// Command emdctl is a small CLI front-end over package emd: it reads a
// signal (one float per line) from a file or stdin, runs one of the
// three real-valued decomposition variants, and writes the resulting
// IMF matrix as whitespace-separated rows.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/emd"
)

// preset is the YAML-loadable subset of emd.Config that --config
// accepts; flags take precedence over any field also set by --config.
type preset struct {
	EnsembleSize  *int     `yaml:"ensemble_size"`
	NoiseStrength *float64 `yaml:"noise_strength"`
	SNumber       *int     `yaml:"s_number"`
	NumSiftings   *int     `yaml:"num_siftings"`
	RNGSeed       *int64   `yaml:"rng_seed"`
}

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "emdctl"})

	if err := run(logger, os.Args[1:]); err != nil {
		logger.Error("failed", "err", err)
		os.Exit(1)
	}
}

func run(logger *log.Logger, args []string) error {
	flags := pflag.NewFlagSet("emdctl", pflag.ContinueOnError)

	variant := flags.String("variant", "emd", "decomposition variant: emd, eemd, or ceemdan")
	inputPath := flags.String("input", "-", "path to a file of newline-separated samples, or - for stdin")
	outputPath := flags.String("output", "-", "path to write the IMF matrix, or - for stdout")
	configPath := flags.String("config", "", "optional YAML file of Config overrides")
	modes := flags.Int("modes", 0, "number of IMFs to extract (0 = NumIMFs(len(input)))")
	ensembleSize := flags.Int("ensemble-size", 1, "number of noise realisations to average (EEMD/CEEMDAN)")
	noiseStrength := flags.Float64("noise-strength", 0, "noise amplitude as a multiple of input stddev")
	sNumber := flags.Int("s-number", 4, "S-number stopping criterion (0 disables)")
	numSiftings := flags.Int("num-siftings", 50, "fixed sifting iteration cap (0 disables)")
	rngSeed := flags.Int64("rng-seed", 0, "base RNG seed; member i uses rngSeed+i")
	logLevel := flags.String("log-level", "info", "log level: debug, info, warn, error")

	if err := flags.Parse(args); err != nil {
		return err
	}

	if level, err := log.ParseLevel(*logLevel); err == nil {
		logger.SetLevel(level)
	}

	cfg := emd.Config{
		EnsembleSize:  *ensembleSize,
		NoiseStrength: *noiseStrength,
		SNumber:       *sNumber,
		NumSiftings:   *numSiftings,
		RNGSeed:       *rngSeed,
	}

	if *configPath != "" {
		if err := applyPreset(*configPath, &cfg, flags); err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	input, err := readSamples(*inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	logger.Debug("loaded signal", "samples", len(input))

	result, err := decompose(*variant, input, *modes, cfg)
	if err != nil {
		return fmt.Errorf("decomposing: %w", err)
	}
	logger.Info("decomposition complete", "variant", *variant, "rows", result.M())

	for i, divergedAt := range result.DivergedAt {
		if divergedAt != 0 {
			logger.Warn("sift divergence warning", "row", i, "iteration", divergedAt)
		}
	}

	return writeRows(*outputPath, result.Rows)
}

func decompose(variant string, input []float64, modes int, cfg emd.Config) (emd.Result, error) {
	switch variant {
	case "emd":
		return emd.EMD(input, modes, cfg)
	case "eemd":
		return emd.EEMD(input, modes, cfg)
	case "ceemdan":
		return emd.CEEMDAN(input, modes, cfg)
	default:
		return emd.Result{}, fmt.Errorf("unknown variant %q (want emd, eemd, or ceemdan)", variant)
	}
}

func applyPreset(path string, cfg *emd.Config, flags *pflag.FlagSet) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var p preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return err
	}

	if p.EnsembleSize != nil && !flags.Changed("ensemble-size") {
		cfg.EnsembleSize = *p.EnsembleSize
	}
	if p.NoiseStrength != nil && !flags.Changed("noise-strength") {
		cfg.NoiseStrength = *p.NoiseStrength
	}
	if p.SNumber != nil && !flags.Changed("s-number") {
		cfg.SNumber = *p.SNumber
	}
	if p.NumSiftings != nil && !flags.Changed("num-siftings") {
		cfg.NumSiftings = *p.NumSiftings
	}
	if p.RNGSeed != nil && !flags.Changed("rng-seed") {
		cfg.RNGSeed = *p.RNGSeed
	}

	return nil
}

func readSamples(path string) ([]float64, error) {
	r, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var samples []float64
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing sample %q: %w", line, err)
		}
		samples = append(samples, v)
	}

	return samples, scanner.Err()
}

func openReader(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

func writeRows(path string, rows [][]float64) error {
	w, err := openWriter(path)
	if err != nil {
		return err
	}
	defer w.Close()

	buffered := bufio.NewWriter(w)
	for _, row := range rows {
		fields := make([]string, len(row))
		for i, v := range row {
			fields[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if _, err := fmt.Fprintln(buffered, strings.Join(fields, " ")); err != nil {
			return err
		}
	}

	return buffered.Flush()
}

func openWriter(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
