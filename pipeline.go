package main

import (
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"
)

const (
	defaultSampleRate = 44100
	defaultDurationMs = 100.0
)

type Config struct {
	SampleRate int
	DurationMs float64
	Backend    string
	Format     string
}

func defaultConfig() Config {
	return Config{
		SampleRate: defaultSampleRate,
		DurationMs: defaultDurationMs,
		Backend:    defaultBackend,
		Format:     string(FormatAuto),
	}
}

func (c *Config) validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("sample rate must be positive, got %d", c.SampleRate)
	}
	if !(c.DurationMs > 0) || math.IsInf(c.DurationMs, 0) {
		return fmt.Errorf("duration must be positive, got %v", c.DurationMs)
	}
	if _, err := lookupBackend(c.Backend); err != nil {
		return err
	}
	if _, err := parseFormat(c.Format); err != nil {
		return err
	}
	return nil
}

// Waveform names an input file.
type Waveform struct {
	Name string
	Path string
}

type Analysis struct {
	Waveform Waveform
	Signal   []float64
	Time     []float64
	Spectrum *Spectrum
}

func analyzeRecording(rec Recording, cfg Config, transform fftFunc) (*Analysis, error) {
	signal, err := normalize(rec.Float64())
	if err != nil {
		return nil, fmt.Errorf("normalize: %w", err)
	}
	axis, err := timeAxis(len(signal), cfg.DurationMs)
	if err != nil {
		return nil, fmt.Errorf("time axis: %w", err)
	}
	spectrum, err := analyzeSpectrum(signal, cfg.SampleRate, transform)
	if err != nil {
		return nil, fmt.Errorf("spectrum: %w", err)
	}
	return &Analysis{Signal: signal, Time: axis, Spectrum: spectrum}, nil
}

func analyzeWaveform(w Waveform, cfg Config, format Format, transform fftFunc) (*Analysis, error) {
	rec, err := loadFile(w.Path, format)
	if err != nil {
		return nil, fmt.Errorf("%s wave %s: load: %w", w.Name, w.Path, err)
	}
	log.Debugf("Loaded %d samples from %s", len(rec), w.Path)
	warnCalibration(w, len(rec), cfg)

	a, err := analyzeRecording(rec, cfg, transform)
	if err != nil {
		return nil, fmt.Errorf("%s wave %s: %w", w.Name, w.Path, err)
	}
	a.Waveform = w
	log.Debugf("%s wave: dominant frequency %.2f Hz", w.Name, a.Spectrum.Dominant())
	return a, nil
}

// The frequency bins are derived from the configured sample rate while the
// time axis is stretched over the configured duration. The two only agree
// when the recording holds exactly rate*duration samples.
func warnCalibration(w Waveform, n int, cfg Config) {
	expected := float64(cfg.SampleRate) * cfg.DurationMs / 1000
	if float64(n) != expected {
		log.Warnf("%s wave has %d samples, %.0f Hz over %.1f ms implies %.0f; frequency bins aren't calibrated to the time axis",
			w.Name, n, float64(cfg.SampleRate), cfg.DurationMs, expected)
	}
}

func timePlot(a *Analysis) *Plot {
	return &Plot{
		X:      a.Time,
		Y:      a.Signal,
		Title:  fmt.Sprintf("Time Domain %s Wave", a.Waveform.Name),
		XLabel: "Time (ms)",
		YLabel: "Amplitude",
		XScale: ScaleLinear,
		Grid:   true,
	}
}

func frequencyPlot(a *Analysis) *Plot {
	return &Plot{
		X:      a.Spectrum.Frequencies,
		Y:      a.Spectrum.Magnitudes,
		Title:  fmt.Sprintf("%s Wave Discrete Fourier Transform", a.Waveform.Name),
		XLabel: "Frequency (Hz)",
		YLabel: "Magnitude",
		XScale: ScaleLog,
		Grid:   true,
	}
}

// analyzeAll analyzes every waveform in order and stops at the first
// failure.
func analyzeAll(waveforms []Waveform, cfg Config) ([]*Analysis, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	format, err := parseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}
	transform, err := lookupBackend(cfg.Backend)
	if err != nil {
		return nil, err
	}
	analyses := make([]*Analysis, 0, len(waveforms))
	for _, w := range waveforms {
		a, err := analyzeWaveform(w, cfg, format, transform)
		if err != nil {
			return nil, err
		}
		analyses = append(analyses, a)
	}
	return analyses, nil
}

// present hands the time domain plots, followed by the frequency domain
// plots, to the presenter.
func present(analyses []*Analysis, presenter Presenter) error {
	plots := make([]*Plot, 0, 2*len(analyses))
	for _, a := range analyses {
		plots = append(plots, timePlot(a))
	}
	for _, a := range analyses {
		plots = append(plots, frequencyPlot(a))
	}
	for _, p := range plots {
		if err := presenter.Render(p); err != nil {
			return fmt.Errorf("render %q: %w", p.Title, err)
		}
	}
	return nil
}
