package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// Plots a square and a sawtooth recording in the time and frequency domain.
// Recordings are text files with one integer sample per line. Raw captures
// made with
// arecord -t raw -f S16_LE -c1 -r44100
// can be read with --format s16le, mono wav files with --format wav.
func main() {

	cfg := defaultConfig()
	var logLevel string
	var squareFile, sawtoothFile string
	var outFile, exportFile string
	var fileName string
	var count int

	configFlags := []cli.Flag{
		&cli.IntFlag{
			Name:        "rate",
			Aliases:     []string{"r"},
			Usage:       "Sample rate used to derive frequency bins, Hz",
			Value:       defaultSampleRate,
			Destination: &cfg.SampleRate,
		},
		&cli.Float64Flag{
			Name:        "duration",
			Aliases:     []string{"d"},
			Usage:       "Length of the time axis, ms",
			Value:       defaultDurationMs,
			Destination: &cfg.DurationMs,
		},
		&cli.StringFlag{
			Name:        "backend",
			Usage:       "FFT implementation: " + strings.Join(backendNames(), ", "),
			Value:       defaultBackend,
			Destination: &cfg.Backend,
		},
		&cli.StringFlag{
			Name:        "format",
			Usage:       "Input format: auto, text, s16le or wav",
			Value:       string(FormatAuto),
			Destination: &cfg.Format,
		},
	}

	app := &cli.App{
		Name:                 "wavespectra",
		Usage:                "Plot waveforms and their spectra",
		EnableBashCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "trace, debug, info, warn or error",
				Value:       "info",
				Destination: &logLevel,
			},
		},
		Before: func(cCtx *cli.Context) error {
			level, err := log.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			log.SetLevel(level)
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:    "plot",
				Aliases: []string{"p"},
				Usage:   "Plot square and sawtooth waves in time and frequency domain",
				Action: func(cCtx *cli.Context) error {
					log.Infof("Handling files: %s, %s", squareFile, sawtoothFile)
					analyses, err := analyzeAll([]Waveform{
						{"Square", squareFile},
						{"Sawtooth", sawtoothFile},
					}, cfg)
					if err != nil {
						return err
					}
					return writePlots(analyses, outFile, exportFile)
				},
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:        "square",
						Usage:       "Square wave recording",
						Value:       "square.txt",
						Destination: &squareFile,
					},
					&cli.StringFlag{
						Name:        "sawtooth",
						Usage:       "Sawtooth wave recording",
						Value:       "sawtooth.txt",
						Destination: &sawtoothFile,
					},
					&cli.StringFlag{
						Name:        "out",
						Aliases:     []string{"o"},
						Usage:       "HTML file to render the charts to",
						Value:       "plots.html",
						Destination: &outFile,
					},
					&cli.StringFlag{
						Name:        "export",
						Usage:       "Also write the plotted points to this parquet file",
						Destination: &exportFile,
					},
				}, configFlags...),
			},
			{
				Name:    "peaks",
				Aliases: []string{"k"},
				Usage:   "Print the strongest frequency bins of a recording",
				Action: func(cCtx *cli.Context) error {
					log.Infof("Handling file name: %s", fileName)
					name := strings.TrimSuffix(filepath.Base(fileName), filepath.Ext(fileName))
					a, err := analyzeAll([]Waveform{{name, fileName}}, cfg)
					if err != nil {
						return err
					}
					printPeaks(a[0].Spectrum.Peaks(count))
					return nil
				},
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:        "file",
						Aliases:     []string{"f"},
						Usage:       "Recording to analyze",
						Destination: &fileName,
						Required:    true,
					},
					&cli.IntFlag{
						Name:        "count",
						Aliases:     []string{"n"},
						Usage:       "Number of bins to print",
						Value:       10,
						Destination: &count,
					},
				}, configFlags...),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// writePlots renders into memory and only touches the output files once
// every chart was rendered, so a failed run leaves earlier output in place.
func writePlots(analyses []*Analysis, outFile, exportFile string) error {
	var page, export bytes.Buffer
	presenters := multiPresenter{newChartPresenter(&page, "Waveforms")}
	if exportFile != "" {
		presenters = append(presenters, newParquetPresenter(&export))
	}

	if err := present(analyses, presenters); err != nil {
		presenters.Close()
		return err
	}
	if err := presenters.Close(); err != nil {
		return err
	}

	if exportFile != "" {
		if err := os.WriteFile(exportFile, export.Bytes(), 0o644); err != nil {
			return err
		}
		log.Infof("Points exported to %s", exportFile)
	}
	if err := os.WriteFile(outFile, page.Bytes(), 0o644); err != nil {
		return err
	}
	log.Infof("Charts written to %s", outFile)
	return nil
}

func printPeaks(units []SpectrumUnit) {
	fmt.Printf("%6s %12s %10s\n", "bin", "freq (Hz)", "magnitude")
	for _, u := range units {
		fmt.Printf("%6d %12.2f %10.4f\n", u.Bin, u.Freq, u.Magn)
	}
}
