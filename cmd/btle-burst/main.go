/*
DESCRIPTION
  btle-burst configures an OOK burst generator from a config file or
  flags, triggers a single burst, and writes the resulting samples to a
  WAV file.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package btle-burst is a command-line tool for generating OOK remote
// control bursts and writing them to a WAV file.
package main

import (
	"flag"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/pkg/errors"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ausocean/btle/burst"
	"github.com/ausocean/btle/config"
	"github.com/ausocean/utils/logging"
)

// Logging configuration.
const (
	logPath      = "btle-burst.log"
	logMaxSize   = 500 // MB
	logMaxBackup = 10
	logMaxAge    = 28 // days
	logSuppress  = true
)

// wavBitDepth is the bit depth written to the output WAV file.
const wavBitDepth = 16

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file (optional).")
	outPath := flag.String("out", "burst.wav", "Path to write the output WAV file.")
	mode := flag.Bool("mode", false, "Burst mode: true (on) or false (off).")
	group := flag.String("group", "A", "Remote control group.")
	rate := flag.Float64("rate", 250e3, "Output sample rate in Sps.")
	repeat := flag.Int("repeat", 10, "Number of times to repeat the chosen code.")
	gpioPin := flag.String("gpio", "", "GPIO pin name to trigger a burst from (Pi builds only).")
	flag.Parse()

	fileLog := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    logMaxSize,
		MaxBackups: logMaxBackup,
		MaxAge:     logMaxAge,
	}
	l := logging.New(logging.Info, fileLog, logSuppress)

	cfg := &config.Config{
		Logger:  l,
		Mode:    *mode,
		Group:   *group,
		RateSps: *rate,
		Repeat:  *repeat,
	}
	if *configPath != "" {
		vars, err := config.Load(*configPath)
		if err != nil {
			l.Fatal("could not load config", "error", err)
		}
		cfg.Update(vars)
	}
	if err := cfg.Validate(); err != nil {
		l.Fatal("invalid config", "error", err)
	}

	gen := &burst.Generator{
		Mode:       cfg.Mode,
		Group:      cfg.Group,
		RateSps:    cfg.RateSps,
		Gain:       cfg.Gain,
		Repeat:     cfg.Repeat,
		StartLabel: cfg.StartLabel,
		EndLabel:   cfg.EndLabel,
	}

	if *gpioPin != "" {
		if err := watchGPIO(*gpioPin, gen, l); err != nil {
			l.Fatal("GPIO watch failed", "error", err)
		}
		return
	}

	f, err := os.Create(*outPath)
	if err != nil {
		l.Fatal("could not create output WAV file", "error", err)
	}
	defer f.Close()

	if err := writeBurst(gen, f, int(cfg.RateSps), l); err != nil {
		l.Fatal("burst generation failed", "error", err)
	}
}

// writeBurst triggers gen and streams its output samples into a mono WAV
// file at the given sample rate, logging the start/end labels it posts.
func writeBurst(gen *burst.Generator, f *os.File, sampleRate int, l logging.Logger) error {
	gen.Trigger()

	enc := wav.NewEncoder(f, sampleRate, wavBitDepth, 1, 1)
	defer enc.Close()

	const chunk = 4096
	out := make([]complex64, chunk)
	intData := make([]int, chunk)

	for !gen.Done() {
		n, startLabel, endLabel := gen.Work(out)
		if n == 0 {
			break
		}
		if startLabel != nil {
			l.Info("burst start", "label", startLabel.Name, "samples", startLabel.Value)
		}
		if endLabel != nil {
			l.Info("burst end", "label", endLabel.Name, "index", endLabel.Index)
		}

		for i := 0; i < n; i++ {
			intData[i] = int(real(out[i]) * 32767)
		}
		buf := &audio.IntBuffer{
			Data:   intData[:n],
			Format: &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		}
		if err := enc.Write(buf); err != nil {
			return errors.Wrap(err, "writing WAV samples")
		}
	}
	return nil
}
