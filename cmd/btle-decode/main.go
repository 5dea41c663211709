/*
DESCRIPTION
  btle-decode reads a mono 16-bit PCM WAV file, feeds it through the BTLE
  advertising-channel decoder, and prints each decoded packet as a line
  of JSON. A configured service UUID16 is additionally watched by a
  sensor monitor, whose state transitions are logged.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package btle-decode is a command-line tool for offline decoding of a
// recorded BTLE advertising-channel capture.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-audio/wav"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ausocean/btle/config"
	"github.com/ausocean/btle/decode"
	"github.com/ausocean/btle/sensor"
	"github.com/ausocean/utils/logging"
)

// Logging configuration.
const (
	logPath      = "btle-decode.log"
	logMaxSize   = 500 // MB
	logMaxBackup = 10
	logMaxAge    = 28 // days
	logSuppress  = true
)

// bufFrames is the number of audio frames read from the WAV file per
// decode chunk.
const bufFrames = 4096

func main() {
	wavPath := flag.String("wav", "", "Path to the WAV file to decode.")
	configPath := flag.String("config", "", "Path to a YAML config file (optional).")
	flag.Parse()

	fileLog := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    logMaxSize,
		MaxBackups: logMaxBackup,
		MaxAge:     logMaxAge,
	}
	l := logging.New(logging.Info, fileLog, logSuppress)

	cfg := &config.Config{Logger: l}
	if *configPath != "" {
		if err := loadConfig(cfg, *configPath); err != nil {
			l.Fatal("could not load config", "error", err)
		}
		watchConfig(cfg, *configPath, l)
	}
	if err := cfg.Validate(); err != nil {
		l.Fatal("invalid config", "error", err)
	}

	if *wavPath == "" {
		*wavPath = cfg.InputPath
	}
	if *wavPath == "" {
		l.Fatal("no WAV file specified")
	}

	f, err := os.Open(*wavPath)
	if err != nil {
		l.Fatal("could not open WAV file", "error", err)
	}
	defer f.Close()

	mon := &sensor.Monitor{
		ServiceUUID16:     cfg.ServiceUUID16,
		ActivationLevel:   cfg.ActivationLevel,
		DeactivationLevel: cfg.DeactivationLevel,
		AlarmTimeout:      cfg.AlarmTimeout,
	}

	if err := run(f, l, mon); err != nil {
		l.Fatal("decode run failed", "error", err)
	}
}

// run streams samples from the WAV file through the decoder, printing
// each decoded packet as JSON and logging sensor state transitions. A
// diagnostic summary of the sliding threshold trace is logged at the end.
func run(r io.Reader, l logging.Logger, mon *sensor.Monitor) error {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return errors.New("not a valid WAV file")
	}

	d := decode.NewDecoder()
	var thresholds []float64
	buf := &wavIntBuffer{frames: bufFrames}

	for {
		n, err := buf.read(dec)
		if err != nil {
			return errors.Wrap(err, "reading WAV samples")
		}
		if n == 0 {
			break
		}
		for _, s := range buf.data[:n] {
			rec, ok := d.FeedSample(uint16(int16(s)))
			thresholds = append(thresholds, float64(d.LastThreshold()))
			if !ok {
				continue
			}
			line, err := json.Marshal(rec)
			if err != nil {
				l.Error("could not marshal record", "error", err)
				continue
			}
			fmt.Println(string(line))

			if sig, changed := mon.Observe(rec, time.Now()); changed {
				l.Info("sensor state changed", "state", sig.State.String(), "value", sig.Value)
			}
		}
	}

	if len(thresholds) > 0 {
		mean, variance := stat.MeanVariance(thresholds, nil)
		l.Info("threshold summary", "mean", mean, "variance", variance)
	}
	return nil
}

func loadConfig(cfg *config.Config, path string) error {
	vars, err := config.Load(path)
	if err != nil {
		return errors.Wrap(err, "loading config file")
	}
	cfg.Update(vars)
	return nil
}

// watchConfig re-reads path into cfg and re-validates it whenever the file
// changes on disk. The sensor monitor copies its thresholds from cfg once
// at startup, so a reload does not change the running monitor.
func watchConfig(cfg *config.Config, path string, l logging.Logger) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		l.Warning("could not start config watcher", "error", err)
		return
	}
	if err := watcher.Add(path); err != nil {
		l.Warning("could not watch config file", "error", err)
		return
	}
	go func() {
		for event := range watcher.Events {
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := loadConfig(cfg, path); err != nil {
				l.Warning("could not reload config", "error", err)
				continue
			}
			if err := cfg.Validate(); err != nil {
				l.Warning("invalid reloaded config", "error", err)
				continue
			}
			l.Info("config reloaded", "path", path)
		}
	}()
}
