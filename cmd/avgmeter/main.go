package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/xerrors"

	"github.com/baldisbk/avgmeter"
)

const ConfigFile = ".avgmeter.yaml"

func main() {
	if err := mainFunc(); err != nil {
		fmt.Printf("Failed: %#v", err)
		os.Exit(1)
	}
}

func mainFunc() error {
	input := pflag.StringP("input", "i", "", "Path to observations, stdin if empty")
	config := pflag.StringP("config", "c", ConfigFile, "Path to config")
	precision := pflag.IntP("precision", "p", 0, "Decimal places in the report")
	pflag.Parse()

	cfg := DefaultConfig()
	if err := cfg.Read(*config); err != nil {
		return xerrors.Errorf("config: %w", err)
	}
	if *input != "" {
		cfg.Input = *input
	}
	if *precision > 0 {
		cfg.Precision = *precision
	}

	logcfg := zap.NewDevelopmentConfig()
	logcfg.OutputPaths = []string{"log.log"}
	logger, err := logcfg.Build()
	if err != nil {
		return xerrors.Errorf("logger: %w", err)
	}
	defer logger.Sync()
	sl := logger.Sugar()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// break
	var wg sync.WaitGroup
	done := make(chan struct{})
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	wg.Add(1)
	go func() {
		defer wg.Done()
		select {
		case <-ctx.Done():
		case <-done:
		case <-signals:
			cancel()
		}
	}()

	in := os.Stdin
	if cfg.Input != "" {
		f, err := os.Open(cfg.Input)
		if err != nil {
			return xerrors.Errorf("input: %w", err)
		}
		defer f.Close()
		in = f
	}

	stdout := bufio.NewWriter(os.Stdout)
	defer stdout.Flush()

	spec := fmt.Sprintf("%%.%df", cfg.Precision)
	meter := avgmeter.NewMeter()
	num, err := Feed(ctx, sl, in, meter, func(num int) {
		if num%cfg.Progress != 0 {
			return
		}
		fmt.Fprintf(stdout, "Observations:\t%10d | cur (avg):\t"+spec+"\r", num, meter)
		stdout.Flush()
	})
	if err != nil {
		return xerrors.Errorf("feed: %w", err)
	}
	fmt.Fprintf(stdout, "Observations:\t%10d | sum:\t"+spec+" | count:\t"+spec+" | cur (avg):\t"+spec+"\n",
		num, meter.Sum(), meter.Count(), meter)

	close(done)
	wg.Wait()
	return nil
}
