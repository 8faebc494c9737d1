package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fako1024/ntctherm/pkg/divider"
	"github.com/fako1024/ntctherm/pkg/filter"
	"github.com/fako1024/ntctherm/pkg/mock"
	"github.com/fako1024/ntctherm/pkg/ntc"
	"github.com/fako1024/ntctherm/pkg/remoteadc"
	"github.com/fako1024/ntctherm/pkg/sensor"
	"github.com/sirupsen/logrus"
)

type config struct {
	name string
	addr string

	pullupOhms uint
	alpha      float64
	interval   time.Duration

	useMock bool
	debug   bool
}

var log = logrus.New()

func main() {

	// Parse command line options
	var (
		cfg     config
		sampler sensor.Sampler
		err     error
	)

	flag.StringVar(&cfg.name, "name", "NTCPROBE", "name of remote probe")
	flag.StringVar(&cfg.addr, "addr", "", "address of remote probe (MAC on Linux, UUID on OS X)")
	flag.UintVar(&cfg.pullupOhms, "pullup", divider.DefaultPullupOhms, "pullup resistor of the sensing divider (Ω)")
	flag.Float64Var(&cfg.alpha, "alpha", 0.15, "EMA smoothing factor (0 < alpha < 1)")
	flag.DurationVar(&cfg.interval, "interval", time.Second, "read interval")
	flag.BoolVar(&cfg.useMock, "mock", false, "use a mock sampler instead of a BLE probe")
	flag.BoolVar(&cfg.debug, "debug", false, "enable debug logging")
	flag.Parse()

	logger := sensor.NewDefaultLogger(cfg.debug)

	if cfg.useMock {
		sampler = mock.New().WithJitter(4)
	} else {
		probe, perr := remoteadc.New(
			remoteadc.WithDeviceName(cfg.name),
			remoteadc.WithDeviceID(cfg.addr),
			remoteadc.WithLogger(logger),
		)
		if perr != nil {
			log.Fatalf("Failed to initialize remote ADC probe: %s", perr)
		}
		defer func() {
			if cerr := probe.Close(); cerr != nil {
				log.Errorf("Failed to close remote ADC probe: %s", cerr)
			}
		}()
		sampler = probe
	}

	conv, err := ntc.New(ntc.WithLogger(logger))
	if err != nil {
		log.Fatalf("Failed to initialize NTC converter: %s", err)
	}

	s := sensor.New().
		AddSampler(sensor.NewAveragingSampler(sampler, 16, 4)).
		AddResistanceConverter(divider.New(
			divider.WithPullupOhms(uint16(cfg.pullupOhms)),
			divider.WithLogger(logger),
		)).
		AddTemperatureConverter(conv).
		AddFilter(filter.NewEMA(cfg.alpha, 0, filter.WithLogger(logger))).
		SetLogger(logger).
		Build()

	s.SetDataHandler(func(data sensor.DataPoint) {
		log.Infof("Temperature: %.1f %s", data.Temperature, data.Unit)
	})

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM)
	signal.Notify(sigChan, os.Interrupt)

	ticker := time.NewTicker(cfg.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if temp := s.ReadTemperature(); temp == sensor.InvalidTemperature {
				log.Warn("No valid temperature reading")
			}
		case <-sigChan:
			log.Infof("Got signal, terminating")
			return
		}
	}
}
