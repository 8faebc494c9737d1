package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/fako1024/ntctherm/pkg/api"
	"github.com/fako1024/ntctherm/pkg/divider"
	"github.com/fako1024/ntctherm/pkg/mock"
	"github.com/fako1024/ntctherm/pkg/ntc"
	"github.com/fako1024/ntctherm/pkg/remoteadc"
	"github.com/fako1024/ntctherm/pkg/sensor"
	"github.com/sirupsen/logrus"
)

type config struct {
	name string
	unit string

	serve   string
	useMock bool
}

var log = logrus.New()

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() (err error) {

	// Parse command line options
	var (
		cfg     config
		sampler sensor.Sampler
	)

	flag.StringVar(&cfg.name, "name", "NTCPROBE", "name of remote probe")
	flag.StringVar(&cfg.unit, "unit", "c", "output unit (c / f / k)")
	flag.StringVar(&cfg.serve, "serve", "", "serve the REST API on this endpoint instead of reading once")
	flag.BoolVar(&cfg.useMock, "mock", false, "use a mock sampler instead of a BLE probe")
	flag.Parse()

	if cfg.useMock {
		sampler = mock.New()
	} else {
		probe, perr := remoteadc.New(remoteadc.WithDeviceName(cfg.name))
		if perr != nil {
			return fmt.Errorf("failed to initialize remote ADC probe: %s", perr)
		}
		defer func() {
			if cerr := probe.Close(); cerr != nil {
				err = cerr
				return
			}
		}()

		// Wait for the first frame to arrive before reading
		for !probe.Ready() {
			time.Sleep(100 * time.Millisecond)
		}
		sampler = probe
	}

	conv, err := ntc.New()
	if err != nil {
		return fmt.Errorf("failed to initialize NTC converter: %s", err)
	}

	s := sensor.New().
		AddSampler(sampler).
		AddResistanceConverter(divider.New()).
		AddTemperatureConverter(conv).
		SetUnit(parseUnit(cfg.unit)).
		Build()

	if cfg.serve != "" {
		api.New(s, cfg.serve)
		select {}
	}

	temp := s.ReadTemperature()
	if temp == sensor.InvalidTemperature {
		return fmt.Errorf("no valid temperature reading")
	}
	fmt.Printf("%.1f %s\n", temp, s.Unit())

	return nil
}

func parseUnit(unit string) sensor.Unit {
	switch unit {
	case "f", "F":
		return sensor.UnitFahrenheit
	case "k", "K":
		return sensor.UnitKelvin
	default:
		return sensor.UnitCelsius
	}
}
