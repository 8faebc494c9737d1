// Package remoteadc implements a sensor.Sampler backed by a battery powered
// BLE probe that streams raw NTC divider ADC codes. The probe pushes small
// ASCII frames over a GATT characteristic; the latest received code is cached
// so that Sample stays a synchronous, non-blocking call for the pipeline
package remoteadc

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/fako1024/gatt"
	"github.com/fako1024/ntctherm/pkg/sensor"
	"github.com/fatih/stopwatch"
)

const (
	defaultDeviceName  = "NTCPROBE"
	dataService        = "ffb0"
	dataCharacteristic = "ffb1"

	// Frame layout (12 ASCII bytes): "A:" + 5 digit ADC code + ';' +
	// status byte + battery byte + CR LF
	frameLength     = 12
	frameCodeStart  = 2
	frameCodeEnd    = 7
	frameStatusByte = 8
	frameBattByte   = 9

	minBatteryLevel = 129.
	maxBatteryLevel = 158.
)

// RawSample denotes a raw ADC code received from the probe at a certain point
// in time
type RawSample struct {
	TimeStamp time.Time
	Code      uint16
}

// Probe denotes a remote BLE ADC probe
type Probe struct {
	connectionStatus sensor.ConnectionStatus
	batteryLevel     byte
	lastCode         uint16
	hasReceivedData  bool

	age *stopwatch.Stopwatch

	deviceID   string
	deviceName string

	stateChangeHandler func(status sensor.ConnectionStatus)
	stateChangeChan    chan sensor.ConnectionStatus

	sampleHandler func(data RawSample)
	sampleChan    chan RawSample
	doneChan      chan struct{}

	btDevice         gatt.Device
	btPeripheral     gatt.Peripheral
	btCharacteristic *gatt.Characteristic

	logger sensor.Logger
}

// New instantiates a new Probe struct, executing functional options, if any
func New(options ...func(*Probe)) (*Probe, error) {

	// Initialize a new instance of a remote ADC probe
	p := &Probe{
		deviceName: defaultDeviceName,
		doneChan:   make(chan struct{}),
		logger:     &sensor.NullLogger{},
	}

	// Execute functional options (if any), see options.go for implementation
	for _, option := range options {
		option(p)
	}

	// Initialize a new GATT device (if not provided as option)
	if p.btDevice == nil {
		btDevice, err := gatt.NewDevice(defaultBTClientOptions...)
		if err != nil {
			return nil, err
		}
		p.btDevice = btDevice
	}

	return p, p.subscribe()
}

// Sample returns the latest ADC code received from the probe. Until the first
// frame arrives it returns 0, which downstream converters treat as a
// degenerate reading
func (p *Probe) Sample() uint16 {
	return p.lastCode
}

// Ready returns whether at least one frame has been received from the probe
func (p *Probe) Ready() bool {
	return p.hasReceivedData
}

// Age returns the time elapsed since the last frame was received from the
// probe (0 if no frame was received yet)
func (p *Probe) Age() time.Duration {
	if p.age != nil {
		return p.age.ElapsedTime()
	}

	return 0
}

// ConnectionStatus returns the current status of the bluetooth device
func (p *Probe) ConnectionStatus() sensor.ConnectionStatus {
	return p.connectionStatus
}

// BatteryLevel returns the current battery level
func (p *Probe) BatteryLevel() float64 {
	return parseBatteryLevel(p.batteryLevel)
}

// BatteryLevelRaw returns the current battery level in its raw form
func (p *Probe) BatteryLevelRaw() int {
	return int(p.batteryLevel)
}

// SetStateChangeHandler defines a handler function that is called upon state change
func (p *Probe) SetStateChangeHandler(fn func(status sensor.ConnectionStatus)) {
	p.stateChangeHandler = fn
}

// SetStateChangeChannel defines a channel that state changes are put on
func (p *Probe) SetStateChangeChannel(ch chan sensor.ConnectionStatus) {
	p.stateChangeChan = ch
}

// SetSampleHandler defines a handler function that is called upon retrieval of
// a raw ADC frame
func (p *Probe) SetSampleHandler(fn func(data RawSample)) {
	p.sampleHandler = fn
}

// SetSampleChannel defines a channel that raw ADC frames are put on
func (p *Probe) SetSampleChannel(ch chan RawSample) {
	p.sampleChan = ch
}

// Close terminates the connection to the device
func (p *Probe) Close() error {
	close(p.doneChan)

	_ = p.btDevice.StopScanning()
	return p.btDevice.RemoveAllServices()
}

////////////////////////////////////////////////////////////////////////////////

func (p *Probe) subscribe() error {

	// Register handlers
	p.btDevice.Handle(
		gatt.AddPeripheralDiscovered(p.genOnPeriphDiscovered()),
		gatt.AddPeripheralConnected(p.onPeriphConnected),
		gatt.AddPeripheralDisconnected(p.onPeriphDisconnected),
	)

	// Initialize the device
	return p.btDevice.Init(p.onStateChanged)
}

func (p *Probe) setStatus(state sensor.State, err error) {
	p.connectionStatus = sensor.ConnectionStatus{
		State: state,
		Error: err,
	}

	// Call handler function, if any
	if p.stateChangeHandler != nil {
		p.stateChangeHandler(p.connectionStatus)
	}

	// Put state change on channel, if any
	if p.stateChangeChan != nil {
		select {
		case p.stateChangeChan <- p.connectionStatus:
		default:
		}
	}
}

////////////////////////////////////////////////////////////////////////////////

func (p *Probe) onStateChanged(d gatt.Device, s gatt.State) {
	switch s {
	case gatt.StatePoweredOn:
		p.setStatus(sensor.StateScanning, nil)
		if err := d.Scan([]gatt.UUID{}, false); err != nil {
			p.logger.Warnf("failed to enable initial scanning: %s", err)
		}
		return
	case gatt.StatePoweredOff:
		p.setStatus(sensor.StateDisconnected, nil)
		return
	default:
		if err := d.StopScanning(); err != nil {
			p.logger.Warnf("failed to stop initial scanning: %s", err)
		}
	}
}

func (p *Probe) genOnPeriphDiscovered() func(per gatt.Peripheral, arg2 *gatt.Advertisement, arg3 int) {
	return func(per gatt.Peripheral, arg2 *gatt.Advertisement, arg3 int) {

		p.logger.Debugf("discovered device `%s/%s`", per.Name(), per.ID())

		if !p.thisDevice(per) {
			return
		}

		p.logger.Debugf("connecting device `%s/%s`", per.Name(), per.ID())

		// Stop scanning once we've got the peripheral we're looking for.
		if err := per.Device().StopScanning(); err != nil {
			p.logger.Warnf("failed to stop initial scanning: %s", err)
		}
		if err := per.Device().Connect(per); err != nil {
			p.logger.Errorf("failed to connect device `%s/%s`: %s", per.Name(), per.ID(), err)
		}

		p.logger.Debugf("connected device `%s/%s`", per.Name(), per.ID())
	}
}

func (p *Probe) onPeriphConnected(per gatt.Peripheral, connErr error) {

	if !p.thisDevice(per) {
		return
	}

	p.logger.Debugf("connected peripheral `%s/%s`", per.Name(), per.ID())

	p.setStatus(sensor.StateConnected, nil)
	defer func() {
		_ = per.Device().CancelConnection(per)
		p.setStatus(sensor.StateDisconnected, connErr)
	}()

	// Set connection MTU
	if err := per.SetMTU(500); err != nil {
		connErr = fmt.Errorf("failed to set MTU: %w", err)
		return
	}

	// Discover services
	ss, err := per.DiscoverServices(nil)
	if err != nil {
		connErr = fmt.Errorf("failed to discover services: %w", err)
		return
	}
	for _, s := range ss {
		if s.UUID().String() == dataService {

			// Discover characteristics
			cs, err := per.DiscoverCharacteristics(nil, s)
			if err != nil {
				connErr = fmt.Errorf("failed to discover characteristics: %w", err)
				return
			}
			for _, c := range cs {
				if c.UUID().String() == dataCharacteristic {
					p.btPeripheral = per
					p.btCharacteristic = c

					// Discover descriptors
					_, err := per.DiscoverDescriptors(nil, c)
					if err != nil {
						connErr = fmt.Errorf("failed to discover descriptors: %w", err)
						return
					}

					if err := per.SetNotifyValue(c, p.receiveData); err != nil {
						connErr = fmt.Errorf("failed to subscribe characteristic: %w", err)
						return
					}
				}
			}
		}
	}

	p.logger.Debugf("waiting to release peripheral `%s/%s`", per.Name(), per.ID())
	<-p.doneChan
	p.logger.Debugf("released peripheral `%s/%s`", per.Name(), per.ID())
}

func (p *Probe) onPeriphDisconnected(per gatt.Peripheral, _ error) {

	if !p.thisDevice(per) {
		return
	}

	p.disconnect()
	p.logger.Debugf("disconnected peripheral `%s/%s`", per.Name(), per.ID())

	time.Sleep(100 * time.Millisecond)
	p.setStatus(sensor.StateScanning, nil)
	if err := p.btDevice.Scan([]gatt.UUID{}, false); err != nil {
		p.logger.Warnf("failed to re-enable scanning after disconnect: %s", err)
	}
}

func (p *Probe) thisDevice(per gatt.Peripheral) bool {

	// Check if name and / or device ID have been overridden
	if p.deviceID != "" && strings.EqualFold(per.ID(), p.deviceID) {
		return true
	}
	return strings.EqualFold(per.Name(), p.deviceName)
}

func (p *Probe) disconnect() {
	select {
	case p.doneChan <- struct{}{}:
	default:
	}
}

func (p *Probe) receiveData(_ *gatt.Characteristic, req []byte, err error) {

	if err != nil || len(req) != frameLength {
		return
	}

	code, convErr := strconv.ParseUint(string(req[frameCodeStart:frameCodeEnd]), 10, 16)
	if convErr != nil {
		return
	}

	p.lastCode = uint16(code)
	p.batteryLevel = req[frameBattByte]
	p.hasReceivedData = true
	p.resetAge()

	rawSample := RawSample{
		TimeStamp: time.Now(),
		Code:      uint16(code),
	}

	// Call handler function, if any
	if p.sampleHandler != nil {
		p.sampleHandler(rawSample)
	}

	// Put raw sample on channel, if any
	if p.sampleChan != nil {
		select {
		case p.sampleChan <- rawSample:
		default:
		}
	}
}

func (p *Probe) resetAge() {
	if p.age == nil {
		p.age = stopwatch.Start(0)
		return
	}

	p.age.Reset()
	p.age.Start(0)
}

////////////////////////////////////////////////////////////////////////////////

func parseBatteryLevel(data byte) float64 {

	val := int(data)
	if val < minBatteryLevel {
		return 0.
	} else if val > maxBatteryLevel {
		return 1.
	}

	return math.Round((float64(val)-minBatteryLevel)/(maxBatteryLevel-minBatteryLevel)*100.) / 100.
}
