package remoteadc

import (
	"github.com/fako1024/gatt"
	"github.com/fako1024/ntctherm/pkg/sensor"
)

// WithDeviceID sets the Bluetooth device ID
func WithDeviceID(deviceID string) func(*Probe) {
	return func(p *Probe) {
		p.deviceID = deviceID
	}
}

// WithDeviceName sets the Bluetooth device name
func WithDeviceName(deviceName string) func(*Probe) {
	return func(p *Probe) {
		p.deviceName = deviceName
	}
}

// WithDevice sets the Bluetooth device
func WithDevice(btDevice gatt.Device) func(*Probe) {
	return func(p *Probe) {
		p.btDevice = btDevice
	}
}

// WithLogger sets the logger used for diagnostics
func WithLogger(logger sensor.Logger) func(*Probe) {
	return func(p *Probe) {
		if logger != nil {
			p.logger = logger
		}
	}
}
