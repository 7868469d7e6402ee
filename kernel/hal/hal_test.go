package hal

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/mrjbom/OS/device"
	"github.com/mrjbom/OS/kernel"
	"github.com/mrjbom/OS/kernel/kfmt"
)

type testDriver struct {
	name    string
	out     bytes.Buffer
	initErr *kernel.Error
}

func (d *testDriver) DriverName() string                      { return d.name }
func (d *testDriver) DriverVersion() (uint16, uint16, uint16) { return 1, 2, 3 }
func (d *testDriver) DriverInit(_ io.Writer) *kernel.Error    { return d.initErr }
func (d *testDriver) Write(p []byte) (int, error)             { return d.out.Write(p) }

func TestProbe(t *testing.T) {
	defer func(origSink io.Writer) {
		kfmt.SetOutputSink(origSink)
		devices = managedDevices{}
	}(kfmt.GetOutputSink())

	var log bytes.Buffer
	kfmt.SetOutputSink(&log)

	var (
		diag0  = &testDriver{name: "diag0"}
		diag1  = &testDriver{name: "diag1"}
		broken = &testDriver{
			name:    "brokendev",
			initErr: &kernel.Error{Module: "brokendev", Message: "self-test failed"},
		}
	)

	probe(device.DriverInfoList{
		{Order: device.DetectOrderEarly, Probe: func() device.Driver { return diag0 }},
		{Order: device.DetectOrderNormal, Probe: func() device.Driver { return nil }},
		{Order: device.DetectOrderNormal, Probe: func() device.Driver { return broken }},
		{Order: device.DetectOrderLast, Probe: func() device.Driver { return diag1 }},
	})

	if got, exp := log.String(), "[hal] diag0(1.2.3): initialized\n"; got != exp {
		t.Errorf("expected the pre-switch log to contain %q; got %q", exp, got)
	}

	// Once diag0 becomes the output sink, the remaining probe messages
	// must arrive at the device itself.
	if got := diag0.out.String(); !strings.Contains(got, "[hal] brokendev(1.2.3): init failed: self-test failed\n") {
		t.Errorf("expected the failed probe to be reported on the active channel; got %q", got)
	}

	if got := diag0.out.String(); !strings.Contains(got, "[hal] diag1(1.2.3): initialized\n") {
		t.Errorf("expected the diag1 probe to be reported on the active channel; got %q", got)
	}

	if ActiveDiagnostics() != diag0 {
		t.Error("expected the first initialized writer to remain the active diagnostic channel")
	}

	if got, exp := len(devices.activeDrivers), 2; got != exp {
		t.Errorf("expected %d active drivers; got %d", exp, got)
	}
}
