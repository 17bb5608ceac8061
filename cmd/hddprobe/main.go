// Copyright 2025 Mark Stamp. All rights reserved.
// Use of this source code is governed by an MIT license that can be found in the LICENSE file.

// hddprobe probes USB storage devices for ATA passthrough support, SMART
// capability and HDD likelihood.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/alecthomas/kong"
	"github.com/google/gousb"
	"github.com/sirupsen/logrus"

	"github.com/markstamp/usbsmart"
	"github.com/markstamp/usbsmart/ata"
	"github.com/markstamp/usbsmart/classify"
	"github.com/markstamp/usbsmart/scsi"
	"github.com/markstamp/usbsmart/utils"
)

type identifyCmd struct {
	Device  string `arg:"" help:"Block device node, e.g. /dev/sdb"`
	Timeout uint32 `default:"20000" help:"SCSI command timeout in milliseconds"`
}

func (c *identifyCmd) Run() error {
	dev, err := scsi.Open(c.Device)
	if err != nil {
		return err
	}
	defer dev.Close()

	res, err := usbsmart.Identify(dev, c.Timeout)
	if err != nil {
		return err
	}

	id := &res.Data
	fmt.Printf("Bridge:      %s\n", res.Bridge)
	fmt.Printf("Model:       %s\n", id.Model())
	fmt.Printf("Serial:      %s\n", id.Serial())
	fmt.Printf("Firmware:    %s\n", id.Firmware())
	fmt.Printf("Capacity:    %s\n", utils.FormatBytes(id.Capacity()))
	fmt.Printf("ATA version: %s\n", ata.DescribeMinorVersion(id.MinorVersion))
	fmt.Printf("SMART:       %s", res.Smart)
	if res.Smart == usbsmart.SmartSupported {
		fmt.Printf(" (enabled: %t)", id.SmartEnabled())
	}
	fmt.Println()

	return nil
}

type scoreCmd struct {
	Model      string `arg:"" help:"Device identification string, e.g. 'ST1000DM003'"`
	VID        string `help:"USB vendor ID (hex, e.g. 0x0bc2)"`
	Fixed      bool   `help:"Treat the drive as fixed (non-removable)"`
	Signatures string `type:"path" help:"Optional YAML signature database merged over the built-in tables"`
}

func (c *scoreCmd) Run() error {
	db := classify.Default()
	if c.Signatures != "" {
		var err error
		if db, err = classify.Open(c.Signatures); err != nil {
			return err
		}
	}

	var vid uint16
	if c.VID != "" {
		v, err := strconv.ParseUint(strings.TrimPrefix(c.VID, "0x"), 16, 16)
		if err != nil {
			return fmt.Errorf("invalid vendor ID %q: %w", c.VID, err)
		}
		vid = uint16(v)
	}

	driveType := classify.DriveRemovable
	if c.Fixed {
		driveType = classify.DriveFixed
	}

	fmt.Printf("HDD likelihood score: %d\n", db.Score(driveType, vid, c.Model))
	return nil
}

type scanCmd struct{}

func (c *scanCmd) Run() error {
	for _, dev := range usbsmart.ScanDevices() {
		fmt.Println(dev)
	}
	return nil
}

type usbCmd struct{}

func (c *usbCmd) Run() error {
	ctx := gousb.NewContext()
	defer ctx.Close()

	devs, err := ctx.OpenDevices(func(desc *gousb.DeviceDesc) bool {
		for _, cfg := range desc.Configs {
			for _, iface := range cfg.Interfaces {
				for _, alt := range iface.AltSettings {
					if alt.Class == gousb.ClassMassStorage {
						return true
					}
				}
			}
		}
		return false
	})

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VID\tPID\tPRODUCT\tSCORE")
	for _, dev := range devs {
		product, _ := dev.Product()
		score := classify.Score(classify.DriveUnknown, uint16(dev.Desc.Vendor), product)
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", dev.Desc.Vendor, dev.Desc.Product, product, score)
		dev.Close()
	}
	w.Flush()

	// OpenDevices can return opened devices along with an error
	return err
}

var cli struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Identify identifyCmd `cmd:"" help:"Issue ATA IDENTIFY DEVICE through the bridge probe sequence."`
	Score    scoreCmd    `cmd:"" help:"Score how likely a device is to be a hard disk."`
	Scan     scanCmd     `cmd:"" help:"List SCSI disk device nodes."`
	USB      usbCmd      `cmd:"" name:"usb" help:"List attached USB mass-storage devices with their HDD scores."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("hddprobe"),
		kong.Description("Probe USB storage devices for ATA passthrough, SMART capability and HDD likelihood."))

	if cli.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	ctx.FatalIfErrorf(ctx.Run())
}
