package main

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ardnew/matrix64x32/hub75"
	"github.com/ardnew/matrix64x32/target"
)

type pinSet struct {
	A   uint8 `yaml:"a"`
	B   uint8 `yaml:"b"`
	C   uint8 `yaml:"c"`
	D   uint8 `yaml:"d"`
	CLK uint8 `yaml:"clk"`
	LAT uint8 `yaml:"lat"`
	OE  uint8 `yaml:"oe"`
}

type profileDoc struct {
	Name   string `yaml:"name"`
	Active bool   `yaml:"active,omitempty"`
	Width  int    `yaml:"width"`
	Pins   pinSet `yaml:"pins"`
}

func docOf(p target.Profile) profileDoc {
	return profileDoc{
		Name:   p.Name,
		Active: p.Name == target.Active().Name,
		Width:  hub75.PanelWidth,
		Pins: pinSet{
			A: uint8(p.Pins.A), B: uint8(p.Pins.B), C: uint8(p.Pins.C), D: uint8(p.Pins.D),
			CLK: uint8(p.Pins.CLK), LAT: uint8(p.Pins.LAT), OE: uint8(p.Pins.OE),
		},
	}
}

func (d profileDoc) profile() target.Profile {
	return target.Profile{
		Name: d.Name,
		Pins: hub75.Pins{
			A: hub75.Pin(d.Pins.A), B: hub75.Pin(d.Pins.B),
			C: hub75.Pin(d.Pins.C), D: hub75.Pin(d.Pins.D),
			CLK: hub75.Pin(d.Pins.CLK), LAT: hub75.Pin(d.Pins.LAT), OE: hub75.Pin(d.Pins.OE),
		},
	}
}

func load(path string) (target.Profile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return target.Profile{}, err
	}
	var d profileDoc
	if err := yaml.Unmarshal(b, &d); err != nil {
		return target.Profile{}, err
	}
	return d.profile(), nil
}

func encode(w io.Writer, ps ...target.Profile) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	for _, p := range ps {
		if err := enc.Encode(docOf(p)); err != nil {
			return err
		}
	}
	return nil
}
