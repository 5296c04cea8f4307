//go:build tinygo

package main

import (
	"time"

	"github.com/ardnew/matrix64x32/shield"
	"github.com/ardnew/matrix64x32/target"
)

var matrix = shield.New(target.NewDriver)

func main() {
	matrix.Init()
	for {
		time.Sleep(time.Hour)
	}
}
