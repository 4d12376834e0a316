// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/BOXFoundation/opvm/log"
	metrics "github.com/rcrowley/go-metrics"
	influxdb "github.com/vrischmann/go-metrics-influxdb"
)

var logger = log.NewLogger("metrics")

const (
	interval = 500 * time.Millisecond
)

// Run starts reporting the default registry to influxdb. It returns at once.
func Run(config *Config) {
	if !config.Enable {
		return
	}
	url := fmt.Sprintf("http://%s:%d", config.Host, config.Port)
	logger.Infof("Reporting metrics to %s/%s", url, config.Db)
	go influxdb.InfluxDB(metrics.DefaultRegistry, interval, url, config.Db, config.User, config.Password)
}

// Dump writes a snapshot of all registered metrics to w.
func Dump(w io.Writer) {
	metrics.WriteOnce(metrics.DefaultRegistry, w)
}

// NewCounter create a new metrics Counter
func NewCounter(name string) metrics.Counter {
	return metrics.GetOrRegisterCounter(name, metrics.DefaultRegistry)
}

// NewMeter create a new metrics Meter
func NewMeter(name string) metrics.Meter {
	return metrics.GetOrRegisterMeter(name, metrics.DefaultRegistry)
}

// NewTimer create a new metrics Timer
func NewTimer(name string) metrics.Timer {
	return metrics.GetOrRegisterTimer(name, metrics.DefaultRegistry)
}

// NewGauge create a new metrics Gauge
func NewGauge(name string) metrics.Gauge {
	return metrics.GetOrRegisterGauge(name, metrics.DefaultRegistry)
}
