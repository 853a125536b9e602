package config

import (
	"net"
	"strconv"
)

// MetricsConfig controls the Prometheus endpoint of `serve`
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`

	// Listen address; host defaults to localhost
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port" validate:"omitempty,min=1024,max=65535"`

	// Scrape path, /metrics by default
	Path string `mapstructure:"path" validate:"omitempty,startswith=/"`
}

// Address returns host:port for the metrics listener
func (m MetricsConfig) Address() string {
	return net.JoinHostPort(m.Host, strconv.Itoa(m.Port))
}
