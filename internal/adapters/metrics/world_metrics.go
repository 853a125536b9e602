package metrics

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/andrescamacho/outpost-go/internal/application/simulation"
)

// WorldMetricsCollector exposes world state as gauges and world events as counters
type WorldMetricsCollector struct {
	// Dependencies
	getStatus    func() simulation.WorldStatus
	getGround    func() map[string]int
	pollInterval time.Duration

	// Polled gauges
	elapsedSeconds    prometheus.Gauge
	worldStatus       *prometheus.GaugeVec
	factoryPower      *prometheus.GaugeVec
	factoryQueueDepth *prometheus.GaugeVec
	factoryCrafting   *prometheus.GaugeVec
	rocketParts       prometheus.Gauge
	rocketFuel        prometheus.Gauge
	monsterHunger     prometheus.Gauge
	depositHitPoints  *prometheus.GaugeVec
	groundItems       *prometheus.GaugeVec

	// Event counters
	eventsTotal *prometheus.CounterVec
	craftsTotal *prometheus.CounterVec

	// Lifecycle
	ctx        context.Context
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup
}

var worldStatuses = []string{"RUNNING", "LAUNCHED", "LOST"}

// NewWorldMetricsCollector creates a world collector; getGround may be nil
func NewWorldMetricsCollector(
	getStatus func() simulation.WorldStatus,
	getGround func() map[string]int,
	pollInterval time.Duration,
) *WorldMetricsCollector {
	if pollInterval <= 0 {
		pollInterval = 5 * time.Second
	}

	gauge := func(name, help string) prometheus.Gauge {
		return prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: subsystem, Name: name, Help: help,
		})
	}
	gaugeVec := func(name, help string, labels ...string) *prometheus.GaugeVec {
		return prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: subsystem, Name: name, Help: help,
		}, labels)
	}

	return &WorldMetricsCollector{
		getStatus:    getStatus,
		getGround:    getGround,
		pollInterval: pollInterval,

		elapsedSeconds:    gauge("elapsed_seconds", "Simulated time elapsed"),
		worldStatus:       gaugeVec("status", "Current game status (1 for the active status)", "status"),
		factoryPower:      gaugeVec("factory_power", "Remaining power per factory (0-1)", "factory"),
		factoryQueueDepth: gaugeVec("factory_queue_depth", "Crafted items waiting to drop per factory", "factory"),
		factoryCrafting:   gaugeVec("factory_crafting", "Whether the factory is crafting (1) or not (0)", "factory"),
		rocketParts:       gauge("rocket_parts_delivered", "Rocket parts delivered to the pad"),
		rocketFuel:        gauge("rocket_fuel_units", "Fuel units stored in the rocket tank"),
		monsterHunger:     gauge("monster_hunger", "Monster hunger (0-1)"),
		depositHitPoints:  gaugeVec("deposit_hit_points", "Remaining hit points per deposit", "deposit"),
		groundItems:       gaugeVec("ground_items", "Released items lying on the ground", "item"),

		eventsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "events_total",
				Help:      "Total number of world events by kind",
			},
			[]string{"kind"},
		),
		craftsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "crafts_total",
				Help:      "Total number of crafted recipes by factory and recipe",
			},
			[]string{"factory", "recipe"},
		),
	}
}

// Register registers all world metrics with the Prometheus registry
func (c *WorldMetricsCollector) Register() error {
	return registerAll(
		c.elapsedSeconds,
		c.worldStatus,
		c.factoryPower,
		c.factoryQueueDepth,
		c.factoryCrafting,
		c.rocketParts,
		c.rocketFuel,
		c.monsterHunger,
		c.depositHitPoints,
		c.groundItems,
		c.eventsTotal,
		c.craftsTotal,
	)
}

// Start begins the polling goroutine for world gauges
func (c *WorldMetricsCollector) Start(ctx context.Context) {
	c.ctx, c.cancelFunc = context.WithCancel(ctx)

	c.wg.Add(1)
	go c.pollMetrics(c.pollInterval)
}

// Stop gracefully stops the world metrics collector
func (c *WorldMetricsCollector) Stop() {
	if c.cancelFunc != nil {
		c.cancelFunc()
	}
	c.wg.Wait()
}

func (c *WorldMetricsCollector) pollMetrics(interval time.Duration) {
	defer c.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	c.Update()

	for {
		select {
		case <-c.ctx.Done():
			return
		case <-ticker.C:
			c.Update()
		}
	}
}

// Update refreshes every gauge from the current world status
func (c *WorldMetricsCollector) Update() {
	if c.getStatus == nil {
		return
	}
	c.Observe(c.getStatus())

	if c.getGround != nil {
		c.groundItems.Reset()
		for item, count := range c.getGround() {
			c.groundItems.WithLabelValues(item).Set(float64(count))
		}
	}
}

// Observe sets the gauges from a status snapshot
func (c *WorldMetricsCollector) Observe(status simulation.WorldStatus) {
	c.elapsedSeconds.Set(status.Elapsed)

	for _, s := range worldStatuses {
		value := 0.0
		if s == status.Status {
			value = 1
		}
		c.worldStatus.WithLabelValues(s).Set(value)
	}

	c.factoryPower.Reset()
	c.factoryQueueDepth.Reset()
	c.factoryCrafting.Reset()
	for _, f := range status.Factories {
		c.factoryPower.WithLabelValues(f.Name).Set(f.Power)
		c.factoryQueueDepth.WithLabelValues(f.Name).Set(float64(len(f.Queue)))
		crafting := 0.0
		if f.State == "CRAFTING" {
			crafting = 1
		}
		c.factoryCrafting.WithLabelValues(f.Name).Set(crafting)
	}

	if status.Rocket != nil {
		c.rocketParts.Set(float64(status.Rocket.Parts))
		c.rocketFuel.Set(float64(status.Rocket.FuelStored))
	}
	if status.Monster != nil {
		c.monsterHunger.Set(status.Monster.Hunger)
	}

	c.depositHitPoints.Reset()
	for _, d := range status.Deposits {
		c.depositHitPoints.WithLabelValues(d.Name).Set(float64(d.HitPoints))
	}
}

// RecordEvent counts a world event
func (c *WorldMetricsCollector) RecordEvent(e simulation.Event) {
	c.eventsTotal.WithLabelValues(string(e.Kind)).Inc()
	if e.Kind == simulation.EventRecipeCrafted {
		c.craftsTotal.WithLabelValues(e.Source, e.Item).Inc()
	}
}
