package scoring

// Config задаёт веса и пороги оценки. Значения фиксируются на старте
// и не меняются в процессе работы.
type Config struct {
	RouteWeight     float64
	ProximityWeight float64
	TimeWeight      float64
	CapacityWeight  float64

	MaxPickupDeviationKm   float64
	MaxDeliveryDeviationKm float64
	ProximityRadiusKm      float64
}

const (
	defaultRouteWeight     = 0.4
	defaultProximityWeight = 0.3
	defaultTimeWeight      = 0.2
	defaultCapacityWeight  = 0.1

	defaultMaxDeviationKm    = 10.0
	defaultProximityRadiusKm = 50.0
)

func DefaultConfig() Config {
	return Config{
		RouteWeight:            defaultRouteWeight,
		ProximityWeight:        defaultProximityWeight,
		TimeWeight:             defaultTimeWeight,
		CapacityWeight:         defaultCapacityWeight,
		MaxPickupDeviationKm:   defaultMaxDeviationKm,
		MaxDeliveryDeviationKm: defaultMaxDeviationKm,
		ProximityRadiusKm:      defaultProximityRadiusKm,
	}
}

// withDefaults подставляет дефолты вместо нулевых значений,
// частично заданная конфигурация остаётся рабочей.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.RouteWeight == 0 {
		c.RouteWeight = d.RouteWeight
	}
	if c.ProximityWeight == 0 {
		c.ProximityWeight = d.ProximityWeight
	}
	if c.TimeWeight == 0 {
		c.TimeWeight = d.TimeWeight
	}
	if c.CapacityWeight == 0 {
		c.CapacityWeight = d.CapacityWeight
	}
	if c.MaxPickupDeviationKm == 0 {
		c.MaxPickupDeviationKm = d.MaxPickupDeviationKm
	}
	if c.MaxDeliveryDeviationKm == 0 {
		c.MaxDeliveryDeviationKm = d.MaxDeliveryDeviationKm
	}
	if c.ProximityRadiusKm == 0 {
		c.ProximityRadiusKm = d.ProximityRadiusKm
	}
	return c
}
