package models

// ProduceType is the kind of produce being dried.
type ProduceType string

const (
	ProduceTomato   ProduceType = "Tomato Slices"
	ProduceHabanero ProduceType = "Habanero Peppers"
	ProduceOnion    ProduceType = "Onion Slices"
)

// DefaultProduce is used when no reading is available.
const DefaultProduce = ProduceTomato

// KnownProduce lists the produce types accepted by the dataset loader.
var KnownProduce = []ProduceType{ProduceTomato, ProduceHabanero, ProduceOnion}

// Valid reports whether p is one of the known produce types.
func (p ProduceType) Valid() bool {
	for _, k := range KnownProduce {
		if p == k {
			return true
		}
	}
	return false
}

// SensorReading is one row of the replayed dataset.
type SensorReading struct {
	Timestamp    string      `json:"timestamp"`
	ProduceType  ProduceType `json:"produce_type"`
	TemperatureC float64     `json:"temperature_c"` // °C
	HumidityPct  float64     `json:"humidity_pct"`  // %
	PressureHPa  float64     `json:"pressure_hpa"`  // hPa
	DrynessPct   float64     `json:"dryness_pct"`   // 0..100
	AnomalyFlag  bool        `json:"anomaly_flag"`
}
