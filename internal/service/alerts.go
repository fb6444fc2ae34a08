package service

import (
	"fmt"

	"dehydrate_monitor/internal/models"
)

const (
	highHumidityPct    = 80.0
	lowDrynessPct      = 20.0
	ventilationMessage = "Humidity is high, ensure proper ventilation."
	completionMessage  = "Simulation complete. Data cycle finished."
	parseFailedMessage = "Failed to parse sensor data. Check CSV format."
)

// EvaluateAlert returns the banner for a reading. The first matching rule wins:
// anomaly, then high humidity on barely dried produce. Otherwise the alert is cleared.
func EvaluateAlert(r *models.SensorReading) models.Alert {
	if r == nil {
		return models.Alert{}
	}
	if r.AnomalyFlag {
		return models.Alert{
			Message:  fmt.Sprintf("Anomaly Detected! Potential issue with %s drying.", r.ProduceType),
			Severity: models.SeverityError,
		}
	}
	if r.HumidityPct > highHumidityPct && r.DrynessPct < lowDrynessPct {
		return models.Alert{Message: ventilationMessage, Severity: models.SeverityWarning}
	}
	return models.Alert{}
}

func completionAlert() models.Alert {
	return models.Alert{Message: completionMessage, Severity: models.SeverityInfo}
}
