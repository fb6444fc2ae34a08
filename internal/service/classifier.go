package service

import "dehydrate_monitor/internal/models"

// Dryness thresholds, percent.
const (
	partiallyDryFrom = 30.0
	fullyDryFrom     = 70.0
)

const (
	LoadingImageURL = "https://placehold.co/600x400/E0E7FF/000000?text=Loading+Image..."
	ErrorImageURL   = "https://placehold.co/600x400/CCCCCC/000000?text=Image+Error"
)

// anomalyBucket is the bucket shown for a flagged row of each produce type.
var anomalyBucket = map[models.ProduceType]models.Bucket{
	models.ProduceTomato:   models.BucketMold,
	models.ProduceHabanero: models.BucketDiscoloration,
	models.ProduceOnion:    models.BucketMold,
}

// imageTable holds one placeholder per produce and bucket. Tomato and onion
// discoloration and habanero mold are never selected by Classify.
var imageTable = map[models.ProduceType]map[models.Bucket]string{
	models.ProduceTomato: {
		models.BucketFresh:         "https://placehold.co/600x400/FEE2E2/000000?text=Fresh+Tomato",
		models.BucketPartiallyDry:  "https://placehold.co/600x400/FCD34D/000000?text=Partially+Dry+Tomato",
		models.BucketFullyDry:      "https://placehold.co/600x400/9CA3AF/000000?text=Dried+Tomato",
		models.BucketMold:          "https://placehold.co/600x400/EF4444/FFFFFF?text=Moldy+Tomato+ALERT",
		models.BucketDiscoloration: "https://placehold.co/600x400/DC2626/FFFFFF?text=Discolored+Tomato+ALERT",
	},
	models.ProduceHabanero: {
		models.BucketFresh:         "https://placehold.co/600x400/FDBA74/000000?text=Fresh+Habanero",
		models.BucketPartiallyDry:  "https://placehold.co/600x400/FB923C/000000?text=Partially+Dry+Habanero",
		models.BucketFullyDry:      "https://placehold.co/600x400/7C2D12/FFFFFF?text=Dried+Habanero",
		models.BucketMold:          "https://placehold.co/600x400/EF4444/FFFFFF?text=Moldy+Habanero+ALERT",
		models.BucketDiscoloration: "https://placehold.co/600x400/DC2626/FFFFFF?text=Discolored+Habanero+ALERT",
	},
	models.ProduceOnion: {
		models.BucketFresh:         "https://placehold.co/600x400/E5E7EB/000000?text=Fresh+Onion",
		models.BucketPartiallyDry:  "https://placehold.co/600x400/D1D5DB/000000?text=Partially+Dry+Onion",
		models.BucketFullyDry:      "https://placehold.co/600x400/6B7280/FFFFFF?text=Dried+Onion",
		models.BucketMold:          "https://placehold.co/600x400/EF4444/FFFFFF?text=Moldy+Onion+ALERT",
		models.BucketDiscoloration: "https://placehold.co/600x400/DC2626/FFFFFF?text=Discolored+Onion+ALERT",
	},
}

// Classify maps a reading to its visual bucket. A nil reading is fresh.
// The anomaly flag wins over dryness for known produce types.
func Classify(r *models.SensorReading) models.Bucket {
	if r == nil {
		return models.BucketFresh
	}
	if r.AnomalyFlag {
		if b, ok := anomalyBucket[r.ProduceType]; ok {
			return b
		}
	}
	switch {
	case r.DrynessPct < partiallyDryFrom:
		return models.BucketFresh
	case r.DrynessPct < fullyDryFrom:
		return models.BucketPartiallyDry
	default:
		return models.BucketFullyDry
	}
}

// ImageURL returns the placeholder for a produce type and bucket,
// or ErrorImageURL when the pair is unknown.
func ImageURL(p models.ProduceType, b models.Bucket) string {
	if u, ok := imageTable[p][b]; ok {
		return u
	}
	return ErrorImageURL
}

// ImageFor classifies r and looks up its image.
func ImageFor(r *models.SensorReading) string {
	if r == nil {
		return ImageURL(models.DefaultProduce, models.BucketFresh)
	}
	return ImageURL(r.ProduceType, Classify(r))
}
