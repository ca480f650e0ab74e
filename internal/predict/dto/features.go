package dto

// HousingFeatures mirrors the eight California Housing attributes the
// model was trained on. Field order here matches the training order
// and must not change.
type HousingFeatures struct {
	MedInc     float64 `json:"MedInc"`
	HouseAge   float64 `json:"HouseAge"`
	AveRooms   float64 `json:"AveRooms"`
	AveBedrms  float64 `json:"AveBedrms"`
	Population float64 `json:"Population"`
	AveOccup   float64 `json:"AveOccup"`
	Latitude   float64 `json:"Latitude"`
	Longitude  float64 `json:"Longitude"`
}

// Vector returns the features in training order.
func (f HousingFeatures) Vector() []float64 {
	return []float64{
		f.MedInc,
		f.HouseAge,
		f.AveRooms,
		f.AveBedrms,
		f.Population,
		f.AveOccup,
		f.Latitude,
		f.Longitude,
	}
}

type PredictionResponse struct {
	PredictedPrice float64 `json:"predicted_price"`
}
