package entity

// Location is the device position refreshed on demand. The session holds
// nil until the first successful refresh; it is never tracked continuously.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
