package constants

type APIStatus string

const (
	APIStatusOk    APIStatus = "OK"
	APIStatusError APIStatus = "ERROR"
)

// Cache keys
const (
	CacheKeyRoute         = "route:%s"          // route id
	CacheKeyActiveFlights = "active_flights:%s" // va id
)

// Cache TTLs in seconds
const (
	TTLRouteSeconds         = 600
	TTLActiveFlightsSeconds = 30
)
