package metrics

// Metric names
const (
	MetricNameHTTPRequestsTotal      = "skunkd_http_requests_total"
	MetricNameHTTPRequestDuration    = "skunkd_http_request_duration_seconds"
	MetricNameInventoryRequestsTotal = "skunkd_inventory_requests_total"
	MetricNamePickupsSpawned         = "skunkd_pickups_spawned_total"
	MetricNamePickupsCollected       = "skunkd_pickups_collected_total"
	MetricNameHoneyHarvested         = "skunkd_honey_harvested_total"
	MetricNameHoneyStock             = "skunkd_honey_stock"
)

// Help texts
const (
	HelpTextHTTPRequestsTotal      = "Total number of HTTP requests processed"
	HelpTextHTTPRequestDuration    = "HTTP request latency in seconds"
	HelpTextInventoryRequestsTotal = "Inventory pipeline requests by operation and outcome"
	HelpTextPickupsSpawned         = "World pickups spawned"
	HelpTextPickupsCollected       = "World pickups fully collected"
	HelpTextHoneyHarvested         = "Honey units granted to players"
	HelpTextHoneyStock             = "Current honey stock per hive"
)

// Labels
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelOperation = "operation"
	LabelOutcome   = "outcome"
	LabelHive      = "hive"
)

// OutcomeAccepted labels requests that were applied (including logical
// no-ops).
const OutcomeAccepted = "accepted"

// HTTPLatencyBuckets spaces the histogram for a local-network game API.
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1}
