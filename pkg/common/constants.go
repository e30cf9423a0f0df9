package common

const (
	RedisStreamWatchlistScan = "watchlist.scan"

	RedisStreamGroup    = "insight-group"
	RedisStreamConsumer = "insight-consumer"

	// RedisKeyPriceSeries is formatted with symbol, interval and range.
	RedisKeyPriceSeries = "price_series:%s:%s:%s"
)
