//go:generate mockgen -source=../record_sink.go   -destination=./mock_record_sink.go   -package=mocks
//go:generate mockgen -source=../record_cache.go  -destination=./mock_record_cache.go  -package=mocks
//go:generate mockgen -source=../record_reader.go -destination=./mock_record_reader.go -package=mocks
//go:generate mockgen -source=../record_lookup.go -destination=./mock_record_lookup.go -package=mocks
//go:generate mockgen -source=../logger.go        -destination=./mock_logger.go        -package=mocks

package mocks
