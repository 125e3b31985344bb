package config

import (
	"time"

	"github.com/Wilsonthoma/Ecommerce-sub002/log"
)

type Config interface {
	PageSizeOptions() []int
	DefaultPageSize() int
	SearchDebounce() time.Duration
	BulkConcurrency() int
	SupportedBulkActions() BulkActions
	Naming() NamingConventionFn
	Logger() log.Logger
}
