package settings

import "time"

type Config struct {
	Queue  Queue  `mapstructure:"queue"`
	Logger Logger `mapstructure:"logger"`
}

// Queue is the configuration for a concurrent queue and its drainers
type Queue struct {
	TimeoutMs       int `mapstructure:"timeout_ms" validate:"gte=0"`       // Milliseconds, 0 disables the timeout
	InitialCapacity int `mapstructure:"initial_capacity" validate:"gte=0"` // Number of elements
	BatchSize       int `mapstructure:"batch_size" validate:"gte=1"`       // Number of elements
	Workers         int `mapstructure:"workers" validate:"gte=1,lte=1024"` // Number of goroutines
}

// Timeout returns the wait timeout and whether one is configured.
func (q Queue) Timeout() (time.Duration, bool) {
	if q.TimeoutMs <= 0 {
		return 0, false
	}
	return time.Duration(q.TimeoutMs) * time.Millisecond, true
}

// Logger is the configuration for the logger
type Logger struct {
	LogLevel    string `mapstructure:"log_level" validate:"omitempty,oneof=debug info warn error dpanic panic fatal"`
	FileLogName string `mapstructure:"file_log_name"`
	MaxBackups  int    `mapstructure:"max_backups" validate:"gte=0"`
	MaxAge      int    `mapstructure:"max_age" validate:"gte=0"`  // Days
	MaxSize     int    `mapstructure:"max_size" validate:"gte=0"` // Megabytes
	Compress    bool   `mapstructure:"compress"`
}
