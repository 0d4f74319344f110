package config

import "fmt"

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	BaseURL        string   `mapstructure:"base_url"`
	Timezone       string   `mapstructure:"timezone"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (c *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type EmailConfig struct {
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (c *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// EscalationConfig controls the SLA scanner and the escalation state machine.
type EscalationConfig struct {
	// MaxLevel is the terminal escalation level (sponsor).
	MaxLevel int `mapstructure:"max_level"`
	// CooldownHours bounds how often a work item may be re-escalated by the
	// scanner. Prevents runaway re-escalation when scans overlap or repeat.
	CooldownHours int `mapstructure:"cooldown_hours"`
	// SLAWarningHours is the look-ahead window for "approaching SLA" queries.
	SLAWarningHours int `mapstructure:"sla_warning_hours"`
	// ScanIntervalMinutes is the SLA scan period.
	ScanIntervalMinutes int `mapstructure:"scan_interval_minutes"`
}

// OutboxConfig controls the durable notification queue.
type OutboxConfig struct {
	// MaxAttempts is the delivery attempt ceiling before a notification is
	// marked FAILED.
	MaxAttempts int `mapstructure:"max_attempts"`
	// BatchSize is the number of queued rows drained per cycle.
	BatchSize int `mapstructure:"batch_size"`
	// DrainIntervalSeconds is the queue drain period.
	DrainIntervalSeconds int `mapstructure:"drain_interval_seconds"`
	// ClaimLeaseSeconds is how long a claimed (in-flight) row may stay in
	// SENDING before the reaper returns it to QUEUED.
	ClaimLeaseSeconds int `mapstructure:"claim_lease_seconds"`
	// PerItemTimeoutSeconds bounds a single delivery attempt so one slow
	// channel cannot stall the whole batch.
	PerItemTimeoutSeconds int `mapstructure:"per_item_timeout_seconds"`
	// StatsWindowDays is the retention window used for queue statistics.
	StatsWindowDays int `mapstructure:"stats_window_days"`
}

// AuditConfig controls the tamper-evident ledger.
type AuditConfig struct {
	// ExportMaxRows caps a single export.
	ExportMaxRows int `mapstructure:"export_max_rows"`
	// AppendRetryAttempts bounds the optimistic retry loop used to serialize
	// hash-chain appends per organization.
	AppendRetryAttempts int `mapstructure:"append_retry_attempts"`
}
