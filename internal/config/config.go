package config

// Config holds runtime configuration for the server.
type Config struct {
	Port        string
	TeamName    string
	Competition string
	Roster      RosterConfig
	Squad       SquadConfig
	Store       StoreConfig
	Snapshots   SnapshotConfig
	Standings   StandingsConfig
	Assistant   AssistantConfig
	Metrics     MetricsConfig
}

// RosterConfig carries the admitted birth-year cohorts.
type RosterConfig struct {
	Cohorts []string
}

// SquadConfig carries the convocation quota rules. The defaults mirror the
// league regulations and should rarely be overridden.
type SquadConfig struct {
	MaxSize    int
	MaxOverAge int
}

// StoreConfig selects the backing store.
type StoreConfig struct {
	Driver     string
	SQLitePath string
}

// SnapshotConfig controls periodic state snapshots on disk.
type SnapshotConfig struct {
	Enabled       bool
	Dir           string
	Interval      Duration
	RetentionDays int
}

// StandingsConfig points at the external league-table page. Empty URL
// disables the standings endpoint.
type StandingsConfig struct {
	URL string
}

// AssistantConfig points at the external AI assistant. Empty URL disables
// the assistant endpoint.
type AssistantConfig struct {
	URL    string
	APIKey string
}

// MetricsConfig controls the metrics exporter.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:        envOrDefault(envPort, defaultPort),
		TeamName:    envOrDefault(envTeamName, defaultTeamName),
		Competition: envOrDefault(envCompetition, defaultCompetition),
		Roster: RosterConfig{
			Cohorts: listEnvOrDefault(envRosterCohorts, defaultCohorts),
		},
		Squad: SquadConfig{
			MaxSize:    intEnvOrDefault(envSquadMaxSize, defaultSquadMaxSize),
			MaxOverAge: intEnvOrDefault(envSquadMaxOverAge, defaultSquadMaxOverAge),
		},
		Store: StoreConfig{
			Driver:     envOrDefault(envStoreDriver, defaultStoreDriver),
			SQLitePath: envOrDefault(envSQLitePath, defaultSQLitePath),
		},
		Snapshots: SnapshotConfig{
			Enabled:       boolEnvOrDefault(envSnapshotOn, defaultSnapshotOn),
			Dir:           envOrDefault(envSnapshotDir, defaultSnapshotDir),
			Interval:      durationEnvOrDefault(envSnapshotInterval, defaultSnapshotInterval),
			RetentionDays: intEnvOrDefault(envSnapshotDays, defaultSnapshotDays),
		},
		Standings: StandingsConfig{
			URL: envOrDefault(envStandingsURL, ""),
		},
		Assistant: AssistantConfig{
			URL:    envOrDefault(envAssistantURL, ""),
			APIKey: envOrDefault(envAssistantKey, ""),
		},
		Metrics: loadMetrics(),
	}
}

func loadMetrics() MetricsConfig {
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, false),
		Port:         envOrDefault(envMetricsPort, defaultMetricsPort),
		ServiceName:  envOrDefault(envOtelService, "roster-service"),
		OtlpEndpoint: envOrDefault(envOtelEndpoint, ""),
		OtlpInsecure: boolEnvOrDefault(envOtelInsecure, false),
	}
}
