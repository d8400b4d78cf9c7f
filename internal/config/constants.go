package config

import "time"

const (
	envPort             = "PORT"
	envTeamName         = "TEAM_NAME"
	envCompetition      = "COMPETITION"
	envRosterCohorts    = "ROSTER_COHORTS"
	envSquadMaxSize     = "SQUAD_MAX_SIZE"
	envSquadMaxOverAge  = "SQUAD_MAX_OVER_AGE"
	envStoreDriver      = "STORE_DRIVER"
	envSQLitePath       = "SQLITE_PATH"
	envSnapshotDir      = "SNAPSHOT_DIR"
	envSnapshotOn       = "SNAPSHOT_ENABLED"
	envSnapshotInterval = "SNAPSHOT_INTERVAL"
	envSnapshotDays     = "SNAPSHOT_RETENTION_DAYS"
	envStandingsURL     = "STANDINGS_URL"
	envAssistantURL     = "ASSISTANT_URL"
	envAssistantKey     = "ASSISTANT_API_KEY"
	envMetricsPort      = "METRICS_PORT"
	envMetricsOn        = "METRICS_ENABLED"
	envOtelEndpoint     = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService      = "OTEL_SERVICE_NAME"
	envOtelInsecure     = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort        = "4000"
	defaultTeamName    = "Seguro Calcio"
	defaultCompetition = "Campionato Juniores"
	// League defaults: up to 20 convocated players, of which at most 4 from
	// the two most senior cohorts (fuori quota).
	defaultCohorts         = "2006,2007,2008,2009,2010"
	defaultSquadMaxSize    = 20
	defaultSquadMaxOverAge = 4

	defaultStoreDriver = "memory"
	defaultSQLitePath  = "roster.db"

	defaultSnapshotDir      = "data/snapshots"
	defaultSnapshotOn       = true
	defaultSnapshotInterval = 5 * Duration(time.Minute)
	defaultSnapshotDays     = 14

	defaultMetricsPort = "9090"
)
