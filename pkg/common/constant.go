package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyHomeDBType string = "HOME_DB_TYPE"
	EnvKeyHomeDbPath string = "HOME_DB_PATH"

	EnvKeyHomeHttpHostPort string = "HOME_HTTP_HOST_PORT"

	EnvKeyHomeJwtSecret string = "HOME_JWT_SECRET"

	EnvKeyHomeDefaultRate  string = "HOME_DEFAULT_RATE"
	EnvKeyHomeDefaultBurst string = "HOME_DEFAULT_BURST"

	LoggerNameHomeCore      string = "home_core"
	LoggerNameRestfulServer string = "restful_server"
	LoggerFieldHomeCategory string = "category"

	LoggerCategoryAccount   string = "account"
	LoggerCategoryTopology  string = "topology"
	LoggerCategoryUsage     string = "usage"
	LoggerCategoryAlert     string = "alert"
	LoggerCategorySimulator string = "simulator"
)
