package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyRFDBType string = "RF_DB_TYPE"
	EnvKeyRFDbPath string = "RF_DB_PATH"

	EnvKeyRFHttpHostPort string = "RF_HTTP_HOST_PORT"
	EnvKeyRFGrpcHostPort string = "RF_GRPC_HOST_PORT"

	EnvKeyRFTransport      string = "RF_TRANSPORT"
	EnvKeyRFSerialDevice   string = "RF_SERIAL_DEVICE"
	EnvKeyRFSerialBaud     string = "RF_SERIAL_BAUD"
	EnvKeyRFMqttBroker     string = "RF_MQTT_BROKER"
	EnvKeyRFMqttRxTopic    string = "RF_MQTT_RX_TOPIC"
	EnvKeyRFMqttTxTopic    string = "RF_MQTT_TX_TOPIC"
	EnvKeyRFMqttUsername   string = "RF_MQTT_USERNAME"
	EnvKeyRFMqttPassword   string = "RF_MQTT_PASSWORD"
	EnvKeyRFAssetsDir      string = "RF_ASSETS_DIR"
	EnvKeyRFRepeatRate     string = "RF_REPEAT_RATE"
	EnvKeyRFRepeatBurst    string = "RF_REPEAT_BURST"
	EnvKeyRFWebhookTimeout string = "RF_WEBHOOK_TIMEOUT"
	EnvKeyRFRedisAddr      string = "RF_REDIS_ADDR"
	EnvKeyRFRedisChannel   string = "RF_REDIS_CHANNEL"
	EnvKeyRFGrpcRate       string = "RF_GRPC_RATE"
	EnvKeyRFGrpcBurst      string = "RF_GRPC_BURST"

	EnvKeyRFLogDir        string = "RF_LOG_DIR"
	EnvKeyRFLogMaxSizeMB  string = "RF_LOG_MAX_SIZE_MB"
	EnvKeyRFLogMaxBackups string = "RF_LOG_MAX_BACKUPS"
	EnvKeyRFLogMaxAgeDays string = "RF_LOG_MAX_AGE_DAYS"

	LoggerNameRFCore        string = "rf_core"
	LoggerNameRestfulServer string = "restful_server"
	LoggerNameGrpcServer    string = "grpc_server"
	LoggerNameTransport     string = "transport"
	LoggerNameLive          string = "live"
	LoggerNameWebhook       string = "webhook"
	LoggerFieldRFCategory   string = "category"
	LoggerCategoryRFCode    string = "code"
	LoggerCategoryRFCard    string = "card"
	LoggerCategoryRFAlarm   string = "alarm"
	LoggerCategoryRFIngest  string = "ingest"
	LoggerCategoryRFNotify  string = "notify"
)
