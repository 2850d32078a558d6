package config

const (
	defaultMatrixRows      = 64
	defaultMatrixCols      = 64
	defaultHardwareMapping = "regular"
	defaultGPIOSlowdown    = 2
	defaultPWMBits         = 11
	defaultBrightness      = 80
	defaultParallelChains  = 1
	defaultChainLength     = 1

	defaultSocketPath    = "~/.local/run/led-manager/coordinator.sock"
	defaultSocketPerm    = 0o666
	defaultQueueCapacity = 32

	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
	defaultLogRetentionDays = 14
	defaultLogDir           = "~/.local/share/led-manager/logs"

	defaultTestSymbolDurationSeconds    = 2.0
	defaultTestAnimationDurationSeconds = 6.0
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Panel: Panel{
			MatrixRows:      defaultMatrixRows,
			MatrixCols:      defaultMatrixCols,
			HardwareMapping: defaultHardwareMapping,
			GPIOSlowdown:    defaultGPIOSlowdown,
			PWMBits:         defaultPWMBits,
			Brightness:      defaultBrightness,
			ParallelChains:  defaultParallelChains,
			ChainLength:     defaultChainLength,
		},
		Server: Server{
			SocketPath:    defaultSocketPath,
			SocketPerm:    defaultSocketPerm,
			QueueCapacity: defaultQueueCapacity,
		},
		Logging: Logging{
			Format:        defaultLogFormat,
			Level:         defaultLogLevel,
			RetentionDays: defaultLogRetentionDays,
		},
		Diagnostics: Diagnostics{
			TestSymbolDurationSeconds:    defaultTestSymbolDurationSeconds,
			TestAnimationDurationSeconds: defaultTestAnimationDurationSeconds,
		},
		LogDir: defaultLogDir,
	}
}
