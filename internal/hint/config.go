package hint

import (
	"time"

	"github.com/spf13/viper"
)

// ConfigFromViper reads the core.* keys.
func ConfigFromViper() Config {
	return Config{
		Rule:      viper.GetString("core.rule"),
		Parallel:  viper.GetBool("core.parallel"),
		NodeLimit: viper.GetInt("core.node_limit"),
		Timeout:   time.Duration(viper.GetInt("core.timeout")) * time.Millisecond,
	}
}
