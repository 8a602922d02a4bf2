package game

import (
	"fmt"
	"time"

	"github.com/lonng/mjeff/internal/hint"
	"github.com/lonng/nano"
	"github.com/lonng/nano/component"
	"github.com/lonng/nano/pipeline"
	"github.com/lonng/nano/serialize/json"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var logger = log.WithField("component", "game")

// Startup 初始化实时提示服务器
func Startup(svc hint.Service) {
	heartbeat := viper.GetInt("core.heartbeat")
	if heartbeat < 5 {
		heartbeat = 5
	}

	logger.Infof("当前心跳时间间隔: %d秒, 支持规则: %v", heartbeat, svc.Rules())
	logger.Info("game service starup")

	comps := &component.Components{}
	comps.Register(newEfficiency(svc))

	opts := []nano.Option{
		nano.WithHeartbeatInterval(time.Duration(heartbeat) * time.Second),
		nano.WithLogger(log.WithField("component", "nano")),
		nano.WithSerializer(json.NewSerializer()),
		nano.WithComponents(comps),
	}

	// 加密管道
	if key := viper.GetString("game-server.crypto_key"); key != "" {
		c := newCrypto([]byte(key))
		pip := pipeline.New()
		pip.Inbound().PushBack(c.inbound)
		pip.Outbound().PushBack(c.outbound)
		opts = append(opts, nano.WithPipeline(pip))
	}

	addr := fmt.Sprintf(":%d", viper.GetInt("game-server.port"))
	nano.Listen(addr, opts...)
}
