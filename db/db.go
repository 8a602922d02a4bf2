package db

import (
	"sync"
	"time"

	"github.com/go-xorm/xorm"
	"github.com/lonng/mjeff/db/model"
	log "github.com/sirupsen/logrus"

	_ "github.com/go-sql-driver/mysql"
)

var (
	database *xorm.Engine
	logger   = log.WithField("component", "model")

	lock    sync.RWMutex
	chWrite chan interface{} // async write channel
)

type options struct {
	showSQL      bool
	maxOpenConns int
	maxIdleConns int
	driver       string
}

// ModelOption specifies an option for dialing the database.
type ModelOption func(*options)

// MaxIdleConns specifies the max idle connect numbers.
func MaxIdleConns(i int) ModelOption {
	return func(opts *options) {
		opts.maxIdleConns = i
	}
}

// MaxOpenConns specifies the max open connect numbers.
func MaxOpenConns(i int) ModelOption {
	return func(opts *options) {
		opts.maxOpenConns = i
	}
}

// ShowSQL logs every statement.
func ShowSQL(show bool) ModelOption {
	return func(opts *options) {
		opts.showSQL = show
	}
}

// Driver overrides the sql driver name, mysql by default.
func Driver(name string) ModelOption {
	return func(opts *options) {
		opts.driver = name
	}
}

func envInit(done <-chan struct{}, ch <-chan interface{}) <-chan struct{} {
	drained := make(chan struct{})

	// async task
	go func() {
		defer close(drained)
		for t := range ch {
			if _, err := database.Insert(t); err != nil {
				logger.Error(err)
			}
		}
	}()

	// 定时ping数据库, 保持连接池连接
	go func() {
		ticker := time.NewTicker(time.Minute * 5)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := database.Ping(); err != nil {
					logger.Warnf("ping: %v", err)
				}
			case <-done:
				return
			}
		}
	}()

	return drained
}

// MustStartup create the database's connection, the returned closer flushes
// pending writes and closes the engine.
func MustStartup(dsn string, opts ...ModelOption) func() {
	settings := &options{
		maxIdleConns: defaultMaxConns,
		maxOpenConns: defaultMaxConns,
		showSQL:      true,
		driver:       "mysql",
	}

	// options handle
	for _, opt := range opts {
		opt(settings)
	}

	logger.Infof("Driver=%s ShowSQL=%t MaxIdleConn=%v MaxOpenConn=%v", settings.driver, settings.showSQL, settings.maxIdleConns, settings.maxOpenConns)

	// create database instance
	engine, err := xorm.NewEngine(settings.driver, dsn)
	if err != nil {
		panic(err)
	}

	// 设置日志相关
	engine.SetLogger(NewLogger(logger.WithField("orm", "xorm")))

	// options
	engine.SetMaxIdleConns(settings.maxIdleConns)
	engine.SetMaxOpenConns(settings.maxOpenConns)
	engine.ShowSQL(settings.showSQL)

	if err := engine.StoreEngine("InnoDB").Sync2(new(model.Analysis)); err != nil {
		panic(err)
	}

	done := make(chan struct{})
	ch := make(chan interface{}, asyncTaskBacklog)

	lock.Lock()
	database, chWrite = engine, ch
	lock.Unlock()

	drained := envInit(done, ch)

	closer := func() {
		lock.Lock()
		chWrite = nil
		lock.Unlock()

		close(done)
		close(ch)
		<-drained
		engine.Close()
		logger.Info("stopped")
	}

	return closer
}

// Enabled reports whether the database has been started.
func Enabled() bool {
	lock.RLock()
	defer lock.RUnlock()
	return chWrite != nil
}
