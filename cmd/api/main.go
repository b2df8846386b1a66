package main

import (
	"time"

	"stockroom/internal/config"
	"stockroom/internal/handler"
	"stockroom/internal/server"
	"stockroom/internal/session"
	"stockroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

func newLogger(goEnv string) (*zap.Logger, error) {
	if goEnv == "dev" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func main() {
	// .envは無ければ無いで環境変数から読む
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := newLogger(cfg.GoEnv)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	//セッション管理（状態は全部ここ、プロセス終了で消える）
	idGen := &uuidGenerator{}
	clock := &realClock{}
	sessions := session.NewManager(idGen, clock, cfg.SeedDemo)

	//Usecase生成
	sessionUC := usecase.NewSessionUsecase(sessions)
	inventoryUC := usecase.NewInventoryUsecase()
	orderUC := usecase.NewOrderUsecase()

	//Handler生成
	sessionH := handler.NewSessionHandler(sessionUC)
	stockH := handler.NewStockHandler(inventoryUC)
	orderH := handler.NewOrderHandler(orderUC)

	//Server起動
	e := server.New(logger, sessions, sessionH, stockH, orderH)

	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	logger.Info("starting api", zap.String("addr", addr), zap.Bool("seed_demo", cfg.SeedDemo))
	if err := server.Start(e, addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
