package main

import (
	"context"
	"errors"
	"log"
	"math/big"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
	"gopkg.in/yaml.v3"

	grpc_adapter "github.com/JoeShih716/go-interest-ledger/internal/app/core/adapter/in/grpc"
	auth_adapter "github.com/JoeShih716/go-interest-ledger/internal/app/core/adapter/out/auth"
	custody_adapter "github.com/JoeShih716/go-interest-ledger/internal/app/core/adapter/out/custody"
	event_adapter "github.com/JoeShih716/go-interest-ledger/internal/app/core/adapter/out/event"
	memory_adapter "github.com/JoeShih716/go-interest-ledger/internal/app/core/adapter/out/memory"
	mysql_adapter "github.com/JoeShih716/go-interest-ledger/internal/app/core/adapter/out/mysql"
	"github.com/JoeShih716/go-interest-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-interest-ledger/internal/app/core/usecase"
	"github.com/JoeShih716/go-interest-ledger/pkg/logger"
	"github.com/JoeShih716/go-interest-ledger/pkg/mysql"
	"github.com/JoeShih716/go-interest-ledger/pkg/wal"
	pb "github.com/JoeShih716/go-interest-ledger/proto"
)

type StoreType int32

const (
	StoreType_Level0_MySQL StoreType = iota
	StoreType_Level1_Memory_Mutex
	StoreType_Level2_Memory_Serial
)

// UsedStoreType 設定使用哪種 MarketStore
const UsedStoreType StoreType = StoreType_Level1_Memory_Mutex

// MarketConfig 啟動時要確保存在的市場
type MarketConfig struct {
	AssetID string `yaml:"asset_id"`
	// AnnualRate 年化利率的十進位小數，例如 "0.05" 代表 5%
	AnnualRate string `yaml:"annual_rate"`
}

// CreditConfig 啟動時發給帳戶的池外資產 (記憶體託管模式用)
type CreditConfig struct {
	AccountID int64 `yaml:"account_id"`
	Amount    int64 `yaml:"amount"`
}

type Config struct {
	Listen  string         `yaml:"listen"`
	MySQL   mysql.Config   `yaml:"mysql"`
	Log     logger.Config  `yaml:"log"`
	Admins  []int64        `yaml:"admins"`
	Markets []MarketConfig `yaml:"markets"`
	Credits []CreditConfig `yaml:"credits"`
}

func main() {
	// 1. 載入設定
	cfg := loadConfig()
	logger.Setup(cfg.Log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	clock := usecase.SystemClock{}

	// 2. 依設定選擇 MarketStore
	var store usecase.MarketStore
	switch UsedStoreType {
	case StoreType_Level0_MySQL:
		dbClient, err := mysql.NewClient(cfg.MySQL)
		if err != nil {
			log.Fatalf("Failed to connect to MySQL: %v", err)
		}
		defer dbClient.Close()
		logrus.Info("connected to MySQL")

		store = mysql_adapter.NewMySQLStore(dbClient, clock)
	case StoreType_Level1_Memory_Mutex:
		walFile, err := wal.NewWAL("wal.log")
		if err != nil {
			log.Fatalf("Failed to init WAL: %v", err)
		}
		defer walFile.Close()

		mutexStore, err := memory_adapter.NewMutexStore(nil, walFile, clock)
		if err != nil {
			log.Fatalf("Failed to init MutexStore: %v", err)
		}
		store = mutexStore
	case StoreType_Level2_Memory_Serial:
		walFile, err := wal.NewWAL("wal.log")
		if err != nil {
			log.Fatalf("Failed to init WAL: %v", err)
		}
		defer walFile.Close()

		serialStore, err := memory_adapter.NewSerialStore(nil, walFile, clock)
		if err != nil {
			log.Fatalf("Failed to init SerialStore: %v", err)
		}
		serialStore.Start(ctx)
		store = serialStore
	default:
		log.Fatalf("Invalid store type: %d", UsedStoreType)
	}

	markets, err := store.LoadAllMarkets(ctx)
	if err != nil {
		log.Fatalf("Failed to load markets: %v", err)
	}
	logrus.Infof("loaded %d markets", len(markets))

	// 3. 初始化 UseCase 與周邊 adapter
	vault := custody_adapter.NewVault()
	for _, c := range cfg.Credits {
		vault.Credit(c.AccountID, big.NewInt(c.Amount))
	}
	authorizer := auth_adapter.NewStaticAuthorizer(cfg.Admins)
	publisher := event_adapter.NewLogPublisher()

	coordinator := usecase.NewPoolCoordinator(store, vault, authorizer, clock, publisher)

	// 4. 依設定補建缺少的市場
	bootstrapMarkets(ctx, coordinator, cfg)

	// 5. 初始化 gRPC Adapter (Driving Adapter)
	grpcServer := grpc_adapter.NewGrpcServer(coordinator)

	// 6. 啟動 gRPC Server
	lis, err := net.Listen("tcp", cfg.Listen)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}

	s := grpc.NewServer()
	pb.RegisterLedgerServiceServer(s, grpcServer)
	reflection.Register(s) // 方便 gRPC Client 測試 (如 Postman/BloomRPC)

	// Graceful Shutdown
	go func() {
		logrus.Infof("starting gRPC server on %s", cfg.Listen)
		if err := s.Serve(lis); err != nil {
			log.Fatalf("failed to serve: %v", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("shutting down server...")

	s.GracefulStop()
	cancel() // 通知 SerialStore run loop 收尾
	logrus.Info("server exited")
}

// bootstrapMarkets 確保設定檔列出的市場都已註冊
// 已存在的市場會回 ErrMarketAlreadyExists，視為正常直接跳過
func bootstrapMarkets(ctx context.Context, coordinator *usecase.PoolCoordinator, cfg Config) {
	if len(cfg.Markets) == 0 {
		return
	}
	if len(cfg.Admins) == 0 {
		log.Fatalf("markets configured but no admin account to register them")
	}
	admin := cfg.Admins[0]

	for _, mc := range cfg.Markets {
		rateRay, err := parseAnnualRate(mc.AnnualRate)
		if err != nil {
			log.Fatalf("invalid annual_rate %q for market %s: %v", mc.AnnualRate, mc.AssetID, err)
		}
		err = coordinator.InitializeMarket(ctx, admin, mc.AssetID, rateRay, uuid.New())
		switch {
		case err == nil:
			logrus.WithFields(logrus.Fields{"asset": mc.AssetID, "rate": mc.AnnualRate}).Info("market registered")
		case errors.Is(err, domain.ErrMarketAlreadyExists):
			logrus.WithField("asset", mc.AssetID).Debug("market already registered")
		default:
			log.Fatalf("failed to register market %s: %v", mc.AssetID, err)
		}
	}
}

// parseAnnualRate 把人類可讀的年化利率小數轉成 1e18 定點數
// 例如 "0.05" -> 50000000000000000
func parseAnnualRate(rate string) (*big.Int, error) {
	d, err := decimal.NewFromString(rate)
	if err != nil {
		return nil, err
	}
	return d.Mul(decimal.New(1, 18)).BigInt(), nil
}

func loadConfig() Config {
	cfgData, err := os.ReadFile("config/config.yaml")
	if err != nil {
		log.Fatalf("Failed to read config file: %v", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(cfgData, &cfg); err != nil {
		log.Fatalf("Failed to parse config: %v", err)
	}

	if cfg.Listen == "" {
		cfg.Listen = ":50051"
	}
	// 補全 MySQL 預設配置 (如果 yaml 沒寫)
	if cfg.MySQL.MaxOpenConns == 0 {
		cfg.MySQL.MaxOpenConns = 100
	}
	if cfg.MySQL.MaxIdleConns == 0 {
		cfg.MySQL.MaxIdleConns = 10
	}
	if cfg.MySQL.ConnMaxLifetime == 0 {
		cfg.MySQL.ConnMaxLifetime = 30 * time.Minute
	}
	return cfg
}
